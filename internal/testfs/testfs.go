// Package testfs sows declarative fixture trees into a temp directory for
// tests.
//
// A Tree lists regular files with literal content, empty directories, and
// symlinks. Paths are slash-separated and relative to the sown root;
// parent directories are created automatically (mkdir -p semantics).
//
//	root := testfs.Sow(t, testfs.Tree{
//	    Files:    []testfs.File{{Path: "a/foo", Content: "foo\n"}},
//	    Symlinks: []testfs.Symlink{{Path: "a/link", Target: "../missing"}},
//	})
package testfs

import (
	"os"
	"path/filepath"
	"testing"
)

// File is one regular file with literal content.
type File struct {
	Path    string
	Content string
}

// Symlink is one symbolic link. Target is stored raw; it may be relative
// or point at nothing.
type Symlink struct {
	Path   string
	Target string
}

// Tree is a declarative fixture specification.
type Tree struct {
	Dirs     []string
	Files    []File
	Symlinks []Symlink
}

// Sow creates the tree under a fresh t.TempDir() and returns its root.
func Sow(t *testing.T, tree Tree) string {
	t.Helper()
	root := t.TempDir()
	SowAt(t, root, tree)
	return root
}

// SowAt creates the tree under an existing root directory.
func SowAt(t *testing.T, root string, tree Tree) {
	t.Helper()
	for _, dir := range tree.Dirs {
		if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
			t.Fatalf("sow dir %s: %v", dir, err)
		}
	}
	for _, f := range tree.Files {
		path := filepath.Join(root, f.Path)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("sow parent of %s: %v", f.Path, err)
		}
		if err := os.WriteFile(path, []byte(f.Content), 0o644); err != nil {
			t.Fatalf("sow file %s: %v", f.Path, err)
		}
	}
	for _, l := range tree.Symlinks {
		path := filepath.Join(root, l.Path)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("sow parent of %s: %v", l.Path, err)
		}
		if err := os.Symlink(l.Target, path); err != nil {
			t.Fatalf("sow symlink %s: %v", l.Path, err)
		}
	}
}
