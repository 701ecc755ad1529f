//go:build unix

package links

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rjulien/fsdig/internal/testfs"
	"github.com/rjulien/fsdig/internal/walker"
)

// TestIsDanglingBrokenLink covers the canonical dangling scenario: a link
// whose relative target is missing.
func TestIsDanglingBrokenLink(t *testing.T) {
	root := testfs.Sow(t, testfs.Tree{
		Symlinks: []testfs.Symlink{{Path: "a/link", Target: "../missing"}},
	})

	dangling, err := IsDangling(filepath.Join(root, "a/link"))
	require.NoError(t, err)
	require.True(t, dangling)
}

// TestIsDanglingHealthyLink tests that a resolvable link is not reported.
func TestIsDanglingHealthyLink(t *testing.T) {
	root := testfs.Sow(t, testfs.Tree{
		Files:    []testfs.File{{Path: "target", Content: "x"}},
		Symlinks: []testfs.Symlink{{Path: "link", Target: "target"}},
	})

	dangling, err := IsDangling(filepath.Join(root, "link"))
	require.NoError(t, err)
	require.False(t, dangling)
}

// TestIsDanglingChainedLink tests that a link to a dangling link dangles.
func TestIsDanglingChainedLink(t *testing.T) {
	root := testfs.Sow(t, testfs.Tree{
		Symlinks: []testfs.Symlink{
			{Path: "outer", Target: "inner"},
			{Path: "inner", Target: "missing"},
		},
	})

	dangling, err := IsDangling(filepath.Join(root, "outer"))
	require.NoError(t, err)
	require.True(t, dangling)
}

// TestCyclingInodeTwoLinkCycle covers a <-> b.
func TestCyclingInodeTwoLinkCycle(t *testing.T) {
	root := testfs.Sow(t, testfs.Tree{
		Symlinks: []testfs.Symlink{
			{Path: "a", Target: "b"},
			{Path: "b", Target: "a"},
		},
	})

	for _, name := range []string{"a", "b"} {
		m, err := walker.Lstat(filepath.Join(root, name))
		require.NoError(t, err)

		inode, found, err := CyclingInode(m)
		require.NoError(t, err)
		require.True(t, found, "no cycle found from %s", name)
		require.NotZero(t, inode)
	}
}

// TestCyclingInodeSelfLink tests the one-link cycle.
func TestCyclingInodeSelfLink(t *testing.T) {
	root := testfs.Sow(t, testfs.Tree{
		Symlinks: []testfs.Symlink{{Path: "self", Target: "self"}},
	})

	m, err := walker.Lstat(filepath.Join(root, "self"))
	require.NoError(t, err)

	inode, found, err := CyclingInode(m)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, m.Ino, inode)
}

// TestCyclingInodeWithinCycle tests that each link of a two-link cycle
// reports a closing inode that belongs to that cycle.
func TestCyclingInodeWithinCycle(t *testing.T) {
	root := testfs.Sow(t, testfs.Tree{
		Symlinks: []testfs.Symlink{
			{Path: "a", Target: "b"},
			{Path: "b", Target: "a"},
		},
	})

	ma, err := walker.Lstat(filepath.Join(root, "a"))
	require.NoError(t, err)
	mb, err := walker.Lstat(filepath.Join(root, "b"))
	require.NoError(t, err)

	ia, found, err := CyclingInode(ma)
	require.NoError(t, err)
	require.True(t, found)
	ib, found, err := CyclingInode(mb)
	require.NoError(t, err)
	require.True(t, found)

	// Each traversal reports the inode it revisited; between two links
	// both inodes belong to the same cycle.
	require.Contains(t, []uint64{ma.Ino, mb.Ino}, ia)
	require.Contains(t, []uint64{ma.Ino, mb.Ino}, ib)
}

// TestCyclingInodeDirectoryLoop tests a link pointing at an ancestor
// directory: expanding the directory reaches the link again.
func TestCyclingInodeDirectoryLoop(t *testing.T) {
	root := testfs.Sow(t, testfs.Tree{
		Symlinks: []testfs.Symlink{{Path: "sub/up", Target: ".."}},
	})

	m, err := walker.Lstat(filepath.Join(root, "sub/up"))
	require.NoError(t, err)

	_, found, err := CyclingInode(m)
	require.NoError(t, err)
	require.True(t, found)
}

// TestCyclingInodeNoCycle tests that an acyclic link reports nothing.
func TestCyclingInodeNoCycle(t *testing.T) {
	root := testfs.Sow(t, testfs.Tree{
		Files:    []testfs.File{{Path: "target", Content: "x"}},
		Symlinks: []testfs.Symlink{{Path: "link", Target: "target"}},
	})

	m, err := walker.Lstat(filepath.Join(root, "link"))
	require.NoError(t, err)

	_, found, err := CyclingInode(m)
	require.NoError(t, err)
	require.False(t, found)
}

// TestCyclingInodeDanglingLink tests that a dangling link is simply not a
// cycle.
func TestCyclingInodeDanglingLink(t *testing.T) {
	root := testfs.Sow(t, testfs.Tree{
		Symlinks: []testfs.Symlink{{Path: "link", Target: "missing"}},
	})

	m, err := walker.Lstat(filepath.Join(root, "link"))
	require.NoError(t, err)

	_, found, err := CyclingInode(m)
	require.NoError(t, err)
	require.False(t, found)
}
