// Package links inspects symbolic links: cycle detection over the symlink
// graph and the dangling-target probe.
package links

import (
	"errors"
	"io/fs"
	"path/filepath"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/rjulien/fsdig/internal/pathx"
	"github.com/rjulien/fsdig/internal/types"
	"github.com/rjulien/fsdig/internal/walker"
)

// CyclingInode performs a logical traversal from the given symlink,
// following link targets and expanding directories, and returns the inode
// that closes a reference cycle, if one is reachable. Identity is inode
// based: distinct paths naming the same object count as a revisit.
//
// The traversal root must be a symlink; the only path without a parent
// directory is "/", which cannot be one.
func CyclingInode(m *types.Meta) (inode uint64, found bool, err error) {
	visited := mapset.NewThreadUnsafeSet[uint64]()
	frontier := []*types.Meta{m}

	for len(frontier) > 0 {
		current := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]

		if visited.Contains(current.Ino) {
			return current.Ino, true, nil
		}

		switch current.Typ {
		case types.Symlink:
			dst := pathx.Normalize(filepath.Dir(current.Path), current.Dst)
			// A dangling target cannot extend a cycle; skip it.
			if dstMeta, err := walker.Lstat(dst); err == nil {
				frontier = append(frontier, dstMeta)
			}
		case types.Directory:
			children, err := walker.ReadDirMeta(current.Path)
			if err != nil {
				return 0, false, err
			}
			frontier = append(frontier, children...)
		}

		visited.Add(current.Ino)
	}
	return 0, false, nil
}

// IsDangling probes one symlink path: it is dangling iff a full resolution
// of the path fails because the target does not exist. Any other
// resolution failure is returned to the caller, which logs it and does not
// report the link.
func IsDangling(path string) (bool, error) {
	if _, err := filepath.EvalSymlinks(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return true, nil
		}
		return false, err
	}
	return false, nil
}
