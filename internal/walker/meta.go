package walker

import (
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/rjulien/fsdig/internal/types"
)

// Lstat reads the metadata of path without following symlinks and
// classifies the entry. For symlinks the raw link target is read as well.
func Lstat(path string) (*types.Meta, error) {
	var st syscall.Stat_t
	if err := syscall.Lstat(path, &st); err != nil {
		return nil, &os.PathError{Op: "lstat", Path: path, Err: err}
	}
	return newMeta(path, &st)
}

// FromDirEntry reads the metadata for one directory-iteration entry. The
// entry's own path (parent joined with its name) becomes Meta.Path.
func FromDirEntry(dir string, entry os.DirEntry) (*types.Meta, error) {
	return Lstat(filepath.Join(dir, entry.Name()))
}

// ReadDirMeta lists one directory and reads the metadata of every entry.
// Unlike Walk this is strict: the first listing or entry failure aborts.
func ReadDirMeta(dir string) ([]*types.Meta, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	metas := make([]*types.Meta, 0, len(entries))
	for _, entry := range entries {
		m, err := FromDirEntry(dir, entry)
		if err != nil {
			return nil, err
		}
		metas = append(metas, m)
	}
	return metas, nil
}

// newMeta builds a Meta from raw stat data. Classification is exclusive
// and checked in a fixed order; anything unrecognized is Unknown.
func newMeta(path string, st *syscall.Stat_t) (*types.Meta, error) {
	m := &types.Meta{
		Path:    path,
		Size:    uint64(st.Size),
		Mode:    uint32(st.Mode),
		Perm:    uint32(st.Mode) & 0o777,
		UID:     st.Uid,
		GID:     st.Gid,
		Dev:     uint64(st.Dev),  //nolint:unconvert // platform-dependent type
		Ino:     st.Ino,
		Nlink:   uint64(st.Nlink), //nolint:unconvert // platform-dependent type
		Rdev:    uint64(st.Rdev),  //nolint:unconvert // platform-dependent type
		Blksize: uint64(st.Blksize),
		Blocks:  uint64(st.Blocks),
	}
	m.Atime, m.Mtime, m.Ctime = statTimes(st)

	switch st.Mode & syscall.S_IFMT {
	case syscall.S_IFREG:
		m.Typ = types.Regular
	case syscall.S_IFDIR:
		m.Typ = types.Directory
	case syscall.S_IFLNK:
		m.Typ = types.Symlink
		dst, err := os.Readlink(path)
		if err != nil {
			return nil, fmt.Errorf("readlink %s: %w", path, err)
		}
		m.Dst = dst
	case syscall.S_IFIFO:
		m.Typ = types.Fifo
	case syscall.S_IFSOCK:
		m.Typ = types.Socket
	case syscall.S_IFCHR:
		m.Typ = types.CharDevice
	case syscall.S_IFBLK:
		m.Typ = types.BlockDevice
	default:
		m.Typ = types.Unknown
	}
	return m, nil
}
