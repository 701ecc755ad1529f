// Package walker provides depth-first filesystem traversal that never
// follows symlinks.
//
// The walk is a lazy pull-based stream driven entirely by the consuming
// goroutine: an explicit LIFO frontier of metadata records is popped one
// entry at a time, directories are expanded as they are popped, and every
// record (or per-entry error) is yielded to the caller before the next pop.
// Because recursion keys off the lstat-classified Directory type and never
// off follow-the-link predicates, symlink cycles cannot make the walk
// non-terminating.
package walker

import (
	"io"
	"iter"
	"os"
	"path/filepath"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/rjulien/fsdig/internal/pathx"
	"github.com/rjulien/fsdig/internal/types"
)

// readDirBatch bounds memory when listing directories with very many
// entries.
const readDirBatch = 1000

// SkipRules is the pruning configuration for a walk: directory base-names
// to prune and path prefixes to prune. The zero value skips nothing.
type SkipRules struct {
	names    mapset.Set[string]
	prefixes []string
}

// NewSkipRules builds SkipRules from raw flag values. Prefixes are matched
// component-wise against walked paths as given; relative prefixes are
// matched both as given and joined to root so `--skip-prefix sub/dir`
// works against a canonicalized walk.
func NewSkipRules(root string, names, prefixes []string) SkipRules {
	r := SkipRules{names: mapset.NewThreadUnsafeSet[string]()}
	for _, n := range names {
		r.names.Add(n)
	}
	for _, p := range prefixes {
		r.prefixes = append(r.prefixes, filepath.Clean(p))
		if !filepath.IsAbs(p) && root != "" {
			r.prefixes = append(r.prefixes, filepath.Join(root, p))
		}
	}
	return r
}

// Omit reports whether the entry is pruned: any configured prefix matches
// its path, or it is a directory whose base-name is a configured skip
// name. The name rule never applies to non-directories.
func (r SkipRules) Omit(m *types.Meta) bool {
	for _, p := range r.prefixes {
		if pathx.HasPrefix(m.Path, p) {
			return true
		}
	}
	if m.IsDir() && r.names != nil && r.names.Contains(filepath.Base(m.Path)) {
		return true
	}
	return false
}

// Walk produces the lazy metadata stream for the tree rooted at root.
// Errors reading a directory or a single entry are yielded in-stream and
// the walk continues; only the consumer deciding to stop ends it early.
// Order is depth-first with unspecified sibling order.
func Walk(root string, rules SkipRules) iter.Seq2[*types.Meta, error] {
	return func(yield func(*types.Meta, error) bool) {
		rootMeta, err := Lstat(root)
		if err != nil {
			yield(nil, err)
			return
		}

		var frontier []*types.Meta
		if !rules.Omit(rootMeta) {
			frontier = append(frontier, rootMeta)
		}

		for len(frontier) > 0 {
			m := frontier[len(frontier)-1]
			frontier = frontier[:len(frontier)-1]

			if m.IsDir() {
				var stop bool
				frontier, stop = expand(frontier, m.Path, rules, yield)
				if stop {
					return
				}
			}
			if !yield(m, nil) {
				return
			}
		}
	}
}

// expand lists one directory and pushes the children that pass the skip
// rules. Listing and per-entry failures are yielded through the stream;
// stop is true when the consumer terminated the walk.
func expand(frontier []*types.Meta, dir string, rules SkipRules, yield func(*types.Meta, error) bool) (_ []*types.Meta, stop bool) {
	d, err := os.Open(dir)
	if err != nil {
		return frontier, !yield(nil, err)
	}
	defer func() { _ = d.Close() }()

	for {
		entries, err := d.ReadDir(readDirBatch)
		for _, entry := range entries {
			m, err := FromDirEntry(dir, entry)
			if err != nil {
				if !yield(nil, err) {
					return frontier, true
				}
				continue
			}
			if !rules.Omit(m) {
				frontier = append(frontier, m)
			}
		}
		if err != nil {
			if err == io.EOF {
				return frontier, false
			}
			return frontier, !yield(nil, err)
		}
	}
}
