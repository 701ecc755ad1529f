// Package sizes aggregates per-file byte counts into cumulative directory
// sizes and ranks the result for presentation.
package sizes

import (
	"path/filepath"
	"slices"

	"github.com/puzpuzpuz/xsync/v3"
	"golang.org/x/sync/errgroup"

	"github.com/rjulien/fsdig/internal/pathx"
)

// Entry is one (path, accumulated bytes) pair.
type Entry struct {
	Path string
	Size uint64
}

// Aggregate computes the cumulative size of every directory under root:
// each file's size is added to each of its strict ancestors, stopping
// before crossing above root. The root directory itself receives
// contributions like any other ancestor. Files fan out across workers;
// bucket updates go through a striped concurrent map.
func Aggregate(files []Entry, root string, workers int) []Entry {
	dirs := xsync.NewMapOf[string, uint64]()

	eg := new(errgroup.Group)
	eg.SetLimit(workers)
	for _, f := range files {
		eg.Go(func() error {
			for dir := filepath.Dir(f.Path); pathx.HasPrefix(dir, root); {
				dirs.Compute(dir, func(old uint64, _ bool) (uint64, bool) {
					return old + f.Size, false
				})
				parent := filepath.Dir(dir)
				if parent == dir {
					break
				}
				dir = parent
			}
			return nil
		})
	}
	_ = eg.Wait()

	out := make([]Entry, 0, dirs.Size())
	dirs.Range(func(path string, size uint64) bool {
		out = append(out, Entry{Path: path, Size: size})
		return true
	})
	return out
}

// Rank orders entries for terminal output: sort by size descending, keep
// the top limit entries (limit <= 0 keeps all), then reverse so the
// largest prints last. Ties keep their input order.
func Rank(entries []Entry, limit int) []Entry {
	ranked := make([]Entry, len(entries))
	copy(ranked, entries)

	slices.SortStableFunc(ranked, func(a, b Entry) int {
		switch {
		case a.Size > b.Size:
			return -1
		case a.Size < b.Size:
			return 1
		}
		return 0
	})

	if limit > 0 && limit < len(ranked) {
		ranked = ranked[:limit]
	}
	slices.Reverse(ranked)
	return ranked
}
