// Package refiner partitions a set of files into content-identical groups
// by running them through a pipeline of successively more expensive
// discriminators.
//
// Each pass splits every surviving group by that pass's discriminator and
// keeps only the sub-groups that still have at least two members. Groups
// are processed concurrently; within a group, members fan out as well when
// the pass says the per-member work is expensive enough to pay for it.
// A member whose discriminator cannot be computed is logged and dropped
// from its group — a pass itself never fails.
package refiner

import (
	"sync"

	"github.com/puzpuzpuz/xsync/v3"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/rjulien/fsdig/internal/types"
)

// Refine applies one pass to every group and returns the refinement:
// sub-groups of two or more members that share the pass's discriminator
// value (and, transitively, those of all earlier passes). Output is sorted
// by member path for determinism; callers should not depend on it.
func Refine(groups types.GroupList, pass Pass, workers int) types.GroupList {
	var (
		mu  sync.Mutex
		out types.GroupList
	)

	eg := new(errgroup.Group)
	eg.SetLimit(workers)
	for _, group := range groups {
		eg.Go(func() error {
			refined := refineGroup(group, pass, workers)
			mu.Lock()
			out = append(out, refined...)
			mu.Unlock()
			return nil
		})
	}
	_ = eg.Wait()

	return types.SortGroups(out)
}

// refineGroup splits one group by discriminator equality.
func refineGroup(group types.Group, pass Pass, workers int) types.GroupList {
	if pass.Parallel {
		return partitionParallel(group, pass, workers)
	}
	return partitionSequential(group, pass)
}

func partitionSequential(group types.Group, pass Pass) types.GroupList {
	buckets := make(map[string]types.Group)
	for _, m := range group {
		id, err := pass.Fn(m)
		if err != nil {
			dropMember(m, pass, err)
			continue
		}
		buckets[string(id)] = append(buckets[string(id)], m)
	}

	var out types.GroupList
	for _, g := range buckets {
		if len(g) >= 2 {
			out = append(out, g)
		}
	}
	return out
}

// partitionParallel computes discriminators for all members concurrently,
// collecting buckets in a striped concurrent map keyed by discriminator
// bytes.
func partitionParallel(group types.Group, pass Pass, workers int) types.GroupList {
	buckets := xsync.NewMapOf[string, types.Group]()

	eg := new(errgroup.Group)
	eg.SetLimit(workers)
	for _, m := range group {
		eg.Go(func() error {
			id, err := pass.Fn(m)
			if err != nil {
				dropMember(m, pass, err)
				return nil
			}
			buckets.Compute(string(id), func(old types.Group, _ bool) (types.Group, bool) {
				return append(old, m), false
			})
			return nil
		})
	}
	_ = eg.Wait()

	var out types.GroupList
	buckets.Range(func(_ string, g types.Group) bool {
		if len(g) >= 2 {
			out = append(out, g)
		}
		return true
	})
	return out
}

// dropMember records a per-member discriminator failure. The member leaves
// its group and will not appear in any output group.
func dropMember(m *types.Meta, pass Pass, err error) {
	log.WithFields(log.Fields{
		"path": m.Path,
		"pass": pass.Name,
	}).WithError(err).Error("Failed to process; dropping from group.")
}
