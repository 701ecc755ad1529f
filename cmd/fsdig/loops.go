package main

import (
	"os"
	"slices"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rjulien/fsdig/internal/links"
	"github.com/rjulien/fsdig/internal/walker"
)

// loopsOptions holds CLI flags for the loops command.
type loopsOptions struct {
	nullSep bool
}

// newLoopsCmd creates the loops subcommand.
func newLoopsCmd() *cobra.Command {
	opts := &loopsOptions{}

	cmd := &cobra.Command{
		Use:   "loops [PATH]",
		Short: "Report symlinks that participate in reference cycles",
		Long: `Traverses the symlink graph from every link under PATH and reports the
links that close onto a cycle. Links closing onto the same inode are
printed together, groups separated by a blank line.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runLoops(rootArg(args), opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.nullSep, "null", "Z", false, "Separate records with NUL instead of linefeed")

	return cmd
}

// runLoops buckets cycling symlinks by the inode that closes their cycle.
func runLoops(path string, opts *loopsOptions) error {
	root, err := canonicalize(path)
	if err != nil {
		return err
	}

	index := make(map[uint64][]string)
	for m, err := range walker.Walk(root, walker.SkipRules{}) {
		if err != nil {
			log.WithError(err).Error("Metadata collection failed.")
			continue
		}
		if !m.IsSymlink() {
			continue
		}

		inode, found, err := links.CyclingInode(m)
		if err != nil {
			log.WithField("path", m.Path).WithError(err).Error("Cycle traversal failed.")
			continue
		}
		if found {
			index[inode] = append(index[inode], m.Path)
		}
	}

	// Bucket order is meaningless; sort for stable output.
	inodes := make([]uint64, 0, len(index))
	for inode := range index {
		inodes = append(inodes, inode)
	}
	slices.Sort(inodes)

	sep := recordSep(opts.nullSep)
	for _, inode := range inodes {
		paths := index[inode]
		slices.Sort(paths)
		for _, p := range paths {
			// Always quote-escaped, like dang -t output.
			writeRecord(os.Stdout, p, sep, true)
		}
		os.Stdout.Write([]byte{sep})
	}
	return nil
}
