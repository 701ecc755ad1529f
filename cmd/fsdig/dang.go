package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rjulien/fsdig/internal/links"
	"github.com/rjulien/fsdig/internal/walker"
)

// dangOptions holds CLI flags for the dang command.
type dangOptions struct {
	printTarget bool
	nullSep     bool
}

// newDangCmd creates the dang subcommand.
func newDangCmd() *cobra.Command {
	opts := &dangOptions{}

	cmd := &cobra.Command{
		Use:   "dang [PATH]",
		Short: "Report symlinks whose target does not exist",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runDang(rootArg(args), opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.printTarget, "target", "t", false,
		`Print targets with links, e.g. "a/b" -> "../foo" instead of just a/b`)
	cmd.Flags().BoolVarP(&opts.nullSep, "null", "Z", false, "Separate records with NUL instead of linefeed")

	return cmd
}

// runDang walks the tree and probes every symlink for a missing target.
// Paths are reported as walked, so a relative root gives relative output.
func runDang(path string, opts *dangOptions) error {
	if _, err := walker.Lstat(path); err != nil {
		return fmt.Errorf("stat root: %w", err)
	}

	sep := recordSep(opts.nullSep)
	for m, err := range walker.Walk(path, walker.SkipRules{}) {
		if err != nil {
			log.WithError(err).Error("Metadata collection failed.")
			continue
		}
		if !m.IsSymlink() {
			continue
		}

		dangling, err := links.IsDangling(m.Path)
		if err != nil {
			// Permission errors and the like are ambiguous; only
			// confirmed dangling links are reported.
			log.WithField("path", m.Path).WithError(err).Error("Failed to canonicalize symlink path.")
			continue
		}
		if !dangling {
			continue
		}

		if opts.printTarget {
			fmt.Fprintf(os.Stdout, "%q -> %q%c", m.Path, m.Dst, sep)
		} else {
			writeRecord(os.Stdout, m.Path, sep, false)
		}
	}
	return nil
}
