package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rjulien/fsdig/internal/sizes"
	"github.com/rjulien/fsdig/internal/walker"
)

// topOptions holds CLI flags for the top command.
type topOptions struct {
	human bool
	limit int
	files bool
}

// newTopCmd creates the top subcommand.
func newTopCmd() *cobra.Command {
	opts := &topOptions{limit: 25}

	cmd := &cobra.Command{
		Use:   "top [PATH]",
		Short: "Report the paths using the most space",
		Long: `Walks the tree and reports cumulative directory sizes (or individual
file sizes with --files) as a SIZE/PATH table, largest entry last.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runTop(rootArg(args), opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.human, "human", "H", false, "Report sizes in human-readable units")
	cmd.Flags().IntVarP(&opts.limit, "lim", "l", opts.limit, "Report only the top-N space users")
	cmd.Flags().BoolVarP(&opts.files, "files", "f", false, "Report files instead of directories")

	return cmd
}

// runTop walks the tree, aggregates sizes, and renders the table.
func runTop(path string, opts *topOptions) error {
	// Ancestor summation is lexical; an absolute root keeps the
	// path-prefix arithmetic exact for any user-supplied spelling.
	root, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve path %s: %w", path, err)
	}
	if _, err := walker.Lstat(root); err != nil {
		return fmt.Errorf("stat root: %w", err)
	}
	log.WithFields(log.Fields{"given": path, "resolved": root}).Debug("Resolved root path.")

	var files []sizes.Entry
	for m, err := range walker.Walk(root, walker.SkipRules{}) {
		if err != nil {
			log.WithError(err).Error("Metadata collection failed.")
			continue
		}
		if m.IsRegular() {
			files = append(files, sizes.Entry{Path: m.Path, Size: m.Size})
		}
	}

	entries := files
	if !opts.files {
		entries = sizes.Aggregate(files, root, runtime.NumCPU())
	}

	renderTable(os.Stdout, sizes.Rank(entries, opts.limit), opts.human)
	return nil
}

// renderTable prints the two-column SIZE/PATH table without borders.
func renderTable(w io.Writer, entries []sizes.Entry, human bool) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"SIZE", "PATH"})
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.SetHeaderLine(false)
	table.SetRowSeparator("")
	table.SetColumnSeparator("")
	table.SetCenterSeparator("")
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)

	for _, e := range entries {
		size := strconv.FormatUint(e.Size, 10)
		if human {
			size = humanize.IBytes(e.Size)
		}
		table.Append([]string{size, e.Path})
	}
	table.Render()
}
