package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rjulien/fsdig/internal/progress"
	"github.com/rjulien/fsdig/internal/refiner"
	"github.com/rjulien/fsdig/internal/types"
	"github.com/rjulien/fsdig/internal/walker"
)

// dupsOptions holds CLI flags for the dups command.
type dupsOptions struct {
	sampleStr    string
	chunkStr     string
	blake3       bool
	sha512       bool
	skipDirs     []string
	skipPrefixes []string
	nullSep      bool
	quote        bool
	showProgress bool
}

// newDupsCmd creates the dups subcommand.
func newDupsCmd() *cobra.Command {
	opts := &dupsOptions{
		sampleStr: "8192",
		chunkStr:  "8192",
	}

	cmd := &cobra.Command{
		Use:   "dups [PATH]",
		Short: "Report regular files with identical content",
		Long: `Finds groups of content-identical regular files by refining candidates
through successively more expensive passes: size, head sample, mid sample
and a full-content hash (with optional cryptographic passes on top).

Each group is printed one path per line, groups separated by a blank line.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runDups(rootArg(args), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.sampleStr, "sample", "s", opts.sampleStr, "Byte size of head/mid samples (e.g. 8192, 8K)")
	cmd.Flags().StringVarP(&opts.chunkStr, "chunk", "c", opts.chunkStr, "Byte size of full-read chunks (e.g. 8192, 8K)")
	cmd.Flags().BoolVar(&opts.blake3, "blake3", false, "Enable BLAKE3 pass")
	cmd.Flags().BoolVar(&opts.sha512, "sha", false, "Enable SHA2-512 pass")
	cmd.Flags().StringSliceVar(&opts.skipDirs, "skip-dir", nil, "Directory base-names to prune")
	cmd.Flags().StringSliceVar(&opts.skipPrefixes, "skip-prefix", nil, "Path prefixes to prune")
	cmd.Flags().BoolVarP(&opts.nullSep, "null", "Z", false, "Separate records with NUL instead of linefeed")
	cmd.Flags().BoolVarP(&opts.quote, "quote", "q", false, "Quote-escape printed paths")
	cmd.Flags().BoolVar(&opts.showProgress, "progress", false, "Show a progress spinner on stderr")

	return cmd
}

// dupsStats tracks refinement progress for the spinner.
type dupsStats struct {
	pass      string
	groups    int
	members   int
	startTime time.Time
}

func (s *dupsStats) String() string {
	return fmt.Sprintf("Pass %s: %d groups, %d files in %.1fs",
		s.pass, s.groups, s.members, time.Since(s.startTime).Seconds())
}

// runDups executes the dups pipeline: walk -> refine passes -> print.
func runDups(path string, opts *dupsOptions) error {
	sampleSize, err := parseSize(opts.sampleStr)
	if err != nil {
		return fmt.Errorf("invalid --sample: %w", err)
	}
	chunkSize, err := parseSize(opts.chunkStr)
	if err != nil {
		return fmt.Errorf("invalid --chunk: %w", err)
	}

	root, err := canonicalize(path)
	if err != nil {
		return err
	}
	rules := walker.NewSkipRules(root, opts.skipDirs, opts.skipPrefixes)

	// Seed group: every regular file with positive size under the root.
	var seed types.Group
	for m, err := range walker.Walk(root, rules) {
		if err != nil {
			log.WithError(err).Error("Metadata collection failed.")
			continue
		}
		if m.IsRegular() && m.Size > 0 {
			seed = append(seed, m)
		}
	}
	if len(seed) == 0 {
		return nil
	}

	spin := progress.New(opts.showProgress)
	st := &dupsStats{groups: 1, members: len(seed), startTime: time.Now()}

	groups := types.GroupList{seed}
	for _, pass := range refiner.Pipeline(refiner.Config{
		SampleSize: sampleSize,
		ChunkSize:  chunkSize,
		Blake3:     opts.blake3,
		SHA512:     opts.sha512,
	}) {
		st.pass = pass.Name
		spin.Describe(st)

		groups = refiner.Refine(groups, pass, runtime.NumCPU())

		st.groups = len(groups)
		st.members = 0
		for _, g := range groups {
			st.members += len(g)
		}
		spin.Describe(st)
	}
	spin.Finish()

	writeGroups(os.Stdout, groups, recordSep(opts.nullSep), opts.quote)
	return nil
}
