package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rjulien/fsdig/internal/logging"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	os.Exit(run())
}

func run() int {
	var logLevel string

	root := &cobra.Command{
		Use:          "fsdig",
		Short:        "Inspect a directory tree: space users, duplicate files, broken and looping symlinks",
		Version:      version + " (" + commit + ")",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := logging.Setup(logLevel, cmd.Flags().Changed("log")); err != nil {
				return err
			}
			log.WithFields(log.Fields{"cmd": cmd.Name(), "args": args}).Debug("Starting.")
			return nil
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error)")

	root.AddCommand(newTopCmd(), newDupsCmd(), newDangCmd(), newLoopsCmd())

	if err := root.Execute(); err != nil {
		return 1
	}
	return 0
}

// rootArg extracts the optional PATH argument, defaulting to the current
// directory.
func rootArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}
