// Package logging configures the process-wide logger: leveled, structured,
// stderr only, so stdout stays reserved for data.
package logging

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
)

// EnvVar overrides the default log level when the --log flag is not given
// explicitly.
const EnvVar = "FSDIG_LOG"

// Setup initializes the global logger. Precedence: an explicit --log flag
// wins, then the FSDIG_LOG environment variable, then the default (error).
func Setup(flagLevel string, flagSet bool) error {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{
		DisableTimestamp: false,
		FullTimestamp:    true,
	})

	level := flagLevel
	if !flagSet {
		if env := os.Getenv(EnvVar); env != "" {
			level = env
		}
	}

	parsed, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("parse log level %q: %w", level, err)
	}
	log.SetLevel(parsed)
	return nil
}
