// Package progress wraps the stderr spinner shown during long dups scans.
package progress

import (
	"fmt"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
)

const updateInterval = 50 * time.Millisecond

// Spinner is a throttled stderr spinner. All methods are no-ops when
// disabled, and the spinner clears itself on finish so stderr stays clean
// for pipelines.
type Spinner struct {
	bar *progressbar.ProgressBar
}

// New creates a spinner. If enabled is false every method is a no-op.
func New(enabled bool) *Spinner {
	if !enabled {
		return &Spinner{}
	}
	return &Spinner{bar: progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionThrottle(updateInterval),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetElapsedTime(false),
	)}
}

// Describe updates the status line next to the spinner.
func (s *Spinner) Describe(st fmt.Stringer) {
	if s.bar != nil {
		s.bar.Describe(st.String())
	}
}

// Finish clears the spinner.
func (s *Spinner) Finish() {
	if s.bar != nil {
		_ = s.bar.Finish()
	}
}
