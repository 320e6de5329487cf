package common

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"
)

// Spinner wraps github.com/briandowns/spinner for long-running generate
// runs, matching the teacher's pkg/ui spinner wrapper:
// suppressed under --verbose (where the log lines carry the progress
// instead) and restarted around any log line printed while it is active so
// the output doesn't tear.
type Spinner struct {
	s *spinner.Spinner
}

// NewSpinner creates a new spinner with a default configuration.
func NewSpinner(msg string) *Spinner {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + msg
	_ = s.Color("cyan", "bold")
	return &Spinner{s: s}
}

// Start starts the spinner if verbose mode is disabled.
func (s *Spinner) Start() {
	if !VerboseEnabled {
		s.s.Start()
	}
}

// Stop stops the spinner.
func (s *Spinner) Stop() {
	s.s.Stop()
}

// UpdateMessage updates the spinner's suffix message.
func (s *Spinner) UpdateMessage(format string, args ...interface{}) {
	s.s.Suffix = " " + fmt.Sprintf(format, args...)
}

// LogInfo stops the spinner, prints an info message, and restarts the
// spinner so it doesn't tear the printed line.
func (s *Spinner) LogInfo(format string, args ...interface{}) {
	wasRunning := s.s.Active()
	if wasRunning {
		s.s.Stop()
	}
	Info(format, args...)
	if wasRunning && !VerboseEnabled {
		s.s.Start()
	}
}
