package output

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/mattn/go-isatty"
)

const spinnerCharSet = 14

// WithSpinner runs an operation while showing a spinner with the given
// suffix text. On a non-terminal stdout the spinner is skipped and the
// operation runs directly, keeping piped output clean.
func WithSpinner(suffix string, operation func() error) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return operation()
	}

	s := spinner.New(spinner.CharSets[spinnerCharSet], 100*time.Millisecond)
	s.Suffix = " " + suffix
	s.Start()

	err := operation()

	s.Stop()
	return err
}
