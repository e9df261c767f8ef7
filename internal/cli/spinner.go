package cli

import (
	"time"

	"github.com/alexanderramin/folio/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/spinner"
)

// newLoadingSpinner returns the spinner shown while a view's request is in
// flight. It uses the same frames as the print-mode spinner.
func newLoadingSpinner() spinner.Model {
	return spinner.New(spinner.WithSpinner(spinner.Spinner{
		Frames: formatter.SpinnerFrames,
		FPS:    time.Second / 12,
	}))
}
