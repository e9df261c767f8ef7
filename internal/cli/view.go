package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewID identifies each type of view in the TUI.
type ViewID int

const (
	ViewHome ViewID = iota
	ViewProjectList
	ViewProjectDetail
	ViewForm
)

// View is the interface that all TUI views must implement.
// It extends tea.Model with navigation and help metadata.
type View interface {
	tea.Model
	ID() ViewID
	ShortHelp() []key.Binding // key hints shown in the bottom bar
	Title() string            // breadcrumb segment for this view
}

// closer is implemented by views that hold in-flight requests. Close is
// called when the view leaves the stack.
type closer interface {
	Close()
}

// inputCapturer is implemented by views that temporarily take over the
// keyboard, such as the project filter.
type inputCapturer interface {
	CapturesInput() bool
}
