package cli

import "github.com/charmbracelet/bubbles/key"

// globalKeys are handled by the app model before the active view sees them.
var globalKeys = struct {
	Quit key.Binding
	GoTo key.Binding
	Back key.Binding
}{
	Quit: key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	GoTo: key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "go to project")),
	Back: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
}

var (
	keyUp       = key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up"))
	keyDown     = key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down"))
	keyOpen     = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open"))
	keyFilter   = key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter"))
	keyNext     = key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next"))
	keyPrev     = key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev"))
	keyScroll   = key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "scroll"))
	keyProjects = key.NewBinding(key.WithKeys("enter", "p"), key.WithHelp("enter", "projects"))
)
