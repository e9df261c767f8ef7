package cli

import (
	"github.com/alexanderramin/folio/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// homeView is the landing screen: profile, links and the way into the
// projects section. It has no remote data.
type homeView struct {
	state *SharedState
}

func newHomeView(state *SharedState) *homeView {
	return &homeView{state: state}
}

func (v *homeView) ID() ViewID    { return ViewHome }
func (v *homeView) Title() string { return "Home" }

func (v *homeView) ShortHelp() []key.Binding {
	return []key.Binding{keyProjects}
}

func (v *homeView) Init() tea.Cmd { return nil }

func (v *homeView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, keyProjects) {
		return v, pushView(newProjectListView(v.state))
	}
	return v, nil
}

func (v *homeView) View() string {
	return formatter.FormatHome(v.state.App.profile(), v.state.ContentWidth())
}
