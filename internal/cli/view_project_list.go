package cli

import (
	"context"
	"strconv"
	"strings"

	"github.com/alexanderramin/folio/internal/cli/formatter"
	"github.com/alexanderramin/folio/internal/domain"
	"github.com/alexanderramin/folio/internal/fetch"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// noProjectsMessage is shown when the catalog answers with zero projects.
const noProjectsMessage = "No projects found yet."

// projectsLoadedMsg carries the outcome of one list request.
type projectsLoadedMsg struct {
	res fetch.Result[[]domain.Project]
}

// projectListView shows the catalog's projects as a navigable list.
type projectListView struct {
	state    *SharedState
	projects *fetch.Resource[[]domain.Project]
	spinner  spinner.Model
	viewport viewport.Model
	cancel   context.CancelFunc
	cursor   int

	// Filtering
	filtering bool
	filter    string
}

func newProjectListView(state *SharedState) *projectListView {
	vp := viewport.New(state.ContentWidth(), state.ContentHeight())
	return &projectListView{
		state:    state,
		projects: fetch.NewCollection[domain.Project](noProjectsMessage),
		spinner:  newLoadingSpinner(),
		viewport: vp,
	}
}

func (v *projectListView) ID() ViewID    { return ViewProjectList }
func (v *projectListView) Title() string { return "Projects" }

func (v *projectListView) ShortHelp() []key.Binding {
	if v.filtering {
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
		}
	}
	if v.projects.State().Phase != fetch.PhaseReady {
		return nil
	}
	return []key.Binding{keyUp, keyDown, keyOpen, keyFilter}
}

func (v *projectListView) CapturesInput() bool { return v.filtering }

// Init issues the single list request for this mount.
func (v *projectListView) Init() tea.Cmd {
	ctx, cancel := context.WithCancel(v.state.Context())
	v.cancel = cancel

	_, run := v.projects.Start(ctx, v.state.App.Catalog.ListProjects)
	v.syncViewport()
	return tea.Batch(
		deliverTo(v, func() tea.Msg { return projectsLoadedMsg{res: run()} }),
		deliverTo(v, v.spinner.Tick),
	)
}

// Close cancels the request if it is still in flight.
func (v *projectListView) Close() {
	if v.cancel != nil {
		v.cancel()
	}
}

func (v *projectListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case projectsLoadedMsg:
		if !v.projects.Apply(msg.res) {
			return v, nil
		}
		if s := v.projects.State(); s.Phase == fetch.PhaseError {
			v.state.Log().Warn("listing projects failed", zap.Error(s.Err))
		}
		v.cursor = 0
		v.syncViewport()
		return v, nil

	case spinner.TickMsg:
		if !v.projects.State().Loading() {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		v.syncViewport()
		return v, deliverTo(v, cmd)

	case tea.WindowSizeMsg:
		v.viewport.Width = msg.Width
		v.viewport.Height = v.state.ContentHeight()
		v.syncViewport()
		return v, nil

	case tea.KeyMsg:
		if v.filtering {
			v.updateFilter(msg)
			v.syncViewport()
			return v, nil
		}
		cmd := v.updateNormal(msg)
		v.syncViewport()
		return v, cmd
	}
	return v, nil
}

func (v *projectListView) updateNormal(msg tea.KeyMsg) tea.Cmd {
	if v.projects.State().Phase != fetch.PhaseReady {
		return nil
	}
	visible := v.visibleProjects()

	switch {
	case key.Matches(msg, keyUp):
		if v.cursor > 0 {
			v.cursor--
		}
	case key.Matches(msg, keyDown):
		if v.cursor < len(visible)-1 {
			v.cursor++
		}
	case key.Matches(msg, keyOpen):
		if v.cursor < len(visible) {
			p := visible[v.cursor]
			return pushView(newProjectDetailView(v.state, strconv.FormatInt(p.ID, 10), projectIDs(visible)))
		}
	case key.Matches(msg, keyFilter):
		v.filtering = true
		v.filter = ""
		v.cursor = 0
	}
	return nil
}

func (v *projectListView) updateFilter(msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyEsc:
		v.filtering = false
		v.filter = ""
		v.cursor = 0
	case tea.KeyEnter:
		v.filtering = false
	case tea.KeyBackspace:
		if r := []rune(v.filter); len(r) > 0 {
			v.filter = string(r[:len(r)-1])
			v.cursor = 0
		}
	case tea.KeySpace:
		v.filter += " "
		v.cursor = 0
	case tea.KeyRunes:
		v.filter += string(msg.Runes)
		v.cursor = 0
	}
}

func (v *projectListView) visibleProjects() []domain.Project {
	return formatter.FilterProjects(v.projects.State().Data, v.filter)
}

func (v *projectListView) render() string {
	return formatter.FormatProjectList(v.projects.State(), formatter.ListOptions{
		Width:     v.state.ContentWidth(),
		Cursor:    v.cursor,
		Spinner:   v.spinner.View(),
		Filter:    v.filter,
		Filtering: v.filtering,
	})
}

// syncViewport re-renders into the viewport and keeps the cursor row on
// screen.
func (v *projectListView) syncViewport() {
	content := v.render()
	v.viewport.SetContent(content)
	if v.viewport.Height <= 0 {
		return
	}
	if line := selectedLine(content); line >= 0 {
		switch {
		case line < v.viewport.YOffset:
			v.viewport.SetYOffset(line)
		case line >= v.viewport.YOffset+v.viewport.Height:
			v.viewport.SetYOffset(line - v.viewport.Height + 1)
		}
	}
}

func (v *projectListView) View() string {
	if v.state.Height <= 0 {
		return v.render()
	}
	return v.viewport.View()
}

// selectedLine returns the index of the line carrying the cursor marker.
func selectedLine(content string) int {
	for i, l := range strings.Split(content, "\n") {
		if strings.Contains(l, formatter.SelectedMarker) {
			return i
		}
	}
	return -1
}

// projectIDs returns the ids in list order, keeping only the first row for
// an id the catalog repeated so neighbour stepping always advances.
func projectIDs(projects []domain.Project) []int64 {
	ids := make([]int64, 0, len(projects))
	seen := make(map[int64]struct{}, len(projects))
	for _, p := range projects {
		if _, dup := seen[p.ID]; dup {
			continue
		}
		seen[p.ID] = struct{}{}
		ids = append(ids, p.ID)
	}
	return ids
}
