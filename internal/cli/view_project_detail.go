package cli

import (
	"context"
	"slices"
	"strconv"

	"github.com/alexanderramin/folio/internal/catalog"
	"github.com/alexanderramin/folio/internal/cli/formatter"
	"github.com/alexanderramin/folio/internal/domain"
	"github.com/alexanderramin/folio/internal/fetch"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"go.uber.org/zap"
)

// projectLoadedMsg carries the outcome of one detail request.
type projectLoadedMsg struct {
	res fetch.Result[*domain.Project]
}

// projectDetailView shows one project. It stays mounted while its
// identifier changes (neighbour keys, go-to prompt) and re-fetches on each
// change; only the newest request may update the screen.
type projectDetailView struct {
	state    *SharedState
	project  *fetch.Resource[*domain.Project]
	rawID    string
	siblings []int64
	spinner  spinner.Model
	viewport viewport.Model
	cancel   context.CancelFunc
}

// newProjectDetailView creates a detail view for the raw route identifier.
// siblings are the ids of the list it was opened from, in display order,
// and may be nil.
func newProjectDetailView(state *SharedState, rawID string, siblings []int64) *projectDetailView {
	return &projectDetailView{
		state:    state,
		project:  fetch.NewItem[*domain.Project](),
		rawID:    rawID,
		siblings: siblings,
		spinner:  newLoadingSpinner(),
		viewport: viewport.New(state.ContentWidth(), state.ContentHeight()),
	}
}

func (v *projectDetailView) ID() ViewID { return ViewProjectDetail }

func (v *projectDetailView) Title() string {
	if v.rawID == "" {
		return "Project"
	}
	return "#" + ansi.Truncate(v.rawID, 12, "…")
}

func (v *projectDetailView) ShortHelp() []key.Binding {
	hints := []key.Binding{keyScroll}
	if len(v.siblings) > 1 {
		hints = append(hints, keyNext, keyPrev)
	}
	return hints
}

func (v *projectDetailView) Init() tea.Cmd {
	return v.load()
}

// Close cancels the request if it is still in flight.
func (v *projectDetailView) Close() {
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
}

// navigate points the mounted view at raw. Re-targeting to the identifier
// already shown is a no-op.
func (v *projectDetailView) navigate(raw string) tea.Cmd {
	if raw == v.rawID && v.project.State().Phase != fetch.PhaseIdle {
		return nil
	}
	v.rawID = raw
	return v.load()
}

// load starts the request for the current identifier. Identifiers that
// fail validation resolve to an error without touching the network.
func (v *projectDetailView) load() tea.Cmd {
	v.Close()
	v.viewport.GotoTop()

	id, err := fetch.ParseID(v.rawID)
	if err != nil {
		v.project.Fail(err)
		v.state.Log().Warn("rejected project id", zap.String("raw", v.rawID), zap.Error(err))
		v.syncViewport()
		return nil
	}

	ctx, cancel := context.WithCancel(v.state.Context())
	v.cancel = cancel
	cat := v.state.App.Catalog
	_, run := v.project.Start(ctx, func(ctx context.Context) (*domain.Project, error) {
		return cat.GetProject(ctx, id)
	})
	v.syncViewport()
	return tea.Batch(
		deliverTo(v, func() tea.Msg { return projectLoadedMsg{res: run()} }),
		deliverTo(v, v.spinner.Tick),
	)
}

func (v *projectDetailView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case projectLoadedMsg:
		if !v.project.Apply(msg.res) {
			return v, nil
		}
		if s := v.project.State(); s.Phase == fetch.PhaseError {
			if catalog.IsNotFound(s.Err) {
				v.state.Log().Info("project not found", zap.String("raw", v.rawID))
			} else {
				v.state.Log().Warn("loading project failed", zap.String("raw", v.rawID), zap.Error(s.Err))
			}
		}
		v.syncViewport()
		return v, nil

	case spinner.TickMsg:
		if !v.project.State().Loading() {
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
		switch {
		case key.Matches(msg, keyNext):
			return v, v.step(1)
		case key.Matches(msg, keyPrev):
			return v, v.step(-1)
		}
		var cmd tea.Cmd
		v.viewport, cmd = v.viewport.Update(msg)
		return v, cmd
	}
	return v, nil
}

// step moves to the neighbouring project in the list the view was opened
// from. It stops at either end.
func (v *projectDetailView) step(delta int) tea.Cmd {
	if len(v.siblings) == 0 {
		return nil
	}
	i := -1
	if id, err := fetch.ParseID(v.rawID); err == nil {
		i = slices.Index(v.siblings, id)
	}
	next := i + delta
	if i < 0 {
		next = 0
	}
	if next < 0 || next >= len(v.siblings) || next == i {
		return nil
	}
	return v.navigate(strconv.FormatInt(v.siblings[next], 10))
}

func (v *projectDetailView) render() string {
	return formatter.FormatProjectDetail(v.project.State(), formatter.DetailOptions{
		Width:   v.state.ContentWidth(),
		Spinner: v.spinner.View(),
	})
}

func (v *projectDetailView) syncViewport() {
	v.viewport.SetContent(v.render())
}

func (v *projectDetailView) View() string {
	if v.state.Height <= 0 {
		return v.render()
	}
	return v.viewport.View()
}
