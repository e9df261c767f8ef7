package cli

import (
	"context"
	"strings"

	"github.com/alexanderramin/folio/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// appModel is the root bubbletea Model for the TUI.
// It manages the view stack and the chrome around the active view.
type appModel struct {
	state     *SharedState
	viewStack []View
	quitting  bool
}

// newAppModel builds the root model with the screens for r on the stack,
// parents first.
func newAppModel(ctx context.Context, app *App, r route) appModel {
	state := newSharedState(ctx, app)
	return appModel{
		state:     state,
		viewStack: r.stack(state),
	}
}

// activeView returns the top view on the stack, or nil.
func (m *appModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

// setActiveView replaces the top of the view stack.
// If the stack is empty, this is a no-op.
func (m *appModel) setActiveView(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

// pop removes the top view, keeping at least one, and releases its
// in-flight work.
func (m *appModel) pop() {
	if len(m.viewStack) <= 1 {
		return
	}
	closeView(m.activeView())
	m.viewStack = m.viewStack[:len(m.viewStack)-1]
}

func (m *appModel) closeAll() {
	for _, v := range m.viewStack {
		closeView(v)
	}
}

func closeView(v View) {
	if c, ok := v.(closer); ok {
		c.Close()
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

// Init starts every view on the initial stack, so parents opened from a
// route load the same way they would have had the user walked there.
func (m appModel) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.viewStack))
	for _, v := range m.viewStack {
		cmds = append(cmds, v.Init())
	}
	return tea.Batch(cmds...)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		// Every view sizes itself so a pop never shows a stale layout.
		var cmds []tea.Cmd
		for i, v := range m.viewStack {
			updated, cmd := v.Update(msg)
			m.viewStack[i] = updated.(View)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case ownedMsg:
		for i, v := range m.viewStack {
			if v == msg.owner {
				updated, cmd := v.Update(msg.msg)
				m.viewStack[i] = updated.(View)
				return m, cmd
			}
		}
		return m, nil

	// Navigation messages from views
	case pushViewMsg:
		m.viewStack = append(m.viewStack, msg.view)
		return m, msg.view.Init()

	case wizardCompleteMsg:
		// Atomically pop the wizard view and execute the follow-up command.
		if v := m.activeView(); v != nil && v.ID() == ViewForm {
			m.pop()
		}
		return m, msg.nextCmd

	case gotoProjectMsg:
		return m.gotoProject(msg.raw)

	case tea.QuitMsg:
		m.quitting = true
		m.closeAll()
		return m, nil
	}

	// Forward to active view
	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	return m, nil
}

// gotoProject shows raw in a detail view. An open detail view re-targets
// itself; otherwise the missing screens are pushed so back navigation
// still walks detail, list, home.
func (m appModel) gotoProject(raw string) (tea.Model, tea.Cmd) {
	switch v := m.activeView().(type) {
	case *projectDetailView:
		return m, v.navigate(raw)
	case *projectListView:
		d := newProjectDetailView(m.state, raw, nil)
		m.viewStack = append(m.viewStack, d)
		return m, d.Init()
	default:
		list := newProjectListView(m.state)
		d := newProjectDetailView(m.state, raw, nil)
		m.viewStack = append(m.viewStack, list, d)
		return m, tea.Batch(list.Init(), d.Init())
	}
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global quit
	if msg.Type == tea.KeyCtrlC {
		return m.quit()
	}

	// If the active view captures input (a form or the list filter),
	// forward directly so it receives q, g and Esc.
	if v := m.activeView(); v != nil && viewCapturesInput(v) {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	switch {
	case key.Matches(msg, globalKeys.Quit):
		return m.quit()

	case key.Matches(msg, globalKeys.GoTo):
		return m, startGoToWizard(m.state)

	case key.Matches(msg, globalKeys.Back):
		m.pop()
		return m, nil
	}

	// Forward to active view
	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	return m, nil
}

func (m appModel) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.closeAll()
	return m, tea.Quit
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	sections = append(sections, m.renderHeader())
	if v := m.activeView(); v != nil {
		sections = append(sections, v.View())
	}

	result := strings.Join(sections, "\n")

	// Pin the status bar to the bottom and pad to terminal height to
	// prevent stale line artifacts from bubbletea's line-diff renderer in
	// alt-screen mode.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if pad := m.state.Height - lines - 2; pad > 0 {
			result += strings.Repeat("\n", pad)
		}
	}

	return result + "\n" + m.renderStatusBar()
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m *appModel) renderHeader() string {
	title := formatter.StylePurple.Render("folio")

	// Breadcrumb from view stack
	var crumbs []string
	for _, v := range m.viewStack {
		if t := v.Title(); t != "" {
			crumbs = append(crumbs, t)
		}
	}
	breadcrumb := ""
	if len(crumbs) > 0 {
		breadcrumb = " " + formatter.Dim("›") + " " + formatter.Dim(strings.Join(crumbs, " › "))
	}

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return m.fit(title+breadcrumb) + "\n" + sep
}

func (m *appModel) renderStatusBar() string {
	var hints []string

	v := m.activeView()
	if v != nil {
		for _, b := range v.ShortHelp() {
			hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
		}
	}

	// Show navigation hints
	if v != nil && !viewCapturesInput(v) {
		if len(m.viewStack) > 1 {
			hints = append(hints, formatter.Dim("esc: back"))
		}
		hints = append(hints, formatter.Dim("g: go to project"), formatter.Dim("q: quit"))
	}

	bar := m.fit(strings.Join(hints, "  "))
	sepStyle := lipgloss.NewStyle().Foreground(formatter.ColorDim)
	sep := sepStyle.Render(strings.Repeat("─", max(m.state.Width, 20)))
	return sep + "\n" + bar
}

// fit truncates a chrome line to the terminal width.
func (m *appModel) fit(line string) string {
	if m.state.Width <= 0 {
		return line
	}
	return ansi.Truncate(line, m.state.Width, "…")
}

// viewCapturesInput returns true if the active view has its own text input
// and should receive all key events (bypassing global keybindings like q/g/Esc).
func viewCapturesInput(v View) bool {
	if v == nil {
		return false
	}
	if v.ID() == ViewForm {
		return true
	}
	c, ok := v.(inputCapturer)
	return ok && c.CapturesInput()
}
