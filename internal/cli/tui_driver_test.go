package cli

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"testing"

	"github.com/alexanderramin/folio/internal/catalog"
	"github.com/alexanderramin/folio/internal/domain"
	"github.com/alexanderramin/folio/internal/teatest"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

// fakeCatalog is an in-memory Catalog that records every call.
type fakeCatalog struct {
	mu       sync.Mutex
	projects []domain.Project
	listErr  error
	calls    []string

	// stall, when set, makes every call wait until it is closed or the
	// request is cancelled.
	stall chan struct{}
}

func newFakeCatalog(projects ...domain.Project) *fakeCatalog {
	return &fakeCatalog{projects: projects}
}

func (f *fakeCatalog) ListProjects(ctx context.Context) ([]domain.Project, error) {
	if err := f.enter(ctx, "list"); err != nil {
		return nil, err
	}
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := slices.Clone(f.projects)
	if out == nil {
		out = []domain.Project{}
	}
	return out, nil
}

func (f *fakeCatalog) GetProject(ctx context.Context, id int64) (*domain.Project, error) {
	if err := f.enter(ctx, fmt.Sprintf("get %d", id)); err != nil {
		return nil, err
	}
	for _, p := range f.projects {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, &catalog.HTTPError{StatusCode: 404, Message: "not found"}
}

func (f *fakeCatalog) enter(ctx context.Context, call string) error {
	f.mu.Lock()
	f.calls = append(f.calls, call)
	stall := f.stall
	f.mu.Unlock()

	if stall != nil {
		select {
		case <-stall:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

func (f *fakeCatalog) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.calls)
}

// stallUntilCleanup makes calls hang for the rest of the test.
func (f *fakeCatalog) stallUntilCleanup(t *testing.T) {
	t.Helper()
	f.stall = make(chan struct{})
	t.Cleanup(func() { close(f.stall) })
}

func testProject(id int64, title string) domain.Project {
	return domain.Project{
		ID:          id,
		Title:       title,
		Categories:  "Go, CLI",
		Description: "Built with care.",
	}
}

func testProfile() *domain.Profile {
	return &domain.Profile{
		Name:     "Ada Example",
		Location: "Surakarta",
		Country:  "Indonesia",
		Bio:      "I build small, sharp tools.",
		Links: []domain.SocialLink{
			{Kind: domain.LinkMail, Label: "Email", URL: "mailto:ada@example.com"},
		},
	}
}

// testApp wires an App around cat with no terminal attached.
func testApp(t *testing.T, cat catalog.Catalog) *App {
	t.Helper()
	return &App{
		Catalog: cat,
		Profile: testProfile(),
	}
}

// TestDriver wraps teatest.Driver with folio-specific inspection methods.
// It provides access to appModel internals (view stack, shared state)
// that the generic driver can't see.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver starts the UI on the home screen.
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()
	return NewTestDriverAt(t, app, "/")
}

// NewTestDriverAt starts the UI at path, sets the terminal size and drains
// Init (which runs the fake catalog synchronously).
func NewTestDriverAt(t *testing.T, app *App, path string) *TestDriver {
	t.Helper()

	r, err := parseRoute(path)
	require.NoError(t, err)

	m := newAppModel(context.Background(), app, r)
	d := teatest.New(t, m, teatest.WithSize(120, 40))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

// ── folio-specific inspection ────────────────────────────────────────────────

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ActiveViewTitle returns the Title() of the top view on the stack.
func (d *TestDriver) ActiveViewTitle() string {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ""
	}
	return v.Title()
}

// ViewStackIDs returns the ViewIDs of all views on the stack, bottom to top.
func (d *TestDriver) ViewStackIDs() []ViewID {
	m := d.appModel()
	ids := make([]ViewID, len(m.viewStack))
	for i, v := range m.viewStack {
		ids[i] = v.ID()
	}
	return ids
}

// Detail returns the active detail view, failing the test if the top view
// is something else.
func (d *TestDriver) Detail() *projectDetailView {
	d.T.Helper()
	m := d.appModel()
	v, ok := m.activeView().(*projectDetailView)
	require.True(d.T, ok, "active view is %T", m.activeView())
	return v
}

// IsQuitting returns whether the app has signaled a quit.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}

// Screen returns the rendered view without ANSI styling.
func (d *TestDriver) Screen() string {
	return ansi.Strip(d.View())
}
