package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/folio/internal/config"
	"github.com/alexanderramin/folio/internal/db"
	"github.com/alexanderramin/folio/internal/fetch"
	"github.com/alexanderramin/folio/internal/repository"
	"github.com/alexanderramin/folio/internal/server"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	return executeCmdContext(t, context.Background(), app, args...)
}

func executeCmdContext(t *testing.T, ctx context.Context, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	return ansi.Strip(buf.String()), err
}

// catalogApp returns an App whose catalog commands use a fresh database
// file.
func catalogApp(t *testing.T) (*App, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.db")
	app := testApp(t, newFakeCatalog())
	app.Config = &config.Config{
		ClientEnv: config.ClientEnv{APIKey: "secret"},
		UIEnv:     config.UIEnv{LogLevel: "error"},
		ServerEnv: config.ServerEnv{DB: path, Addr: "127.0.0.1:0"},
	}
	return app, path
}

func storedTitles(t *testing.T, path string) []string {
	t.Helper()
	database, err := db.OpenDB(path)
	require.NoError(t, err)
	defer database.Close()

	projects, err := repository.NewSQLiteProjectRepo(database).List(context.Background())
	require.NoError(t, err)
	titles := make([]string, len(projects))
	for i, p := range projects {
		titles[i] = p.Title
	}
	return titles
}

// --- Root and open ---

func TestRootCmd_PrintsHomeWhenPiped(t *testing.T) {
	cat := threeProjects()
	out, err := executeCmd(t, testApp(t, cat))

	require.NoError(t, err)
	assert.Contains(t, out, "Ada Example")
	assert.Contains(t, out, "Go to my projects")
	assert.Empty(t, cat.Calls())
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	_, err := executeCmd(t, testApp(t, threeProjects()), "projects/1")
	assert.Error(t, err)
}

func TestOpenCmd_PrintsRoute(t *testing.T) {
	app := testApp(t, threeProjects())

	out, err := executeCmd(t, app, "open", "/projects")
	require.NoError(t, err)
	assert.Contains(t, out, "TITLE")
	assert.Contains(t, out, "Tracker")

	out, err = executeCmd(t, app, "open", "/projects/3")
	require.NoError(t, err)
	assert.Contains(t, out, "Ledger")

	out, err = executeCmd(t, app, "open")
	require.NoError(t, err)
	assert.Contains(t, out, "Ada Example")
}

func TestOpenCmd_TrimsIDLikeShow(t *testing.T) {
	app := testApp(t, threeProjects())

	fromOpen, err := executeCmd(t, app, "open", "/projects/ 3")
	require.NoError(t, err)
	fromShow, err := executeCmd(t, app, "projects", "show", " 3")
	require.NoError(t, err)

	assert.Contains(t, fromOpen, "Ledger")
	assert.Equal(t, fromShow, fromOpen)
}

func TestOpenCmd_UnknownRoute(t *testing.T) {
	_, err := executeCmd(t, testApp(t, threeProjects()), "open", "/about")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown route")
}

// --- Print mode ---

func TestProjectsList_Table(t *testing.T) {
	cat := threeProjects()
	out, err := executeCmd(t, testApp(t, cat), "projects", "list")

	require.NoError(t, err)
	for _, want := range []string{"ID", "TITLE", "CATEGORIES", "Folio", "Tracker", "Ledger", "Web, Mobile, API"} {
		assert.Contains(t, out, want)
	}
	assert.Equal(t, []string{"list"}, cat.Calls())
}

func TestProjectsList_Empty(t *testing.T) {
	out, err := executeCmd(t, testApp(t, newFakeCatalog()), "projects", "list")

	require.NoError(t, err)
	assert.Equal(t, "No projects found yet.\n", out)
}

func TestProjectsList_ErrorIsReturned(t *testing.T) {
	cat := newFakeCatalog()
	cat.listErr = assert.AnError
	_, err := executeCmd(t, testApp(t, cat), "projects", "list")

	assert.ErrorIs(t, err, assert.AnError)
}

func TestProjectsShow(t *testing.T) {
	out, err := executeCmd(t, testApp(t, threeProjects()), "projects", "show", "2")

	require.NoError(t, err)
	assert.Contains(t, out, "Tracker")
	assert.Contains(t, out, "line one\n")
	assert.Contains(t, out, "line two")
}

func TestProjectsShow_InvalidIDMakesNoRequest(t *testing.T) {
	cat := threeProjects()
	_, err := executeCmd(t, testApp(t, cat), "projects", "show", "abc")

	assert.ErrorIs(t, err, fetch.ErrInvalidID)
	assert.Empty(t, cat.Calls())
}

func TestProjectsShow_NotFound(t *testing.T) {
	_, err := executeCmd(t, testApp(t, threeProjects()), "projects", "show", "99")

	require.Error(t, err)
	assert.Equal(t, "HTTP error! Status: 404, Message: not found", err.Error())
}

// --- Catalog ---

func TestCatalogAdd_WithFlags(t *testing.T) {
	app, path := catalogApp(t)

	out, err := executeCmd(t, app, "catalog", "add",
		"--title", "Folio",
		"--categories", "Go ,CLI",
		"--description", "A portfolio.",
	)

	require.NoError(t, err)
	assert.Contains(t, out, "Added #1 Folio")
	assert.Equal(t, []string{"Folio"}, storedTitles(t, path))
}

func TestCatalogAdd_RequiresTitle(t *testing.T) {
	app, path := catalogApp(t)

	_, err := executeCmd(t, app, "catalog", "add", "--categories", "Go")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "title is required")
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "no database is created for invalid input")
}

func TestCatalogAdd_RejectsBadImage(t *testing.T) {
	app, _ := catalogApp(t)

	_, err := executeCmd(t, app, "catalog", "add", "--title", "X", "--image", "ftp://example.com/x.png")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be http or https")
}

func TestCatalogImport(t *testing.T) {
	app, path := catalogApp(t)
	seed := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(seed, []byte(`projects:
  - title: Folio
    categories: [Go, CLI]
    description: |
      A terminal portfolio.
      Two lines.
  - title: Tracker
    categories: Web, API
`), 0o644))

	out, err := executeCmd(t, app, "catalog", "import", seed)

	require.NoError(t, err)
	assert.Contains(t, out, "#1 Folio")
	assert.Contains(t, out, "#2 Tracker")
	assert.Contains(t, out, "Imported 2 projects")
	assert.Equal(t, []string{"Folio", "Tracker"}, storedTitles(t, path))
}

func TestCatalogImport_InvalidWritesNothing(t *testing.T) {
	app, path := catalogApp(t)
	seed := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(seed, []byte(`projects:
  - title: Folio
  - title: ""
`), 0o644))

	_, err := executeCmd(t, app, "catalog", "import", seed)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "projects[1].title is required")
	assert.Empty(t, storedTitles(t, path))
}

func TestCatalogServe_RequiresKey(t *testing.T) {
	app, _ := catalogApp(t)
	app.Config.APIKey = ""

	_, err := executeCmd(t, app, "catalog", "serve")

	assert.ErrorIs(t, err, server.ErrNoAPIKey)
}

func TestCatalogServe_StopsWithContext(t *testing.T) {
	app, path := catalogApp(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := executeCmdContext(t, ctx, app, "catalog", "serve")

	assert.NoError(t, err)
	_, statErr := os.Stat(path)
	assert.NoError(t, statErr, "serve opens and migrates the database")
}

func TestEnvCmd(t *testing.T) {
	out, err := executeCmd(t, testApp(t, newFakeCatalog()), "env")

	require.NoError(t, err)
	assert.Contains(t, out, "FOLIO_API_KEY")
}
