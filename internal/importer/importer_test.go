package importer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/folio/internal/db"
	"github.com/alexanderramin/folio/internal/repository"
	"github.com/alexanderramin/folio/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validSeed = `
projects:
  - title: Folio
    categories: "Web, Mobile ,API"
    description: |
      Terminal portfolio.
      Second line.
    image: https://example.com/folio.png
  - title: Tracker
    categories: [Go, CLI]
  - title: Notes
`

func writeSeed(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestParseSeed_CategoriesForms(t *testing.T) {
	seed, err := ParseSeed([]byte(validSeed))
	require.NoError(t, err)
	require.Len(t, seed.Projects, 3)

	assert.Equal(t, Categories("Web, Mobile ,API"), seed.Projects[0].Categories)
	assert.Equal(t, Categories("Go, CLI"), seed.Projects[1].Categories)
	assert.Equal(t, Categories(""), seed.Projects[2].Categories)
}

func TestParseSeed_RejectsUnknownKeys(t *testing.T) {
	_, err := ParseSeed([]byte("projects:\n  - title: A\n    tags: x\n"))
	assert.Error(t, err)
}

func TestParseSeed_RejectsMappingCategories(t *testing.T) {
	_, err := ParseSeed([]byte("projects:\n  - title: A\n    categories: {a: b}\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "categories must be a string or a list")
}

func TestValidateSeed_CollectsAllErrors(t *testing.T) {
	seed := &SeedFile{Projects: []ProjectSeed{
		{Title: ""},
		{Title: "Dup"},
		{Title: "dup"},
		{Title: "Pic", Image: "ftp://example.com/x.png"},
		{Title: "Rel", Image: "/x.png"},
	}}

	errs := ValidateSeed(seed)
	require.Len(t, errs, 4)
	assert.Contains(t, errs[0].Error(), "projects[0].title is required")
	assert.Contains(t, errs[1].Error(), "duplicates projects[1]")
	assert.Contains(t, errs[2].Error(), "must be http or https")
	assert.Contains(t, errs[3].Error(), "must be http or https")
}

func TestValidateSeed_Empty(t *testing.T) {
	assert.Len(t, ValidateSeed(&SeedFile{}), 1)
}

func TestConvert_NormalisesCategories(t *testing.T) {
	seed, err := ParseSeed([]byte(validSeed))
	require.NoError(t, err)

	projects := Convert(seed)
	assert.Equal(t, "Web, Mobile, API", projects[0].Categories)
	assert.Equal(t, "Terminal portfolio.\nSecond line.", projects[0].Description)
	assert.Equal(t, "", projects[2].Categories)
}

func TestImportFile_InsertsAll(t *testing.T) {
	database := testutil.NewTestDB(t)
	uow := db.NewSQLiteUnitOfWork(database)

	projects, err := ImportFile(context.Background(), uow, writeSeed(t, validSeed))
	require.NoError(t, err)
	require.Len(t, projects, 3)
	assert.Positive(t, projects[0].ID)

	stored, err := repository.NewSQLiteProjectRepo(database).List(context.Background())
	require.NoError(t, err)
	assert.Len(t, stored, 3)
}

func TestImportFile_InvalidSeedWritesNothing(t *testing.T) {
	database := testutil.NewTestDB(t)
	uow := db.NewSQLiteUnitOfWork(database)

	_, err := ImportFile(context.Background(), uow, writeSeed(t, "projects:\n  - title: ok\n  - title: ''\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "projects[1].title is required")

	stored, err := repository.NewSQLiteProjectRepo(database).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestImport_RollsBackOnFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	boom := errors.New("disk full")
	uow := &testutil.FailOnNthExecUoW{DB: database, FailOn: 2, Err: boom}

	seed, err := ParseSeed([]byte(validSeed))
	require.NoError(t, err)

	err = Import(context.Background(), uow, Convert(seed))
	assert.ErrorIs(t, err, boom)

	stored, err := repository.NewSQLiteProjectRepo(database).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stored, "first insert must be rolled back")
}

func TestImportFile_MissingFile(t *testing.T) {
	uow := db.NewSQLiteUnitOfWork(testutil.NewTestDB(t))
	_, err := ImportFile(context.Background(), uow, filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
