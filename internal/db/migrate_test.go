package db

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))

	v, err := SchemaVersion(db)
	require.NoError(t, err)
	assert.Equal(t, len(migrations), v)
}

func TestMigrate_CreatesProjects(t *testing.T) {
	db := openTestDB(t)

	var name string
	err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='projects'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "projects", name)
}

func TestMigrate_RejectsBlankTitle(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO projects (title, created_at) VALUES ('  ', '2026-01-01T00:00:00Z')`)
	assert.Error(t, err)
}

func TestMigrate_RejectsNewerSchema(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`PRAGMA user_version = 99`)
	require.NoError(t, err)

	err = Migrate(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "newer than this binary")
}

func TestOpenDB_FileCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "catalog.db")

	db, err := OpenDB(path)
	require.NoError(t, err)
	defer db.Close()

	var mode string
	require.NoError(t, db.QueryRow(`PRAGMA journal_mode`).Scan(&mode))
	assert.Equal(t, "wal", mode)
}
