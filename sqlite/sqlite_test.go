package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Quintaneishon/archtext/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return db
}

func TestDB_Open(t *testing.T) {
	t.Parallel()

	t.Run("migrates an empty database", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		ctx := context.Background()

		var count int
		require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM results").Scan(&count))
		assert.Zero(t, count)

		version, err := db.SchemaVersion(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, version)
	})

	t.Run("reopening skips applied migrations", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "archtext.db")
		db := sqlite.NewDB(path)
		require.NoError(t, db.Open())
		_, err := db.ExecContext(context.Background(),
			`INSERT INTO results (id, year, month, url, extracted_at) VALUES ('a', 2020, 1, 'u', '2024-01-01T00:00:00Z')`)
		require.NoError(t, err)
		require.NoError(t, db.Close())

		db = sqlite.NewDB(path)
		require.NoError(t, db.Open())
		defer db.Close()

		var count int
		require.NoError(t, db.QueryRowContext(context.Background(), "SELECT COUNT(*) FROM results").Scan(&count))
		assert.Equal(t, 1, count)
	})

	t.Run("returns error for missing directory", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB(filepath.Join(t.TempDir(), "missing", "archtext.db"))

		require.Error(t, db.Open())
	})

	t.Run("file databases use the write-ahead log", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB(filepath.Join(t.TempDir(), "archtext.db"))
		require.NoError(t, db.Open())
		defer db.Close()

		var mode string
		require.NoError(t, db.QueryRowContext(context.Background(), "PRAGMA journal_mode").Scan(&mode))
		assert.Equal(t, "wal", mode)
	})
}
