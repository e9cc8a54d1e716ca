// Package database provides shared database fixtures for tests.
package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/neonhq/neon/pkg/database"
)

// NewSQLiteTestDB creates an isolated embedded store under t.TempDir()
// with the schema applied. The store is closed via t.Cleanup; the temp
// directory removal takes the database file with it.
func NewSQLiteTestDB(t *testing.T) *database.Client {
	t.Helper()

	path := filepath.Join(t.TempDir(), "neon-test.db")
	client, err := database.NewSQLiteClient(context.Background(), path)
	require.NoError(t, err)

	t.Cleanup(func() { _ = client.Close() })
	return client
}
