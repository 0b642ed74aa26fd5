package repository

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

// newTestDB opens a fresh in-memory SQLite database with the schema applied.
func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := Open("sqlite://:memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, InitSchema(context.Background(), db))
	return db
}

// createTestUser inserts a user for tests that need an owning user.
func createTestUser(t *testing.T, db *sqlx.DB, username, email string) int64 {
	t.Helper()

	user, err := NewUserRepository(db).Create(context.Background(), username, email)
	require.NoError(t, err)
	return user.ID
}
