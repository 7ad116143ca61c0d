// Package testutil holds helpers shared by package tests.
package testutil

import (
	"testing"

	"group-decision/internal/model"
	"group-decision/pkg/db"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// NewDB returns a fresh migrated in-memory sqlite database closed at test end.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	conn, err := db.Open("sqlite", ":memory:")
	require.NoError(t, err, "failed opening in-memory sqlite database")

	sqlDB, err := conn.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return conn
}

// CreateUser inserts a profile row.
func CreateUser(t testing.TB, conn *gorm.DB, id, username string) *model.User {
	t.Helper()
	u := &model.User{ID: id, Username: username, Avatar: username + ".png"}
	require.NoError(t, conn.Create(u).Error, "failed to create test user %s", id)
	return u
}
