package repository

import (
	"context"
	"testing"

	"group-decision/internal/model"
	"group-decision/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_Upsert(t *testing.T) {
	repo := NewUserRepository(testutil.NewDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &model.User{ID: "u-1", Username: "first", Avatar: "a.png"}))
	require.NoError(t, repo.Upsert(ctx, &model.User{ID: "u-1", Username: "renamed", Avatar: "b.png"}))

	user, err := repo.FindByID(ctx, "u-1")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "renamed", user.Username)
	assert.Equal(t, "b.png", user.Avatar)
}

func TestUserRepository_FindByID_NotFound(t *testing.T) {
	repo := NewUserRepository(testutil.NewDB(t))
	user, err := repo.FindByID(context.Background(), "ghost")
	assert.NoError(t, err)
	assert.Nil(t, user)
}
