package repository

import (
	"context"
	"testing"

	"group-decision/internal/model"
	"group-decision/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVoteRepository_Upsert(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewVoteRepository(db)
	ctx := context.Background()

	first, err := repo.Upsert(ctx, "g-1", "p-1", "alice", model.VoteYes)
	require.NoError(t, err)
	second, err := repo.Upsert(ctx, "g-1", "p-1", "alice", model.VoteNo)
	require.NoError(t, err)
	assert.False(t, second.CastAt.Before(first.CastAt))

	votes, err := repo.List(ctx, "g-1", "p-1")
	require.NoError(t, err)
	require.Len(t, votes, 1)
	assert.Equal(t, model.VoteNo, votes[0].Value)

	_, err = repo.Upsert(ctx, "g-1", "p-1", "bob", model.VoteMaybe)
	require.NoError(t, err)
	_, err = repo.Upsert(ctx, "g-1", "p-2", "alice", model.VoteYes)
	require.NoError(t, err)
	_, err = repo.Upsert(ctx, "g-2", "p-1", "alice", model.VoteYes)
	require.NoError(t, err)

	values, err := repo.Values(ctx, "g-1", "p-1")
	require.NoError(t, err)
	assert.ElementsMatch(t, []model.VoteValue{model.VoteNo, model.VoteMaybe}, values)

	var count int64
	require.NoError(t, db.Model(&model.Vote{}).Count(&count).Error)
	assert.EqualValues(t, 4, count)
}

func TestVoteRepository_List_PreloadsProfiles(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewVoteRepository(db)
	ctx := context.Background()
	testutil.CreateUser(t, db, "alice", "Alice")

	_, err := repo.Upsert(ctx, "g-1", "p-1", "alice", model.VoteYes)
	require.NoError(t, err)

	votes, err := repo.List(ctx, "g-1", "p-1")
	require.NoError(t, err)
	require.Len(t, votes, 1)
	assert.Equal(t, "Alice", votes[0].User.Username)
}
