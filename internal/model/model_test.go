package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroup_BeforeCreate(t *testing.T) {
	t.Run("generates UUID if not set", func(t *testing.T) {
		g := &Group{}
		require.NoError(t, g.BeforeCreate(nil))
		_, err := uuid.Parse(g.ID)
		assert.NoError(t, err)
	})

	t.Run("preserves existing ID", func(t *testing.T) {
		g := &Group{ID: "fixed"}
		require.NoError(t, g.BeforeCreate(nil))
		assert.Equal(t, "fixed", g.ID)
	})
}

func TestGroupProperty_BeforeCreate(t *testing.T) {
	p := &GroupProperty{}
	require.NoError(t, p.BeforeCreate(nil))
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, StatusVoting, p.Status)

	p = &GroupProperty{Status: StatusApproved}
	require.NoError(t, p.BeforeCreate(nil))
	assert.Equal(t, StatusApproved, p.Status)
}

func TestVoteValue_Valid(t *testing.T) {
	tests := []struct {
		value VoteValue
		want  bool
	}{
		{VoteYes, true},
		{VoteNo, true},
		{VoteMaybe, true},
		{"", false},
		{"YES", false},
		{"abstain", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.value.Valid(), "value %q", tt.value)
	}
}
