package tally

import (
	"math/rand"
	"testing"

	"group-decision/internal/model"

	"github.com/stretchr/testify/assert"
)

const (
	y = model.VoteYes
	n = model.VoteNo
	m = model.VoteMaybe
)

func TestRecompute(t *testing.T) {
	tests := []struct {
		name  string
		votes []model.VoteValue
		want  model.PropertyStatus
	}{
		{"no votes", nil, model.StatusVoting},
		{"clear yes majority", []model.VoteValue{y, y, n}, model.StatusApproved},
		{"yes/no tie", []model.VoteValue{y, n}, model.StatusMaybe},
		{"clear no majority", []model.VoteValue{n, n, n, y}, model.StatusRejected},
		{"maybe plurality beats single yes", []model.VoteValue{m, m, y}, model.StatusMaybe},
		{"single yes", []model.VoteValue{y}, model.StatusApproved},
		{"single no", []model.VoteValue{n}, model.StatusRejected},
		{"single maybe", []model.VoteValue{m}, model.StatusMaybe},
		{"yes ties maybe and beats no", []model.VoteValue{y, y, m, m, n}, model.StatusApproved},
		{"no ties maybe and beats yes", []model.VoteValue{n, m}, model.StatusRejected},
		{"three-way tie", []model.VoteValue{y, n, m}, model.StatusMaybe},
		{"flipped yes to no", []model.VoteValue{y, n, n}, model.StatusRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Recompute(tt.votes))
		})
	}
}

func TestRecompute_OrderIndependent(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	values := []model.VoteValue{y, n, m}

	for i := 0; i < 200; i++ {
		votes := make([]model.VoteValue, r.Intn(12))
		for j := range votes {
			votes[j] = values[r.Intn(len(values))]
		}
		want := Recompute(votes)
		for k := 0; k < 5; k++ {
			shuffled := append([]model.VoteValue(nil), votes...)
			r.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
			assert.Equal(t, want, Recompute(shuffled), "votes %v", votes)
		}
	}
}

func TestCount(t *testing.T) {
	c := Count([]model.VoteValue{y, y, n, m, "bogus"})
	assert.Equal(t, Counts{Yes: 2, No: 1, Maybe: 1}, c)
	assert.Equal(t, 4, c.Total())
}
