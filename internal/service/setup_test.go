package service

import (
	"context"
	"sync"
	"testing"

	"group-decision/internal/events"
	"group-decision/internal/invitecode"
	"group-decision/internal/repository"
	"group-decision/internal/testutil"

	"gorm.io/gorm"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.StatusChanged
	err    error
}

func (p *recordingPublisher) PublishStatusChanged(_ context.Context, evt events.StatusChanged) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evt)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) snapshot() []events.StatusChanged {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]events.StatusChanged(nil), p.events...)
}

// sequenceGenerator hands out codes in order and repeats the last one forever.
type sequenceGenerator struct {
	mu    sync.Mutex
	codes []string
	calls int
}

func (g *sequenceGenerator) Generate() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	i := g.calls
	if i >= len(g.codes) {
		i = len(g.codes) - 1
	}
	g.calls++
	return g.codes[i], nil
}

type testEnv struct {
	db          *gorm.DB
	memberships *MembershipService
	nominations *NominationService
	votes       *VoteService
	publisher   *recordingPublisher
}

func setupTestEnv(t *testing.T) *testEnv {
	return setupTestEnvWithGenerator(t, invitecode.NewRandomGenerator(invitecode.DefaultLength))
}

func setupTestEnvWithGenerator(t *testing.T, codes invitecode.Generator) *testEnv {
	t.Helper()

	db := testutil.NewDB(t)
	groupRepo := repository.NewGroupRepository(db)
	memberRepo := repository.NewGroupMemberRepository(db)
	propRepo := repository.NewGroupPropertyRepository(db)
	voteRepo := repository.NewVoteRepository(db)
	pub := &recordingPublisher{}

	return &testEnv{
		db:          db,
		memberships: NewMembershipService(groupRepo, memberRepo, codes, 5),
		nominations: NewNominationService(groupRepo, memberRepo, propRepo),
		votes:       NewVoteService(db, memberRepo, propRepo, voteRepo, pub),
		publisher:   pub,
	}
}
