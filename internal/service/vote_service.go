package service

import (
	"context"
	"strings"
	"time"

	"group-decision/internal/events"
	"group-decision/internal/model"
	"group-decision/internal/repository"
	"group-decision/internal/tally"
	"group-decision/pkg/db"
	"group-decision/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type VoteService struct {
	db         *gorm.DB
	memberRepo *repository.GroupMemberRepository
	propRepo   *repository.GroupPropertyRepository
	voteRepo   *repository.VoteRepository
	publisher  events.Publisher
}

func NewVoteService(
	db *gorm.DB,
	memberRepo *repository.GroupMemberRepository,
	propRepo *repository.GroupPropertyRepository,
	voteRepo *repository.VoteRepository,
	publisher events.Publisher,
) *VoteService {
	if publisher == nil {
		publisher = events.NewLogPublisher()
	}
	return &VoteService{
		db:         db,
		memberRepo: memberRepo,
		propRepo:   propRepo,
		voteRepo:   voteRepo,
		publisher:  publisher,
	}
}

type CastVoteRequest struct {
	Value string `json:"value" binding:"required"`
}

// ParseVoteValue accepts yes, no or maybe in any case.
func ParseVoteValue(s string) (model.VoteValue, error) {
	v := model.VoteValue(strings.ToLower(strings.TrimSpace(s)))
	if !v.Valid() {
		return "", validationError("vote must be one of yes, no, maybe")
	}
	return v, nil
}

// maxCastAttempts bounds how often CastVote runs its transaction when InnoDB
// aborts it with a deadlock or lock wait timeout.
const maxCastAttempts = 2

// castResult is what one committed CastVote transaction observed.
type castResult struct {
	gp       *model.GroupProperty
	previous model.PropertyStatus
	counts   tally.Counts
}

// CastVote records the user's vote, replacing any earlier one, and
// recomputes the nomination's status before returning. The upsert, the
// vote read and the status write share one transaction that first locks the
// nomination row, and every read the recompute depends on is a locking read,
// so concurrent voters never recompute from a stale vote set. A property not
// yet nominated is nominated on first vote.
func (s *VoteService) CastVote(ctx context.Context, groupID, propertyID, userID string, value model.VoteValue) (*model.GroupProperty, error) {
	if !value.Valid() {
		return nil, validationError("vote must be one of yes, no, maybe")
	}
	propertyID = strings.TrimSpace(propertyID)
	if propertyID == "" {
		return nil, validationError("property id is required")
	}

	var (
		res castResult
		err error
	)
	for attempt := 1; attempt <= maxCastAttempts; attempt++ {
		res, err = s.castVoteTx(ctx, groupID, propertyID, userID, value)
		if err == nil || !db.IsLockConflict(err) {
			break
		}
		logger.L.Warn("CastVote lock conflict, retrying",
			zap.String("groupID", groupID),
			zap.String("propertyID", propertyID),
			zap.Int("attempt", attempt),
			zap.Error(err))
	}
	if err != nil {
		logger.L.Warn("CastVote failed",
			zap.String("groupID", groupID),
			zap.String("propertyID", propertyID),
			zap.String("userID", userID),
			zap.Error(err))
		return nil, storageError("cast vote", err)
	}
	gp := res.gp

	logger.L.Info("Vote cast",
		zap.String("groupID", groupID),
		zap.String("propertyID", propertyID),
		zap.String("userID", userID),
		zap.String("value", string(value)),
		zap.String("status", string(gp.Status)))

	if gp.Status != res.previous {
		evt := events.StatusChanged{
			GroupID:    groupID,
			PropertyID: propertyID,
			Previous:   res.previous,
			Current:    gp.Status,
			Counts:     res.counts,
			ChangedAt:  time.Now().UTC(),
		}
		// publish failures never fail a committed vote
		if err := s.publisher.PublishStatusChanged(ctx, evt); err != nil {
			logger.L.Error("Failed to publish status change",
				zap.String("groupID", groupID),
				zap.String("propertyID", propertyID),
				zap.Error(err))
		}
	}
	return gp, nil
}

func (s *VoteService) castVoteTx(ctx context.Context, groupID, propertyID, userID string, value model.VoteValue) (castResult, error) {
	var res castResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// The nomination lock comes first so no plain read fixes the
		// transaction's snapshot before concurrent voters are serialised.
		props := s.propRepo.WithTx(tx)
		gp, err := props.FindForUpdate(ctx, groupID, propertyID)
		if err != nil {
			return storageError("lock nomination", err)
		}

		member, err := s.memberRepo.WithTx(tx).FindMember(ctx, groupID, userID)
		if err != nil {
			return storageError("find member", err)
		}
		if member == nil {
			return forbidden("you are not a member of this group")
		}

		if gp == nil {
			if _, _, err = props.FindOrCreate(ctx, groupID, propertyID, userID); err != nil {
				return err
			}
			if gp, err = props.FindForUpdate(ctx, groupID, propertyID); err != nil {
				return err
			}
			if gp == nil {
				return notFound("nomination disappeared")
			}
		}
		previous := gp.Status

		votes := s.voteRepo.WithTx(tx)
		if _, err := votes.Upsert(ctx, groupID, propertyID, userID, value); err != nil {
			return err
		}
		values, err := votes.Values(ctx, groupID, propertyID)
		if err != nil {
			return err
		}

		counts := tally.Count(values)
		if next := counts.Status(); next != gp.Status {
			if err := props.UpdateStatus(ctx, gp.ID, next); err != nil {
				return err
			}
			gp.Status = next
		}
		res = castResult{gp: gp, previous: previous, counts: counts}
		return nil
	})
	return res, err
}

// ListVotes returns the live vote set with voter profiles.
func (s *VoteService) ListVotes(ctx context.Context, groupID, propertyID string) ([]model.Vote, error) {
	votes, err := s.voteRepo.List(ctx, groupID, propertyID)
	if err != nil {
		return nil, storageError("list votes", err)
	}
	return votes, nil
}
