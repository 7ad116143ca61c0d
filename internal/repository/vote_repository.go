package repository

import (
	"context"
	"time"

	"group-decision/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VoteRepository struct {
	db *gorm.DB
}

func NewVoteRepository(db *gorm.DB) *VoteRepository {
	return &VoteRepository{db: db}
}

func (r *VoteRepository) WithTx(tx *gorm.DB) *VoteRepository {
	return &VoteRepository{db: tx}
}

// Upsert writes the user's vote, replacing value and cast time of any
// previous vote on the same property in the same group.
func (r *VoteRepository) Upsert(ctx context.Context, groupID, propertyID, userID string, value model.VoteValue) (*model.Vote, error) {
	vote := &model.Vote{
		GroupID:    groupID,
		PropertyID: propertyID,
		UserID:     userID,
		Value:      value,
		CastAt:     time.Now(),
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "group_id"}, {Name: "property_id"}, {Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "cast_at"}),
		}).
		Create(vote).Error
	if err != nil {
		return nil, err
	}
	return vote, nil
}

// Values returns the latest committed vote values on a property, in no
// particular order. It is a shared-lock read so that, inside a transaction,
// votes committed after the transaction's snapshot are still counted.
func (r *VoteRepository) Values(ctx context.Context, groupID, propertyID string) ([]model.VoteValue, error) {
	var values []model.VoteValue
	err := withLock(r.db.WithContext(ctx), "SHARE").Model(&model.Vote{}).
		Where("group_id = ? AND property_id = ?", groupID, propertyID).
		Pluck("value", &values).Error
	return values, err
}

// List returns the votes on a property with voter profiles, oldest first.
func (r *VoteRepository) List(ctx context.Context, groupID, propertyID string) ([]model.Vote, error) {
	var votes []model.Vote
	err := r.db.WithContext(ctx).
		Where("group_id = ? AND property_id = ?", groupID, propertyID).
		Preload("User").
		Order("cast_at ASC").
		Order("user_id ASC").
		Find(&votes).Error
	return votes, err
}
