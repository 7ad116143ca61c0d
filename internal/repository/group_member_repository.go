package repository

import (
	"context"
	"errors"
	"time"

	"group-decision/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GroupMemberRepository struct {
	db *gorm.DB
}

func NewGroupMemberRepository(db *gorm.DB) *GroupMemberRepository {
	return &GroupMemberRepository{db: db}
}

func (r *GroupMemberRepository) WithTx(tx *gorm.DB) *GroupMemberRepository {
	return &GroupMemberRepository{db: tx}
}

// AddMember inserts a membership unless one already exists for the pair, in
// which case the existing row is left untouched. It returns the stored row
// and whether it was created by this call.
func (r *GroupMemberRepository) AddMember(ctx context.Context, groupID, userID string, role model.Role) (*model.GroupMember, bool, error) {
	if role == "" {
		role = model.RoleMember
	}
	member := &model.GroupMember{
		GroupID:  groupID,
		UserID:   userID,
		Role:     role,
		JoinedAt: time.Now(),
	}
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(member)
	if res.Error != nil {
		return nil, false, res.Error
	}
	if res.RowsAffected == 1 {
		return member, true, nil
	}

	existing, err := r.FindMember(ctx, groupID, userID)
	if err != nil {
		return nil, false, err
	}
	if existing == nil {
		return nil, false, gorm.ErrRecordNotFound
	}
	return existing, false, nil
}

// RemoveMember reports whether a membership row was deleted.
func (r *GroupMemberRepository) RemoveMember(ctx context.Context, groupID, userID string) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Delete(&model.GroupMember{})
	return res.RowsAffected > 0, res.Error
}

// FindMember returns nil, nil when userID is not a member of groupID.
func (r *GroupMemberRepository) FindMember(ctx context.Context, groupID, userID string) (*model.GroupMember, error) {
	var member model.GroupMember
	err := r.db.WithContext(ctx).Where("group_id = ? AND user_id = ?", groupID, userID).First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

// ListMembers returns the group's members with their profiles, in join order.
func (r *GroupMemberRepository) ListMembers(ctx context.Context, groupID string) ([]model.GroupMember, error) {
	var members []model.GroupMember
	err := r.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Preload("User").
		Order("joined_at ASC").
		Order("user_id ASC").
		Find(&members).Error
	return members, err
}
