package repository

import (
	"context"
	"errors"
	"time"

	"group-decision/internal/model"

	"gorm.io/gorm"
)

type GroupRepository struct {
	db *gorm.DB
}

func NewGroupRepository(db *gorm.DB) *GroupRepository {
	return &GroupRepository{db: db}
}

// WithTx returns a copy bound to tx.
func (r *GroupRepository) WithTx(tx *gorm.DB) *GroupRepository {
	return &GroupRepository{db: tx}
}

// Create inserts the group and its creator's admin membership in one
// transaction. A failure leaves neither row behind.
func (r *GroupRepository) Create(ctx context.Context, group *model.Group, creatorID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(group).Error; err != nil {
			return err
		}
		admin := &model.GroupMember{
			GroupID:  group.ID,
			UserID:   creatorID,
			Role:     model.RoleAdmin,
			JoinedAt: group.CreatedAt,
		}
		return tx.Create(admin).Error
	})
}

// FindByID returns nil, nil when the group does not exist.
func (r *GroupRepository) FindByID(ctx context.Context, groupID string) (*model.Group, error) {
	var group model.Group
	err := r.db.WithContext(ctx).First(&group, "id = ?", groupID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &group, nil
}

// FindByInviteCode expects an already normalised code. Returns nil, nil when unknown.
func (r *GroupRepository) FindByInviteCode(ctx context.Context, code string) (*model.Group, error) {
	var group model.Group
	err := r.db.WithContext(ctx).Where("invite_code = ?", code).First(&group).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &group, nil
}

func (r *GroupRepository) InviteCodeExists(ctx context.Context, code string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Group{}).Where("invite_code = ?", code).Count(&count).Error
	return count > 0, err
}

// UserGroup is a group as seen by one of its members.
type UserGroup struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	InviteCode  string     `json:"invite_code"`
	CreatedAt   time.Time  `json:"created_at"`
	Role        model.Role `json:"role"`
	MemberCount int64      `json:"member_count"`
}

// FindUserGroups lists the groups userID belongs to, newest first, with the
// caller's role and the current member count.
func (r *GroupRepository) FindUserGroups(ctx context.Context, userID string) ([]UserGroup, error) {
	var groups []UserGroup
	err := r.db.WithContext(ctx).
		Table("decision_groups AS g").
		Select("g.id, g.name, g.invite_code, g.created_at, gm.role, " +
			"(SELECT COUNT(*) FROM group_members AS m WHERE m.group_id = g.id) AS member_count").
		Joins("JOIN group_members AS gm ON gm.group_id = g.id AND gm.user_id = ?", userID).
		Order("g.created_at DESC").
		Scan(&groups).Error
	return groups, err
}
