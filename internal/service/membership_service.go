package service

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"group-decision/internal/invitecode"
	"group-decision/internal/model"
	"group-decision/internal/repository"
	"group-decision/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const maxGroupNameLength = 100

// MembershipService owns groups and memberships.
type MembershipService struct {
	groupRepo   *repository.GroupRepository
	memberRepo  *repository.GroupMemberRepository
	codes       invitecode.Generator
	maxAttempts int
}

func NewMembershipService(
	groupRepo *repository.GroupRepository,
	memberRepo *repository.GroupMemberRepository,
	codes invitecode.Generator,
	maxAttempts int,
) *MembershipService {
	if maxAttempts <= 0 {
		maxAttempts = 5
	}
	return &MembershipService{
		groupRepo:   groupRepo,
		memberRepo:  memberRepo,
		codes:       codes,
		maxAttempts: maxAttempts,
	}
}

type CreateGroupRequest struct {
	Name string `json:"name" binding:"required"`
}

type JoinGroupRequest struct {
	InviteCode string `json:"invite_code" binding:"required"`
}

// CreateGroup persists a group with a fresh invite code and makes the
// creator its admin. Retrying after a failure may create a second group.
func (s *MembershipService) CreateGroup(ctx context.Context, name, creatorID string) (*model.Group, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, validationError("group name must not be empty")
	}
	if utf8.RuneCountInString(name) > maxGroupNameLength {
		return nil, validationError("group name is too long")
	}
	if creatorID == "" {
		return nil, validationError("creator id is required")
	}

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		code, err := s.codes.Generate()
		if err != nil {
			return nil, storageError("generate invite code", err)
		}

		taken, err := s.groupRepo.InviteCodeExists(ctx, code)
		if err != nil {
			return nil, storageError("check invite code", err)
		}
		if taken {
			logger.L.Warn("Invite code collision, regenerating", zap.Int("attempt", attempt))
			continue
		}

		group := &model.Group{Name: name, InviteCode: code}
		err = s.groupRepo.Create(ctx, group, creatorID)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			logger.L.Warn("Invite code collision on insert, regenerating", zap.Int("attempt", attempt))
			continue
		}
		if err != nil {
			logger.L.Error("Failed to create group", zap.String("creatorID", creatorID), zap.Error(err))
			return nil, storageError("create group", err)
		}

		logger.L.Info("Group created",
			zap.String("groupID", group.ID),
			zap.String("creatorID", creatorID))
		return group, nil
	}

	logger.L.Error("Invite code space exhausted",
		zap.Int("attempts", s.maxAttempts),
		zap.String("creatorID", creatorID))
	return nil, ErrCodeSpaceExhausted
}

// JoinGroup redeems an invite code. Joining a group the user already belongs
// to returns the group without touching the existing membership.
func (s *MembershipService) JoinGroup(ctx context.Context, code, userID string) (*model.Group, error) {
	code = invitecode.Normalize(code)
	if code == "" {
		return nil, validationError("invite code is required")
	}
	if userID == "" {
		return nil, validationError("user id is required")
	}

	group, err := s.groupRepo.FindByInviteCode(ctx, code)
	if err != nil {
		return nil, storageError("find group by invite code", err)
	}
	if group == nil {
		return nil, notFound("no group matches this invite code")
	}

	_, created, err := s.memberRepo.AddMember(ctx, group.ID, userID, model.RoleMember)
	if err != nil {
		logger.L.Error("Failed to add member", zap.String("groupID", group.ID), zap.String("userID", userID), zap.Error(err))
		return nil, storageError("add member", err)
	}
	if created {
		logger.L.Info("User joined group", zap.String("groupID", group.ID), zap.String("userID", userID))
	}
	return group, nil
}

// LeaveGroup removes the caller's membership. Their votes are kept.
func (s *MembershipService) LeaveGroup(ctx context.Context, groupID, userID string) error {
	removed, err := s.memberRepo.RemoveMember(ctx, groupID, userID)
	if err != nil {
		logger.L.Error("Failed to remove member", zap.String("groupID", groupID), zap.String("userID", userID), zap.Error(err))
		return storageError("remove member", err)
	}
	if !removed {
		return notFound("you are not a member of this group")
	}
	logger.L.Info("User left group", zap.String("groupID", groupID), zap.String("userID", userID))
	return nil
}

func (s *MembershipService) ListMembers(ctx context.Context, groupID string) ([]model.GroupMember, error) {
	if err := s.requireGroup(ctx, groupID); err != nil {
		return nil, err
	}
	members, err := s.memberRepo.ListMembers(ctx, groupID)
	if err != nil {
		return nil, storageError("list members", err)
	}
	return members, nil
}

func (s *MembershipService) ListGroupsForUser(ctx context.Context, userID string) ([]repository.UserGroup, error) {
	groups, err := s.groupRepo.FindUserGroups(ctx, userID)
	if err != nil {
		return nil, storageError("list user groups", err)
	}
	return groups, nil
}

// RequireMember gates access to a group's data: ErrNotFound when the group
// does not exist, ErrForbidden when userID is not a member.
func (s *MembershipService) RequireMember(ctx context.Context, groupID, userID string) (*model.GroupMember, error) {
	if err := s.requireGroup(ctx, groupID); err != nil {
		return nil, err
	}
	member, err := s.memberRepo.FindMember(ctx, groupID, userID)
	if err != nil {
		return nil, storageError("find member", err)
	}
	if member == nil {
		return nil, forbidden("you are not a member of this group")
	}
	return member, nil
}

func (s *MembershipService) requireGroup(ctx context.Context, groupID string) error {
	group, err := s.groupRepo.FindByID(ctx, groupID)
	if err != nil {
		return storageError("find group", err)
	}
	if group == nil {
		return notFound("group not found")
	}
	return nil
}
