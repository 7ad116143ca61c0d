package service

import (
	"context"
	"strings"

	"group-decision/internal/model"
	"group-decision/internal/repository"
	"group-decision/pkg/logger"

	"go.uber.org/zap"
)

type NominationService struct {
	groupRepo  *repository.GroupRepository
	memberRepo *repository.GroupMemberRepository
	propRepo   *repository.GroupPropertyRepository
}

func NewNominationService(
	groupRepo *repository.GroupRepository,
	memberRepo *repository.GroupMemberRepository,
	propRepo *repository.GroupPropertyRepository,
) *NominationService {
	return &NominationService{
		groupRepo:  groupRepo,
		memberRepo: memberRepo,
		propRepo:   propRepo,
	}
}

type AddPropertyRequest struct {
	PropertyID string `json:"property_id" binding:"required"`
}

// ParsePropertyFilter accepts "active" (the default when empty) or "rejected".
func ParsePropertyFilter(s string) (repository.PropertyFilter, error) {
	switch repository.PropertyFilter(strings.ToLower(strings.TrimSpace(s))) {
	case "", repository.FilterActive:
		return repository.FilterActive, nil
	case repository.FilterRejected:
		return repository.FilterRejected, nil
	default:
		return "", validationError("filter must be 'active' or 'rejected'")
	}
}

// AddProperty nominates a catalog property to the group. Nominating a
// property twice returns the first nomination unchanged.
func (s *NominationService) AddProperty(ctx context.Context, groupID, propertyID, userID string) (*model.GroupProperty, error) {
	propertyID = strings.TrimSpace(propertyID)
	if propertyID == "" {
		return nil, validationError("property id is required")
	}

	member, err := s.memberRepo.FindMember(ctx, groupID, userID)
	if err != nil {
		return nil, storageError("find member", err)
	}
	if member == nil {
		return nil, forbidden("you are not a member of this group")
	}

	gp, created, err := s.propRepo.FindOrCreate(ctx, groupID, propertyID, userID)
	if err != nil {
		logger.L.Error("Failed to nominate property",
			zap.String("groupID", groupID),
			zap.String("propertyID", propertyID),
			zap.Error(err))
		return nil, storageError("nominate property", err)
	}
	if created {
		logger.L.Info("Property nominated",
			zap.String("groupID", groupID),
			zap.String("propertyID", propertyID),
			zap.String("userID", userID))
	}
	return gp, nil
}

func (s *NominationService) ListProperties(ctx context.Context, groupID string, filter repository.PropertyFilter) ([]model.GroupProperty, error) {
	group, err := s.groupRepo.FindByID(ctx, groupID)
	if err != nil {
		return nil, storageError("find group", err)
	}
	if group == nil {
		return nil, notFound("group not found")
	}

	props, err := s.propRepo.List(ctx, groupID, filter)
	if err != nil {
		return nil, storageError("list properties", err)
	}
	return props, nil
}
