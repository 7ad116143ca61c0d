package repository

import (
	"context"
	"errors"

	"group-decision/internal/model"
	"group-decision/pkg/db"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PropertyFilter string

const (
	FilterActive   PropertyFilter = "active"
	FilterRejected PropertyFilter = "rejected"
)

type GroupPropertyRepository struct {
	db *gorm.DB
}

func NewGroupPropertyRepository(db *gorm.DB) *GroupPropertyRepository {
	return &GroupPropertyRepository{db: db}
}

func (r *GroupPropertyRepository) WithTx(tx *gorm.DB) *GroupPropertyRepository {
	return &GroupPropertyRepository{db: tx}
}

// FindOrCreate nominates propertyID to groupID unless it already is, and
// returns the stored nomination either way. created reports whether this
// call inserted it.
func (r *GroupPropertyRepository) FindOrCreate(ctx context.Context, groupID, propertyID, addedBy string) (gp *model.GroupProperty, created bool, err error) {
	gp = &model.GroupProperty{
		GroupID:       groupID,
		PropertyID:    propertyID,
		AddedByUserID: addedBy,
		Status:        model.StatusVoting,
	}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "group_id"}, {Name: "property_id"}},
			DoNothing: true,
		}).
		Create(gp)
	if res.Error != nil {
		return nil, false, res.Error
	}
	if res.RowsAffected == 1 {
		return gp, true, nil
	}

	existing, err := r.Find(ctx, groupID, propertyID)
	if err != nil {
		return nil, false, err
	}
	if existing == nil {
		return nil, false, gorm.ErrRecordNotFound
	}
	return existing, false, nil
}

// Find returns nil, nil when the property is not nominated to the group.
func (r *GroupPropertyRepository) Find(ctx context.Context, groupID, propertyID string) (*model.GroupProperty, error) {
	return r.find(r.db.WithContext(ctx), groupID, propertyID)
}

// FindForUpdate is Find with an exclusive row lock held until the
// surrounding transaction ends. Being a locking read it sees the latest
// committed row, not the transaction's snapshot.
func (r *GroupPropertyRepository) FindForUpdate(ctx context.Context, groupID, propertyID string) (*model.GroupProperty, error) {
	return r.find(withLock(r.db.WithContext(ctx), "UPDATE"), groupID, propertyID)
}

// withLock adds FOR <strength> to q. Dialects without row locks get a plain
// read; sqlite serialises writers on its own.
func withLock(q *gorm.DB, strength string) *gorm.DB {
	if !db.SupportsRowLocks(q) {
		return q
	}
	return q.Clauses(clause.Locking{Strength: strength})
}

func (r *GroupPropertyRepository) find(q *gorm.DB, groupID, propertyID string) (*model.GroupProperty, error) {
	var gp model.GroupProperty
	err := q.Where("group_id = ? AND property_id = ?", groupID, propertyID).First(&gp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &gp, nil
}

// List returns nominations of groupID, oldest first. FilterActive is every
// status except rejected.
func (r *GroupPropertyRepository) List(ctx context.Context, groupID string, filter PropertyFilter) ([]model.GroupProperty, error) {
	q := r.db.WithContext(ctx).Where("group_id = ?", groupID)
	switch filter {
	case FilterRejected:
		q = q.Where("status = ?", model.StatusRejected)
	default:
		q = q.Where("status <> ?", model.StatusRejected)
	}

	var props []model.GroupProperty
	err := q.Order("created_at ASC").Order("id ASC").Find(&props).Error
	return props, err
}

func (r *GroupPropertyRepository) UpdateStatus(ctx context.Context, id string, status model.PropertyStatus) error {
	return r.db.WithContext(ctx).Model(&model.GroupProperty{}).Where("id = ?", id).Update("status", status).Error
}
