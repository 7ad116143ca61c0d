package repository

import (
	"context"
	"errors"

	"group-decision/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository stores the profile mirror fed by identity-provider claims.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Upsert inserts the profile or refreshes username and avatar.
func (r *UserRepository) Upsert(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"username", "avatar", "updated_at"}),
		}).
		Create(user).Error
}

// FindByID returns nil, nil for unknown users.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}
