package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PropertyStatus string

const (
	StatusVoting   PropertyStatus = "voting"
	StatusApproved PropertyStatus = "approved"
	StatusRejected PropertyStatus = "rejected"
	StatusMaybe    PropertyStatus = "maybe"
)

// GroupProperty nominates a catalog property to a group. Status is derived
// from the vote set and only written by the vote path.
type GroupProperty struct {
	ID            string         `gorm:"type:varchar(36);primaryKey" json:"id"`
	GroupID       string         `gorm:"type:varchar(36);not null;uniqueIndex:idx_group_property" json:"group_id"`
	PropertyID    string         `gorm:"type:varchar(64);not null;uniqueIndex:idx_group_property" json:"property_id"`
	AddedByUserID string         `gorm:"type:varchar(64);not null" json:"added_by_user_id"`
	Status        PropertyStatus `gorm:"type:varchar(20);not null;default:'voting';index" json:"status"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

func (p *GroupProperty) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Status == "" {
		p.Status = StatusVoting
	}
	return nil
}
