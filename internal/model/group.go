package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Group struct {
	ID         string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name       string    `gorm:"type:varchar(100);not null" json:"name"`
	InviteCode string    `gorm:"type:varchar(16);not null;uniqueIndex:idx_group_invite_code" json:"invite_code"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Members []GroupMember `gorm:"foreignKey:GroupID" json:"-"`
}

// "groups" is a reserved word in MySQL 8.
func (Group) TableName() string { return "decision_groups" }

func (g *Group) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return nil
}
