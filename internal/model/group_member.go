package model

import "time"

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// GroupMember is keyed by (GroupID, UserID); a user holds at most one row per group.
type GroupMember struct {
	GroupID   string    `gorm:"type:varchar(36);primaryKey;autoIncrement:false" json:"group_id"`
	UserID    string    `gorm:"type:varchar(64);primaryKey;autoIncrement:false;index" json:"user_id"`
	Role      Role      `gorm:"type:varchar(20);not null;default:'member'" json:"role"`
	JoinedAt  time.Time `gorm:"not null" json:"joined_at"`
	UpdatedAt time.Time `json:"-"`

	User User `gorm:"foreignKey:UserID;references:ID" json:"-"`
}
