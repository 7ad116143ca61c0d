package model

import "time"

type VoteValue string

const (
	VoteYes   VoteValue = "yes"
	VoteNo    VoteValue = "no"
	VoteMaybe VoteValue = "maybe"
)

func (v VoteValue) Valid() bool {
	switch v {
	case VoteYes, VoteNo, VoteMaybe:
		return true
	}
	return false
}

// Vote is keyed by (GroupID, PropertyID, UserID). Casting again overwrites
// Value and CastAt.
type Vote struct {
	GroupID    string    `gorm:"type:varchar(36);primaryKey;autoIncrement:false" json:"group_id"`
	PropertyID string    `gorm:"type:varchar(64);primaryKey;autoIncrement:false" json:"property_id"`
	UserID     string    `gorm:"type:varchar(64);primaryKey;autoIncrement:false" json:"user_id"`
	Value      VoteValue `gorm:"type:varchar(10);not null" json:"value"`
	CastAt     time.Time `gorm:"not null" json:"cast_at"`

	User User `gorm:"foreignKey:UserID;references:ID" json:"-"`
}
