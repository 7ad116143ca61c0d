package model

import "time"

// User mirrors the identity provider's profile claims. The service never
// authenticates against it.
type User struct {
	ID        string `gorm:"type:varchar(64);primaryKey" json:"id"`
	Username  string `gorm:"type:varchar(100)" json:"username"`
	Avatar    string `gorm:"type:varchar(255)" json:"avatar"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
