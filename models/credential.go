package models

import (
	"time"
)

// Credential holds a member's bcrypt hash, one row per member. It is created
// inside the signup transaction so a member never exists without one.
type Credential struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	MemberID  uint      `gorm:"uniqueIndex;not null" json:"member"`
	Hash      string    `gorm:"not null" json:"-"`
}

// ResetToken is a single-use secret for password reset. It is deleted when
// consumed and ignored once ExpiresAt has passed.
type ResetToken struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Token     string    `gorm:"uniqueIndex;not null" json:"-"`
	MemberID  uint      `gorm:"not null;index" json:"member"`
	ExpiresAt time.Time `json:"expiresAt"`
}
