package models

import (
	"time"
)

// Heart is a directed like from sender to recipient. The composite unique
// index keeps at most one heart per ordered pair; the storage layer closes
// the race between the existence check and the insert.
type Heart struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	SenderID    uint      `gorm:"not null;uniqueIndex:idx_hearts_pair" json:"sender"`
	RecipientID uint      `gorm:"not null;uniqueIndex:idx_hearts_pair" json:"recipient"`
	Text        string    `gorm:"not null" json:"text"`
	Confirmed   bool      `gorm:"default:false" json:"confirmed"`
}

// Visit records that one member viewed another's profile. Repeat visits are
// allowed and each gets its own row.
type Visit struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	VisitorID uint      `gorm:"not null;index" json:"visitor"`
	TargetID  uint      `gorm:"not null;index" json:"targetMember"`
}

type Message struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	SenderID    uint      `gorm:"not null;index" json:"sender"`
	RecipientID uint      `gorm:"not null;index" json:"recipient"`
	Text        string    `gorm:"not null" json:"text"`
	Read        bool      `gorm:"default:false" json:"read"`
}
