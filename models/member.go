package models

import (
	"time"
)

// Photo is the remote copy of a member's profile picture. The key identifies
// the object at the image host so it can be deleted on replacement.
type Photo struct {
	Key string `json:"-"`
	URL string `json:"url"`
}

type Geo struct {
	Lat float64 `gorm:"default:0" json:"lat"`
	Lon float64 `gorm:"default:0" json:"lon"`
}

// Member is a registered account. Age and Zodiac are derived from the birth
// date by the service layer right before every save and must never be set by
// a caller. Deletes are hard deletes so unique nicknames and emails become
// available again.
type Member struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
	Nickname   string    `gorm:"uniqueIndex;not null" json:"nickname"`
	Email      string    `gorm:"uniqueIndex;not null" json:"email"`
	FirstName  string    `gorm:"not null" json:"firstName"`
	LastName   string    `gorm:"not null" json:"lastName"`
	Street     string    `gorm:"not null" json:"street"`
	City       string    `gorm:"not null" json:"city"`
	Zip        string    `gorm:"not null" json:"zip"`
	BirthDay   int       `gorm:"not null" json:"birthDay"`
	BirthMonth int       `gorm:"not null" json:"birthMonth"`
	BirthYear  int       `gorm:"not null" json:"birthYear"`
	Statement  string    `json:"statement"`
	Paused     bool      `gorm:"default:false" json:"paused"`
	IsAdmin    bool      `gorm:"default:false" json:"isAdmin"`
	Favorites  []*Member `gorm:"many2many:member_favorites" json:"favorites,omitempty"`
	Photo      Photo     `gorm:"embedded;embeddedPrefix:photo_" json:"photo"`
	Geo        Geo       `gorm:"embedded;embeddedPrefix:geo_" json:"geo"`
	Age        int       `json:"age"`
	Zodiac     string    `json:"zodiac"`
}
