package models

import (
	"time"
)

// Like represents a user's like on a film.
// The combination of UserID and FilmID must be unique; the unique index
// makes the insert path atomic under concurrent requests.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_user_film" json:"user_id"`
	FilmID    uint      `gorm:"not null;uniqueIndex:idx_user_film" json:"film_id"`
	CreatedAt time.Time `json:"created_at"`
}
