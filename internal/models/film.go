package models

import (
	"time"

	"gorm.io/gorm"
)

// Genre is a reference-data genre a film can belong to.
type Genre struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"unique;not null" json:"name"`
}

// TableName specifies the table name for GORM
func (Genre) TableName() string {
	return "genres"
}

// MpaRating is an MPA age rating (G, PG, PG-13, R, NC-17).
type MpaRating struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"unique;not null" json:"name"`
}

// TableName specifies the table name for GORM
func (MpaRating) TableName() string {
	return "mpa_ratings"
}

// Director is a reference-data film director.
type Director struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null" json:"name"`
}

// TableName specifies the table name for GORM
func (Director) TableName() string {
	return "directors"
}

// Film represents a catalog film. Like membership is kept in the likes
// table; LikesCount is computed at query time and never persisted.
type Film struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"not null" json:"name"`
	Description string     `json:"description"`
	ReleaseDate time.Time  `json:"release_date"`
	Duration    int        `json:"duration"`
	MpaID       *uint      `json:"mpa_id,omitempty"`
	Mpa         *MpaRating `gorm:"foreignKey:MpaID" json:"mpa,omitempty"`
	Genres      []Genre    `gorm:"many2many:film_genres" json:"genres,omitempty"`
	Directors   []Director `gorm:"many2many:film_directors" json:"directors,omitempty"`
	// LikesCount is read-only; populated by ranked queries via subquery
	LikesCount int            `gorm:"->;-:migration" json:"likes_count"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
