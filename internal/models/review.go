package models

import (
	"time"

	"gorm.io/gorm"
)

// Review is a user's review of a film. Useful is a cached derived value:
// it always equals the net sum of +1 per positive and -1 per negative
// reaction currently recorded. Only the review service mutates it, in
// the same unit of work as the reaction change.
type Review struct {
	ID         uint           `gorm:"primaryKey" json:"review_id"`
	FilmID     uint           `gorm:"not null;index" json:"film_id"`
	UserID     uint           `gorm:"not null;index" json:"user_id"`
	Content    string         `gorm:"not null" json:"content"`
	IsPositive bool           `json:"is_positive"`
	Useful     int            `gorm:"not null;default:0" json:"useful"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"-"`
	Film Film `gorm:"foreignKey:FilmID" json:"-"`
}

// TableName specifies the table name for GORM
func (Review) TableName() string {
	return "reviews"
}

// ReviewReaction is a user's single current vote on a review.
// At most one reaction per (review, user) pair exists at any time;
// changing polarity replaces the row rather than adding a second one.
type ReviewReaction struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ReviewID   uint      `gorm:"not null;uniqueIndex:idx_review_user" json:"review_id"`
	UserID     uint      `gorm:"not null;uniqueIndex:idx_review_user" json:"user_id"`
	IsPositive bool      `json:"is_positive"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM
func (ReviewReaction) TableName() string {
	return "review_reactions"
}
