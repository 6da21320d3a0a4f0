// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a registered user of the Kinograph catalog.
// Users are created by the registration flow; the engagement core only
// reads them and attaches friendship edges, likes, and reactions.
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Email     string         `gorm:"unique;not null" json:"email"`
	Login     string         `gorm:"unique;not null" json:"login"`
	Name      string         `json:"name"`
	Birthday  time.Time      `json:"birthday"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
