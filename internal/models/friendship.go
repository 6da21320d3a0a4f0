package models

import (
	"time"
)

// FriendshipStatus represents the confirmation state of a friendship edge.
type FriendshipStatus string

const (
	// FriendshipStatusPending indicates a one-directional, unconfirmed edge.
	FriendshipStatusPending FriendshipStatus = "pending"
	// FriendshipStatusConfirmed indicates both directions existed at last mutation.
	FriendshipStatusConfirmed FriendshipStatus = "confirmed"
)

// Friendship is a directed friendship edge owned by OwnerID.
// An edge owner->friend does not imply friend->owner; the edge is
// confirmed only while the reciprocal edge also exists. Edges live in a
// flat relation keyed by the (owner, friend) pair, with no
// back-references embedded in User.
type Friendship struct {
	ID        uint             `gorm:"primaryKey" json:"id"`
	OwnerID   uint             `gorm:"not null;uniqueIndex:idx_friendship_edge" json:"owner_id"`
	FriendID  uint             `gorm:"not null;uniqueIndex:idx_friendship_edge" json:"friend_id"`
	Status    FriendshipStatus `gorm:"type:varchar(20);default:'pending';index:idx_friendships_status" json:"status"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`

	// Relationships
	Owner  User `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Friend User `gorm:"foreignKey:FriendID" json:"friend,omitempty"`
}

// TableName specifies the table name for GORM
func (Friendship) TableName() string {
	return "friendships"
}
