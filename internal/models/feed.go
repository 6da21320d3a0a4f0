package models

import (
	"time"
)

// FeedEventType identifies which engagement mechanism produced an event.
type FeedEventType string

// FeedOperation describes what happened to the entity.
type FeedOperation string

const (
	FeedEventFriend FeedEventType = "FRIEND"
	FeedEventLike   FeedEventType = "LIKE"
	FeedEventReview FeedEventType = "REVIEW"

	FeedOperationAdd    FeedOperation = "ADD"
	FeedOperationRemove FeedOperation = "REMOVE"
	FeedOperationUpdate FeedOperation = "UPDATE"
)

// FeedEvent is a row in a user's activity feed: who did what to which
// entity (friend id, film id, or review id depending on the event type).
type FeedEvent struct {
	ID        uint          `gorm:"primaryKey" json:"event_id"`
	UserID    uint          `gorm:"not null;index" json:"user_id"`
	EntityID  uint          `gorm:"not null" json:"entity_id"`
	EventType FeedEventType `gorm:"type:varchar(20);not null" json:"event_type"`
	Operation FeedOperation `gorm:"type:varchar(20);not null" json:"operation"`
	CreatedAt time.Time     `json:"timestamp"`
}

// TableName specifies the table name for GORM
func (FeedEvent) TableName() string {
	return "feed_events"
}
