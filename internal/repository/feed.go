package repository

import (
	"context"

	"kinograph/internal/models"

	"gorm.io/gorm"
)

// FeedRepository defines persistence operations for activity feed events.
type FeedRepository interface {
	Record(ctx context.Context, event *models.FeedEvent) error
	ListByUser(ctx context.Context, userID uint, limit int) ([]models.FeedEvent, error)
}

type feedRepository struct {
	db *gorm.DB
}

// NewFeedRepository returns a new FeedRepository implementation.
func NewFeedRepository(db *gorm.DB) FeedRepository {
	return &feedRepository{db: db}
}

func (r *feedRepository) Record(ctx context.Context, event *models.FeedEvent) error {
	if err := r.db.WithContext(ctx).Create(event).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// ListByUser returns up to limit of the user's events in chronological
// order. The limit always truncates; callers own the default.
func (r *feedRepository) ListByUser(ctx context.Context, userID uint, limit int) ([]models.FeedEvent, error) {
	var events []models.FeedEvent
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Limit(clampCount(limit)).
		Find(&events).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return events, nil
}
