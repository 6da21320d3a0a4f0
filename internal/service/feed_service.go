package service

import (
	"context"

	"kinograph/internal/models"
	"kinograph/internal/repository"
)

// FeedService exposes the per-user activity feed built from friend,
// like and review events recorded by the other services.
type FeedService struct {
	feedRepo repository.FeedRepository
	userRepo repository.UserRepository
}

// NewFeedService returns a new FeedService.
func NewFeedService(feedRepo repository.FeedRepository, userRepo repository.UserRepository) *FeedService {
	return &FeedService{feedRepo: feedRepo, userRepo: userRepo}
}

// GetFeed returns the user's activity events in chronological order.
func (s *FeedService) GetFeed(ctx context.Context, userID uint, limit int) ([]models.FeedEvent, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.feedRepo.ListByUser(ctx, userID, limit)
}
