package service

import (
	"context"
	"fmt"

	"kinograph/internal/lock"
	"kinograph/internal/models"
	"kinograph/internal/observability"
	"kinograph/internal/repository"
)

// ReviewService manages film reviews and their usefulness score. Each
// user holds at most one reaction per review; the review's useful
// counter always equals the net sum of +1 per positive and -1 per
// negative reaction currently recorded.
type ReviewService struct {
	reviewRepo repository.ReviewRepository
	userRepo   repository.UserRepository
	filmRepo   repository.FilmRepository
	feedRepo   repository.FeedRepository
	locks      *lock.KeyMutex
}

// NewReviewService returns a new ReviewService.
func NewReviewService(reviewRepo repository.ReviewRepository, userRepo repository.UserRepository, filmRepo repository.FilmRepository, feedRepo repository.FeedRepository) *ReviewService {
	return &ReviewService{
		reviewRepo: reviewRepo,
		userRepo:   userRepo,
		filmRepo:   filmRepo,
		feedRepo:   feedRepo,
		locks:      lock.NewKeyMutex(),
	}
}

// CreateReview stores a new review with a zero useful score.
func (s *ReviewService) CreateReview(ctx context.Context, review *models.Review) (*models.Review, error) {
	if _, err := s.filmRepo.GetByID(ctx, review.FilmID); err != nil {
		return nil, err
	}
	if _, err := s.userRepo.GetByID(ctx, review.UserID); err != nil {
		return nil, err
	}

	review.Useful = 0
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}
	if err := s.recordFeed(ctx, review.UserID, review.ID, models.FeedOperationAdd); err != nil {
		return nil, err
	}
	return review, nil
}

// GetReview returns the review with the given id.
func (s *ReviewService) GetReview(ctx context.Context, reviewID uint) (*models.Review, error) {
	return s.reviewRepo.GetByID(ctx, reviewID)
}

// GetReviews lists reviews ordered by useful descending. A nil filmID
// lists reviews across all films.
func (s *ReviewService) GetReviews(ctx context.Context, filmID *uint, count int) ([]models.Review, error) {
	if filmID != nil {
		if _, err := s.filmRepo.GetByID(ctx, *filmID); err != nil {
			return nil, err
		}
		return s.reviewRepo.ListByFilm(ctx, *filmID, count)
	}
	return s.reviewRepo.ListAll(ctx, count)
}

// UpdateReview changes the review content and verdict. The useful score
// is owned by the reaction ledger and is never written here.
func (s *ReviewService) UpdateReview(ctx context.Context, reviewID uint, content string, isPositive bool) (*models.Review, error) {
	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}

	review.Content = content
	review.IsPositive = isPositive
	if err := s.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}
	if err := s.recordFeed(ctx, review.UserID, review.ID, models.FeedOperationUpdate); err != nil {
		return nil, err
	}
	return review, nil
}

// DeleteReview removes the review.
func (s *ReviewService) DeleteReview(ctx context.Context, reviewID uint) error {
	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return err
	}
	if _, err := s.reviewRepo.Delete(ctx, reviewID); err != nil {
		return err
	}
	return s.recordFeed(ctx, review.UserID, review.ID, models.FeedOperationRemove)
}

// AddReaction records or flips the user's vote on a review. A first
// vote moves useful by one; flipping polarity moves it by two, undoing
// the old vote and applying the new one in a single adjustment.
// Repeating the current polarity is a conflict and changes nothing. The
// read-check-write sequence is serialized per (review, user) pair.
func (s *ReviewService) AddReaction(ctx context.Context, reviewID, userID uint, isPositive bool) (*models.Review, error) {
	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("reaction:%d:%d", reviewID, userID)
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	existing, err := s.reviewRepo.GetReaction(ctx, reviewID, userID)
	if err != nil {
		return nil, err
	}

	delta := 1
	if existing != nil {
		if existing.IsPositive == isPositive {
			return nil, models.NewConflictError("Review already has this reaction from the user")
		}
		delta = 2
	}
	if !isPositive {
		delta = -delta
	}

	// The reaction upsert and the useful adjustment share one storage
	// transaction, so a failure leaves neither applied.
	if err := s.reviewRepo.ApplyReaction(ctx, reviewID, userID, isPositive, delta); err != nil {
		return nil, err
	}
	observability.EngagementEvents.WithLabelValues("reaction", "add").Inc()

	review.Useful += delta
	return review, nil
}

// RemoveReaction deletes the user's vote on a review. The caller states
// which polarity it expects to remove; a mismatch is a conflict. On
// success useful moves one step back toward zero for that vote.
func (s *ReviewService) RemoveReaction(ctx context.Context, reviewID, userID uint, expectedIsPositive bool) (*models.Review, error) {
	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("reaction:%d:%d", reviewID, userID)
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	existing, err := s.reviewRepo.GetReaction(ctx, reviewID, userID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, models.NewNotFoundError("Reaction", reviewID)
	}
	if existing.IsPositive != expectedIsPositive {
		return nil, models.NewConflictError("Review does not have this reaction from the user")
	}

	delta := 1
	if expectedIsPositive {
		delta = -1
	}
	removed, err := s.reviewRepo.RevokeReaction(ctx, reviewID, userID, delta)
	if err != nil {
		return nil, err
	}
	if !removed {
		return nil, models.NewNotFoundError("Reaction", reviewID)
	}
	observability.EngagementEvents.WithLabelValues("reaction", "remove").Inc()

	review.Useful += delta
	return review, nil
}

func (s *ReviewService) recordFeed(ctx context.Context, userID, reviewID uint, op models.FeedOperation) error {
	return s.feedRepo.Record(ctx, &models.FeedEvent{
		UserID:    userID,
		EntityID:  reviewID,
		EventType: models.FeedEventReview,
		Operation: op,
	})
}
