package repository

import (
	"context"
	"errors"

	"kinograph/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReviewRepository defines persistence operations for reviews and their
// reactions. Reaction lookups report absence as (nil, nil).
type ReviewRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Review, error)
	Create(ctx context.Context, review *models.Review) error
	Update(ctx context.Context, review *models.Review) error
	Delete(ctx context.Context, id uint) (bool, error)
	ListByFilm(ctx context.Context, filmID uint, count int) ([]models.Review, error)
	ListAll(ctx context.Context, count int) ([]models.Review, error)

	GetReaction(ctx context.Context, reviewID, userID uint) (*models.ReviewReaction, error)
	ApplyReaction(ctx context.Context, reviewID, userID uint, isPositive bool, delta int) error
	RevokeReaction(ctx context.Context, reviewID, userID uint, delta int) (bool, error)
}

type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository returns a new ReviewRepository implementation.
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) GetByID(ctx context.Context, id uint) (*models.Review, error) {
	var review models.Review
	if err := r.db.WithContext(ctx).First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Review", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &review, nil
}

func (r *reviewRepository) Create(ctx context.Context, review *models.Review) error {
	if err := r.db.WithContext(ctx).Create(review).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *reviewRepository) Update(ctx context.Context, review *models.Review) error {
	if err := r.db.WithContext(ctx).Save(review).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *reviewRepository) Delete(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&models.Review{}, id)
	if res.Error != nil {
		return false, models.NewInternalError(res.Error)
	}
	return res.RowsAffected > 0, nil
}

// ListByFilm returns up to count of the film's reviews, most useful
// first. The count always truncates, so a count of zero yields nothing.
func (r *reviewRepository) ListByFilm(ctx context.Context, filmID uint, count int) ([]models.Review, error) {
	var reviews []models.Review
	if err := r.db.WithContext(ctx).
		Where("film_id = ?", filmID).
		Order("useful DESC, id ASC").
		Limit(clampCount(count)).
		Find(&reviews).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return reviews, nil
}

func (r *reviewRepository) ListAll(ctx context.Context, count int) ([]models.Review, error) {
	var reviews []models.Review
	if err := r.db.WithContext(ctx).
		Order("useful DESC, id ASC").
		Limit(clampCount(count)).
		Find(&reviews).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return reviews, nil
}

func (r *reviewRepository) GetReaction(ctx context.Context, reviewID, userID uint) (*models.ReviewReaction, error) {
	var reaction models.ReviewReaction
	if err := r.db.WithContext(ctx).
		Where("review_id = ? AND user_id = ?", reviewID, userID).
		First(&reaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &reaction, nil
}

// ApplyReaction upserts the single reaction a user holds on a review and
// moves the cached useful counter by delta in the same transaction, so
// the reaction row and the counter can never disagree. The unique
// (review_id, user_id) index plus ON CONFLICT UPDATE keeps the pair a
// set rather than a multiset even under concurrent writes, and the
// relative counter update runs inside the database so reactions from
// different users never lose updates to each other.
func (r *reviewRepository) ApplyReaction(ctx context.Context, reviewID, userID uint, isPositive bool, delta int) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		reaction := models.ReviewReaction{
			ReviewID:   reviewID,
			UserID:     userID,
			IsPositive: isPositive,
		}
		if err := tx.
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "review_id"}, {Name: "user_id"}},
				DoUpdates: clause.AssignmentColumns([]string{"is_positive", "updated_at"}),
			}).
			Create(&reaction).Error; err != nil {
			return err
		}

		res := tx.Model(&models.Review{}).
			Where("id = ?", reviewID).
			Update("useful", gorm.Expr("useful + ?", delta))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Review", reviewID)
		}
		return models.NewInternalError(err)
	}
	return nil
}

// RevokeReaction deletes the user's reaction and moves the cached
// useful counter by delta in the same transaction. It reports whether a
// reaction existed; when none did the counter is left untouched.
func (r *reviewRepository) RevokeReaction(ctx context.Context, reviewID, userID uint, delta int) (bool, error) {
	removed := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("review_id = ? AND user_id = ?", reviewID, userID).
			Delete(&models.ReviewReaction{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		removed = true

		return tx.Model(&models.Review{}).
			Where("id = ?", reviewID).
			Update("useful", gorm.Expr("useful + ?", delta)).Error
	})
	if err != nil {
		return false, models.NewInternalError(err)
	}
	return removed, nil
}
