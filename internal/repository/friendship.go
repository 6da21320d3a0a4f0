package repository

import (
	"context"
	"errors"

	"kinograph/internal/models"

	"gorm.io/gorm"
)

// FriendshipRepository defines persistence operations for directed
// friendship edges. An absent edge is reported as (nil, nil), not as an
// error: callers decide whether absence is exceptional.
type FriendshipRepository interface {
	GetEdge(ctx context.Context, ownerID, friendID uint) (*models.Friendship, error)
	Create(ctx context.Context, edge *models.Friendship) error
	Delete(ctx context.Context, ownerID, friendID uint) (bool, error)
	GetFriendIDs(ctx context.Context, ownerID uint) ([]uint, error)
	GetFriends(ctx context.Context, ownerID uint) ([]models.User, error)
}

type friendshipRepository struct {
	db *gorm.DB
}

// NewFriendshipRepository returns a new FriendshipRepository implementation.
func NewFriendshipRepository(db *gorm.DB) FriendshipRepository {
	return &friendshipRepository{db: db}
}

func (r *friendshipRepository) GetEdge(ctx context.Context, ownerID, friendID uint) (*models.Friendship, error) {
	var edge models.Friendship
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND friend_id = ?", ownerID, friendID).
		First(&edge).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &edge, nil
}

// Create inserts the edge. A confirmed edge implies the reciprocal edge
// already exists, so its promotion to confirmed happens in the same
// transaction as the insert: either both edges end up confirmed or
// neither changes.
func (r *friendshipRepository) Create(ctx context.Context, edge *models.Friendship) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if edge.Status == models.FriendshipStatusConfirmed {
			if err := tx.Model(&models.Friendship{}).
				Where("owner_id = ? AND friend_id = ?", edge.FriendID, edge.OwnerID).
				Update("status", models.FriendshipStatusConfirmed).Error; err != nil {
				return err
			}
		}
		return tx.Create(edge).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// Delete removes the edge owner->friend and reports whether it existed.
// A surviving confirmed reciprocal edge is demoted to pending in the
// same transaction, keeping confirmed edges strictly mutual.
func (r *friendshipRepository) Delete(ctx context.Context, ownerID, friendID uint) (bool, error) {
	removed := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("owner_id = ? AND friend_id = ?", ownerID, friendID).
			Delete(&models.Friendship{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		removed = true

		return tx.Model(&models.Friendship{}).
			Where("owner_id = ? AND friend_id = ? AND status = ?",
				friendID, ownerID, models.FriendshipStatusConfirmed).
			Update("status", models.FriendshipStatusPending).Error
	})
	if err != nil {
		return false, models.NewInternalError(err)
	}
	return removed, nil
}

func (r *friendshipRepository) GetFriendIDs(ctx context.Context, ownerID uint) ([]uint, error) {
	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&models.Friendship{}).
		Where("owner_id = ?", ownerID).
		Order("friend_id ASC").
		Pluck("friend_id", &ids).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return ids, nil
}

// GetFriends returns the user records the owner holds an edge to,
// regardless of edge status.
func (r *friendshipRepository) GetFriends(ctx context.Context, ownerID uint) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).
		Table("users").
		Joins("JOIN friendships ON friendships.friend_id = users.id").
		Where("friendships.owner_id = ?", ownerID).
		Order("users.id ASC").
		Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}
