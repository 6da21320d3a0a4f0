package repository

import (
	"context"
	"fmt"
	"testing"

	"kinograph/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createTestUser(t *testing.T, db *gorm.DB, n int) *models.User {
	t.Helper()
	user := &models.User{
		Email: fmt.Sprintf("user%d@example.com", n),
		Login: fmt.Sprintf("user%d", n),
		Name:  fmt.Sprintf("User %d", n),
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestFriendshipRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFriendshipRepository(db)
	ctx := context.Background()

	u1 := createTestUser(t, db, 1)
	u2 := createTestUser(t, db, 2)
	u3 := createTestUser(t, db, 3)

	t.Run("GetEdge absent returns nil", func(t *testing.T) {
		edge, err := repo.GetEdge(ctx, u1.ID, u2.ID)
		assert.NoError(t, err)
		assert.Nil(t, edge)
	})

	t.Run("Create and GetEdge", func(t *testing.T) {
		err := repo.Create(ctx, &models.Friendship{
			OwnerID:  u1.ID,
			FriendID: u2.ID,
			Status:   models.FriendshipStatusPending,
		})
		require.NoError(t, err)

		edge, err := repo.GetEdge(ctx, u1.ID, u2.ID)
		require.NoError(t, err)
		require.NotNil(t, edge)
		assert.Equal(t, models.FriendshipStatusPending, edge.Status)

		// Directed: the reverse edge does not exist.
		reverse, err := repo.GetEdge(ctx, u2.ID, u1.ID)
		assert.NoError(t, err)
		assert.Nil(t, reverse)
	})

	t.Run("confirmed Create promotes the reciprocal edge", func(t *testing.T) {
		err := repo.Create(ctx, &models.Friendship{
			OwnerID:  u2.ID,
			FriendID: u1.ID,
			Status:   models.FriendshipStatusConfirmed,
		})
		require.NoError(t, err)

		for _, pair := range [][2]uint{{u1.ID, u2.ID}, {u2.ID, u1.ID}} {
			edge, err := repo.GetEdge(ctx, pair[0], pair[1])
			require.NoError(t, err)
			require.NotNil(t, edge)
			assert.Equal(t, models.FriendshipStatusConfirmed, edge.Status)
		}
	})

	t.Run("GetFriendIDs and GetFriends", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, &models.Friendship{
			OwnerID:  u1.ID,
			FriendID: u3.ID,
			Status:   models.FriendshipStatusPending,
		}))

		ids, err := repo.GetFriendIDs(ctx, u1.ID)
		require.NoError(t, err)
		assert.Equal(t, []uint{u2.ID, u3.ID}, ids)

		friends, err := repo.GetFriends(ctx, u1.ID)
		require.NoError(t, err)
		require.Len(t, friends, 2)
		assert.Equal(t, u2.Login, friends[0].Login)
		assert.Equal(t, u3.Login, friends[1].Login)
	})

	t.Run("Delete reports presence and demotes the reciprocal", func(t *testing.T) {
		removed, err := repo.Delete(ctx, u1.ID, u2.ID)
		require.NoError(t, err)
		assert.True(t, removed)

		removed, err = repo.Delete(ctx, u1.ID, u2.ID)
		require.NoError(t, err)
		assert.False(t, removed)

		ids, err := repo.GetFriendIDs(ctx, u1.ID)
		require.NoError(t, err)
		assert.Equal(t, []uint{u3.ID}, ids)

		// The surviving edge 2->1 lost its confirmation with the delete.
		reciprocal, err := repo.GetEdge(ctx, u2.ID, u1.ID)
		require.NoError(t, err)
		require.NotNil(t, reciprocal)
		assert.Equal(t, models.FriendshipStatusPending, reciprocal.Status)
	})
}

func TestFriendshipRepositoryCreateRollsBackPromotion(t *testing.T) {
	db := setupTestDB(t)
	repo := NewFriendshipRepository(db)
	ctx := context.Background()

	u1 := createTestUser(t, db, 1)
	u2 := createTestUser(t, db, 2)

	require.NoError(t, repo.Create(ctx, &models.Friendship{
		OwnerID: u1.ID, FriendID: u2.ID, Status: models.FriendshipStatusPending,
	}))
	require.NoError(t, repo.Create(ctx, &models.Friendship{
		OwnerID: u2.ID, FriendID: u1.ID, Status: models.FriendshipStatusPending,
	}))

	// The duplicate insert fails on the unique edge index, so the
	// promotion of 1->2 in the same transaction must not stick.
	err := repo.Create(ctx, &models.Friendship{
		OwnerID: u2.ID, FriendID: u1.ID, Status: models.FriendshipStatusConfirmed,
	})
	require.Error(t, err)

	edge, err := repo.GetEdge(ctx, u1.ID, u2.ID)
	require.NoError(t, err)
	require.NotNil(t, edge)
	assert.Equal(t, models.FriendshipStatusPending, edge.Status)
}
