package seed

import (
	"fmt"
	"testing"

	"kinograph/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Genre{},
		&models.MpaRating{},
		&models.Director{},
		&models.Film{},
		&models.Like{},
		&models.Friendship{},
		&models.Review{},
		&models.ReviewReaction{},
		&models.FeedEvent{},
	))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func TestSeedReferenceData_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	s := NewSeeder(db)

	genres, ratings, err := s.SeedReferenceData()
	require.NoError(t, err)
	assert.Len(t, genres, len(genreNames))
	assert.Len(t, ratings, len(mpaNames))

	// Running again must not duplicate reference rows.
	_, _, err = s.SeedReferenceData()
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.Genre{}).Count(&count).Error)
	assert.Equal(t, int64(len(genreNames)), count)
	require.NoError(t, db.Model(&models.MpaRating{}).Count(&count).Error)
	assert.Equal(t, int64(len(mpaNames)), count)
}

func TestSeedUsers_StableLogins(t *testing.T) {
	db := setupTestDB(t)
	s := NewSeeder(db)

	users, err := s.SeedUsers(10)
	require.NoError(t, err)
	require.Len(t, users, 10)

	var alice models.User
	require.NoError(t, db.Where("login = ?", "alice").First(&alice).Error)
	assert.Equal(t, "alice@example.com", alice.Email)
}

func TestSeedFilms_AttachesReferenceData(t *testing.T) {
	db := setupTestDB(t)
	s := NewSeeder(db)

	genres, ratings, err := s.SeedReferenceData()
	require.NoError(t, err)

	films, err := s.SeedFilms(5, ratings, genres)
	require.NoError(t, err)
	require.Len(t, films, 5)

	for _, film := range films {
		assert.NotEmpty(t, film.Name)
		assert.Greater(t, film.Duration, 0)
		assert.NotNil(t, film.MpaID)
		assert.NotEmpty(t, film.Genres)
	}
}

func TestSeedEngagement_UsefulMatchesReactions(t *testing.T) {
	db := setupTestDB(t)
	s := NewSeeder(db)

	genres, ratings, err := s.SeedReferenceData()
	require.NoError(t, err)
	users, err := s.SeedUsers(8)
	require.NoError(t, err)
	films, err := s.SeedFilms(6, ratings, genres)
	require.NoError(t, err)

	require.NoError(t, s.SeedEngagement(users, films))

	// The cached useful score on every review must equal the net sum of
	// its reactions.
	var reviews []models.Review
	require.NoError(t, db.Find(&reviews).Error)
	require.NotEmpty(t, reviews)

	for _, review := range reviews {
		var reactions []models.ReviewReaction
		require.NoError(t, db.Where("review_id = ?", review.ID).Find(&reactions).Error)

		net := 0
		for _, r := range reactions {
			if r.IsPositive {
				net++
			} else {
				net--
			}
		}
		assert.Equal(t, net, review.Useful, "review %d", review.ID)
	}
}

func TestSeedEngagement_ConfirmedEdgesAreReciprocal(t *testing.T) {
	db := setupTestDB(t)
	s := NewSeeder(db)

	genres, ratings, err := s.SeedReferenceData()
	require.NoError(t, err)
	users, err := s.SeedUsers(12)
	require.NoError(t, err)
	films, err := s.SeedFilms(3, ratings, genres)
	require.NoError(t, err)

	require.NoError(t, s.SeedEngagement(users, films))

	var confirmed []models.Friendship
	require.NoError(t, db.Where("status = ?", models.FriendshipStatusConfirmed).Find(&confirmed).Error)

	for _, edge := range confirmed {
		var back int64
		require.NoError(t, db.Model(&models.Friendship{}).
			Where("owner_id = ? AND friend_id = ?", edge.FriendID, edge.OwnerID).
			Count(&back).Error)
		assert.Equal(t, int64(1), back, "confirmed edge %d->%d has no reciprocal", edge.OwnerID, edge.FriendID)
	}
}
