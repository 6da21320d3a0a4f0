// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"kinograph/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by the seeder and tests.
type Factory struct {
	db *gorm.DB
	r  *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	// seed gofakeit for richer content
	gofakeit.Seed(time.Now().UnixNano())
	//nolint:gosec // Weak random number generator is fine for seeding
	return &Factory{db: db, r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// CreateUser constructs and persists a sample `models.User`.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	login := fmt.Sprintf("%s%d", gofakeit.Username(), gofakeit.Number(100, 999))
	user := &models.User{
		Email:    fmt.Sprintf("%s@example.com", login),
		Login:    login,
		Name:     gofakeit.Name(),
		Birthday: gofakeit.DateRange(time.Date(1950, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2008, 12, 31, 0, 0, 0, 0, time.UTC)),
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateFilm constructs and persists a sample `models.Film`, attaching an
// MPA rating and one or two genres picked from the provided reference data.
func (f *Factory) CreateFilm(ratings []models.MpaRating, genres []models.Genre, overrides ...func(*models.Film)) (*models.Film, error) {
	film := &models.Film{
		Name:        gofakeit.MovieName(),
		Description: gofakeit.Sentence(12),
		ReleaseDate: gofakeit.DateRange(time.Date(1950, 1, 1, 0, 0, 0, 0, time.UTC), time.Now()),
		Duration:    gofakeit.Number(60, 220),
	}

	if len(ratings) > 0 {
		id := ratings[f.r.Intn(len(ratings))].ID
		film.MpaID = &id
	}
	if len(genres) > 0 {
		picked := f.r.Intn(2) + 1
		seen := map[uint]bool{}
		for i := 0; i < picked; i++ {
			g := genres[f.r.Intn(len(genres))]
			if !seen[g.ID] {
				seen[g.ID] = true
				film.Genres = append(film.Genres, g)
			}
		}
	}

	for _, override := range overrides {
		override(film)
	}

	if err := f.db.Create(film).Error; err != nil {
		return nil, err
	}
	return film, nil
}

// CreateLike persists a like from `user` on `film`.
func (f *Factory) CreateLike(user *models.User, film *models.Film) error {
	like := &models.Like{
		UserID: user.ID,
		FilmID: film.ID,
	}
	return f.db.Create(like).Error
}

// CreateFriendship persists a directed friendship edge from owner to friend.
func (f *Factory) CreateFriendship(owner, friend *models.User, status models.FriendshipStatus) error {
	friendship := &models.Friendship{
		OwnerID:  owner.ID,
		FriendID: friend.ID,
		Status:   status,
	}
	return f.db.Create(friendship).Error
}

// CreateReview constructs and persists a sample `models.Review` of the
// given film authored by the given user.
func (f *Factory) CreateReview(user *models.User, film *models.Film, overrides ...func(*models.Review)) (*models.Review, error) {
	review := &models.Review{
		FilmID:     film.ID,
		UserID:     user.ID,
		Content:    gofakeit.Paragraph(1, 3, 8, " "),
		IsPositive: f.r.Float32() < 0.7,
	}

	for _, override := range overrides {
		override(review)
	}

	if err := f.db.Create(review).Error; err != nil {
		return nil, err
	}
	return review, nil
}

// CreateReaction persists a reaction from `user` on `review` and bumps the
// review's cached useful score to match.
func (f *Factory) CreateReaction(user *models.User, review *models.Review, isPositive bool) error {
	reaction := &models.ReviewReaction{
		ReviewID:   review.ID,
		UserID:     user.ID,
		IsPositive: isPositive,
	}
	if err := f.db.Create(reaction).Error; err != nil {
		return err
	}

	delta := 1
	if !isPositive {
		delta = -1
	}
	return f.db.Model(&models.Review{}).
		Where("id = ?", review.ID).
		UpdateColumn("useful", gorm.Expr("useful + ?", delta)).Error
}

// CreateFeedEvent persists a feed event row for the given user.
func (f *Factory) CreateFeedEvent(user *models.User, entityID uint, eventType models.FeedEventType, op models.FeedOperation) error {
	event := &models.FeedEvent{
		UserID:    user.ID,
		EntityID:  entityID,
		EventType: eventType,
		Operation: op,
	}
	return f.db.Create(event).Error
}
