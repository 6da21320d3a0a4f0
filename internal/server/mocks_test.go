package server

import (
	"context"

	"kinograph/internal/models"
	"kinograph/internal/repository"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock of the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByIDs(ctx context.Context, ids []uint) ([]models.User, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

// MockFilmRepository is a mock of the FilmRepository interface
type MockFilmRepository struct {
	mock.Mock
}

func (m *MockFilmRepository) GetByID(ctx context.Context, id uint) (*models.Film, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Film), args.Error(1)
}

func (m *MockFilmRepository) FindByIDs(ctx context.Context, ids []uint) ([]*models.Film, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Film), args.Error(1)
}

func (m *MockFilmRepository) Create(ctx context.Context, film *models.Film) error {
	args := m.Called(ctx, film)
	return args.Error(0)
}

func (m *MockFilmRepository) Update(ctx context.Context, film *models.Film) error {
	args := m.Called(ctx, film)
	return args.Error(0)
}

func (m *MockFilmRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFilmRepository) List(ctx context.Context, limit, offset int) ([]*models.Film, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Film), args.Error(1)
}

func (m *MockFilmRepository) AddLike(ctx context.Context, filmID, userID uint) error {
	args := m.Called(ctx, filmID, userID)
	return args.Error(0)
}

func (m *MockFilmRepository) RemoveLike(ctx context.Context, filmID, userID uint) (bool, error) {
	args := m.Called(ctx, filmID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFilmRepository) GetLikes(ctx context.Context, filmID uint) ([]uint, error) {
	args := m.Called(ctx, filmID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint), args.Error(1)
}

func (m *MockFilmRepository) GetLikedFilmIDs(ctx context.Context, userID uint) ([]uint, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint), args.Error(1)
}

func (m *MockFilmRepository) ListAllLikes(ctx context.Context) ([]models.Like, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Like), args.Error(1)
}

func (m *MockFilmRepository) ListRanked(ctx context.Context, filter repository.PopularFilter) ([]*models.Film, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Film), args.Error(1)
}

func (m *MockFilmRepository) GetCommonFilms(ctx context.Context, userA, userB uint) ([]*models.Film, error) {
	args := m.Called(ctx, userA, userB)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Film), args.Error(1)
}

func (m *MockFilmRepository) Search(ctx context.Context, query string, byTitle, byDirector bool) ([]*models.Film, error) {
	args := m.Called(ctx, query, byTitle, byDirector)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Film), args.Error(1)
}

func (m *MockFilmRepository) ListByDirector(ctx context.Context, directorID uint, sortBy string) ([]*models.Film, error) {
	args := m.Called(ctx, directorID, sortBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Film), args.Error(1)
}

// MockFriendshipRepository is a mock of the FriendshipRepository interface
type MockFriendshipRepository struct {
	mock.Mock
}

func (m *MockFriendshipRepository) GetEdge(ctx context.Context, ownerID, friendID uint) (*models.Friendship, error) {
	args := m.Called(ctx, ownerID, friendID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Friendship), args.Error(1)
}

func (m *MockFriendshipRepository) Create(ctx context.Context, edge *models.Friendship) error {
	args := m.Called(ctx, edge)
	return args.Error(0)
}

func (m *MockFriendshipRepository) Delete(ctx context.Context, ownerID, friendID uint) (bool, error) {
	args := m.Called(ctx, ownerID, friendID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFriendshipRepository) GetFriendIDs(ctx context.Context, ownerID uint) ([]uint, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint), args.Error(1)
}

func (m *MockFriendshipRepository) GetFriends(ctx context.Context, ownerID uint) ([]models.User, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

// MockReviewRepository is a mock of the ReviewRepository interface
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) GetByID(ctx context.Context, id uint) (*models.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockReviewRepository) Create(ctx context.Context, review *models.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) Update(ctx context.Context, review *models.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) Delete(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockReviewRepository) ListByFilm(ctx context.Context, filmID uint, count int) ([]models.Review, error) {
	args := m.Called(ctx, filmID, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *MockReviewRepository) ListAll(ctx context.Context, count int) ([]models.Review, error) {
	args := m.Called(ctx, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *MockReviewRepository) GetReaction(ctx context.Context, reviewID, userID uint) (*models.ReviewReaction, error) {
	args := m.Called(ctx, reviewID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ReviewReaction), args.Error(1)
}

func (m *MockReviewRepository) ApplyReaction(ctx context.Context, reviewID, userID uint, isPositive bool, delta int) error {
	args := m.Called(ctx, reviewID, userID, isPositive, delta)
	return args.Error(0)
}

func (m *MockReviewRepository) RevokeReaction(ctx context.Context, reviewID, userID uint, delta int) (bool, error) {
	args := m.Called(ctx, reviewID, userID, delta)
	return args.Bool(0), args.Error(1)
}

// MockFeedRepository is a mock of the FeedRepository interface
type MockFeedRepository struct {
	mock.Mock
}

func (m *MockFeedRepository) Record(ctx context.Context, event *models.FeedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockFeedRepository) ListByUser(ctx context.Context, userID uint, limit int) ([]models.FeedEvent, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FeedEvent), args.Error(1)
}
