package service

import (
	"context"

	"kinograph/internal/models"
	"kinograph/internal/repository"
)

type userRepoStub struct {
	getByIDFn    func(context.Context, uint) (*models.User, error)
	findByIDsFn  func(context.Context, []uint) ([]models.User, error)
	getByEmailFn func(context.Context, string) (*models.User, error)
	createFn     func(context.Context, *models.User) error
	updateFn     func(context.Context, *models.User) error
	deleteFn     func(context.Context, uint) error
	listFn       func(context.Context, int, int) ([]models.User, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) FindByIDs(ctx context.Context, ids []uint) ([]models.User, error) {
	return s.findByIDsFn(ctx, ids)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, limit, offset)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.User, error) { return &models.User{ID: id}, nil },
		findByIDsFn: func(_ context.Context, ids []uint) ([]models.User, error) {
			users := make([]models.User, 0, len(ids))
			for _, id := range ids {
				users = append(users, models.User{ID: id})
			}
			return users, nil
		},
		getByEmailFn: func(context.Context, string) (*models.User, error) { return nil, nil },
		createFn:     func(context.Context, *models.User) error { return nil },
		updateFn:     func(context.Context, *models.User) error { return nil },
		deleteFn:     func(context.Context, uint) error { return nil },
		listFn:       func(context.Context, int, int) ([]models.User, error) { return nil, nil },
	}
}

type friendshipRepoStub struct {
	getEdgeFn      func(context.Context, uint, uint) (*models.Friendship, error)
	createFn       func(context.Context, *models.Friendship) error
	deleteFn       func(context.Context, uint, uint) (bool, error)
	getFriendIDsFn func(context.Context, uint) ([]uint, error)
	getFriendsFn   func(context.Context, uint) ([]models.User, error)
}

func (s *friendshipRepoStub) GetEdge(ctx context.Context, ownerID, friendID uint) (*models.Friendship, error) {
	return s.getEdgeFn(ctx, ownerID, friendID)
}
func (s *friendshipRepoStub) Create(ctx context.Context, edge *models.Friendship) error {
	return s.createFn(ctx, edge)
}
func (s *friendshipRepoStub) Delete(ctx context.Context, ownerID, friendID uint) (bool, error) {
	return s.deleteFn(ctx, ownerID, friendID)
}
func (s *friendshipRepoStub) GetFriendIDs(ctx context.Context, ownerID uint) ([]uint, error) {
	return s.getFriendIDsFn(ctx, ownerID)
}
func (s *friendshipRepoStub) GetFriends(ctx context.Context, ownerID uint) ([]models.User, error) {
	return s.getFriendsFn(ctx, ownerID)
}

func noopFriendshipRepo() *friendshipRepoStub {
	return &friendshipRepoStub{
		getEdgeFn:      func(context.Context, uint, uint) (*models.Friendship, error) { return nil, nil },
		createFn:       func(context.Context, *models.Friendship) error { return nil },
		deleteFn:       func(context.Context, uint, uint) (bool, error) { return true, nil },
		getFriendIDsFn: func(context.Context, uint) ([]uint, error) { return nil, nil },
		getFriendsFn:   func(context.Context, uint) ([]models.User, error) { return nil, nil },
	}
}

type filmRepoStub struct {
	getByIDFn         func(context.Context, uint) (*models.Film, error)
	findByIDsFn       func(context.Context, []uint) ([]*models.Film, error)
	createFn          func(context.Context, *models.Film) error
	updateFn          func(context.Context, *models.Film) error
	deleteFn          func(context.Context, uint) error
	listFn            func(context.Context, int, int) ([]*models.Film, error)
	addLikeFn         func(context.Context, uint, uint) error
	removeLikeFn      func(context.Context, uint, uint) (bool, error)
	getLikesFn        func(context.Context, uint) ([]uint, error)
	getLikedFilmIDsFn func(context.Context, uint) ([]uint, error)
	listAllLikesFn    func(context.Context) ([]models.Like, error)
	listRankedFn      func(context.Context, repository.PopularFilter) ([]*models.Film, error)
	getCommonFilmsFn  func(context.Context, uint, uint) ([]*models.Film, error)
	searchFn          func(context.Context, string, bool, bool) ([]*models.Film, error)
	listByDirectorFn  func(context.Context, uint, string) ([]*models.Film, error)
}

func (s *filmRepoStub) GetByID(ctx context.Context, id uint) (*models.Film, error) {
	return s.getByIDFn(ctx, id)
}
func (s *filmRepoStub) FindByIDs(ctx context.Context, ids []uint) ([]*models.Film, error) {
	return s.findByIDsFn(ctx, ids)
}
func (s *filmRepoStub) Create(ctx context.Context, film *models.Film) error {
	return s.createFn(ctx, film)
}
func (s *filmRepoStub) Update(ctx context.Context, film *models.Film) error {
	return s.updateFn(ctx, film)
}
func (s *filmRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *filmRepoStub) List(ctx context.Context, limit, offset int) ([]*models.Film, error) {
	return s.listFn(ctx, limit, offset)
}
func (s *filmRepoStub) AddLike(ctx context.Context, filmID, userID uint) error {
	return s.addLikeFn(ctx, filmID, userID)
}
func (s *filmRepoStub) RemoveLike(ctx context.Context, filmID, userID uint) (bool, error) {
	return s.removeLikeFn(ctx, filmID, userID)
}
func (s *filmRepoStub) GetLikes(ctx context.Context, filmID uint) ([]uint, error) {
	return s.getLikesFn(ctx, filmID)
}
func (s *filmRepoStub) GetLikedFilmIDs(ctx context.Context, userID uint) ([]uint, error) {
	return s.getLikedFilmIDsFn(ctx, userID)
}
func (s *filmRepoStub) ListAllLikes(ctx context.Context) ([]models.Like, error) {
	return s.listAllLikesFn(ctx)
}
func (s *filmRepoStub) ListRanked(ctx context.Context, filter repository.PopularFilter) ([]*models.Film, error) {
	return s.listRankedFn(ctx, filter)
}
func (s *filmRepoStub) GetCommonFilms(ctx context.Context, userA, userB uint) ([]*models.Film, error) {
	return s.getCommonFilmsFn(ctx, userA, userB)
}
func (s *filmRepoStub) Search(ctx context.Context, query string, byTitle, byDirector bool) ([]*models.Film, error) {
	return s.searchFn(ctx, query, byTitle, byDirector)
}
func (s *filmRepoStub) ListByDirector(ctx context.Context, directorID uint, sortBy string) ([]*models.Film, error) {
	return s.listByDirectorFn(ctx, directorID, sortBy)
}

func noopFilmRepo() *filmRepoStub {
	return &filmRepoStub{
		getByIDFn:         func(_ context.Context, id uint) (*models.Film, error) { return &models.Film{ID: id}, nil },
		findByIDsFn:       func(context.Context, []uint) ([]*models.Film, error) { return nil, nil },
		createFn:          func(context.Context, *models.Film) error { return nil },
		updateFn:          func(context.Context, *models.Film) error { return nil },
		deleteFn:          func(context.Context, uint) error { return nil },
		listFn:            func(context.Context, int, int) ([]*models.Film, error) { return nil, nil },
		addLikeFn:         func(context.Context, uint, uint) error { return nil },
		removeLikeFn:      func(context.Context, uint, uint) (bool, error) { return true, nil },
		getLikesFn:        func(context.Context, uint) ([]uint, error) { return nil, nil },
		getLikedFilmIDsFn: func(context.Context, uint) ([]uint, error) { return nil, nil },
		listAllLikesFn:    func(context.Context) ([]models.Like, error) { return nil, nil },
		listRankedFn: func(context.Context, repository.PopularFilter) ([]*models.Film, error) {
			return nil, nil
		},
		getCommonFilmsFn: func(context.Context, uint, uint) ([]*models.Film, error) { return nil, nil },
		searchFn:         func(context.Context, string, bool, bool) ([]*models.Film, error) { return nil, nil },
		listByDirectorFn: func(context.Context, uint, string) ([]*models.Film, error) { return nil, nil },
	}
}

type reviewRepoStub struct {
	getByIDFn        func(context.Context, uint) (*models.Review, error)
	createFn         func(context.Context, *models.Review) error
	updateFn         func(context.Context, *models.Review) error
	deleteFn         func(context.Context, uint) (bool, error)
	listByFilmFn     func(context.Context, uint, int) ([]models.Review, error)
	listAllFn        func(context.Context, int) ([]models.Review, error)
	getReactionFn    func(context.Context, uint, uint) (*models.ReviewReaction, error)
	applyReactionFn  func(context.Context, uint, uint, bool, int) error
	revokeReactionFn func(context.Context, uint, uint, int) (bool, error)
}

func (s *reviewRepoStub) GetByID(ctx context.Context, id uint) (*models.Review, error) {
	return s.getByIDFn(ctx, id)
}
func (s *reviewRepoStub) Create(ctx context.Context, review *models.Review) error {
	return s.createFn(ctx, review)
}
func (s *reviewRepoStub) Update(ctx context.Context, review *models.Review) error {
	return s.updateFn(ctx, review)
}
func (s *reviewRepoStub) Delete(ctx context.Context, id uint) (bool, error) {
	return s.deleteFn(ctx, id)
}
func (s *reviewRepoStub) ListByFilm(ctx context.Context, filmID uint, count int) ([]models.Review, error) {
	return s.listByFilmFn(ctx, filmID, count)
}
func (s *reviewRepoStub) ListAll(ctx context.Context, count int) ([]models.Review, error) {
	return s.listAllFn(ctx, count)
}
func (s *reviewRepoStub) GetReaction(ctx context.Context, reviewID, userID uint) (*models.ReviewReaction, error) {
	return s.getReactionFn(ctx, reviewID, userID)
}
func (s *reviewRepoStub) ApplyReaction(ctx context.Context, reviewID, userID uint, isPositive bool, delta int) error {
	return s.applyReactionFn(ctx, reviewID, userID, isPositive, delta)
}
func (s *reviewRepoStub) RevokeReaction(ctx context.Context, reviewID, userID uint, delta int) (bool, error) {
	return s.revokeReactionFn(ctx, reviewID, userID, delta)
}

func noopReviewRepo() *reviewRepoStub {
	return &reviewRepoStub{
		getByIDFn:        func(_ context.Context, id uint) (*models.Review, error) { return &models.Review{ID: id}, nil },
		createFn:         func(context.Context, *models.Review) error { return nil },
		updateFn:         func(context.Context, *models.Review) error { return nil },
		deleteFn:         func(context.Context, uint) (bool, error) { return true, nil },
		listByFilmFn:     func(context.Context, uint, int) ([]models.Review, error) { return nil, nil },
		listAllFn:        func(context.Context, int) ([]models.Review, error) { return nil, nil },
		getReactionFn:    func(context.Context, uint, uint) (*models.ReviewReaction, error) { return nil, nil },
		applyReactionFn:  func(context.Context, uint, uint, bool, int) error { return nil },
		revokeReactionFn: func(context.Context, uint, uint, int) (bool, error) { return true, nil },
	}
}

type feedRepoStub struct {
	recordFn     func(context.Context, *models.FeedEvent) error
	listByUserFn func(context.Context, uint, int) ([]models.FeedEvent, error)
}

func (s *feedRepoStub) Record(ctx context.Context, event *models.FeedEvent) error {
	return s.recordFn(ctx, event)
}
func (s *feedRepoStub) ListByUser(ctx context.Context, userID uint, limit int) ([]models.FeedEvent, error) {
	return s.listByUserFn(ctx, userID, limit)
}

func noopFeedRepo() *feedRepoStub {
	return &feedRepoStub{
		recordFn:     func(context.Context, *models.FeedEvent) error { return nil },
		listByUserFn: func(context.Context, uint, int) ([]models.FeedEvent, error) { return nil, nil },
	}
}
