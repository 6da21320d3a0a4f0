package service

import (
	"context"
	"strings"
	"time"

	"kinograph/internal/cache"
	"kinograph/internal/models"
	"kinograph/internal/observability"
	"kinograph/internal/repository"
)

// FilmService provides film engagement operations: per-film like sets,
// the popularity ranking, and the common-films query.
type FilmService struct {
	filmRepo repository.FilmRepository
	userRepo repository.UserRepository
	feedRepo repository.FeedRepository
}

// NewFilmService returns a new FilmService.
func NewFilmService(filmRepo repository.FilmRepository, userRepo repository.UserRepository, feedRepo repository.FeedRepository) *FilmService {
	return &FilmService{
		filmRepo: filmRepo,
		userRepo: userRepo,
		feedRepo: feedRepo,
	}
}

// GetFilm returns the film with the given id.
func (s *FilmService) GetFilm(ctx context.Context, filmID uint) (*models.Film, error) {
	return s.filmRepo.GetByID(ctx, filmID)
}

// ListFilms returns a page of the film catalog.
func (s *FilmService) ListFilms(ctx context.Context, limit, offset int) ([]*models.Film, error) {
	return s.filmRepo.List(ctx, limit, offset)
}

// CreateFilm adds a film to the catalog.
func (s *FilmService) CreateFilm(ctx context.Context, film *models.Film) (*models.Film, error) {
	if err := validateFilm(film); err != nil {
		return nil, err
	}
	if err := s.filmRepo.Create(ctx, film); err != nil {
		return nil, err
	}
	return film, nil
}

// UpdateFilm replaces the catalog fields of an existing film.
func (s *FilmService) UpdateFilm(ctx context.Context, film *models.Film) (*models.Film, error) {
	if err := validateFilm(film); err != nil {
		return nil, err
	}
	if _, err := s.filmRepo.GetByID(ctx, film.ID); err != nil {
		return nil, err
	}
	if err := s.filmRepo.Update(ctx, film); err != nil {
		return nil, err
	}
	return s.filmRepo.GetByID(ctx, film.ID)
}

// DeleteFilm removes a film from the catalog.
func (s *FilmService) DeleteFilm(ctx context.Context, filmID uint) error {
	if _, err := s.filmRepo.GetByID(ctx, filmID); err != nil {
		return err
	}
	return s.filmRepo.Delete(ctx, filmID)
}

// AddLike records that the user likes the film. Liking the same film
// twice is a no-op: the like set has set semantics, enforced atomically
// by the storage layer.
func (s *FilmService) AddLike(ctx context.Context, filmID, userID uint) error {
	if _, err := s.filmRepo.GetByID(ctx, filmID); err != nil {
		return err
	}
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}

	if err := s.filmRepo.AddLike(ctx, filmID, userID); err != nil {
		return err
	}

	if err := s.recordFeed(ctx, userID, filmID, models.FeedOperationAdd); err != nil {
		return err
	}
	observability.EngagementEvents.WithLabelValues("like", "add").Inc()
	return nil
}

// RemoveLike removes the user's like from the film. Removing a like
// that does not exist is an error, never a silent no-op.
func (s *FilmService) RemoveLike(ctx context.Context, filmID, userID uint) error {
	if _, err := s.filmRepo.GetByID(ctx, filmID); err != nil {
		return err
	}
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}

	removed, err := s.filmRepo.RemoveLike(ctx, filmID, userID)
	if err != nil {
		return err
	}
	if !removed {
		return models.NewNotFoundError("Like", filmID)
	}

	if err := s.recordFeed(ctx, userID, filmID, models.FeedOperationRemove); err != nil {
		return err
	}
	observability.EngagementEvents.WithLabelValues("like", "remove").Inc()
	return nil
}

// GetMostPopular returns up to count films ranked by like count
// descending, film id ascending on ties. Genre and year filters narrow
// the candidate set before ranking and truncation. The unfiltered
// ranking is served cache-aside; filtered queries go straight to the
// database.
func (s *FilmService) GetMostPopular(ctx context.Context, count int, genreID *uint, year *int) ([]*models.Film, error) {
	filter := repository.PopularFilter{Count: count, GenreID: genreID, Year: year}

	if genreID == nil && year == nil {
		var films []*models.Film
		err := cache.CacheAside(ctx, cache.PopularFilmsKey(count), &films, cache.PopularFilmsTTL, func() error {
			ranked, err := s.filmRepo.ListRanked(ctx, filter)
			if err != nil {
				return err
			}
			films = ranked
			return nil
		})
		return films, err
	}

	return s.filmRepo.ListRanked(ctx, filter)
}

// SearchFilms finds films by substring match on the title, the director
// name, or both, most liked first. The by argument is a comma-separated
// subset of "title" and "director"; empty means both.
func (s *FilmService) SearchFilms(ctx context.Context, query, by string) ([]*models.Film, error) {
	if query == "" {
		return nil, models.NewValidationError("Search query must not be empty")
	}

	byTitle, byDirector := false, false
	if by == "" {
		byTitle, byDirector = true, true
	}
	for _, field := range strings.Split(by, ",") {
		switch strings.TrimSpace(field) {
		case "":
		case "title":
			byTitle = true
		case "director":
			byDirector = true
		default:
			return nil, models.NewValidationError("Search field must be title or director")
		}
	}

	return s.filmRepo.Search(ctx, query, byTitle, byDirector)
}

// GetFilmsByDirector returns the director's films sorted by release
// year or by like count.
func (s *FilmService) GetFilmsByDirector(ctx context.Context, directorID uint, sortBy string) ([]*models.Film, error) {
	if sortBy != "year" && sortBy != "likes" {
		return nil, models.NewValidationError("Sort must be year or likes")
	}
	return s.filmRepo.ListByDirector(ctx, directorID, sortBy)
}

// GetCommonFilms returns films liked by both users, most liked first.
func (s *FilmService) GetCommonFilms(ctx context.Context, userA, userB uint) ([]*models.Film, error) {
	if _, err := s.userRepo.GetByID(ctx, userA); err != nil {
		return nil, err
	}
	if _, err := s.userRepo.GetByID(ctx, userB); err != nil {
		return nil, err
	}
	return s.filmRepo.GetCommonFilms(ctx, userA, userB)
}

// earliestReleaseDate is the first public film screening.
var earliestReleaseDate = time.Date(1895, time.December, 28, 0, 0, 0, 0, time.UTC)

func validateFilm(film *models.Film) error {
	if film.Name == "" {
		return models.NewValidationError("Film name must not be empty")
	}
	if len(film.Description) > 200 {
		return models.NewValidationError("Film description too long (max 200 characters)")
	}
	if film.ReleaseDate.Before(earliestReleaseDate) {
		return models.NewValidationError("Release date cannot precede 1895-12-28")
	}
	if film.Duration <= 0 {
		return models.NewValidationError("Film duration must be positive")
	}
	return nil
}

func (s *FilmService) recordFeed(ctx context.Context, userID, filmID uint, op models.FeedOperation) error {
	return s.feedRepo.Record(ctx, &models.FeedEvent{
		UserID:    userID,
		EntityID:  filmID,
		EventType: models.FeedEventLike,
		Operation: op,
	})
}
