package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"kinograph/internal/cache"
	"kinograph/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PopularFilter narrows the popularity ranking before it is truncated.
// A nil GenreID or Year means no filtering on that dimension.
type PopularFilter struct {
	Count   int
	GenreID *uint
	Year    *int
}

// FilmRepository defines persistence operations for films and likes.
type FilmRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Film, error)
	FindByIDs(ctx context.Context, ids []uint) ([]*models.Film, error)
	Create(ctx context.Context, film *models.Film) error
	Update(ctx context.Context, film *models.Film) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, limit, offset int) ([]*models.Film, error)

	AddLike(ctx context.Context, filmID, userID uint) error
	RemoveLike(ctx context.Context, filmID, userID uint) (bool, error)
	GetLikes(ctx context.Context, filmID uint) ([]uint, error)
	GetLikedFilmIDs(ctx context.Context, userID uint) ([]uint, error)
	ListAllLikes(ctx context.Context) ([]models.Like, error)
	ListRanked(ctx context.Context, filter PopularFilter) ([]*models.Film, error)
	GetCommonFilms(ctx context.Context, userA, userB uint) ([]*models.Film, error)
	Search(ctx context.Context, query string, byTitle, byDirector bool) ([]*models.Film, error)
	ListByDirector(ctx context.Context, directorID uint, sortBy string) ([]*models.Film, error)
}

type filmRepository struct {
	db *gorm.DB
}

// NewFilmRepository returns a new FilmRepository implementation.
func NewFilmRepository(db *gorm.DB) FilmRepository {
	return &filmRepository{db: db}
}

func (r *filmRepository) GetByID(ctx context.Context, id uint) (*models.Film, error) {
	var film models.Film
	if err := r.db.WithContext(ctx).
		Preload("Genres").
		Preload("Mpa").
		Preload("Directors").
		First(&film, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Film", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &film, nil
}

func (r *filmRepository) FindByIDs(ctx context.Context, ids []uint) ([]*models.Film, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var films []*models.Film
	if err := r.db.WithContext(ctx).
		Preload("Genres").
		Preload("Mpa").
		Where("id IN ?", ids).
		Order("id ASC").
		Find(&films).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return films, nil
}

func (r *filmRepository) Create(ctx context.Context, film *models.Film) error {
	if err := r.db.WithContext(ctx).Create(film).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *filmRepository) Update(ctx context.Context, film *models.Film) error {
	if err := r.db.WithContext(ctx).Save(film).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateFilm(ctx, film.ID)
	cache.InvalidatePopularFilms(ctx)
	return nil
}

func (r *filmRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Film{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateFilm(ctx, id)
	cache.InvalidatePopularFilms(ctx)
	return nil
}

func (r *filmRepository) List(ctx context.Context, limit, offset int) ([]*models.Film, error) {
	var films []*models.Film
	if err := r.db.WithContext(ctx).
		Preload("Genres").
		Preload("Mpa").
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		Find(&films).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return films, nil
}

// AddLike inserts the (film, user) like membership. The insert is atomic:
// ON CONFLICT DO NOTHING makes a repeated like a no-op instead of a
// duplicate-key error, so no service-level lock is needed.
func (r *filmRepository) AddLike(ctx context.Context, filmID, userID uint) error {
	like := models.Like{UserID: userID, FilmID: filmID}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "film_id"}},
			DoNothing: true,
		}).
		Create(&like).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateFilm(ctx, filmID)
	cache.InvalidatePopularFilms(ctx)
	return nil
}

// RemoveLike deletes the like and reports whether a row existed. The
// rows-affected check makes the delete the single atomic decision point,
// so concurrent removals cannot both observe the like as present.
func (r *filmRepository) RemoveLike(ctx context.Context, filmID, userID uint) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND film_id = ?", userID, filmID).
		Delete(&models.Like{})
	if res.Error != nil {
		return false, models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return false, nil
	}
	cache.InvalidateFilm(ctx, filmID)
	cache.InvalidatePopularFilms(ctx)
	return true, nil
}

func (r *filmRepository) GetLikes(ctx context.Context, filmID uint) ([]uint, error) {
	var userIDs []uint
	if err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("film_id = ?", filmID).
		Order("user_id ASC").
		Pluck("user_id", &userIDs).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return userIDs, nil
}

func (r *filmRepository) GetLikedFilmIDs(ctx context.Context, userID uint) ([]uint, error) {
	var filmIDs []uint
	if err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ?", userID).
		Order("film_id ASC").
		Pluck("film_id", &filmIDs).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return filmIDs, nil
}

func (r *filmRepository) ListAllLikes(ctx context.Context) ([]models.Like, error) {
	var likes []models.Like
	if err := r.db.WithContext(ctx).
		Order("user_id ASC, film_id ASC").
		Find(&likes).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return likes, nil
}

// likesCountSelect exposes the per-film like count as a scannable column.
const likesCountSelect = "films.*, (SELECT COUNT(*) FROM likes WHERE likes.film_id = films.id) AS likes_count"

// ListRanked returns films ordered by like count descending with film id
// ascending as the tie-break. Filters are applied before ranking and
// before truncation. The count always truncates: a count of zero yields
// zero films rather than the whole ranking.
func (r *filmRepository) ListRanked(ctx context.Context, filter PopularFilter) ([]*models.Film, error) {
	db := r.db.WithContext(ctx).
		Model(&models.Film{}).
		Select(likesCountSelect)

	if filter.GenreID != nil {
		db = db.Joins("JOIN film_genres ON film_genres.film_id = films.id").
			Where("film_genres.genre_id = ?", *filter.GenreID)
	}
	if filter.Year != nil {
		start := time.Date(*filter.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
		db = db.Where("films.release_date >= ? AND films.release_date < ?", start, start.AddDate(1, 0, 0))
	}

	db = db.Order("likes_count DESC, films.id ASC").Limit(clampCount(filter.Count))

	var films []*models.Film
	if err := db.Preload("Genres").Preload("Mpa").Find(&films).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return films, nil
}

// clampCount floors a result count at zero. A negative limit would make
// GORM drop the LIMIT clause entirely instead of returning nothing.
func clampCount(count int) int {
	if count < 0 {
		return 0
	}
	return count
}

// Search returns films whose title or a director's name contains the
// query, case-insensitively, ordered by like count descending then film
// id ascending.
func (r *filmRepository) Search(ctx context.Context, query string, byTitle, byDirector bool) ([]*models.Film, error) {
	pattern := "%" + strings.ToLower(query) + "%"

	db := r.db.WithContext(ctx).
		Model(&models.Film{}).
		Select(likesCountSelect)

	switch {
	case byTitle && byDirector:
		db = db.Where(
			"LOWER(films.name) LIKE ? OR films.id IN (?)",
			pattern, directedByName(r.db, pattern),
		)
	case byTitle:
		db = db.Where("LOWER(films.name) LIKE ?", pattern)
	case byDirector:
		db = db.Where("films.id IN (?)", directedByName(r.db, pattern))
	}

	var films []*models.Film
	if err := db.Order("likes_count DESC, films.id ASC").
		Preload("Genres").Preload("Mpa").Preload("Directors").
		Find(&films).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return films, nil
}

// directedByName selects film ids whose director matches the pattern.
func directedByName(db *gorm.DB, pattern string) *gorm.DB {
	return db.Table("film_directors").
		Select("film_directors.film_id").
		Joins("JOIN directors ON directors.id = film_directors.director_id").
		Where("LOWER(directors.name) LIKE ?", pattern)
}

// ListByDirector returns the director's films sorted by release year
// ascending or by like count descending. An unknown director is an
// error, not an empty result.
func (r *filmRepository) ListByDirector(ctx context.Context, directorID uint, sortBy string) ([]*models.Film, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Director{}).
		Where("id = ?", directorID).
		Count(&count).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	if count == 0 {
		return nil, models.NewNotFoundError("Director", directorID)
	}

	order := "films.release_date ASC, films.id ASC"
	if sortBy == "likes" {
		order = "likes_count DESC, films.id ASC"
	}

	var films []*models.Film
	if err := r.db.WithContext(ctx).
		Model(&models.Film{}).
		Select(likesCountSelect).
		Joins("JOIN film_directors ON film_directors.film_id = films.id").
		Where("film_directors.director_id = ?", directorID).
		Order(order).
		Preload("Genres").Preload("Mpa").Preload("Directors").
		Find(&films).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return films, nil
}

// GetCommonFilms returns films liked by both users, ordered by global
// like count descending then film id ascending.
func (r *filmRepository) GetCommonFilms(ctx context.Context, userA, userB uint) ([]*models.Film, error) {
	likedBy := func(userID uint) *gorm.DB {
		return r.db.Model(&models.Like{}).Select("film_id").Where("user_id = ?", userID)
	}

	var films []*models.Film
	if err := r.db.WithContext(ctx).
		Model(&models.Film{}).
		Select(likesCountSelect).
		Where("films.id IN (?)", likedBy(userA)).
		Where("films.id IN (?)", likedBy(userB)).
		Order("likes_count DESC, films.id ASC").
		Find(&films).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return films, nil
}
