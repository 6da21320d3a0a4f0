package server

import (
	"kinograph/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateFilm handles POST /api/films
func (s *Server) CreateFilm(c *fiber.Ctx) error {
	var film models.Film
	if err := c.BodyParser(&film); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	created, err := s.filmService.CreateFilm(c.Context(), &film)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// GetFilms handles GET /api/films
func (s *Server) GetFilms(c *fiber.Ctx) error {
	p := parsePagination(c, 20)
	films, err := s.filmService.ListFilms(c.Context(), p.Limit, p.Offset)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	if films == nil {
		films = []*models.Film{}
	}
	return c.JSON(films)
}

// GetFilm handles GET /api/films/:id
func (s *Server) GetFilm(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	film, err := s.filmService.GetFilm(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(film)
}

// UpdateFilm handles PUT /api/films/:id
func (s *Server) UpdateFilm(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var film models.Film
	if err := c.BodyParser(&film); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}
	film.ID = id

	updated, err := s.filmService.UpdateFilm(c.Context(), &film)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(updated)
}

// DeleteFilm handles DELETE /api/films/:id
func (s *Server) DeleteFilm(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.filmService.DeleteFilm(c.Context(), id); err != nil {
		return models.RespondWithError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetPopularFilms handles GET /api/films/popular
func (s *Server) GetPopularFilms(c *fiber.Ctx) error {
	count := c.QueryInt("count", 10)

	var genreID *uint
	if g := c.QueryInt("genreId", 0); g > 0 {
		id := uint(g)
		genreID = &id
	}
	var year *int
	if y := c.QueryInt("year", 0); y > 0 {
		year = &y
	}

	films, err := s.filmService.GetMostPopular(c.Context(), count, genreID, year)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	if films == nil {
		films = []*models.Film{}
	}
	return c.JSON(films)
}

// SearchFilms handles GET /api/films/search
func (s *Server) SearchFilms(c *fiber.Ctx) error {
	query := c.Query("query")
	by := c.Query("by", "title,director")

	films, err := s.filmService.SearchFilms(c.Context(), query, by)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	if films == nil {
		films = []*models.Film{}
	}
	return c.JSON(films)
}

// GetFilmsByDirector handles GET /api/films/director/:directorId
func (s *Server) GetFilmsByDirector(c *fiber.Ctx) error {
	directorID, err := s.parseID(c, "directorId")
	if err != nil {
		return nil
	}
	sortBy := c.Query("sortBy", "year")

	films, err := s.filmService.GetFilmsByDirector(c.Context(), directorID, sortBy)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	if films == nil {
		films = []*models.Film{}
	}
	return c.JSON(films)
}

// GetCommonFilms handles GET /api/films/common
func (s *Server) GetCommonFilms(c *fiber.Ctx) error {
	userID := c.QueryInt("userId", 0)
	friendID := c.QueryInt("friendId", 0)
	if userID <= 0 || friendID <= 0 {
		return models.RespondWithError(c, models.NewValidationError("userId and friendId query parameters are required"))
	}

	films, err := s.filmService.GetCommonFilms(c.Context(), uint(userID), uint(friendID))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	if films == nil {
		films = []*models.Film{}
	}
	return c.JSON(films)
}

// LikeFilm handles PUT /api/films/:id/like/:userId
func (s *Server) LikeFilm(c *fiber.Ctx) error {
	filmID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	if err := s.filmService.AddLike(c.Context(), filmID, userID); err != nil {
		return models.RespondWithError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UnlikeFilm handles DELETE /api/films/:id/like/:userId
func (s *Server) UnlikeFilm(c *fiber.Ctx) error {
	filmID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	if err := s.filmService.RemoveLike(c.Context(), filmID, userID); err != nil {
		return models.RespondWithError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
