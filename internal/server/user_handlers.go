package server

import (
	"kinograph/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateUser handles POST /api/users
func (s *Server) CreateUser(c *fiber.Ctx) error {
	var user models.User
	if err := c.BodyParser(&user); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	created, err := s.userService.CreateUser(c.Context(), &user)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// GetUsers handles GET /api/users
func (s *Server) GetUsers(c *fiber.Ctx) error {
	p := parsePagination(c, 20)
	users, err := s.userService.ListUsers(c.Context(), p.Limit, p.Offset)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	if users == nil {
		users = []models.User{}
	}
	return c.JSON(users)
}

// GetUser handles GET /api/users/:id
func (s *Server) GetUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userService.GetUserByID(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(user)
}

// UpdateUser handles PUT /api/users/:id
func (s *Server) UpdateUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var user models.User
	if err := c.BodyParser(&user); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}
	user.ID = id

	updated, err := s.userService.UpdateUser(c.Context(), &user)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(updated)
}

// DeleteUser handles DELETE /api/users/:id
func (s *Server) DeleteUser(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.userService.DeleteUser(c.Context(), id); err != nil {
		return models.RespondWithError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddFriend handles PUT /api/users/:id/friends/:friendId
func (s *Server) AddFriend(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	friendID, err := s.parseID(c, "friendId")
	if err != nil {
		return nil
	}

	edge, err := s.friendService.AddFriend(c.Context(), userID, friendID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(edge)
}

// DeleteFriend handles DELETE /api/users/:id/friends/:friendId
func (s *Server) DeleteFriend(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	friendID, err := s.parseID(c, "friendId")
	if err != nil {
		return nil
	}

	// Removing an absent edge succeeds quietly; only unknown users fail.
	if _, err := s.friendService.DeleteFriend(c.Context(), userID, friendID); err != nil {
		return models.RespondWithError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetFriends handles GET /api/users/:id/friends
func (s *Server) GetFriends(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	friends, err := s.friendService.GetFriends(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	if friends == nil {
		friends = []models.User{}
	}
	return c.JSON(friends)
}

// GetCommonFriends handles GET /api/users/:id/friends/common/:otherId
func (s *Server) GetCommonFriends(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	otherID, err := s.parseID(c, "otherId")
	if err != nil {
		return nil
	}

	common, err := s.friendService.GetCommonFriends(c.Context(), userID, otherID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(common)
}

// GetRecommendations handles GET /api/users/:id/recommendations
func (s *Server) GetRecommendations(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	films, err := s.recommendationService.GetRecommendations(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	if films == nil {
		films = []*models.Film{}
	}
	return c.JSON(films)
}

// GetFeed handles GET /api/users/:id/feed
func (s *Server) GetFeed(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	limit := c.QueryInt("limit", defaultFeedLimit)
	if limit <= 0 {
		limit = defaultFeedLimit
	}
	if limit > maxPaginationLimit {
		limit = maxPaginationLimit
	}

	events, err := s.feedService.GetFeed(c.Context(), userID, limit)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	if events == nil {
		events = []models.FeedEvent{}
	}
	return c.JSON(events)
}
