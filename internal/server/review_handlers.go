package server

import (
	"kinograph/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateReview handles POST /api/reviews
func (s *Server) CreateReview(c *fiber.Ctx) error {
	var review models.Review
	if err := c.BodyParser(&review); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	created, err := s.reviewService.CreateReview(c.Context(), &review)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// GetReviews handles GET /api/reviews
func (s *Server) GetReviews(c *fiber.Ctx) error {
	count := c.QueryInt("count", 10)

	var filmID *uint
	if f := c.QueryInt("filmId", 0); f > 0 {
		id := uint(f)
		filmID = &id
	}

	reviews, err := s.reviewService.GetReviews(c.Context(), filmID, count)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	return c.JSON(reviews)
}

// GetReview handles GET /api/reviews/:id
func (s *Server) GetReview(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	review, err := s.reviewService.GetReview(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(review)
}

// UpdateReview handles PUT /api/reviews/:id
func (s *Server) UpdateReview(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var body struct {
		Content    string `json:"content"`
		IsPositive bool   `json:"isPositive"`
	}
	if err := c.BodyParser(&body); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	updated, err := s.reviewService.UpdateReview(c.Context(), id, body.Content, body.IsPositive)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(updated)
}

// DeleteReview handles DELETE /api/reviews/:id
func (s *Server) DeleteReview(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.reviewService.DeleteReview(c.Context(), id); err != nil {
		return models.RespondWithError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) reactToReview(c *fiber.Ctx, isPositive bool) error {
	reviewID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	review, err := s.reviewService.AddReaction(c.Context(), reviewID, userID, isPositive)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(review)
}

func (s *Server) unreactToReview(c *fiber.Ctx, isPositive bool) error {
	reviewID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	review, err := s.reviewService.RemoveReaction(c.Context(), reviewID, userID, isPositive)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(review)
}

// LikeReview handles PUT /api/reviews/:id/like/:userId
func (s *Server) LikeReview(c *fiber.Ctx) error {
	return s.reactToReview(c, true)
}

// DislikeReview handles PUT /api/reviews/:id/dislike/:userId
func (s *Server) DislikeReview(c *fiber.Ctx) error {
	return s.reactToReview(c, false)
}

// RemoveReviewLike handles DELETE /api/reviews/:id/like/:userId
func (s *Server) RemoveReviewLike(c *fiber.Ctx) error {
	return s.unreactToReview(c, true)
}

// RemoveReviewDislike handles DELETE /api/reviews/:id/dislike/:userId
func (s *Server) RemoveReviewDislike(c *fiber.Ctx) error {
	return s.unreactToReview(c, false)
}
