package service

import (
	"context"
	"sort"

	"kinograph/internal/models"
	"kinograph/internal/observability"
	"kinograph/internal/repository"

	"go.opentelemetry.io/otel/attribute"
)

// RecommendationService produces film recommendations with a
// single-neighbor collaborative filter: the one user with the largest
// exact like-overlap contributes the films the target has not liked yet.
type RecommendationService struct {
	filmRepo repository.FilmRepository
	userRepo repository.UserRepository
}

// NewRecommendationService returns a new RecommendationService.
func NewRecommendationService(filmRepo repository.FilmRepository, userRepo repository.UserRepository) *RecommendationService {
	return &RecommendationService{
		filmRepo: filmRepo,
		userRepo: userRepo,
	}
}

// GetRecommendations returns films liked by the most similar user that
// the target user has not liked, ordered by ascending film id. The most
// similar user is the one sharing the most likes with the target;
// among equally similar users the smallest user id wins, so results are
// deterministic. A target sharing no likes with anyone gets an empty
// result.
func (s *RecommendationService) GetRecommendations(ctx context.Context, userID uint) ([]*models.Film, error) {
	span, ctx := observability.NewSpan(ctx, "recommendations.compute")
	defer span.End()
	span.AddAttributes(attribute.Int("user.id", int(userID)))

	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	likes, err := s.filmRepo.ListAllLikes(ctx)
	if err != nil {
		span.SetError(err)
		return nil, err
	}

	likesByUser := make(map[uint]map[uint]struct{})
	for _, like := range likes {
		set, ok := likesByUser[like.UserID]
		if !ok {
			set = make(map[uint]struct{})
			likesByUser[like.UserID] = set
		}
		set[like.FilmID] = struct{}{}
	}
	mine := likesByUser[userID]

	candidates := make([]uint, 0, len(likesByUser))
	for id := range likesByUser {
		if id != userID {
			candidates = append(candidates, id)
		}
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i] < candidates[j] })

	var bestUser uint
	bestOverlap := 0
	for _, candidate := range candidates {
		overlap := 0
		for filmID := range likesByUser[candidate] {
			if _, ok := mine[filmID]; ok {
				overlap++
			}
		}
		// strict > keeps the smallest-id candidate on ties
		if overlap > bestOverlap {
			bestOverlap = overlap
			bestUser = candidate
		}
	}

	if bestOverlap == 0 {
		observability.RecommendationRequests.WithLabelValues("empty").Inc()
		return []*models.Film{}, nil
	}

	var filmIDs []uint
	for filmID := range likesByUser[bestUser] {
		if _, ok := mine[filmID]; !ok {
			filmIDs = append(filmIDs, filmID)
		}
	}
	if len(filmIDs) == 0 {
		observability.RecommendationRequests.WithLabelValues("empty").Inc()
		return []*models.Film{}, nil
	}
	sort.Slice(filmIDs, func(i, j int) bool { return filmIDs[i] < filmIDs[j] })

	films, err := s.filmRepo.FindByIDs(ctx, filmIDs)
	if err != nil {
		return nil, err
	}
	observability.RecommendationRequests.WithLabelValues("hit").Inc()
	return films, nil
}
