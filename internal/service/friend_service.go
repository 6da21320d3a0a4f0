package service

import (
	"context"

	"kinograph/internal/lock"
	"kinograph/internal/models"
	"kinograph/internal/observability"
	"kinograph/internal/repository"
)

// FriendService manages the directed friendship graph. Each user owns
// its outgoing edges; an edge is confirmed only while the reciprocal
// edge also exists.
type FriendService struct {
	friendshipRepo repository.FriendshipRepository
	userRepo       repository.UserRepository
	feedRepo       repository.FeedRepository
	locks          *lock.KeyMutex
}

// NewFriendService returns a new FriendService.
func NewFriendService(friendshipRepo repository.FriendshipRepository, userRepo repository.UserRepository, feedRepo repository.FeedRepository) *FriendService {
	return &FriendService{
		friendshipRepo: friendshipRepo,
		userRepo:       userRepo,
		feedRepo:       feedRepo,
		locks:          lock.NewKeyMutex(),
	}
}

// AddFriend creates the edge userID->friendID. The new edge starts
// pending; if the reciprocal edge already exists, both edges become
// confirmed. The check-then-insert sequence is serialized per unordered
// pair so concurrent requests for the same two users cannot race.
func (s *FriendService) AddFriend(ctx context.Context, userID, friendID uint) (*models.Friendship, error) {
	if userID == friendID {
		return nil, models.NewValidationError("Cannot add yourself as a friend")
	}

	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	if _, err := s.userRepo.GetByID(ctx, friendID); err != nil {
		return nil, err
	}

	key := lock.PairKey("friendship", userID, friendID)
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	existing, err := s.friendshipRepo.GetEdge(ctx, userID, friendID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("Friend already added")
	}

	reciprocal, err := s.friendshipRepo.GetEdge(ctx, friendID, userID)
	if err != nil {
		return nil, err
	}

	status := models.FriendshipStatusPending
	if reciprocal != nil {
		status = models.FriendshipStatusConfirmed
	}

	// Creating a confirmed edge promotes the reciprocal edge in the same
	// storage transaction.
	edge := &models.Friendship{
		OwnerID:  userID,
		FriendID: friendID,
		Status:   status,
	}
	if err := s.friendshipRepo.Create(ctx, edge); err != nil {
		return nil, err
	}

	if err := s.recordFeed(ctx, userID, friendID, models.FeedOperationAdd); err != nil {
		return nil, err
	}
	observability.EngagementEvents.WithLabelValues("friendship", "add").Inc()

	return edge, nil
}

// DeleteFriend removes the edge userID->friendID and reports whether it
// existed. A surviving reciprocal confirmed edge is demoted to pending,
// not removed: the reverse relationship continues as a one-directional
// friendship.
func (s *FriendService) DeleteFriend(ctx context.Context, userID, friendID uint) (bool, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return false, err
	}
	if _, err := s.userRepo.GetByID(ctx, friendID); err != nil {
		return false, err
	}

	key := lock.PairKey("friendship", userID, friendID)
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	// The delete and the demotion of a surviving confirmed reciprocal
	// edge share one storage transaction.
	removed, err := s.friendshipRepo.Delete(ctx, userID, friendID)
	if err != nil {
		return false, err
	}
	if !removed {
		return false, nil
	}

	if err := s.recordFeed(ctx, userID, friendID, models.FeedOperationRemove); err != nil {
		return false, err
	}
	observability.EngagementEvents.WithLabelValues("friendship", "remove").Inc()

	return true, nil
}

// GetFriends returns every user the given user holds an edge to,
// regardless of edge status.
func (s *FriendService) GetFriends(ctx context.Context, userID uint) ([]models.User, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.friendshipRepo.GetFriends(ctx, userID)
}

// GetCommonFriends returns the users both userA and userB hold edges to.
func (s *FriendService) GetCommonFriends(ctx context.Context, userA, userB uint) ([]models.User, error) {
	if _, err := s.userRepo.GetByID(ctx, userA); err != nil {
		return nil, err
	}
	if _, err := s.userRepo.GetByID(ctx, userB); err != nil {
		return nil, err
	}

	idsA, err := s.friendshipRepo.GetFriendIDs(ctx, userA)
	if err != nil {
		return nil, err
	}
	idsB, err := s.friendshipRepo.GetFriendIDs(ctx, userB)
	if err != nil {
		return nil, err
	}

	inB := make(map[uint]struct{}, len(idsB))
	for _, id := range idsB {
		inB[id] = struct{}{}
	}

	var common []uint
	for _, id := range idsA {
		if _, ok := inB[id]; ok {
			common = append(common, id)
		}
	}
	if len(common) == 0 {
		return []models.User{}, nil
	}

	return s.userRepo.FindByIDs(ctx, common)
}

func (s *FriendService) recordFeed(ctx context.Context, userID, friendID uint, op models.FeedOperation) error {
	return s.feedRepo.Record(ctx, &models.FeedEvent{
		UserID:    userID,
		EntityID:  friendID,
		EventType: models.FeedEventFriend,
		Operation: op,
	})
}
