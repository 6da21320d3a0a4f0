package service

import (
	"context"
	"strings"
	"time"

	"kinograph/internal/models"
	"kinograph/internal/repository"
)

// UserService manages the user catalog backing the engagement graph.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) ListUsers(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.userRepo.List(ctx, limit, offset)
}

func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *UserService) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	if err := validateUser(user); err != nil {
		return nil, err
	}
	existing, err := s.userRepo.GetByEmail(ctx, user.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("Email already registered")
	}
	if user.Name == "" {
		user.Name = user.Login
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) UpdateUser(ctx context.Context, user *models.User) (*models.User, error) {
	if err := validateUser(user); err != nil {
		return nil, err
	}
	current, err := s.userRepo.GetByID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	current.Email = user.Email
	current.Login = user.Login
	current.Birthday = user.Birthday
	if user.Name != "" {
		current.Name = user.Name
	} else {
		current.Name = user.Login
	}
	if err := s.userRepo.Update(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, id)
}

func validateUser(user *models.User) error {
	if user.Email == "" || !strings.Contains(user.Email, "@") {
		return models.NewValidationError("Email must be a valid address")
	}
	if user.Login == "" || strings.ContainsAny(user.Login, " \t") {
		return models.NewValidationError("Login must be non-empty and contain no spaces")
	}
	if user.Birthday.After(time.Now()) {
		return models.NewValidationError("Birthday cannot be in the future")
	}
	return nil
}
