package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"swaad/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateUser(
	ctx context.Context,
	username string,
	email string,
) (*User, error) {

	if username == "" || email == "" {
		return nil, fmt.Errorf("missing username or email: %w", core.ErrInvalidArgument)
	}

	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("email already exists: %w", core.ErrInvalidArgument)
	}

	user := &User{
		ID:       uuid.New().String(),
		Username: username,
		Email:    email,
		Orders:   []string{},
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *Service) GetUser(ctx context.Context, userID string) (*User, error) {
	return s.repo.ByID(ctx, userID)
}
