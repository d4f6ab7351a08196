package preference

import (
	"context"
	"fmt"

	"swaad/internal/core"
)

// UserChecker is the slice of the user store this service needs.
type UserChecker interface {
	Exists(ctx context.Context, userID string) (bool, error)
}

type Service struct {
	repo  Repository
	users UserChecker
}

func NewService(repo Repository, users UserChecker) *Service {
	return &Service{repo: repo, users: users}
}

func (s *Service) Get(ctx context.Context, userID string) (Preference, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return Preference{}, err
	}
	return s.repo.ByUser(ctx, userID)
}

// Update applies a partial update and returns the merged record.
func (s *Service) Update(
	ctx context.Context,
	userID string,
	update Update,
) (Preference, error) {

	if err := s.requireUser(ctx, userID); err != nil {
		return Preference{}, err
	}

	existing, err := s.repo.ByUser(ctx, userID)
	if err != nil {
		return Preference{}, err
	}

	merged := Merge(existing, update)

	if err := s.repo.Save(ctx, userID, merged); err != nil {
		return Preference{}, err
	}

	return merged, nil
}

func (s *Service) requireUser(ctx context.Context, userID string) error {
	exists, err := s.users.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("user %s: %w", userID, core.ErrNotFound)
	}
	return nil
}
