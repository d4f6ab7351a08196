package restaurant

import (
	"context"
	"fmt"

	"swaad/internal/core"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListRestaurants(ctx context.Context) ([]*Restaurant, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetRestaurant(
	ctx context.Context,
	restaurantID string,
) (*Restaurant, error) {

	if restaurantID == "" {
		return nil, fmt.Errorf("missing restaurant id: %w", core.ErrInvalidArgument)
	}
	return s.repo.ByID(ctx, restaurantID)
}

// GetMenu returns the restaurant's menu, failing with NotFound when the
// restaurant itself is unknown (an empty menu is a valid answer).
func (s *Service) GetMenu(
	ctx context.Context,
	restaurantID string,
) ([]MenuItem, error) {

	exists, err := s.repo.Exists(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("restaurant %s: %w", restaurantID, core.ErrNotFound)
	}

	return s.repo.MenuByRestaurant(ctx, restaurantID)
}
