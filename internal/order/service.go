package order

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"swaad/internal/core"
)

// UserChecker and RestaurantChecker are the slices of the other stores
// this service needs for referential checks.
type UserChecker interface {
	Exists(ctx context.Context, userID string) (bool, error)
}

type RestaurantChecker interface {
	Exists(ctx context.Context, restaurantID string) (bool, error)
}

type Service struct {
	repo        Repository
	users       UserChecker
	restaurants RestaurantChecker
}

func NewService(
	repo Repository,
	users UserChecker,
	restaurants RestaurantChecker,
) *Service {
	return &Service{
		repo:        repo,
		users:       users,
		restaurants: restaurants,
	}
}

func (s *Service) CreateOrder(
	ctx context.Context,
	userID string,
	restaurantID string,
	items []string,
) (*Order, error) {

	if userID == "" || restaurantID == "" || len(items) == 0 {
		return nil, fmt.Errorf(
			"missing user_id, restaurant_id, or items: %w", core.ErrInvalidArgument)
	}

	exists, err := s.users.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("user %s: %w", userID, core.ErrNotFound)
	}

	exists, err = s.restaurants.Exists(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("restaurant %s: %w", restaurantID, core.ErrNotFound)
	}

	order := &Order{
		ID:           uuid.New().String(),
		UserID:       userID,
		RestaurantID: restaurantID,
		Items:        items,
		Status:       StatusPending,
	}

	if err := s.repo.Create(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

func (s *Service) GetOrder(ctx context.Context, orderID string) (*Order, error) {
	return s.repo.ByID(ctx, orderID)
}

func (s *Service) ListUserOrders(ctx context.Context, userID string) ([]Order, error) {
	exists, err := s.users.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("user %s: %w", userID, core.ErrNotFound)
	}

	orders, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []Order{}
	}
	return orders, nil
}
