package restaurant

import "context"

// Repository defines the read-only restaurant store contract.
// Service depends ONLY on this interface.
type Repository interface {
	List(ctx context.Context) ([]*Restaurant, error)
	ByID(ctx context.Context, restaurantID string) (*Restaurant, error)
	MenuByRestaurant(ctx context.Context, restaurantID string) ([]MenuItem, error)
	Exists(ctx context.Context, restaurantID string) (bool, error)
}
