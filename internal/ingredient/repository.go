package ingredient

import "context"

// Repository defines the data-access contract for the ingredient index.
// The index depends ONLY on this interface.
type Repository interface {
	// Links returns every restaurant->ingredient row with restaurant info.
	Links(ctx context.Context) ([]Link, error)

	// ByRestaurant returns the restaurant's ingredient set.
	ByRestaurant(ctx context.Context, restaurantID string) ([]Ingredient, error)

	// RestaurantExists distinguishes "unknown restaurant" from
	// "restaurant with no linked ingredients".
	RestaurantExists(ctx context.Context, restaurantID string) (bool, error)
}
