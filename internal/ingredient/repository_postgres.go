package ingredient

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// All restaurant->ingredient links
// --------------------------------------------------
func (r *PostgresRepository) Links(ctx context.Context) ([]Link, error) {
	rows, err := r.db.Query(ctx, `
		SELECT
			res.restaurant_id,
			res.name,
			res.cuisine,
			i.ingredient_id,
			i.name,
			i.category
		FROM restaurant_ingredients ri
		JOIN restaurants res ON res.restaurant_id = ri.restaurant_id
		JOIN ingredients i ON i.ingredient_id = ri.ingredient_id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var links []Link

	for rows.Next() {
		var l Link
		if err := rows.Scan(
			&l.RestaurantID,
			&l.RestaurantName,
			&l.Cuisine,
			&l.Ingredient.ID,
			&l.Ingredient.Name,
			&l.Ingredient.Category,
		); err != nil {
			return nil, err
		}
		links = append(links, l)
	}

	return links, rows.Err()
}

// --------------------------------------------------
// Ingredient set for one restaurant
// --------------------------------------------------
func (r *PostgresRepository) ByRestaurant(
	ctx context.Context,
	restaurantID string,
) ([]Ingredient, error) {

	rows, err := r.db.Query(ctx, `
		SELECT i.ingredient_id, i.name, i.category
		FROM restaurant_ingredients ri
		JOIN ingredients i ON i.ingredient_id = ri.ingredient_id
		WHERE ri.restaurant_id = $1
		ORDER BY i.ingredient_id
	`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ingredients []Ingredient

	for rows.Next() {
		var ing Ingredient
		if err := rows.Scan(&ing.ID, &ing.Name, &ing.Category); err != nil {
			return nil, err
		}
		ingredients = append(ingredients, ing)
	}

	return ingredients, rows.Err()
}

// --------------------------------------------------
// Existence check
// --------------------------------------------------
func (r *PostgresRepository) RestaurantExists(
	ctx context.Context,
	restaurantID string,
) (bool, error) {

	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM restaurants WHERE restaurant_id = $1
		)
	`, restaurantID).Scan(&exists)

	return exists, err
}
