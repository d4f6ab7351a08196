package restaurant

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"swaad/internal/core"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// List all restaurants
// --------------------------------------------------
func (r *PostgresRepository) List(ctx context.Context) ([]*Restaurant, error) {
	rows, err := r.db.Query(ctx, `
		SELECT restaurant_id, name, borough, cuisine, created_at
		FROM restaurants
		ORDER BY restaurant_id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var restaurants []*Restaurant

	for rows.Next() {
		var res Restaurant
		if err := rows.Scan(
			&res.ID,
			&res.Name,
			&res.Borough,
			&res.Cuisine,
			&res.CreatedAt,
		); err != nil {
			return nil, err
		}
		restaurants = append(restaurants, &res)
	}

	return restaurants, rows.Err()
}

// --------------------------------------------------
// Fetch one restaurant
// --------------------------------------------------
func (r *PostgresRepository) ByID(
	ctx context.Context,
	restaurantID string,
) (*Restaurant, error) {

	var res Restaurant
	err := r.db.QueryRow(ctx, `
		SELECT restaurant_id, name, borough, cuisine, created_at
		FROM restaurants
		WHERE restaurant_id = $1
	`, restaurantID).Scan(
		&res.ID,
		&res.Name,
		&res.Borough,
		&res.Cuisine,
		&res.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("restaurant %s: %w", restaurantID, core.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	return &res, nil
}

// --------------------------------------------------
// Menu for one restaurant
// --------------------------------------------------
func (r *PostgresRepository) MenuByRestaurant(
	ctx context.Context,
	restaurantID string,
) ([]MenuItem, error) {

	rows, err := r.db.Query(ctx, `
		SELECT item_id, restaurant_id, name, section, description, price
		FROM menu_items
		WHERE restaurant_id = $1
		ORDER BY item_id
	`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []MenuItem

	for rows.Next() {
		var item MenuItem
		if err := rows.Scan(
			&item.ID,
			&item.RestaurantID,
			&item.Name,
			&item.Section,
			&item.Description,
			&item.Price,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// --------------------------------------------------
// Existence check
// --------------------------------------------------
func (r *PostgresRepository) Exists(
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
