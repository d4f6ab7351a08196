package dataset

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"swaad/internal/ingredient"
)

// RestaurantRecord is one entry of the seed dataset: a restaurant with
// its embedded menu, as exported from the source catalog.
type RestaurantRecord struct {
	RestaurantID string       `json:"restaurant_id"`
	Name         string       `json:"name"`
	Borough      string       `json:"borough"`
	Cuisine      string       `json:"cuisine"`
	Menu         []MenuRecord `json:"menu"`
}

type MenuRecord struct {
	ID          string  `json:"_id"`
	Name        string  `json:"name"`
	Section     string  `json:"section"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// Stats reports what one import run wrote.
type Stats struct {
	Restaurants int
	MenuItems   int
	Ingredients int
	Links       int
}

// Parse decodes a seed dataset file. The file is a JSON array of
// restaurant records.
func Parse(data []byte) ([]RestaurantRecord, error) {
	var records []RestaurantRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("dataset undecodable: %w", err)
	}
	return records, nil
}

// Import writes the dataset into Postgres: restaurants, menu items, the
// ingredient vocabulary, and the derived restaurant-ingredient links.
// Rows are upserted so re-running the importer is safe.
func Import(
	ctx context.Context,
	db *pgxpool.Pool,
	records []RestaurantRecord,
	vocab []ingredient.Ingredient,
) (*Stats, error) {

	stats := &Stats{}

	for _, ing := range vocab {
		_, err := db.Exec(ctx, `
			INSERT INTO ingredients (ingredient_id, name, category)
			VALUES ($1, $2, $3)
			ON CONFLICT (ingredient_id) DO NOTHING
		`, ing.ID, ing.Name, ing.Category)
		if err != nil {
			return nil, fmt.Errorf("insert ingredient %s: %w", ing.ID, err)
		}
		stats.Ingredients++
	}

	for _, rec := range records {
		if rec.RestaurantID == "" || rec.Name == "" {
			continue
		}

		_, err := db.Exec(ctx, `
			INSERT INTO restaurants (restaurant_id, name, borough, cuisine)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (restaurant_id) DO UPDATE
			SET name = EXCLUDED.name,
			    borough = EXCLUDED.borough,
			    cuisine = EXCLUDED.cuisine
		`, rec.RestaurantID, rec.Name, rec.Borough, rec.Cuisine)
		if err != nil {
			return nil, fmt.Errorf("insert restaurant %s: %w", rec.RestaurantID, err)
		}
		stats.Restaurants++

		var menuTexts []ingredient.MenuText

		for _, item := range rec.Menu {
			if item.ID == "" || item.Name == "" {
				continue
			}

			_, err := db.Exec(ctx, `
				INSERT INTO menu_items (item_id, restaurant_id, name, section, description, price)
				VALUES ($1, $2, $3, $4, $5, $6)
				ON CONFLICT (item_id) DO UPDATE
				SET name = EXCLUDED.name,
				    section = EXCLUDED.section,
				    description = EXCLUDED.description,
				    price = EXCLUDED.price
			`, item.ID, rec.RestaurantID, item.Name, item.Section, item.Description, item.Price)
			if err != nil {
				return nil, fmt.Errorf("insert menu item %s: %w", item.ID, err)
			}
			stats.MenuItems++

			menuTexts = append(menuTexts, ingredient.MenuText{
				Name:        item.Name,
				Description: item.Description,
			})
		}

		for _, ing := range ingredient.DeriveFromMenu(menuTexts, vocab) {
			_, err := db.Exec(ctx, `
				INSERT INTO restaurant_ingredients (restaurant_id, ingredient_id)
				VALUES ($1, $2)
				ON CONFLICT DO NOTHING
			`, rec.RestaurantID, ing.ID)
			if err != nil {
				return nil, fmt.Errorf("link %s -> %s: %w", rec.RestaurantID, ing.ID, err)
			}
			stats.Links++
		}
	}

	return stats, nil
}
