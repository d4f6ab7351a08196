package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("Connected to PostgreSQL")

	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// initSchema creates or updates the database schema
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// RESTAURANTS + MENU
	// -------------------------------
	restaurantsSQL := `
		CREATE TABLE IF NOT EXISTS restaurants (
			restaurant_id VARCHAR(64) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			borough VARCHAR(100),
			cuisine VARCHAR(100),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, restaurantsSQL); err != nil {
		return err
	}

	menuItemsSQL := `
		CREATE TABLE IF NOT EXISTS menu_items (
			item_id VARCHAR(64) PRIMARY KEY,
			restaurant_id VARCHAR(64) NOT NULL REFERENCES restaurants(restaurant_id),
			name VARCHAR(255) NOT NULL,
			section VARCHAR(100),
			description TEXT,
			price NUMERIC(10,2),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, menuItemsSQL); err != nil {
		return err
	}

	// -------------------------------
	// INGREDIENT VOCABULARY + LINKS
	// -------------------------------
	ingredientsSQL := `
		CREATE TABLE IF NOT EXISTS ingredients (
			ingredient_id VARCHAR(64) PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			category VARCHAR(50)
		)
	`
	if _, err := db.Exec(ctx, ingredientsSQL); err != nil {
		return err
	}

	restaurantIngredientsSQL := `
		CREATE TABLE IF NOT EXISTS restaurant_ingredients (
			restaurant_id VARCHAR(64) REFERENCES restaurants(restaurant_id),
			ingredient_id VARCHAR(64) REFERENCES ingredients(ingredient_id),
			PRIMARY KEY (restaurant_id, ingredient_id)
		)
	`
	if _, err := db.Exec(ctx, restaurantIngredientsSQL); err != nil {
		return err
	}

	// -------------------------------
	// USERS + ORDERS
	// -------------------------------
	usersSQL := `
		CREATE TABLE IF NOT EXISTS users (
			user_id UUID PRIMARY KEY,
			username VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, usersSQL); err != nil {
		return err
	}

	ordersSQL := `
		CREATE TABLE IF NOT EXISTS orders (
			order_id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(user_id),
			restaurant_id VARCHAR(64) NOT NULL,
			items JSONB NOT NULL,
			status VARCHAR(50) NOT NULL DEFAULT 'pending',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, ordersSQL); err != nil {
		return err
	}

	// -------------------------------
	// PREFERENCES + NOTES
	// -------------------------------
	preferencesSQL := `
		CREATE TABLE IF NOT EXISTS user_preferences (
			user_id UUID PRIMARY KEY REFERENCES users(user_id),
			dietary_restrictions JSONB,
			spice_level VARCHAR(20),
			preferred_protein VARCHAR(100),
			avoid JSONB,
			other_preferences JSONB,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, preferencesSQL); err != nil {
		return err
	}

	notesSQL := `
		CREATE TABLE IF NOT EXISTS user_notes (
			id SERIAL PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(user_id),
			note_text TEXT NOT NULL,
			note_type VARCHAR(50),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, notesSQL); err != nil {
		return err
	}

	log.Println("Schema initialized successfully")
	return nil
}
