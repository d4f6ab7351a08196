package main

import (
	"context"
	"flag"
	"log"
	"os"

	"swaad/internal/dataset"
	"swaad/internal/db"
	"swaad/internal/ingredient"
	"swaad/internal/storage"

	"github.com/joho/godotenv"
)

// Seed importer: loads a restaurant dataset from a local file or an
// S3-compatible bucket and writes it into Postgres.
//
//	go run ./cmd/import -file data/restaurants.json
//	go run ./cmd/import -key  datasets/restaurants.json
func main() {

	var (
		file = flag.String("file", "", "local dataset file")
		key  = flag.String("key", "", "object store key (DATASET_S3_* env vars)")
	)
	flag.Parse()

	if (*file == "") == (*key == "") {
		log.Fatal("❌ Provide exactly one of -file or -key")
	}

	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}
	if os.Getenv("DATABASE_URL") == "" {
		log.Fatal("❌ Missing env var: DATABASE_URL")
	}

	ctx := context.Background()

	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	var (
		data []byte
		err  error
	)
	if *file != "" {
		data, err = os.ReadFile(*file)
		if err != nil {
			log.Fatal("❌ Read failed:", err)
		}
	} else {
		store, err := storage.NewObjectStore(ctx)
		if err != nil {
			log.Fatal("❌ Object store init failed:", err)
		}
		data, err = store.Fetch(ctx, *key)
		if err != nil {
			log.Fatal("❌ Fetch failed:", err)
		}
	}

	records, err := dataset.Parse(data)
	if err != nil {
		log.Fatal("❌ Parse failed:", err)
	}

	stats, err := dataset.Import(ctx, pgDB, records, ingredient.DefaultVocabulary())
	if err != nil {
		log.Fatal("❌ Import failed:", err)
	}

	log.Printf(
		"✅ Imported %d restaurants, %d menu items, %d ingredients, %d links",
		stats.Restaurants, stats.MenuItems, stats.Ingredients, stats.Links,
	)
}
