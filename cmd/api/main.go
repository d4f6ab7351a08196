package main

import (
	"log"
	"os"
	"time"

	"swaad/internal/db"
	"swaad/internal/ingredient"
	"swaad/internal/llm"
	"swaad/internal/notes"
	"swaad/internal/order"
	"swaad/internal/preference"
	"swaad/internal/recommend"
	"swaad/internal/restaurant"
	"swaad/internal/user"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"DATABASE_URL",
		"GROQ_API_KEY",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── REPOS ─────────────────────────
	restaurantRepo := restaurant.NewPostgresRepository(pgDB)
	ingredientRepo := ingredient.NewPostgresRepository(pgDB)
	userRepo := user.NewPostgresRepository(pgDB)
	orderRepo := order.NewPostgresRepository(pgDB)
	preferenceRepo := preference.NewPostgresRepository(pgDB)
	notesRepo := notes.NewPostgresRepository(pgDB)

	// ───────────────────────── LLM ─────────────────────────
	model := llm.NewGroqClient()

	// ───────────────────────── SERVICES ─────────────────────────
	restaurantService := restaurant.NewService(restaurantRepo)
	ingredientIndex := ingredient.NewIndex(ingredientRepo)
	userService := user.NewService(userRepo)
	orderService := order.NewService(orderRepo, userRepo, restaurantRepo)
	preferenceService := preference.NewService(preferenceRepo, userRepo)

	recommendService := recommend.NewService(
		restaurantRepo,
		ingredientIndex,
		preferenceRepo,
		orderRepo,
		userRepo,
		model,
	)

	notesService := notes.NewService(
		notesRepo,
		userRepo,
		preferenceRepo,
		orderRepo,
		restaurantRepo,
		model,
	)

	// ───────────────────────── HANDLERS ─────────────────────────
	restaurantHandler := restaurant.NewHandler(restaurantService)
	ingredientHandler := ingredient.NewHandler(ingredientIndex)
	userHandler := user.NewHandler(userService)
	orderHandler := order.NewHandler(orderService)
	preferenceHandler := preference.NewHandler(preferenceService)
	recommendHandler := recommend.NewHandler(recommendService)
	notesHandler := notes.NewHandler(notesService)

	// ───────────────────────── RESTAURANT ROUTES ─────────────────────────
	restaurants := r.Group("/restaurants")
	{
		restaurants.GET("", restaurantHandler.List)
		restaurants.GET("/:id", restaurantHandler.Get)
		restaurants.GET("/:id/menu", restaurantHandler.Menu)
		restaurants.GET("/:id/ingredients", ingredientHandler.OfRestaurant)
		restaurants.POST("/:id/food-suggestions", recommendHandler.SuggestFood)
		restaurants.POST("/search-by-ingredients", ingredientHandler.Search)
	}

	// ───────────────────────── INGREDIENT ROUTES ─────────────────────────
	ingredients := r.Group("/ingredients")
	{
		ingredients.GET("/popular", ingredientHandler.Popular)
	}

	// ───────────────────────── USER ROUTES ─────────────────────────
	users := r.Group("/users")
	{
		users.POST("", userHandler.Create)
		users.GET("/:id", userHandler.Get)
		users.GET("/:id/orders", orderHandler.ListByUser)
		users.GET("/:id/preferences", preferenceHandler.Get)
		users.PUT("/:id/preferences", preferenceHandler.Update)
		users.POST("/:id/recommendations", recommendHandler.RecommendForUser)
		users.GET("/:id/notes", notesHandler.Get)
	}

	// ───────────────────────── ORDER ROUTES ─────────────────────────
	orders := r.Group("/orders")
	{
		orders.POST("", orderHandler.Create)
		orders.GET("/:id", orderHandler.Get)
	}

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	log.Println("🚀 API running at http://localhost:8000")
	r.Run(":8000")
}
