package ingredient

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"swaad/internal/core"
)

type Handler struct {
	index *Index
}

func NewHandler(index *Index) *Handler {
	return &Handler{index: index}
}

// --------------------------------------------------
// GET /ingredients/popular?category=&limit=
// --------------------------------------------------
func (h *Handler) Popular(c *gin.Context) {
	limit := DefaultLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer"})
			return
		}
		limit = parsed
	}

	ranked, err := h.index.Popular(c.Request.Context(), c.Query("category"), limit)
	if err != nil {
		c.JSON(core.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ingredients": ranked})
}

// --------------------------------------------------
// GET /restaurants/:id/ingredients
// --------------------------------------------------
func (h *Handler) OfRestaurant(c *gin.Context) {
	ingredients, err := h.index.IngredientsOf(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(core.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"restaurant_id": c.Param("id"),
		"ingredients":   ingredients,
	})
}

// --------------------------------------------------
// POST /restaurants/search-by-ingredients
// --------------------------------------------------
type searchRequest struct {
	Ingredients []string `json:"ingredients"`
	MatchAll    bool     `json:"match_all"`
	Limit       int      `json:"limit"`
}

func (h *Handler) Search(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if req.Limit == 0 {
		req.Limit = DefaultLimit
	}

	matches, err := h.index.SearchByIngredients(
		c.Request.Context(),
		req.Ingredients,
		req.MatchAll,
		req.Limit,
	)
	if err != nil {
		c.JSON(core.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"restaurants": matches})
}
