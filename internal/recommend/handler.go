package recommend

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"swaad/internal/core"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type suggestRequest struct {
	UserID string `json:"user_id"`
	Query  string `json:"query"`
}

type recommendRequest struct {
	Query string `json:"query"`
}

// POST /restaurants/:id/food-suggestions
func (h *Handler) SuggestFood(c *gin.Context) {
	var req suggestRequest
	// Body is optional; anonymous callers get ungated suggestions.
	_ = c.ShouldBindJSON(&req)

	result, err := h.service.SuggestFood(c.Request.Context(), c.Param("id"), req.UserID, req.Query)
	if err != nil {
		c.JSON(core.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// POST /users/:id/recommendations
func (h *Handler) RecommendForUser(c *gin.Context) {
	var req recommendRequest
	_ = c.ShouldBindJSON(&req)

	result, err := h.service.RecommendForUser(c.Request.Context(), c.Param("id"), req.Query)
	if err != nil {
		c.JSON(core.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
