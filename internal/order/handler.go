package order

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

type createRequest struct {
	UserID       string   `json:"user_id"`
	RestaurantID string   `json:"restaurant_id"`
	Items        []string `json:"items"`
}

// POST /orders
func (h *Handler) Create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	order, err := h.service.CreateOrder(
		c.Request.Context(),
		req.UserID,
		req.RestaurantID,
		req.Items,
	)
	if err != nil {
		c.JSON(core.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, order)
}

// GET /orders/:id
func (h *Handler) Get(c *gin.Context) {
	order, err := h.service.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(core.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, order)
}

// GET /users/:id/orders
func (h *Handler) ListByUser(c *gin.Context) {
	orders, err := h.service.ListUserOrders(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(core.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, orders)
}
