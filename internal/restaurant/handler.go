package restaurant

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

func (h *Handler) List(c *gin.Context) {
	restaurants, err := h.service.ListRestaurants(c.Request.Context())
	if err != nil {
		c.JSON(core.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	if restaurants == nil {
		restaurants = []*Restaurant{}
	}
	c.JSON(http.StatusOK, restaurants)
}

func (h *Handler) Get(c *gin.Context) {
	res, err := h.service.GetRestaurant(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(core.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, res)
}

func (h *Handler) Menu(c *gin.Context) {
	items, err := h.service.GetMenu(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(core.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	if items == nil {
		items = []MenuItem{}
	}
	c.JSON(http.StatusOK, items)
}
