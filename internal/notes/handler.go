package notes

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

// GET /users/:id/notes?force_generate=true
func (h *Handler) Get(c *gin.Context) {
	force := c.Query("force_generate") == "true"

	result, err := h.service.GetNotes(c.Request.Context(), c.Param("id"), force)
	if err != nil {
		c.JSON(core.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
