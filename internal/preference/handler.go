package preference

import (
	"encoding/json"
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

// --------------------------------------------------
// GET /users/:id/preferences
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	pref, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(core.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, pref)
}

// --------------------------------------------------
// PUT /users/:id/preferences (partial update)
// --------------------------------------------------
func (h *Handler) Update(c *gin.Context) {
	var update Update

	// reject unknown preference keys explicitly; a typo'd key would
	// otherwise silently do nothing
	dec := json.NewDecoder(c.Request.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid preference body: " + err.Error()})
		return
	}

	merged, err := h.service.Update(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		c.JSON(core.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, merged)
}
