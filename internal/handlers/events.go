package handlers

import (
	"log/slog"
	"net/http"

	"github.com/abdulkani007/SEMS-3/internal/models"

	"github.com/gin-gonic/gin"
)

// Events handlers

// CreateEvent - POST /api/events
func (h *Handlers) CreateEvent(c *gin.Context) {
	var req models.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := h.services.Events.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, event)
}

// ListEvents - GET /api/events
// Optional ?query= searches name, description, venue and type.
func (h *Handlers) ListEvents(c *gin.Context) {
	query := c.Query("query")
	c.JSON(http.StatusOK, h.services.Events.List(c.Request.Context(), query))
}

// GetEvent - GET /api/events/:id
func (h *Handlers) GetEvent(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	event, err := h.services.Events.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

// UpdateEvent - PATCH /api/events/:id
func (h *Handlers) UpdateEvent(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var patch models.EventPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := h.services.Events.Update(c.Request.Context(), id, patch)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

// DeleteEvent - DELETE /api/events/:id
// Cascades to the event's registrations.
func (h *Handlers) DeleteEvent(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.services.Events.Delete(c.Request.Context(), id); err != nil {
		slog.Error("Failed to delete event", "error", err, "event_id", id)
		respondError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

// ListEventRegistrations - GET /api/events/:id/registrations
func (h *Handlers) ListEventRegistrations(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, h.services.Events.Registrations(c.Request.Context(), id))
}

// CreateRegistration - POST /api/registrations
func (h *Handlers) CreateRegistration(c *gin.Context) {
	var req models.CreateRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reg, err := h.services.Events.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, reg)
}
