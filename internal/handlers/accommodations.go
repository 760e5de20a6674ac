package handlers

import (
	"log/slog"
	"net/http"

	"github.com/abdulkani007/SEMS-3/internal/models"

	"github.com/gin-gonic/gin"
)

// Accommodations handlers

// CreateAccommodation - POST /api/accommodations
func (h *Handlers) CreateAccommodation(c *gin.Context) {
	var req models.CreateAccommodationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	acc, err := h.services.Accommodations.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, acc)
}

// ListAccommodations - GET /api/accommodations
func (h *Handlers) ListAccommodations(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Accommodations.List(c.Request.Context()))
}

// GetAccommodation - GET /api/accommodations/:id
func (h *Handlers) GetAccommodation(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	acc, err := h.services.Accommodations.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, acc)
}

// UpdateAccommodation - PATCH /api/accommodations/:id
func (h *Handlers) UpdateAccommodation(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var patch models.AccommodationPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	acc, err := h.services.Accommodations.Update(c.Request.Context(), id, patch)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, acc)
}

// DeleteAccommodation - DELETE /api/accommodations/:id
// Booking records referencing the accommodation are kept.
func (h *Handlers) DeleteAccommodation(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.services.Accommodations.Delete(c.Request.Context(), id); err != nil {
		slog.Error("Failed to delete accommodation", "error", err, "accommodation_id", id)
		respondError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

// ListAccommodationBookings - GET /api/accommodations/:id/bookings
func (h *Handlers) ListAccommodationBookings(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, h.services.Accommodations.Bookings(c.Request.Context(), id))
}

// CreateBooking - POST /api/bookings
func (h *Handlers) CreateBooking(c *gin.Context) {
	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booking, err := h.services.Accommodations.Book(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// ListBookings - GET /api/bookings
func (h *Handlers) ListBookings(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Accommodations.ListBookings(c.Request.Context()))
}
