package handlers

import (
	"net/http"

	"github.com/abdulkani007/SEMS-3/internal/models"

	"github.com/gin-gonic/gin"
)

// Announcements handlers

// CreateAnnouncement - POST /api/announcements
func (h *Handlers) CreateAnnouncement(c *gin.Context) {
	var req models.CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ann, err := h.services.Announcements.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ann)
}

// ListAnnouncements - GET /api/announcements
func (h *Handlers) ListAnnouncements(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Announcements.List(c.Request.Context()))
}

// UpdateAnnouncement - PATCH /api/announcements/:id
func (h *Handlers) UpdateAnnouncement(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var patch models.AnnouncementPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ann, err := h.services.Announcements.Update(c.Request.Context(), id, patch)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ann)
}

// DeleteAnnouncement - DELETE /api/announcements/:id
func (h *Handlers) DeleteAnnouncement(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.services.Announcements.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusOK)
}
