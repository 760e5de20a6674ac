package handlers

import (
	"log/slog"
	"net/http"

	"github.com/abdulkani007/SEMS-3/internal/models"

	"github.com/gin-gonic/gin"
)

// Students handlers

// CreateStudent - POST /api/students
func (h *Handlers) CreateStudent(c *gin.Context) {
	var req models.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	student, err := h.services.Students.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, student)
}

// ListStudents - GET /api/students
func (h *Handlers) ListStudents(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Students.List(c.Request.Context()))
}

// GetStudent - GET /api/students/:id
func (h *Handlers) GetStudent(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	student, err := h.services.Students.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, student)
}

// UpdateStudent - PATCH /api/students/:id
func (h *Handlers) UpdateStudent(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var patch models.StudentPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	student, err := h.services.Students.Update(c.Request.Context(), id, patch)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, student)
}

// DeleteStudent - DELETE /api/students/:id
// Cascades to the student's registrations and denylists the email.
func (h *Handlers) DeleteStudent(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.services.Students.Delete(c.Request.Context(), id); err != nil {
		slog.Error("Failed to delete student", "error", err, "student_id", id)
		respondError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

// ListStudentRegistrations - GET /api/students/:id/registrations
func (h *Handlers) ListStudentRegistrations(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, h.services.Students.Registrations(c.Request.Context(), id))
}
