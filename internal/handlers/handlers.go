package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/abdulkani007/SEMS-3/internal/cache"
	"github.com/abdulkani007/SEMS-3/internal/config"
	apperrors "github.com/abdulkani007/SEMS-3/internal/errors"
	"github.com/abdulkani007/SEMS-3/internal/middleware"
	"github.com/abdulkani007/SEMS-3/internal/models"
	"github.com/abdulkani007/SEMS-3/internal/service"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	services     *service.Services
	valkeyClient *cache.ValkeyClient
	auth         config.AuthConfig
}

func NewHandlers(services *service.Services, valkeyClient *cache.ValkeyClient, auth config.AuthConfig) *Handlers {
	return &Handlers{
		services:     services,
		valkeyClient: valkeyClient,
		auth:         auth,
	}
}

// paramID parses the :id route parameter. Writes a 400 and returns false on
// garbage input.
func paramID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a positive integer"})
		return 0, false
	}
	return id, true
}

// respondError maps domain errors to HTTP statuses. Anything that is not a
// known sentinel is treated as a validation failure.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNoAvailability):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDenylisted), errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}

// IssueToken - POST /api/auth/token
// Mints a session token for the given identity. Stands in for the external
// session provider; credential verification is out of scope here.
func (h *Handlers) IssueToken(c *gin.Context) {
	var req models.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Role != middleware.RoleAdmin && req.Role != middleware.RoleStudent {
		c.JSON(http.StatusBadRequest, gin.H{"error": "role must be admin or student"})
		return
	}

	token, err := middleware.NewToken(h.auth.Secret, h.auth.TokenTTL, req.Name, req.Email, req.Role)
	if err != nil {
		slog.Error("Failed to mint session token", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mint token"})
		return
	}

	c.JSON(http.StatusOK, models.TokenResponse{Token: token})
}

// Me - GET /api/me
// Returns the student record for the signed-in identity, provisioning it on
// first sight. Denylisted emails get a 403.
func (h *Handlers) Me(c *gin.Context) {
	ident, ok := middleware.IdentityFromGin(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	student, err := h.services.Students.Provision(c.Request.Context(), ident.Name, ident.Email)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, student)
}

// GetStats - GET /api/stats
// Aggregate dashboard snapshot, served from the Valkey cache when warm.
func (h *Handlers) GetStats(c *gin.Context) {
	if h.valkeyClient != nil {
		if raw, err := h.valkeyClient.GetStatsRaw(c.Request.Context()); err == nil {
			c.Data(http.StatusOK, "application/json", raw)
			return
		}
	}

	stats := h.services.System.Stats(c.Request.Context())

	if h.valkeyClient != nil {
		h.valkeyClient.SetStats(c.Request.Context(), stats)
	}

	c.JSON(http.StatusOK, stats)
}

// ResetData - POST /api/admin/reset
// Empties every collection and purges the snapshot mirror.
func (h *Handlers) ResetData(c *gin.Context) {
	h.services.System.Reset(c.Request.Context())
	c.Status(http.StatusOK)
}
