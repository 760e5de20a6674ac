package api

import (
	"fmt"

	"net/http"

	"github.com/abdulkani007/SEMS-3/internal/cache"
	"github.com/abdulkani007/SEMS-3/internal/config"
	"github.com/abdulkani007/SEMS-3/internal/handlers"
	"github.com/abdulkani007/SEMS-3/internal/logger"
	"github.com/abdulkani007/SEMS-3/internal/messaging"
	"github.com/abdulkani007/SEMS-3/internal/middleware"
	"github.com/abdulkani007/SEMS-3/internal/search"
	"github.com/abdulkani007/SEMS-3/internal/service"
	"github.com/abdulkani007/SEMS-3/internal/storage"
	"github.com/abdulkani007/SEMS-3/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server is the HTTP API over the shared application store.
type Server struct {
	router   *gin.Engine
	config   *config.Config
	nats     *messaging.NATSClient
	valkey   *cache.ValkeyClient
	services *service.Services
	store    *store.Store
}

// NewServer wires the store, the optional integrations and the routes.
// Disabled integrations stay nil and every consumer degrades gracefully.
func NewServer(cfg *config.Config) *Server {
	gin.SetMode(cfg.GinMode)

	snapshots, err := storage.New(cfg.DataDir)
	if err != nil {
		logger.Fatal("Failed to open snapshot directory", "dir", cfg.DataDir, "error", err)
	}

	st := store.New(snapshots)

	var natsClient *messaging.NATSClient
	if cfg.NATSEnabled {
		natsClient, err = messaging.NewNATSClient(cfg.NATS)
		if err != nil {
			logger.Fatal("Failed to connect to NATS", "error", err)
		}
	}

	var valkeyClient *cache.ValkeyClient
	if cfg.ValkeyEnabled {
		valkeyClient, err = cache.NewValkeyClient(cfg.Valkey)
		if err != nil {
			logger.Fatal("Failed to connect to Valkey", "error", err)
		}
	}

	var eventIndex *search.EventIndex
	if cfg.SearchEnabled {
		eventIndex, err = search.NewEventIndex(cfg.Elasticsearch)
		if err != nil {
			logger.Fatal("Failed to connect to Elasticsearch", "error", err)
		}
	}

	services := service.NewServices(st, natsClient, valkeyClient, eventIndex)

	router := gin.New()
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.Metrics())

	server := &Server{
		router:   router,
		config:   cfg,
		nats:     natsClient,
		valkey:   valkeyClient,
		services: services,
		store:    st,
	}

	server.setupRoutes()

	return server
}

// setupRoutes declares the full API surface
func (s *Server) setupRoutes() {
	h := handlers.NewHandlers(s.services, s.valkey, s.config.Auth)

	s.router.GET("/health", s.healthCheck)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	s.router.POST("/api/auth/token", h.IssueToken)

	// All remaining API routes require a session token
	api := s.router.Group("/api")
	api.Use(middleware.Session(s.config.Auth.Secret))
	{
		api.GET("/me", h.Me)
		api.GET("/stats", h.GetStats)

		events := api.Group("/events")
		{
			events.GET("", h.ListEvents)
			events.GET("/:id", h.GetEvent)
			events.GET("/:id/registrations", h.ListEventRegistrations)
		}

		accommodations := api.Group("/accommodations")
		{
			accommodations.GET("", h.ListAccommodations)
			accommodations.GET("/:id", h.GetAccommodation)
			accommodations.GET("/:id/bookings", h.ListAccommodationBookings)
		}

		api.GET("/announcements", h.ListAnnouncements)
		api.GET("/students/:id/registrations", h.ListStudentRegistrations)

		api.POST("/registrations", h.CreateRegistration)
		api.POST("/bookings", h.CreateBooking)

		// Management surface, admin sessions only
		admin := api.Group("")
		admin.Use(middleware.RequireAdmin())
		{
			admin.GET("/students", h.ListStudents)
			admin.POST("/students", h.CreateStudent)
			admin.GET("/students/:id", h.GetStudent)
			admin.PATCH("/students/:id", h.UpdateStudent)
			admin.DELETE("/students/:id", h.DeleteStudent)

			admin.POST("/events", h.CreateEvent)
			admin.PATCH("/events/:id", h.UpdateEvent)
			admin.DELETE("/events/:id", h.DeleteEvent)

			admin.POST("/accommodations", h.CreateAccommodation)
			admin.PATCH("/accommodations/:id", h.UpdateAccommodation)
			admin.DELETE("/accommodations/:id", h.DeleteAccommodation)

			admin.POST("/announcements", h.CreateAnnouncement)
			admin.PATCH("/announcements/:id", h.UpdateAnnouncement)
			admin.DELETE("/announcements/:id", h.DeleteAnnouncement)

			admin.GET("/bookings", h.ListBookings)
			admin.POST("/admin/reset", h.ResetData)
		}
	}
}

// healthCheck handles health probes
func (s *Server) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "sems-api",
		"version": "1.0.0",
	})
}

// Run starts the HTTP server
func (s *Server) Run() error {
	addr := fmt.Sprintf(":%s", s.config.Port)
	return s.router.Run(addr)
}

// GetRouter exposes the router for tests
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}

// Cleanup closes the optional integration clients
func (s *Server) Cleanup() error {
	if s.nats != nil {
		if err := s.nats.Close(); err != nil {
			logger.Get().Error("Error closing NATS connection", "error", err)
		}
	}

	if s.valkey != nil {
		if err := s.valkey.Close(); err != nil {
			logger.Get().Error("Error closing Valkey connection", "error", err)
			return err
		}
	}

	return nil
}
