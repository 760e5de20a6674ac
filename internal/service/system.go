package service

import (
	"context"
	"log/slog"

	"github.com/abdulkani007/SEMS-3/internal/cache"
	"github.com/abdulkani007/SEMS-3/internal/models"
	"github.com/abdulkani007/SEMS-3/internal/store"
)

type SystemService struct {
	store  *store.Store
	valkey *cache.ValkeyClient
}

// Stats returns the aggregate dashboard snapshot.
func (s *SystemService) Stats(ctx context.Context) models.Stats {
	return s.store.Stats()
}

// Reset empties every entity collection and purges the snapshot mirror.
// Operator-triggered only.
func (s *SystemService) Reset(ctx context.Context) {
	slog.Info("Starting data reset")

	s.store.ClearAllData()
	invalidateStats(ctx, s.valkey)

	slog.Info("Data reset completed")
}
