package service

import (
	"context"

	"github.com/abdulkani007/SEMS-3/internal/cache"
	"github.com/abdulkani007/SEMS-3/internal/messaging"
	"github.com/abdulkani007/SEMS-3/internal/search"
	"github.com/abdulkani007/SEMS-3/internal/store"
)

// Services bundles the domain services. The NATS, Valkey and Elasticsearch
// clients are optional: a nil client disables that integration and every
// call site degrades gracefully.
type Services struct {
	Students       *StudentService
	Events         *EventService
	Accommodations *AccommodationService
	Announcements  *AnnouncementService
	System         *SystemService
}

func NewServices(st *store.Store, natsClient *messaging.NATSClient, valkeyClient *cache.ValkeyClient, eventIndex *search.EventIndex) *Services {
	return &Services{
		Students:       &StudentService{store: st, nats: natsClient, valkey: valkeyClient},
		Events:         &EventService{store: st, nats: natsClient, valkey: valkeyClient, index: eventIndex},
		Accommodations: &AccommodationService{store: st, nats: natsClient, valkey: valkeyClient},
		Announcements:  &AnnouncementService{store: st, nats: natsClient, valkey: valkeyClient},
		System:         &SystemService{store: st, valkey: valkeyClient},
	}
}

// invalidateStats drops the cached dashboard snapshot after a mutation.
func invalidateStats(ctx context.Context, valkey *cache.ValkeyClient) {
	if valkey != nil {
		valkey.InvalidateStats(ctx)
	}
}
