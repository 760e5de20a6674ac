package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/abdulkani007/SEMS-3/internal/cache"
	"github.com/abdulkani007/SEMS-3/internal/logger"
	"github.com/abdulkani007/SEMS-3/internal/messaging"
	"github.com/abdulkani007/SEMS-3/internal/metrics"
	"github.com/abdulkani007/SEMS-3/internal/models"
	"github.com/abdulkani007/SEMS-3/internal/search"
	"github.com/abdulkani007/SEMS-3/internal/store"
)

var eventTypes = map[string]bool{
	"hackathon":   true,
	"sports":      true,
	"workshop":    true,
	"cultural":    true,
	"competition": true,
}

type EventService struct {
	store  *store.Store
	nats   *messaging.NATSClient
	valkey *cache.ValkeyClient
	index  *search.EventIndex
}

func (s *EventService) Create(ctx context.Context, req models.CreateEventRequest) (models.Event, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return models.Event{}, fmt.Errorf("event name is required")
	}
	if !eventTypes[req.Type] {
		return models.Event{}, fmt.Errorf("unknown event type %q", req.Type)
	}
	if req.Capacity < 0 {
		return models.Event{}, fmt.Errorf("capacity cannot be negative")
	}
	if req.Fee < 0 {
		return models.Event{}, fmt.Errorf("fee cannot be negative")
	}

	event := s.store.AddEvent(req)
	invalidateStats(ctx, s.valkey)
	s.indexEvent(ctx, event)
	return event, nil
}

// List returns events in insertion order. A non-empty query searches the
// Elasticsearch index when available and falls back to an in-memory
// substring match otherwise.
func (s *EventService) List(ctx context.Context, query string) []models.Event {
	events := s.store.ListEvents()
	if query == "" {
		return events
	}

	if s.index != nil {
		ids, err := s.index.Search(ctx, query)
		if err == nil {
			byID := make(map[int64]models.Event, len(events))
			for _, ev := range events {
				byID[ev.ID] = ev
			}
			// Stale index entries drop out here: only ids still present in
			// the store are returned.
			matched := make([]models.Event, 0, len(ids))
			for _, id := range ids {
				if ev, ok := byID[id]; ok {
					matched = append(matched, ev)
				}
			}
			return matched
		}
		logger.WithContext(ctx).Error("Event search failed, falling back to in-memory filter", "error", err)
	}

	q := strings.ToLower(query)
	matched := []models.Event{}
	for _, ev := range events {
		if strings.Contains(strings.ToLower(ev.Name), q) ||
			strings.Contains(strings.ToLower(ev.Description), q) ||
			strings.Contains(strings.ToLower(ev.Venue), q) ||
			strings.Contains(strings.ToLower(ev.Type), q) {
			matched = append(matched, ev)
		}
	}
	return matched
}

func (s *EventService) Get(ctx context.Context, id int64) (models.Event, error) {
	return s.store.GetEvent(id)
}

func (s *EventService) Update(ctx context.Context, id int64, patch models.EventPatch) (models.Event, error) {
	event, err := s.store.UpdateEvent(id, patch)
	if err != nil {
		return models.Event{}, err
	}
	invalidateStats(ctx, s.valkey)
	s.indexEvent(ctx, event)
	return event, nil
}

func (s *EventService) Delete(ctx context.Context, id int64) error {
	if err := s.store.DeleteEvent(id); err != nil {
		return err
	}
	invalidateStats(ctx, s.valkey)

	if s.index != nil {
		if err := s.index.Delete(ctx, id); err != nil {
			logger.WithContext(ctx).Error("Failed to remove event from search index",
				"error", err,
				"event_id", id)
		}
	}
	return nil
}

// Register enrolls a student in an event. The store performs the three
// mutations (registration, student counters, event counters) as one unit.
func (s *EventService) Register(ctx context.Context, req models.CreateRegistrationRequest) (models.Registration, error) {
	reg, err := s.store.RegisterStudentForEvent(req)
	if err != nil {
		return models.Registration{}, err
	}

	metrics.RegistrationsTotal.Inc()
	invalidateStats(ctx, s.valkey)

	if s.nats != nil {
		event, _ := s.store.GetEvent(reg.EventID)
		payload := models.RegistrationCreatedEvent{
			RegistrationID: reg.ID,
			StudentID:      reg.StudentID,
			EventID:        reg.EventID,
			Fee:            event.Fee,
			Timestamp:      time.Now(),
		}
		if err := s.nats.Publish(models.SubjectRegistrationCreated, payload); err != nil {
			logger.WithContext(ctx).Error("Failed to publish registration created event",
				"error", err,
				"registration_id", reg.ID)
		}
	}

	return reg, nil
}

func (s *EventService) Registrations(ctx context.Context, eventID int64) []models.Registration {
	return s.store.GetEventRegistrations(eventID)
}

func (s *EventService) indexEvent(ctx context.Context, event models.Event) {
	if s.index == nil {
		return
	}
	if err := s.index.Index(ctx, event); err != nil {
		logger.WithContext(ctx).Error("Failed to index event",
			"error", err,
			"event_id", event.ID)
	}
}
