package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/abdulkani007/SEMS-3/internal/cache"
	"github.com/abdulkani007/SEMS-3/internal/logger"
	"github.com/abdulkani007/SEMS-3/internal/messaging"
	"github.com/abdulkani007/SEMS-3/internal/models"
	"github.com/abdulkani007/SEMS-3/internal/store"
)

type AnnouncementService struct {
	store  *store.Store
	nats   *messaging.NATSClient
	valkey *cache.ValkeyClient
}

func (s *AnnouncementService) Create(ctx context.Context, req models.CreateAnnouncementRequest) (models.Announcement, error) {
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return models.Announcement{}, fmt.Errorf("announcement title is required")
	}

	ann := s.store.AddAnnouncement(req)

	if s.nats != nil {
		payload := models.AnnouncementCreatedEvent{
			AnnouncementID: ann.ID,
			Title:          ann.Title,
			Type:           ann.Type,
			Priority:       ann.Priority,
			Timestamp:      time.Now(),
		}
		if err := s.nats.Publish(models.SubjectAnnouncementCreated, payload); err != nil {
			logger.WithContext(ctx).Error("Failed to publish announcement created event",
				"error", err,
				"announcement_id", ann.ID)
		}
	}

	return ann, nil
}

func (s *AnnouncementService) List(ctx context.Context) []models.Announcement {
	return s.store.ListAnnouncements()
}

func (s *AnnouncementService) Update(ctx context.Context, id int64, patch models.AnnouncementPatch) (models.Announcement, error) {
	return s.store.UpdateAnnouncement(id, patch)
}

func (s *AnnouncementService) Delete(ctx context.Context, id int64) error {
	if err := s.store.DeleteAnnouncement(id); err != nil {
		return err
	}

	if s.nats != nil {
		payload := models.AnnouncementDeletedEvent{
			AnnouncementID: id,
			Timestamp:      time.Now(),
		}
		if err := s.nats.Publish(models.SubjectAnnouncementDeleted, payload); err != nil {
			logger.WithContext(ctx).Error("Failed to publish announcement deleted event",
				"error", err,
				"announcement_id", id)
		}
	}
	return nil
}
