package store

import (
	apperrors "github.com/abdulkani007/SEMS-3/internal/errors"
	"github.com/abdulkani007/SEMS-3/internal/models"
	"github.com/abdulkani007/SEMS-3/internal/storage"
)

// AddAnnouncement appends a new announcement dated today.
func (s *Store) AddAnnouncement(req models.CreateAnnouncementRequest) models.Announcement {
	s.mu.Lock()
	defer s.mu.Unlock()

	ann := models.Announcement{
		ID:       s.allocID(),
		Title:    req.Title,
		Message:  req.Message,
		Type:     req.Type,
		Priority: req.Priority,
		Author:   req.Author,
		Date:     today(),
	}
	if ann.Type == "" {
		ann.Type = "info"
	}
	if ann.Priority == "" {
		ann.Priority = "medium"
	}

	s.announcements = append(s.announcements, ann)
	s.persist(storage.KeyAnnouncements, s.announcements)
	return ann
}

// ListAnnouncements returns the announcements in insertion order.
func (s *Store) ListAnnouncements() []models.Announcement {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Announcement{}, s.announcements...)
}

// UpdateAnnouncement merge-patches the matching announcement.
func (s *Store) UpdateAnnouncement(id int64, patch models.AnnouncementPatch) (models.Announcement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.announcements {
		if s.announcements[i].ID != id {
			continue
		}
		ann := &s.announcements[i]
		if patch.Title != nil {
			ann.Title = *patch.Title
		}
		if patch.Message != nil {
			ann.Message = *patch.Message
		}
		if patch.Type != nil {
			ann.Type = *patch.Type
		}
		if patch.Priority != nil {
			ann.Priority = *patch.Priority
		}
		if patch.Author != nil {
			ann.Author = *patch.Author
		}
		s.persist(storage.KeyAnnouncements, s.announcements)
		return *ann, nil
	}
	return models.Announcement{}, apperrors.ErrNotFound
}

// DeleteAnnouncement removes the matching announcement. No cascades.
func (s *Store) DeleteAnnouncement(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.announcements {
		if s.announcements[i].ID == id {
			s.announcements = append(s.announcements[:i], s.announcements[i+1:]...)
			s.persist(storage.KeyAnnouncements, s.announcements)
			return nil
		}
	}
	return apperrors.ErrNotFound
}
