package store

import (
	apperrors "github.com/abdulkani007/SEMS-3/internal/errors"
	"github.com/abdulkani007/SEMS-3/internal/models"
	"github.com/abdulkani007/SEMS-3/internal/storage"
)

// AddEvent appends a new event with zeroed derived fields.
func (s *Store) AddEvent(req models.CreateEventRequest) models.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	event := models.Event{
		ID:           s.allocID(),
		Name:         req.Name,
		Type:         req.Type,
		Date:         req.Date,
		EndDate:      req.EndDate,
		Venue:        req.Venue,
		Description:  req.Description,
		Capacity:     req.Capacity,
		Fee:          req.Fee,
		Participants: 0,
		Revenue:      0,
		Status:       "active",
	}

	s.events = append(s.events, event)
	s.persist(storage.KeyEvents, s.events)
	return event
}

// ListEvents returns the events in insertion order.
func (s *Store) ListEvents() []models.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Event{}, s.events...)
}

// GetEvent returns the event with the given id.
func (s *Store) GetEvent(id int64) (models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, event := range s.events {
		if event.ID == id {
			return event, nil
		}
	}
	return models.Event{}, apperrors.ErrNotFound
}

// UpdateEvent merge-patches the matching event. Derived fields are not
// recomputed: a fee change does not retroactively adjust revenue already
// collected from earlier registrations.
func (s *Store) UpdateEvent(id int64, patch models.EventPatch) (models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.events {
		if s.events[i].ID != id {
			continue
		}
		applyEventPatch(&s.events[i], patch)
		s.persist(storage.KeyEvents, s.events)
		return s.events[i], nil
	}
	return models.Event{}, apperrors.ErrNotFound
}

func applyEventPatch(event *models.Event, patch models.EventPatch) {
	if patch.Name != nil {
		event.Name = *patch.Name
	}
	if patch.Type != nil {
		event.Type = *patch.Type
	}
	if patch.Date != nil {
		event.Date = *patch.Date
	}
	if patch.EndDate != nil {
		event.EndDate = *patch.EndDate
	}
	if patch.Venue != nil {
		event.Venue = *patch.Venue
	}
	if patch.Description != nil {
		event.Description = *patch.Description
	}
	if patch.Capacity != nil {
		event.Capacity = *patch.Capacity
	}
	if patch.Fee != nil {
		event.Fee = *patch.Fee
	}
	if patch.Status != nil {
		event.Status = *patch.Status
	}
}

// DeleteEvent removes the event and exactly its registrations.
func (s *Store) DeleteEvent(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.events {
		if s.events[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return apperrors.ErrNotFound
	}

	s.events = append(s.events[:idx], s.events[idx+1:]...)

	kept := s.registrations[:0]
	for _, reg := range s.registrations {
		if reg.EventID != id {
			kept = append(kept, reg)
		}
	}
	s.registrations = kept

	s.persist(storage.KeyEvents, s.events)
	s.persist(storage.KeyRegistrations, s.registrations)
	return nil
}

// RegisterStudentForEvent creates a completed registration and bumps the
// student and event counters, all in one critical section. When either id
// does not resolve, no collection is touched.
func (s *Store) RegisterStudentForEvent(req models.CreateRegistrationRequest) (models.Registration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	studentIdx := -1
	for i := range s.students {
		if s.students[i].ID == req.StudentID {
			studentIdx = i
			break
		}
	}
	eventIdx := -1
	for i := range s.events {
		if s.events[i].ID == req.EventID {
			eventIdx = i
			break
		}
	}
	if studentIdx < 0 || eventIdx < 0 {
		return models.Registration{}, apperrors.ErrNotFound
	}

	student := &s.students[studentIdx]
	event := &s.events[eventIdx]

	reg := models.Registration{
		ID:                  s.allocID(),
		StudentID:           student.ID,
		EventID:             event.ID,
		StudentName:         student.Name,
		StudentEmail:        student.Email,
		TeamName:            req.TeamName,
		SpecialRequirements: req.SpecialRequirements,
		Fee:                 event.Fee,
		RegistrationDate:    today(),
		PaymentStatus:       models.PaymentCompleted,
	}
	s.registrations = append(s.registrations, reg)

	student.Events++
	student.TotalSpent += event.Fee
	event.Participants++
	event.Revenue += event.Fee

	s.persist(storage.KeyRegistrations, s.registrations)
	s.persist(storage.KeyStudents, s.students)
	s.persist(storage.KeyEvents, s.events)
	return reg, nil
}

// GetEventRegistrations filters registrations by event, insertion order.
func (s *Store) GetEventRegistrations(eventID int64) []models.Registration {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := []models.Registration{}
	for _, reg := range s.registrations {
		if reg.EventID == eventID {
			result = append(result, reg)
		}
	}
	return result
}

// ListRegistrations returns every registration in insertion order.
func (s *Store) ListRegistrations() []models.Registration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Registration{}, s.registrations...)
}
