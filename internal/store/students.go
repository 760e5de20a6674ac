package store

import (
	"strings"

	apperrors "github.com/abdulkani007/SEMS-3/internal/errors"
	"github.com/abdulkani007/SEMS-3/internal/models"
	"github.com/abdulkani007/SEMS-3/internal/storage"
)

// AddStudent appends a new student record. Email uniqueness is not enforced;
// duplicate emails are accepted the way the admin screens always have.
func (s *Store) AddStudent(req models.CreateStudentRequest) models.Student {
	s.mu.Lock()
	defer s.mu.Unlock()

	student := models.Student{
		ID:            s.allocID(),
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		College:       req.College,
		Accommodation: req.Accommodation,
		Status:        req.Status,
		Joined:        req.Joined,
	}
	if student.Accommodation == "" {
		student.Accommodation = "Not Booked"
	}
	if student.Status == "" {
		student.Status = "active"
	}
	if student.Joined == "" {
		student.Joined = today()
	}

	s.students = append(s.students, student)
	s.persist(storage.KeyStudents, s.students)
	return student
}

// GetOrCreateStudentByEmail provisions a student for a first-time sign-in.
// Idempotent: an existing record is returned as-is. Denylisted emails are
// refused so deleted identities cannot re-provision themselves.
func (s *Store) GetOrCreateStudentByEmail(name, email string) (models.Student, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, deleted := range s.deletedEmails {
		if strings.EqualFold(deleted, email) {
			return models.Student{}, false, apperrors.ErrDenylisted
		}
	}

	for _, student := range s.students {
		if strings.EqualFold(student.Email, email) {
			return student, false, nil
		}
	}

	student := models.Student{
		ID:            s.allocID(),
		Name:          name,
		Email:         email,
		Accommodation: "Not Booked",
		Status:        "active",
		Joined:        today(),
	}
	s.students = append(s.students, student)
	s.persist(storage.KeyStudents, s.students)
	return student, true, nil
}

// ListStudents returns the students in insertion order.
func (s *Store) ListStudents() []models.Student {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Student{}, s.students...)
}

// GetStudent returns the student with the given id.
func (s *Store) GetStudent(id int64) (models.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, student := range s.students {
		if student.ID == id {
			return student, nil
		}
	}
	return models.Student{}, apperrors.ErrNotFound
}

// UpdateStudent merge-patches the matching record. Nil patch fields are
// left untouched.
func (s *Store) UpdateStudent(id int64, patch models.StudentPatch) (models.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.students {
		if s.students[i].ID != id {
			continue
		}
		applyStudentPatch(&s.students[i], patch)
		s.persist(storage.KeyStudents, s.students)
		return s.students[i], nil
	}
	return models.Student{}, apperrors.ErrNotFound
}

func applyStudentPatch(student *models.Student, patch models.StudentPatch) {
	if patch.Name != nil {
		student.Name = *patch.Name
	}
	if patch.Email != nil {
		student.Email = *patch.Email
	}
	if patch.Phone != nil {
		student.Phone = *patch.Phone
	}
	if patch.College != nil {
		student.College = *patch.College
	}
	if patch.Events != nil {
		student.Events = *patch.Events
	}
	if patch.Accommodation != nil {
		student.Accommodation = *patch.Accommodation
	}
	if patch.TotalSpent != nil {
		student.TotalSpent = *patch.TotalSpent
	}
	if patch.Status != nil {
		student.Status = *patch.Status
	}
	if patch.Joined != nil {
		student.Joined = *patch.Joined
	}
}

// DeleteStudent removes the student, records its email on the denylist and
// cascades to exactly that student's registrations. Accommodation bookings
// and occupancy counters are left untouched: the original system never
// released rooms on student deletion, and with the intent unclear that
// behavior is preserved.
func (s *Store) DeleteStudent(id int64) (models.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.students {
		if s.students[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.Student{}, apperrors.ErrNotFound
	}

	deleted := s.students[idx]
	s.deletedEmails = append(s.deletedEmails, deleted.Email)
	s.students = append(s.students[:idx], s.students[idx+1:]...)

	// Removing a registration must keep the event's derived counters equal
	// to its live registrations.
	kept := s.registrations[:0]
	for _, reg := range s.registrations {
		if reg.StudentID != id {
			kept = append(kept, reg)
			continue
		}
		for i := range s.events {
			if s.events[i].ID == reg.EventID {
				s.events[i].Participants--
				s.events[i].Revenue -= reg.Fee
				break
			}
		}
	}
	s.registrations = kept

	s.persist(storage.KeyStudents, s.students)
	s.persist(storage.KeyDeletedStudents, s.deletedEmails)
	s.persist(storage.KeyRegistrations, s.registrations)
	s.persist(storage.KeyEvents, s.events)
	return deleted, nil
}

// GetStudentRegistrations filters registrations by student, insertion order.
func (s *Store) GetStudentRegistrations(studentID int64) []models.Registration {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := []models.Registration{}
	for _, reg := range s.registrations {
		if reg.StudentID == studentID {
			result = append(result, reg)
		}
	}
	return result
}
