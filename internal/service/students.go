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

type StudentService struct {
	store  *store.Store
	nats   *messaging.NATSClient
	valkey *cache.ValkeyClient
}

func (s *StudentService) Create(ctx context.Context, req models.CreateStudentRequest) (models.Student, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Name == "" {
		return models.Student{}, fmt.Errorf("student name is required")
	}
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		return models.Student{}, fmt.Errorf("a valid email is required")
	}

	student := s.store.AddStudent(req)
	invalidateStats(ctx, s.valkey)
	return student, nil
}

// Provision implements the get-or-create-by-email operation backing the
// student sign-in flow. Denylisted emails are rejected with ErrDenylisted.
func (s *StudentService) Provision(ctx context.Context, name, email string) (models.Student, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return models.Student{}, fmt.Errorf("a valid email is required")
	}

	student, created, err := s.store.GetOrCreateStudentByEmail(name, email)
	if err != nil {
		return models.Student{}, err
	}
	if created {
		logger.WithContext(ctx).Info("Provisioned student from session identity",
			"student_id", student.ID, "email", student.Email)
		invalidateStats(ctx, s.valkey)
	}
	return student, nil
}

func (s *StudentService) List(ctx context.Context) []models.Student {
	return s.store.ListStudents()
}

func (s *StudentService) Get(ctx context.Context, id int64) (models.Student, error) {
	return s.store.GetStudent(id)
}

func (s *StudentService) Update(ctx context.Context, id int64, patch models.StudentPatch) (models.Student, error) {
	student, err := s.store.UpdateStudent(id, patch)
	if err != nil {
		return models.Student{}, err
	}
	invalidateStats(ctx, s.valkey)
	return student, nil
}

func (s *StudentService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.store.DeleteStudent(id)
	if err != nil {
		return err
	}
	invalidateStats(ctx, s.valkey)

	if s.nats != nil {
		event := models.StudentDeletedEvent{
			StudentID: deleted.ID,
			Email:     deleted.Email,
			Timestamp: time.Now(),
		}
		if err := s.nats.Publish(models.SubjectStudentDeleted, event); err != nil {
			logger.WithContext(ctx).Error("Failed to publish student deleted event",
				"error", err,
				"student_id", deleted.ID)
		}
	}
	return nil
}

func (s *StudentService) Registrations(ctx context.Context, studentID int64) []models.Registration {
	return s.store.GetStudentRegistrations(studentID)
}
