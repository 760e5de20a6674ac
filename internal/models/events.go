package models

import "time"

// NATS subjects
const (
	SubjectRegistrationCreated = "registration.created"
	SubjectBookingCreated      = "booking.created"
	SubjectAnnouncementCreated = "announcement.created"
	SubjectAnnouncementDeleted = "announcement.deleted"
	SubjectStudentDeleted      = "student.deleted"
)

// RegistrationCreatedEvent is published after a successful event registration
type RegistrationCreatedEvent struct {
	RegistrationID int64     `json:"registration_id"`
	StudentID      int64     `json:"student_id"`
	EventID        int64     `json:"event_id"`
	Fee            int64     `json:"fee"`
	Timestamp      time.Time `json:"timestamp"`
}

// BookingCreatedEvent is published after a successful accommodation booking
type BookingCreatedEvent struct {
	BookingID       int64     `json:"booking_id"`
	StudentID       int64     `json:"student_id"`
	AccommodationID int64     `json:"accommodation_id"`
	TotalAmount     int64     `json:"total_amount"`
	Timestamp       time.Time `json:"timestamp"`
}

// AnnouncementCreatedEvent is published when an admin broadcasts an announcement
type AnnouncementCreatedEvent struct {
	AnnouncementID int64     `json:"announcement_id"`
	Title          string    `json:"title"`
	Type           string    `json:"type"`
	Priority       string    `json:"priority"`
	Timestamp      time.Time `json:"timestamp"`
}

// AnnouncementDeletedEvent is published when an announcement is withdrawn
type AnnouncementDeletedEvent struct {
	AnnouncementID int64     `json:"announcement_id"`
	Timestamp      time.Time `json:"timestamp"`
}

// StudentDeletedEvent is published when an admin removes a student
type StudentDeletedEvent struct {
	StudentID int64     `json:"student_id"`
	Email     string    `json:"email"`
	Timestamp time.Time `json:"timestamp"`
}
