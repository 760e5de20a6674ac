package store

import (
	"fmt"

	apperrors "github.com/abdulkani007/SEMS-3/internal/errors"
	"github.com/abdulkani007/SEMS-3/internal/models"
	"github.com/abdulkani007/SEMS-3/internal/storage"
)

// AddAccommodation appends a new accommodation with all rooms available.
func (s *Store) AddAccommodation(req models.CreateAccommodationRequest) models.Accommodation {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc := models.Accommodation{
		ID:            s.allocID(),
		Type:          req.Type,
		Total:         req.Total,
		Occupied:      0,
		Available:     req.Total,
		PricePerNight: req.PricePerNight,
		Amenities:     req.Amenities,
		Description:   req.Description,
		Revenue:       0,
	}
	if acc.Amenities == nil {
		acc.Amenities = []string{}
	}

	s.accommodations = append(s.accommodations, acc)
	s.persist(storage.KeyAccommodations, s.accommodations)
	return acc
}

// ListAccommodations returns the accommodations in insertion order.
func (s *Store) ListAccommodations() []models.Accommodation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Accommodation{}, s.accommodations...)
}

// GetAccommodation returns the accommodation with the given id.
func (s *Store) GetAccommodation(id int64) (models.Accommodation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, acc := range s.accommodations {
		if acc.ID == id {
			return acc, nil
		}
	}
	return models.Accommodation{}, apperrors.ErrNotFound
}

// UpdateAccommodation merge-patches the matching record. Occupancy counters
// are not recomputed when Total changes.
func (s *Store) UpdateAccommodation(id int64, patch models.AccommodationPatch) (models.Accommodation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.accommodations {
		if s.accommodations[i].ID != id {
			continue
		}
		acc := &s.accommodations[i]
		if patch.Type != nil {
			acc.Type = *patch.Type
		}
		if patch.Total != nil {
			// Keep occupied+available==total by absorbing the delta into
			// the free pool.
			acc.Total = *patch.Total
			acc.Available = acc.Total - acc.Occupied
		}
		if patch.PricePerNight != nil {
			acc.PricePerNight = *patch.PricePerNight
		}
		if patch.Amenities != nil {
			acc.Amenities = *patch.Amenities
		}
		if patch.Description != nil {
			acc.Description = *patch.Description
		}
		s.persist(storage.KeyAccommodations, s.accommodations)
		return *acc, nil
	}
	return models.Accommodation{}, apperrors.ErrNotFound
}

// DeleteAccommodation removes the record. Bookings referencing it are kept;
// they remain visible in booking history.
func (s *Store) DeleteAccommodation(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.accommodations {
		if s.accommodations[i].ID == id {
			s.accommodations = append(s.accommodations[:i], s.accommodations[i+1:]...)
			s.persist(storage.KeyAccommodations, s.accommodations)
			return nil
		}
	}
	return apperrors.ErrNotFound
}

// BookAccommodation creates a completed booking, moves one room from
// available to occupied, adds the amount to accommodation revenue and labels
// the student with the assigned room. Rooms are handed out sequentially
// within the accommodation. A missing accommodation or an empty free pool
// leaves every collection unchanged.
func (s *Store) BookAccommodation(req models.CreateBookingRequest) (models.AccommodationBooking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	accIdx := -1
	for i := range s.accommodations {
		if s.accommodations[i].ID == req.AccommodationID {
			accIdx = i
			break
		}
	}
	if accIdx < 0 {
		return models.AccommodationBooking{}, apperrors.ErrNotFound
	}

	acc := &s.accommodations[accIdx]
	if acc.Available <= 0 {
		return models.AccommodationBooking{}, apperrors.ErrNoAvailability
	}

	acc.Occupied++
	acc.Available--
	acc.Revenue += req.TotalAmount
	roomNumber := acc.Occupied

	booking := models.AccommodationBooking{
		ID:              s.allocID(),
		StudentID:       req.StudentID,
		AccommodationID: req.AccommodationID,
		CheckInDate:     req.CheckInDate,
		CheckOutDate:    req.CheckOutDate,
		NumberOfNights:  req.NumberOfNights,
		TotalAmount:     req.TotalAmount,
		BookingDate:     today(),
		RoomNumber:      roomNumber,
		PaymentStatus:   models.PaymentCompleted,
		SpecialRequests: req.SpecialRequests,
	}

	// The student is not required to exist; a dangling studentId books the
	// room but labels nobody.
	for i := range s.students {
		if s.students[i].ID == req.StudentID {
			booking.StudentName = s.students[i].Name
			booking.StudentEmail = s.students[i].Email
			s.students[i].Accommodation = fmt.Sprintf("Room-%d (%s)", roomNumber, acc.Type)
			s.persist(storage.KeyStudents, s.students)
			break
		}
	}

	s.bookings = append(s.bookings, booking)
	s.persist(storage.KeyBookings, s.bookings)
	s.persist(storage.KeyAccommodations, s.accommodations)
	return booking, nil
}

// GetAccommodationBookings filters bookings by accommodation, insertion order.
func (s *Store) GetAccommodationBookings(accommodationID int64) []models.AccommodationBooking {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := []models.AccommodationBooking{}
	for _, booking := range s.bookings {
		if booking.AccommodationID == accommodationID {
			result = append(result, booking)
		}
	}
	return result
}

// ListBookings returns every booking in insertion order.
func (s *Store) ListBookings() []models.AccommodationBooking {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.AccommodationBooking{}, s.bookings...)
}
