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
	"github.com/abdulkani007/SEMS-3/internal/store"
)

type AccommodationService struct {
	store  *store.Store
	nats   *messaging.NATSClient
	valkey *cache.ValkeyClient
}

func (s *AccommodationService) Create(ctx context.Context, req models.CreateAccommodationRequest) (models.Accommodation, error) {
	req.Type = strings.TrimSpace(req.Type)
	if req.Type == "" {
		return models.Accommodation{}, fmt.Errorf("accommodation type is required")
	}
	if req.Total <= 0 {
		return models.Accommodation{}, fmt.Errorf("total rooms must be a positive integer")
	}
	if req.PricePerNight < 0 {
		return models.Accommodation{}, fmt.Errorf("price per night cannot be negative")
	}

	acc := s.store.AddAccommodation(req)
	invalidateStats(ctx, s.valkey)
	return acc, nil
}

func (s *AccommodationService) List(ctx context.Context) []models.Accommodation {
	return s.store.ListAccommodations()
}

func (s *AccommodationService) Get(ctx context.Context, id int64) (models.Accommodation, error) {
	return s.store.GetAccommodation(id)
}

func (s *AccommodationService) Update(ctx context.Context, id int64, patch models.AccommodationPatch) (models.Accommodation, error) {
	acc, err := s.store.UpdateAccommodation(id, patch)
	if err != nil {
		return models.Accommodation{}, err
	}
	invalidateStats(ctx, s.valkey)
	return acc, nil
}

func (s *AccommodationService) Delete(ctx context.Context, id int64) error {
	if err := s.store.DeleteAccommodation(id); err != nil {
		return err
	}
	invalidateStats(ctx, s.valkey)
	return nil
}

// Book reserves one room. The store rejects bookings against a missing or
// fully occupied accommodation without touching any collection.
func (s *AccommodationService) Book(ctx context.Context, req models.CreateBookingRequest) (models.AccommodationBooking, error) {
	if req.NumberOfNights <= 0 {
		return models.AccommodationBooking{}, fmt.Errorf("number of nights must be a positive integer")
	}
	if req.TotalAmount < 0 {
		return models.AccommodationBooking{}, fmt.Errorf("total amount cannot be negative")
	}

	booking, err := s.store.BookAccommodation(req)
	if err != nil {
		return models.AccommodationBooking{}, err
	}

	metrics.BookingsTotal.Inc()
	invalidateStats(ctx, s.valkey)

	if s.nats != nil {
		payload := models.BookingCreatedEvent{
			BookingID:       booking.ID,
			StudentID:       booking.StudentID,
			AccommodationID: booking.AccommodationID,
			TotalAmount:     booking.TotalAmount,
			Timestamp:       time.Now(),
		}
		if err := s.nats.Publish(models.SubjectBookingCreated, payload); err != nil {
			logger.WithContext(ctx).Error("Failed to publish booking created event",
				"error", err,
				"booking_id", booking.ID)
		}
	}

	return booking, nil
}

func (s *AccommodationService) Bookings(ctx context.Context, accommodationID int64) []models.AccommodationBooking {
	return s.store.GetAccommodationBookings(accommodationID)
}

func (s *AccommodationService) ListBookings(ctx context.Context) []models.AccommodationBooking {
	return s.store.ListBookings()
}
