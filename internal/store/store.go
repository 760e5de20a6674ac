// Package store holds all domain collections in process memory and mirrors
// every mutation to the snapshot files. It is the system of record: there is
// no database behind it. All operations run under one mutex, so a mutation
// completes fully (including its mirror write) before the next one begins.
package store

import (
	"math"
	"time"

	"github.com/abdulkani007/SEMS-3/internal/models"
	"github.com/abdulkani007/SEMS-3/internal/storage"

	"sync"
)

// Store owns the six entity collections plus the deleted-email denylist.
type Store struct {
	mu   sync.Mutex
	snap *storage.Snapshots

	students       []models.Student
	events         []models.Event
	accommodations []models.Accommodation
	registrations  []models.Registration
	bookings       []models.AccommodationBooking
	announcements  []models.Announcement
	deletedEmails  []string

	nextID int64
}

// New loads every collection from the snapshot mirror (or its seed) and
// seeds the id counter past the highest id seen. snap may be nil, in which
// case the store runs purely in memory.
func New(snap *storage.Snapshots) *Store {
	s := &Store{snap: snap}

	if snap != nil {
		s.students = storage.LoadCollection(snap, storage.KeyStudents, storage.SeedStudents())
		s.events = storage.LoadCollection(snap, storage.KeyEvents, storage.SeedEvents())
		s.registrations = storage.LoadCollection(snap, storage.KeyRegistrations, storage.SeedRegistrations())
		s.accommodations = storage.LoadCollection(snap, storage.KeyAccommodations, []models.Accommodation{})
		s.bookings = storage.LoadCollection(snap, storage.KeyBookings, []models.AccommodationBooking{})
		s.announcements = storage.LoadCollection(snap, storage.KeyAnnouncements, []models.Announcement{})
		s.deletedEmails = storage.LoadCollection(snap, storage.KeyDeletedStudents, []string{})
	} else {
		s.students = storage.SeedStudents()
		s.events = storage.SeedEvents()
		s.registrations = storage.SeedRegistrations()
		s.accommodations = []models.Accommodation{}
		s.bookings = []models.AccommodationBooking{}
		s.announcements = []models.Announcement{}
		s.deletedEmails = []string{}
	}

	s.nextID = s.maxID() + 1
	return s
}

// allocID hands out ids from a single monotonic counter shared by every
// collection. Must be called with the mutex held.
func (s *Store) allocID() int64 {
	id := s.nextID
	s.nextID++
	return id
}

func (s *Store) maxID() int64 {
	var max int64
	for _, st := range s.students {
		if st.ID > max {
			max = st.ID
		}
	}
	for _, ev := range s.events {
		if ev.ID > max {
			max = ev.ID
		}
	}
	for _, acc := range s.accommodations {
		if acc.ID > max {
			max = acc.ID
		}
	}
	for _, reg := range s.registrations {
		if reg.ID > max {
			max = reg.ID
		}
	}
	for _, b := range s.bookings {
		if b.ID > max {
			max = b.ID
		}
	}
	for _, an := range s.announcements {
		if an.ID > max {
			max = an.ID
		}
	}
	return max
}

// persist mirrors one collection. Must be called with the mutex held so the
// snapshot always reflects a completed mutation.
func (s *Store) persist(name string, v any) {
	if s.snap != nil {
		s.snap.Save(name, v)
	}
}

// today formats the current date the way the persisted records carry dates.
func today() string {
	return time.Now().Format("2006-01-02")
}

// ClearAllData empties the six entity collections and purges their snapshot
// files. The denylist survives a reset so removed identities stay locked out.
func (s *Store) ClearAllData() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.students = []models.Student{}
	s.events = []models.Event{}
	s.accommodations = []models.Accommodation{}
	s.registrations = []models.Registration{}
	s.bookings = []models.AccommodationBooking{}
	s.announcements = []models.Announcement{}

	if s.snap != nil {
		s.snap.Purge(
			storage.KeyStudents,
			storage.KeyEvents,
			storage.KeyAccommodations,
			storage.KeyRegistrations,
			storage.KeyBookings,
			storage.KeyAnnouncements,
		)
	}
}

// Stats derives the aggregate snapshot. occupancyRate reports 0 when no
// rooms exist.
func (s *Store) Stats() models.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	var revenue int64
	for _, ev := range s.events {
		revenue += ev.Revenue
	}

	var totalRooms, occupiedRooms int
	for _, acc := range s.accommodations {
		revenue += acc.Revenue
		totalRooms += acc.Total
		occupiedRooms += acc.Occupied
	}

	rate := 0
	if totalRooms > 0 {
		rate = int(math.Round(float64(occupiedRooms) / float64(totalRooms) * 100))
	}

	return models.Stats{
		TotalStudents: len(s.students),
		TotalEvents:   len(s.events),
		TotalRevenue:  revenue,
		OccupancyRate: rate,
	}
}
