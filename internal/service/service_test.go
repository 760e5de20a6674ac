package service

import (
	"context"
	"testing"

	apperrors "github.com/abdulkani007/SEMS-3/internal/errors"
	"github.com/abdulkani007/SEMS-3/internal/models"
	"github.com/abdulkani007/SEMS-3/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServices() *Services {
	st := store.New(nil)
	st.ClearAllData()
	return NewServices(st, nil, nil, nil)
}

func TestCreateEventValidation(t *testing.T) {
	svc := newTestServices()
	ctx := context.Background()

	cases := []struct {
		name string
		req  models.CreateEventRequest
	}{
		{"blank name", models.CreateEventRequest{Name: "   ", Type: "sports"}},
		{"unknown type", models.CreateEventRequest{Name: "Chess Open", Type: "boardgame"}},
		{"negative capacity", models.CreateEventRequest{Name: "Chess Open", Type: "sports", Capacity: -1}},
		{"negative fee", models.CreateEventRequest{Name: "Chess Open", Type: "sports", Fee: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Events.Create(ctx, tc.req)
			assert.Error(t, err)
		})
	}

	assert.Empty(t, svc.Events.List(ctx, ""))
}

func TestCreateStudentNormalizesEmail(t *testing.T) {
	svc := newTestServices()
	ctx := context.Background()

	student, err := svc.Students.Create(ctx, models.CreateStudentRequest{
		Name: "  Arjun Kumar  ", Email: " ARJUN@Example.EDU ",
	})
	require.NoError(t, err)
	assert.Equal(t, "Arjun Kumar", student.Name)
	assert.Equal(t, "arjun@example.edu", student.Email)

	_, err = svc.Students.Create(ctx, models.CreateStudentRequest{Name: "No Email", Email: "not-an-email"})
	assert.Error(t, err)
}

func TestProvisionMatchesCaseInsensitively(t *testing.T) {
	svc := newTestServices()
	ctx := context.Background()

	first, err := svc.Students.Provision(ctx, "Priya Sharma", "priya@example.edu")
	require.NoError(t, err)

	second, err := svc.Students.Provision(ctx, "Priya Sharma", "PRIYA@Example.EDU")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, svc.Students.List(ctx), 1)
}

func TestProvisionRejectsDeletedEmail(t *testing.T) {
	svc := newTestServices()
	ctx := context.Background()

	student, err := svc.Students.Provision(ctx, "Rajesh Patel", "rajesh@example.edu")
	require.NoError(t, err)

	require.NoError(t, svc.Students.Delete(ctx, student.ID))

	_, err = svc.Students.Provision(ctx, "Rajesh Patel", "rajesh@example.edu")
	assert.ErrorIs(t, err, apperrors.ErrDenylisted)
}

func TestBookValidation(t *testing.T) {
	svc := newTestServices()
	ctx := context.Background()

	acc, err := svc.Accommodations.Create(ctx, models.CreateAccommodationRequest{
		Type: "2-Sharing", Total: 2, PricePerNight: 800,
	})
	require.NoError(t, err)

	_, err = svc.Accommodations.Book(ctx, models.CreateBookingRequest{
		AccommodationID: acc.ID, NumberOfNights: 0, TotalAmount: 0,
	})
	assert.Error(t, err)

	_, err = svc.Accommodations.Book(ctx, models.CreateBookingRequest{
		AccommodationID: acc.ID, NumberOfNights: 2, TotalAmount: -1,
	})
	assert.Error(t, err)

	// Validation failures touch nothing
	got, err := svc.Accommodations.Get(ctx, acc.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Occupied)
}

func TestCreateAccommodationValidation(t *testing.T) {
	svc := newTestServices()
	ctx := context.Background()

	_, err := svc.Accommodations.Create(ctx, models.CreateAccommodationRequest{Type: "", Total: 5})
	assert.Error(t, err)
	_, err = svc.Accommodations.Create(ctx, models.CreateAccommodationRequest{Type: "Dorm", Total: 0})
	assert.Error(t, err)
	_, err = svc.Accommodations.Create(ctx, models.CreateAccommodationRequest{Type: "Dorm", Total: 5, PricePerNight: -10})
	assert.Error(t, err)
}

func TestEventListFallbackFilter(t *testing.T) {
	svc := newTestServices()
	ctx := context.Background()

	_, err := svc.Events.Create(ctx, models.CreateEventRequest{
		Name: "Basketball Championship", Type: "sports", Venue: "Sports Complex",
	})
	require.NoError(t, err)
	_, err = svc.Events.Create(ctx, models.CreateEventRequest{
		Name: "Code Sprint", Type: "hackathon", Description: "48 hour build",
	})
	require.NoError(t, err)

	// No search index wired, so the in-memory filter serves queries
	byName := svc.Events.List(ctx, "basketball")
	require.Len(t, byName, 1)
	assert.Equal(t, "Basketball Championship", byName[0].Name)

	byType := svc.Events.List(ctx, "hackathon")
	require.Len(t, byType, 1)
	assert.Equal(t, "Code Sprint", byType[0].Name)

	assert.Empty(t, svc.Events.List(ctx, "swimming"))
	assert.Len(t, svc.Events.List(ctx, ""), 2)
}

func TestAnnouncementRequiresTitle(t *testing.T) {
	svc := newTestServices()
	ctx := context.Background()

	_, err := svc.Announcements.Create(ctx, models.CreateAnnouncementRequest{Title: "  ", Message: "hi"})
	assert.Error(t, err)
	assert.Empty(t, svc.Announcements.List(ctx))
}

func TestSystemResetZeroesStats(t *testing.T) {
	svc := newTestServices()
	ctx := context.Background()

	_, err := svc.Events.Create(ctx, models.CreateEventRequest{Name: "Marathon", Type: "sports", Fee: 100})
	require.NoError(t, err)

	svc.System.Reset(ctx)
	assert.Equal(t, models.Stats{}, svc.System.Stats(ctx))
}
