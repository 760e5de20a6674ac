package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/abdulkani007/SEMS-3/internal/config"
	"github.com/abdulkani007/SEMS-3/internal/middleware"
	"github.com/abdulkani007/SEMS-3/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := &config.Config{
		Port:    "0",
		GinMode: gin.TestMode,
		DataDir: t.TempDir(),
		Auth: config.AuthConfig{
			Secret:   testSecret,
			TokenTTL: time.Hour,
		},
	}
	return NewServer(cfg)
}

func mintToken(t *testing.T, name, email, role string) string {
	t.Helper()
	token, err := middleware.NewToken(testSecret, time.Hour, name, email, role)
	require.NoError(t, err)
	return token
}

func doRequest(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t)

	w := doRequest(t, srv.GetRouter(), http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	body := decode[map[string]string](t, w)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "sems-api", body["service"])
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	doRequest(t, srv.GetRouter(), http.MethodGet, "/health", "", nil)

	w := doRequest(t, srv.GetRouter(), http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "sems_http_requests_total")
}

func TestRequestsWithoutTokenAreRejected(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/api/events", "/api/stats", "/api/me", "/api/announcements"} {
		w := doRequest(t, srv.GetRouter(), http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestGarbageTokenIsRejected(t *testing.T) {
	srv := newTestServer(t)

	w := doRequest(t, srv.GetRouter(), http.MethodGet, "/api/events", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestStudentCannotUseAdminRoutes(t *testing.T) {
	srv := newTestServer(t)
	token := mintToken(t, "Arjun Kumar", "arjun@srieshwar.edu.in", middleware.RoleStudent)

	w := doRequest(t, srv.GetRouter(), http.MethodGet, "/api/students", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(t, srv.GetRouter(), http.MethodPost, "/api/events", token, models.CreateEventRequest{
		Name: "Chess Open", Type: "sports",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(t, srv.GetRouter(), http.MethodPost, "/api/admin/reset", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestIssueTokenValidatesRole(t *testing.T) {
	srv := newTestServer(t)

	w := doRequest(t, srv.GetRouter(), http.MethodPost, "/api/auth/token", "", models.TokenRequest{
		Name: "Eve", Email: "eve@example.edu", Role: "superuser",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestIssuedTokenOpensSession(t *testing.T) {
	srv := newTestServer(t)

	w := doRequest(t, srv.GetRouter(), http.MethodPost, "/api/auth/token", "", models.TokenRequest{
		Name: "Priya Sharma", Email: "priya@psg.edu.in", Role: middleware.RoleStudent,
	})
	require.Equal(t, http.StatusOK, w.Code)
	token := decode[models.TokenResponse](t, w).Token
	require.NotEmpty(t, token)

	w = doRequest(t, srv.GetRouter(), http.MethodGet, "/api/events", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSeedDataIsServed(t *testing.T) {
	srv := newTestServer(t)
	admin := mintToken(t, "Admin", "admin@sems.local", middleware.RoleAdmin)

	w := doRequest(t, srv.GetRouter(), http.MethodGet, "/api/events", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.Event](t, w), 3)

	w = doRequest(t, srv.GetRouter(), http.MethodGet, "/api/students", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.Student](t, w), 6)
}

func TestMeProvisionsStudentOnFirstSignIn(t *testing.T) {
	srv := newTestServer(t)
	token := mintToken(t, "New Student", "newcomer@example.edu", middleware.RoleStudent)

	w := doRequest(t, srv.GetRouter(), http.MethodGet, "/api/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	first := decode[models.Student](t, w)
	assert.Equal(t, "newcomer@example.edu", first.Email)
	assert.Equal(t, "Not Booked", first.Accommodation)
	assert.Equal(t, "active", first.Status)

	// Second sign-in returns the same record
	w = doRequest(t, srv.GetRouter(), http.MethodGet, "/api/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, first.ID, decode[models.Student](t, w).ID)
}

func TestEventSearchFiltersByQuery(t *testing.T) {
	srv := newTestServer(t)
	token := mintToken(t, "Arjun Kumar", "arjun@srieshwar.edu.in", middleware.RoleStudent)

	w := doRequest(t, srv.GetRouter(), http.MethodGet, "/api/events?query=basketball", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	events := decode[[]models.Event](t, w)
	require.Len(t, events, 1)
	assert.Equal(t, "Basketball Championship", events[0].Name)
}

func TestRegistrationFlow(t *testing.T) {
	srv := newTestServer(t)
	admin := mintToken(t, "Admin", "admin@sems.local", middleware.RoleAdmin)
	student := mintToken(t, "Karthik Krishnan", "karthik@srm.edu.in", middleware.RoleStudent)

	w := doRequest(t, srv.GetRouter(), http.MethodPost, "/api/events", admin, models.CreateEventRequest{
		Name: "Table Tennis Open", Type: "sports", Date: "2026-09-10", Venue: "Indoor Hall",
		Capacity: 16, Fee: 250,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	event := decode[models.Event](t, w)
	assert.Equal(t, 0, event.Participants)

	w = doRequest(t, srv.GetRouter(), http.MethodPost, "/api/registrations", student, models.CreateRegistrationRequest{
		StudentID: 5, EventID: event.ID, TeamName: "Spin Masters",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	reg := decode[models.Registration](t, w)
	assert.Equal(t, models.PaymentCompleted, reg.PaymentStatus)
	assert.Equal(t, int64(250), reg.Fee)
	assert.Equal(t, "Karthik Krishnan", reg.StudentName)

	w = doRequest(t, srv.GetRouter(), http.MethodGet, "/api/events/"+itoa(event.ID), student, nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[models.Event](t, w)
	assert.Equal(t, 1, got.Participants)
	assert.Equal(t, int64(250), got.Revenue)
}

func TestRegistrationWithUnknownEventReturns404(t *testing.T) {
	srv := newTestServer(t)
	student := mintToken(t, "Arjun Kumar", "arjun@srieshwar.edu.in", middleware.RoleStudent)

	w := doRequest(t, srv.GetRouter(), http.MethodPost, "/api/registrations", student, models.CreateRegistrationRequest{
		StudentID: 1, EventID: 9999,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBookingFlowAndCapacityConflict(t *testing.T) {
	srv := newTestServer(t)
	admin := mintToken(t, "Admin", "admin@sems.local", middleware.RoleAdmin)
	student := mintToken(t, "Sneha Reddy", "sneha@vit.edu.in", middleware.RoleStudent)

	w := doRequest(t, srv.GetRouter(), http.MethodPost, "/api/accommodations", admin, models.CreateAccommodationRequest{
		Type: "2-Sharing", Total: 1, PricePerNight: 800,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	acc := decode[models.Accommodation](t, w)

	book := models.CreateBookingRequest{
		StudentID: 4, AccommodationID: acc.ID,
		CheckInDate: "2026-09-01", CheckOutDate: "2026-09-03",
		NumberOfNights: 2, TotalAmount: 1600,
	}

	w = doRequest(t, srv.GetRouter(), http.MethodPost, "/api/bookings", student, book)
	require.Equal(t, http.StatusCreated, w.Code)
	booking := decode[models.AccommodationBooking](t, w)
	assert.Equal(t, 1, booking.RoomNumber)
	assert.Equal(t, models.PaymentCompleted, booking.PaymentStatus)

	// The only room is taken now
	w = doRequest(t, srv.GetRouter(), http.MethodPost, "/api/bookings", student, book)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doRequest(t, srv.GetRouter(), http.MethodGet, "/api/accommodations/"+itoa(acc.ID), student, nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[models.Accommodation](t, w)
	assert.Equal(t, 1, got.Occupied)
	assert.Equal(t, 0, got.Available)
}

func TestZeroAmountBookingIsAccepted(t *testing.T) {
	srv := newTestServer(t)
	admin := mintToken(t, "Admin", "admin@sems.local", middleware.RoleAdmin)
	student := mintToken(t, "Meera Nair", "meera@excel.edu.in", middleware.RoleStudent)

	w := doRequest(t, srv.GetRouter(), http.MethodPost, "/api/accommodations", admin, models.CreateAccommodationRequest{
		Type: "Dorm", Total: 10, PricePerNight: 0,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	acc := decode[models.Accommodation](t, w)

	// Sponsored rooms cost nothing; a zero amount must bind and book
	w = doRequest(t, srv.GetRouter(), http.MethodPost, "/api/bookings", student, models.CreateBookingRequest{
		StudentID: 6, AccommodationID: acc.ID,
		CheckInDate: "2026-09-01", CheckOutDate: "2026-09-02",
		NumberOfNights: 1, TotalAmount: 0,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, int64(0), decode[models.AccommodationBooking](t, w).TotalAmount)

	// Zero nights still fails validation
	w = doRequest(t, srv.GetRouter(), http.MethodPost, "/api/bookings", student, models.CreateBookingRequest{
		StudentID: 6, AccommodationID: acc.ID,
		CheckInDate: "2026-09-01", CheckOutDate: "2026-09-01",
		NumberOfNights: 0, TotalAmount: 0,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStatsReflectSeedData(t *testing.T) {
	srv := newTestServer(t)
	token := mintToken(t, "Arjun Kumar", "arjun@srieshwar.edu.in", middleware.RoleStudent)

	w := doRequest(t, srv.GetRouter(), http.MethodGet, "/api/stats", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	stats := decode[models.Stats](t, w)
	assert.Equal(t, 6, stats.TotalStudents)
	assert.Equal(t, 3, stats.TotalEvents)
	assert.Equal(t, int64(1750), stats.TotalRevenue)
	assert.Equal(t, 0, stats.OccupancyRate)
}

func TestResetClearsEverything(t *testing.T) {
	srv := newTestServer(t)
	admin := mintToken(t, "Admin", "admin@sems.local", middleware.RoleAdmin)

	w := doRequest(t, srv.GetRouter(), http.MethodPost, "/api/admin/reset", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, srv.GetRouter(), http.MethodGet, "/api/events", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[[]models.Event](t, w))

	w = doRequest(t, srv.GetRouter(), http.MethodGet, "/api/stats", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.Stats{}, decode[models.Stats](t, w))
}

func TestDeletedStudentCannotSignBackIn(t *testing.T) {
	srv := newTestServer(t)
	admin := mintToken(t, "Admin", "admin@sems.local", middleware.RoleAdmin)

	w := doRequest(t, srv.GetRouter(), http.MethodDelete, "/api/students/1", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)

	student := mintToken(t, "Arjun Kumar", "arjun@srieshwar.edu.in", middleware.RoleStudent)
	w = doRequest(t, srv.GetRouter(), http.MethodGet, "/api/me", student, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAnnouncementLifecycle(t *testing.T) {
	srv := newTestServer(t)
	admin := mintToken(t, "Admin", "admin@sems.local", middleware.RoleAdmin)
	student := mintToken(t, "Meera Nair", "meera@excel.edu.in", middleware.RoleStudent)

	w := doRequest(t, srv.GetRouter(), http.MethodPost, "/api/announcements", admin, models.CreateAnnouncementRequest{
		Title: "Opening Ceremony", Message: "Main ground, 9 AM", Author: "Admin",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	ann := decode[models.Announcement](t, w)
	assert.Equal(t, "info", ann.Type)
	assert.Equal(t, "medium", ann.Priority)

	// Students see the broadcast
	w = doRequest(t, srv.GetRouter(), http.MethodGet, "/api/announcements", student, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.Announcement](t, w), 1)

	w = doRequest(t, srv.GetRouter(), http.MethodDelete, "/api/announcements/"+itoa(ann.ID), admin, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, srv.GetRouter(), http.MethodGet, "/api/announcements", student, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[[]models.Announcement](t, w))
}

func TestMalformedIDParamReturns400(t *testing.T) {
	srv := newTestServer(t)
	token := mintToken(t, "Arjun Kumar", "arjun@srieshwar.edu.in", middleware.RoleStudent)

	w := doRequest(t, srv.GetRouter(), http.MethodGet, "/api/events/abc", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStateSurvivesRestart(t *testing.T) {
	dir := t.TempDir()
	cfg := &config.Config{
		Port:    "0",
		GinMode: gin.TestMode,
		DataDir: dir,
		Auth:    config.AuthConfig{Secret: testSecret, TokenTTL: time.Hour},
	}

	srv := NewServer(cfg)
	admin := mintToken(t, "Admin", "admin@sems.local", middleware.RoleAdmin)

	w := doRequest(t, srv.GetRouter(), http.MethodPost, "/api/events", admin, models.CreateEventRequest{
		Name: "Marathon", Type: "sports", Date: "2026-10-01", Capacity: 200, Fee: 100,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode[models.Event](t, w)

	// A second server over the same data directory sees the event
	restarted := NewServer(cfg)
	w = doRequest(t, restarted.GetRouter(), http.MethodGet, "/api/events/"+itoa(created.ID), admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, created.Name, decode[models.Event](t, w).Name)
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
