package models

// CreateStudentRequest - admin-side student creation payload
type CreateStudentRequest struct {
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"required"`
	Phone         string `json:"phone"`
	College       string `json:"college"`
	Accommodation string `json:"accommodation"`
	Status        string `json:"status"`
	Joined        string `json:"joined"`
}

// StudentPatch - merge-patch payload; nil fields are left untouched
type StudentPatch struct {
	Name          *string `json:"name"`
	Email         *string `json:"email"`
	Phone         *string `json:"phone"`
	College       *string `json:"college"`
	Events        *int    `json:"events"`
	Accommodation *string `json:"accommodation"`
	TotalSpent    *int64  `json:"totalSpent"`
	Status        *string `json:"status"`
	Joined        *string `json:"joined"`
}

// CreateEventRequest - event creation payload; participants, revenue and
// status are assigned by the store
type CreateEventRequest struct {
	Name        string `json:"name" binding:"required"`
	Type        string `json:"type" binding:"required"`
	Date        string `json:"date" binding:"required"`
	EndDate     string `json:"endDate"`
	Venue       string `json:"venue"`
	Description string `json:"description"`
	Capacity    int    `json:"capacity"`
	Fee         int64  `json:"fee"`
}

// EventPatch - merge-patch payload for events
type EventPatch struct {
	Name        *string `json:"name"`
	Type        *string `json:"type"`
	Date        *string `json:"date"`
	EndDate     *string `json:"endDate"`
	Venue       *string `json:"venue"`
	Description *string `json:"description"`
	Capacity    *int    `json:"capacity"`
	Fee         *int64  `json:"fee"`
	Status      *string `json:"status"`
}

// CreateAccommodationRequest - accommodation creation payload; occupancy
// counters and revenue are assigned by the store
type CreateAccommodationRequest struct {
	Type          string   `json:"type" binding:"required"`
	Total         int      `json:"total" binding:"required"`
	PricePerNight int64    `json:"pricePerNight"`
	Amenities     []string `json:"amenities"`
	Description   string   `json:"description"`
}

// AccommodationPatch - merge-patch payload for accommodations
type AccommodationPatch struct {
	Type          *string   `json:"type"`
	Total         *int      `json:"total"`
	PricePerNight *int64    `json:"pricePerNight"`
	Amenities     *[]string `json:"amenities"`
	Description   *string   `json:"description"`
}

// CreateRegistrationRequest - register a student for an event
type CreateRegistrationRequest struct {
	StudentID           int64  `json:"studentId" binding:"required"`
	EventID             int64  `json:"eventId" binding:"required"`
	TeamName            string `json:"teamName"`
	SpecialRequirements string `json:"specialRequirements"`
}

// CreateBookingRequest - book a room in an accommodation
type CreateBookingRequest struct {
	StudentID       int64  `json:"studentId" binding:"required"`
	AccommodationID int64  `json:"accommodationId" binding:"required"`
	CheckInDate     string `json:"checkInDate" binding:"required"`
	CheckOutDate    string `json:"checkOutDate" binding:"required"`
	NumberOfNights  int    `json:"numberOfNights"`
	TotalAmount     int64  `json:"totalAmount"`
	SpecialRequests string `json:"specialRequests"`
}

// CreateAnnouncementRequest - announcement creation payload
type CreateAnnouncementRequest struct {
	Title    string `json:"title" binding:"required"`
	Message  string `json:"message" binding:"required"`
	Type     string `json:"type"`
	Priority string `json:"priority"`
	Author   string `json:"author"`
}

// AnnouncementPatch - merge-patch payload for announcements
type AnnouncementPatch struct {
	Title    *string `json:"title"`
	Message  *string `json:"message"`
	Type     *string `json:"type"`
	Priority *string `json:"priority"`
	Author   *string `json:"author"`
}

// TokenRequest - session token minting payload. Credential checking belongs
// to the external identity provider; this endpoint only shapes the session.
type TokenRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
	Role  string `json:"role" binding:"required"`
}

// TokenResponse - minted session token
type TokenResponse struct {
	Token string `json:"token"`
}
