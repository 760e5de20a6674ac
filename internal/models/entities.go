package models

// Student represents a registered participant. Counters (Events, TotalSpent)
// and the Accommodation label are maintained by the store, not by callers.
type Student struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	College       string `json:"college"`
	Events        int    `json:"events"`
	Accommodation string `json:"accommodation"`
	TotalSpent    int64  `json:"totalSpent"`
	Status        string `json:"status"`
	Joined        string `json:"joined"`
}

// Event represents a manageable event. Participants and Revenue are derived
// from registrations and updated by the store on each successful registration.
type Event struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	Date         string `json:"date"`
	EndDate      string `json:"endDate"`
	Venue        string `json:"venue"`
	Description  string `json:"description,omitempty"`
	Capacity     int    `json:"capacity"`
	Fee          int64  `json:"fee"`
	Participants int    `json:"participants"`
	Revenue      int64  `json:"revenue"`
	Status       string `json:"status"`
}

// Accommodation represents one room category. Occupied + Available == Total
// holds after every store operation.
type Accommodation struct {
	ID            int64    `json:"id"`
	Type          string   `json:"type"`
	Total         int      `json:"total"`
	Occupied      int      `json:"occupied"`
	Available     int      `json:"available"`
	PricePerNight int64    `json:"pricePerNight"`
	Amenities     []string `json:"amenities"`
	Description   string   `json:"description"`
	Revenue       int64    `json:"revenue"`
}

// Registration links a student to an event. Student name and email are
// denormalized at creation time and never refreshed afterwards.
type Registration struct {
	ID                  int64  `json:"id"`
	StudentID           int64  `json:"studentId"`
	EventID             int64  `json:"eventId"`
	StudentName         string `json:"studentName"`
	StudentEmail        string `json:"studentEmail"`
	TeamName            string `json:"teamName,omitempty"`
	SpecialRequirements string `json:"specialRequirements,omitempty"`
	Fee                 int64  `json:"fee"`
	RegistrationDate    string `json:"registrationDate"`
	PaymentStatus       string `json:"paymentStatus"`
}

// AccommodationBooking links a student to an accommodation. RoomNumber is the
// sequential room assigned within the accommodation at booking time.
type AccommodationBooking struct {
	ID              int64  `json:"id"`
	StudentID       int64  `json:"studentId"`
	AccommodationID int64  `json:"accommodationId"`
	StudentName     string `json:"studentName"`
	StudentEmail    string `json:"studentEmail"`
	CheckInDate     string `json:"checkInDate"`
	CheckOutDate    string `json:"checkOutDate"`
	NumberOfNights  int    `json:"numberOfNights"`
	TotalAmount     int64  `json:"totalAmount"`
	BookingDate     string `json:"bookingDate"`
	RoomNumber      int    `json:"roomNumber"`
	PaymentStatus   string `json:"paymentStatus"`
	SpecialRequests string `json:"specialRequests,omitempty"`
}

// Announcement is an admin broadcast. No cascading relationships.
type Announcement struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Message  string `json:"message"`
	Type     string `json:"type"`
	Priority string `json:"priority"`
	Author   string `json:"author"`
	Date     string `json:"date"`
}

// Payment statuses recorded on registrations and bookings. The store only
// ever produces PaymentCompleted; the other values appear in seed data.
const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
)

// Stats is the aggregate snapshot returned by the store.
type Stats struct {
	TotalStudents int   `json:"totalStudents"`
	TotalEvents   int   `json:"totalEvents"`
	TotalRevenue  int64 `json:"totalRevenue"`
	OccupancyRate int   `json:"occupancyRate"`
}
