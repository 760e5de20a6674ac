package storage

import "github.com/abdulkani007/SEMS-3/internal/models"

// Demo records loaded when a collection has no snapshot yet. Accommodations,
// bookings, announcements and the denylist start empty.

func SeedStudents() []models.Student {
	return []models.Student{
		{ID: 1, Name: "Arjun Kumar", Email: "arjun@srieshwar.edu.in", College: "Sri Eshwar College of Engineering", Phone: "+91-9876543210", Events: 2, Accommodation: "Deluxe Room", TotalSpent: 450, Status: "active", Joined: "2024-01-15"},
		{ID: 2, Name: "Priya Sharma", Email: "priya@psg.edu.in", College: "PSG College of Technology", Phone: "+91-9876543211", Events: 1, Accommodation: "Standard Room", TotalSpent: 200, Status: "active", Joined: "2024-01-20"},
		{ID: 3, Name: "Rajesh Patel", Email: "rajesh@kpr.edu.in", College: "KPR Institute of Engineering and Technology", Phone: "+91-9876543212", Events: 3, Accommodation: "Suite", TotalSpent: 750, Status: "active", Joined: "2024-01-10"},
		{ID: 4, Name: "Sneha Reddy", Email: "sneha@vit.edu.in", College: "VIT University", Phone: "+91-9876543213", Events: 1, Accommodation: "Standard Room", TotalSpent: 300, Status: "active", Joined: "2024-01-25"},
		{ID: 5, Name: "Karthik Krishnan", Email: "karthik@srm.edu.in", College: "SRM Institute of Science and Technology", Phone: "+91-9876543214", Events: 2, Accommodation: "Not Booked", TotalSpent: 500, Status: "active", Joined: "2024-02-01"},
		{ID: 6, Name: "Meera Nair", Email: "meera@excel.edu.in", College: "Excel Engineering College", Phone: "+91-9876543215", Events: 1, Accommodation: "Not Booked", TotalSpent: 150, Status: "active", Joined: "2024-02-05"},
	}
}

func SeedEvents() []models.Event {
	return []models.Event{
		{ID: 1, Name: "Basketball Championship", Description: "Annual basketball tournament", Date: "2024-03-15", EndDate: "2024-03-15", Venue: "Sports Complex", Fee: 500, Participants: 2, Revenue: 1000, Status: "upcoming", Capacity: 50, Type: "sports"},
		{ID: 2, Name: "Football League", Description: "Inter-college football competition", Date: "2024-03-20", EndDate: "2024-03-20", Venue: "Main Stadium", Fee: 750, Participants: 1, Revenue: 750, Status: "upcoming", Capacity: 30, Type: "sports"},
		{ID: 3, Name: "Swimming Competition", Description: "Swimming championship event", Date: "2024-03-25", EndDate: "2024-03-25", Venue: "Aquatic Center", Fee: 300, Participants: 0, Revenue: 0, Status: "upcoming", Capacity: 25, Type: "sports"},
	}
}

func SeedRegistrations() []models.Registration {
	return []models.Registration{
		{ID: 1, StudentID: 1, EventID: 1, StudentName: "John Doe", StudentEmail: "john@example.com", TeamName: "Thunder Bolts", SpecialRequirements: "Vegetarian meals", Fee: 500, RegistrationDate: "2024-02-15", PaymentStatus: models.PaymentCompleted},
		{ID: 2, StudentID: 2, EventID: 1, StudentName: "Jane Smith", StudentEmail: "jane@example.com", TeamName: "Lightning Strikers", SpecialRequirements: "None", Fee: 500, RegistrationDate: "2024-02-16", PaymentStatus: models.PaymentCompleted},
		{ID: 3, StudentID: 3, EventID: 2, StudentName: "Mike Johnson", StudentEmail: "mike@example.com", TeamName: "Ocean Warriors", SpecialRequirements: "Wheelchair accessible seating", Fee: 750, RegistrationDate: "2024-02-17", PaymentStatus: models.PaymentPending},
	}
}
