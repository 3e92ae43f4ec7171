package scheduling

import (
	"context"

	accountRepo "medicore/database/repository/account"
	availabilityRepo "medicore/database/repository/availability"
	bookingRepo "medicore/database/repository/booking"
	"medicore/models"
	"medicore/services/tasks"
)

// SchedulingService coordinates doctor calendars and bookings. Booking
// creation is the only operation with real write contention: it runs an
// availability check, a conditional slot update and a booking insert as one
// logical operation, with the conditional update deciding races.
type SchedulingService interface {
	// Slot availability checker.
	IsSlotAvailable(ctx context.Context, doctorID, date, startTime, endTime string) (bool, error)

	// Booking orchestrator.
	CreateBooking(ctx context.Context, doctorID, patientID, date string, slot models.BookingSlot) (*models.Booking, error)
	UpdateBookingStatus(ctx context.Context, bookingID, status string) (*models.Booking, error)
	DeleteBooking(ctx context.Context, bookingID string) error
	GetBookingsByDoctor(ctx context.Context, doctorID string) ([]models.BookingDetail, error)
	GetBookingsByPatient(ctx context.Context, patientID string) ([]models.BookingDetail, error)
	GetAllBookings(ctx context.Context) ([]models.BookingDetail, error)

	// Availability editor.
	CreateAvailability(ctx context.Context, doctorID, date string, slots []models.BookingSlot) (*models.DoctorAvailability, error)
	GetAvailabilityByDoctor(ctx context.Context, doctorID string) ([]models.DoctorAvailability, error)
	UpdateAvailability(ctx context.Context, id string, days []models.AvailabilityDayUpdate) (*models.DoctorAvailability, error)
	DeleteAvailability(ctx context.Context, id string) error
	DeleteSlot(ctx context.Context, availabilityID, slotID string) error
}

// DefaultSchedulingService is the production scheduler.
type DefaultSchedulingService struct {
	AvailabilityRepo availabilityRepo.AvailabilityRepository
	BookingRepo      bookingRepo.BookingRepository
	DoctorRepo       accountRepo.AccountRepository
	PatientRepo      accountRepo.AccountRepository
	Reminders        tasks.ReminderScheduler // optional; nil disables reminders
}
