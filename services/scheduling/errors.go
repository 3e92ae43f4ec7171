package scheduling

import "errors"

// Scheduling failure taxonomy. Handlers map these onto HTTP statuses; any
// other error is treated as a store failure.
var (
	ErrValidation           = errors.New("all fields are required")
	ErrSlotUnavailable      = errors.New("slot is already booked or unavailable")
	ErrInvalidStatus        = errors.New("invalid status")
	ErrBookingNotFound      = errors.New("booking not found")
	ErrNoBookings           = errors.New("no bookings found")
	ErrAvailabilityNotFound = errors.New("doctor availability not found")
	ErrNoUpdatesApplied     = errors.New("no updates were made")
)
