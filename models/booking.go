package models

import "time"

// Booking statuses.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// BookingSlot is the time range reserved by a booking. The times are
// duplicated from the availability slot for display; SlotID on the Booking is
// the authoritative reference.
type BookingSlot struct {
	StartTime string `bson:"startTime" json:"startTime"`
	EndTime   string `bson:"endTime" json:"endTime"`
}

// Booking is a patient's reservation against a specific doctor/date/slot.
type Booking struct {
	ID        string      `bson:"id" json:"id"`
	DoctorID  string      `bson:"doctorId" json:"doctorId"`
	PatientID string      `bson:"patientId" json:"patientId"`
	Date      string      `bson:"date" json:"date"`
	SlotID    string      `bson:"slotId" json:"slotId"`
	Slot      BookingSlot `bson:"slot" json:"slot"`
	Status    string      `bson:"status" json:"status"`
	CreatedAt time.Time   `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time   `bson:"updatedAt" json:"updatedAt"`
}

// PartyRef holds the display attributes of a booking participant.
type PartyRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// BookingDetail is a booking with doctor/patient identifiers resolved to
// display attributes.
type BookingDetail struct {
	Booking
	Doctor  *PartyRef `json:"doctor,omitempty"`
	Patient *PartyRef `json:"patient,omitempty"`
}

// IsValidBookingStatus reports whether s is one of the allowed statuses.
func IsValidBookingStatus(s string) bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled:
		return true
	}
	return false
}
