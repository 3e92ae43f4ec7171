package models

import "time"

// Slot is a bookable time interval within a day. Start and end times are
// opaque time-of-day strings (e.g. "09:00 AM"); no overlap validation is
// performed between slots.
type Slot struct {
	ID        string `bson:"id" json:"id"` // Stable identifier assigned at creation (UUID)
	StartTime string `bson:"startTime" json:"startTime"`
	EndTime   string `bson:"endTime" json:"endTime"`
	IsBooked  bool   `bson:"isBooked" json:"isBooked"`
}

// AvailabilityDay holds one calendar date's full set of slots for a doctor.
// Dates are "2006-01-02" strings compared by exact equality.
type AvailabilityDay struct {
	Date  string `bson:"date" json:"date"`
	Slots []Slot `bson:"slots" json:"slots"`
}

// DoctorAvailability is a doctor's calendar document. Days are keyed
// conceptually by date; at most one entry per (doctor, date) is maintained by
// the upsert path, but readers must still treat duplicate dates as a
// data-quality hazard.
type DoctorAvailability struct {
	ID        string            `bson:"id" json:"id"`
	DoctorID  string            `bson:"doctorId" json:"doctorId"`
	Days      []AvailabilityDay `bson:"availability" json:"availability"`
	CreatedAt time.Time         `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time         `bson:"updatedAt" json:"updatedAt"`
}

// SlotUpdate is an incoming slot edit for UpdateAvailability. IsBooked is a
// pointer so the booked flag is only overwritten when explicitly supplied.
type SlotUpdate struct {
	ID        string `json:"id" binding:"required"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	IsBooked  *bool  `json:"isBooked,omitempty"`
}

// AvailabilityDayUpdate pairs a date with the slot edits targeting that day.
type AvailabilityDayUpdate struct {
	Date  string       `json:"date" binding:"required"`
	Slots []SlotUpdate `json:"slots"`
}
