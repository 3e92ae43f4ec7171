package models

// ReminderPayload is the payload of a queued appointment reminder task.
type ReminderPayload struct {
	BookingID string `json:"bookingId"`
	DoctorID  string `json:"doctorId"`
	PatientID string `json:"patientId"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
}
