package scheduling

import (
	"context"
	"errors"
	"fmt"
	"time"

	"medicore/models"
	"medicore/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// CreateBooking reserves a slot for a patient. The flow is: locate the slot,
// flip its booked flag with a conditional update that only matches while the
// slot is unbooked, then persist the booking record. The conditional update
// is what makes two concurrent attempts for the same slot resolve to exactly
// one winner; the preceding lookup only exists to produce a precise error and
// the slot's durable ID.
func (s *DefaultSchedulingService) CreateBooking(ctx context.Context, doctorID, patientID, date string, slot models.BookingSlot) (*models.Booking, error) {
	logger := utils.GetLogger()

	if doctorID == "" || patientID == "" || date == "" || slot.StartTime == "" || slot.EndTime == "" {
		return nil, ErrValidation
	}

	target, err := s.AvailabilityRepo.FindSlot(ctx, doctorID, date, slot.StartTime, slot.EndTime)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrSlotUnavailable
		}
		return nil, fmt.Errorf("failed to check slot availability: %w", err)
	}
	if target.IsBooked {
		return nil, ErrSlotUnavailable
	}

	booked, err := s.AvailabilityRepo.MarkSlotBooked(ctx, doctorID, date, target.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to mark slot booked: %w", err)
	}
	if !booked {
		// Lost the race: someone else booked the slot between the lookup
		// and the conditional update.
		return nil, ErrSlotUnavailable
	}

	now := time.Now()
	booking := &models.Booking{
		ID:        uuid.New().String(),
		DoctorID:  doctorID,
		PatientID: patientID,
		Date:      date,
		SlotID:    target.ID,
		Slot:      slot,
		Status:    models.BookingStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.BookingRepo.Create(ctx, booking); err != nil {
		// The slot was already flipped; release it so a failed insert does
		// not leave the calendar blocked.
		if relErr := s.AvailabilityRepo.ReleaseSlot(ctx, doctorID, date, target.ID); relErr != nil {
			logger.Error("failed to release slot after booking insert failure",
				zap.String("doctorId", doctorID), zap.String("slotId", target.ID), zap.Error(relErr))
		}
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	s.scheduleReminder(ctx, booking)

	return booking, nil
}

// UpdateBookingStatus overwrites a booking's status. Status changes, including
// cancellation, do not free the slot; only deletion does.
func (s *DefaultSchedulingService) UpdateBookingStatus(ctx context.Context, bookingID, status string) (*models.Booking, error) {
	if !models.IsValidBookingStatus(status) {
		return nil, ErrInvalidStatus
	}

	updated, err := s.BookingRepo.UpdateStatus(ctx, bookingID, status)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to update booking %s: %w", bookingID, err)
	}
	return updated, nil
}

// DeleteBooking removes a booking and releases its slot. The release targets
// the slot by the booking's stored slot ID and is a silent no-op when the
// availability has since been edited or deleted.
func (s *DefaultSchedulingService) DeleteBooking(ctx context.Context, bookingID string) error {
	deleted, err := s.BookingRepo.DeleteByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrBookingNotFound
		}
		return fmt.Errorf("failed to delete booking %s: %w", bookingID, err)
	}

	if err := s.AvailabilityRepo.ReleaseSlot(ctx, deleted.DoctorID, deleted.Date, deleted.SlotID); err != nil {
		// The booking record is gone; surface the store failure but note
		// the slot may still read as booked.
		return fmt.Errorf("booking deleted but slot release failed: %w", err)
	}
	return nil
}

// GetBookingsByDoctor returns the doctor's bookings with participant display
// attributes resolved.
func (s *DefaultSchedulingService) GetBookingsByDoctor(ctx context.Context, doctorID string) ([]models.BookingDetail, error) {
	bookings, err := s.BookingRepo.GetByDoctorID(ctx, doctorID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings for doctor %s: %w", doctorID, err)
	}
	return s.resolveBookings(ctx, bookings)
}

// GetBookingsByPatient returns the patient's bookings with participant
// display attributes resolved.
func (s *DefaultSchedulingService) GetBookingsByPatient(ctx context.Context, patientID string) ([]models.BookingDetail, error) {
	bookings, err := s.BookingRepo.GetByPatientID(ctx, patientID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings for patient %s: %w", patientID, err)
	}
	return s.resolveBookings(ctx, bookings)
}

// GetAllBookings returns every booking with participant display attributes
// resolved.
func (s *DefaultSchedulingService) GetAllBookings(ctx context.Context) ([]models.BookingDetail, error) {
	bookings, err := s.BookingRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	return s.resolveBookings(ctx, bookings)
}

// resolveBookings attaches doctor and patient name/email to each booking.
// Unresolvable identifiers are left nil rather than failing the listing.
func (s *DefaultSchedulingService) resolveBookings(ctx context.Context, bookings []models.Booking) ([]models.BookingDetail, error) {
	if len(bookings) == 0 {
		return nil, ErrNoBookings
	}

	details := make([]models.BookingDetail, 0, len(bookings))
	for _, b := range bookings {
		detail := models.BookingDetail{Booking: b}
		if doctor, err := s.DoctorRepo.GetByID(ctx, b.DoctorID); err == nil {
			detail.Doctor = &models.PartyRef{ID: doctor.ID, Name: doctor.Name, Email: doctor.Email}
		}
		if patient, err := s.PatientRepo.GetByID(ctx, b.PatientID); err == nil {
			detail.Patient = &models.PartyRef{ID: patient.ID, Name: patient.Name, Email: patient.Email}
		}
		details = append(details, detail)
	}
	return details, nil
}

// scheduleReminder enqueues an appointment reminder a day before the booked
// date. Reminder failures never fail the booking.
func (s *DefaultSchedulingService) scheduleReminder(ctx context.Context, booking *models.Booking) {
	if s.Reminders == nil {
		return
	}
	logger := utils.GetLogger()

	day, err := time.ParseInLocation("2006-01-02", booking.Date, time.Local)
	if err != nil {
		logger.Warn("skipping reminder for unparseable booking date",
			zap.String("bookingId", booking.ID), zap.String("date", booking.Date))
		return
	}
	fireAt := day.AddDate(0, 0, -1).Add(9 * time.Hour) // 9am the day before
	if fireAt.Before(time.Now()) {
		return
	}

	payload := models.ReminderPayload{
		BookingID: booking.ID,
		DoctorID:  booking.DoctorID,
		PatientID: booking.PatientID,
		Date:      booking.Date,
		StartTime: booking.Slot.StartTime,
	}
	if err := s.Reminders.Schedule(ctx, payload, fireAt); err != nil {
		logger.Error("failed to schedule booking reminder",
			zap.String("bookingId", booking.ID), zap.Error(err))
	}
}
