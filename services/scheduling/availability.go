package scheduling

import (
	"context"
	"errors"
	"fmt"
	"time"

	"medicore/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

// CreateAvailability publishes open slots for a doctor on a date. Each slot
// gets a durable ID at creation time. Repeated calls for the same doctor
// merge into the doctor's single availability document: same date appends
// slots, new date appends a day.
func (s *DefaultSchedulingService) CreateAvailability(ctx context.Context, doctorID, date string, slots []models.BookingSlot) (*models.DoctorAvailability, error) {
	if doctorID == "" || date == "" || len(slots) == 0 {
		return nil, ErrValidation
	}
	for _, slot := range slots {
		if slot.StartTime == "" || slot.EndTime == "" {
			return nil, ErrValidation
		}
	}

	day := models.AvailabilityDay{Date: date, Slots: make([]models.Slot, 0, len(slots))}
	for _, slot := range slots {
		day.Slots = append(day.Slots, models.Slot{
			ID:        uuid.New().String(),
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
			IsBooked:  false,
		})
	}

	availability, err := s.AvailabilityRepo.UpsertDay(ctx, doctorID, day)
	if err != nil {
		return nil, fmt.Errorf("failed to save availability for doctor %s: %w", doctorID, err)
	}
	return availability, nil
}

// GetAvailabilityByDoctor returns the doctor's availability documents. An
// empty calendar reads as not found.
func (s *DefaultSchedulingService) GetAvailabilityByDoctor(ctx context.Context, doctorID string) ([]models.DoctorAvailability, error) {
	availability, err := s.AvailabilityRepo.GetByDoctorID(ctx, doctorID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability for doctor %s: %w", doctorID, err)
	}
	if len(availability) == 0 {
		return nil, ErrAvailabilityNotFound
	}
	return availability, nil
}

// UpdateAvailability applies partial edits to an availability document. Days
// are matched by date, slots within a matched day by slot ID; only fields
// present in the update are changed. If nothing matches, the edit is rejected
// rather than silently dropped.
func (s *DefaultSchedulingService) UpdateAvailability(ctx context.Context, id string, days []models.AvailabilityDayUpdate) (*models.DoctorAvailability, error) {
	if id == "" || len(days) == 0 {
		return nil, ErrValidation
	}

	availability, err := s.AvailabilityRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrAvailabilityNotFound
		}
		return nil, fmt.Errorf("failed to load availability %s: %w", id, err)
	}

	applied := 0
	for _, dayUpdate := range days {
		for di := range availability.Days {
			if availability.Days[di].Date != dayUpdate.Date {
				continue
			}
			for _, slotUpdate := range dayUpdate.Slots {
				for si := range availability.Days[di].Slots {
					if availability.Days[di].Slots[si].ID != slotUpdate.ID {
						continue
					}
					if slotUpdate.StartTime != "" {
						availability.Days[di].Slots[si].StartTime = slotUpdate.StartTime
					}
					if slotUpdate.EndTime != "" {
						availability.Days[di].Slots[si].EndTime = slotUpdate.EndTime
					}
					if slotUpdate.IsBooked != nil {
						availability.Days[di].Slots[si].IsBooked = *slotUpdate.IsBooked
					}
					applied++
				}
			}
		}
	}
	if applied == 0 {
		return nil, ErrNoUpdatesApplied
	}

	if err := s.AvailabilityRepo.ReplaceDays(ctx, id, availability.Days); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrAvailabilityNotFound
		}
		return nil, fmt.Errorf("failed to update availability %s: %w", id, err)
	}
	availability.UpdatedAt = time.Now()
	return availability, nil
}

// DeleteAvailability removes an availability document and all its slots.
// Bookings referencing the removed slots keep their copied time range.
func (s *DefaultSchedulingService) DeleteAvailability(ctx context.Context, id string) error {
	if err := s.AvailabilityRepo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrAvailabilityNotFound
		}
		return fmt.Errorf("failed to delete availability %s: %w", id, err)
	}
	return nil
}

// DeleteSlot removes a single slot from an availability document. Removing a
// slot that is not present succeeds as a no-op; days left empty are dropped.
func (s *DefaultSchedulingService) DeleteSlot(ctx context.Context, availabilityID, slotID string) error {
	availability, err := s.AvailabilityRepo.GetByID(ctx, availabilityID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrAvailabilityNotFound
		}
		return fmt.Errorf("failed to load availability %s: %w", availabilityID, err)
	}

	days := make([]models.AvailabilityDay, 0, len(availability.Days))
	for _, day := range availability.Days {
		slots := make([]models.Slot, 0, len(day.Slots))
		for _, slot := range day.Slots {
			if slot.ID != slotID {
				slots = append(slots, slot)
			}
		}
		if len(slots) > 0 {
			day.Slots = slots
			days = append(days, day)
		}
	}

	if err := s.AvailabilityRepo.ReplaceDays(ctx, availabilityID, days); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrAvailabilityNotFound
		}
		return fmt.Errorf("failed to remove slot %s: %w", slotID, err)
	}
	return nil
}
