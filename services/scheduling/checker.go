package scheduling

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// IsSlotAvailable answers "is this doctor free at this date/time?". A doctor
// with no availability entry for the date has nothing bookable, so the answer
// is conservative: missing doctor, missing date and missing slot all read as
// unavailable. Times are matched by exact string equality. No side effects.
func (s *DefaultSchedulingService) IsSlotAvailable(ctx context.Context, doctorID, date, startTime, endTime string) (bool, error) {
	slot, err := s.AvailabilityRepo.FindSlot(ctx, doctorID, date, startTime, endTime)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, err
	}
	return !slot.IsBooked, nil
}
