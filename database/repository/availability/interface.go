package availabilityRepo

import (
	"context"

	"medicore/database"
	"medicore/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// AvailabilityRepository is the persistence boundary for doctor calendars.
//
// MarkSlotBooked is the concurrency-safety mechanism for booking creation: it
// is a single conditional update that only matches an unbooked slot, so two
// concurrent bookings for the same slot can never both succeed.
type AvailabilityRepository interface {
	UpsertDay(ctx context.Context, doctorID string, day models.AvailabilityDay) (*models.DoctorAvailability, error)
	GetByID(ctx context.Context, id string) (*models.DoctorAvailability, error)
	GetByDoctorID(ctx context.Context, doctorID string) ([]models.DoctorAvailability, error)
	FindSlot(ctx context.Context, doctorID, date, startTime, endTime string) (*models.Slot, error)
	MarkSlotBooked(ctx context.Context, doctorID, date, slotID string) (bool, error)
	ReleaseSlot(ctx context.Context, doctorID, date, slotID string) error
	ReplaceDays(ctx context.Context, id string, days []models.AvailabilityDay) error
	DeleteByID(ctx context.Context, id string) error
}

type mongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo returns an AvailabilityRepository backed by the
// doctor_availability collection.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	return &mongoAvailabilityRepo{
		coll: database.DB().Collection("doctor_availability"),
	}
}
