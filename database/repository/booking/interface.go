package bookingRepo

import (
	"context"

	"medicore/database"
	"medicore/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository is the persistence boundary for booking records.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	UpdateStatus(ctx context.Context, id, status string) (*models.Booking, error)
	DeleteByID(ctx context.Context, id string) (*models.Booking, error)
	GetByDoctorID(ctx context.Context, doctorID string) ([]models.Booking, error)
	GetByPatientID(ctx context.Context, patientID string) ([]models.Booking, error)
	GetAll(ctx context.Context) ([]models.Booking, error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a BookingRepository backed by the bookings
// collection.
func NewMongoBookingRepo() BookingRepository {
	return &mongoBookingRepo{
		coll: database.DB().Collection("bookings"),
	}
}
