package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"medicore/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new booking document.
func (r *mongoBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, booking)
	if err != nil {
		return fmt.Errorf("error creating booking: %w", err)
	}
	return nil
}

// GetByID retrieves a booking by its ID.
func (r *mongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// UpdateStatus overwrites a booking's status and returns the updated record.
// Returns mongo.ErrNoDocuments when the booking does not exist.
func (r *mongoBookingRepo) UpdateStatus(ctx context.Context, id, status string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var updated models.Booking
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteByID removes a booking and returns the deleted record so the caller
// can release the corresponding slot. Returns mongo.ErrNoDocuments when the
// booking does not exist.
func (r *mongoBookingRepo) DeleteByID(ctx context.Context, id string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var deleted models.Booking
	err := r.coll.FindOneAndDelete(ctx, bson.M{"id": id}).Decode(&deleted)
	if err != nil {
		return nil, err
	}
	return &deleted, nil
}

// GetByDoctorID fetches all bookings for a doctor.
func (r *mongoBookingRepo) GetByDoctorID(ctx context.Context, doctorID string) ([]models.Booking, error) {
	return r.find(ctx, bson.M{"doctorId": doctorID})
}

// GetByPatientID fetches all bookings for a patient.
func (r *mongoBookingRepo) GetByPatientID(ctx context.Context, patientID string) ([]models.Booking, error) {
	return r.find(ctx, bson.M{"patientId": patientID})
}

// GetAll fetches every booking.
func (r *mongoBookingRepo) GetAll(ctx context.Context) ([]models.Booking, error) {
	return r.find(ctx, bson.M{})
}

func (r *mongoBookingRepo) find(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}
