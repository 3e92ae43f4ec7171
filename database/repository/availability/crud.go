package availabilityRepo

import (
	"context"
	"fmt"
	"time"

	"medicore/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UpsertDay merges a day of slots into the doctor's calendar document. If the
// doctor already has an entry for the date the slots are appended to it,
// otherwise the day is pushed; a missing document is created. This keeps one
// calendar document per doctor and at most one day entry per date.
func (r *mongoAvailabilityRepo) UpsertDay(ctx context.Context, doctorID string, day models.AvailabilityDay) (*models.DoctorAvailability, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()

	// Existing day for this date: append the new slots to it.
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"doctorId": doctorID, "availability.date": day.Date},
		bson.M{
			"$push": bson.M{"availability.$.slots": bson.M{"$each": day.Slots}},
			"$set":  bson.M{"updatedAt": now},
		},
	)
	if err != nil {
		return nil, fmt.Errorf("error appending slots for doctor %s: %w", doctorID, err)
	}

	if res.MatchedCount == 0 {
		// No entry for the date yet: push the whole day, creating the
		// doctor's document if this is their first availability.
		_, err = r.coll.UpdateOne(ctx,
			bson.M{"doctorId": doctorID},
			bson.M{
				"$push": bson.M{"availability": day},
				"$set":  bson.M{"updatedAt": now},
				"$setOnInsert": bson.M{
					"id":        uuid.New().String(),
					"doctorId":  doctorID,
					"createdAt": now,
				},
			},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			return nil, fmt.Errorf("error upserting availability for doctor %s: %w", doctorID, err)
		}
	}

	var updated models.DoctorAvailability
	if err := r.coll.FindOne(ctx, bson.M{"doctorId": doctorID}).Decode(&updated); err != nil {
		return nil, fmt.Errorf("error reloading availability for doctor %s: %w", doctorID, err)
	}
	return &updated, nil
}

// GetByID retrieves an availability document by its ID.
func (r *mongoAvailabilityRepo) GetByID(ctx context.Context, id string) (*models.DoctorAvailability, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var availability models.DoctorAvailability
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&availability)
	if err != nil {
		return nil, err
	}
	return &availability, nil
}

// GetByDoctorID returns all availability documents owned by the doctor.
func (r *mongoAvailabilityRepo) GetByDoctorID(ctx context.Context, doctorID string) ([]models.DoctorAvailability, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"doctorId": doctorID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []models.DoctorAvailability
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// ReplaceDays overwrites the availability array of a document in place.
func (r *mongoAvailabilityRepo) ReplaceDays(ctx context.Context, id string, days []models.AvailabilityDay) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"availability": days, "updatedAt": time.Now()}},
	)
	if err != nil {
		return fmt.Errorf("error updating availability %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// DeleteByID removes an availability document.
func (r *mongoAvailabilityRepo) DeleteByID(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("error deleting availability %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
