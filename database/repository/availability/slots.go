package availabilityRepo

import (
	"context"
	"fmt"
	"time"

	"medicore/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FindSlot locates a slot by (doctor, date, start, end) using string equality
// on the time fields. Returns mongo.ErrNoDocuments when no doctor/date entry
// or no matching slot exists.
func (r *mongoAvailabilityRepo) FindSlot(ctx context.Context, doctorID, date, startTime, endTime string) (*models.Slot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doc models.DoctorAvailability
	err := r.coll.FindOne(ctx, bson.M{
		"doctorId":          doctorID,
		"availability.date": date,
	}).Decode(&doc)
	if err != nil {
		return nil, err
	}

	for _, day := range doc.Days {
		if day.Date != date {
			continue
		}
		for _, slot := range day.Slots {
			if slot.StartTime == startTime && slot.EndTime == endTime {
				return &slot, nil
			}
		}
	}
	return nil, mongo.ErrNoDocuments
}

// MarkSlotBooked flips a slot's booked flag to true. The query itself demands
// an unbooked matching slot via $elemMatch, so a document whose slot is
// already booked matches nothing and MatchedCount is a truthful success
// signal. The boolean result reports whether this caller won the slot; false
// means another booking owns it (or the slot vanished) and the caller must
// fail the booking.
func (r *mongoAvailabilityRepo) MarkSlotBooked(ctx context.Context, doctorID, date, slotID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		markSlotBookedFilter(doctorID, date, slotID),
		bson.M{"$set": bson.M{
			"availability.$[day].slots.$[slot].isBooked": true,
			"updatedAt": time.Now(),
		}},
		options.Update().SetArrayFilters(options.ArrayFilters{
			Filters: []interface{}{
				bson.M{"day.date": date},
				bson.M{"slot.id": slotID, "slot.isBooked": false},
			},
		}),
	)
	if err != nil {
		return false, fmt.Errorf("error marking slot %s booked: %w", slotID, err)
	}
	return res.MatchedCount > 0, nil
}

// markSlotBookedFilter matches the doctor's document only while the target
// slot is still unbooked. The booked-state condition must live in the query,
// not only in the array filters: the update also writes updatedAt, so
// ModifiedCount cannot distinguish "slot flipped" from "only the timestamp
// changed" when the slot is already booked.
func markSlotBookedFilter(doctorID, date, slotID string) bson.M {
	return bson.M{
		"doctorId": doctorID,
		"availability": bson.M{"$elemMatch": bson.M{
			"date": date,
			"slots": bson.M{"$elemMatch": bson.M{
				"id":       slotID,
				"isBooked": false,
			}},
		}},
	}
}

// ReleaseSlot flips a slot's booked flag back to false. A zero-match update is
// a silent no-op: the availability may have been edited or deleted since the
// booking was made.
func (r *mongoAvailabilityRepo) ReleaseSlot(ctx context.Context, doctorID, date, slotID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.UpdateOne(ctx,
		bson.M{"doctorId": doctorID, "availability.date": date},
		bson.M{"$set": bson.M{
			"availability.$[day].slots.$[slot].isBooked": false,
			"updatedAt": time.Now(),
		}},
		options.Update().SetArrayFilters(options.ArrayFilters{
			Filters: []interface{}{
				bson.M{"day.date": date},
				bson.M{"slot.id": slotID},
			},
		}),
	)
	if err != nil {
		return fmt.Errorf("error releasing slot %s: %w", slotID, err)
	}
	return nil
}
