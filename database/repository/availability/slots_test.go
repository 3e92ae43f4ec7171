package availabilityRepo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// MarkSlotBooked judges success by MatchedCount, which is only safe because
// the query refuses documents whose target slot is already booked. This pins
// the unbooked condition to the query: with it only in the array filters, the
// unconditional updatedAt write would modify the document for an
// already-booked slot and both sides of a booking race would report success.
func TestMarkSlotBookedFilterDemandsUnbookedSlot(t *testing.T) {
	filter := markSlotBookedFilter("D1", "2025-01-10", "s1")

	assert.Equal(t, "D1", filter["doctorId"])

	avail, ok := filter["availability"].(bson.M)
	require.True(t, ok)
	day, ok := avail["$elemMatch"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, "2025-01-10", day["date"])

	slots, ok := day["slots"].(bson.M)
	require.True(t, ok)
	slot, ok := slots["$elemMatch"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, "s1", slot["id"])
	assert.Equal(t, false, slot["isBooked"])
}
