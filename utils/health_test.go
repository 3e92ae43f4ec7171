package utils

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCheckStoresNilClients(t *testing.T) {
	status := checkStores(context.Background(), nil, nil, nil)

	assert.False(t, status.Mongo)
	assert.False(t, status.AuthCache)
	assert.False(t, status.ReminderQueue)
	assert.WithinDuration(t, time.Now(), status.CheckedAt, time.Minute)
}

func TestHealthStatusSnapshot(t *testing.T) {
	want := HealthStatus{
		Mongo:         true,
		AuthCache:     true,
		ReminderQueue: false,
		CheckedAt:     time.Now(),
	}
	setHealthStatus(want)

	assert.Equal(t, want, GetHealthStatus())
}
