package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus is the latest snapshot of the backing stores: the Mongo
// database, the auth session cache, and the reminder queue Redis DB.
type HealthStatus struct {
	Mongo         bool      `json:"mongo"`
	AuthCache     bool      `json:"authCache"`
	ReminderQueue bool      `json:"reminderQueue"`
	CheckedAt     time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns the latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

func setHealthStatus(status HealthStatus) {
	healthMu.Lock()
	currentHealth = status
	healthMu.Unlock()
}

// checkStores pings each store. A nil client reports unhealthy rather than
// panicking, since a store may be unconfigured at startup.
func checkStores(ctx context.Context, mongoClient *mongo.Client, authCache, reminderQueue *redis.Client) HealthStatus {
	status := HealthStatus{CheckedAt: time.Now()}
	if mongoClient != nil {
		status.Mongo = mongoClient.Ping(ctx, nil) == nil
	}
	if authCache != nil {
		status.AuthCache = authCache.Ping(ctx).Err() == nil
	}
	if reminderQueue != nil {
		status.ReminderQueue = reminderQueue.Ping(ctx).Err() == nil
	}
	return status
}

// StartHealthMonitor performs periodic health checks against the backing
// stores and updates the in-memory snapshot.
func StartHealthMonitor(mongoClient *mongo.Client, authCache, reminderQueue *redis.Client) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		ctx := context.Background()
		setHealthStatus(checkStores(ctx, mongoClient, authCache, reminderQueue))

		for range ticker.C {
			setHealthStatus(checkStores(ctx, mongoClient, authCache, reminderQueue))
		}
	}()
}
