package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	Redis     bool      `json:"redis"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// StartHealthMonitor performs periodic health checks and updates in-memory state.
func StartHealthMonitor(redisClient *redis.Client, mongoClient *mongo.Client) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		ctx := context.Background()

		check := func() {
			status := HealthStatus{CheckedAt: time.Now().UTC()}

			pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
			status.Mongo = mongoClient.Ping(pingCtx, nil) == nil
			cancel()

			pingCtx, cancel = context.WithTimeout(ctx, 3*time.Second)
			status.Redis = redisClient.Ping(pingCtx).Err() == nil
			cancel()

			healthMu.Lock()
			currentHealth = status
			healthMu.Unlock()
		}

		check()
		for range ticker.C {
			check()
		}
	}()
}
