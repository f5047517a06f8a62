package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Domenick1991/seatbooking/internal/pkg/logger"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var (
	ErrLockNotAcquired = errors.New("flight lock is held by another process")
	ErrLockNotOwned    = errors.New("flight lock is not owned by this holder")
)

// Deletes the key only while it still carries our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
else
	return 0
end
`)

// FlightLock is a per-flight critical section shared by every API process.
type FlightLock struct {
	client     *redis.Client
	ttl        time.Duration
	retries    int
	retryDelay time.Duration
}

func NewFlightLock(client *redis.Client, ttl time.Duration, retries int, retryDelay time.Duration) *FlightLock {
	if retries < 1 {
		retries = 1
	}
	return &FlightLock{client: client, ttl: ttl, retries: retries, retryDelay: retryDelay}
}

// Lock acquires the flight's lock, retrying while another holder has it.
func (l *FlightLock) Lock(ctx context.Context, flightID int64) (func(), error) {
	key := flightLockKey(flightID)
	token := uuid.NewString()

	for attempt := 0; attempt < l.retries; attempt++ {
		ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("acquire flight lock: %w", err)
		}
		if ok {
			return func() { l.release(key, token) }, nil
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(l.retryDelay):
		}
	}
	return nil, ErrLockNotAcquired
}

// release runs detached from the request context so a cancelled caller still frees the key.
func (l *FlightLock) release(key, token string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	n, err := releaseScript.Run(ctx, l.client, []string{key}, token).Int()
	if err == nil && n == 0 {
		err = ErrLockNotOwned
	}
	if err != nil {
		logger.Warn("release flight lock", zap.String("key", key), zap.Error(err))
	}
}

func flightLockKey(flightID int64) string {
	return fmt.Sprintf("lock:flight:%d", flightID)
}
