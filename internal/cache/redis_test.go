package cache

import (
	"context"
	"testing"
	"time"

	"github.com/Domenick1991/seatbooking/config"
	"github.com/Domenick1991/seatbooking/internal/domain"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func redisClient(t *testing.T) *redis.Client {
	t.Helper()
	client := NewClient(config.RedisConfig{Addr: "localhost:6379", DB: 15})
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skip("Redis not available")
	}
	t.Cleanup(func() { client.Close() })
	return client
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "cache:flight:12", flightKey(12))
	assert.Equal(t, "lock:flight:12", flightLockKey(12))
}

func TestRedisCache_Flight(t *testing.T) {
	client := redisClient(t)
	c := NewRedisCache(client, time.Minute)
	ctx := context.Background()
	client.Del(ctx, flightKey(501))

	miss, err := c.GetFlight(ctx, 501)
	require.NoError(t, err)
	assert.Nil(t, miss)

	require.NoError(t, c.SetFlight(ctx, &domain.Flight{ID: 501, FlightNumber: "LA501", TotalSeats: 10}))
	hit, err := c.GetFlight(ctx, 501)
	require.NoError(t, err)
	require.NotNil(t, hit)
	assert.Equal(t, "LA501", hit.FlightNumber)
}

func TestRedisCache_AppliesTTL(t *testing.T) {
	client := redisClient(t)
	c := NewRedisCache(client, 30*time.Second)
	ctx := context.Background()
	client.Del(ctx, flightKey(502), flightsKey())

	require.NoError(t, c.SetFlight(ctx, &domain.Flight{ID: 502, FlightNumber: "LA502"}))
	require.NoError(t, c.SetFlights(ctx, []domain.Flight{{ID: 502}}))

	for _, key := range []string{flightKey(502), flightsKey()} {
		ttl, err := client.TTL(ctx, key).Result()
		require.NoError(t, err)
		assert.Greater(t, ttl, time.Duration(0), key)
		assert.LessOrEqual(t, ttl, 30*time.Second, key)
	}
}

func TestFlightLock(t *testing.T) {
	client := redisClient(t)
	ctx := context.Background()
	client.Del(ctx, flightLockKey(777))

	l := NewFlightLock(client, 5*time.Second, 1, 10*time.Millisecond)

	unlock, err := l.Lock(ctx, 777)
	require.NoError(t, err)

	_, err = l.Lock(ctx, 777)
	assert.ErrorIs(t, err, ErrLockNotAcquired)

	other, err := l.Lock(ctx, 778)
	require.NoError(t, err)
	other()

	unlock()
	again, err := l.Lock(ctx, 777)
	require.NoError(t, err)
	again()
}

func TestFlightLock_WaitsForRelease(t *testing.T) {
	client := redisClient(t)
	ctx := context.Background()
	client.Del(ctx, flightLockKey(779))

	l := NewFlightLock(client, 5*time.Second, 50, 10*time.Millisecond)
	unlock, err := l.Lock(ctx, 779)
	require.NoError(t, err)

	go func() {
		time.Sleep(50 * time.Millisecond)
		unlock()
	}()

	second, err := l.Lock(ctx, 779)
	require.NoError(t, err)
	second()
}
