package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/cellar/pkg/adapters/redis"
	"github.com/aretw0/cellar/pkg/domain"
	"github.com/aretw0/cellar/pkg/ports"
)

func newTestDriver(t *testing.T, opts ...redis.Option) *redis.Driver {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})

	driver := redis.NewFromClient(client, opts...)
	t.Cleanup(func() { _ = driver.Close() })
	return driver
}

func TestRedisDriver_Contract(t *testing.T) {
	ports.RunDriverContract(t, newTestDriver(t))
}

func TestRedisDriver_Prefix(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	driver := redis.NewFromClient(client, redis.WithPrefix("app:"))

	require.NoError(t, driver.Set(context.Background(), "name", []byte("cellar")))

	got, err := mr.Get("app:name")
	require.NoError(t, err)
	assert.Equal(t, "cellar", got)
}

func TestRedisDriver_TTL(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	driver := redis.NewFromClient(client, redis.WithTTL(time.Minute))

	ctx := context.Background()
	require.NoError(t, driver.Set(ctx, "name", []byte("cellar")))

	// Advance the fake clock past the TTL; the key must be gone.
	mr.FastForward(2 * time.Minute)
	_, err = driver.Get(ctx, "name")
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)
}
