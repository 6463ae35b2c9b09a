package redis

import (
	"context"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/aretw0/cellar/pkg/domain"
)

// Driver implements ports.Driver using Redis.
type Driver struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

// Option configures the driver.
type Option func(*Driver)

// WithTTL sets the expiration for keys. Zero means no expiration.
func WithTTL(ttl time.Duration) Option {
	return func(d *Driver) {
		d.ttl = ttl
	}
}

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) Option {
	return func(d *Driver) {
		d.prefix = prefix
	}
}

// New creates a new Redis driver with options.
func New(address, password string, db int, opts ...Option) *Driver {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis driver from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Driver {
	d := &Driver{
		client: client,
		prefix: "cellar:",
		ttl:    0, // No expiration by default
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Driver) key(k string) string {
	return d.prefix + k
}

// Get returns the bytes stored under k.
func (d *Driver) Get(ctx context.Context, k string) ([]byte, error) {
	v, err := d.client.Get(ctx, d.key(k)).Bytes()
	if err != nil {
		if err == backend.Nil {
			return nil, domain.ErrKeyNotFound
		}
		return nil, fmt.Errorf("failed to get from redis: %w", err)
	}
	return v, nil
}

// Set stores v under k, applying the configured TTL.
func (d *Driver) Set(ctx context.Context, k string, v []byte) error {
	if err := d.client.Set(ctx, d.key(k), v, d.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set in redis: %w", err)
	}
	return nil
}

// Del removes k. Deleting a missing key is not an error.
func (d *Driver) Del(ctx context.Context, k string) error {
	if err := d.client.Del(ctx, d.key(k)).Err(); err != nil {
		return fmt.Errorf("failed to delete from redis: %w", err)
	}
	return nil
}

// Close closes the redis client.
func (d *Driver) Close() error {
	return d.client.Close()
}
