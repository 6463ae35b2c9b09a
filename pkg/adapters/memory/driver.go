package memory

import (
	"context"
	"sync"

	"github.com/aretw0/cellar/pkg/domain"
)

// Driver implements ports.Driver in memory.
// Safe for concurrent use. There is no expiration mechanism, so an
// unbounded key set will eventually eat all available memory; front it
// with the lru adapter if that matters.
type Driver struct {
	data map[string][]byte
	mu   sync.RWMutex
}

// New creates a new in-memory driver.
func New() *Driver {
	return &Driver{
		data: make(map[string][]byte),
	}
}

// Get returns the bytes stored under k.
func (d *Driver) Get(ctx context.Context, k string) ([]byte, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	v, ok := d.data[k]
	if !ok {
		return nil, domain.ErrKeyNotFound
	}

	// Copy on read so the caller can't mutate stored bytes through the slice.
	ret := make([]byte, len(v))
	copy(ret, v)
	return ret, nil
}

// Set stores v under k.
func (d *Driver) Set(ctx context.Context, k string, v []byte) error {
	cp := make([]byte, len(v))
	copy(cp, v)

	d.mu.Lock()
	defer d.mu.Unlock()
	d.data[k] = cp
	return nil
}

// Del removes k. Deleting a missing key is not an error.
func (d *Driver) Del(ctx context.Context, k string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.data, k)
	return nil
}

// Len returns the number of stored keys.
func (d *Driver) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.data)
}
