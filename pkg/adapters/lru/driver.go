// Package lru provides a fixed-capacity ports.Driver with least recently
// used eviction. Lookup and insert are O(1); when the cache is full a
// quarter of the capacity is evicted at once so inserts don't pay an
// eviction on every call.
package lru

import (
	"container/list"
	"context"
	"sync"

	"github.com/aretw0/cellar/pkg/adapters/memory"
	"github.com/aretw0/cellar/pkg/domain"
	"github.com/aretw0/cellar/pkg/ports"
)

// Driver implements ports.Driver with LRU eviction over an in-memory store.
// Safe for concurrent use.
type Driver struct {
	inner    ports.Driver
	elems    map[string]*list.Element
	order    *list.List // front = most recently used, values are keys
	capacity int
	mu       sync.Mutex
}

// New creates an LRU driver holding at most capacity keys.
func New(capacity int) *Driver {
	return &Driver{
		inner:    memory.New(),
		elems:    make(map[string]*list.Element),
		order:    list.New(),
		capacity: capacity,
	}
}

// Get returns the bytes stored under k and marks k as recently used.
func (d *Driver) Get(ctx context.Context, k string) ([]byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	e, ok := d.elems[k]
	if !ok {
		return nil, domain.ErrKeyNotFound
	}
	v, err := d.inner.Get(ctx, k)
	if err != nil {
		return nil, err
	}
	d.order.MoveToFront(e)
	return v, nil
}

// Set stores v under k. When the cache is at capacity, the least recently
// used quarter (at least one key) is evicted first.
func (d *Driver) Set(ctx context.Context, k string, v []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.order.Len() >= d.capacity {
		n := d.capacity / 4
		if n == 0 {
			n = 1
		}
		for i := 0; i < n; i++ {
			back := d.order.Back()
			if back == nil {
				break
			}
			if err := d.del(ctx, back.Value.(string)); err != nil {
				return err
			}
		}
	}

	// Re-insert so an overwrite moves the key to the front.
	if err := d.del(ctx, k); err != nil {
		return err
	}
	if err := d.inner.Set(ctx, k, v); err != nil {
		return err
	}
	d.elems[k] = d.order.PushFront(k)
	return nil
}

// Del removes k. Deleting a missing key is not an error.
func (d *Driver) Del(ctx context.Context, k string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.del(ctx, k)
}

func (d *Driver) del(ctx context.Context, k string) error {
	e, ok := d.elems[k]
	if !ok {
		return nil
	}
	if err := d.inner.Del(ctx, k); err != nil {
		return err
	}
	d.order.Remove(e)
	delete(d.elems, k)
	return nil
}

// Len returns the number of cached keys.
func (d *Driver) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.order.Len()
}
