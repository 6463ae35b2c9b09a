// Package tiered combines the file and lru adapters: the filesystem is the
// authoritative store and an in-memory LRU absorbs repeated reads.
package tiered

import (
	"context"
	"errors"

	"github.com/aretw0/cellar/pkg/adapters/file"
	"github.com/aretw0/cellar/pkg/adapters/lru"
	"github.com/aretw0/cellar/pkg/domain"
)

// Driver implements ports.Driver as a write-through file store with an LRU
// read cache in front.
type Driver struct {
	base  *file.Driver
	cache *lru.Driver
}

// New creates a tiered driver rooted at root with an LRU cache of the given
// capacity in front of it.
func New(root string, capacity int, opts ...file.Option) (*Driver, error) {
	base, err := file.New(root, opts...)
	if err != nil {
		return nil, err
	}
	return &Driver{
		base:  base,
		cache: lru.New(capacity),
	}, nil
}

// Get returns the bytes stored under k, populating the cache on a miss.
func (d *Driver) Get(ctx context.Context, k string) ([]byte, error) {
	if v, err := d.cache.Get(ctx, k); err == nil {
		return v, nil
	} else if !errors.Is(err, domain.ErrKeyNotFound) {
		return nil, err
	}

	v, err := d.base.Get(ctx, k)
	if err != nil {
		return nil, err
	}
	if err := d.cache.Set(ctx, k, v); err != nil {
		return nil, err
	}
	return v, nil
}

// Set stores v under k in both tiers.
func (d *Driver) Set(ctx context.Context, k string, v []byte) error {
	if err := d.base.Set(ctx, k, v); err != nil {
		return err
	}
	return d.cache.Set(ctx, k, v)
}

// Del removes k from both tiers. Deleting a missing key is not an error.
func (d *Driver) Del(ctx context.Context, k string) error {
	if err := d.base.Del(ctx, k); err != nil {
		return err
	}
	return d.cache.Del(ctx, k)
}
