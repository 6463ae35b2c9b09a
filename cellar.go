package cellar

import (
	"github.com/aretw0/cellar/pkg/adapters/file"
	"github.com/aretw0/cellar/pkg/adapters/lru"
	"github.com/aretw0/cellar/pkg/adapters/memory"
	redisadapter "github.com/aretw0/cellar/pkg/adapters/redis"
	"github.com/aretw0/cellar/pkg/adapters/remote"
	"github.com/aretw0/cellar/pkg/adapters/tiered"
	"github.com/aretw0/cellar/pkg/client"
	"github.com/aretw0/cellar/pkg/ports"
)

// Version is the current release of the cellar module.
var Version = "0.3.0"

// Mem returns a concurrency-safe Client backed by process memory.
// Fast, unbounded, gone on restart.
func Mem() ports.Client {
	return client.New(memory.New())
}

// File returns a concurrency-safe Client persisting one file per key under
// root.
func File(root string, opts ...file.Option) (ports.Client, error) {
	d, err := file.New(root, opts...)
	if err != nil {
		return nil, err
	}
	return client.New(d), nil
}

// LRU returns a concurrency-safe Client backed by a fixed-capacity
// in-memory cache with least recently used eviction.
func LRU(capacity int) ports.Client {
	return client.New(lru.New(capacity))
}

// Tiered returns a concurrency-safe Client persisting to the filesystem
// with an LRU read cache of the given capacity in front.
func Tiered(root string, capacity int, opts ...file.Option) (ports.Client, error) {
	d, err := tiered.New(root, capacity, opts...)
	if err != nil {
		return nil, err
	}
	return client.New(d), nil
}

// Redis returns a concurrency-safe Client backed by a Redis server.
func Redis(addr, password string, db int, opts ...redisadapter.Option) ports.Client {
	return client.New(redisadapter.New(addr, password, db, opts...))
}

// Remote returns a Client that talks to a cellar server over HTTP, e.g.
// one started with "cellar serve".
func Remote(base string, opts ...remote.Option) ports.Client {
	return remote.New(base, opts...)
}
