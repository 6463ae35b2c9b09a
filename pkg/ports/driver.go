package ports

import "context"

// Driver defines the interface for raw byte storage backends.
// Implementations decide where the bytes live (memory, filesystem, redis)
// and are free to evict if they are caches.
type Driver interface {
	// Get returns the bytes stored under k.
	// Returns domain.ErrKeyNotFound if the key does not exist.
	Get(ctx context.Context, k string) ([]byte, error)

	// Set stores v under k, overwriting any previous value.
	Set(ctx context.Context, k string, v []byte) error

	// Del removes k. Deleting a missing key is not an error.
	Del(ctx context.Context, k string) error
}
