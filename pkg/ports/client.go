package ports

import "context"

// Client is the typed, concurrency-safe view over a Driver. Values are
// serialized as JSON, so anything json.Marshal accepts can be stored.
type Client interface {
	// Get decodes the value stored under k into v.
	// Returns domain.ErrKeyNotFound if the key does not exist.
	Get(ctx context.Context, k string, v any) error

	// Set encodes v and stores it under k.
	Set(ctx context.Context, k string, v any) error

	// SetNX stores v under k only if k does not already exist.
	// When k already holds a value, no operation is performed.
	SetNX(ctx context.Context, k string, v any) error

	// Del removes k. Deleting a missing key is not an error.
	Del(ctx context.Context, k string) error

	// Add increments the number stored at k by n.
	Add(ctx context.Context, k string, n int64) error

	// Dec decrements the number stored at k by n.
	Dec(ctx context.Context, k string, n int64) error
}
