// Package client provides the typed view over a raw driver: values are
// encoded as JSON and read-modify-write operations are serialized behind a
// mutex so counters stay consistent under concurrent use.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/aretw0/cellar/pkg/domain"
	"github.com/aretw0/cellar/pkg/ports"
)

// Client implements ports.Client over any ports.Driver.
// Safe for concurrent use within a single process; cross-process callers
// should talk to one server instead of sharing a backend directly.
type Client struct {
	driver ports.Driver
	mu     sync.Mutex
}

// New wraps driver in a concurrency-safe JSON client.
func New(driver ports.Driver) *Client {
	return &Client{driver: driver}
}

func (c *Client) get(ctx context.Context, k string, v any) error {
	buf, err := c.driver.Get(ctx, k)
	if err != nil {
		return err
	}
	return json.Unmarshal(buf, v)
}

func (c *Client) set(ctx context.Context, k string, v any) error {
	buf, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.driver.Set(ctx, k, buf)
}

// Get decodes the value stored under k into v.
func (c *Client) Get(ctx context.Context, k string, v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.get(ctx, k, v)
}

// Set encodes v and stores it under k.
func (c *Client) Set(ctx context.Context, k string, v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.set(ctx, k, v)
}

// SetNX stores v under k only if k does not already exist.
func (c *Client) SetNX(ctx context.Context, k string, v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var raw json.RawMessage
	err := c.get(ctx, k, &raw)
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrKeyNotFound) {
		return c.set(ctx, k, v)
	}
	return err
}

// Del removes k. Deleting a missing key is not an error.
func (c *Client) Del(ctx context.Context, k string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.driver.Del(ctx, k)
}

// Add increments the number stored at k by n.
// Returns domain.ErrKeyNotFound if the key does not exist.
func (c *Client) Add(ctx context.Context, k string, n int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var i int64
	if err := c.get(ctx, k, &i); err != nil {
		return err
	}
	return c.set(ctx, k, i+n)
}

// Dec decrements the number stored at k by n.
func (c *Client) Dec(ctx context.Context, k string, n int64) error {
	return c.Add(ctx, k, -n)
}
