// Package remote implements ports.Client against a cellar server, speaking
// the same JSON envelope protocol the server exposes on PUT /command.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/aretw0/cellar/pkg/domain"
)

// Client talks to a cellar server over HTTP.
type Client struct {
	base string
	http *http.Client
}

// Option configures the client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client, e.g. to set
// timeouts or transport-level TLS.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// New creates a client for the server at base, e.g. "http://127.0.0.1:8080".
func New(base string, opts ...Option) *Client {
	c := &Client{
		base: strings.TrimRight(base, "/"),
		http: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) do(ctx context.Context, req *domain.Request) (*domain.Response, error) {
	buf, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPut, c.base+"/command", bytes.NewReader(buf))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", httpResp.StatusCode)
	}

	resp := &domain.Response{}
	if err := json.NewDecoder(httpResp.Body).Decode(resp); err != nil {
		return nil, err
	}
	if resp.Err != "" {
		if resp.Err == domain.ErrKeyNotFound.Error() {
			return nil, domain.ErrKeyNotFound
		}
		return nil, errors.New(resp.Err)
	}
	return resp, nil
}

// Get decodes the value stored under k into v.
func (c *Client) Get(ctx context.Context, k string, v any) error {
	resp, err := c.do(ctx, &domain.Request{Command: domain.CmdGet, K: k})
	if err != nil {
		return err
	}
	return json.Unmarshal(resp.V, v)
}

// Set encodes v and stores it under k.
func (c *Client) Set(ctx context.Context, k string, v any) error {
	buf, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = c.do(ctx, &domain.Request{Command: domain.CmdSet, K: k, V: buf})
	return err
}

// SetNX stores v under k only if k does not already exist.
func (c *Client) SetNX(ctx context.Context, k string, v any) error {
	buf, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = c.do(ctx, &domain.Request{Command: domain.CmdSetNX, K: k, V: buf})
	return err
}

// Del removes k. Deleting a missing key is not an error.
func (c *Client) Del(ctx context.Context, k string) error {
	_, err := c.do(ctx, &domain.Request{Command: domain.CmdDel, K: k})
	return err
}

// Add increments the number stored at k by n.
func (c *Client) Add(ctx context.Context, k string, n int64) error {
	v := []byte(strconv.FormatInt(n, 10))
	_, err := c.do(ctx, &domain.Request{Command: domain.CmdAdd, K: k, V: v})
	return err
}

// Dec decrements the number stored at k by n.
func (c *Client) Dec(ctx context.Context, k string, n int64) error {
	v := []byte(strconv.FormatInt(n, 10))
	_, err := c.do(ctx, &domain.Request{Command: domain.CmdDec, K: k, V: v})
	return err
}
