package remote_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cellarhttp "github.com/aretw0/cellar/internal/adapters/http"
	"github.com/aretw0/cellar/pkg/adapters/memory"
	"github.com/aretw0/cellar/pkg/adapters/remote"
	"github.com/aretw0/cellar/pkg/client"
	"github.com/aretw0/cellar/pkg/ports"
)

func newTestServer(t *testing.T) *remote.Client {
	t.Helper()

	handler := cellarhttp.NewHandler(client.New(memory.New()), prometheus.NewRegistry())
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return remote.New(srv.URL, remote.WithHTTPClient(srv.Client()))
}

func TestRemoteClient_Contract(t *testing.T) {
	ports.RunClientContract(t, newTestServer(t))
}

func TestRemoteClient_ConcurrentAdd(t *testing.T) {
	ctx := context.Background()
	c := newTestServer(t)

	require.NoError(t, c.Set(ctx, "n", 0))

	var wg sync.WaitGroup
	wg.Add(64)
	for i := 0; i < 64; i++ {
		go func() {
			defer wg.Done()
			assert.NoError(t, c.Add(ctx, "n", 1))
		}()
	}
	wg.Wait()

	var got int64
	require.NoError(t, c.Get(ctx, "n", &got))
	assert.Equal(t, int64(64), got)
}

func TestRemoteClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	c := remote.New(srv.URL)
	err := c.Set(context.Background(), "k", "v")
	assert.ErrorContains(t, err, "unexpected status 502")
}
