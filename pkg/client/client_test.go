package client_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/cellar/pkg/adapters/memory"
	"github.com/aretw0/cellar/pkg/client"
	"github.com/aretw0/cellar/pkg/ports"
)

func TestClient_Contract(t *testing.T) {
	ports.RunClientContract(t, client.New(memory.New()))
}

func TestClient_StructRoundTrip(t *testing.T) {
	type user struct {
		Name string `json:"name"`
		Age  int    `json:"age"`
	}

	ctx := context.Background()
	c := client.New(memory.New())

	require.NoError(t, c.Set(ctx, "u", user{Name: "ada", Age: 36}))

	var got user
	require.NoError(t, c.Get(ctx, "u", &got))
	assert.Equal(t, user{Name: "ada", Age: 36}, got)
}

func TestClient_ConcurrentAdd(t *testing.T) {
	ctx := context.Background()
	c := client.New(memory.New())

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
