package ports

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/cellar/pkg/domain"
)

// RunDriverContract runs a suite of tests to verify that a Driver
// implementation adheres to the defined interface contract.
func RunDriverContract(t *testing.T, driver Driver) {
	ctx := context.Background()

	t.Run("Set and Get", func(t *testing.T) {
		err := driver.Set(ctx, "contract-name", []byte(`"cellar"`))
		require.NoError(t, err, "Set should not return error")

		got, err := driver.Get(ctx, "contract-name")
		require.NoError(t, err, "Get should not return error")
		assert.Equal(t, []byte(`"cellar"`), got)
	})

	t.Run("Overwrite", func(t *testing.T) {
		require.NoError(t, driver.Set(ctx, "contract-over", []byte("1")))
		require.NoError(t, driver.Set(ctx, "contract-over", []byte("2")))

		got, err := driver.Get(ctx, "contract-over")
		require.NoError(t, err)
		assert.Equal(t, []byte("2"), got)
	})

	t.Run("Get Non-Existent", func(t *testing.T) {
		_, err := driver.Get(ctx, "contract-missing")
		assert.ErrorIs(t, err, domain.ErrKeyNotFound)
	})

	t.Run("Del", func(t *testing.T) {
		require.NoError(t, driver.Set(ctx, "contract-del", []byte("x")))
		require.NoError(t, driver.Del(ctx, "contract-del"))

		_, err := driver.Get(ctx, "contract-del")
		assert.ErrorIs(t, err, domain.ErrKeyNotFound, "Get after Del should return ErrKeyNotFound")
	})

	t.Run("Del Non-Existent", func(t *testing.T) {
		assert.NoError(t, driver.Del(ctx, "contract-never-existed"))
	})
}

// RunClientContract verifies a Client implementation: JSON codec round-trips
// and the derived operations (SetNX, Add, Dec) built on top of it.
func RunClientContract(t *testing.T, client Client) {
	ctx := context.Background()

	t.Run("Set and Get", func(t *testing.T) {
		require.NoError(t, client.Set(ctx, "contract-name", "cellar"))

		var got string
		require.NoError(t, client.Get(ctx, "contract-name", &got))
		assert.Equal(t, "cellar", got)

		require.NoError(t, client.Del(ctx, "contract-name"))
	})

	t.Run("Get Non-Existent", func(t *testing.T) {
		var got string
		err := client.Get(ctx, "contract-missing", &got)
		assert.ErrorIs(t, err, domain.ErrKeyNotFound)
	})

	t.Run("SetNX", func(t *testing.T) {
		require.NoError(t, client.SetNX(ctx, "contract-nx", 1))
		require.NoError(t, client.SetNX(ctx, "contract-nx", 2), "second SetNX must be a no-op")

		var got int64
		require.NoError(t, client.Get(ctx, "contract-nx", &got))
		assert.Equal(t, int64(1), got)

		require.NoError(t, client.Del(ctx, "contract-nx"))
	})

	t.Run("Add and Dec", func(t *testing.T) {
		require.NoError(t, client.Set(ctx, "contract-n", 10))
		require.NoError(t, client.Add(ctx, "contract-n", 5))
		require.NoError(t, client.Dec(ctx, "contract-n", 3))

		var got int64
		require.NoError(t, client.Get(ctx, "contract-n", &got))
		assert.Equal(t, int64(12), got)

		require.NoError(t, client.Del(ctx, "contract-n"))
	})

	t.Run("Add Non-Existent", func(t *testing.T) {
		err := client.Add(ctx, "contract-n-missing", 1)
		assert.ErrorIs(t, err, domain.ErrKeyNotFound)
	})

	t.Run("Del Non-Existent", func(t *testing.T) {
		assert.NoError(t, client.Del(ctx, "contract-never-existed"))
	})
}
