package file_test

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/cellar/pkg/adapters/file"
	"github.com/aretw0/cellar/pkg/ports"
)

func TestFileDriver_Contract(t *testing.T) {
	driver, err := file.New("data", file.WithFs(afero.NewMemMapFs()))
	require.NoError(t, err)
	ports.RunDriverContract(t, driver)
}

func TestFileDriver_OsFs(t *testing.T) {
	// Smoke test on the real filesystem; the contract runs on MemMapFs.
	driver, err := file.New(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, driver.Set(ctx, "name", []byte("cellar")))

	got, err := driver.Get(ctx, "name")
	require.NoError(t, err)
	assert.Equal(t, []byte("cellar"), got)
}

func TestFileDriver_RejectsPathKeys(t *testing.T) {
	driver, err := file.New("data", file.WithFs(afero.NewMemMapFs()))
	require.NoError(t, err)

	ctx := context.Background()
	for _, k := range []string{"", "..", "a/b", `a\b`, "../escape"} {
		assert.Error(t, driver.Set(ctx, k, []byte("x")), "key %q should be rejected", k)
	}
}
