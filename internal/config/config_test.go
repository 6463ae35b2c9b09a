package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/cellar/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cellar.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, "driver: mem\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Listen, "unset listen should default")
	assert.Equal(t, "mem", cfg.Driver)
}

func TestLoad_RedisOptions(t *testing.T) {
	path := writeConfig(t, `
listen: ":6380"
driver: redis
options:
  addr: "127.0.0.1:6379"
  db: 2
  prefix: "app:"
  ttl: 30m
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":6380", cfg.Listen)

	var opts config.RedisOptions
	require.NoError(t, cfg.DecodeOptions(&opts))
	assert.Equal(t, "127.0.0.1:6379", opts.Addr)
	assert.Equal(t, 2, opts.DB)
	assert.Equal(t, "app:", opts.Prefix)
	assert.Equal(t, 30*time.Minute, opts.TTL)
}

func TestLoad_TieredOptions(t *testing.T) {
	path := writeConfig(t, `
driver: tiered
options:
  path: /var/lib/cellar
  capacity: 4096
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	var opts config.TieredOptions
	require.NoError(t, cfg.DecodeOptions(&opts))
	assert.Equal(t, "/var/lib/cellar", opts.Path)
	assert.Equal(t, 4096, opts.Capacity)
}

func TestLoad_UnknownDriver(t *testing.T) {
	path := writeConfig(t, "driver: etcd\n")

	_, err := config.Load(path)
	assert.ErrorContains(t, err, `unknown driver "etcd"`)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
