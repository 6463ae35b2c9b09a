// Package config loads the server configuration. The file is YAML with a
// free-form options block whose shape depends on the selected driver; the
// block is decoded into a typed per-driver struct on demand.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Driver names accepted by the server.
const (
	DriverMem    = "mem"
	DriverFile   = "file"
	DriverLRU    = "lru"
	DriverTiered = "tiered"
	DriverRedis  = "redis"
)

// Config is the top-level server configuration.
type Config struct {
	Listen  string         `yaml:"listen"`
	Driver  string         `yaml:"driver"`
	Options map[string]any `yaml:"options"`
}

// FileOptions configures the file and tiered drivers' storage root.
type FileOptions struct {
	Path string `mapstructure:"path"`
}

// CacheOptions configures the lru and tiered drivers' capacity.
type CacheOptions struct {
	Capacity int `mapstructure:"capacity"`
}

// TieredOptions configures the tiered driver.
type TieredOptions struct {
	Path     string `mapstructure:"path"`
	Capacity int    `mapstructure:"capacity"`
}

// RedisOptions configures the redis driver.
type RedisOptions struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	Prefix   string        `mapstructure:"prefix"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Listen:  ":8080",
		Driver:  DriverLRU,
		Options: map[string]any{},
	}
}

// Load reads and parses the YAML file at path, filling unset fields with
// defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	switch cfg.Driver {
	case DriverMem, DriverFile, DriverLRU, DriverTiered, DriverRedis:
	default:
		return nil, fmt.Errorf("unknown driver %q", cfg.Driver)
	}
	if cfg.Options == nil {
		cfg.Options = map[string]any{}
	}
	return cfg, nil
}

// DecodeOptions decodes the free-form options block into a typed per-driver
// struct. Duration fields accept Go duration strings ("30m", "1h").
func (c *Config) DecodeOptions(v any) error {
	if len(c.Options) == 0 {
		return nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     v,
		DecodeHook: mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(c.Options); err != nil {
		return fmt.Errorf("failed to decode %s driver options: %w", c.Driver, err)
	}
	return nil
}
