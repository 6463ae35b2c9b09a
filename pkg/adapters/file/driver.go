package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/aretw0/cellar/pkg/domain"
)

// Driver implements ports.Driver on a filesystem, one file per key under a
// root directory. Any high frequency workload is better served by the
// memory or lru adapters; this one trades speed for durability.
type Driver struct {
	fs   afero.Fs
	root string
}

// Option configures the driver.
type Option func(*Driver)

// WithFs replaces the backing filesystem. Tests use afero.NewMemMapFs().
func WithFs(fs afero.Fs) Option {
	return func(d *Driver) {
		d.fs = fs
	}
}

// New creates a file driver rooted at root, creating the directory if
// needed. If root is empty, it defaults to ".cellar/data".
func New(root string, opts ...Option) (*Driver, error) {
	if root == "" {
		root = filepath.Join(".cellar", "data")
	}

	d := &Driver{
		fs:   afero.NewOsFs(),
		root: root,
	}
	for _, opt := range opts {
		opt(d)
	}

	if err := d.fs.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to ensure data directory: %w", err)
	}
	return d, nil
}

// path validates k and maps it to a file path. Keys are file names, so
// anything that could escape the root directory is rejected.
func (d *Driver) path(k string) (string, error) {
	if k == "" {
		return "", fmt.Errorf("key cannot be empty")
	}
	if strings.ContainsAny(k, `/\`) || k == "." || k == ".." {
		return "", fmt.Errorf("invalid key %q: path separators are not allowed", k)
	}
	return filepath.Join(d.root, k), nil
}

// Get returns the bytes stored under k.
func (d *Driver) Get(ctx context.Context, k string) ([]byte, error) {
	p, err := d.path(k)
	if err != nil {
		return nil, err
	}

	data, err := afero.ReadFile(d.fs, p)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrKeyNotFound
		}
		return nil, fmt.Errorf("failed to read key file: %w", err)
	}
	return data, nil
}

// Set stores v under k atomically: write to a temp file in the same
// directory, fsync, then rename over the destination.
func (d *Driver) Set(ctx context.Context, k string, v []byte) error {
	p, err := d.path(k)
	if err != nil {
		return err
	}

	tmp, err := afero.TempFile(d.fs, d.root, "tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = d.fs.Remove(tmpPath) // no-op once renamed
	}()

	if _, err := tmp.Write(v); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}
	// Close before rename; Windows cannot rename an open file.
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	// On Windows, rename fails if the destination exists. The delete+rename
	// window is acceptable compared to a torn write.
	if _, err := d.fs.Stat(p); err == nil {
		if err := d.fs.Remove(p); err != nil {
			return fmt.Errorf("failed to remove existing key file for overwrite: %w", err)
		}
	}
	if err := d.fs.Rename(tmpPath, p); err != nil {
		return fmt.Errorf("failed to rename temp file into place: %w", err)
	}
	return nil
}

// Del removes k. Deleting a missing key is not an error.
func (d *Driver) Del(ctx context.Context, k string) error {
	p, err := d.path(k)
	if err != nil {
		return err
	}

	if err := d.fs.Remove(p); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove key file: %w", err)
	}
	return nil
}
