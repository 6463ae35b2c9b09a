package domain

import "errors"

// ErrKeyNotFound is returned when a key cannot be found in the store.
var ErrKeyNotFound = errors.New("key not found")
