package kvstore

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no value exists for the key
var ErrNotFound = errors.New("key not found")

// Store is the persistence boundary of the application: JSON documents under
// string keys. The typed collection layer in pkg/db sits on top of it, so
// backends only deal in raw bytes.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
