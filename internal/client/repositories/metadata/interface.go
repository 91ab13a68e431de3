// Package metadata is a small key/value table in the local session
// database. The session store keeps its token and cached profile here.
package metadata

import (
	"context"
)

// Repository reads and writes metadata entries. A missing key reads as
// (nil, nil).
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	GetMany(ctx context.Context, keys ...string) (map[string][]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
}
