package storage

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by Get when the key is absent or expired.
var ErrNotFound = errors.New("storage: key not found")

// KV is the narrow persistence capability the cart and coupon stores depend on.
// Values are opaque JSON payloads; a zero ttl means no expiry.
//
//go:generate mockgen -source=storage.go -destination=../mock/storage/kv_mock.go -package=mock
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
