package ports

import "context"

// SessionKV is the durable key-value store sessions are persisted to.
// Get reports found=false for a missing key rather than an error.
type SessionKV interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
}
