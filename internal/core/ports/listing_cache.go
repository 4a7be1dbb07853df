package ports

import "context"

// ListingCache caches the serialised listing collection between reads.
// Implementations must treat a cache miss as (nil, nil), not an error.
type ListingCache interface {
	Get(ctx context.Context) ([]byte, error)
	Set(ctx context.Context, payload []byte) error
	Invalidate(ctx context.Context) error
}
