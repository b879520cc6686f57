package mirror

import "context"

// Source tells where a delivered value came from.
type Source string

const (
	FromCache   Source = "cache"
	FromNetwork Source = "network"
)

// Reader wires the three halves of a cache-then-network read.
type Reader[T any] struct {
	Load  func(ctx context.Context) (T, error)
	Fetch func(ctx context.Context) (T, error)
	Save  func(ctx context.Context, v T) error
}

// CacheThenNetwork delivers the cached value first, if any, then the network
// value, which also refreshes the cache. It fails only when neither source
// produced a value; the network error is returned in that case.
func CacheThenNetwork[T any](ctx context.Context, r Reader[T], emit func(T, Source)) error {
	delivered := false
	if v, err := r.Load(ctx); err == nil {
		emit(v, FromCache)
		delivered = true
	}

	v, err := r.Fetch(ctx)
	if err != nil {
		if delivered {
			return nil
		}
		return err
	}
	emit(v, FromNetwork)
	if r.Save != nil {
		_ = r.Save(ctx, v) // best effort
	}
	return nil
}
