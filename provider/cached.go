package provider

import (
	"context"

	"github.com/goliatone/go-standin/standin"
)

// Cached returns a provider that reads key through svc. The stand-in still
// asks on every operation; the cache decides whether that means a fetch.
// Deleting the key from svc makes the next operation see a freshly fetched
// target.
func Cached[T any](ctx context.Context, svc CacheService, key string, fetch FetchFn[T]) standin.Provider {
	return func() (any, error) {
		return GetOrFetch(ctx, svc, key, fetch)
	}
}
