package provider

import (
	"context"

	"github.com/pkg/errors"
)

// ErrInvalidResultType is returned when a cached value does not have the type
// the caller asked for, which happens when two callers share a key.
var ErrInvalidResultType = errors.New("provider: cached value has unexpected type")

// FetchFn loads a target from its source of truth on a cache miss.
type FetchFn[T any] func(ctx context.Context) (T, error)

// CacheService is the read-through cache behind Cached and CachedRecord.
type CacheService interface {
	GetOrFetch(ctx context.Context, key string, fetch func(ctx context.Context) (any, error)) (any, error)
	Delete(ctx context.Context, key string) error
	DeleteByPrefix(ctx context.Context, prefix string) error
	InvalidateKeys(ctx context.Context, keys []string) error
}

// GetOrFetch is the typed form of CacheService.GetOrFetch.
func GetOrFetch[T any](ctx context.Context, svc CacheService, key string, fetch FetchFn[T]) (T, error) {
	var zero T
	result, err := svc.GetOrFetch(ctx, key, func(ctx context.Context) (any, error) {
		return fetch(ctx)
	})
	if err != nil {
		return zero, err
	}
	if result == nil {
		return zero, nil
	}
	v, ok := result.(T)
	if !ok {
		return zero, errors.Wrapf(ErrInvalidResultType, "key %s holds %T", key, result)
	}
	return v, nil
}
