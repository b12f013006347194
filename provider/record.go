package provider

import (
	"context"
	"reflect"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-standin/standin"
)

// RecordGetter is the part of repository.Repository a record provider needs.
type RecordGetter[T any] interface {
	GetByID(ctx context.Context, id string, criteria ...repository.SelectCriteria) (T, error)
}

var _ RecordGetter[any] = (repository.Repository[any])(nil)

// Record returns a provider loading the record id from getter on every call.
func Record[T any](ctx context.Context, getter RecordGetter[T], id string, criteria ...repository.SelectCriteria) standin.Provider {
	return func() (any, error) {
		return getter.GetByID(ctx, id, criteria...)
	}
}

// CachedRecord is Record read through svc under RecordKey.
func CachedRecord[T any](ctx context.Context, svc CacheService, getter RecordGetter[T], id string, criteria ...repository.SelectCriteria) standin.Provider {
	return Cached(ctx, svc, RecordKey[T](id, criteria...), func(ctx context.Context) (T, error) {
		return getter.GetByID(ctx, id, criteria...)
	})
}

// RecordKey is the cache key CachedRecord uses. All keys of one record type
// share the prefix RecordKeyPrefix[T]().
func RecordKey[T any](id string, criteria ...repository.SelectCriteria) string {
	return Key(RecordKeyPrefix[T]()+id, criteria)
}

// RecordKeyPrefix is the key prefix of every cached record of type T.
func RecordKeyPrefix[T any]() string {
	return Key("record", reflect.TypeOf((*T)(nil)).Elem().String()) + KeySeparator
}
