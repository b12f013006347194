package di

import (
	"context"

	"github.com/edaniels/golog"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-standin/provider"
	"github.com/goliatone/go-standin/standin"
)

// Container wires the shared pieces stand-ins are built from: the target
// cache, a store of named live targets and the logger used for operation
// logging.
type Container struct {
	cacheService provider.CacheService
	store        *provider.Store[string]
	logger       golog.Logger
	config       provider.Config
}

// NewContainer creates a container with the given cache configuration. A nil
// logger disables operation logging.
func NewContainer(config provider.Config, logger golog.Logger) (*Container, error) {
	cacheService, err := provider.NewCacheService(config)
	if err != nil {
		return nil, err
	}

	return &Container{
		cacheService: cacheService,
		store:        provider.NewStore[string](),
		logger:       logger,
		config:       config,
	}, nil
}

// NewContainerWithDefaults creates a container with the default cache
// configuration and a development logger.
func NewContainerWithDefaults() (*Container, error) {
	return NewContainer(provider.DefaultConfig(), golog.NewDevelopmentLogger("standin"))
}

// CacheService returns the shared target cache.
func (c *Container) CacheService() provider.CacheService {
	return c.cacheService
}

// Store returns the shared store of live targets.
func (c *Container) Store() *provider.Store[string] {
	return c.store
}

// Logger returns the logger used for operation logging, possibly nil.
func (c *Container) Logger() golog.Logger {
	return c.logger
}

// Config returns a copy of the cache configuration.
func (c *Container) Config() provider.Config {
	return c.config
}

// NewStandIn builds a stand-in over p. When the container has a logger every
// operation is logged; entries in overrides replace the logging handler of
// their kind.
func (c *Container) NewStandIn(p standin.Provider, overrides standin.Overrides) (*standin.StandIn, error) {
	if c.logger != nil {
		overrides = standin.LoggingOverrides(c.logger).Merge(overrides)
	}
	return standin.New(p, overrides)
}

// Live returns a stand-in following the store slot named key. Publish a new
// target with Store().Put.
func (c *Container) Live(key string, overrides standin.Overrides) (*standin.StandIn, error) {
	return c.NewStandIn(c.store.Provider(key), overrides)
}

// Invalidate drops cached targets so stand-ins reading them refetch.
func (c *Container) Invalidate(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return c.cacheService.InvalidateKeys(ctx, keys)
}

// NewCachedStandIn builds a stand-in reading key through the container cache.
//
// Since Go methods cannot have type parameters, this is provided as a package-level function.
func NewCachedStandIn[T any](ctx context.Context, c *Container, key string, fetch provider.FetchFn[T]) (*standin.StandIn, error) {
	return c.NewStandIn(provider.Cached(ctx, c.cacheService, key, fetch), nil)
}

// NewRecordStandIn builds a stand-in over a repository record, read through
// the container cache.
// Example: NewRecordStandIn[User](ctx, container, userRepository, "user-123")
func NewRecordStandIn[T any](ctx context.Context, c *Container, getter provider.RecordGetter[T], id string, criteria ...repository.SelectCriteria) (*standin.StandIn, error) {
	return c.NewStandIn(provider.CachedRecord(ctx, c.cacheService, getter, id, criteria...), nil)
}

// InvalidateRecords drops every cached record of type T.
func InvalidateRecords[T any](ctx context.Context, c *Container) error {
	return c.cacheService.DeleteByPrefix(ctx, provider.RecordKeyPrefix[T]())
}
