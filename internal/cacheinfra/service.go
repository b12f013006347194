package cacheinfra

import (
	"context"
	"strings"

	"github.com/viccon/sturdyc"
)

// FetchFunc loads the value stored under a key on a cache miss.
type FetchFunc = func(ctx context.Context) (any, error)

// Service is a read-through cache of targets backed by sturdyc.
type Service struct {
	client *sturdyc.Client[any]
}

// NewService validates cfg and builds the sturdyc client.
func NewService(cfg Config) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client := sturdyc.New[any](
		cfg.Capacity,
		cfg.NumShards,
		cfg.TTL,
		cfg.EvictionPercentage,
		cfg.ToSturdycOptions()...,
	)
	return &Service{client: client}, nil
}

// GetOrFetch returns the cached value for key, running fetch on a miss.
// Concurrent misses for the same key share one fetch. Errors are not cached.
func (s *Service) GetOrFetch(ctx context.Context, key string, fetch FetchFunc) (any, error) {
	if fetch == nil {
		return nil, &ConfigError{Field: "fetch", Message: "cannot be nil"}
	}
	return s.client.GetOrFetch(ctx, key, sturdyc.FetchFn[any](fetch))
}

// Delete drops a single key so the next GetOrFetch fetches again.
func (s *Service) Delete(ctx context.Context, key string) error {
	s.client.Delete(key)
	return nil
}

// DeleteByPrefix drops every key starting with prefix.
func (s *Service) DeleteByPrefix(ctx context.Context, prefix string) error {
	for _, key := range s.client.ScanKeys() {
		if strings.HasPrefix(key, prefix) {
			s.client.Delete(key)
		}
	}
	return nil
}

// InvalidateKeys drops the given keys.
func (s *Service) InvalidateKeys(ctx context.Context, keys []string) error {
	for _, key := range keys {
		s.client.Delete(key)
	}
	return nil
}
