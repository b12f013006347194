package di

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/edaniels/golog"
	"github.com/goliatone/go-standin/internal/cacheinfra"
	"github.com/goliatone/go-standin/pkg/testsupport"
	"github.com/goliatone/go-standin/provider"
	"github.com/goliatone/go-standin/standin"
	"go.uber.org/zap"
)

func testConfig() provider.Config {
	return provider.Config{
		Capacity:           1000,
		NumShards:          16,
		TTL:                5 * time.Minute,
		EvictionPercentage: 10,
		EarlyRefresh: &provider.EarlyRefreshConfig{
			MinAsyncRefreshTime: 10 * time.Second,
			MaxAsyncRefreshTime: 20 * time.Second,
			SyncRefreshTime:     30 * time.Second,
			RetryBaseDelay:      100 * time.Millisecond,
		},
	}
}

func TestNewContainer(t *testing.T) {
	logger, _ := golog.NewObservedTestLogger(t)
	config := testConfig()

	container, err := NewContainer(config, logger)
	if err != nil {
		t.Fatalf("NewContainer() failed: %v", err)
	}

	if container.CacheService() == nil {
		t.Error("Container should have a non-nil cache service")
	}
	if container.Store() == nil {
		t.Error("Container should have a non-nil store")
	}
	if container.Logger() != logger {
		t.Error("Container should keep the provided logger")
	}

	storedConfig := container.Config()
	if storedConfig.Capacity != config.Capacity {
		t.Errorf("Expected capacity %d, got %d", config.Capacity, storedConfig.Capacity)
	}
	if storedConfig.TTL != config.TTL {
		t.Errorf("Expected TTL %v, got %v", config.TTL, storedConfig.TTL)
	}
}

func TestNewContainerWithDefaults(t *testing.T) {
	container, err := NewContainerWithDefaults()
	if err != nil {
		t.Fatalf("NewContainerWithDefaults() failed: %v", err)
	}
	if container.Logger() == nil {
		t.Error("expected a default logger")
	}
	if container.Config().Capacity != provider.DefaultConfig().Capacity {
		t.Errorf("expected default capacity, got %d", container.Config().Capacity)
	}
}

func TestNewContainer_InvalidConfig(t *testing.T) {
	config := testConfig()
	config.NumShards = 0

	container, err := NewContainer(config, nil)
	if err == nil {
		t.Fatal("expected error for invalid config")
	}
	if container != nil {
		t.Error("expected nil container on error")
	}

	var cfgErr *cacheinfra.ConfigError
	if !errors.As(err, &cfgErr) || cfgErr.Field != "NumShards" {
		t.Errorf("expected NumShards config error, got %v", err)
	}
}

func TestContainerSingletonBehavior(t *testing.T) {
	container, err := NewContainer(testConfig(), nil)
	if err != nil {
		t.Fatalf("NewContainer() failed: %v", err)
	}

	if container.CacheService() != container.CacheService() {
		t.Error("CacheService should return the same instance")
	}
	if container.Store() != container.Store() {
		t.Error("Store should return the same instance")
	}
}

func TestNewStandIn_LogsEveryOperation(t *testing.T) {
	logger, logs := golog.NewObservedTestLogger(t)
	container, _ := NewContainer(testConfig(), logger)

	s, err := container.NewStandIn(func() (any, error) { return map[string]any{"k": "v"}, nil }, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	v, err := s.Get("k", nil)
	if err != nil || v != "v" {
		t.Fatalf("expected v, got %v, %v", v, err)
	}
	s.OwnKeys()

	if logs.FilterField(zap.String("op", "get")).Len() != 1 || logs.FilterField(zap.String("op", "ownKeys")).Len() != 1 {
		t.Errorf("expected one entry per operation, got %d entries", logs.Len())
	}
}

func TestNewStandIn_UserOverridesWin(t *testing.T) {
	logger, logs := golog.NewObservedTestLogger(t)
	container, _ := NewContainer(testConfig(), logger)

	var rec testsupport.Recorder
	s, err := container.NewStandIn(func() (any, error) { return map[string]any{}, nil }, standin.Overrides{
		standin.KindHas: standin.HasHandler(func(target standin.Provider, key string) (bool, error) {
			rec.Record(key)
			return true, nil
		}),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ok, _ := s.Has("anything"); !ok {
		t.Error("expected the override result")
	}
	if rec.Count("anything") != 1 {
		t.Errorf("expected the override to run once, got %v", rec.Entries())
	}
	if logs.Len() != 0 {
		t.Errorf("expected the override to replace logging, got %d entries", logs.Len())
	}
}

func TestNewStandIn_WithoutLogger(t *testing.T) {
	container, _ := NewContainer(testConfig(), nil)

	s, err := container.NewStandIn(func() (any, error) { return []int{1, 2}, nil }, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, _ := s.Get("1", nil); v != 2 {
		t.Errorf("expected 2, got %v", v)
	}
}

func TestNewStandIn_InvalidOverride(t *testing.T) {
	container, _ := NewContainer(testConfig(), nil)

	_, err := container.NewStandIn(func() (any, error) { return nil, nil }, standin.Overrides{standin.KindGet: "nope"})
	var overrideErr *standin.InvalidOverrideError
	if !errors.As(err, &overrideErr) || overrideErr.Kind != standin.KindGet {
		t.Errorf("expected InvalidOverrideError for get, got %v", err)
	}
}

func TestInvalidate(t *testing.T) {
	container, _ := NewContainer(testConfig(), nil)
	ctx := context.Background()

	fetches := 0
	s, err := NewCachedStandIn(ctx, container, "settings", func(ctx context.Context) (map[string]any, error) {
		fetches++
		return map[string]any{"version": fetches}, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s.Get("version", nil)
	s.Get("version", nil)
	if err := container.Invalidate(ctx, "settings"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, _ := s.Get("version", nil); v != 2 {
		t.Errorf("expected version 2 after invalidation, got %v", v)
	}
	if fetches != 2 {
		t.Errorf("expected 2 fetches, got %d", fetches)
	}
}

func TestInvalidate_MultipleKeys(t *testing.T) {
	container, _ := NewContainer(testConfig(), nil)
	ctx := context.Background()

	fetches := map[string]int{}
	standIns := map[string]*standin.StandIn{}
	for _, key := range []string{"flags", "limits", "routes"} {
		key := key
		s, err := NewCachedStandIn(ctx, container, key, func(ctx context.Context) (map[string]any, error) {
			fetches[key]++
			return map[string]any{"version": fetches[key]}, nil
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		s.Get("version", nil)
		standIns[key] = s
	}

	if err := container.Invalidate(ctx, "flags", "routes"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := container.Invalidate(ctx); err != nil {
		t.Errorf("expected no-op for zero keys, got %v", err)
	}

	want := map[string]int{"flags": 2, "limits": 1, "routes": 2}
	for key, s := range standIns {
		if v, _ := s.Get("version", nil); v != want[key] {
			t.Errorf("%s: expected version %d, got %v", key, want[key], v)
		}
	}
}
