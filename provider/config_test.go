package provider

import (
	"errors"
	"testing"
	"time"

	"github.com/goliatone/go-standin/internal/cacheinfra"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	internal := cacheinfra.DefaultConfig()

	if cfg.Capacity != internal.Capacity || cfg.TTL != internal.TTL || cfg.NumShards != internal.NumShards {
		t.Errorf("expected defaults to mirror the internal config, got %+v", cfg)
	}
	if cfg.EarlyRefresh == nil || cfg.EarlyRefresh.SyncRefreshTime != internal.EarlyRefresh.SyncRefreshTime {
		t.Errorf("expected early refresh defaults, got %+v", cfg.EarlyRefresh)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid defaults, got %v", err)
	}
}

func TestConfig_RoundTrip(t *testing.T) {
	cfg := Config{
		Capacity:           10,
		NumShards:          1,
		TTL:                time.Second,
		EvictionPercentage: 50,
		EarlyRefresh:       &EarlyRefreshConfig{RetryBaseDelay: time.Millisecond},
		EvictionInterval:   time.Minute,
	}

	back := convertFromInternal(cfg.toInternal())
	if back.Capacity != 10 || back.EvictionInterval != time.Minute || back.EarlyRefresh.RetryBaseDelay != time.Millisecond {
		t.Errorf("expected config to survive conversion, got %+v", back)
	}
}

func TestNewCacheService_InvalidConfig(t *testing.T) {
	_, err := NewCacheService(Config{Capacity: 10, NumShards: 1, TTL: time.Second})

	var cfgErr *cacheinfra.ConfigError
	if !errors.As(err, &cfgErr) || cfgErr.Field != "EvictionPercentage" {
		t.Errorf("expected EvictionPercentage config error, got %v", err)
	}
}
