package provider

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/goliatone/go-standin/pkg/testsupport"
	"github.com/goliatone/go-standin/standin"
)

func TestStore_PutGetRemove(t *testing.T) {
	store := NewStore[string]()

	if _, ok := store.Get("config"); ok {
		t.Error("expected empty store")
	}

	ep := testsupport.NewEndpoint("a", 1)
	store.Put("config", ep)
	if v, ok := store.Get("config"); !ok || v != ep {
		t.Errorf("expected stored endpoint, got %v, %v", v, ok)
	}

	store.Remove("config")
	if _, ok := store.Get("config"); ok {
		t.Error("expected slot to be removed")
	}
}

func TestStore_ProviderFollowsSlot(t *testing.T) {
	store := NewStore[string]()
	store.Put("config", testsupport.NewEndpoint("localhost", 8080))

	cfg := standin.MustNew(store.Provider("config"), nil)

	if v, _ := cfg.Get("port", nil); v != 8080 {
		t.Errorf("expected 8080, got %v", v)
	}

	store.Put("config", testsupport.NewEndpoint("api.example.com", 443))
	if v, _ := cfg.Get("host", nil); v != "api.example.com" {
		t.Errorf("expected reloaded host, got %v", v)
	}
}

func TestStore_ProviderMissingSlot(t *testing.T) {
	store := NewStore[int]()
	cfg := standin.MustNew(store.Provider(7), nil)

	_, err := cfg.Get("host", nil)
	var missing *MissingTargetError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingTargetError, got %v", err)
	}
	if missing.Key != 7 {
		t.Errorf("expected key 7, got %v", missing.Key)
	}
	if err.Error() != "provider: no target stored under 7" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestStore_ConcurrentPuts(t *testing.T) {
	store := NewStore[string]()
	const workers = 16

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("slot-%d", i%4)
			for j := 0; j < 100; j++ {
				store.Put(key, j)
				if _, err := store.Provider(key)(); err != nil {
					t.Errorf("unexpected error: %v", err)
				}
			}
		}(i)
	}
	wg.Wait()

	for i := 0; i < 4; i++ {
		if v, ok := store.Get(fmt.Sprintf("slot-%d", i)); !ok || v != 99 {
			t.Errorf("slot-%d: expected 99, got %v", i, v)
		}
	}
}
