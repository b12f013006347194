package provider

import (
	"github.com/goliatone/go-standin/standin"
	"github.com/puzpuzpuz/xsync/v3"
)

// Store holds named target slots. Swapping the value of a slot is how owners
// publish a reloaded target to every stand-in reading from it.
type Store[K comparable] struct {
	slots *xsync.MapOf[K, any]
}

// NewStore creates an empty Store.
func NewStore[K comparable]() *Store[K] {
	return &Store[K]{slots: xsync.NewMapOf[K, any]()}
}

// Put replaces the target under key.
func (s *Store[K]) Put(key K, target any) {
	s.slots.Store(key, target)
}

// Remove empties the slot. Providers reading it fail until the next Put.
func (s *Store[K]) Remove(key K) {
	s.slots.Delete(key)
}

// Get returns the current target under key.
func (s *Store[K]) Get(key K) (any, bool) {
	return s.slots.Load(key)
}

// Provider returns a provider reading the slot on every call.
func (s *Store[K]) Provider(key K) standin.Provider {
	return func() (any, error) {
		target, ok := s.slots.Load(key)
		if !ok {
			return nil, &MissingTargetError{Key: key}
		}
		return target, nil
	}
}
