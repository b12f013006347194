package testsupport

import (
	"strconv"
	"sync"
)

// Endpoint is a small config-like target shared by package tests.
type Endpoint struct {
	Host       string `json:"host"`
	Port       int    `json:"port"`
	MaxRetries int
	secret     string
}

// NewEndpoint returns an Endpoint pointer, the usual writable target shape.
func NewEndpoint(host string, port int) *Endpoint {
	return &Endpoint{Host: host, Port: port, secret: host}
}

// Address is a method used to exercise inherited member lookup.
func (e *Endpoint) Address() string {
	return e.Host + ":" + strconv.Itoa(e.Port)
}

// Sequence hands out targets in order and counts how often it was asked.
// Once the targets run out it keeps returning the last one.
type Sequence struct {
	mu      sync.Mutex
	targets []any
	calls   int
}

// NewSequence creates a Sequence over the given targets.
func NewSequence(targets ...any) *Sequence {
	return &Sequence{targets: targets}
}

// Provider returns a target provider reading from the sequence.
func (s *Sequence) Provider() func() (any, error) {
	return func() (any, error) {
		s.mu.Lock()
		defer s.mu.Unlock()
		i := s.calls
		s.calls++
		if len(s.targets) == 0 {
			return nil, nil
		}
		if i >= len(s.targets) {
			i = len(s.targets) - 1
		}
		return s.targets[i], nil
	}
}

// Push appends a target, simulating an external reload.
func (s *Sequence) Push(target any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.targets = append(s.targets, target)
}

// Calls returns how many times the provider ran.
func (s *Sequence) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// Failing returns a provider that always fails with err, plus a counter of
// its invocations.
func Failing(err error) (func() (any, error), func() int) {
	var mu sync.Mutex
	calls := 0
	provider := func() (any, error) {
		mu.Lock()
		defer mu.Unlock()
		calls++
		return nil, err
	}
	count := func() int {
		mu.Lock()
		defer mu.Unlock()
		return calls
	}
	return provider, count
}

// Recorder collects named events from overrides and fakes.
type Recorder struct {
	mu      sync.Mutex
	entries []string
}

// Record appends an entry.
func (r *Recorder) Record(entry string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
}

// Entries returns a copy of the recorded entries.
func (r *Recorder) Entries() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.entries...)
}

// Count returns how many times entry was recorded.
func (r *Recorder) Count(entry string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.entries {
		if e == entry {
			n++
		}
	}
	return n
}

// Reset clears the recorded entries.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = nil
}
