package standin

// Interface assertion to ensure StandIn can itself be used as a target.
var _ Object = (*StandIn)(nil)

// StandIn forwards every operation to the target returned by its provider at
// the moment of the call. It holds no reference to any target between calls
// and is immutable after New.
type StandIn struct {
	provider Provider
	handlers handlers
}

// New creates a StandIn bound to the provider. Entries in overrides replace the
// default handler of their kind; a nil or empty table keeps every default.
// The provider is not invoked.
func New(provider Provider, overrides Overrides) (*StandIn, error) {
	if provider == nil {
		return nil, &InvalidProviderError{}
	}

	h, err := overrides.compile()
	if err != nil {
		return nil, err
	}

	return &StandIn{provider: provider, handlers: h}, nil
}

// MustNew is like New but panics when construction fails.
func MustNew(provider Provider, overrides Overrides) *StandIn {
	s, err := New(provider, overrides)
	if err != nil {
		panic(err)
	}
	return s
}

// Resolve invokes the provider once and returns the current target.
func (s *StandIn) Resolve() (any, error) {
	return s.provider()
}

// Apply calls the current target as a function.
func (s *StandIn) Apply(this any, args ...any) (any, error) {
	return s.handlers.apply(s.provider, this, args)
}

// Construct builds a new instance from the current target.
func (s *StandIn) Construct(args ...any) (any, error) {
	return s.handlers.construct(s.provider, args)
}

// DefineProperty defines key on the current target.
func (s *StandIn) DefineProperty(key string, desc Descriptor) (bool, error) {
	return s.handlers.defineProperty(s.provider, key, desc)
}

// DeleteProperty removes key from the current target.
func (s *StandIn) DeleteProperty(key string) (bool, error) {
	return s.handlers.deleteProperty(s.provider, key)
}

// Get reads key from the current target. A nil receiver means the stand-in itself.
func (s *StandIn) Get(key string, receiver any) (any, error) {
	if receiver == nil {
		receiver = s
	}
	return s.handlers.get(s.provider, key, receiver)
}

// GetOwnPropertyDescriptor describes key as it exists on the current target.
func (s *StandIn) GetOwnPropertyDescriptor(key string) (*Descriptor, error) {
	return s.handlers.getOwnPropertyDescriptor(s.provider, key)
}

// GetPrototypeOf returns the prototype linkage of the current target.
func (s *StandIn) GetPrototypeOf() (any, error) {
	return s.handlers.getPrototypeOf(s.provider)
}

// Has reports whether key exists on the current target, inherited members included.
func (s *StandIn) Has(key string) (bool, error) {
	return s.handlers.has(s.provider, key)
}

// IsExtensible reports whether the current target accepts new properties.
func (s *StandIn) IsExtensible() (bool, error) {
	return s.handlers.isExtensible(s.provider)
}

// OwnKeys lists the own property keys of the current target.
func (s *StandIn) OwnKeys() ([]string, error) {
	return s.handlers.ownKeys(s.provider)
}

// PreventExtensions marks the current target as no longer extensible.
func (s *StandIn) PreventExtensions() (bool, error) {
	return s.handlers.preventExtensions(s.provider)
}

// Set writes key on the current target. A nil receiver means the stand-in itself.
func (s *StandIn) Set(key string, value, receiver any) (bool, error) {
	if receiver == nil {
		receiver = s
	}
	return s.handlers.set(s.provider, key, value, receiver)
}

// SetPrototypeOf replaces the prototype linkage of the current target.
func (s *StandIn) SetPrototypeOf(proto any) (bool, error) {
	return s.handlers.setPrototypeOf(s.provider, proto)
}
