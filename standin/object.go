package standin

// Descriptor describes a single property of a target.
//
// Plain Go values only ever report data descriptors. Get and Set are honored
// by Object implementations that model accessors.
type Descriptor struct {
	Value        any
	Writable     bool
	Enumerable   bool
	Configurable bool
	Get          func() (any, error)
	Set          func(value any) error
}

// IsAccessor reports whether the descriptor carries a getter or setter.
func (d Descriptor) IsAccessor() bool {
	return d.Get != nil || d.Set != nil
}

// Object is implemented by targets that model every operation themselves.
// Default handlers forward to these methods verbatim instead of inspecting the
// target through reflection. *StandIn implements Object, so stand-ins nest.
type Object interface {
	Apply(this any, args ...any) (any, error)
	Construct(args ...any) (any, error)
	DefineProperty(key string, desc Descriptor) (bool, error)
	DeleteProperty(key string) (bool, error)
	Get(key string, receiver any) (any, error)
	GetOwnPropertyDescriptor(key string) (*Descriptor, error)
	GetPrototypeOf() (any, error)
	Has(key string) (bool, error)
	IsExtensible() (bool, error)
	OwnKeys() ([]string, error)
	PreventExtensions() (bool, error)
	Set(key string, value, receiver any) (bool, error)
	SetPrototypeOf(proto any) (bool, error)
}
