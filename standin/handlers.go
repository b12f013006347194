package standin

import (
	"reflect"

	"go.uber.org/multierr"
)

// Provider resolves the current target. It is called once per operation by
// every default handler and never during construction.
type Provider func() (any, error)

// Handler signatures, one per Kind. Every handler receives the provider so an
// override can resolve a fresh target when it needs one.
type (
	ApplyHandler                    func(target Provider, this any, args []any) (any, error)
	ConstructHandler                func(target Provider, args []any) (any, error)
	DefinePropertyHandler           func(target Provider, key string, desc Descriptor) (bool, error)
	DeletePropertyHandler           func(target Provider, key string) (bool, error)
	GetHandler                      func(target Provider, key string, receiver any) (any, error)
	GetOwnPropertyDescriptorHandler func(target Provider, key string) (*Descriptor, error)
	GetPrototypeOfHandler           func(target Provider) (any, error)
	HasHandler                      func(target Provider, key string) (bool, error)
	IsExtensibleHandler             func(target Provider) (bool, error)
	OwnKeysHandler                  func(target Provider) ([]string, error)
	PreventExtensionsHandler        func(target Provider) (bool, error)
	SetHandler                      func(target Provider, key string, value, receiver any) (bool, error)
	SetPrototypeOfHandler           func(target Provider, proto any) (bool, error)
)

var handlerTypes = map[Kind]reflect.Type{
	KindApply:                    reflect.TypeOf(ApplyHandler(nil)),
	KindConstruct:                reflect.TypeOf(ConstructHandler(nil)),
	KindDefineProperty:           reflect.TypeOf(DefinePropertyHandler(nil)),
	KindDeleteProperty:           reflect.TypeOf(DeletePropertyHandler(nil)),
	KindGet:                      reflect.TypeOf(GetHandler(nil)),
	KindGetOwnPropertyDescriptor: reflect.TypeOf(GetOwnPropertyDescriptorHandler(nil)),
	KindGetPrototypeOf:           reflect.TypeOf(GetPrototypeOfHandler(nil)),
	KindHas:                      reflect.TypeOf(HasHandler(nil)),
	KindIsExtensible:             reflect.TypeOf(IsExtensibleHandler(nil)),
	KindOwnKeys:                  reflect.TypeOf(OwnKeysHandler(nil)),
	KindPreventExtensions:        reflect.TypeOf(PreventExtensionsHandler(nil)),
	KindSet:                      reflect.TypeOf(SetHandler(nil)),
	KindSetPrototypeOf:           reflect.TypeOf(SetPrototypeOfHandler(nil)),
}

// Overrides maps operation kinds to replacement handlers. A value may be the
// named handler type for its kind or any function literal with the same
// signature. Kinds absent from the table keep the default handler.
type Overrides map[Kind]any

// Merge returns a new table holding the entries of o overlaid with other.
func (o Overrides) Merge(other Overrides) Overrides {
	merged := make(Overrides, len(o)+len(other))
	for k, h := range o {
		merged[k] = h
	}
	for k, h := range other {
		merged[k] = h
	}
	return merged
}

// handlers is the effective dispatch table of a StandIn.
type handlers struct {
	apply                    ApplyHandler
	construct                ConstructHandler
	defineProperty           DefinePropertyHandler
	deleteProperty           DeletePropertyHandler
	get                      GetHandler
	getOwnPropertyDescriptor GetOwnPropertyDescriptorHandler
	getPrototypeOf           GetPrototypeOfHandler
	has                      HasHandler
	isExtensible             IsExtensibleHandler
	ownKeys                  OwnKeysHandler
	preventExtensions        PreventExtensionsHandler
	set                      SetHandler
	setPrototypeOf           SetPrototypeOfHandler
}

func defaultHandlers() handlers {
	return handlers{
		apply:                    DefaultApply,
		construct:                DefaultConstruct,
		defineProperty:           DefaultDefineProperty,
		deleteProperty:           DefaultDeleteProperty,
		get:                      DefaultGet,
		getOwnPropertyDescriptor: DefaultGetOwnPropertyDescriptor,
		getPrototypeOf:           DefaultGetPrototypeOf,
		has:                      DefaultHas,
		isExtensible:             DefaultIsExtensible,
		ownKeys:                  DefaultOwnKeys,
		preventExtensions:        DefaultPreventExtensions,
		set:                      DefaultSet,
		setPrototypeOf:           DefaultSetPrototypeOf,
	}
}

// compile merges the overrides into the default table. Every rejected entry is
// reported, not only the first one.
func (o Overrides) compile() (handlers, error) {
	h := defaultHandlers()
	var errs error
	for kind, override := range o {
		fn, err := convertOverride(kind, override)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		h.install(kind, fn)
	}
	return h, errs
}

func convertOverride(kind Kind, override any) (reflect.Value, error) {
	want, ok := handlerTypes[kind]
	if !ok {
		return reflect.Value{}, &InvalidOverrideError{Kind: kind, Reason: "unrecognized operation kind"}
	}

	fn := reflect.ValueOf(override)
	if !fn.IsValid() || fn.Kind() != reflect.Func || fn.IsNil() {
		return reflect.Value{}, &InvalidOverrideError{Kind: kind, Reason: "handler must be a non-nil function"}
	}
	if !fn.Type().ConvertibleTo(want) {
		return reflect.Value{}, &InvalidOverrideError{
			Kind:   kind,
			Reason: "handler has signature " + fn.Type().String() + ", want " + want.String(),
		}
	}
	return fn.Convert(want), nil
}

func (h *handlers) install(kind Kind, fn reflect.Value) {
	switch kind {
	case KindApply:
		h.apply = fn.Interface().(ApplyHandler)
	case KindConstruct:
		h.construct = fn.Interface().(ConstructHandler)
	case KindDefineProperty:
		h.defineProperty = fn.Interface().(DefinePropertyHandler)
	case KindDeleteProperty:
		h.deleteProperty = fn.Interface().(DeletePropertyHandler)
	case KindGet:
		h.get = fn.Interface().(GetHandler)
	case KindGetOwnPropertyDescriptor:
		h.getOwnPropertyDescriptor = fn.Interface().(GetOwnPropertyDescriptorHandler)
	case KindGetPrototypeOf:
		h.getPrototypeOf = fn.Interface().(GetPrototypeOfHandler)
	case KindHas:
		h.has = fn.Interface().(HasHandler)
	case KindIsExtensible:
		h.isExtensible = fn.Interface().(IsExtensibleHandler)
	case KindOwnKeys:
		h.ownKeys = fn.Interface().(OwnKeysHandler)
	case KindPreventExtensions:
		h.preventExtensions = fn.Interface().(PreventExtensionsHandler)
	case KindSet:
		h.set = fn.Interface().(SetHandler)
	case KindSetPrototypeOf:
		h.setPrototypeOf = fn.Interface().(SetPrototypeOfHandler)
	}
}
