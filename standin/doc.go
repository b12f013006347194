// Package standin provides re-targeting stand-ins: values that resolve their
// target anew for every operation performed on them.
//
// # Overview
//
// A StandIn is bound to a Provider, a zero-argument function returning the
// current target. Each operation on the stand-in (reading a key, writing a key,
// calling it, listing its keys, ...) invokes the provider once and forwards the
// operation, with all of its arguments, to whatever the provider returned. No
// reference to a target survives from one operation to the next, so a stand-in
// handed out once keeps following a target that is swapped, reloaded or rebuilt
// by its owner.
//
// A stand-in is only as fresh as its provider: a caching provider such as
// provider.Cached or provider.CachedRecord serves the same target until its
// entry expires or is invalidated.
//
// # Basic Usage
//
//	store := provider.NewStore[string]()
//	store.Put("config", &Config{Host: "localhost", Port: 8080})
//
//	cfg, err := standin.New(store.Provider("config"), nil)
//	if err != nil {
//		return err
//	}
//
//	host, _ := cfg.Get("host", nil) // "localhost"
//	store.Put("config", &Config{Host: "api.example.com", Port: 443})
//	host, _ = cfg.Get("host", nil) // "api.example.com"
//
// # Operation Kinds
//
// Thirteen operations are recognized, each identified by a Kind:
//
//   - KindApply, KindConstruct: call the target, build an instance from it
//   - KindGet, KindSet, KindHas, KindDeleteProperty: property access
//   - KindDefineProperty, KindGetOwnPropertyDescriptor: property descriptors
//   - KindOwnKeys: own key enumeration
//   - KindGetPrototypeOf, KindSetPrototypeOf: prototype linkage
//   - KindIsExtensible, KindPreventExtensions: extensibility
//
// # Overrides
//
// An Overrides table replaces the default handler for individual kinds. Every
// other kind keeps forwarding. Handlers receive the provider as their first
// argument; an override that wants the current target must call it, and may
// call the exported Default* function of its kind to fall back to the
// forwarding behavior:
//
//	counted := standin.Overrides{
//		standin.KindGet: standin.GetHandler(func(target standin.Provider, key string, receiver any) (any, error) {
//			reads.Add(1)
//			return standin.DefaultGet(target, key, receiver)
//		}),
//	}
//
// Overrides are validated when the stand-in is built. Keys outside the 13
// kinds, nil values, non-functions and functions whose signature does not match
// the kind's handler type make New fail with InvalidOverrideError; all
// offending entries are reported at once.
//
// LoggingOverrides builds handlers that emit one debug entry per operation
// through a golog logger before forwarding.
//
// # Targets
//
// Targets implementing Object receive every operation verbatim. This includes
// *StandIn itself, so stand-ins can be stacked.
//
// Any other Go value is handled through reflection:
//
//   - Maps expose their entries. String and integer keyed maps are supported.
//   - Structs expose exported fields by json tag, field name or snake_case
//     field name. Writes require a pointer target.
//   - Slices and arrays expose their indices.
//   - Methods behave like inherited members: Get returns the bound method and
//     Has reports it, but OwnKeys and GetOwnPropertyDescriptor ignore them.
//   - Functions can be applied; functions and reflect.Type values can be
//     constructed.
//
// Go values have no prototype chain and no extensibility flag, so those kinds
// are narrowed: GetPrototypeOf reports the target's reflect.Type,
// SetPrototypeOf only succeeds for that same type, non-nil maps are the only
// extensible values and PreventExtensions cannot seal a map.
//
// # Error Handling
//
// Errors returned by the provider, by a called function or by an Object target
// are returned unchanged. Panics raised by a called function propagate as well.
// Operations the resolved target cannot support report TargetError wrapping
// ErrNotObject, ErrNotCallable or ErrNotConstructor. Nothing is retried and
// there is no fallback to an earlier target.
//
// # Concurrency
//
// A StandIn is immutable after New. It is safe for concurrent use when its
// provider and targets are. Each operation calls the provider exactly once and
// does not re-resolve the target while the operation runs.
package standin
