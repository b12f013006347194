package standin

import (
	"github.com/edaniels/golog"
	"github.com/google/uuid"
)

// LoggingOverrides returns handlers that write one debug entry per operation
// and then run the default handler. With no kinds given every kind is covered.
// Merge the result with other overrides to log only some operations or to
// combine logging with custom behavior.
func LoggingOverrides(logger golog.Logger, kinds ...Kind) Overrides {
	if len(kinds) == 0 {
		kinds = Kinds()
	}
	overrides := make(Overrides, len(kinds))
	for _, kind := range kinds {
		if h := loggedHandler(logger, kind); h != nil {
			overrides[kind] = h
		}
	}
	return overrides
}

func loggedHandler(logger golog.Logger, kind Kind) any {
	log := func(fields ...any) {
		fields = append([]any{"op", kind.String(), "trace_id", uuid.NewString()}, fields...)
		logger.Debugw("standin operation", fields...)
	}

	switch kind {
	case KindApply:
		return ApplyHandler(func(target Provider, this any, args []any) (any, error) {
			log("args", len(args))
			return DefaultApply(target, this, args)
		})
	case KindConstruct:
		return ConstructHandler(func(target Provider, args []any) (any, error) {
			log("args", len(args))
			return DefaultConstruct(target, args)
		})
	case KindDefineProperty:
		return DefinePropertyHandler(func(target Provider, key string, desc Descriptor) (bool, error) {
			log("key", key)
			return DefaultDefineProperty(target, key, desc)
		})
	case KindDeleteProperty:
		return DeletePropertyHandler(func(target Provider, key string) (bool, error) {
			log("key", key)
			return DefaultDeleteProperty(target, key)
		})
	case KindGet:
		return GetHandler(func(target Provider, key string, receiver any) (any, error) {
			log("key", key)
			return DefaultGet(target, key, receiver)
		})
	case KindGetOwnPropertyDescriptor:
		return GetOwnPropertyDescriptorHandler(func(target Provider, key string) (*Descriptor, error) {
			log("key", key)
			return DefaultGetOwnPropertyDescriptor(target, key)
		})
	case KindGetPrototypeOf:
		return GetPrototypeOfHandler(func(target Provider) (any, error) {
			log()
			return DefaultGetPrototypeOf(target)
		})
	case KindHas:
		return HasHandler(func(target Provider, key string) (bool, error) {
			log("key", key)
			return DefaultHas(target, key)
		})
	case KindIsExtensible:
		return IsExtensibleHandler(func(target Provider) (bool, error) {
			log()
			return DefaultIsExtensible(target)
		})
	case KindOwnKeys:
		return OwnKeysHandler(func(target Provider) ([]string, error) {
			log()
			return DefaultOwnKeys(target)
		})
	case KindPreventExtensions:
		return PreventExtensionsHandler(func(target Provider) (bool, error) {
			log()
			return DefaultPreventExtensions(target)
		})
	case KindSet:
		return SetHandler(func(target Provider, key string, value, receiver any) (bool, error) {
			log("key", key)
			return DefaultSet(target, key, value, receiver)
		})
	case KindSetPrototypeOf:
		return SetPrototypeOfHandler(func(target Provider, proto any) (bool, error) {
			log()
			return DefaultSetPrototypeOf(target, proto)
		})
	}
	return nil
}
