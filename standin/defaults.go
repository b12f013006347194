package standin

// Default handlers. Each one resolves the target exactly once, forwards the
// original arguments unchanged and returns whatever the native operation
// returns. Provider errors are returned as-is.

// DefaultApply calls the current target as a function.
func DefaultApply(target Provider, this any, args []any) (any, error) {
	current, err := target()
	if err != nil {
		return nil, err
	}
	return nativeApply(current, this, args)
}

// DefaultConstruct builds a new instance from the current target.
func DefaultConstruct(target Provider, args []any) (any, error) {
	current, err := target()
	if err != nil {
		return nil, err
	}
	return nativeConstruct(current, args)
}

// DefaultDefineProperty defines key on the current target.
func DefaultDefineProperty(target Provider, key string, desc Descriptor) (bool, error) {
	current, err := target()
	if err != nil {
		return false, err
	}
	return nativeDefineProperty(current, key, desc)
}

// DefaultDeleteProperty removes key from the current target.
func DefaultDeleteProperty(target Provider, key string) (bool, error) {
	current, err := target()
	if err != nil {
		return false, err
	}
	return nativeDeleteProperty(current, key)
}

// DefaultGet reads key from the current target.
func DefaultGet(target Provider, key string, receiver any) (any, error) {
	current, err := target()
	if err != nil {
		return nil, err
	}
	return nativeGet(current, key, receiver)
}

// DefaultGetOwnPropertyDescriptor describes key on the current target.
func DefaultGetOwnPropertyDescriptor(target Provider, key string) (*Descriptor, error) {
	current, err := target()
	if err != nil {
		return nil, err
	}
	return nativeGetOwnPropertyDescriptor(current, key)
}

// DefaultGetPrototypeOf returns the prototype linkage of the current target.
func DefaultGetPrototypeOf(target Provider) (any, error) {
	current, err := target()
	if err != nil {
		return nil, err
	}
	return nativeGetPrototypeOf(current)
}

// DefaultHas reports whether key exists on the current target.
func DefaultHas(target Provider, key string) (bool, error) {
	current, err := target()
	if err != nil {
		return false, err
	}
	return nativeHas(current, key)
}

// DefaultIsExtensible reports whether the current target accepts new properties.
func DefaultIsExtensible(target Provider) (bool, error) {
	current, err := target()
	if err != nil {
		return false, err
	}
	return nativeIsExtensible(current)
}

// DefaultOwnKeys lists the own keys of the current target.
func DefaultOwnKeys(target Provider) ([]string, error) {
	current, err := target()
	if err != nil {
		return nil, err
	}
	return nativeOwnKeys(current)
}

// DefaultPreventExtensions marks the current target as not extensible.
func DefaultPreventExtensions(target Provider) (bool, error) {
	current, err := target()
	if err != nil {
		return false, err
	}
	return nativePreventExtensions(current)
}

// DefaultSet writes key on the current target.
func DefaultSet(target Provider, key string, value, receiver any) (bool, error) {
	current, err := target()
	if err != nil {
		return false, err
	}
	return nativeSet(current, key, value, receiver)
}

// DefaultSetPrototypeOf replaces the prototype linkage of the current target.
func DefaultSetPrototypeOf(target Provider, proto any) (bool, error) {
	current, err := target()
	if err != nil {
		return false, err
	}
	return nativeSetPrototypeOf(current, proto)
}
