package standin

// Kind identifies one of the interceptable operations of a StandIn.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindApply
	KindConstruct
	KindDefineProperty
	KindDeleteProperty
	KindGet
	KindGetOwnPropertyDescriptor
	KindGetPrototypeOf
	KindHas
	KindIsExtensible
	KindOwnKeys
	KindPreventExtensions
	KindSet
	KindSetPrototypeOf

	kindCount = int(KindSetPrototypeOf)
)

var kindNames = [...]string{
	KindUnknown:                  "unknown",
	KindApply:                    "apply",
	KindConstruct:                "construct",
	KindDefineProperty:           "defineProperty",
	KindDeleteProperty:           "deleteProperty",
	KindGet:                      "get",
	KindGetOwnPropertyDescriptor: "getOwnPropertyDescriptor",
	KindGetPrototypeOf:           "getPrototypeOf",
	KindHas:                      "has",
	KindIsExtensible:             "isExtensible",
	KindOwnKeys:                  "ownKeys",
	KindPreventExtensions:        "preventExtensions",
	KindSet:                      "set",
	KindSetPrototypeOf:           "setPrototypeOf",
}

// String returns the operation name, e.g. "getOwnPropertyDescriptor".
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return kindNames[KindUnknown]
}

// Valid reports whether k is one of the recognized operation kinds.
func (k Kind) Valid() bool {
	return k > KindUnknown && int(k) <= kindCount
}

// Kinds returns every recognized kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, kindCount)
	for k := KindApply; int(k) <= kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// ParseKind maps an operation name back to its Kind.
func ParseKind(name string) (Kind, bool) {
	for _, k := range Kinds() {
		if kindNames[k] == name {
			return k, true
		}
	}
	return KindUnknown, false
}
