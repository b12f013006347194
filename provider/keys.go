package provider

import (
	"fmt"
	"reflect"
	"strings"
)

// KeySeparator joins the segments of a cache key.
const KeySeparator = "::"

// Key builds a stable cache key from a scope and arguments. Functions, such
// as select criteria, are keyed by address; slices are expanded element by
// element and pointers are followed.
func Key(scope string, args ...any) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, scope)
	for _, arg := range args {
		parts = append(parts, keyPart(reflect.ValueOf(arg)))
	}
	return strings.Join(parts, KeySeparator)
}

func keyPart(v reflect.Value) string {
	if !v.IsValid() {
		return "nil"
	}

	switch v.Kind() {
	case reflect.Func:
		if v.IsNil() {
			return "func:nil"
		}
		return fmt.Sprintf("func:%#x", v.Pointer())
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return "nil"
		}
		return keyPart(v.Elem())
	case reflect.Slice, reflect.Array:
		if v.Kind() == reflect.Slice && v.IsNil() {
			return "[]"
		}
		elems := make([]string, v.Len())
		for i := range elems {
			elems[i] = keyPart(v.Index(i))
		}
		return "[" + strings.Join(elems, ",") + "]"
	}
	return fmt.Sprint(v.Interface())
}
