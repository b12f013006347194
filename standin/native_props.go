package standin

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Property operations on plain Go values.
//
// Maps expose their entries, structs their exported fields (matched by json
// tag, field name or snake_case field name), slices and arrays their indices.
// Methods play the role of inherited members: Get and Has see them, OwnKeys
// and GetOwnPropertyDescriptor do not. Targets implementing Object bypass all
// of this.

// container unwraps pointers and interfaces down to the value holding the
// properties. Scalars, strings, channels and nil are not objects.
func container(kind Kind, target any) (reflect.Value, error) {
	v := reflect.ValueOf(target)
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}, targetError(kind, target, ErrNotObject)
		}
		v = v.Elem()
	}
	if !v.IsValid() {
		return reflect.Value{}, targetError(kind, target, ErrNotObject)
	}

	switch v.Kind() {
	case reflect.Map, reflect.Struct, reflect.Slice, reflect.Array, reflect.Func:
		return v, nil
	}
	return reflect.Value{}, targetError(kind, target, ErrNotObject)
}

func nativeGet(target any, key string, receiver any) (any, error) {
	if obj, ok := target.(Object); ok {
		return obj.Get(key, receiver)
	}
	v, err := container(KindGet, target)
	if err != nil {
		return nil, err
	}
	if prop, ok := ownProperty(v, key); ok {
		return prop.Interface(), nil
	}
	if m, ok := method(target, key); ok {
		return m.Interface(), nil
	}
	return nil, nil
}

func nativeSet(target any, key string, value, receiver any) (bool, error) {
	if obj, ok := target.(Object); ok {
		return obj.Set(key, value, receiver)
	}
	v, err := container(KindSet, target)
	if err != nil {
		return false, err
	}
	return write(v, key, value), nil
}

func nativeHas(target any, key string) (bool, error) {
	if obj, ok := target.(Object); ok {
		return obj.Has(key)
	}
	v, err := container(KindHas, target)
	if err != nil {
		return false, err
	}
	if _, ok := ownProperty(v, key); ok {
		return true, nil
	}
	_, ok := method(target, key)
	return ok, nil
}

func nativeDeleteProperty(target any, key string) (bool, error) {
	if obj, ok := target.(Object); ok {
		return obj.DeleteProperty(key)
	}
	v, err := container(KindDeleteProperty, target)
	if err != nil {
		return false, err
	}

	if v.Kind() == reflect.Map {
		if v.IsNil() {
			return true, nil
		}
		if k, ok := mapKey(v, key); ok {
			v.SetMapIndex(k, reflect.Value{})
		}
		return true, nil
	}

	// fields and elements are part of the type and cannot be removed
	_, exists := ownProperty(v, key)
	return !exists, nil
}

func nativeDefineProperty(target any, key string, desc Descriptor) (bool, error) {
	if obj, ok := target.(Object); ok {
		return obj.DefineProperty(key, desc)
	}
	v, err := container(KindDefineProperty, target)
	if err != nil {
		return false, err
	}
	if desc.IsAccessor() {
		return false, nil
	}
	return write(v, key, desc.Value), nil
}

func nativeGetOwnPropertyDescriptor(target any, key string) (*Descriptor, error) {
	if obj, ok := target.(Object); ok {
		return obj.GetOwnPropertyDescriptor(key)
	}
	v, err := container(KindGetOwnPropertyDescriptor, target)
	if err != nil {
		return nil, err
	}

	prop, ok := ownProperty(v, key)
	if !ok {
		return nil, nil
	}
	if v.Kind() == reflect.Map {
		return &Descriptor{Value: prop.Interface(), Writable: true, Enumerable: true, Configurable: true}, nil
	}
	return &Descriptor{Value: prop.Interface(), Writable: prop.CanSet(), Enumerable: true}, nil
}

func nativeOwnKeys(target any) ([]string, error) {
	if obj, ok := target.(Object); ok {
		return obj.OwnKeys()
	}
	v, err := container(KindOwnKeys, target)
	if err != nil {
		return nil, err
	}

	keys := []string{}
	seen := make(map[string]bool)
	add := func(key string) {
		// two fields or two interface keys can share a name; only the
		// first one is reachable
		if !seen[key] {
			seen[key] = true
			keys = append(keys, key)
		}
	}

	switch v.Kind() {
	case reflect.Map:
		for _, k := range v.MapKeys() {
			add(formatKey(k))
		}
		sortKeys(keys)
	case reflect.Struct:
		for _, f := range exportedFields(v.Type()) {
			add(keyName(f))
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			add(strconv.Itoa(i))
		}
	}
	return keys, nil
}

// ownProperty finds the entry, field or element named by key.
func ownProperty(v reflect.Value, key string) (reflect.Value, bool) {
	switch v.Kind() {
	case reflect.Map:
		if v.IsNil() {
			return reflect.Value{}, false
		}
		k, ok := mapKey(v, key)
		if !ok {
			return reflect.Value{}, false
		}
		entry := v.MapIndex(k)
		return entry, entry.IsValid()
	case reflect.Struct:
		return lookupField(v, key)
	case reflect.Slice, reflect.Array:
		i, ok := elementIndex(v, key)
		if !ok {
			return reflect.Value{}, false
		}
		return v.Index(i), true
	}
	return reflect.Value{}, false
}

// write stores value under key. It refuses rather than fails: a missing
// field, an unaddressable struct, a nil map or an incompatible value all
// report false.
func write(v reflect.Value, key string, value any) bool {
	if v.Kind() == reflect.Map {
		if v.IsNil() {
			return false
		}
		k, ok := mapKey(v, key)
		if !ok {
			return false
		}
		val, ok := assignValue(value, v.Type().Elem())
		if !ok {
			return false
		}
		v.SetMapIndex(k, val)
		return true
	}

	prop, ok := ownProperty(v, key)
	if !ok || !prop.CanSet() {
		return false
	}
	val, ok := assignValue(value, prop.Type())
	if !ok {
		return false
	}
	prop.Set(val)
	return true
}

// mapKey converts key to a key of map m. Interface keyed maps prefer an
// existing string entry, then any existing key formatting to the same text,
// then a new string key.
func mapKey(m reflect.Value, key string) (reflect.Value, bool) {
	kt := m.Type().Key()
	switch kt.Kind() {
	case reflect.String:
		return reflect.ValueOf(key).Convert(kt), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(key, 10, kt.Bits())
		if err != nil {
			return reflect.Value{}, false
		}
		return reflect.ValueOf(n).Convert(kt), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(key, 10, kt.Bits())
		if err != nil {
			return reflect.Value{}, false
		}
		return reflect.ValueOf(n).Convert(kt), true
	case reflect.Interface:
		k := reflect.ValueOf(key)
		assignable := k.Type().AssignableTo(kt)
		if assignable && m.MapIndex(k).IsValid() {
			return k, true
		}
		for _, existing := range m.MapKeys() {
			if formatKey(existing) == key {
				return existing, true
			}
		}
		if assignable {
			return k, true
		}
	}
	return reflect.Value{}, false
}

func formatKey(k reflect.Value) string {
	if k.Kind() == reflect.Interface && !k.IsNil() {
		k = k.Elem()
	}
	switch k.Kind() {
	case reflect.String:
		return k.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(k.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(k.Uint(), 10)
	}
	return fmt.Sprint(k.Interface())
}

// sortKeys orders integer-like keys numerically ahead of all other keys,
// which follow in lexical order.
func sortKeys(keys []string) {
	sort.Slice(keys, func(i, j int) bool {
		a, aIdx := arrayIndex(keys[i])
		b, bIdx := arrayIndex(keys[j])
		switch {
		case aIdx && bIdx:
			return a < b
		case aIdx != bIdx:
			return aIdx
		}
		return keys[i] < keys[j]
	})
}

func arrayIndex(key string) (uint64, bool) {
	n, err := strconv.ParseUint(key, 10, 64)
	if err != nil || strconv.FormatUint(n, 10) != key {
		return 0, false
	}
	return n, true
}

func elementIndex(v reflect.Value, key string) (int, bool) {
	n, ok := arrayIndex(key)
	if !ok || n >= uint64(v.Len()) {
		return 0, false
	}
	return int(n), true
}

func exportedFields(t reflect.Type) []reflect.StructField {
	var fields []reflect.StructField
	for _, f := range reflect.VisibleFields(t) {
		if f.IsExported() {
			fields = append(fields, f)
		}
	}
	return fields
}

// keyName is the key a field is listed under: its json name when tagged.
func keyName(f reflect.StructField) string {
	if tag := f.Tag.Get("json"); tag != "" {
		name, _, _ := strings.Cut(tag, ",")
		if name != "" && name != "-" {
			return name
		}
	}
	return f.Name
}

func lookupField(v reflect.Value, key string) (reflect.Value, bool) {
	fields := exportedFields(v.Type())
	matchers := []func(reflect.StructField) bool{
		func(f reflect.StructField) bool { return keyName(f) == key },
		func(f reflect.StructField) bool { return f.Name == key },
		func(f reflect.StructField) bool { return snakeCase(f.Name) == key },
	}
	for _, match := range matchers {
		for _, f := range fields {
			if !match(f) {
				continue
			}
			fv, err := v.FieldByIndexErr(f.Index)
			if err != nil {
				// promoted through a nil embedded pointer
				return reflect.Value{}, false
			}
			return fv, true
		}
	}
	return reflect.Value{}, false
}

func method(target any, key string) (reflect.Value, bool) {
	v := reflect.ValueOf(target)
	if !v.IsValid() || key == "" {
		return reflect.Value{}, false
	}
	if m := v.MethodByName(key); m.IsValid() {
		return m, true
	}
	r, size := utf8.DecodeRuneInString(key)
	if m := v.MethodByName(string(unicode.ToUpper(r)) + key[size:]); m.IsValid() {
		return m, true
	}
	return reflect.Value{}, false
}

// assignValue adapts value to t. Numeric values convert between numeric
// kinds when the value survives the conversion; named types convert from
// their underlying kind.
func assignValue(value any, t reflect.Type) (reflect.Value, bool) {
	if value == nil {
		switch t.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			return reflect.Zero(t), true
		}
		return reflect.Value{}, false
	}

	v := reflect.ValueOf(value)
	switch {
	case v.Type().AssignableTo(t):
		return v, true
	case isNumeric(v.Kind()) && isNumeric(t.Kind()):
		return convertNumber(v, t)
	case v.Kind() == t.Kind() && v.Type().ConvertibleTo(t):
		return v.Convert(t), true
	}
	return reflect.Value{}, false
}

// convertNumber refuses conversions that overflow t, drop a fractional part,
// change sign or lose integer precision.
func convertNumber(v reflect.Value, t reflect.Type) (reflect.Value, bool) {
	out := reflect.New(t).Elem()

	switch {
	case isSigned(t.Kind()):
		var n int64
		switch {
		case isSigned(v.Kind()):
			n = v.Int()
		case isUnsigned(v.Kind()):
			if v.Uint() > math.MaxInt64 {
				return reflect.Value{}, false
			}
			n = int64(v.Uint())
		default:
			f := v.Float()
			if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
				return reflect.Value{}, false
			}
			n = int64(f)
		}
		if out.OverflowInt(n) {
			return reflect.Value{}, false
		}
		out.SetInt(n)

	case isUnsigned(t.Kind()):
		var u uint64
		switch {
		case isSigned(v.Kind()):
			if v.Int() < 0 {
				return reflect.Value{}, false
			}
			u = uint64(v.Int())
		case isUnsigned(v.Kind()):
			u = v.Uint()
		default:
			f := v.Float()
			if f != math.Trunc(f) || f < 0 || f >= math.MaxUint64 {
				return reflect.Value{}, false
			}
			u = uint64(f)
		}
		if out.OverflowUint(u) {
			return reflect.Value{}, false
		}
		out.SetUint(u)

	default:
		var f float64
		switch {
		case isSigned(v.Kind()):
			n := v.Int()
			f = float64(n)
			if f >= math.MaxInt64 || int64(f) != n {
				return reflect.Value{}, false
			}
		case isUnsigned(v.Kind()):
			u := v.Uint()
			f = float64(u)
			if f >= math.MaxUint64 || uint64(f) != u {
				return reflect.Value{}, false
			}
		default:
			f = v.Float()
		}
		if out.OverflowFloat(f) {
			return reflect.Value{}, false
		}
		if t.Kind() == reflect.Float32 && !isFloat(v.Kind()) && float64(float32(f)) != f {
			return reflect.Value{}, false
		}
		out.SetFloat(f)
	}
	return out, true
}

func isSigned(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUnsigned(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

func isFloat(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
