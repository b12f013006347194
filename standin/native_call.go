package standin

import (
	"fmt"
	"reflect"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// nativeApply calls a Go function. A non-nil this becomes the first argument,
// which is how method expressions such as (*T).Close receive their receiver.
func nativeApply(target any, this any, args []any) (any, error) {
	if obj, ok := target.(Object); ok {
		return obj.Apply(this, args...)
	}
	fn := reflect.ValueOf(target)
	if fn.Kind() != reflect.Func || fn.IsNil() {
		return nil, targetError(KindApply, target, ErrNotCallable)
	}
	if this != nil {
		args = append([]any{this}, args...)
	}
	return call(fn, args)
}

// nativeConstruct accepts constructor functions and reflect.Type values. A
// type yields a pointer to a new instance whose exported fields are filled
// positionally from args.
func nativeConstruct(target any, args []any) (any, error) {
	if obj, ok := target.(Object); ok {
		return obj.Construct(args...)
	}
	if t, ok := target.(reflect.Type); ok {
		return instantiate(t, args)
	}
	fn := reflect.ValueOf(target)
	if fn.Kind() != reflect.Func || fn.IsNil() || valueResults(fn.Type()) == 0 {
		return nil, targetError(KindConstruct, target, ErrNotConstructor)
	}
	return call(fn, args)
}

// nativeGetPrototypeOf reports the dynamic type of the target. Go has no
// prototype chain; the type is where inherited members (methods) come from.
func nativeGetPrototypeOf(target any) (any, error) {
	if obj, ok := target.(Object); ok {
		return obj.GetPrototypeOf()
	}
	if _, err := container(KindGetPrototypeOf, target); err != nil {
		return nil, err
	}
	return reflect.TypeOf(target), nil
}

// nativeSetPrototypeOf succeeds only when proto is already the target's type.
func nativeSetPrototypeOf(target any, proto any) (bool, error) {
	if obj, ok := target.(Object); ok {
		return obj.SetPrototypeOf(proto)
	}
	if _, err := container(KindSetPrototypeOf, target); err != nil {
		return false, err
	}
	t, ok := proto.(reflect.Type)
	return ok && t == reflect.TypeOf(target), nil
}

// nativeIsExtensible is true only for non-nil maps: every other Go value has
// a shape fixed by its type.
func nativeIsExtensible(target any) (bool, error) {
	if obj, ok := target.(Object); ok {
		return obj.IsExtensible()
	}
	v, err := container(KindIsExtensible, target)
	if err != nil {
		return false, err
	}
	return v.Kind() == reflect.Map && !v.IsNil(), nil
}

// nativePreventExtensions cannot seal a map and has nothing to do for
// anything else.
func nativePreventExtensions(target any) (bool, error) {
	if obj, ok := target.(Object); ok {
		return obj.PreventExtensions()
	}
	v, err := container(KindPreventExtensions, target)
	if err != nil {
		return false, err
	}
	return v.Kind() != reflect.Map || v.IsNil(), nil
}

func call(fn reflect.Value, args []any) (any, error) {
	in, err := callArgs(fn.Type(), args)
	if err != nil {
		return nil, err
	}
	return callResults(fn.Type(), fn.Call(in))
}

// callArgs pads missing arguments with zero values and drops surplus ones for
// non-variadic functions.
func callArgs(t reflect.Type, args []any) ([]reflect.Value, error) {
	fixed := t.NumIn()
	if t.IsVariadic() {
		fixed--
	}

	in := make([]reflect.Value, 0, max(fixed, len(args)))
	for i := 0; i < fixed; i++ {
		pt := t.In(i)
		if i >= len(args) || args[i] == nil {
			in = append(in, reflect.Zero(pt))
			continue
		}
		v, ok := assignValue(args[i], pt)
		if !ok {
			return nil, &ArgumentError{Index: i, Want: pt.String(), Got: typeName(args[i])}
		}
		in = append(in, v)
	}

	if t.IsVariadic() {
		et := t.In(fixed).Elem()
		for i := fixed; i < len(args); i++ {
			if args[i] == nil {
				in = append(in, reflect.Zero(et))
				continue
			}
			v, ok := assignValue(args[i], et)
			if !ok {
				return nil, &ArgumentError{Index: i, Want: et.String(), Got: typeName(args[i])}
			}
			in = append(in, v)
		}
	}
	return in, nil
}

// callResults folds a trailing error result into the returned error. The
// remaining results come back as nil, a single value, or a []any.
func callResults(t reflect.Type, out []reflect.Value) (any, error) {
	var err error
	if n := t.NumOut(); n > 0 && t.Out(n-1) == errorType {
		if e := out[n-1]; !e.IsNil() {
			err = e.Interface().(error)
		}
		out = out[:n-1]
	}

	switch len(out) {
	case 0:
		return nil, err
	case 1:
		return out[0].Interface(), err
	}
	values := make([]any, len(out))
	for i, v := range out {
		values[i] = v.Interface()
	}
	return values, err
}

func valueResults(t reflect.Type) int {
	n := t.NumOut()
	if n > 0 && t.Out(n-1) == errorType {
		n--
	}
	return n
}

func instantiate(t reflect.Type, args []any) (any, error) {
	ptr := reflect.New(t)
	v := ptr.Elem()

	if t.Kind() != reflect.Struct {
		switch {
		case len(args) > 1:
			return nil, &ArgumentError{Index: 1, Want: "at most one value for " + t.String(), Got: typeName(args[1])}
		case len(args) == 1 && args[0] != nil:
			val, ok := assignValue(args[0], t)
			if !ok {
				return nil, &ArgumentError{Index: 0, Want: t.String(), Got: typeName(args[0])}
			}
			v.Set(val)
		}
		return ptr.Interface(), nil
	}

	var fields []int
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).IsExported() {
			fields = append(fields, i)
		}
	}
	if len(args) > len(fields) {
		return nil, &ArgumentError{
			Index: len(fields),
			Want:  fmt.Sprintf("at most %d fields of %s", len(fields), t),
			Got:   typeName(args[len(fields)]),
		}
	}
	for i, arg := range args {
		if arg == nil {
			continue
		}
		field := v.Field(fields[i])
		val, ok := assignValue(arg, field.Type())
		if !ok {
			return nil, &ArgumentError{Index: i, Want: field.Type().String(), Got: typeName(arg)}
		}
		field.Set(val)
	}
	return ptr.Interface(), nil
}

func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", v)
}
