package provider

import "github.com/goliatone/go-standin/standin"

// Func adapts a getter that cannot fail.
func Func[T any](get func() T) standin.Provider {
	return func() (any, error) {
		return get(), nil
	}
}

// FuncErr adapts a getter that can fail. Its error is returned unchanged.
func FuncErr[T any](get func() (T, error)) standin.Provider {
	return func() (any, error) {
		v, err := get()
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}
