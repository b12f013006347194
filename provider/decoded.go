package provider

import (
	"github.com/goliatone/go-standin/standin"
	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
)

// Decoded returns a provider that loads a msgpack snapshot and decodes a new
// *T from it on every call. Writes through the stand-in land on that copy and
// are not persisted.
func Decoded[T any](load func() ([]byte, error)) standin.Provider {
	return func() (any, error) {
		data, err := load()
		if err != nil {
			return nil, err
		}
		target := new(T)
		if err := msgpack.Unmarshal(data, target); err != nil {
			return nil, errors.Wrapf(err, "provider: decode %T", target)
		}
		return target, nil
	}
}

// Snapshot encodes a target into the format Decoded reads.
func Snapshot(target any) ([]byte, error) {
	data, err := msgpack.Marshal(target)
	if err != nil {
		return nil, errors.Wrap(err, "provider: encode snapshot")
	}
	return data, nil
}
