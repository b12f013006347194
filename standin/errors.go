package standin

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrNotObject is returned when a property operation reaches a target that cannot hold properties.
	ErrNotObject = errors.New("target is not an object")
	// ErrNotCallable is returned by apply when the target is not a function.
	ErrNotCallable = errors.New("target is not callable")
	// ErrNotConstructor is returned by construct when the target cannot build instances.
	ErrNotConstructor = errors.New("target is not a constructor")
)

// InvalidProviderError is returned by New when the target provider cannot be called.
type InvalidProviderError struct{}

// Error implements the error interface.
func (e *InvalidProviderError) Error() string {
	return "standin: target provider must be a non-nil function"
}

// InvalidOverrideError reports an override table entry rejected at construction.
type InvalidOverrideError struct {
	Kind   Kind
	Reason string
}

// Error implements the error interface.
func (e *InvalidOverrideError) Error() string {
	return "standin: invalid override for " + e.Kind.String() + ": " + e.Reason
}

// TargetError is raised by a default handler when the resolved target does not
// support the requested operation.
type TargetError struct {
	Kind Kind
	Type string
	Err  error
}

// Error implements the error interface.
func (e *TargetError) Error() string {
	return fmt.Sprintf("standin: %s on %s: %v", e.Kind, e.Type, e.Err)
}

// Unwrap exposes the sentinel so callers can use errors.Is.
func (e *TargetError) Unwrap() error {
	return e.Err
}

// ArgumentError reports an argument that cannot be passed to the target function
// or assigned to the constructed instance.
type ArgumentError struct {
	Index int
	Want  string
	Got   string
}

// Error implements the error interface.
func (e *ArgumentError) Error() string {
	return fmt.Sprintf("standin: argument %d: cannot use %s as %s", e.Index, e.Got, e.Want)
}

func targetError(kind Kind, target any, err error) error {
	name := "nil"
	if target != nil {
		name = fmt.Sprintf("%T", target)
	}
	return &TargetError{Kind: kind, Type: name, Err: err}
}
