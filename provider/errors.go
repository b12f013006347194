package provider

import "fmt"

// MissingTargetError is returned by a Store provider whose key holds no target.
type MissingTargetError struct {
	Key any
}

// Error implements the error interface.
func (e *MissingTargetError) Error() string {
	return fmt.Sprintf("provider: no target stored under %v", e.Key)
}
