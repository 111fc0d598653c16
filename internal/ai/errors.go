// ABOUTME: Failure taxonomy for the generative provider boundary
// ABOUTME: Transport vs decode failures, checkable via errors.As
package ai

import (
	"errors"
	"fmt"
)

// TransportError means the provider was unreachable or refused the call.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("provider unreachable: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError means the provider answered but the payload did not match the
// declared result shape.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("undecodable provider response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// IsTransport reports whether err is (or wraps) a TransportError.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsDecode reports whether err is (or wraps) a DecodeError.
func IsDecode(err error) bool {
	var de *DecodeError
	return errors.As(err, &de)
}
