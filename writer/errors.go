package writer

import (
	"errors"
	"fmt"
)

// ErrAckTimeout indicates that no acknowledgement arrived within the
// configured timeout. Timeouts are retried like transport faults.
var ErrAckTimeout = errors.New("timed out waiting for acknowledgement")

// TransportError wraps a connect, write, or notification failure from the
// underlying link. Transport faults are retried up to the configured number
// of attempts before the transfer fails.
type TransportError struct {
	// Op is the transport operation that failed
	Op string

	// Err is the underlying transport error
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsTransportError returns true if the error is, or wraps, a TransportError.
func IsTransportError(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// CapabilityError indicates that the transport does not expose the
// endpoints the protocol requires (command and image-data channels).
// It is raised before any packet is written.
type CapabilityError struct {
	// Need is the number of required endpoints
	Need int

	// Have is the number of usable endpoints found
	Have int
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("transport missing required endpoints: need %d, found %d", e.Need, e.Have)
}

// IsCapabilityError returns true if the error is, or wraps, a CapabilityError.
func IsCapabilityError(err error) bool {
	var ce *CapabilityError
	return errors.As(err, &ce)
}
