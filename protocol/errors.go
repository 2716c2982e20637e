package protocol

import (
	"errors"
	"fmt"
)

// FramingError indicates that an acknowledgement failed shape or value
// validation for its phase. It is immediately fatal to the transfer.
type FramingError struct {
	// Phase is the handshake phase whose acknowledgement was rejected
	Phase string

	// Ack is the raw acknowledgement data as received
	Ack []byte
}

func (e *FramingError) Error() string {
	return fmt.Sprintf("malformed %s acknowledgement: [% X]", e.Phase, e.Ack)
}

// IsFramingError returns true if the error is, or wraps, a FramingError.
func IsFramingError(err error) bool {
	var fe *FramingError
	return errors.As(err, &fe)
}

// SequenceError indicates that the tag-reported chunk sequence does not
// match the number of chunks delivered so far. It is immediately fatal to
// the transfer.
type SequenceError struct {
	// Want is the expected sequence number (chunks delivered + 1)
	Want uint32

	// Got is the sequence number the tag reported
	Got uint32
}

func (e *SequenceError) Error() string {
	return fmt.Sprintf("chunk sequence mismatch: tag reported %d, expected %d", e.Got, e.Want)
}

// IsSequenceError returns true if the error is, or wraps, a SequenceError.
func IsSequenceError(err error) bool {
	var se *SequenceError
	return errors.As(err, &se)
}
