package protocol

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestFramingError(t *testing.T) {
	err := &FramingError{
		Phase: "start",
		Ack:   []byte{0x01, 0x02},
	}

	errMsg := err.Error()

	if !strings.Contains(errMsg, "start") {
		t.Errorf("error message should contain the phase, got: %s", errMsg)
	}
	if !strings.Contains(errMsg, "01 02") {
		t.Errorf("error message should contain the raw ack bytes, got: %s", errMsg)
	}
}

func TestSequenceError(t *testing.T) {
	err := &SequenceError{Want: 1, Got: 5}

	errMsg := err.Error()

	if !strings.Contains(errMsg, "reported 5") {
		t.Errorf("error message should contain reported sequence, got: %s", errMsg)
	}
	if !strings.Contains(errMsg, "expected 1") {
		t.Errorf("error message should contain expected sequence, got: %s", errMsg)
	}
}

func TestIsFramingError(t *testing.T) {
	base := &FramingError{Phase: "size negotiation"}

	if !IsFramingError(base) {
		t.Error("IsFramingError(base) = false")
	}
	if !IsFramingError(fmt.Errorf("phase failed: %w", base)) {
		t.Error("IsFramingError should see through wrapping")
	}
	if IsFramingError(errors.New("other")) {
		t.Error("IsFramingError(other) = true")
	}
	if IsFramingError(&SequenceError{}) {
		t.Error("IsFramingError(*SequenceError) = true")
	}
}

func TestIsSequenceError(t *testing.T) {
	base := &SequenceError{Want: 2, Got: 7}

	if !IsSequenceError(base) {
		t.Error("IsSequenceError(base) = false")
	}
	if !IsSequenceError(fmt.Errorf("transfer: %w", base)) {
		t.Error("IsSequenceError should see through wrapping")
	}
	if IsSequenceError(&FramingError{}) {
		t.Error("IsSequenceError(*FramingError) = true")
	}
}
