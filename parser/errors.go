package parser

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrNotImplemented marks event layouts that are not known yet. Callers get
// it wrapped with the event name, never a default record.
var ErrNotImplemented = errors.New("event parser not implemented")

// MalformedEventError reports an event payload shorter than the positions
// the mapper reads.
type MalformedEventError struct {
	Event    string
	Expected int
	Actual   int
}

func (e *MalformedEventError) Error() string {
	return fmt.Sprintf("malformed %s event: expected at least %d fields, got %d", e.Event, e.Expected, e.Actual)
}

func checkLength(event string, fields []string, min int) error {
	if len(fields) < min {
		return &MalformedEventError{Event: event, Expected: min, Actual: len(fields)}
	}
	return nil
}
