package threadlog

import (
	"errors"
	"fmt"
)

// ErrAlreadyRegistered is returned by Setup when another Handle currently
// owns the process-wide sink slot.
var ErrAlreadyRegistered = errors.New("threadlog: a log sink is already registered")

// CreationError reports that a per-goroutine output file could not be opened.
// It is reported to stderr and the record is dropped; the next call from the
// same goroutine retries the open.
type CreationError struct {
	Path       string
	BufferSize int
	Err        error
}

func (e *CreationError) Error() string {
	return fmt.Sprintf("threadlog: log creation failed: path: %s, buffer_size: %d: %v", e.Path, e.BufferSize, e.Err)
}

func (e *CreationError) Unwrap() error { return e.Err }

// EncodingError reports a record whose payload was not valid UTF-8. The record
// is dropped; the sink remains usable.
type EncodingError struct {
	Module string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("threadlog: record from module %q is not valid UTF-8", e.Module)
}
