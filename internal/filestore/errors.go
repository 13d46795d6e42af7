package filestore

import (
	"errors"
	"fmt"
)

// ErrNotRegular is returned when the path names a directory or device.
var ErrNotRegular = errors.New("not a regular file")

// OpError records a failed load or save and the path involved.
type OpError struct {
	Op   string
	Path string
	Err  error
}

// Error implements the error interface.
func (e *OpError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *OpError) Unwrap() error {
	return e.Err
}
