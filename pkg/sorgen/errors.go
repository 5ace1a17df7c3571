package sorgen

import (
	"errors"
	"fmt"
)

// ErrBackendNotFound indicates no backend workbook could be resolved for the
// requested category/module. Not retryable: the file will not appear without
// administrative action.
var ErrBackendNotFound = errors.New("backend workbook not found")

// ErrMissingRequiredSheet indicates a resolved workbook lacks one of the
// required worksheets. Treated like a missing backend: fatal, not retried.
var ErrMissingRequiredSheet = errors.New("required worksheet missing")

// BackendError wraps a workbook-level failure with the file it occurred in.
type BackendError struct {
	Path  string
	Sheet string
	Err   error
}

func (e *BackendError) Error() string {
	if e.Sheet != "" {
		return fmt.Sprintf("backend %q (sheet %q): %v", e.Path, e.Sheet, e.Err)
	}
	return fmt.Sprintf("backend %q: %v", e.Path, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}
