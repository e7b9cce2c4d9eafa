package emit

import (
	"errors"
	"fmt"

	"github.com/vtscribe/vtscribe/internal/model"
)

// ResourceError reports that the output file could not be created, written,
// or closed. Generation has no partial-success mode: a ResourceError aborts
// the current file and, since files are processed sequentially, the run.
type ResourceError struct {
	// Op is the failing operation: "create", "write", or "close".
	Op string

	// Path is the output file path.
	Path string

	// Err is the underlying OS error.
	Err error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("output %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *ResourceError) Unwrap() error {
	return e.Err
}

// IsResourceError reports whether err is (or wraps) a ResourceError.
func IsResourceError(err error) bool {
	var re *ResourceError
	return errors.As(err, &re)
}

// UnsupportedCheckError reports a check variant with no registered renderer.
// The check set is a closed sum type, so this signals a contract violation
// between the event source and the emitter (a variant added without a
// renderer), not a data problem. It is not recoverable.
type UnsupportedCheckError struct {
	Check model.Check
}

func (e *UnsupportedCheckError) Error() string {
	return fmt.Sprintf("no renderer for check variant %T", e.Check)
}
