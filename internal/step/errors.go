package step

import (
	"errors"
	"fmt"
)

// Input errors reported before any step is generated.
var (
	// ErrEmptyInput indicates an empty array or an input with no usable values.
	ErrEmptyInput = errors.New("step: input array is empty")

	// ErrInputTooLong indicates an array longer than the configured maximum.
	ErrInputTooLong = errors.New("step: input array exceeds maximum length")

	// ErrSizeOutOfRange indicates a requested generation size outside bounds.
	ErrSizeOutOfRange = errors.New("step: requested array size out of range")

	// ErrUnsortedInput indicates binary search input that is not non-decreasing.
	ErrUnsortedInput = errors.New("step: binary search requires a sorted array")
)

// ValidationError reports rejected input. It is surfaced to the user as a
// message and never aborts the process.
type ValidationError struct {
	Field   string
	Reason  string
	Wrapped error
}

func (e *ValidationError) Error() string {
	if e.Reason == "" && e.Wrapped != nil {
		return fmt.Sprintf("invalid %s: %v", e.Field, e.Wrapped)
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return e.Wrapped }

// PreconditionWarning is a non-fatal advisory, e.g. an unsorted array that
// was sorted before running binary search.
type PreconditionWarning struct {
	Message string
}

func (w *PreconditionWarning) Error() string { return w.Message }

func (w *PreconditionWarning) Unwrap() error { return ErrUnsortedInput }
