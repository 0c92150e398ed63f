package fontparts

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across the package. Wrap or test them with
// errors.Is.
var (
	// ErrReadOnly is returned when mutating or saving an object from a
	// read-only environment.
	ErrReadOnly = errors.New("object is read-only")

	// ErrUnsupported is returned when an environment or object does
	// not support the requested operation.
	ErrUnsupported = errors.New("operation not supported")

	// ErrNoParent is returned when an operation needs a parent object
	// the receiver does not have.
	ErrNoParent = errors.New("object has no parent")

	// ErrNotFound is returned when a named or indexed child does not
	// exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate is returned when a name is already taken.
	ErrDuplicate = errors.New("already exists")
)

// ValidationError reports a rejected attribute value. It wraps the
// normalizer error, so errors.Is(err, normalizers.ErrInvalid) holds.
type ValidationError struct {
	Object string
	Attr   string
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s.%s: %v", e.Object, e.Attr, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// validationError wraps a normalizer error with the object and
// attribute it came from. A nil err passes through.
func validationError(object, attr string, err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Object: object, Attr: attr, Err: err}
}

// CompatibilityError is returned when two objects cannot be
// interpolated. The report lists the fatal differences.
type CompatibilityError struct {
	Report *CompatibilityReport
}

func (e *CompatibilityError) Error() string {
	return "objects are not compatible for interpolation:\n" + e.Report.Report()
}
