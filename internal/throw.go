package internal

import "github.com/pkg/errors"

// Threading errors up and down the recursive mesh surgery would add a lot of
// noise for conditions that are invariant violations anyway. Instead, we panic
// with a *TriangulateError, and the public API recovers to convert to an error.

var (
	ErrDegenerateInput = errors.New("point set has no extent")
	ErrLocationFailed  = errors.New("point is not inside the triangulation")
	ErrFinalized       = errors.New("triangulation is already finalized")
	ErrCorruptMesh     = errors.New("mesh invariant violated")
)

type TriangulateError struct {
	cause error
}

func (e *TriangulateError) Error() string { return e.cause.Error() }
func (e *TriangulateError) Cause() error  { return e.cause }
func (e *TriangulateError) Unwrap() error { return e.cause }

// Panic with a TriangulateError wrapping one of the sentinel errors above.
func fatalWrapf(err error, format string, args ...interface{}) {
	panic(&TriangulateError{errors.Wrapf(err, format, args...)})
}

// Convert a recovered TriangulateError back into an error. Any other panic
// (index out of range on a bad handle, nil dereference) is a programming error
// and is re-raised.
func HandleTriangulatePanicRecover(r interface{}) error {
	if r != nil {
		if triangulateError, ok := r.(*TriangulateError); ok {
			return triangulateError
		}
		panic(r)
	}
	return nil
}
