package internal

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Run fn the way the public API does, converting a fault into an error.
func recoverFault(fn func()) (err error) {
	defer func() {
		err = HandleTriangulatePanicRecover(recover())
	}()
	fn()
	return nil
}

func TestHandleTriangulatePanicRecover(t *testing.T) {
	t.Run("fault", func(t *testing.T) {
		err := recoverFault(func() {
			fatalWrapf(ErrLocationFailed, "point %v", Point{1, 2})
		})
		require.Error(t, err)
		assert.EqualError(t, err, "point (1, 2): point is not inside the triangulation")
		assert.True(t, errors.Is(err, ErrLocationFailed))
		assert.False(t, errors.Is(err, ErrFinalized))
		assert.Equal(t, ErrLocationFailed, errors.Cause(err))

		var fault *TriangulateError
		assert.True(t, errors.As(err, &fault))
	})

	t.Run("foreign panic", func(t *testing.T) {
		assert.PanicsWithValue(t, "true panic", func() {
			recoverFault(func() { panic("true panic") })
		})
	})

	t.Run("no fault", func(t *testing.T) {
		assert.NoError(t, recoverFault(func() {}))
	})
}
