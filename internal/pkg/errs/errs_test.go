//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"github.com/ranjayd-harvard/venue-management-system-sub003/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestMark(t *testing.T) {
	sentinel := errs.New("sentinel")

	t.Run("marked errors match the sentinel through Is", func(t *testing.T) {
		cause := errors.New("underlying cause")
		marked := errs.Mark(cause, sentinel)

		assert.True(t, errs.Is(marked, sentinel))
		assert.True(t, errs.Is(marked, cause), "the original cause stays matchable")
	})

	t.Run("marks survive further wrapping", func(t *testing.T) {
		wrapped := errs.Wrap(errs.Mark(errors.New("cause"), sentinel), "context")

		assert.True(t, errs.Is(wrapped, sentinel))
	})

	t.Run("marking nil returns the sentinel itself", func(t *testing.T) {
		assert.Equal(t, sentinel, errs.Mark(nil, sentinel))
	})

	t.Run("unrelated errors do not match", func(t *testing.T) {
		assert.False(t, errs.Is(errors.New("other"), sentinel))
	})
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, errs.Wrap(nil, "ignored"))
}
