package errdefer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClose(t *testing.T) {
	t.Parallel()

	t.Run("nil", func(t *testing.T) {
		t.Parallel()

		var err error
		Close(&err, stubCloser{})
		assert.NoError(t, err)
	})

	t.Run("non-nil", func(t *testing.T) {
		t.Parallel()

		give := errors.New("sadness")

		var err error
		Close(&err, stubCloser{err: give})
		assert.ErrorIs(t, err, give)
	})
}

func TestDo(t *testing.T) {
	t.Parallel()

	t.Run("keeps earlier error", func(t *testing.T) {
		t.Parallel()

		first := errors.New("first")
		second := errors.New("second")

		err := first
		Do(&err, func() error { return second })
		assert.ErrorIs(t, err, first)
		assert.ErrorIs(t, err, second)
	})

	t.Run("no errors", func(t *testing.T) {
		t.Parallel()

		var (
			err    error
			called bool
		)
		Do(&err, func() error {
			called = true
			return nil
		})
		assert.NoError(t, err)
		assert.True(t, called)
	})
}

type stubCloser struct {
	err error
}

func (s stubCloser) Close() error {
	return s.err
}
