package apperr

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	err := fmt.Errorf("joining: %w", New(ErrActivityFull, "activity is full"))

	assert.ErrorIs(t, err, ErrActivityFull)
	assert.Equal(t, ErrActivityFull, KindOf(err))
	assert.Equal(t, http.StatusConflict, HTTPStatus(err))
	assert.Equal(t, "activity is full", Message(err))
}

func TestUnknownErrorsAreInternal(t *testing.T) {
	err := errors.New("boom")

	assert.Equal(t, ErrInternal, KindOf(err))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(err))
	assert.NotContains(t, Message(err), "boom")
}

func TestFromStorage(t *testing.T) {
	t.Run("timeout is transient", func(t *testing.T) {
		err := FromStorage("loading activities", fmt.Errorf("query: %w", context.DeadlineExceeded))
		assert.ErrorIs(t, err, ErrTransient)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Equal(t, http.StatusServiceUnavailable, HTTPStatus(err))
	})

	t.Run("unknown failure is internal", func(t *testing.T) {
		err := FromStorage("loading activities", errors.New("syntax error"))
		assert.ErrorIs(t, err, ErrInternal)
		assert.Equal(t, "the server encountered a problem", Message(err))
	})

	t.Run("kinded errors pass through", func(t *testing.T) {
		orig := NotFound("activity not found")
		assert.Same(t, orig, FromStorage("loading activity", orig))
	})

	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, FromStorage("noop", nil))
	})
}
