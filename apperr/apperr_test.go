package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrappersMatchSentinels(t *testing.T) {
	assert.ErrorIs(t, Validation("bad input %d", 7), ErrValidation)
	assert.ErrorIs(t, NotFound("order missing"), ErrNotFound)
	assert.ErrorIs(t, Unauthorized("no token"), ErrUnauthorized)

	assert.EqualError(t, Validation("bad input %d", 7), "validation failed: bad input 7")
}

func TestStatusCode(t *testing.T) {
	assert.Equal(t, 400, StatusCode(Validation("x")))
	assert.Equal(t, 404, StatusCode(NotFound("x")))
	assert.Equal(t, 401, StatusCode(Unauthorized("x")))
	assert.Equal(t, 500, StatusCode(errors.New("disk on fire")))

	wrapped := fmt.Errorf("loading order: %w", NotFound("x"))
	assert.Equal(t, 404, StatusCode(wrapped))
}
