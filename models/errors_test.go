package models

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUsageError(t *testing.T) {
	err := &UsageError{Usage: "like [post_id]"}

	assert.Equal(t, "Usage: like [post_id]", err.Error())
	assert.True(t, errors.Is(err, ErrMalformedArgument))
	assert.True(t, errors.Is(fmt.Errorf("wrapped: %w", err), ErrMalformedArgument))
	assert.False(t, errors.Is(err, ErrPostNotFound))
	assert.NotEqual(t, ErrMalformedArgument.Error(), err.Error())
}
