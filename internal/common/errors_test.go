package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidation(t *testing.T) {
	wrapped := fmt.Errorf("create achievement: %w", NewValidationError("title is required"))

	msg, ok := IsValidation(wrapped)
	assert.True(t, ok)
	assert.Equal(t, "title is required", msg)

	_, ok = IsValidation(fmt.Errorf("db: %w", ErrNotFound))
	assert.False(t, ok)
}

func TestSentinelsAreDistinct(t *testing.T) {
	assert.False(t, errors.Is(ErrPhotoNotFound, ErrNotFound))
	assert.True(t, errors.Is(fmt.Errorf("x: %w", ErrPhotoNotFound), ErrPhotoNotFound))
}
