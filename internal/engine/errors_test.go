package engine

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEngineError_Format(t *testing.T) {
	err := NewEngineError(ErrCodeNetworkError, "failed to fetch URL", io.ErrUnexpectedEOF)
	assert.Equal(t, "NETWORK_ERROR: failed to fetch URL: unexpected EOF", err.Error())

	bare := NewEngineError(ErrCodeValidation, "empty URL", nil)
	assert.Equal(t, "VALIDATION: empty URL", bare.Error())
}

func TestEngineError_Is(t *testing.T) {
	err := fmt.Errorf("check: %w", NewEngineError(ErrCodeNetworkError, "dial", io.EOF))

	assert.True(t, errors.Is(err, ErrNetworkError))
	assert.True(t, errors.Is(err, io.EOF))
	assert.True(t, errors.Is(err, &EngineError{Code: ErrCodeNetworkError}))
	assert.False(t, errors.Is(err, ErrInvalidURL))
	assert.True(t, IsNetworkError(err))
	assert.False(t, IsNetworkError(NewEngineError(ErrCodeValidation, "bad", nil)))
}

func TestEngineError_WithDetail(t *testing.T) {
	err := NewEngineError(ErrCodeNetworkError, "dial", nil).WithDetail("proxy", "http://p:1")
	assert.Equal(t, "http://p:1", err.Details["proxy"])
}
