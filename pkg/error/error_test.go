package error

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDefaultsToInternalError(t *testing.T) {
	e := New("boom")
	assert.Equal(t, http.StatusInternalServerError, e.StatusCode())
	assert.Equal(t, "boom", e.Error())
}

func TestErrorSurvivesWrapping(t *testing.T) {
	wrapped := fmt.Errorf("submit: %w", Errorf(http.StatusTooManyRequests, "queue is full (%d)", 1))
	var e Error
	assert.True(t, errors.As(wrapped, &e))
	assert.Equal(t, http.StatusTooManyRequests, e.StatusCode())
	assert.Equal(t, "queue is full (1)", e.Error())
}
