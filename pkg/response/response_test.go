package response

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errSample = NewError(http.StatusConflict, "sample conflict")

func TestWithCauseKeepsSentinelIdentity(t *testing.T) {
	cause := errors.New("duplicate key")
	err := WithCause(errSample, cause)

	assert.True(t, errors.Is(err, errSample))
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "sample conflict: duplicate key", err.Error())
	assert.Equal(t, http.StatusConflict, StatusOf(err))
}

func TestWithCauseOnPlainError(t *testing.T) {
	plain := errors.New("plain")
	assert.Same(t, plain, WithCause(plain, errors.New("ignored")))
}

func TestKinds(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		validation bool
		notFound   bool
		upstream   bool
	}{
		{"bad request", NewError(http.StatusBadRequest, "bad"), true, false, false},
		{"not found", NewError(http.StatusNotFound, "missing"), false, true, false},
		{"bad gateway", NewError(http.StatusBadGateway, "llm down"), false, false, true},
		{"untagged", fmt.Errorf("wrapped: %w", errors.New("boom")), false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.validation, IsValidation(tt.err))
			assert.Equal(t, tt.notFound, IsNotFound(tt.err))
			assert.Equal(t, tt.upstream, IsUpstream(tt.err))
		})
	}
}
