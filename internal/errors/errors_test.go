package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        *Error
		wantType   ErrorType
		wantStatus int
	}{
		{"validation", ValidationError("bad input"), TypeValidation, http.StatusBadRequest},
		{"not found", NotFoundError("missing"), TypeNotFound, http.StatusNotFound},
		{"internal", InternalError("boom", errors.New("cause")), TypeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.err.Type)
			assert.Equal(t, tt.wantStatus, tt.err.HTTPStatus())
		})
	}
}

func TestError_ErrorString(t *testing.T) {
	err := ValidationError("bad input")
	assert.Equal(t, "validation: bad input", err.Error())

	withCause := InternalError("boom", errors.New("disk full"))
	assert.Equal(t, "internal: boom: disk full", withCause.Error())
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := InternalError("wrapper", cause)

	assert.True(t, errors.Is(err, cause))
}

func TestError_WithContext(t *testing.T) {
	err := ValidationError("bad input").
		WithContext("stream_id", "stream-1").
		WithField("field", "leftVotes")

	assert.Equal(t, "stream-1", err.Context["stream_id"])
	assert.Equal(t, "leftVotes", err.Context["field"])
}

func TestError_ToResponse(t *testing.T) {
	err := NotFoundError("debate not found").WithField("debate_id", "ghost")

	resp := err.ToResponse()
	assert.Equal(t, "debate not found", resp.Error)
	assert.Equal(t, TypeNotFound, resp.Type)
	assert.Equal(t, "ghost", resp.Context["debate_id"])
}

func TestAsStructuredError(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.Nil(t, AsStructuredError(nil))
	})

	t.Run("structured error passes through", func(t *testing.T) {
		original := ValidationError("bad input")
		assert.Same(t, original, AsStructuredError(original))
	})

	t.Run("plain error becomes internal", func(t *testing.T) {
		err := AsStructuredError(errors.New("oops"))
		require.NotNil(t, err)
		assert.Equal(t, TypeInternal, err.Type)
		assert.Equal(t, "internal server error", err.Message)
	})
}
