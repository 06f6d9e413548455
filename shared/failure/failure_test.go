package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"frontdesk/shared/failure"
)

func TestFailureCodes(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "bad request", err: failure.BadRequestFromString("check-out date must be after check-in date"), wantCode: http.StatusBadRequest},
		{name: "unauthorized", err: failure.Unauthorized("missing authorization header"), wantCode: http.StatusUnauthorized},
		{name: "forbidden", err: failure.Forbidden("forbidden"), wantCode: http.StatusForbidden},
		{name: "not found", err: failure.NotFound("booking not found"), wantCode: http.StatusNotFound},
		{name: "conflict", err: failure.Conflict("audit already run"), wantCode: http.StatusConflict},
		{name: "internal", err: failure.InternalError(errors.New("boom")), wantCode: http.StatusInternalServerError},
		{name: "plain error defaults to internal", err: errors.New("boom"), wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, failure.GetCode(tt.err))
		})
	}
}

func TestGetCodeUnwrapsWrappedFailure(t *testing.T) {
	err := failure.Conflict("audit already run")
	wrapped := fmt.Errorf("running audit: %w", err)

	assert.Equal(t, http.StatusConflict, failure.GetCode(wrapped))
	assert.True(t, failure.IsConflict(wrapped))
}

func TestBadRequestNilError(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
	assert.NoError(t, failure.InternalError(nil))
}

func TestFailureMessage(t *testing.T) {
	err := failure.BadRequestFromString("adults must be greater than or equal to 1")
	assert.Equal(t, "adults must be greater than or equal to 1", err.Error())
}
