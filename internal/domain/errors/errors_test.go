package errors

import (
	"context"
	"net/http"
	"testing"

	"creatorhub/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WrapMessageKeepsIdentity(t *testing.T) {
	err := ErrValidationFailed.WrapMessage("birthDate is required to create a new creator")

	assert.True(t, errors.Is(err, ErrValidationFailed))
	assert.Equal(t, "birthDate is required to create a new creator: validation failed", err.Error())

	var appErr AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
}

func TestDatabaseExecuteError_Unwrap(t *testing.T) {
	err := NewDatabaseExecuteError(context.Canceled, "failed to create creator profile")

	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Equal(t, "failed to create creator profile", err.Details())
	assert.Contains(t, err.Error(), "database execution failed")
}

func TestCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "base error", err: ErrAlreadyOnboarded, want: "ALREADY_ONBOARDED"},
		{name: "wrapped base error", err: errors.Wrap(ErrAccountNotFound, "load account"), want: "ACCOUNT_NOT_FOUND"},
		{name: "database error", err: NewDatabaseExecuteError(errors.New("boom"), ""), want: "DATABASE_EXECUTE_FAILED"},
		{name: "plain error", err: errors.New("boom"), want: "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Code(tt.err))
		})
	}
}
