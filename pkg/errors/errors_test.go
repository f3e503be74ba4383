// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/packex/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "weight_exceeded_error",
			code:    errors.ErrWeightExceeded,
			message: "package over the weight limit",
			wantStr: "[WEIGHT_EXCEEDED] package over the weight limit",
		},
		{
			name:    "invalid_input_error",
			code:    errors.ErrInvalidInput,
			message: "invalid configuration",
			wantStr: "[INVALID_INPUT] invalid configuration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	inner := stderrors.New("stream closed")
	err := errors.Wrap(inner, errors.ErrInputClosed, "failed to read input")

	if err.Code != errors.ErrInputClosed {
		t.Errorf("Wrap() code = %v, want %v", err.Code, errors.ErrInputClosed)
	}

	if !stderrors.Is(err, inner) {
		t.Error("Wrap() should preserve the wrapped error for errors.Is")
	}

	wantStr := "[INPUT_CLOSED] failed to read input: stream closed"
	if got := err.Error(); got != wantStr {
		t.Errorf("Error() = %q, want %q", got, wantStr)
	}

	if errors.Wrap(nil, errors.ErrInternal, "nope") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

func TestIsErrorCode(t *testing.T) {
	err := errors.New(errors.ErrDimensionsExceeded, "too big")

	if !errors.IsErrorCode(err, errors.ErrDimensionsExceeded) {
		t.Error("IsErrorCode() should match the error's own code")
	}

	if errors.IsErrorCode(err, errors.ErrWeightExceeded) {
		t.Error("IsErrorCode() should not match a different code")
	}

	if errors.IsErrorCode(stderrors.New("plain"), errors.ErrInternal) {
		t.Error("IsErrorCode() should be false for non-packex errors")
	}
}

func TestGetErrorCode(t *testing.T) {
	err := errors.New(errors.ErrConfigLoad, "could not load config")

	if got := errors.GetErrorCode(err); got != errors.ErrConfigLoad {
		t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrConfigLoad)
	}

	if got := errors.GetErrorCode(stderrors.New("plain")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrUnknown)
	}
}

func TestUserMessage(t *testing.T) {
	err := errors.New(errors.ErrWeightExceeded, "Package too heavy to be shipped via Package Express. Have a good day.")

	if got := errors.UserMessage(err); got != err.Message {
		t.Errorf("UserMessage() = %q, want %q", got, err.Message)
	}

	plain := stderrors.New("plain failure")
	if got := errors.UserMessage(plain); got != "plain failure" {
		t.Errorf("UserMessage() = %q, want %q", got, "plain failure")
	}

	wrapped := errors.Wrap(plain, errors.ErrInputClosed, "input stream closed")
	if got := errors.UserMessage(wrapped); got != "input stream closed" {
		t.Errorf("UserMessage() = %q, want %q", got, "input stream closed")
	}
}
