// Package apperrors provides tests for application error types.
package apperrors

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestConfigError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		err         error
		expected    string
		checkTypeAs bool
	}{
		{
			name:     "Error returns message",
			err:      ConfigError{Message: "invalid flag value"},
			expected: "invalid flag value",
		},
		{
			name:     "NewConfigError creates formatted error",
			err:      NewConfigError("invalid value %d for flag %s", 42, "--workers"),
			expected: "invalid value 42 for flag --workers",
		},
		{
			name:        "ConfigError type assertion",
			err:         NewConfigError("test error"),
			expected:    "test error",
			checkTypeAs: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tt.err.Error())
			}
			if tt.checkTypeAs {
				var configErr ConfigError
				if !errors.As(tt.err, &configErr) {
					t.Error("expected error to be ConfigError type")
				}
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	t.Parallel()
	err := ValidationError{Field: "extents", Message: "axis 1 must be strictly positive"}
	want := `validation error for "extents": axis 1 must be strictly positive`
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}

	var wrapped error = fmt.Errorf("geometry: %w", err)
	var valErr ValidationError
	if !errors.As(wrapped, &valErr) {
		t.Fatal("errors.As should find ValidationError in the chain")
	}
	if valErr.Field != "extents" {
		t.Errorf("expected Field %q, got %q", "extents", valErr.Field)
	}
}

func TestShapeError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      ShapeError
		expected string
	}{
		{
			name:     "cell counts",
			err:      ShapeError{Want: 120, Got: 119},
			expected: "shape mismatch: want 120 cells, got 119",
		},
		{
			name:     "detail overrides counts",
			err:      ShapeError{Want: 120, Got: 120, Detail: "6x5x4 vs 4x5x6"},
			expected: "shape mismatch: 6x5x4 vs 4x5x6",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tt.err.Error())
			}
		})
	}
}

func TestComputationError(t *testing.T) {
	t.Parallel()
	cause := ShapeError{Want: 8, Got: 4}
	err := ComputationError{Strategy: "parallel", Cause: cause}

	if got, want := err.Error(), "parallel: shape mismatch: want 8 cells, got 4"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	if err.Unwrap() != cause {
		t.Error("Unwrap should return the original cause")
	}
	var shapeErr ShapeError
	if !errors.As(err, &shapeErr) {
		t.Error("errors.As should find ShapeError through ComputationError")
	}
}

func TestWrapError(t *testing.T) {
	t.Parallel()
	if WrapError(nil, "context") != nil {
		t.Error("WrapError(nil) should return nil")
	}
	base := errors.New("base")
	err := WrapError(base, "running %s", "sequential")
	if err.Error() != "running sequential: base" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if !errors.Is(err, base) {
		t.Error("wrapped error should match base with errors.Is")
	}
}

func TestIsContextError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"canceled", context.Canceled, true},
		{"deadline", context.DeadlineExceeded, true},
		{"wrapped deadline", fmt.Errorf("run: %w", context.DeadlineExceeded), true},
		{"other", errors.New("boom"), false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsContextError(tt.err); got != tt.want {
				t.Errorf("IsContextError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodeFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"timeout", context.DeadlineExceeded, ExitErrorTimeout},
		{"canceled", context.Canceled, ExitErrorCanceled},
		{"wrapped canceled", WrapError(context.Canceled, "strategy %s", "parallel"), ExitErrorCanceled},
		{"computation timeout", ComputationError{Strategy: "s", Cause: context.DeadlineExceeded}, ExitErrorTimeout},
		{"config", NewConfigError("bad"), ExitErrorConfig},
		{"validation", ValidationError{Field: "f", Message: "m"}, ExitErrorConfig},
		{"shape wrapped", ComputationError{Strategy: "s", Cause: ShapeError{Want: 1, Got: 2}}, ExitErrorConfig},
		{"generic", errors.New("boom"), ExitErrorGeneric},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ExitCodeFor(tt.err); got != tt.want {
				t.Errorf("ExitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestHandleComputationError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantOut  string
	}{
		{"nil error", nil, ExitSuccess, ""},
		{"timeout", context.DeadlineExceeded, ExitErrorTimeout, "Timeout"},
		{"canceled", context.Canceled, ExitErrorCanceled, "Canceled"},
		{"generic", errors.New("kaput"), ExitErrorGeneric, "kaput"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			code := HandleComputationError(tt.err, time.Second, &buf)
			if code != tt.wantCode {
				t.Errorf("code = %d, want %d", code, tt.wantCode)
			}
			if !strings.Contains(buf.String(), tt.wantOut) {
				t.Errorf("output %q should contain %q", buf.String(), tt.wantOut)
			}
		})
	}
}
