package apperrors

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorTimeout  = 2   // Indicates the operation timed out.
	ExitErrorMismatch = 3   // Indicates a result mismatch between strategies.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// ValidationError represents an input validation failure. It identifies which
// field failed validation and provides a human-readable explanation.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// ShapeError reports a buffer whose length does not match the product of
// the grid extents it is declared against, or two grids whose shapes differ.
type ShapeError struct {
	// Want is the number of cells implied by the geometry.
	Want int
	// Got is the number of cells actually supplied.
	Got int
	// Detail optionally names the mismatching extents.
	Detail string
}

// Error returns a formatted message describing the shape mismatch.
func (e ShapeError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("shape mismatch: %s", e.Detail)
	}
	return fmt.Sprintf("shape mismatch: want %d cells, got %d", e.Want, e.Got)
}

// ComputationError wraps a failure raised while running a named averaging
// strategy.
type ComputationError struct {
	// Strategy is the name of the strategy that failed.
	Strategy string
	// Cause is the underlying error.
	Cause error
}

// Error returns the strategy name followed by the cause.
func (e ComputationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Strategy, e.Cause)
}

// Unwrap returns the original wrapped error, allowing for error chain
// inspection (e.g., using errors.Is or errors.As).
func (e ComputationError) Unwrap() error { return e.Cause }

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// It returns nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ExitCodeFor maps an error to the process exit code reported for it.
func ExitCodeFor(err error) int {
	var cfgErr ConfigError
	var valErr ValidationError
	var shapeErr ShapeError
	switch {
	case err == nil:
		return ExitSuccess
	case IsContextError(err):
		if errors.Is(err, context.DeadlineExceeded) {
			return ExitErrorTimeout
		}
		return ExitErrorCanceled
	case errors.As(err, &cfgErr), errors.As(err, &valErr), errors.As(err, &shapeErr):
		return ExitErrorConfig
	default:
		return ExitErrorGeneric
	}
}

// HandleComputationError writes a one-line description of err to out and
// returns the matching exit code.
func HandleComputationError(err error, duration time.Duration, out io.Writer) int {
	if err == nil {
		return ExitSuccess
	}
	code := ExitCodeFor(err)
	switch code {
	case ExitErrorTimeout:
		fmt.Fprintf(out, "Status: Failure (Timeout). The execution limit was reached after %s.\n", duration)
	case ExitErrorCanceled:
		fmt.Fprintf(out, "Status: Canceled by user.\n")
	default:
		fmt.Fprintf(out, "Status: Failure. %v\n", err)
	}
	return code
}
