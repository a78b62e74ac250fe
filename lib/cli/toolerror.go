// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
)

// ErrorCategory classifies command errors so the exit status tells a
// script whether to fix its input or retry.
type ErrorCategory string

const (
	// CategoryValidation indicates bad flags, arguments or config
	// values. Exits with status 2.
	CategoryValidation ErrorCategory = "validation"

	// CategoryNotFound indicates a missing config file, data file or
	// a 404 from the source URL.
	CategoryNotFound ErrorCategory = "not_found"

	// CategoryTransient indicates a network failure or a 5xx from the
	// source. Running again may succeed.
	CategoryTransient ErrorCategory = "transient"

	// CategoryInternal indicates anything else: terminal failures,
	// unreadable payloads, write errors.
	CategoryInternal ErrorCategory = "internal"
)

// ToolError is a categorized error with an optional hint telling the
// user what to do next. It wraps the underlying error, so errors.Is
// and errors.As see through it.
type ToolError struct {
	Category ErrorCategory
	Err      error

	// Hint is appended to the message after a blank line.
	Hint string
}

func (e *ToolError) Error() string {
	if e.Hint == "" {
		return e.Err.Error()
	}
	return e.Err.Error() + "\n\n" + e.Hint
}

func (e *ToolError) Unwrap() error { return e.Err }

// WithHint sets the hint and returns the receiver for chaining.
func (e *ToolError) WithHint(hint string) *ToolError {
	e.Hint = hint
	return e
}

// Validation creates a validation error: the caller provided bad input.
func Validation(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryValidation, Err: fmt.Errorf(format, args...)}
}

// NotFound creates a not-found error.
func NotFound(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryNotFound, Err: fmt.Errorf(format, args...)}
}

// Transient creates a transient error: a temporary failure that may succeed on retry.
func Transient(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryTransient, Err: fmt.Errorf(format, args...)}
}

// Internal creates an internal error.
func Internal(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryInternal, Err: fmt.Errorf(format, args...)}
}

// ExitCode returns the process exit status for err: 0 for nil, the
// code of an [ExitError], 2 for validation errors and 1 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitError *ExitError
	if errors.As(err, &exitError) {
		return exitError.Code
	}
	var toolError *ToolError
	if errors.As(err, &toolError) && toolError.Category == CategoryValidation {
		return 2
	}
	return 1
}
