// Package errors provides sentinel errors and error types for DadChess.
// Only the edges of the program produce errors (FEN and move text parsing,
// configuration, statistics storage); the rules engine itself never fails.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidSquare indicates square text that is not in a1..h8.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidMove indicates move text that cannot be parsed.
	ErrInvalidMove = errors.New("invalid move")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrStorage indicates the statistics store could not be read or written.
	ErrStorage = errors.New("storage failure")
)

// ParseError represents a failure to parse textual input, such as one
// field of a FEN string. It supports unwrapping via errors.Is() and errors.As().
type ParseError struct {
	Err      error  // The underlying error
	Field    string // Which part of the input failed (e.g. "castling")
	Expected string // What was expected
	Got      string // What was found instead
}

// Error returns a formatted error message with field and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Field != "" {
		parts = append(parts, e.Field)
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %s", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports whether err matches target, delegating to the standard library.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As delegates to the standard library errors.As.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
