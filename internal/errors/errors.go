// Package errors provides sentinel errors and error types for the variant chess engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrOutOfBounds indicates a square outside the board extent.
	ErrOutOfBounds = errors.New("square out of bounds")

	// ErrInvalidSquare indicates a malformed square description.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrIllegalMove indicates a move that violates the rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnknownLayout indicates a board layout name that is not recognised.
	ErrUnknownLayout = errors.New("unknown board layout")

	// ErrGameOver indicates an action attempted after the game has ended.
	ErrGameOver = errors.New("game is over")

	// ErrUnknownCommand indicates an unrecognised interactive command.
	ErrUnknownCommand = errors.New("unknown command")
)

// SquareError wraps errors with the square and board extent involved.
// It is used for structural board configuration faults.
type SquareError struct {
	Err  error // The underlying error
	Row  int   // Row of the offending square
	Col  int   // Column of the offending square
	Size int   // Board side length (0 if not applicable)
}

// Error returns a formatted error message including the square.
func (e *SquareError) Error() string {
	context := fmt.Sprintf("square (%d,%d)", e.Row, e.Col)
	if e.Size > 0 {
		context += fmt.Sprintf(" on %dx%d board", e.Size, e.Size)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the SquareError wrapper.
func (e *SquareError) Unwrap() error {
	return e.Err
}

// ParseError represents a failure to parse user input such as a square or command.
type ParseError struct {
	Err      error  // The underlying error
	Input    string // The text being parsed
	Expected string // What was expected
	Got      string // What was found instead
}

// Error returns a formatted error message with context.
func (e *ParseError) Error() string {
	var parts []string

	if e.Input != "" {
		parts = append(parts, fmt.Sprintf("%q", e.Input))
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
