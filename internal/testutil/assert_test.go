package testutil

import (
	"errors"
	"fmt"
	"testing"
)

// Failure paths cannot be observed without mocking *testing.T, so these
// exercise the passing cases and the message formatting.

func TestAssertEqual_Success(t *testing.T) {
	AssertEqual(t, "hello", "hello")
	AssertEqual(t, 42, 42)
	AssertEqual(t, []int{1, 2, 3}, []int{1, 2, 3})
	AssertEqual(t, nil, nil)
	AssertEqual(t, 42, 42, "value should be %d", 42)
}

func TestAssertError_Success(t *testing.T) {
	AssertNoError(t, nil)
	AssertNoError(t, nil, "operation should succeed")
	AssertError(t, errors.New("test error"))
	AssertError(t, errors.New("test"), "expected error from %s", "operation")
}

func TestAssertErrorIs_Success(t *testing.T) {
	sentinel := errors.New("sentinel")
	AssertErrorIs(t, sentinel, sentinel)
	AssertErrorIs(t, fmt.Errorf("wrapped: %w", sentinel), sentinel)
}

func TestAssertContains_Success(t *testing.T) {
	AssertContains(t, "hello world", "world")
	AssertContains(t, "test", "")
	AssertNotContains(t, "hello world", "foo")
}

func TestAssertBool_Success(t *testing.T) {
	AssertTrue(t, len("hello") == 5)
	AssertFalse(t, len("hello") == 0)
}

func TestAssertNil_Success(t *testing.T) {
	var p *int
	AssertNil(t, p)
	AssertNil(t, nil)

	x := 42
	AssertNotNil(t, &x)
	AssertNotNil(t, []int{1, 2, 3})
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no args", nil, ""},
		{"single string", []interface{}{"hello"}, "hello"},
		{"single int", []interface{}{42}, "42"},
		{"format string", []interface{}{"hello %s", "world"}, "hello world"},
		{"format multiple", []interface{}{"%s %d %s", "test", 42, "end"}, "test 42 end"},
		{"non-string first", []interface{}{7, "ignored"}, "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatMessage(tt.args...)
			if got != tt.want {
				t.Errorf("formatMessage(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}
