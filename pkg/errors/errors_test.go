package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidFormat, "invalid format: %s", "bmp")

	if err.Code != ErrCodeInvalidFormat {
		t.Errorf("Code = %q, want %q", err.Code, ErrCodeInvalidFormat)
	}
	if err.Message != "invalid format: bmp" {
		t.Errorf("Message = %q", err.Message)
	}
	if !strings.Contains(err.Error(), "INVALID_FORMAT") {
		t.Errorf("Error() should contain the code: %q", err.Error())
	}
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("permission denied")
	err := Wrap(ErrCodeInvalidPath, cause, "cannot write %s", "/out.svg")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match its cause via errors.Is")
	}
	if !strings.Contains(err.Error(), "permission denied") {
		t.Errorf("Error() should include the cause: %q", err.Error())
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeEmptyDataset, "no points")

	if !Is(err, ErrCodeEmptyDataset) {
		t.Error("Is should match the error's code")
	}
	if Is(err, ErrCodeInternal) {
		t.Error("Is should not match a different code")
	}
	if Is(fmt.Errorf("plain"), ErrCodeEmptyDataset) {
		t.Error("Is should not match non-structured errors")
	}

	// Code is found through wrapping.
	wrapped := fmt.Errorf("outer: %w", err)
	if !Is(wrapped, ErrCodeEmptyDataset) {
		t.Error("Is should unwrap to find the code")
	}
}

func TestGetCode(t *testing.T) {
	if code := GetCode(New(ErrCodeInvalidStyle, "bad style")); code != ErrCodeInvalidStyle {
		t.Errorf("GetCode = %q, want %q", code, ErrCodeInvalidStyle)
	}
	if code := GetCode(fmt.Errorf("plain")); code != "" {
		t.Errorf("GetCode on plain error = %q, want empty", code)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidColumn, "no such column: foo")
	if msg := UserMessage(err); msg != "no such column: foo" {
		t.Errorf("UserMessage = %q", msg)
	}

	plain := fmt.Errorf("plain error")
	if msg := UserMessage(plain); msg != "plain error" {
		t.Errorf("UserMessage on plain error = %q", msg)
	}
}
