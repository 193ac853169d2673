package session

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestErrorTypeString tests error type names
func TestErrorTypeString(t *testing.T) {
	tests := []struct {
		et   ErrorType
		want string
	}{
		{ErrTypePrecondition, "Precondition Error"},
		{ErrTypeEmptyPhone, "Empty Phone"},
		{ErrTypeInvalidColumn, "Invalid Column"},
		{ErrTypeUnknownVariable, "Unknown Variable"},
		{ErrTypeClipboard, "Clipboard Error"},
		{ErrTypeLaunch, "Launch Error"},
		{ErrorType(99), "ErrorType(99)"},
	}
	for _, tt := range tests {
		if got := tt.et.String(); got != tt.want {
			t.Errorf("ErrorType(%d).String() = %q, want %q", tt.et, got, tt.want)
		}
	}
}

// TestErrorFormatting tests Error() with and without a cause
func TestErrorFormatting(t *testing.T) {
	plain := NewPreconditionError("not yet")
	if plain.Error() != "Precondition Error: not yet" {
		t.Errorf("Error() = %q", plain.Error())
	}

	cause := errors.New("denied")
	wrapped := NewClipboardError(cause)
	if !strings.Contains(wrapped.Error(), "caused by: denied") {
		t.Errorf("Error() = %q, want cause", wrapped.Error())
	}
	if !errors.Is(wrapped, cause) {
		t.Error("errors.Is should see through Unwrap")
	}
}

// TestPredicatesThroughWrapping tests that Is* helpers survive fmt wrapping
func TestPredicatesThroughWrapping(t *testing.T) {
	err := fmt.Errorf("open failed: %w", NewEmptyPhoneError(2))
	if !IsEmptyPhoneError(err) {
		t.Error("IsEmptyPhoneError should match a wrapped error")
	}
	if IsClipboardError(err) {
		t.Error("IsClipboardError should not match an empty phone error")
	}
	if UserMessage(err) != msgEmptyPhone {
		t.Errorf("UserMessage() = %q", UserMessage(err))
	}
}

// TestUserMessageFallback tests foreign errors and nil
func TestUserMessageFallback(t *testing.T) {
	if UserMessage(nil) != "" {
		t.Error("UserMessage(nil) should be empty")
	}
	if UserMessage(errors.New("raw")) != "raw" {
		t.Error("UserMessage should fall back to Error()")
	}
}
