package session

import (
	"errors"
	"fmt"

	"github.com/muurk/csvtext/internal/binding"
)

// ErrorType represents the category of error that occurred
type ErrorType int

const (
	// ErrTypePrecondition indicates start or a hand-off was requested before
	// data and bindings were ready
	ErrTypePrecondition ErrorType = iota
	// ErrTypeEmptyPhone indicates the current row's phone sanitizes to nothing
	ErrTypeEmptyPhone
	// ErrTypeInvalidColumn indicates a binding named a column the dataset lacks
	ErrTypeInvalidColumn
	// ErrTypeUnknownVariable indicates a binding named a variable the template lacks
	ErrTypeUnknownVariable
	// ErrTypeClipboard indicates the clipboard write failed
	ErrTypeClipboard
	// ErrTypeLaunch indicates the messaging app could not be opened
	ErrTypeLaunch
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypePrecondition:
		return "Precondition Error"
	case ErrTypeEmptyPhone:
		return "Empty Phone"
	case ErrTypeInvalidColumn:
		return "Invalid Column"
	case ErrTypeUnknownVariable:
		return "Unknown Variable"
	case ErrTypeClipboard:
		return "Clipboard Error"
	case ErrTypeLaunch:
		return "Launch Error"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// Error is a recoverable session failure. None of these are fatal: the
// session state is unchanged and the message is meant for the user.
type Error struct {
	Type    ErrorType // Category of error
	Message string    // User-facing message
	Row     int       // 1-based row number, 0 when not row-specific
	Err     error     // Underlying error (if any)
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *Error) Unwrap() error {
	return e.Err
}

// Precondition messages, worded for a status line.
const (
	msgNoRows          = "Please load a contacts file first."
	msgUnmapped        = "Please map all variables to a column."
	msgNoPhone         = "Please choose a phone number column."
	msgNotStarted      = "Start the session first."
	msgEmptyPhone      = "This row has an empty phone number."
	msgClipboard       = "Could not access clipboard."
	msgLaunch          = "Could not open the messaging app."
	msgInvalidColumn   = "That column is not in the loaded file."
	msgUnknownVariable = "That variable is not in the template."
)

// NewPreconditionError creates a precondition error with a user-facing message
func NewPreconditionError(message string) *Error {
	return &Error{Type: ErrTypePrecondition, Message: message}
}

// NewEmptyPhoneError creates an empty phone error for a 1-based row number
func NewEmptyPhoneError(row int) *Error {
	return &Error{Type: ErrTypeEmptyPhone, Message: msgEmptyPhone, Row: row}
}

// NewClipboardError wraps a clipboard failure
func NewClipboardError(err error) *Error {
	return &Error{Type: ErrTypeClipboard, Message: msgClipboard, Err: err}
}

// NewLaunchError wraps a launcher failure
func NewLaunchError(row int, err error) *Error {
	return &Error{Type: ErrTypeLaunch, Message: msgLaunch, Row: row, Err: err}
}

// fromBindingError maps a binding rejection into the session taxonomy
func fromBindingError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, binding.ErrInvalidColumn):
		return &Error{Type: ErrTypeInvalidColumn, Message: msgInvalidColumn, Err: err}
	case errors.Is(err, binding.ErrUnknownVariable):
		return &Error{Type: ErrTypeUnknownVariable, Message: msgUnknownVariable, Err: err}
	default:
		return err
	}
}

func hasType(err error, t ErrorType) bool {
	var sErr *Error
	return errors.As(err, &sErr) && sErr.Type == t
}

// IsPreconditionError checks if an error is a precondition error
func IsPreconditionError(err error) bool {
	return hasType(err, ErrTypePrecondition)
}

// IsEmptyPhoneError checks if an error is an empty phone error
func IsEmptyPhoneError(err error) bool {
	return hasType(err, ErrTypeEmptyPhone)
}

// IsInvalidColumnError checks if an error is an invalid column error
func IsInvalidColumnError(err error) bool {
	return hasType(err, ErrTypeInvalidColumn)
}

// IsUnknownVariableError checks if an error is an unknown variable error
func IsUnknownVariableError(err error) bool {
	return hasType(err, ErrTypeUnknownVariable)
}

// IsClipboardError checks if an error is a clipboard error
func IsClipboardError(err error) bool {
	return hasType(err, ErrTypeClipboard)
}

// IsLaunchError checks if an error is a launch error
func IsLaunchError(err error) bool {
	return hasType(err, ErrTypeLaunch)
}

// UserMessage returns the short message to show the user for err
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var sErr *Error
	if errors.As(err, &sErr) {
		return sErr.Message
	}
	return err.Error()
}
