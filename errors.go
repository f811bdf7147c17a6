package readinput

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes for parse failures.
const (
	ErrCodeNotUTF8       = "not_utf8"
	ErrCodeEmpty         = "empty"
	ErrCodeInvalidDigit  = "invalid_digit"
	ErrCodeOverflow      = "overflow"
	ErrCodeUnderflow     = "underflow"
	ErrCodeZero          = "zero"
	ErrCodeNotBool       = "not_bool"
	ErrCodeTooManyChars  = "too_many_chars"
	ErrCodeInvalidNumber = "invalid_number"
	ErrCodeInvalid       = "invalid"
)

// Error code for message table failures.
const ErrCodeUnknownKey = "unknown_key"

// Kinds of parsers, used to pick the default message for a failure.
const (
	KindText   = "text"
	KindBool   = "bool"
	KindChar   = "char"
	KindInt    = "int"
	KindFloat  = "float"
	KindCustom = "custom"
)

// ErrNoParser is returned by Get when T has no built-in parser and does not
// implement Inputtable or encoding.TextUnmarshaler.
var ErrNoParser = errors.New("readinput: no parser for type")

// ParseError is the structured reason a raw line could not become a typed value.
type ParseError struct {
	Code  string // Error code (e.g., "overflow")
	Kind  string // Parser kind (e.g., "int")
	Input string // Offending text, empty when the input was not valid UTF-8
	Min   string // Type minimum for underflow failures
	Max   string // Type maximum for overflow failures
	Err   error  // Underlying error, if any
}

// Error formats the failure as "<code>: <detail>".
func (e *ParseError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Code, e.Err)
	case e.Code == ErrCodeOverflow && e.Max != "":
		return fmt.Sprintf("%s: %q is above maximum %s", e.Code, e.Input, e.Max)
	case e.Code == ErrCodeUnderflow && e.Min != "":
		return fmt.Sprintf("%s: %q is below minimum %s", e.Code, e.Input, e.Min)
	case e.Code == ErrCodeNotUTF8:
		return e.Code + ": input is not valid UTF-8"
	default:
		return fmt.Sprintf("%s: %q", e.Code, e.Input)
	}
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// MessageError aggregates message table failures.
type MessageError struct {
	KeyErrors []KeyError
}

// Error formats message table errors as a multi-line message.
func (e *MessageError) Error() string {
	if len(e.KeyErrors) == 0 {
		return "message table invalid: no errors"
	}

	var b strings.Builder
	if len(e.KeyErrors) == 1 {
		b.WriteString("message table invalid: 1 error\n")
	} else {
		fmt.Fprintf(&b, "message table invalid: %d errors\n", len(e.KeyErrors))
	}

	for _, ke := range e.KeyErrors {
		fmt.Fprintf(&b, "  - %s: %s (%s)\n", ke.Key, ke.Code, ke.Message)
	}

	return strings.TrimRight(b.String(), "\n")
}

// KeyError represents a single message table key failure.
type KeyError struct {
	Key     string // Dot notation (e.g., "int.overflow")
	Code    string // Error code (e.g., "unknown_key")
	Message string // Human-readable description
}
