package userid

import (
	"errors"
	"fmt"
)

// ErrorCode is a machine-readable category for identifier parse failures.
type ErrorCode string

const (
	// CodeEmpty indicates the input string was empty.
	CodeEmpty ErrorCode = "EMPTY"
	// CodeInvalidEncoding indicates the input was not valid base58.
	CodeInvalidEncoding ErrorCode = "INVALID_ENCODING"
	// CodeTooShort indicates the decoded value was shorter than expected.
	CodeTooShort ErrorCode = "TOO_SHORT"
	// CodePasswordLength indicates the decoded value has exactly the length
	// of a password. Flagged distinctly because it is almost always a pasted
	// secret, not a user ID.
	CodePasswordLength ErrorCode = "PASSWORD_LENGTH"
	// CodeTooLong indicates the decoded value was longer than expected.
	CodeTooLong ErrorCode = "TOO_LONG"
	// CodeBadChecksum indicates a password whose checksum did not match.
	CodeBadChecksum ErrorCode = "BAD_CHECKSUM"
)

// ParseError is a categorized rejection from one of the Parse functions.
type ParseError struct {
	Code    ErrorCode
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ParseError) Unwrap() error { return e.Cause }

// CodeOf returns the error's category, or "" if err is not a ParseError.
func CodeOf(err error) ErrorCode {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Code
	}
	return ""
}

// ErrorMessage returns a human-readable message for err, or "" when err
// is nil.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

func newParseError(code ErrorCode, format string, args ...any) *ParseError {
	return &ParseError{Code: code, Message: fmt.Sprintf(format, args...)}
}
