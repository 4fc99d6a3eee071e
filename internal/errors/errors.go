package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error is the typed error the engine surfaces to callers. It carries a
// taxonomy code, a human-readable message, optional per-field details, and
// the underlying cause for errors.Is/As chains.
type Error struct {
	Code    ErrorCode
	Message string
	Details []string
	cause   error
}

// Option is a functional option for configuring engine errors
type Option func(*Error)

// WithMessage overrides the default message for the error code. Used to carry
// the server's own error message on rejected writes.
func WithMessage(message string) Option {
	return func(e *Error) {
		if message != "" {
			e.Message = message
		}
	}
}

// WithDetails adds detail messages, e.g. one per failed validation field
func WithDetails(details ...string) Option {
	return func(e *Error) {
		e.Details = details
	}
}

// WithCause attaches the underlying error
func WithCause(cause error) Option {
	return func(e *Error) {
		e.cause = cause
	}
}

// New creates an engine error with the given code and options
func New(code ErrorCode, opts ...Option) *Error {
	e := &Error{
		Code:    code,
		Message: GetErrorMessage(code),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", e.Code, e.Message)
	if len(e.Details) > 0 {
		fmt.Fprintf(&b, " (%s)", strings.Join(e.Details, "; "))
	}
	if e.cause != nil {
		fmt.Fprintf(&b, ": %v", e.cause)
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches engine errors by code, so callers can use
// errors.Is(err, errors.New(WriteCreateRejected)) style comparisons.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// CodeOf extracts the engine error code from an error chain, or "" when the
// chain holds no engine error.
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// IsTransport reports whether the error is a transport-level read failure.
// Callers typically show a retry affordance for these.
func IsTransport(err error) bool {
	return strings.HasPrefix(string(CodeOf(err)), "TRANSPORT_")
}

// IsValidation reports whether the error is a local input rejection
func IsValidation(err error) bool {
	return strings.HasPrefix(string(CodeOf(err)), "VALIDATION_")
}

// IsWrite reports whether the remote store rejected a mutation
func IsWrite(err error) bool {
	return strings.HasPrefix(string(CodeOf(err)), "WRITE_")
}

// IsNotFound reports whether a transaction was absent from the local ledger
func IsNotFound(err error) bool {
	return CodeOf(err) == LedgerTransactionNotFound
}
