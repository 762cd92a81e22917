package errors

import (
	stderrors "errors"

	"github.com/louisbranch/fairdice/internal/platform/errors/i18n"
)

// Error is the domain error type with structured metadata.
type Error struct {
	Code     Code              // Machine-readable error code
	Message  string            // Internal message (for logs)
	Metadata map[string]string // Additional context for templating
	Cause    error             // Wrapped underlying error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error by code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// Kind returns the kind of the error code.
func (e *Error) Kind() Kind {
	return e.Code.Kind()
}

// Localize renders the user-facing message for the locale.
func (e *Error) Localize(locale string) string {
	return i18n.GetCatalog(locale).Format(string(e.Code), e.Metadata)
}

// New creates a simple domain error with a code and message.
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// WithMetadata creates a domain error with metadata for i18n templating.
func WithMetadata(code Code, message string, metadata map[string]string) *Error {
	return &Error{
		Code:     code,
		Message:  message,
		Metadata: metadata,
	}
}

// Wrap creates a domain error that wraps an underlying cause.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WrapWithMetadata creates a domain error with both metadata and a cause.
func WrapWithMetadata(code Code, message string, metadata map[string]string, cause error) *Error {
	return &Error{
		Code:     code,
		Message:  message,
		Metadata: metadata,
		Cause:    cause,
	}
}

// As returns the outermost domain error in the chain.
func As(err error) (*Error, bool) {
	var domainErr *Error
	if stderrors.As(err, &domainErr) {
		return domainErr, true
	}
	return nil, false
}

// KindOf reports the kind of the outermost domain error in the chain.
// Errors without a domain error are internal.
func KindOf(err error) Kind {
	if domainErr, ok := As(err); ok {
		return domainErr.Kind()
	}
	return KindInternal
}

// IsKind reports whether err carries a domain error of the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// Localize renders a user-facing message for any error. Domain errors use the
// locale catalogs and a directly wrapped domain cause is appended, so that
// positional context from the wrapper survives. Other errors use Error().
func Localize(err error, locale string) string {
	if err == nil {
		return ""
	}
	domainErr, ok := As(err)
	if !ok {
		return err.Error()
	}
	msg := domainErr.Localize(locale)
	if inner, ok := As(domainErr.Cause); ok {
		msg += ": " + inner.Localize(locale)
	}
	return msg
}
