package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the application error taxonomy. Every concrete error type in
// this package unwraps to exactly one of these, so callers can classify errors with
// errors.Is without depending on concrete types.
var (
	ErrValueIsRequired     = errors.New("value is required")
	ErrValueIsInvalid      = errors.New("value is invalid")
	ErrValueIsOutOfRange   = errors.New("value is out of range")
	ErrObjectNotFound      = errors.New("object not found")
	ErrDuplicateKey        = errors.New("duplicate key")
	ErrSignatureInvalid    = errors.New("signature is invalid")
	ErrUpstreamUnavailable = errors.New("upstream is unavailable")
	ErrUpstreamRejected    = errors.New("upstream rejected the request")
)

// sanitize strips newlines from values interpolated into error messages so a single
// error always renders as a single log line.
func sanitize(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "\r", " ")
}

// ValueIsRequiredError indicates a required value was missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the named parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping a cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("value is required: %s (cause: %s)", sanitize(e.ParamName), sanitize(e.Cause.Error()))
	}
	return fmt.Sprintf("value is required: %s", sanitize(e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates a value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the named parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping a cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("value is invalid: %s (cause: %s)", sanitize(e.ParamName), sanitize(e.Cause.Error()))
	}
	return fmt.Sprintf("value is invalid: %s", sanitize(e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates a numeric value fell outside its allowed range.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError with the offending
// value and its allowed bounds.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("value is out of range: %s is %v, allowed range is [%v, %v]",
		sanitize(e.ParamName), e.Value, e.Min, e.Max)
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %s)", sanitize(e.Cause.Error()))
	}
	return sanitize(msg)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ObjectNotFoundError indicates a lookup by identifier found nothing.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the given identifier.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping a cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	msg := fmt.Sprintf("object not found: param is: %s, ID is: %v", sanitize(e.ParamName), e.ID)
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %s)", sanitize(e.Cause.Error()))
	}
	return sanitize(msg)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// DuplicateKeyError indicates an insert collided with an existing identifier.
type DuplicateKeyError struct {
	ParamName string
	ID        any
}

// NewDuplicateKeyError creates a DuplicateKeyError for the given identifier.
func NewDuplicateKeyError(paramName string, id any) *DuplicateKeyError {
	return &DuplicateKeyError{ParamName: paramName, ID: id}
}

func (e *DuplicateKeyError) Error() string {
	return sanitize(fmt.Sprintf("duplicate key: param is: %s, ID is: %v", e.ParamName, e.ID))
}

func (e *DuplicateKeyError) Unwrap() error {
	return ErrDuplicateKey
}

// SignatureInvalidError indicates a webhook signature did not match the payload.
type SignatureInvalidError struct {
	Reason string
}

// NewSignatureInvalidError creates a SignatureInvalidError with a short reason.
func NewSignatureInvalidError(reason string) *SignatureInvalidError {
	return &SignatureInvalidError{Reason: reason}
}

func (e *SignatureInvalidError) Error() string {
	return fmt.Sprintf("signature is invalid: %s", sanitize(e.Reason))
}

func (e *SignatureInvalidError) Unwrap() error {
	return ErrSignatureInvalid
}

// UpstreamUnavailableError indicates a provider could not be reached or answered
// with a server error. These failures are worth retrying by the caller.
type UpstreamUnavailableError struct {
	Provider string
	Cause    error
}

// NewUpstreamUnavailableError creates an UpstreamUnavailableError for the named provider.
func NewUpstreamUnavailableError(provider string, cause error) *UpstreamUnavailableError {
	return &UpstreamUnavailableError{Provider: provider, Cause: cause}
}

func (e *UpstreamUnavailableError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("upstream is unavailable: %s (cause: %s)", e.Provider, e.Cause.Error()))
	}
	return sanitize(fmt.Sprintf("upstream is unavailable: %s", e.Provider))
}

func (e *UpstreamUnavailableError) Unwrap() error {
	return ErrUpstreamUnavailable
}

// UpstreamRejectedError indicates a provider rejected the request as invalid.
// Retrying the same request will fail the same way.
type UpstreamRejectedError struct {
	Provider string
	Status   int
	Details  string
}

// NewUpstreamRejectedError creates an UpstreamRejectedError with the provider's
// HTTP status and response details.
func NewUpstreamRejectedError(provider string, status int, details string) *UpstreamRejectedError {
	return &UpstreamRejectedError{Provider: provider, Status: status, Details: details}
}

func (e *UpstreamRejectedError) Error() string {
	return sanitize(fmt.Sprintf("upstream rejected the request: %s (status %d: %s)", e.Provider, e.Status, e.Details))
}

func (e *UpstreamRejectedError) Unwrap() error {
	return ErrUpstreamRejected
}
