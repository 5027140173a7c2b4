package schema

import (
	"errors"
	"fmt"
	"strings"
)

// Errors returned by schema decode and encode operations.
var (
	// ErrTruncatedInput is returned when the input ends before a field is complete.
	ErrTruncatedInput = errors.New("schema: truncated input")

	// ErrTrailingBytes is returned when a message body leaves undecoded bytes.
	ErrTrailingBytes = errors.New("schema: trailing bytes")

	// ErrUnhandledVariant is returned when a switch discriminant has no branch
	// and no default.
	ErrUnhandledVariant = errors.New("schema: unhandled variant")

	// ErrNoMatchingVariant is returned when no candidate of a variant group
	// accepts the input.
	ErrNoMatchingVariant = errors.New("schema: no matching variant")

	// ErrFieldValidationFailed is returned when a field violates its declared
	// constraint.
	ErrFieldValidationFailed = errors.New("schema: field validation failed")

	// ErrUnsupportedProperty is returned for a property identifier that has no
	// value layout.
	ErrUnsupportedProperty = errors.New("schema: unsupported property")

	// ErrMissingField is returned when encoding a container that lacks a
	// required field.
	ErrMissingField = errors.New("schema: missing field")

	// ErrInvalidValue is returned when a value has the wrong type or does not
	// fit the wire width.
	ErrInvalidValue = errors.New("schema: invalid value")
)

// FieldError annotates an error with the dotted path of the field that
// produced it.
type FieldError struct {
	Path string
	Err  error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// WrapField prefixes err with a field name, extending the path of an
// existing FieldError.
func WrapField(name string, err error) error {
	return wrapField(name, err)
}

func wrapField(name string, err error) error {
	if name == "" {
		return err
	}
	if fe, ok := err.(*FieldError); ok {
		return &FieldError{Path: name + "." + fe.Path, Err: fe.Err}
	}
	return &FieldError{Path: name, Err: err}
}

func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrFieldValidationFailed, fmt.Sprintf(format, args...))
}

// Invalid returns an ErrFieldValidationFailed error with a formatted reason.
// Adapters and validators use it to report out-of-range values.
func Invalid(format string, args ...any) error {
	return validationError(format, args...)
}

// ErrorName returns the short name of the sentinel wrapped by err, or "" if
// err wraps none of them.
func ErrorName(err error) string {
	for _, e := range []error{
		ErrTruncatedInput,
		ErrTrailingBytes,
		ErrUnhandledVariant,
		ErrNoMatchingVariant,
		ErrFieldValidationFailed,
		ErrUnsupportedProperty,
		ErrMissingField,
		ErrInvalidValue,
	} {
		if errors.Is(err, e) {
			return camelName(strings.TrimPrefix(e.Error(), "schema: "))
		}
	}
	return ""
}

func camelName(s string) string {
	var b strings.Builder
	for _, w := range strings.Fields(s) {
		b.WriteString(strings.ToUpper(w[:1]))
		b.WriteString(w[1:])
	}
	return b.String()
}
