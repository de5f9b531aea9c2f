package propertyset

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/finkit/finkit/pkg/finerrors"
)

// ErrInvalidArgument is matched, via errors.Is, by every error returned from
// this package.
var ErrInvalidArgument = errors.New("invalid argument")

// InvalidArgumentReason discriminates the conditions reported by an
// InvalidArgumentError.
type InvalidArgumentReason int

const (
	// MissingArgument is the reason returned when a required argument, such
	// as the input mapping or the other side of a merge, was nil.
	MissingArgument InvalidArgumentReason = iota

	// UnknownKey is the reason returned when a single value was requested for
	// a key that has no values.
	UnknownKey

	// MultipleValues is the reason returned when a single value was requested
	// for a key that has more than one value.
	MultipleValues
)

func (r InvalidArgumentReason) String() string {
	switch r {
	case MissingArgument:
		return "missing_argument"
	case UnknownKey:
		return "unknown_key"
	case MultipleValues:
		return "multiple_values"
	default:
		return "unknown_reason_" + strconv.Itoa(int(r))
	}
}

// InvalidArgumentError occurs when an argument to a property set operation is
// missing, or when a single-value lookup cannot be satisfied.
type InvalidArgumentError struct {
	error
	reason     InvalidArgumentReason
	argument   string
	key        string
	valueCount int
}

var _ finerrors.HasMetadata = (*InvalidArgumentError)(nil)

// Unwrap returns the inner, wrapped error.
func (err *InvalidArgumentError) Unwrap() error {
	return err.error
}

// Is reports whether the target is ErrInvalidArgument.
func (err *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// Reason is the condition that caused the error.
func (err *InvalidArgumentError) Reason() InvalidArgumentReason {
	return err.reason
}

// Argument is the name of the offending parameter for MissingArgument errors.
func (err *InvalidArgumentError) Argument() string {
	return err.argument
}

// Key is the looked up key for UnknownKey and MultipleValues errors.
func (err *InvalidArgumentError) Key() string {
	return err.key
}

// ValueCount is the number of values found for the key.
func (err *InvalidArgumentError) ValueCount() int {
	return err.valueCount
}

// MarshalZerologObject implements zerolog object marshalling.
func (err *InvalidArgumentError) MarshalZerologObject(e *zerolog.Event) {
	e.Err(err.error).Stringer("reason", err.reason)
	if err.argument != "" {
		e.Str("argument", err.argument)
	}
	if err.reason != MissingArgument {
		e.Str("key", err.key).Int("value_count", err.valueCount)
	}
}

// DetailsMetadata returns the metadata for details for this error.
func (err *InvalidArgumentError) DetailsMetadata() map[string]string {
	if err.reason == MissingArgument {
		return map[string]string{
			"reason":   err.reason.String(),
			"argument": err.argument,
		}
	}

	return map[string]string{
		"reason":      err.reason.String(),
		"key":         err.key,
		"value_count": strconv.Itoa(err.valueCount),
	}
}

// AsInvalidArgumentError returns the error as an InvalidArgumentError, if
// applicable.
func AsInvalidArgumentError(err error) (*InvalidArgumentError, bool) {
	var iaerr *InvalidArgumentError
	if errors.As(err, &iaerr) {
		return iaerr, true
	}
	return nil, false
}

// IsUnknownKey returns true if the error reports a lookup of a key without
// values.
func IsUnknownKey(err error) bool {
	iaerr, ok := AsInvalidArgumentError(err)
	return ok && iaerr.reason == UnknownKey
}

// IsMultipleValues returns true if the error reports a single-value lookup of
// a key with several values.
func IsMultipleValues(err error) bool {
	iaerr, ok := AsInvalidArgumentError(err)
	return ok && iaerr.reason == MultipleValues
}

func newMissingArgumentErr(argument string) *InvalidArgumentError {
	return &InvalidArgumentError{
		error:    fmt.Errorf("argument must not be nil: %s", argument),
		reason:   MissingArgument,
		argument: argument,
	}
}

func newUnknownKeyErr(key string) *InvalidArgumentError {
	return &InvalidArgumentError{
		error:  fmt.Errorf("Unknown key: %s", key),
		reason: UnknownKey,
		key:    key,
	}
}

func newMultipleValuesErr(key string, count int) *InvalidArgumentError {
	return &InvalidArgumentError{
		error:      fmt.Errorf("Multiple values for key: %s", key),
		reason:     MultipleValues,
		key:        key,
		valueCount: count,
	}
}
