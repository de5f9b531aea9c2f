package finerrors

import (
	"errors"
	"strconv"

	"github.com/rs/zerolog"
)

// HasMetadata indicates that the error has metadata defined.
type HasMetadata interface {
	// DetailsMetadata returns the metadata for details for this error.
	DetailsMetadata() map[string]string
}

// WithSourceError is an error found while parsing a single line of input,
// such as a layer of key=value pairs given on the command line.
type WithSourceError struct {
	error

	// Source is the input in which the error was found.
	Source string

	// ColumnPosition is the (1-indexed) column position of the error, or 0 if
	// unknown.
	ColumnPosition int
}

// NewWithSourceError creates and returns a new WithSourceError.
func NewWithSourceError(err error, source string, oneIndexedColumnPosition int) *WithSourceError {
	return &WithSourceError{err, source, oneIndexedColumnPosition}
}

// Unwrap returns the inner, wrapped error.
func (err *WithSourceError) Unwrap() error {
	return err.error
}

// DetailsMetadata returns the metadata for details for this error.
func (err *WithSourceError) DetailsMetadata() map[string]string {
	metadata := map[string]string{
		"source": err.Source,
		"column": strconv.Itoa(err.ColumnPosition),
	}

	var inner HasMetadata
	if errors.As(err.error, &inner) {
		return CombineMetadata(inner, metadata)
	}
	return metadata
}

// MarshalZerologObject implements zerolog object marshalling.
func (err *WithSourceError) MarshalZerologObject(e *zerolog.Event) {
	e.Err(err.error).Str("source", err.Source).Int("column", err.ColumnPosition)
}

// AsWithSourceError returns the error as an WithSourceError, if applicable.
func AsWithSourceError(err error) (*WithSourceError, bool) {
	var serr *WithSourceError
	if errors.As(err, &serr) {
		return serr, true
	}
	return nil, false
}
