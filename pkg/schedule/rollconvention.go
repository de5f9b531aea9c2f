// Package schedule holds the conventions used when building the dates of a
// financial schedule.
package schedule

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// RollConvention is a rule that moves a date to the roll day of its month,
// such as the last day of the month or the third Wednesday.
//
// The zero value is None.
type RollConvention int

const (
	// None leaves the date unchanged.
	None RollConvention = iota

	// EOM rolls to the last day of the month.
	EOM

	// IMM rolls to the third Wednesday of the month.
	IMM

	// IMMAUD rolls to the Thursday before the second Friday of the month,
	// the Australian IMM date.
	IMMAUD

	// IMMNZD rolls to the first Wednesday on or after the ninth of the month,
	// the New Zealand IMM date.
	IMMNZD

	// SFE rolls to the second Friday of the month, the Sydney Futures
	// Exchange date.
	SFE
)

var rollConventionNames = []string{
	None:   "None",
	EOM:    "EOM",
	IMM:    "IMM",
	IMMAUD: "IMMAUD",
	IMMNZD: "IMMNZD",
	SFE:    "SFE",
}

// RollConventions returns every standard roll convention.
func RollConventions() []RollConvention {
	return []RollConvention{None, EOM, IMM, IMMAUD, IMMNZD, SFE}
}

// RollConventionOf looks up a roll convention by its exact name.
func RollConventionOf(name string) (RollConvention, error) {
	for rc, rcName := range rollConventionNames {
		if rcName == name {
			return RollConvention(rc), nil
		}
	}
	return None, NewUnknownConventionErr(name)
}

// Name returns the unique name of the convention.
func (rc RollConvention) Name() string {
	if rc < 0 || int(rc) >= len(rollConventionNames) {
		return fmt.Sprintf("RollConvention(%d)", int(rc))
	}
	return rollConventionNames[rc]
}

func (rc RollConvention) String() string {
	return rc.Name()
}

// Adjust returns the roll day of the month of the date, at midnight in the
// location of the date. None returns the date as given.
func (rc RollConvention) Adjust(date time.Time) time.Time {
	year, month, _ := date.Date()
	loc := date.Location()

	switch rc {
	case EOM:
		// Day zero of the next month normalizes to the last day of this one.
		return time.Date(year, month+1, 0, 0, 0, 0, 0, loc)
	case IMM:
		return weekdayInMonth(year, month, 3, time.Wednesday, loc)
	case IMMAUD:
		return weekdayInMonth(year, month, 2, time.Friday, loc).AddDate(0, 0, -1)
	case IMMNZD:
		return nextOrSame(time.Date(year, month, 9, 0, 0, 0, 0, loc), time.Wednesday)
	case SFE:
		return weekdayInMonth(year, month, 2, time.Friday, loc)
	default:
		return date
	}
}

// MarshalText implements encoding.TextMarshaler.
func (rc RollConvention) MarshalText() ([]byte, error) {
	if rc < 0 || int(rc) >= len(rollConventionNames) {
		return nil, fmt.Errorf("cannot marshal %s", rc.Name())
	}
	return []byte(rc.Name()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (rc *RollConvention) UnmarshalText(text []byte) error {
	parsed, err := RollConventionOf(string(text))
	if err != nil {
		return err
	}
	*rc = parsed
	return nil
}

// MarshalZerologObject implements zerolog object marshalling.
func (rc RollConvention) MarshalZerologObject(e *zerolog.Event) {
	e.Str("roll_convention", rc.Name())
}

// weekdayInMonth returns the nth occurrence of the weekday in the month.
func weekdayInMonth(year int, month time.Month, n int, weekday time.Weekday, loc *time.Location) time.Time {
	first := nextOrSame(time.Date(year, month, 1, 0, 0, 0, 0, loc), weekday)
	return first.AddDate(0, 0, 7*(n-1))
}

func nextOrSame(date time.Time, weekday time.Weekday) time.Time {
	offset := (int(weekday) - int(date.Weekday()) + 7) % 7
	return date.AddDate(0, 0, offset)
}

// ErrUnknownConvention is matched by the error returned when looking up a
// roll convention name that does not exist.
var ErrUnknownConvention = errors.New("unknown roll convention")

// UnknownConventionError occurs when a roll convention name is not found.
type UnknownConventionError struct {
	error
	name string
}

// Name is the name that was looked up.
func (err UnknownConventionError) Name() string {
	return err.name
}

// Unwrap returns the inner, wrapped error.
func (err UnknownConventionError) Unwrap() error {
	return err.error
}

// MarshalZerologObject implements zerolog object marshalling.
func (err UnknownConventionError) MarshalZerologObject(e *zerolog.Event) {
	e.Err(err.error).Str("name", err.name)
}

// DetailsMetadata returns the metadata for details for this error.
func (err UnknownConventionError) DetailsMetadata() map[string]string {
	return map[string]string{
		"name": err.name,
	}
}

// NewUnknownConventionErr constructs a new unknown roll convention error.
func NewUnknownConventionErr(name string) error {
	return UnknownConventionError{
		error: fmt.Errorf("%w: %q", ErrUnknownConvention, name),
		name:  name,
	}
}
