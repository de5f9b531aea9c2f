// Package basics holds small value types shared across financial products.
package basics

import (
	"errors"
	"fmt"
)

// LongShort is a flag that indicates whether a financial instrument is long
// or short.
type LongShort bool

const (
	// Long receives the financial instrument.
	Long LongShort = true

	// Short pays the financial instrument.
	Short LongShort = false
)

// ErrUnknownLongShort is returned when parsing a name that is neither "Long"
// nor "Short".
var ErrUnknownLongShort = errors.New("unknown long/short name")

// LongShortOfLong returns Long if isLong is true and Short otherwise.
func LongShortOfLong(isLong bool) LongShort {
	return LongShort(isLong)
}

// LongShortOf looks up the flag by its exact name.
func LongShortOf(name string) (LongShort, error) {
	switch name {
	case "Long":
		return Long, nil
	case "Short":
		return Short, nil
	case "":
		return Short, fmt.Errorf("%w: name must not be empty", ErrUnknownLongShort)
	default:
		return Short, fmt.Errorf("%w: %q", ErrUnknownLongShort, name)
	}
}

// IsLong returns true for Long.
func (ls LongShort) IsLong() bool { return bool(ls) }

// IsShort returns true for Short.
func (ls LongShort) IsShort() bool { return !bool(ls) }

func (ls LongShort) String() string {
	if ls {
		return "Long"
	}
	return "Short"
}

// MarshalText implements encoding.TextMarshaler.
func (ls LongShort) MarshalText() ([]byte, error) {
	return []byte(ls.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (ls *LongShort) UnmarshalText(text []byte) error {
	parsed, err := LongShortOf(string(text))
	if err != nil {
		return err
	}
	*ls = parsed
	return nil
}
