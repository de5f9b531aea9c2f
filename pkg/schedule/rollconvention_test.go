package schedule

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestAdjust(t *testing.T) {
	tcs := []struct {
		convention RollConvention
		input      time.Time
		expected   time.Time
	}{
		{None, date(2014, 1, 3), date(2014, 1, 3)},
		{EOM, date(2014, 1, 3), date(2014, 1, 31)},
		{EOM, date(2014, 2, 28), date(2014, 2, 28)},
		{EOM, date(2016, 2, 1), date(2016, 2, 29)},
		{EOM, date(2014, 4, 30), date(2014, 4, 30)},
		{IMM, date(2014, 1, 3), date(2014, 1, 15)},
		{IMM, date(2014, 2, 28), date(2014, 2, 19)},
		{IMM, date(2015, 9, 1), date(2015, 9, 16)},
		{IMMAUD, date(2014, 1, 3), date(2014, 1, 9)},
		{IMMAUD, date(2016, 2, 29), date(2016, 2, 11)},
		{IMMNZD, date(2014, 1, 3), date(2014, 1, 15)},
		{IMMNZD, date(2014, 2, 20), date(2014, 2, 12)},
		{IMMNZD, date(2015, 9, 30), date(2015, 9, 9)},
		{SFE, date(2014, 1, 3), date(2014, 1, 10)},
		{SFE, date(2024, 5, 31), date(2024, 5, 10)},
	}

	for _, tc := range tcs {
		t.Run(fmt.Sprintf("%s %s", tc.convention, tc.input.Format(time.DateOnly)), func(t *testing.T) {
			require.Equal(t, tc.expected, tc.convention.Adjust(tc.input))
		})
	}
}

func TestAdjustKeepsLocation(t *testing.T) {
	loc := time.FixedZone("NZST", 12*60*60)
	input := time.Date(2014, 1, 20, 15, 30, 0, 0, loc)

	adjusted := IMM.Adjust(input)
	require.Equal(t, time.Date(2014, 1, 15, 0, 0, 0, 0, loc), adjusted)
	require.Equal(t, loc, adjusted.Location())

	require.Equal(t, input, None.Adjust(input))
}

func TestNamesAndLookup(t *testing.T) {
	tcs := []struct {
		convention RollConvention
		name       string
	}{
		{None, "None"},
		{EOM, "EOM"},
		{IMM, "IMM"},
		{IMMAUD, "IMMAUD"},
		{IMMNZD, "IMMNZD"},
		{SFE, "SFE"},
	}

	require.Len(t, RollConventions(), len(tcs))
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.name, tc.convention.Name())
			require.Equal(t, tc.name, tc.convention.String())

			found, err := RollConventionOf(tc.name)
			require.NoError(t, err)
			require.Equal(t, tc.convention, found)
		})
	}
}

func TestLookupUnknown(t *testing.T) {
	for _, name := range []string{"Rubbish", "", "imm", "eom"} {
		t.Run(fmt.Sprintf("%q", name), func(t *testing.T) {
			_, err := RollConventionOf(name)
			require.ErrorIs(t, err, ErrUnknownConvention)

			var ucerr UnknownConventionError
			require.True(t, errors.As(err, &ucerr))
			require.Equal(t, name, ucerr.Name())
			require.Equal(t, map[string]string{"name": name}, ucerr.DetailsMetadata())
		})
	}
}

func TestOutOfRangeName(t *testing.T) {
	require.Equal(t, "RollConvention(42)", RollConvention(42).Name())

	_, err := RollConvention(42).MarshalText()
	require.Error(t, err)
}

func TestTextEncoding(t *testing.T) {
	type config struct {
		Roll RollConvention `json:"roll"`
	}

	encoded, err := json.Marshal(config{Roll: IMMAUD})
	require.NoError(t, err)
	require.JSONEq(t, `{"roll":"IMMAUD"}`, string(encoded))

	var decoded config
	require.NoError(t, json.Unmarshal([]byte(`{"roll":"SFE"}`), &decoded))
	require.Equal(t, SFE, decoded.Roll)

	err = json.Unmarshal([]byte(`{"roll":"Rubbish"}`), &decoded)
	require.ErrorIs(t, err, ErrUnknownConvention)
}

func TestAdjustProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		input := date(
			rapid.IntRange(1900, 2200).Draw(t, "year"),
			time.Month(rapid.IntRange(1, 12).Draw(t, "month")),
			rapid.IntRange(1, 28).Draw(t, "day"),
		)
		convention := rapid.SampledFrom(RollConventions()).Draw(t, "convention")

		adjusted := convention.Adjust(input)
		require.Equal(t, input.Year(), adjusted.Year())
		require.Equal(t, input.Month(), adjusted.Month())
		require.Equal(t, adjusted, convention.Adjust(adjusted), "adjusting must be idempotent")

		// The result only depends on the month.
		firstOfMonth := date(input.Year(), input.Month(), 1)
		if convention != None {
			require.Equal(t, convention.Adjust(firstOfMonth), adjusted)
		}

		switch convention {
		case IMM, IMMNZD:
			require.Equal(t, time.Wednesday, adjusted.Weekday())
		case SFE:
			require.Equal(t, time.Friday, adjusted.Weekday())
			require.True(t, adjusted.Day() >= 8 && adjusted.Day() <= 14)
		case IMMAUD:
			require.Equal(t, time.Thursday, adjusted.Weekday())
		case EOM:
			require.Equal(t, 1, adjusted.AddDate(0, 0, 1).Day())
		}
	})
}
