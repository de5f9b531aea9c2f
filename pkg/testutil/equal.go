package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// Equaler is implemented by values that define their own equality and can
// describe themselves for diagnostics.
type Equaler[T any] interface {
	Equal(other T) bool
	fmt.Stringer
}

// AreEqual returns whether the expected and found values are equal, via their
// Equal method. If they are not, the returned error shows both sides and a
// diff of their string forms.
func AreEqual[T Equaler[T]](expected, found T, message string, args ...any) error {
	if expected.Equal(found) {
		return nil
	}

	formattedMessage := fmt.Sprintf(message, args...)

	return fmt.Errorf("%s\n\nExpected:\n%s\nActual:\n%s\nDiff:%s",
		formattedMessage,
		indent(expected.String()),
		indent(found.String()),
		cmp.Diff(expected.String(), found.String()))
}

// AreNotEqual is the inverse of AreEqual.
func AreNotEqual[T Equaler[T]](expected, found T, message string, args ...any) error {
	if !expected.Equal(found) {
		return nil
	}

	return fmt.Errorf("%s\n\nExpected values to differ, both are:\n%s",
		fmt.Sprintf(message, args...),
		indent(found.String()))
}

func indent(value string) string {
	lines := strings.Split(value, "\n")
	newLines := make([]string, 0, len(lines))
	for _, line := range lines {
		newLines = append(newLines, "\t"+line)
	}
	return strings.Join(newLines, "\n")
}

// RequireEqual ensures that the expected and found values are equal, via their
// Equal method.
func RequireEqual[T Equaler[T]](t testing.TB, expected, found T, message string, args ...any) {
	t.Helper()
	require.NoError(t, AreEqual(expected, found, message, args...))
}

// RequireNotEqual ensures that the expected and found values differ, via their
// Equal method.
func RequireNotEqual[T Equaler[T]](t testing.TB, expected, found T, message string, args ...any) {
	t.Helper()
	require.NoError(t, AreNotEqual(expected, found, message, args...))
}
