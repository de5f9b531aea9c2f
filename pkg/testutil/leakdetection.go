package testutil

import (
	"testing"

	"go.uber.org/goleak"
)

// GoLeakIgnores returns the goroutines that are expected to outlive a test.
func GoLeakIgnores() []goleak.Option {
	return []goleak.Option{
		goleak.IgnoreCurrent(),
	}
}

// VerifyNoLeaks fails the test if it started goroutines that are still
// running when it finishes.
func VerifyNoLeaks(t *testing.T) {
	t.Helper()

	ignores := GoLeakIgnores()
	t.Cleanup(func() {
		goleak.VerifyNone(t, ignores...)
	})
}
