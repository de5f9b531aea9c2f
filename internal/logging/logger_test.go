package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func swapGlobalLogger(t *testing.T, logger zerolog.Logger) {
	t.Helper()

	original := Logger
	t.Cleanup(func() {
		SetGlobalLogger(original)
	})
	SetGlobalLogger(logger)
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestDefaultLoggerDiscards(t *testing.T) {
	require.Equal(t, zerolog.Disabled, zerolog.Nop().GetLevel())
	// The package starts out with a Nop logger, so nothing is ever enabled.
	require.False(t, Info().Enabled())
}

func TestSetGlobalLogger(t *testing.T) {
	var buf bytes.Buffer
	swapGlobalLogger(t, zerolog.New(&buf))

	Info().Str("key", "value").Msg("hello")

	entry := decodeLine(t, &buf)
	require.Equal(t, "hello", entry["message"])
	require.Equal(t, "value", entry["key"])
	require.Equal(t, "info", entry["level"])
}

func TestSetGlobalLoggerUpdatesContextDefault(t *testing.T) {
	var buf bytes.Buffer
	swapGlobalLogger(t, zerolog.New(&buf))

	// No logger is attached to the context, so the global one is used.
	Ctx(context.Background()).Warn().Msg("from context")

	entry := decodeLine(t, &buf)
	require.Equal(t, "from context", entry["message"])
	require.Equal(t, "warn", entry["level"])
}

func TestComponent(t *testing.T) {
	var buf bytes.Buffer
	swapGlobalLogger(t, zerolog.New(&buf))

	logger := Component("propertyset")
	logger.Info().Msg("tagged")

	entry := decodeLine(t, &buf)
	require.Equal(t, "propertyset", entry["component"])
}

func TestLevelHelpers(t *testing.T) {
	globalLevel := zerolog.GlobalLevel()
	t.Cleanup(func() {
		zerolog.SetGlobalLevel(globalLevel)
	})
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	var buf bytes.Buffer
	swapGlobalLogger(t, zerolog.New(&buf).Level(zerolog.TraceLevel))

	tcs := []struct {
		name     string
		event    func() *zerolog.Event
		expected string
	}{
		{"trace", Trace, "trace"},
		{"debug", Debug, "debug"},
		{"info", Info, "info"},
		{"warn", Warn, "warn"},
		{"error", Error, "error"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			buf.Reset()
			tc.event().Msg(tc.name)
			require.Equal(t, tc.expected, decodeLine(t, &buf)["level"])
		})
	}
}
