package logging

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "info", want: slog.LevelInfo},
		{in: "", want: slog.LevelInfo},
		{in: "warn", want: slog.LevelWarn},
		{in: "warning", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: " Debug ", want: slog.LevelDebug},
		{in: "verbose", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "ParseLevel(%q)", tt.in)
			continue
		}

		require.NoError(t, err, "ParseLevel(%q)", tt.in)
		assert.Equal(t, tt.want, got, "ParseLevel(%q)", tt.in)
	}
}

func TestController_SetLevel(t *testing.T) {
	ctrl, err := New("info", false)
	require.NoError(t, err)

	assert.Equal(t, slog.LevelInfo, ctrl.Level())

	require.NoError(t, ctrl.SetLevel("debug"))
	assert.Equal(t, slog.LevelDebug, ctrl.Level())

	// A bad level leaves the current one in place
	require.Error(t, ctrl.SetLevel("loud"))
	assert.Equal(t, slog.LevelDebug, ctrl.Level())
}

func TestController_LoggerRespectsLevel(t *testing.T) {
	ctrl, err := New("error", true)
	require.NoError(t, err)

	logger := ctrl.Logger()
	require.NotNil(t, logger)

	assert.False(t, logger.Enabled(t.Context(), slog.LevelInfo))
	assert.True(t, logger.Enabled(t.Context(), slog.LevelError))
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New("nope", false)
	assert.Error(t, err)
}
