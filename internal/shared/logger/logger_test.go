package logger

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warden-inc/warden/internal/shared/config"
)

func TestConditionalSourceHandler(t *testing.T) {
	tests := []struct {
		name             string
		level            slog.Level
		showSourceLevels []slog.Level
		shouldHaveSource bool
	}{
		{"info is quiet by default", slog.LevelInfo, []slog.Level{slog.LevelWarn, slog.LevelError}, false},
		{"warn carries source", slog.LevelWarn, []slog.Level{slog.LevelWarn, slog.LevelError}, true},
		{"error carries source", slog.LevelError, []slog.Level{slog.LevelWarn, slog.LevelError}, true},
		{"info carries source in debug mode", slog.LevelInfo, []slog.Level{slog.LevelDebug, slog.LevelInfo}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			base := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
			log := slog.New(NewConditionalSourceHandler(base, tt.showSourceLevels...))

			log.Log(context.Background(), tt.level, "session lookup")

			assert.Equal(t, tt.shouldHaveSource, strings.Contains(buf.String(), "source="), buf.String())
		})
	}
}

func TestConditionalSourceHandler_KeepsAttrsAndGroups(t *testing.T) {
	var buf bytes.Buffer
	base := slog.NewTextHandler(&buf, nil)
	log := slog.New(NewConditionalSourceHandler(base, slog.LevelError)).With("account_id", 7).WithGroup("req")

	log.Info("authenticated", "path", "/users/me")

	out := buf.String()
	assert.Contains(t, out, "account_id=7")
	assert.Contains(t, out, "req.path=/users/me")
	assert.NotContains(t, out, "source=")
}

func TestInit_JSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "warden.log")
	require.NoError(t, Init(&config.LoggerConfig{Level: "warn", Format: "json", OutputPath: path}, "release"))
	t.Cleanup(func() { SetLevel(slog.LevelInfo) })

	Get().Info("dropped")
	WithComponent("guard").Warnw("session inactive", "account_id", 3)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, `"msg":"session inactive"`)
	assert.Contains(t, out, `"component":"guard"`)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}
