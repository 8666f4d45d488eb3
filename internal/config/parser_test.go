package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	learnererrors "github.com/alexisbeaulieu97/learner/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	require.NoError(t, ValidateConfig(cfg))
	require.Equal(t, "Swift", cfg.Screen.Placeholder)
	require.Equal(t, "Swift", cfg.Screen.FallbackTopic)
	require.Equal(t, "bell", cfg.Feedback.Mode)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestParseConfigOverlaysDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
screen:
  fallback_topic: Go
  alt_screen: true
log:
  level: debug
`)
	cfg, err := ParseConfig(path)
	require.NoError(t, err)
	require.Equal(t, "Swift", cfg.Screen.Placeholder)
	require.Equal(t, "Go", cfg.Screen.FallbackTopic)
	require.True(t, cfg.Screen.AltScreen)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, "bell", cfg.Feedback.Mode)
}

func TestParseConfigEmptyFileYieldsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := ParseConfig(writeConfig(t, ""))
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
}

func TestParseConfigReportsSyntaxLine(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "screen:\n\tplaceholder: Go\n")
	_, err := ParseConfig(path)
	require.Error(t, err)

	var parseErr *learnererrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, path, parseErr.Path)
	require.Positive(t, parseErr.Line)
}

func TestParseConfigValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		field   string
	}{
		{"unknown feedback mode", "feedback:\n  mode: buzz\n", "feedback.mode"},
		{"unknown threshold", "feedback:\n  threshold: strong\n", "feedback.threshold"},
		{"unknown log level", "log:\n  level: loud\n", "log.level"},
		{"empty placeholder", "screen:\n  placeholder: \"\"\n", "screen.placeholder"},
		{"multi-line fallback", "screen:\n  fallback_topic: \"Go\\nRust\"\n", "screen.fallback_topic"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseConfig(writeConfig(t, tt.content))
			require.Error(t, err)

			var valErr *learnererrors.ValidationError
			require.ErrorAs(t, err, &valErr)
			require.Equal(t, tt.field, valErr.Field)
			require.Contains(t, valErr.Message, tt.field)
		})
	}
}

func TestParseConfigMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	require.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestLoadExplicitPath(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "feedback:\n  mode: none\n")
	cfg, used, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, path, used)
	require.Equal(t, "none", cfg.Feedback.Mode)

	_, _, err = Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)

	cfg, used, err := Load("")
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
	require.Empty(t, used)
}

func TestValidateConfigRejectsNil(t *testing.T) {
	t.Parallel()

	require.Error(t, ValidateConfig(nil))
}
