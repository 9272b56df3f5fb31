package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	settings := Default()
	require.Equal(t, "gemini-3-pro-preview", settings.Model)
	require.Equal(t, 0.9, settings.Temperature)
	require.Equal(t, "info", settings.LogLevel)
}

func TestLoad(t *testing.T) {
	t.Run("empty path returns defaults", func(t *testing.T) {
		settings, err := Load("")
		require.NoError(t, err)
		require.Equal(t, Default(), settings)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := Load("/nonexistent/veostudio.yaml")
		require.Error(t, err)
	})

	t.Run("file values layer over defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "veostudio.yaml")
		content := "model: gemini-2.5-flash\nlog_level: debug\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		settings, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, "gemini-2.5-flash", settings.Model)
		require.Equal(t, "debug", settings.LogLevel)
		// unspecified values keep their defaults
		require.Equal(t, 0.9, settings.Temperature)
	})

	t.Run("malformed yaml is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "veostudio.yaml")
		require.NoError(t, os.WriteFile(path, []byte("model: [unclosed"), 0644))

		_, err := Load(path)
		require.Error(t, err)
	})
}

func TestAPIKeyFromEnv(t *testing.T) {
	t.Run("gemini key takes precedence", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "primary")
		t.Setenv("GOOGLE_API_KEY", "secondary")
		require.Equal(t, "primary", APIKeyFromEnv())
	})

	t.Run("google key is the fallback", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "")
		t.Setenv("GOOGLE_API_KEY", "secondary")
		require.Equal(t, "secondary", APIKeyFromEnv())
	})

	t.Run("empty when neither is set", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "")
		t.Setenv("GOOGLE_API_KEY", "")
		require.Empty(t, APIKeyFromEnv())
	})
}
