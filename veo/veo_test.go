package veo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	spec := New()
	require.Equal(t, "untitled_project", spec.ProjectMeta.Title)
	require.Equal(t, "16:9", spec.TechnicalSettings.AspectRatio)
	require.Equal(t, "720p", spec.TechnicalSettings.Resolution)
	require.Equal(t, 8, spec.TechnicalSettings.DurationSec)

	_, err := time.Parse(TimeLayout, spec.ProjectMeta.CreatedAt)
	require.NoError(t, err)

	// Narrative fields default to empty strings, never absent.
	require.Empty(t, spec.VideoElements.Subject)
	require.Empty(t, spec.AudioElements.Dialogue)
}

func TestNormalizeAspectRatio(t *testing.T) {
	t.Run("recognized values pass through", func(t *testing.T) {
		for _, ratio := range AspectRatios {
			require.Equal(t, ratio, NormalizeAspectRatio(ratio))
		}
	})

	t.Run("unrecognized values fall back silently", func(t *testing.T) {
		require.Equal(t, "16:9", NormalizeAspectRatio("21:9"))
		require.Equal(t, "16:9", NormalizeAspectRatio(""))
	})
}

func TestNormalizeResolution(t *testing.T) {
	t.Run("recognized values pass through", func(t *testing.T) {
		require.Equal(t, "720p", NormalizeResolution("720p"))
		require.Equal(t, "1080p", NormalizeResolution("1080p"))
	})

	t.Run("unrecognized values fall back silently", func(t *testing.T) {
		require.Equal(t, "1080p", NormalizeResolution("4k"))
		require.Equal(t, "1080p", NormalizeResolution(""))
	})
}

func TestClampDuration(t *testing.T) {
	tests := []struct {
		name  string
		input int
		want  int
	}{
		{"below minimum", 0, 1},
		{"at minimum", 1, 1},
		{"typical", 8, 8},
		{"at maximum", 60, 60},
		{"above maximum", 61, 60},
		{"negative", -5, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ClampDuration(tt.input))
		})
	}
}

func TestTechnicalSettingsNormalize(t *testing.T) {
	settings := TechnicalSettings{
		AspectRatio: "21:9",
		Resolution:  "4k",
		DurationSec: 90,
	}
	settings.Normalize()
	require.Equal(t, TechnicalSettings{
		AspectRatio: "16:9",
		Resolution:  "1080p",
		DurationSec: 60,
	}, settings)
}

func TestSafeTitle(t *testing.T) {
	require.Equal(t, "cyberpunk_robot", SafeTitle("cyberpunk robot"))
	require.Equal(t, "a_b_c", SafeTitle("  a b c  "))
}
