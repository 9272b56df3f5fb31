package veostudio

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/deepnoodle-ai/veostudio/llm"
	"github.com/deepnoodle-ai/veostudio/veo"
	"github.com/stretchr/testify/require"
)

func TestSessionDefaults(t *testing.T) {
	session := NewSession()
	spec := session.Spec()
	require.Equal(t, "untitled_project", session.ProjectName())
	require.Equal(t, "16:9", spec.TechnicalSettings.AspectRatio)
	require.Equal(t, "720p", spec.TechnicalSettings.Resolution)
	require.Equal(t, 8, spec.TechnicalSettings.DurationSec)
}

func TestSessionTitleSync(t *testing.T) {
	session := NewSession()
	session.SetTitle("my film")
	require.Equal(t, "my film", session.ProjectName())
	require.Equal(t, "my film", session.Spec().ProjectMeta.Title)
}

func TestSessionEditsPreserveCreatedAt(t *testing.T) {
	session := NewSession()
	created := session.Spec().ProjectMeta.CreatedAt

	session.SetTitle("renamed")
	session.SetSubject("a fox")
	session.SetDuration(30)
	session.SetAspectRatio("9:16")

	require.Equal(t, created, session.Spec().ProjectMeta.CreatedAt)
}

func TestSessionEnumFallbacks(t *testing.T) {
	session := NewSession()

	session.SetAspectRatio("21:9")
	require.Equal(t, "16:9", session.Spec().TechnicalSettings.AspectRatio)

	session.SetResolution("4k")
	require.Equal(t, "1080p", session.Spec().TechnicalSettings.Resolution)

	session.SetAspectRatio("9:16")
	require.Equal(t, "9:16", session.Spec().TechnicalSettings.AspectRatio)
}

func TestSessionDurationClamp(t *testing.T) {
	session := NewSession()

	session.SetDuration(0)
	require.Equal(t, 1, session.Spec().TechnicalSettings.DurationSec)

	session.SetDuration(60)
	require.Equal(t, 60, session.Spec().TechnicalSettings.DurationSec)

	session.SetDuration(61)
	require.Equal(t, 60, session.Spec().TechnicalSettings.DurationSec)
}

func TestSessionExport(t *testing.T) {
	session := NewSession()
	session.Replace(veo.PromptSpec{
		ProjectMeta: veo.ProjectMeta{
			Title:     "cyberpunk robot",
			CreatedAt: "2024-05-01T10:00:00",
		},
		TechnicalSettings: veo.TechnicalSettings{
			AspectRatio: "16:9",
			Resolution:  "1080p",
			DurationSec: 8,
		},
	})

	data, name, err := session.Export()
	require.NoError(t, err)
	require.Equal(t, "cyberpunk_robot_2024-05-01.json", name)
	require.NotEmpty(t, data)

	// Export must not change the held state.
	again, _, err := session.Export()
	require.NoError(t, err)
	require.Equal(t, data, again)
}

func TestFailedStructuringLeavesSessionUnchanged(t *testing.T) {
	session := NewSession()
	session.SetTitle("keep me")
	session.SetSubject("original subject")

	before, _, err := session.Export()
	require.NoError(t, err)

	model := &mockLLM{err: errors.New("network down")}
	s := newTestStructurer(t, model, time.Now)

	spec, err := s.Structure(context.Background(), "keep me", "a new idea")
	require.Error(t, err)
	require.Nil(t, spec)
	// No spec came back, so there is nothing to Replace with.

	after, _, err := session.Export()
	require.NoError(t, err)
	require.Equal(t, before, after)
}

func TestSuccessfulStructuringReplacesWholesale(t *testing.T) {
	session := NewSession()
	session.SetSubject("stale subject")

	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	model := &mockLLM{response: &llm.Response{Text: modelOutput}}
	s := newTestStructurer(t, model, func() time.Time { return now })

	spec, err := s.Structure(context.Background(), "cyberpunk robot", "a robot in the rain")
	require.NoError(t, err)
	session.Replace(*spec)

	require.Equal(t, "cyberpunk robot", session.ProjectName())
	require.Equal(t, "a chrome-plated robot with glowing blue optics", session.Spec().VideoElements.Subject)

	_, name, err := session.Export()
	require.NoError(t, err)
	require.Equal(t, "cyberpunk_robot_2024-05-01.json", name)
}
