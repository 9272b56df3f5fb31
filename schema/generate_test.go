package schema

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type testMeta struct {
	Title string `json:"title" description:"Display name"`
	Notes string `json:"notes,omitempty"`
}

type testSettings struct {
	Mode    string   `json:"mode" description:"Render mode" enum:"draft,final"`
	Seconds int      `json:"seconds" minimum:"1" maximum:"60"`
	Scale   float64  `json:"scale"`
	Debug   bool     `json:"debug"`
	Tags    []string `json:"tags"`
	Skipped string   `json:"-"`
}

type testRoot struct {
	Meta     testMeta     `json:"meta"`
	Settings testSettings `json:"settings"`
}

func TestGenerate(t *testing.T) {
	s, err := Generate(testRoot{})
	require.NoError(t, err)
	require.Equal(t, Object, s.Type)
	require.NotNil(t, s.AdditionalProperties)
	require.False(t, *s.AdditionalProperties)
	require.ElementsMatch(t, []string{"meta", "settings"}, s.Required)

	meta := s.Properties["meta"]
	require.NotNil(t, meta)
	require.Equal(t, Object, meta.Type)
	require.Equal(t, "Display name", meta.Properties["title"].Description)

	// omitempty fields are optional
	require.ElementsMatch(t, []string{"title"}, meta.Required)

	settings := s.Properties["settings"]
	require.NotNil(t, settings)
	require.Equal(t, []string{"draft", "final"}, settings.Properties["mode"].Enum)

	seconds := settings.Properties["seconds"]
	require.Equal(t, Integer, seconds.Type)
	require.NotNil(t, seconds.Minimum)
	require.Equal(t, 1.0, *seconds.Minimum)
	require.NotNil(t, seconds.Maximum)
	require.Equal(t, 60.0, *seconds.Maximum)

	require.Equal(t, Number, settings.Properties["scale"].Type)
	require.Equal(t, Boolean, settings.Properties["debug"].Type)

	tags := settings.Properties["tags"]
	require.Equal(t, Array, tags.Type)
	require.Equal(t, String, tags.Items.Type)

	// json:"-" fields are excluded
	require.NotContains(t, settings.Properties, "Skipped")
	require.NotContains(t, settings.Properties, "-")
}

func TestGeneratePointer(t *testing.T) {
	s, err := Generate(&testMeta{})
	require.NoError(t, err)
	require.Equal(t, Object, s.Type)
	require.Contains(t, s.Properties, "title")
}

func TestGenerateRejectsNonStructs(t *testing.T) {
	_, err := Generate(nil)
	require.Error(t, err)

	_, err = Generate("text")
	require.Error(t, err)

	_, err = Generate(42)
	require.Error(t, err)
}
