// Package veo defines the structured representation of a Veo video prompt:
// project metadata, the five video elements, the three audio elements, and
// the technical settings. The struct tags double as the source for the
// JSON schema passed to the model, so the declared shape and the requested
// shape can never drift apart.
package veo

import (
	"strings"
	"time"
)

// TimeLayout is the ISO-8601 layout used for CreatedAt values.
const TimeLayout = "2006-01-02T15:04:05"

// AspectRatios lists the accepted aspect ratio values. The first entry is
// the fallback when a stored value is not recognized.
var AspectRatios = []string{"16:9", "9:16", "1:1", "4:3", "3:4"}

// Resolutions lists the accepted resolution values. The second entry is the
// fallback when a stored value is not recognized.
var Resolutions = []string{"720p", "1080p"}

// Duration bounds in seconds, inclusive.
const (
	MinDurationSec = 1
	MaxDurationSec = 60
)

// ProjectMeta carries the user-facing name of the project and the timestamp
// of the structuring call that produced it. CreatedAt is set once and is
// never modified by later edits.
type ProjectMeta struct {
	Title     string `json:"title" description:"Snake case title of the video idea."`
	CreatedAt string `json:"created_at" description:"ISO-8601 creation timestamp."`
}

// VideoElements holds the five narrative video fields. Empty strings are
// valid and mean the field is unfilled.
type VideoElements struct {
	Subject        string `json:"subject" description:"The main character or object, a detailed visual description of the main subject."`
	Action         string `json:"action" description:"What the subject is doing."`
	Context        string `json:"context" description:"The environment, lighting, and time of day."`
	Cinematography string `json:"cinematography" description:"Camera angles, movement, and lens choices."`
	Style          string `json:"style" description:"Visual style, color palette, and artistic reference."`
}

// AudioElements holds the three narrative audio fields.
type AudioElements struct {
	AmbientMusic string `json:"ambient_music" description:"Background music mood and instruments."`
	SFX          string `json:"sfx" description:"Specific sound effects synchronous with action."`
	Dialogue     string `json:"dialogue" description:"Spoken words or voiceover. Empty if none."`
}

// TechnicalSettings holds the enumerated and numeric generation settings.
type TechnicalSettings struct {
	AspectRatio string `json:"aspect_ratio" description:"e.g., 16:9, 9:16" enum:"16:9,9:16,1:1,4:3,3:4"`
	Resolution  string `json:"resolution" description:"e.g. 720p, 1080p" enum:"720p,1080p"`
	DurationSec int    `json:"duration_sec" description:"Duration in seconds, typically 8." minimum:"1" maximum:"60"`
}

// PromptSpec is the root aggregate. It owns one of each sub-record by value,
// so an instance is always fully populated and copies are independent.
type PromptSpec struct {
	ProjectMeta       ProjectMeta       `json:"project_meta"`
	VideoElements     VideoElements     `json:"video_5_elements"`
	AudioElements     AudioElements     `json:"audio_3_elements"`
	TechnicalSettings TechnicalSettings `json:"technical_settings"`
}

// New returns a default-initialized PromptSpec: empty narrative fields,
// 16:9 at 720p for 8 seconds, titled "untitled_project".
func New() PromptSpec {
	return PromptSpec{
		ProjectMeta: ProjectMeta{
			Title:     "untitled_project",
			CreatedAt: time.Now().Format(TimeLayout),
		},
		TechnicalSettings: TechnicalSettings{
			AspectRatio: "16:9",
			Resolution:  "720p",
			DurationSec: 8,
		},
	}
}

// NormalizeAspectRatio returns value if it is a recognized aspect ratio and
// the fallback member otherwise. Unrecognized values are not an error.
func NormalizeAspectRatio(value string) string {
	for _, ratio := range AspectRatios {
		if value == ratio {
			return value
		}
	}
	return AspectRatios[0]
}

// NormalizeResolution returns value if it is a recognized resolution and the
// fallback member otherwise.
func NormalizeResolution(value string) string {
	for _, res := range Resolutions {
		if value == res {
			return value
		}
	}
	return Resolutions[1]
}

// ClampDuration constrains a duration to the inclusive [1, 60] range.
func ClampDuration(seconds int) int {
	if seconds < MinDurationSec {
		return MinDurationSec
	}
	if seconds > MaxDurationSec {
		return MaxDurationSec
	}
	return seconds
}

// Normalize applies the enum fallbacks and the duration clamp in place.
func (t *TechnicalSettings) Normalize() {
	t.AspectRatio = NormalizeAspectRatio(t.AspectRatio)
	t.Resolution = NormalizeResolution(t.Resolution)
	t.DurationSec = ClampDuration(t.DurationSec)
}

// SafeTitle converts a display title into its file-name form: surrounding
// whitespace trimmed and interior spaces replaced with underscores.
func SafeTitle(title string) string {
	return strings.ReplaceAll(strings.TrimSpace(title), " ", "_")
}
