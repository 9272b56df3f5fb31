package veostudio

import "github.com/deepnoodle-ai/veostudio/veo"

// Session owns the one PromptSpec belonging to an editing session. It is
// replaced wholesale when a structuring call succeeds and mutated field by
// field as the user edits. A Session belongs to a single flow of control
// and is not safe for concurrent use.
type Session struct {
	spec veo.PromptSpec
}

// NewSession returns a session holding a default-initialized spec.
func NewSession() *Session {
	return &Session{spec: veo.New()}
}

// Spec returns a copy of the current spec.
func (s *Session) Spec() veo.PromptSpec {
	return s.spec
}

// ProjectName returns the current display name. The spec's title field is
// the single source of truth for it.
func (s *Session) ProjectName() string {
	return s.spec.ProjectMeta.Title
}

// Replace swaps in a new spec. Only a successful structuring call should
// do this; failures leave the previous spec untouched.
func (s *Session) Replace(spec veo.PromptSpec) {
	s.spec = spec
}

// SetTitle updates the display name. CreatedAt is not affected.
func (s *Session) SetTitle(title string) {
	s.spec.ProjectMeta.Title = title
}

func (s *Session) SetSubject(v string)        { s.spec.VideoElements.Subject = v }
func (s *Session) SetAction(v string)         { s.spec.VideoElements.Action = v }
func (s *Session) SetContext(v string)        { s.spec.VideoElements.Context = v }
func (s *Session) SetCinematography(v string) { s.spec.VideoElements.Cinematography = v }
func (s *Session) SetStyle(v string)          { s.spec.VideoElements.Style = v }

func (s *Session) SetAmbientMusic(v string) { s.spec.AudioElements.AmbientMusic = v }
func (s *Session) SetSFX(v string)          { s.spec.AudioElements.SFX = v }
func (s *Session) SetDialogue(v string)     { s.spec.AudioElements.Dialogue = v }

// SetAspectRatio stores the value, falling back silently to the default
// member when it is not in the recognized set.
func (s *Session) SetAspectRatio(v string) {
	s.spec.TechnicalSettings.AspectRatio = veo.NormalizeAspectRatio(v)
}

// SetResolution stores the value with the same silent fallback rule.
func (s *Session) SetResolution(v string) {
	s.spec.TechnicalSettings.Resolution = veo.NormalizeResolution(v)
}

// SetDuration clamps the value to the accepted range before storing it.
func (s *Session) SetDuration(seconds int) {
	s.spec.TechnicalSettings.DurationSec = veo.ClampDuration(seconds)
}

// Export serializes the current spec and returns the payload together with
// its file name. The spec is not mutated.
func (s *Session) Export() ([]byte, string, error) {
	data, err := s.spec.Marshal()
	if err != nil {
		return nil, "", err
	}
	return data, s.spec.FileName(), nil
}
