package veostudio

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/deepnoodle-ai/veostudio/llm"
	"github.com/deepnoodle-ai/veostudio/schema"
	"github.com/deepnoodle-ai/veostudio/slogger"
	"github.com/deepnoodle-ai/veostudio/veo"
)

const (
	// DefaultModel is the model targeted when none is configured.
	DefaultModel = "gemini-3-pro-preview"

	// DefaultTemperature is the fixed creativity setting for structuring
	// calls. It is deployment configuration, not a per-call knob.
	DefaultTemperature = 0.9
)

var systemInstruction = strings.TrimSpace(`
You are a professional Prompt Architect for Google Veo 3.1.
Your task is to take a raw user idea and expand it into a rich, detailed, cinematic structure.

**LANGUAGE RULE:** Generate all content in the SAME language as the user input.

Expand into 8 narrative elements:
1. Subject: Appearance, clothing, texture.
2. Action: Movement, physics.
3. Context: Environment, lighting, weather.
4. Cinematography: Camera type, angles, movement.
5. Style: Art style, film stock, color grading.
6. Ambient Music: Mood, tempo.
7. SFX: Diegetic sounds.
8. Dialogue: Optional.

Infer technical settings suitable for the content.
Return strictly JSON.
`)

// sectionKeys are the four top-level keys the model's output must contain.
var sectionKeys = []string{
	"project_meta",
	"video_5_elements",
	"audio_3_elements",
	"technical_settings",
}

// StructurerOptions configures a Structurer. Model is required.
type StructurerOptions struct {
	Model       llm.LLM
	ModelID     string
	Temperature *float64
	Logger      slogger.Logger
	Clock       func() time.Time
}

// Structurer expands a free-text idea into a veo.PromptSpec with exactly one
// schema-constrained model call per invocation.
type Structurer struct {
	model       llm.LLM
	modelID     string
	temperature float64
	logger      slogger.Logger
	clock       func() time.Time
}

// NewStructurer creates a Structurer.
func NewStructurer(opts StructurerOptions) (*Structurer, error) {
	if opts.Model == nil {
		return nil, fmt.Errorf("model is required")
	}
	s := &Structurer{
		model:       opts.Model,
		modelID:     opts.ModelID,
		temperature: DefaultTemperature,
		logger:      opts.Logger,
		clock:       opts.Clock,
	}
	if s.modelID == "" {
		s.modelID = DefaultModel
	}
	if opts.Temperature != nil {
		s.temperature = *opts.Temperature
	}
	if s.logger == nil {
		s.logger = slogger.DefaultLogger
	}
	if s.clock == nil {
		s.clock = time.Now
	}
	return s, nil
}

// Structure issues one request and returns the resulting spec. The caller
// must validate that title and idea are non-empty beforehand. On any failure
// a *StructureError is returned and no spec; there are no retries and no
// partial results.
func (s *Structurer) Structure(ctx context.Context, title, idea string) (*veo.PromptSpec, error) {
	responseSchema, err := schema.Generate(veo.PromptSpec{})
	if err != nil {
		return nil, &StructureError{Stage: StageRequest, Err: err}
	}

	s.logger.Info("structuring idea", "model", s.modelID, "title", title)

	response, err := s.model.Generate(ctx,
		llm.WithModel(s.modelID),
		llm.WithTemperature(s.temperature),
		llm.WithSystemPrompt(systemInstruction),
		llm.WithUserTextMessage(idea),
		llm.WithResponseFormat(&llm.ResponseFormat{
			Type:        llm.ResponseFormatTypeJSONSchema,
			Schema:      responseSchema,
			Name:        "veo_prompt_spec",
			Description: "Structured Veo video prompt",
		}),
	)
	if err != nil {
		s.logger.Error("structuring request failed", "error", err)
		return nil, &StructureError{Stage: StageRequest, Err: err}
	}

	spec, err := decodeSpec(response.Text)
	if err != nil {
		s.logger.Error("structuring output rejected", "error", err)
		return nil, err
	}

	// The model's own title suggestion is discarded, and created_at always
	// reflects the moment of successful parse.
	spec.ProjectMeta.Title = title
	spec.ProjectMeta.CreatedAt = s.clock().Format(veo.TimeLayout)

	s.logger.Info("structuring succeeded",
		"title", spec.ProjectMeta.Title,
		"tokens", response.Usage.OutputTokens)
	return spec, nil
}

// decodeSpec parses model output, treating it as untrusted input: the four
// canonical sections must all be present before the payload is accepted.
func decodeSpec(text string) (*veo.PromptSpec, error) {
	var sections map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &sections); err != nil {
		return nil, &StructureError{Stage: StageDecode, Err: err}
	}
	for _, key := range sectionKeys {
		if _, ok := sections[key]; !ok {
			return nil, &StructureError{
				Stage: StageValidate,
				Err:   fmt.Errorf("response is missing the %q section", key),
			}
		}
	}
	var spec veo.PromptSpec
	if err := json.Unmarshal([]byte(text), &spec); err != nil {
		return nil, &StructureError{Stage: StageDecode, Err: err}
	}
	return &spec, nil
}
