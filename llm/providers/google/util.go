package google

import (
	"fmt"

	"github.com/deepnoodle-ai/veostudio/llm"
	"github.com/deepnoodle-ai/veostudio/schema"
	"github.com/google/uuid"
	"google.golang.org/genai"
)

var genaiTypes = map[string]genai.Type{
	schema.Object:  genai.TypeObject,
	schema.String:  genai.TypeString,
	schema.Integer: genai.TypeInteger,
	schema.Number:  genai.TypeNumber,
	schema.Boolean: genai.TypeBoolean,
	schema.Array:   genai.TypeArray,
}

// contentsFromMessages converts messages to genai contents. Gemini uses
// "model" where we use "assistant".
func contentsFromMessages(messages []*llm.Message) ([]*genai.Content, error) {
	if len(messages) == 0 {
		return nil, fmt.Errorf("no messages provided")
	}
	contents := make([]*genai.Content, 0, len(messages))
	for i, message := range messages {
		if message.Text == "" {
			return nil, fmt.Errorf("empty message detected (index %d)", i)
		}
		role := string(message.Role)
		if message.Role == llm.Assistant {
			role = "model"
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []*genai.Part{genai.NewPartFromText(message.Text)},
		})
	}
	return contents, nil
}

// convertSchema converts a declared schema to the genai schema format.
func convertSchema(s *schema.Schema) *genai.Schema {
	if s == nil {
		return nil
	}
	result := &genai.Schema{
		Type:        genaiTypes[s.Type],
		Description: s.Description,
		Required:    s.Required,
	}
	if s.Properties != nil {
		result.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, prop := range s.Properties {
			result.Properties[name] = convertProperty(prop)
		}
	}
	return result
}

func convertProperty(prop *schema.Property) *genai.Schema {
	if prop == nil {
		return nil
	}
	result := &genai.Schema{
		Type:        genaiTypes[prop.Type],
		Description: prop.Description,
		Enum:        prop.Enum,
		Minimum:     prop.Minimum,
		Maximum:     prop.Maximum,
		Required:    prop.Required,
	}
	if prop.Items != nil {
		result.Items = convertProperty(prop.Items)
	}
	if prop.Properties != nil {
		result.Properties = make(map[string]*genai.Schema, len(prop.Properties))
		for name, nested := range prop.Properties {
			result.Properties[name] = convertProperty(nested)
		}
	}
	return result
}

// convertResponse converts a genai response to an llm.Response.
func convertResponse(resp *genai.GenerateContentResponse, model string) (*llm.Response, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("empty response from google genai")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil {
		return nil, fmt.Errorf("no content in response")
	}

	var text string
	for _, part := range candidate.Content.Parts {
		text += part.Text
	}

	var usage llm.Usage
	if resp.UsageMetadata != nil {
		usage = llm.Usage{
			InputTokens:  int(resp.UsageMetadata.PromptTokenCount),
			OutputTokens: int(resp.UsageMetadata.CandidatesTokenCount),
		}
	}

	stopReason := "other"
	switch candidate.FinishReason {
	case genai.FinishReasonStop:
		stopReason = "stop"
	case genai.FinishReasonMaxTokens:
		stopReason = "max_tokens"
	}

	return &llm.Response{
		ID:         fmt.Sprintf("google_%s", uuid.NewString()),
		Model:      model,
		Role:       llm.Assistant,
		Text:       text,
		StopReason: stopReason,
		Usage:      usage,
	}, nil
}
