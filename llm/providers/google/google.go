// Package google implements the llm.LLM interface against the Google
// Gemini API using the google.golang.org/genai SDK.
package google

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/deepnoodle-ai/veostudio/llm"
	"github.com/deepnoodle-ai/veostudio/slogger"
	"google.golang.org/genai"
)

const ProviderName = "google"

var (
	DefaultModel     = ModelGemini3ProPreview
	DefaultMaxTokens = 4096
)

var _ llm.LLM = &Provider{}

type Provider struct {
	client    *genai.Client
	apiKey    string
	model     string
	maxTokens int
	logger    slogger.Logger
	mutex     sync.Mutex
}

// New creates a Provider. The API key is taken from the options or, if
// unset, from GEMINI_API_KEY then GOOGLE_API_KEY.
func New(opts ...Option) *Provider {
	var apiKey string
	if value := os.Getenv("GEMINI_API_KEY"); value != "" {
		apiKey = value
	} else if value := os.Getenv("GOOGLE_API_KEY"); value != "" {
		apiKey = value
	}
	p := &Provider{
		apiKey:    apiKey,
		model:     DefaultModel,
		maxTokens: DefaultMaxTokens,
		logger:    slogger.DefaultLogger,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Provider) initClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.client != nil {
		return p.client, nil
	}
	if apiKey == "" {
		apiKey = p.apiKey
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create google genai client: %w", err)
	}
	p.client = client
	return p.client, nil
}

func (p *Provider) Name() string {
	return ProviderName
}

// Generate issues exactly one GenerateContent call. No retries are made;
// a failed call is reported to the caller as-is.
func (p *Provider) Generate(ctx context.Context, opts ...llm.Option) (*llm.Response, error) {
	config := &llm.Config{}
	config.Apply(opts...)

	client, err := p.initClient(ctx, config.APIKey)
	if err != nil {
		return nil, err
	}

	model := config.Model
	if model == "" {
		model = p.model
	}

	contents, err := contentsFromMessages(config.Messages)
	if err != nil {
		return nil, err
	}

	genConfig := p.buildGenerateConfig(config)

	p.logger.Debug("generating content", "provider", ProviderName, "model", model)

	resp, err := client.Models.GenerateContent(ctx, model, contents, genConfig)
	if err != nil {
		return nil, fmt.Errorf("error generating content: %w", err)
	}

	return convertResponse(resp, model)
}

func (p *Provider) buildGenerateConfig(config *llm.Config) *genai.GenerateContentConfig {
	genConfig := &genai.GenerateContentConfig{}
	if config.Temperature != nil {
		genConfig.Temperature = genai.Ptr(float32(*config.Temperature))
	}
	maxTokens := p.maxTokens
	if config.MaxTokens != nil {
		maxTokens = *config.MaxTokens
	}
	if maxTokens > 0 {
		genConfig.MaxOutputTokens = int32(maxTokens)
	}
	if config.SystemPrompt != "" {
		genConfig.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{genai.NewPartFromText(config.SystemPrompt)},
		}
	}
	if format := config.ResponseFormat; format != nil {
		switch format.Type {
		case llm.ResponseFormatTypeJSON:
			genConfig.ResponseMIMEType = "application/json"
		case llm.ResponseFormatTypeJSONSchema:
			genConfig.ResponseMIMEType = "application/json"
			genConfig.ResponseSchema = convertSchema(format.Schema)
		}
	}
	return genConfig
}
