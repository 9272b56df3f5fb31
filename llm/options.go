package llm

import "github.com/deepnoodle-ai/veostudio/slogger"

// Option is a function that configures LLM calls.
type Option func(*Config)

// Config holds configuration parameters for a generation call.
type Config struct {
	Model          string
	SystemPrompt   string
	APIKey         string
	MaxTokens      *int
	Temperature    *float64
	Messages       []*Message
	ResponseFormat *ResponseFormat
	Logger         slogger.Logger
}

// Apply the given options to the config.
func (c *Config) Apply(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// WithModel sets the model for the generation.
func WithModel(model string) Option {
	return func(config *Config) {
		config.Model = model
	}
}

// WithSystemPrompt sets the system prompt.
func WithSystemPrompt(systemPrompt string) Option {
	return func(config *Config) {
		config.SystemPrompt = systemPrompt
	}
}

// WithAPIKey sets the API key.
func WithAPIKey(apiKey string) Option {
	return func(config *Config) {
		config.APIKey = apiKey
	}
}

// WithMaxTokens sets the max tokens.
func WithMaxTokens(maxTokens int) Option {
	return func(config *Config) {
		config.MaxTokens = &maxTokens
	}
}

// WithTemperature sets the temperature.
func WithTemperature(temperature float64) Option {
	return func(config *Config) {
		config.Temperature = &temperature
	}
}

// WithMessages sets the messages for the generation.
func WithMessages(messages ...*Message) Option {
	return func(config *Config) {
		config.Messages = messages
	}
}

// WithUserTextMessage appends a user message containing the given text.
func WithUserTextMessage(text string) Option {
	return func(config *Config) {
		config.Messages = append(config.Messages, NewUserTextMessage(text))
	}
}

// WithResponseFormat sets the response format.
func WithResponseFormat(format *ResponseFormat) Option {
	return func(config *Config) {
		config.ResponseFormat = format
	}
}

// WithLogger sets the logger.
func WithLogger(logger slogger.Logger) Option {
	return func(config *Config) {
		config.Logger = logger
	}
}
