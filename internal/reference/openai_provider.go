package reference

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"
)

// OpenAIProvider asks an OpenAI chat model for a broad IPA transcription
type OpenAIProvider struct {
	client  *openai.Client
	config  *Config
	breaker *gobreaker.CircuitBreaker
}

// NewOpenAIProvider creates a new OpenAI reference provider
func NewOpenAIProvider(config *Config) (Provider, error) {
	if config.OpenAIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	return &OpenAIProvider{
		client:  openai.NewClient(config.OpenAIKey),
		config:  config,
		breaker: newBreaker("openai-reference"),
	}, nil
}

// Transcribe fetches the IPA transcription of word
func (p *OpenAIProvider) Transcribe(ctx context.Context, word string) (string, error) {
	if word == "" {
		return "", fmt.Errorf("word cannot be empty")
	}

	if p.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.config.Timeout)
		defer cancel()
	}

	req := openai.ChatCompletionRequest{
		Model: p.config.OpenAIModel,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt(p.config.Dialect),
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: word,
			},
		},
		Temperature: 0,
		MaxTokens:   60,
	}

	return callThrough(p.breaker, func() (string, error) {
		resp, err := p.client.CreateChatCompletion(ctx, req)
		if err != nil {
			return "", fmt.Errorf("OpenAI API error: %w", err)
		}
		if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
			return "", fmt.Errorf("no response from OpenAI")
		}
		return firstLine(resp.Choices[0].Message.Content), nil
	})
}

// Name returns the provider name
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// IsAvailable checks if the provider is properly configured
func (p *OpenAIProvider) IsAvailable() error {
	if p.config.OpenAIKey == "" {
		return fmt.Errorf("OpenAI API key not configured")
	}
	return nil
}

// systemPrompt is shared by the chat-model providers
func systemPrompt(dialect string) string {
	return fmt.Sprintf(`You are a Spanish phonetics expert. Reply with the broad IPA transcription of the Spanish word you are given, as spoken in the %s variety.
Separate syllables with "." and put "ˈ" before the stressed syllable.
Reply with the transcription only: no slashes, no brackets, no explanation.`, dialect)
}

// firstLine trims model chatter around the transcription
func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.Trim(strings.TrimSpace(s), "/[]`")
}
