package reference

import (
	"context"
	"fmt"

	"github.com/sony/gobreaker"
	"google.golang.org/genai"
)

// GeminiProvider asks a Gemini model for a broad IPA transcription
type GeminiProvider struct {
	client  *genai.Client
	config  *Config
	breaker *gobreaker.CircuitBreaker
}

// NewGeminiProvider creates a new Gemini reference provider
func NewGeminiProvider(ctx context.Context, config *Config) (Provider, error) {
	if config.GeminiKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  config.GeminiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiProvider{
		client:  client,
		config:  config,
		breaker: newBreaker("gemini-reference"),
	}, nil
}

// Transcribe fetches the IPA transcription of word
func (p *GeminiProvider) Transcribe(ctx context.Context, word string) (string, error) {
	if word == "" {
		return "", fmt.Errorf("word cannot be empty")
	}

	if p.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.config.Timeout)
		defer cancel()
	}

	prompt := systemPrompt(p.config.Dialect) + "\n\nWord: " + word

	return callThrough(p.breaker, func() (string, error) {
		resp, err := p.client.Models.GenerateContent(ctx, p.config.GeminiModel, genai.Text(prompt), nil)
		if err != nil {
			return "", fmt.Errorf("Gemini API error: %w", err)
		}
		text := resp.Text()
		if text == "" {
			return "", fmt.Errorf("no response from Gemini")
		}
		return firstLine(text), nil
	})
}

// Name returns the provider name
func (p *GeminiProvider) Name() string {
	return "gemini"
}

// IsAvailable checks if the provider is properly configured
func (p *GeminiProvider) IsAvailable() error {
	if p.config.GeminiKey == "" {
		return fmt.Errorf("Gemini API key not configured")
	}
	return nil
}
