package reference

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"
)

// ErrDisabled is returned by NewProvider when no reference provider is configured
var ErrDisabled = errors.New("reference transcriptions disabled")

// Provider defines the interface for reference IPA transcribers
type Provider interface {
	// Transcribe returns the IPA transcription of a single Spanish word
	Transcribe(ctx context.Context, word string) (string, error)

	// Name returns the provider name
	Name() string

	// IsAvailable checks if the provider is properly configured and available
	IsAvailable() error
}

// Config holds common configuration for reference providers
type Config struct {
	Provider string // "openai", "gemini", "espeak", "goruut" or "none"
	Dialect  string // BCP 47 tag passed on to the prompt or voice

	// OpenAI-specific settings
	OpenAIKey   string
	OpenAIModel string

	// Gemini-specific settings
	GeminiKey   string
	GeminiModel string

	// espeak-ng settings
	ESpeakBinary string
	ESpeakVoice  string // derived from Dialect when empty

	Timeout     time.Duration
	CacheDir    string
	EnableCache bool
}

// DefaultProviderConfig returns default configuration
func DefaultProviderConfig() *Config {
	return &Config{
		Provider:     "none",
		Dialect:      "es-ES",
		OpenAIModel:  "gpt-4o-mini",
		GeminiModel:  "gemini-2.0-flash",
		ESpeakBinary: "espeak-ng",
		Timeout:      30 * time.Second,
		CacheDir:     "./.silabario_cache",
		EnableCache:  false,
	}
}

// NewProvider creates the reference provider named in the configuration.
// It returns ErrDisabled for "none" and the empty name.
func NewProvider(config *Config) (Provider, error) {
	if config == nil {
		config = DefaultProviderConfig()
	}

	var (
		p   Provider
		err error
	)
	switch config.Provider {
	case "", "none":
		return nil, ErrDisabled
	case "openai":
		p, err = NewOpenAIProvider(config)
	case "gemini":
		p, err = NewGeminiProvider(context.Background(), config)
	case "espeak":
		p, err = NewEspeakProvider(config)
	case "goruut":
		p = NewGoruutProvider()
	default:
		return nil, fmt.Errorf("unknown reference provider: %s", config.Provider)
	}
	if err != nil {
		return nil, err
	}

	if config.EnableCache && config.CacheDir != "" {
		return NewCachedProvider(p, config.CacheDir, config.Dialect)
	}
	return p, nil
}

// ProviderWithFallback wraps a primary provider with a fallback option
type ProviderWithFallback struct {
	primary  Provider
	fallback Provider
}

// NewProviderWithFallback creates a provider that falls back to secondary if primary fails
func NewProviderWithFallback(primary, fallback Provider) Provider {
	return &ProviderWithFallback{
		primary:  primary,
		fallback: fallback,
	}
}

// Transcribe tries the primary provider first and the fallback on error
func (p *ProviderWithFallback) Transcribe(ctx context.Context, word string) (string, error) {
	ipa, err := p.primary.Transcribe(ctx, word)
	if err != nil {
		slog.Warn("reference provider failed, falling back",
			"primary", p.primary.Name(), "fallback", p.fallback.Name(), "word", word, "error", err)
		return p.fallback.Transcribe(ctx, word)
	}
	return ipa, nil
}

// Name returns the provider name
func (p *ProviderWithFallback) Name() string {
	return fmt.Sprintf("%s (fallback: %s)", p.primary.Name(), p.fallback.Name())
}

// IsAvailable checks if at least one provider is available
func (p *ProviderWithFallback) IsAvailable() error {
	primaryErr := p.primary.IsAvailable()
	if primaryErr == nil {
		return nil
	}

	fallbackErr := p.fallback.IsAvailable()
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("both providers unavailable: primary=%v, fallback=%v",
		primaryErr, fallbackErr)
}

// newBreaker guards a remote API. Five consecutive failures open the
// breaker for a minute.
func newBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Info("circuit breaker state changed", "breaker", name, "from", from.String(), "to", to.String())
		},
	})
}

// callThrough runs fn inside the breaker and unwraps its string result
func callThrough(cb *gobreaker.CircuitBreaker, fn func() (string, error)) (string, error) {
	out, err := cb.Execute(func() (interface{}, error) {
		s, err := fn()
		return s, err
	})
	if err != nil {
		return "", err
	}
	return out.(string), nil
}
