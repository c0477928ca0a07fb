package translation

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/sashabaranov/go-openai"
)

// Translator handles Spanish to English translation and back
type Translator struct {
	apiKey string
	model  string
	client *openai.Client
}

// NewTranslator creates a new translator instance
func NewTranslator(apiKey string) *Translator {
	return &Translator{
		apiKey: apiKey,
		model:  openai.GPT4oMini,
		client: openai.NewClient(apiKey),
	}
}

// TranslateWord translates a Spanish word to English
func (t *Translator) TranslateWord(ctx context.Context, word string) (string, error) {
	return t.complete(ctx, fmt.Sprintf(
		"Translate the Spanish word '%s' to English. Respond with only the English translation, nothing else.", word))
}

// TranslateToSpanish translates an English word to Spanish, keeping accents
func (t *Translator) TranslateToSpanish(ctx context.Context, word string) (string, error) {
	out, err := t.complete(ctx, fmt.Sprintf(
		"Translate the English word '%s' to Spanish. Respond with a single Spanish word with its written accents, nothing else.", word))
	if err != nil {
		return "", err
	}
	// Models sometimes add an article
	for _, article := range []string{"el ", "la ", "los ", "las "} {
		out = strings.TrimPrefix(out, article)
	}
	return out, nil
}

func (t *Translator) complete(ctx context.Context, prompt string) (string, error) {
	if t.apiKey == "" {
		return "", fmt.Errorf("OpenAI API key not found")
	}

	req := openai.ChatCompletionRequest{
		Model: t.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		MaxTokens:   50,
		Temperature: 0.3,
	}

	resp, err := t.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no translation returned")
	}

	return strings.Trim(strings.TrimSpace(resp.Choices[0].Message.Content), ".'\""), nil
}

// SaveTranslations writes translations as "word = translation" lines,
// sorted by word, in the batch file format so the file can be fed back
// with --batch.
func SaveTranslations(path string, translations map[string]string) error {
	words := make([]string, 0, len(translations))
	for word := range translations {
		words = append(words, word)
	}
	sort.Strings(words)

	var b strings.Builder
	for _, word := range words {
		fmt.Fprintf(&b, "%s = %s\n", word, translations[word])
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create translation directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("failed to write translation file: %w", err)
	}

	return nil
}

// TranslationCache stores translations in memory for batch operations.
// It is safe for concurrent use.
type TranslationCache struct {
	mu           sync.RWMutex
	translations map[string]string
}

// NewTranslationCache creates a new translation cache
func NewTranslationCache() *TranslationCache {
	return &TranslationCache{
		translations: make(map[string]string),
	}
}

// Add adds a translation to the cache
func (tc *TranslationCache) Add(word, translation string) {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	tc.translations[word] = translation
}

// Get retrieves a translation from the cache
func (tc *TranslationCache) Get(word string) (string, bool) {
	tc.mu.RLock()
	defer tc.mu.RUnlock()
	translation, ok := tc.translations[word]
	return translation, ok
}

// GetAll returns a copy of all cached translations
func (tc *TranslationCache) GetAll() map[string]string {
	tc.mu.RLock()
	defer tc.mu.RUnlock()
	result := make(map[string]string, len(tc.translations))
	for k, v := range tc.translations {
		result[k] = v
	}
	return result
}
