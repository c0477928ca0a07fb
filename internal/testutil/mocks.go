package testutil

import (
	"context"
	"fmt"
	"sync"
)

// MockReferenceProvider mocks a reference transcription provider. It is
// safe for use from batch workers.
type MockReferenceProvider struct {
	ProviderName string
	Transcripts  map[string]string
	Errors       map[string]error
	Unavailable  error

	mu    sync.Mutex
	calls []string
}

// Transcribe returns the configured transcription of word
func (m *MockReferenceProvider) Transcribe(ctx context.Context, word string) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, word)
	m.mu.Unlock()

	if err, ok := m.Errors[word]; ok {
		return "", err
	}
	if ipa, ok := m.Transcripts[word]; ok {
		return ipa, nil
	}
	return "", fmt.Errorf("no mock transcription for %q", word)
}

// Name returns the provider name, "mock" by default
func (m *MockReferenceProvider) Name() string {
	if m.ProviderName == "" {
		return "mock"
	}
	return m.ProviderName
}

// IsAvailable returns the configured availability error
func (m *MockReferenceProvider) IsAvailable() error {
	return m.Unavailable
}

// Calls returns the words transcribed so far
func (m *MockReferenceProvider) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

// MockTranslator mocks the Spanish-English translation service
type MockTranslator struct {
	Translations map[string]string // Spanish -> English
	Reverse      map[string]string // English -> Spanish
	Errors       map[string]error

	mu    sync.Mutex
	calls []string
}

// TranslateWord mocks translating a Spanish word to English
func (m *MockTranslator) TranslateWord(ctx context.Context, word string) (string, error) {
	m.record(fmt.Sprintf("TranslateWord: %s", word))

	if err, ok := m.Errors[word]; ok {
		return "", err
	}
	if translation, ok := m.Translations[word]; ok {
		return translation, nil
	}
	return fmt.Sprintf("mock translation of %s", word), nil
}

// TranslateToSpanish mocks translating an English word to Spanish
func (m *MockTranslator) TranslateToSpanish(ctx context.Context, word string) (string, error) {
	m.record(fmt.Sprintf("TranslateToSpanish: %s", word))

	if err, ok := m.Errors[word]; ok {
		return "", err
	}
	if spanish, ok := m.Reverse[word]; ok {
		return spanish, nil
	}
	return "", fmt.Errorf("no mock Spanish word for %q", word)
}

func (m *MockTranslator) record(call string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, call)
}

// Calls returns the recorded calls in order
func (m *MockTranslator) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}
