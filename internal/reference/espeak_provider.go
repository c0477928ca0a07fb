package reference

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// EspeakProvider reads IPA from the espeak-ng command line tool
type EspeakProvider struct {
	binary string
	voice  string
}

// NewEspeakProvider creates a provider backed by espeak-ng
func NewEspeakProvider(config *Config) (Provider, error) {
	p := &EspeakProvider{
		binary: config.ESpeakBinary,
		voice:  config.ESpeakVoice,
	}
	if p.binary == "" {
		p.binary = "espeak-ng"
	}
	if p.voice == "" {
		p.voice = voiceFor(config.Dialect)
	}

	if err := p.IsAvailable(); err != nil {
		return nil, err
	}
	return p, nil
}

// Transcribe runs espeak-ng in quiet IPA mode
func (p *EspeakProvider) Transcribe(ctx context.Context, word string) (string, error) {
	if word == "" {
		return "", fmt.Errorf("word cannot be empty")
	}

	cmd := exec.CommandContext(ctx, p.binary, "-q", "--ipa", "-v", p.voice, word)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("espeak-ng failed: %w\nOutput: %s", err, string(output))
	}

	ipa := strings.TrimSpace(string(output))
	if ipa == "" {
		return "", fmt.Errorf("espeak-ng returned no transcription for %q", word)
	}
	return ipa, nil
}

// Name returns the provider name
func (p *EspeakProvider) Name() string {
	return "espeak-ng"
}

// IsAvailable checks if espeak-ng is installed
func (p *EspeakProvider) IsAvailable() error {
	if err := exec.Command(p.binary, "--version").Run(); err != nil {
		return fmt.Errorf("espeak-ng is not installed or not in PATH: %w", err)
	}
	return nil
}

// voiceFor maps a dialect tag to an espeak-ng voice
func voiceFor(dialect string) string {
	switch strings.ToLower(dialect) {
	case "es-419", "latam", "latin-american":
		return "es-419"
	}
	return "es"
}
