package models

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// Lister handles listing available OpenAI models
type Lister struct {
	apiKey string
	client *openai.Client
	out    io.Writer
}

// NewLister creates a new model lister printing to out
func NewLister(apiKey string, out io.Writer) *Lister {
	return &Lister{
		apiKey: apiKey,
		client: openai.NewClient(apiKey),
		out:    out,
	}
}

// Categories groups model IDs by what silabario can use them for
type Categories struct {
	Reference []string // chat models suitable for --reference-model
	Other     []string // chat models that are legacy or too small
}

// Categorize splits model IDs into categories. Audio, image, embedding and
// moderation models are dropped.
func Categorize(ids []string) Categories {
	var c Categories
	for _, id := range ids {
		switch {
		case strings.Contains(id, "tts"), strings.Contains(id, "audio"), strings.Contains(id, "realtime"),
			strings.Contains(id, "dall-e"), strings.Contains(id, "image"),
			strings.Contains(id, "embedding"), strings.Contains(id, "moderation"),
			strings.Contains(id, "whisper"), strings.Contains(id, "transcribe"):
			continue
		case strings.HasPrefix(id, "gpt-4"), strings.HasPrefix(id, "gpt-5"),
			strings.HasPrefix(id, "o1"), strings.HasPrefix(id, "o3"), strings.HasPrefix(id, "o4"):
			c.Reference = append(c.Reference, id)
		case strings.Contains(id, "gpt"), strings.Contains(id, "chat"):
			c.Other = append(c.Other, id)
		}
	}
	sort.Strings(c.Reference)
	sort.Strings(c.Other)
	return c
}

// ListAvailableModels prints the chat models available to the API key
func (l *Lister) ListAvailableModels(ctx context.Context) error {
	if l.apiKey == "" {
		return fmt.Errorf("OpenAI API key not found. Set OPENAI_API_KEY environment variable or configure in .silabario.yaml")
	}

	models, err := l.client.ListModels(ctx)
	if err != nil {
		return fmt.Errorf("failed to list models: %w", err)
	}

	ids := make([]string, 0, len(models.Models))
	for _, model := range models.Models {
		ids = append(ids, model.ID)
	}

	l.Print(Categorize(ids))
	return nil
}

// Print writes the categories in the lister's output
func (l *Lister) Print(c Categories) {
	fmt.Fprintln(l.out, "Available OpenAI Models:")

	fmt.Fprintln(l.out, "\nReference transcription and translation models (--reference-model):")
	if len(c.Reference) == 0 {
		fmt.Fprintln(l.out, "  No suitable chat models found")
	}
	for _, model := range c.Reference {
		fmt.Fprintf(l.out, "  %s\n", model)
	}

	if len(c.Other) > 0 {
		fmt.Fprintln(l.out, "\nOther chat models:")
		for _, model := range c.Other {
			fmt.Fprintf(l.out, "  %s\n", model)
		}
	}
}
