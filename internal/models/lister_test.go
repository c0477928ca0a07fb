package models

import (
	"bytes"
	"context"
	"os"
	"reflect"
	"strings"
	"testing"
)

func TestNewLister(t *testing.T) {
	lister := NewLister("test-api-key", os.Stdout)

	if lister == nil {
		t.Fatal("NewLister returned nil")
	}

	if lister.apiKey != "test-api-key" {
		t.Errorf("Expected API key 'test-api-key', got '%s'", lister.apiKey)
	}

	if lister.client == nil {
		t.Error("OpenAI client not initialized")
	}
}

func TestListAvailableModels_NoAPIKey(t *testing.T) {
	lister := NewLister("", os.Stdout)

	err := lister.ListAvailableModels(context.Background())
	if err == nil {
		t.Fatal("Expected error for missing API key")
	}

	expectedError := "OpenAI API key not found. Set OPENAI_API_KEY environment variable or configure in .silabario.yaml"
	if err.Error() != expectedError {
		t.Errorf("Expected error '%s', got: %v", expectedError, err)
	}
}

func TestCategorize(t *testing.T) {
	ids := []string{
		"tts-1", "gpt-4o-mini", "dall-e-3", "gpt-3.5-turbo", "gpt-4o",
		"text-embedding-3-small", "o3-mini", "gpt-4o-audio-preview", "whisper-1",
		"chatgpt-4o-latest", "omni-moderation-latest",
	}

	got := Categorize(ids)
	want := Categories{
		Reference: []string{"gpt-4o", "gpt-4o-mini", "o3-mini"},
		Other:     []string{"chatgpt-4o-latest", "gpt-3.5-turbo"},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Categorize() = %+v, want %+v", got, want)
	}
}

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	lister := NewLister("test-api-key", &buf)

	lister.Print(Categories{Reference: []string{"gpt-4o-mini"}})

	out := buf.String()
	if !strings.Contains(out, "  gpt-4o-mini\n") {
		t.Errorf("Expected model in output, got:\n%s", out)
	}
	if strings.Contains(out, "Other chat models") {
		t.Errorf("Did not expect other section, got:\n%s", out)
	}

	buf.Reset()
	lister.Print(Categories{})
	if !strings.Contains(buf.String(), "No suitable chat models found") {
		t.Errorf("Expected empty notice, got:\n%s", buf.String())
	}
}

func TestListAvailableModels_Integration(t *testing.T) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		t.Skip("Skipping integration test: OPENAI_API_KEY not set")
	}

	var buf bytes.Buffer
	lister := NewLister(apiKey, &buf)

	if err := lister.ListAvailableModels(context.Background()); err != nil {
		t.Errorf("ListAvailableModels failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Available OpenAI Models") {
		t.Errorf("Unexpected output:\n%s", buf.String())
	}
}
