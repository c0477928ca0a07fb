package reference

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/neurlang/goruut/lib"
	"github.com/neurlang/goruut/models/requests"
)

// GoruutProvider phonemizes words offline with goruut's Spanish model
type GoruutProvider struct {
	once sync.Once
	p    *lib.Phonemizer
}

// NewGoruutProvider creates an offline provider. The phonemizer is loaded
// on first use.
func NewGoruutProvider() Provider {
	return &GoruutProvider{}
}

// Transcribe phonemizes word
func (g *GoruutProvider) Transcribe(ctx context.Context, word string) (string, error) {
	if word == "" {
		return "", fmt.Errorf("word cannot be empty")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	g.once.Do(func() {
		g.p = lib.NewPhonemizer(nil)
	})

	resp := g.p.Sentence(requests.PhonemizeSentence{
		Language: "Spanish",
		Sentence: word,
	})

	var parts []string
	for _, w := range resp.Words {
		if w.Phonetic != "" {
			parts = append(parts, w.Phonetic)
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("goruut returned no transcription for %q", word)
	}
	return strings.Join(parts, " "), nil
}

// Name returns the provider name
func (g *GoruutProvider) Name() string {
	return "goruut"
}

// IsAvailable always succeeds; the model ships with the library
func (g *GoruutProvider) IsAvailable() error {
	return nil
}
