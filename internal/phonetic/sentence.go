package phonetic

import (
	"fmt"
	"log/slog"
	"strings"

	"codeberg.org/snonux/silabario/internal/text"
)

// ToIPASentence transcribes running text with the default dialect
func ToIPASentence(s string) (string, error) {
	t, err := NewTranscriber(DefaultDialect)
	if err != nil {
		return "", err
	}
	return t.Sentence(s)
}

// Sentence transcribes running text. Sentence stops become PhraseBoundary,
// spaces and pauses become SyllableBoundary, and other punctuation is
// skipped.
func (t *Transcriber) Sentence(s string) (string, error) {
	var parts []string

	for _, tok := range text.Tokenize(s) {
		switch tok.Kind {
		case text.Word:
			ipa, err := t.Word(tok.Text)
			if err != nil {
				return "", fmt.Errorf("transcribe %q: %w", tok.Text, err)
			}
			parts = append(parts, ipa)
		case text.Punctuation:
			switch tok.Text {
			case ".", "!", "?", text.Ellipsis:
				parts = appendBoundary(parts, PhraseBoundary)
			case " ", ",", ";", ":":
				parts = appendBoundary(parts, SyllableBoundary)
			default:
				slog.Debug("ignoring punctuation", "punctuation", tok.Text)
			}
		default:
			return "", fmt.Errorf("%w: token %q of kind %s", ErrUnreachableState, tok.Text, tok.Kind)
		}
	}

	return strings.Join(parts, ""), nil
}

// appendBoundary adds a boundary mark unless one is already there. A
// phrase boundary wins over a syllable boundary.
func appendBoundary(parts []string, mark string) []string {
	if len(parts) == 0 {
		return parts
	}
	switch last := parts[len(parts)-1]; last {
	case PhraseBoundary:
		return parts
	case SyllableBoundary:
		if mark == PhraseBoundary {
			parts[len(parts)-1] = mark
		}
		return parts
	}
	return append(parts, mark)
}
