package phonetic

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"codeberg.org/snonux/silabario/internal/letter"
	"codeberg.org/snonux/silabario/internal/syllable"
)

// Marks used in transcriptions
const (
	StressMark       = "ˈ"
	SyllableBoundary = "."
	PhraseBoundary   = "‖"
)

// ErrUnreachableState signals a rule table or token stream the transcriber
// cannot handle
var ErrUnreachableState = errors.New("unreachable state")

// Transcriber converts words to IPA with one dialect's rules
type Transcriber struct {
	dialect *Dialect
}

// NewTranscriber creates a transcriber for the given dialect
func NewTranscriber(id DialectID) (*Transcriber, error) {
	d, err := Lookup(id)
	if err != nil {
		return nil, err
	}
	return &Transcriber{dialect: d}, nil
}

// ToIPA transcribes a single word with the dialect named by tag
func ToIPA(word, dialect string) (string, error) {
	id, err := ParseDialect(dialect)
	if err != nil {
		return "", err
	}
	t, err := NewTranscriber(id)
	if err != nil {
		return "", err
	}
	return t.Word(word)
}

// Dialect returns the identifier of the transcriber's rule table
func (t *Transcriber) Dialect() DialectID {
	return t.dialect.ID
}

// Word syllabifies and transcribes word. Syllabifier errors are returned
// unchanged.
func (t *Transcriber) Word(word string) (string, error) {
	ws, err := syllable.Syllabify(word)
	if err != nil {
		return "", err
	}
	return t.Transcribe(ws)
}

// Transcribe converts an already syllabified word
func (t *Transcriber) Transcribe(ws *syllable.WordSyllables) (string, error) {
	phones, err := t.Syllables(ws)
	if err != nil {
		return "", err
	}
	return strings.Join(phones, SyllableBoundary), nil
}

// Syllables returns the transcription of every syllable, the stressed one
// prefixed with StressMark.
func (t *Transcriber) Syllables(ws *syllable.WordSyllables) ([]string, error) {
	out := make([]string, len(ws.Syllables))

	var preceding rune
	wordStart := true

	for i, s := range ws.Syllables {
		text := letter.RemoveAccents(s.Text)

		// x is /ks/; at the start of a later syllable the k closes the previous one
		if idx := strings.IndexRune(text, 'x'); idx == 0 && i > 0 {
			out[i-1] += "k"
			text = strings.Replace(text, "x", "s", 1)
		} else if idx >= 0 {
			text = strings.Replace(text, "x", "ks", 1)
		}

		ctx := ruleContext{
			index:     i,
			preceding: preceding,
			wordStart: wordStart,
			phonology: s.Type(),
		}
		for g := range t.dialect.Groups {
			var err error
			text, err = t.dialect.Groups[g].apply(text, ctx)
			if err != nil {
				return nil, fmt.Errorf("transcribe syllable %q of %q: %w", s.Text, ws.Word, err)
			}
		}

		if last, _ := utf8.DecodeLastRuneInString(text); last != utf8.RuneError {
			preceding = last
			wordStart = false
		}

		if i+1 == ws.StressedSyllable {
			text = StressMark + text
		}
		out[i] = text
	}

	return out, nil
}
