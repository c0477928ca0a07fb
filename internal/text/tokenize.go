package text

import (
	"strings"
	"unicode"
)

// Kind distinguishes word tokens from punctuation
type Kind int

const (
	Word Kind = iota + 1
	Punctuation
)

func (k Kind) String() string {
	switch k {
	case Word:
		return "word"
	case Punctuation:
		return "punctuation"
	}
	return "unknown"
}

// Token is one word or punctuation mark. SentenceStart is set on words
// that open a sentence.
type Token struct {
	Kind          Kind
	Text          string
	SentenceStart bool
}

// Ellipsis replaces a run of three dots
const Ellipsis = "…"

const punctuation = ".!?,;:¡¿«»—…\"()"

// sentence enders; a colon opens a new sentence as well
const sentenceEnders = ".:!?…"

// Tokenize splits s into tokens. A run of whitespace becomes a single " "
// punctuation token; whitespace at either end of s is dropped.
func Tokenize(s string) []Token {
	var (
		tokens        []Token
		word          strings.Builder
		sentenceStart = true
	)

	flush := func() {
		if word.Len() == 0 {
			return
		}
		tokens = append(tokens, Token{Kind: Word, Text: word.String(), SentenceStart: sentenceStart})
		word.Reset()
		sentenceStart = false
	}
	lastIsSpace := func() bool {
		n := len(tokens)
		return n > 0 && tokens[n-1].Kind == Punctuation && tokens[n-1].Text == " "
	}

	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			flush()
			if len(tokens) == 0 || lastIsSpace() {
				continue
			}
			tokens = append(tokens, Token{Kind: Punctuation, Text: " "})
		case strings.ContainsRune(punctuation, r):
			flush()
			mark := string(r)
			if r == '.' && i+2 < len(runes) && runes[i+1] == '.' && runes[i+2] == '.' {
				mark = Ellipsis
				i += 2
			}
			tokens = append(tokens, Token{Kind: Punctuation, Text: mark})
			if strings.Contains(sentenceEnders, mark) {
				sentenceStart = true
			}
		default:
			word.WriteRune(r)
		}
	}
	flush()
	if lastIsSpace() {
		tokens = tokens[:len(tokens)-1]
	}

	return tokens
}
