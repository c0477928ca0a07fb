package text

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	space := Token{Kind: Punctuation, Text: " "}
	word := func(s string, start bool) Token { return Token{Kind: Word, Text: s, SentenceStart: start} }
	punct := func(s string) Token { return Token{Kind: Punctuation, Text: s} }

	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:     "empty",
			input:    "",
			expected: nil,
		},
		{
			name:     "single word",
			input:    "hola",
			expected: []Token{word("hola", true)},
		},
		{
			name:  "sentence",
			input: "Un ejemplo y ninguno más.",
			expected: []Token{
				word("Un", true), space, word("ejemplo", false), space, word("y", false),
				space, word("ninguno", false), space, word("más", false), punct("."),
			},
		},
		{
			name:  "collapsed whitespace",
			input: "  hola   \t mundo  ",
			expected: []Token{
				word("hola", true), space, word("mundo", false),
			},
		},
		{
			name:  "sentence start after stop",
			input: "Hola. ¿Qué tal?",
			expected: []Token{
				word("Hola", true), punct("."), space, punct("¿"), word("Qué", true),
				space, word("tal", false), punct("?"),
			},
		},
		{
			name:  "ellipsis",
			input: "pues... nada",
			expected: []Token{
				word("pues", true), punct(Ellipsis), space, word("nada", true),
			},
		},
		{
			name:  "comma",
			input: "sí, claro",
			expected: []Token{
				word("sí", true), punct(","), space, word("claro", false),
			},
		},
		{
			name:  "quotes",
			input: "dijo «hola»",
			expected: []Token{
				word("dijo", true), space, punct("«"), word("hola", false), punct("»"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Tokenize(%q) =\n%+v\nwant\n%+v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	if Word.String() != "word" || Punctuation.String() != "punctuation" {
		t.Errorf("unexpected kind names: %s, %s", Word, Punctuation)
	}
	if Kind(0).String() != "unknown" {
		t.Errorf("Kind(0).String() = %q, want unknown", Kind(0).String())
	}
}
