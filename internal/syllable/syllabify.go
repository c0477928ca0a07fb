package syllable

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"codeberg.org/snonux/silabario/internal/letter"
)

var (
	// ErrInvalidInput is returned for empty words and words with whitespace
	ErrInvalidInput = errors.New("invalid input")
	// ErrNoNucleus is returned when no vowel can seed a syllable
	ErrNoNucleus = errors.New("no syllable nucleus")
	// ErrUnreachableState signals a scan result outside the accentuation table
	ErrUnreachableState = errors.New("unreachable state")
)

// vowel strength of the first vowel in a nucleus
type strength int

const (
	strong strength = iota
	weakAccented
	weak
)

// scanner holds the state of one Syllabify call
type scanner struct {
	word      []rune
	syllables []Syllable
	stressed  int
	accented  int
}

// Normalize returns the form of word that Syllabify works on: NFC, trimmed
// and lowercased.
func Normalize(word string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFC.String(word)))
}

// Syllabify splits word into syllables and classifies its stress and vowel
// sequences.
func Syllabify(word string) (*WordSyllables, error) {
	normalized := Normalize(word)
	if normalized == "" {
		return nil, fmt.Errorf("%w: empty word", ErrInvalidInput)
	}
	if strings.IndexFunc(normalized, unicode.IsSpace) >= 0 {
		return nil, fmt.Errorf("%w: word %q contains whitespace", ErrInvalidInput, normalized)
	}

	s := &scanner{
		word:     []rune(normalized),
		stressed: -1,
		accented: -1,
	}

	for pos := 0; pos < len(s.word); {
		start := pos
		pos = s.onset(pos)
		var err error
		if pos, err = s.nucleus(pos); err != nil {
			return nil, fmt.Errorf("syllabify %q: %w", normalized, err)
		}
		pos = s.coda(pos)
		s.syllables = append(s.syllables, Syllable{
			Index: start,
			Text:  string(s.word[start:pos]),
		})
	}

	if s.stressed == -1 {
		s.stressed = s.defaultStress()
	}

	accentuation, err := classifyAccentuation(len(s.syllables), s.stressed)
	if err != nil {
		return nil, fmt.Errorf("syllabify %q: %w", normalized, err)
	}

	tagHiatus(s.syllables)
	tagTriphthongs(s.syllables)
	tagDiphthongs(s.syllables)

	return &WordSyllables{
		Word:             normalized,
		Syllables:        s.syllables,
		StressedSyllable: s.stressed,
		AccentedLetter:   s.accented,
		Accentuation:     accentuation,
	}, nil
}

func classifyAccentuation(count, stressed int) (Accentuation, error) {
	idx := count - stressed
	if idx < 0 || stressed < 1 {
		return 0, fmt.Errorf("%w: stressed syllable %d of %d", ErrUnreachableState, stressed, count)
	}
	if idx >= len(accentuationTable) {
		return Overprosed, nil
	}
	return accentuationTable[idx], nil
}

// defaultStress places the stress when no written accent was found
func (s *scanner) defaultStress() int {
	n := len(s.syllables)
	if n < 2 {
		return n
	}
	last := s.word[len(s.word)-1]
	prev := s.word[len(s.word)-2]
	if letter.IsVocalic(last) || last == 'y' || last == 'n' || (last == 's' && letter.IsVocalic(prev)) {
		return n - 1
	}
	return n
}

func isConsonantal(r rune) bool {
	return !letter.IsVocalic(r)
}

// onset consumes the leading consonants and the silent u of que/qui/gue/gui
func (s *scanner) onset(pos int) int {
	w := s.word
	last := 'a'
	for pos < len(w) && isConsonantal(w[pos]) && w[pos] != 'y' {
		last = w[pos]
		pos++
	}

	if pos < len(w)-1 {
		switch {
		case w[pos] == 'u' && last == 'q':
			pos++
		case w[pos] == 'u' && last == 'g':
			switch w[pos+1] {
			case 'e', 'é', 'i', 'í':
				pos++
			}
		case w[pos] == 'ü' && last == 'g':
			pos++
		}
	}
	return pos
}

// nucleus consumes one to three vowels and records written accents
func (s *scanner) nucleus(pos int) (int, error) {
	w := s.word
	if pos >= len(w) {
		return pos, ErrNoNucleus
	}

	if w[pos] == 'y' {
		pos++
	}

	previous := strong
	if pos < len(w) {
		switch w[pos] {
		case 'á', 'à', 'é', 'è', 'ó', 'ò':
			s.accented = pos
			s.stressed = len(s.syllables) + 1
			previous = strong
			pos++
		case 'a', 'e', 'o':
			previous = strong
			pos++
		case 'í', 'ì', 'ú', 'ù', 'ü':
			// an accented weak vowel closes the nucleus
			s.accented = pos
			s.stressed = len(s.syllables) + 1
			return pos + 1, nil
		case 'i', 'u':
			previous = weak
			pos++
		}
	}

	hache := false
	if pos < len(w) && w[pos] == 'h' {
		pos++
		hache = true
	}

	if pos < len(w) {
		switch w[pos] {
		case 'á', 'à', 'é', 'è', 'ó', 'ò':
			s.accented = pos
			if previous != strong {
				s.stressed = len(s.syllables) + 1
			}
			if previous == strong {
				if hache {
					pos--
				}
				return pos, nil
			}
			pos++
		case 'a', 'e', 'o':
			if previous == strong {
				if hache {
					pos--
				}
				return pos, nil
			}
			pos++
		case 'í', 'ì', 'ú', 'ù':
			s.accented = pos
			if previous != strong {
				s.stressed = len(s.syllables) + 1
				pos++
			} else if hache {
				pos--
			}
			return pos, nil
		case 'i', 'u', 'ü':
			if pos < len(w)-1 && !isConsonantal(w[pos+1]) {
				// the next vowel starts a new nucleus
				if w[pos-1] == 'h' {
					pos--
				}
				return pos, nil
			}
			if w[pos] != w[pos-1] {
				pos++
			}
			return pos, nil
		}
	}

	if pos < len(w) && (w[pos] == 'i' || w[pos] == 'u') {
		pos++
	}
	return pos, nil
}

// coda consumes the consonants that close the syllable, leaving the onset
// of the next one in place.
func (s *scanner) coda(pos int) int {
	w := s.word
	if pos >= len(w) || !isConsonantal(w[pos]) {
		return pos
	}
	if pos == len(w)-1 {
		return pos + 1
	}
	if !isConsonantal(w[pos+1]) {
		return pos
	}

	c1, c2 := w[pos], w[pos+1]

	if pos < len(w)-2 {
		c3 := w[pos+2]
		if !isConsonantal(c3) {
			return pos + twoConsonantSplit(c1, c2)
		}

		// three consonants
		if pos+3 == len(w) {
			if c2 == 'y' && isAlveolar(c1) {
				return pos
			}
			if c3 == 'y' {
				return pos + 1
			}
			return pos + 3
		}
		if c2 == 'y' {
			if isAlveolar(c1) {
				return pos
			}
			return pos + 1
		}
		if splitsAfterFirst(c2, c3) {
			return pos + 1
		}
		if c3 == 'l' || c3 == 'r' || (c2 == 'c' && c3 == 'h') || c3 == 'y' {
			return pos + 1
		}
		return pos + 2
	}

	// two consonants end the word
	if c2 == 'y' {
		return pos
	}
	return pos + 2
}

// twoConsonantSplit returns how many of the two consonants before a vowel
// stay in the coda.
func twoConsonantSplit(c1, c2 rune) int {
	switch {
	case c1 == 'l' && c2 == 'l', c1 == 'c' && c2 == 'h', c1 == 'r' && c2 == 'r':
		return 0
	case c1 != 's' && c1 != 'r' && c2 == 'h':
		return 0
	case c2 == 'y':
		if isAlveolar(c1) {
			return 0
		}
		return 1
	case c2 == 'l' && strings.ContainsRune("bvckfgpt", c1):
		return 0
	case c2 == 'r' && strings.ContainsRune("bvcdkfgpt", c1):
		return 0
	}
	return 1
}

func isAlveolar(r rune) bool {
	return strings.ContainsRune("slrnc", r)
}

// splitsAfterFirst lists the borrowed clusters that open the next syllable
// when they follow another consonant.
func splitsAfterFirst(c2, c3 rune) bool {
	switch string([]rune{c2, c3}) {
	case "pt", "ct", "cn", "ps", "mn", "gn", "ft", "pn", "cz", "tz", "ts":
		return true
	}
	return false
}
