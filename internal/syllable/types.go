package syllable

import (
	"fmt"
	"strings"
)

// PhonologyType identifies how the vowels of a syllable behave. The zero
// value means no tag.
type PhonologyType int

const (
	HiatusSimple1 PhonologyType = iota + 1
	HiatusSimple2
	HiatusAccentual
	DiphthongCrescent
	DiphthongDescending
	DiphthongHomogeneous
	Triphthong
)

var phonologyNames = map[PhonologyType]string{
	HiatusSimple1:        "hiatus-simple-1",
	HiatusSimple2:        "hiatus-simple-2",
	HiatusAccentual:      "hiatus-accentual",
	DiphthongCrescent:    "diphthong-crescent",
	DiphthongDescending:  "diphthong-descending",
	DiphthongHomogeneous: "diphthong-homogeneous",
	Triphthong:           "triphthong",
}

// String returns the tag name, e.g. "diphthong-crescent"
func (t PhonologyType) String() string {
	if name, ok := phonologyNames[t]; ok {
		return name
	}
	return fmt.Sprintf("PhonologyType(%d)", int(t))
}

// MarshalText makes the type render by name in JSON and YAML reports
func (t PhonologyType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// IsHiatus reports whether the tag marks a boundary between two syllables
func (t PhonologyType) IsHiatus() bool {
	return t >= HiatusSimple1 && t <= HiatusAccentual
}

// IsDiphthong reports whether the tag marks two vowels in one syllable
func (t PhonologyType) IsDiphthong() bool {
	return t >= DiphthongCrescent && t <= DiphthongHomogeneous
}

// Phonology is the tag attached to a syllable. Text holds the vowels that
// triggered it: "a-í" for a hiatus, "iu" for a diphthong, "uau" for a
// triphthong.
type Phonology struct {
	Type PhonologyType `json:"type" yaml:"type"`
	Text string        `json:"text" yaml:"text"`
}

func (p Phonology) String() string {
	return fmt.Sprintf("%s %q", p.Type, p.Text)
}

// Syllable is one segment of a word. Index is the rune offset of its first
// letter in the normalized word.
type Syllable struct {
	Index     int        `json:"idx" yaml:"idx"`
	Text      string     `json:"text" yaml:"text"`
	Phonology *Phonology `json:"phonology" yaml:"phonology"`
}

// Type returns the syllable's phonology tag, or zero when untagged
func (s Syllable) Type() PhonologyType {
	if s.Phonology == nil {
		return 0
	}
	return s.Phonology.Type
}

// Accentuation classifies a word by the position of its stressed syllable
type Accentuation int

const (
	Acute      Accentuation = iota // last syllable (aguda)
	Plain                          // penultimate (llana)
	Prosed                         // antepenultimate (esdrújula)
	Overprosed                     // earlier (sobresdrújula)
)

var accentuationTable = [...]Accentuation{Acute, Plain, Prosed, Overprosed}

func (a Accentuation) String() string {
	switch a {
	case Acute:
		return "acute"
	case Plain:
		return "plain"
	case Prosed:
		return "prosed"
	case Overprosed:
		return "overprosed"
	}
	return fmt.Sprintf("Accentuation(%d)", int(a))
}

// SpanishName returns the traditional grammar term for the class
func (a Accentuation) SpanishName() string {
	switch a {
	case Acute:
		return "aguda"
	case Plain:
		return "llana"
	case Prosed:
		return "esdrújula"
	case Overprosed:
		return "sobresdrújula"
	}
	return a.String()
}

// MarshalText makes the class render by name in JSON and YAML reports
func (a Accentuation) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// WordSyllables is the result of syllabifying one word
type WordSyllables struct {
	Word             string       `json:"word" yaml:"word"`
	Syllables        []Syllable   `json:"syllables" yaml:"syllables"`
	StressedSyllable int          `json:"stressedSyllableIdx" yaml:"stressed_syllable_idx"`
	AccentedLetter   int          `json:"accentedLetterIdx" yaml:"accented_letter_idx"`
	Accentuation     Accentuation `json:"accentuation" yaml:"accentuation"`
}

// Texts returns the syllable texts in order
func (w *WordSyllables) Texts() []string {
	texts := make([]string, len(w.Syllables))
	for i, s := range w.Syllables {
		texts[i] = s.Text
	}
	return texts
}

// Hyphenated joins the syllables with sep, e.g. "ciu-dad"
func (w *WordSyllables) Hyphenated(sep string) string {
	return strings.Join(w.Texts(), sep)
}

// Stressed returns the stressed syllable
func (w *WordSyllables) Stressed() Syllable {
	return w.Syllables[w.StressedSyllable-1]
}
