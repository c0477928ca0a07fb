package syllable

import (
	"strings"

	"codeberg.org/snonux/silabario/internal/letter"
)

var hiatusPairs = map[string]PhonologyType{
	"aa": HiatusSimple1, "ae": HiatusSimple1, "ao": HiatusSimple1,
	"ea": HiatusSimple1, "ee": HiatusSimple1, "eo": HiatusSimple1,
	"oa": HiatusSimple1, "oe": HiatusSimple1, "oo": HiatusSimple1,

	"uu": HiatusSimple2, "ii": HiatusSimple2,

	"aá": HiatusAccentual, "aé": HiatusAccentual, "aó": HiatusAccentual,
	"eá": HiatusAccentual, "eé": HiatusAccentual, "eó": HiatusAccentual,
	"oá": HiatusAccentual, "oé": HiatusAccentual, "oó": HiatusAccentual,
	"aí": HiatusAccentual, "aú": HiatusAccentual,
	"eí": HiatusAccentual, "eú": HiatusAccentual,
	"oí": HiatusAccentual, "oú": HiatusAccentual,
	"ía": HiatusAccentual, "íe": HiatusAccentual, "ío": HiatusAccentual,
	"úa": HiatusAccentual, "úe": HiatusAccentual, "úo": HiatusAccentual,
}

// tagHiatus marks syllable i when its last letter and the first letter of
// syllable i+1 form a hiatus. A silent h between them is skipped.
func tagHiatus(syllables []Syllable) {
	for i := 0; i < len(syllables)-1; i++ {
		if syllables[i].Phonology != nil {
			continue
		}
		current := []rune(syllables[i].Text)
		next := []rune(syllables[i+1].Text)

		lc, ln := current[len(current)-1], next[0]
		text := string(lc) + "-" + string(ln)
		if ln == 'h' && len(next) > 1 {
			ln = next[1]
			text += string(ln)
		}

		if typ, ok := hiatusPairs[string([]rune{lc, ln})]; ok {
			syllables[i].Phonology = &Phonology{Type: typ, Text: text}
		}
	}
}

// tagTriphthongs looks for weak-strong-weak inside untagged syllables.
// Matching ignores accents and diaeresis but the tag keeps the written form.
func tagTriphthongs(syllables []Syllable) {
	for i := range syllables {
		if syllables[i].Phonology != nil {
			continue
		}
		original := []rune(syllables[i].Text)
		bare := []rune(letter.RemoveDiaeresis(letter.RemoveAccents(syllables[i].Text)))
		for j := 0; j+2 < len(bare); j++ {
			if isWeak(bare[j]) && isOpen(bare[j+1]) && (isWeak(bare[j+2]) || bare[j+2] == 'y') {
				syllables[i].Phonology = &Phonology{Type: Triphthong, Text: string(original[j : j+3])}
				break
			}
		}
	}
}

// tagDiphthongs classifies the first vowel pair of each untagged syllable.
// The u of que and qui is silent and never forms a diphthong.
func tagDiphthongs(syllables []Syllable) {
	for i := range syllables {
		if syllables[i].Phonology != nil {
			continue
		}
		text := syllables[i].Text
		if strings.Contains(text, "que") || strings.Contains(text, "qui") {
			continue
		}
		runes := []rune(text)
		if pair, ok := findPair(runes, isWeak, isOpen); ok {
			syllables[i].Phonology = &Phonology{Type: DiphthongCrescent, Text: pair}
		} else if pair, ok := findPair(runes, isOpen, isWeak); ok {
			syllables[i].Phonology = &Phonology{Type: DiphthongDescending, Text: pair}
		} else if pair, ok := findDistinctWeakPair(runes); ok {
			syllables[i].Phonology = &Phonology{Type: DiphthongHomogeneous, Text: pair}
		}
	}
}

func findPair(runes []rune, first, second func(rune) bool) (string, bool) {
	for j := 0; j+1 < len(runes); j++ {
		if first(runes[j]) && second(runes[j+1]) {
			return string(runes[j : j+2]), true
		}
	}
	return "", false
}

func findDistinctWeakPair(runes []rune) (string, bool) {
	for j := 0; j+1 < len(runes); j++ {
		if isWeak(runes[j]) && isWeak(runes[j+1]) && runes[j] != runes[j+1] {
			return string(runes[j : j+2]), true
		}
	}
	return "", false
}

func isWeak(r rune) bool { return r == 'i' || r == 'u' }

func isOpen(r rune) bool { return r == 'a' || r == 'e' || r == 'o' }
