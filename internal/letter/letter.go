package letter

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrInvalidArity is returned when a predicate is given anything other than
// exactly one character.
var ErrInvalidArity = errors.New("only one char is allowed")

// Vowel sets. Uppercase forms are listed explicitly so the predicates do
// not depend on the caller lowercasing first.
const (
	vowels               = "aeiouAEIOUáéíóúÁÉÍÓÚüÜ"
	openVowels           = "aeoAEO"
	closedVowels         = "iuüIUÜ"
	strongVowels         = "aáàeéèíìoóòúùAÁÀEÉÈÍÌOÓÒÚÙ"
	stressedClosedVowels = "íúÍÚ"
)

var (
	accentReplacer = strings.NewReplacer(
		"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u",
		"Á", "A", "É", "E", "Í", "I", "Ó", "O", "Ú", "U",
		"à", "a", "è", "e", "ì", "i", "ò", "o", "ù", "u",
		"À", "A", "È", "E", "Ì", "I", "Ò", "O", "Ù", "U",
	)
	diaeresisReplacer = strings.NewReplacer("ü", "u", "Ü", "U")
)

// IsVowelRune reports whether r is a Spanish vowel, accented or with diaeresis
func IsVowelRune(r rune) bool {
	return strings.ContainsRune(vowels, r)
}

// IsConsonantRune reports whether r is a Latin letter (or ñ) that is not a vowel
func IsConsonantRune(r rune) bool {
	if r == 'ñ' || r == 'Ñ' {
		return true
	}
	isLatin := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
	return isLatin && !IsVowelRune(r)
}

// IsOpenVowelRune reports whether r is a, e or o without accent
func IsOpenVowelRune(r rune) bool {
	return strings.ContainsRune(openVowels, r)
}

// IsClosedVowelRune reports whether r is i, u or ü without accent
func IsClosedVowelRune(r rune) bool {
	return strings.ContainsRune(closedVowels, r)
}

// IsStrongVowelRune reports whether r is a strong vowel. Accented closed
// vowels count as strong because the accent breaks any diphthong.
func IsStrongVowelRune(r rune) bool {
	return strings.ContainsRune(strongVowels, r)
}

// IsStressedClosedVowelRune reports whether r is í or ú
func IsStressedClosedVowelRune(r rune) bool {
	return strings.ContainsRune(stressedClosedVowels, r)
}

// IsVocalic reports whether r can take part in a syllable nucleus. Every
// other character is treated as consonantal by the syllabifier.
func IsVocalic(r rune) bool {
	return IsStrongVowelRune(r) || IsClosedVowelRune(r)
}

// IsVowel reports whether c is a vowel
func IsVowel(c string) (bool, error) {
	return classify(c, IsVowelRune)
}

// IsConsonant reports whether c is a consonant
func IsConsonant(c string) (bool, error) {
	return classify(c, IsConsonantRune)
}

// IsOpenVowel reports whether c is an open (strong) vowel
func IsOpenVowel(c string) (bool, error) {
	return classify(c, IsOpenVowelRune)
}

// IsClosedVowel reports whether c is a closed (weak) vowel
func IsClosedVowel(c string) (bool, error) {
	return classify(c, IsClosedVowelRune)
}

// IsStrongVowel reports whether c is a strong vowel, accented or not
func IsStrongVowel(c string) (bool, error) {
	return classify(c, IsStrongVowelRune)
}

// IsUnstressedOpenVowel reports whether c is an open vowel without accent
func IsUnstressedOpenVowel(c string) (bool, error) {
	return classify(c, IsOpenVowelRune)
}

// IsStressedClosedVowel reports whether c is í or ú
func IsStressedClosedVowel(c string) (bool, error) {
	return classify(c, IsStressedClosedVowelRune)
}

// RemoveAccents replaces acute and grave accented vowels with their bare form
func RemoveAccents(s string) string {
	return accentReplacer.Replace(s)
}

// RemoveDiaeresis replaces ü with u, preserving case
func RemoveDiaeresis(s string) string {
	return diaeresisReplacer.Replace(s)
}

func classify(c string, pred func(rune) bool) (bool, error) {
	if utf8.RuneCountInString(c) != 1 {
		return false, fmt.Errorf("%w: got %q", ErrInvalidArity, c)
	}
	r, _ := utf8.DecodeRuneInString(c)
	return pred(r), nil
}
