// Package letter classifies single Spanish letters. It answers whether a
// letter is a vowel or a consonant, how strong a vowel is and whether it
// carries a written accent, and it strips accents and diaeresis from text.
//
// The string predicates accept exactly one character and fail with
// ErrInvalidArity otherwise. The rune predicates are used by the
// syllabifier and never fail.
package letter
