// Package phonetic transcribes Spanish words and sentences to IPA.
//
// A word is first split by the syllable package. Each syllable then runs
// through the rule groups of a dialect. Exclusive groups stop at the
// first rule that applies, while independent groups apply every matching
// rule in order. A rule only fires when its gate matches: the syllable
// position, the phone that ended the previous syllable, and the
// syllable's phonology tag.
//
// Dialect tables are built once and never modified, so a Transcriber can
// be shared between goroutines.
package phonetic
