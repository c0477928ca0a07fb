// Package syllable splits Spanish words into syllables.
//
// Syllabify scans a word left to right and cuts one syllable per step
// (onset, nucleus, coda). It then places the stress, either at the
// written accent or by the default rule for words ending in a vowel, n or
// s. Finally it tags vowel sequences as hiatus, triphthong or diphthong.
// Results are plain values and the package keeps no state between calls,
// so it is safe for concurrent use.
package syllable
