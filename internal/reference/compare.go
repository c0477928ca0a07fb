package reference

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// notation carries no segmental content and is dropped before comparing
var notation = strings.NewReplacer(
	"ˈ", "", "ˌ", "", ".", "", "‖", "", "|", "",
	"/", "", "[", "", "]", "", " ", "", "ː", "",
	"ʧ", "tʃ", "ɡ", "g",
)

// Normalize reduces an IPA transcription to its segments so that providers
// with different conventions can be compared
func Normalize(ipa string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, ipa)
	if err != nil {
		stripped = ipa
	}
	return notation.Replace(strings.ToLower(strings.TrimSpace(stripped)))
}

// Distance is the Levenshtein distance between the normalized forms of a and b
func Distance(a, b string) int {
	ra := []rune(Normalize(a))
	rb := []rune(Normalize(b))

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}
