package phonetic

import (
	"errors"
	"fmt"
	"strings"

	"codeberg.org/snonux/silabario/internal/syllable"
)

// ErrUnknownDialect is returned for dialect identifiers without a rule table
var ErrUnknownDialect = errors.New("unknown dialect")

// DialectID names a registered rule table
type DialectID int

const (
	// Castilian is peninsular standard Spanish with distinción (z, ce, ci as θ)
	Castilian DialectID = iota
	// LatinAmerican uses seseo (z, ce, ci as s)
	LatinAmerican
)

// DefaultDialect is used when no dialect is configured
const DefaultDialect = Castilian

var dialectCodes = map[DialectID]string{
	Castilian:     "es-ES",
	LatinAmerican: "es-419",
}

// String returns the BCP 47 tag of the dialect
func (d DialectID) String() string {
	if code, ok := dialectCodes[d]; ok {
		return code
	}
	return fmt.Sprintf("DialectID(%d)", int(d))
}

// MarshalText renders the dialect by its tag in reports
func (d DialectID) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// ParseDialect resolves a dialect tag. The empty string and "default"
// select DefaultDialect.
func ParseDialect(s string) (DialectID, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "default":
		return DefaultDialect, nil
	case "es-es", "es", "castilian":
		return Castilian, nil
	case "es-419", "latam", "latin-american":
		return LatinAmerican, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDialect, s)
}

// Dialects lists the registered dialect identifiers
func Dialects() []DialectID {
	return []DialectID{Castilian, LatinAmerican}
}

// Dialect is an ordered list of rule groups
type Dialect struct {
	ID     DialectID
	Groups []RuleGroup
}

var dialects = map[DialectID]*Dialect{
	Castilian:     newDialect(Castilian, "θ"),
	LatinAmerican: newDialect(LatinAmerican, "s"),
}

// Lookup returns the rule table for id
func Lookup(id DialectID) (*Dialect, error) {
	d, ok := dialects[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDialect, id)
	}
	return d, nil
}

// newDialect builds the standard rule table. coronal is the phone written
// as z, ce and ci.
func newDialect(id DialectID, coronal string) *Dialect {
	return &Dialect{
		ID: id,
		Groups: []RuleGroup{
			velarGroup(),
			glideGroup(),
			rhoticOnsetGroup(),
			{
				Name:       "independent",
				Discipline: AllOf,
				Rules: []Rule{
					newRule("ch", `ch`, "ʧ"),
					newRule("h-muted", `h`, ""),
					newRule("z", `z`, coronal),
					newRule("ce-ci", `c([ei])`, coronal+"${1}"),
					newRule("c", `c`, "k"),
					newRule("que-qui", `qu([ei])`, "k${1}"),
					newRule("ñ", `ñ`, "ɲ"),
					newRule("r-tap", `([^r])r`, "${1}ɾ"),
					newRule("rr", `rr`, "r"),
					newRule("y-final", `y$`, "i"),
					newRule("b", `b`, "β"),
					newRule("v", `v`, "β"),
					newRule("bv-word-start", `^β`, "b", atSyllable(0), atWordStart()),
					newRule("y", `y`, "ʝ"),
					newRule("ll", `ll`, "ʝ"),
				},
			},
		},
	}
}

// velarGroup settles g, gu, gü, j and w. Only the first match applies so
// that a g freed from its silent u is not softened again.
func velarGroup() RuleGroup {
	return RuleGroup{
		Name:       "velar",
		Discipline: FirstOf,
		Rules: []Rule{
			newRule("güe-güi", `gü([ei])`, "gu${1}"),
			newRule("w", `w`, "gu"),
			newRule("gue-gui", `gu([ei])`, "g${1}"),
			newRule("j", `j`, "x"),
			newRule("ge-gi", `g([ei])`, "x${1}"),
			newRule("g", `g`, "ɣ"),
		},
	}
}

// glideGroup turns the weak vowel of a diphthong into a glide
func glideGroup() RuleGroup {
	crescent := tagged(syllable.DiphthongCrescent)
	descending := tagged(syllable.DiphthongDescending)
	homogeneous := tagged(syllable.DiphthongHomogeneous)

	return RuleGroup{
		Name:       "glide",
		Discipline: FirstOf,
		Rules: []Rule{
			newRule("ia", `ia`, "i̯a", crescent, once()),
			newRule("ie", `ie`, "i̯e", crescent, once()),
			newRule("io", `io`, "i̯o", crescent, once()),
			newRule("ue", `ue`, "u̯e", crescent, once()),
			newRule("ua", `ua`, "u̯a", crescent, once()),
			newRule("uo", `uo`, "u̯o", crescent, once()),

			newRule("ei", `ei`, "ei̯", descending, once()),
			newRule("ey", `ey`, "ei̯", descending, once()),
			newRule("ai", `ai`, "ai̯", descending, once()),
			newRule("ay", `ay`, "ai̯", descending, once()),
			newRule("oi", `oi`, "oi̯", descending, once()),
			newRule("oy", `oy`, "oi̯", descending, once()),
			newRule("eu", `eu`, "eu̯", descending, once()),
			newRule("au", `au`, "au̯", descending, once()),
			newRule("ou", `ou`, "ou̯", descending, once()),

			newRule("iu", `iu`, "i̯u", homogeneous, once()),
			newRule("ui", `ui`, "u̯i", homogeneous, once()),
			newRule("uy", `uy`, "ui̯", homogeneous, once()),
		},
	}
}

// rhoticOnsetGroup decides a syllable-initial single r. It is a trill at
// the start of the word and after n, l or s, and a tap elsewhere.
func rhoticOnsetGroup() RuleGroup {
	const onset = `^r([^r]|$)`
	return RuleGroup{
		Name:       "rhotic-onset",
		Discipline: FirstOf,
		Rules: []Rule{
			newRule("r-word-start", onset, "r${1}", atSyllable(0), atWordStart(), once()),
			newRule("r-after-n", onset, "r${1}", after('n'), once()),
			newRule("r-after-l", onset, "r${1}", after('l'), once()),
			newRule("r-after-s", onset, "r${1}", after('s'), once()),
			newRule("r-onset-tap", onset, "ɾ${1}", once()),
		},
	}
}
