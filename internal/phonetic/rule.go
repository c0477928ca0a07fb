package phonetic

import (
	"fmt"
	"regexp"

	"codeberg.org/snonux/silabario/internal/syllable"
)

// AnySyllable lets a rule fire in every syllable of the word
const AnySyllable = -1

// maxRuleIterations bounds how often a looping rule may rewrite one syllable
const maxRuleIterations = 64

// PrecedingKind selects how a rule looks at the previous syllable
type PrecedingKind int

const (
	AnyPreceding PrecedingKind = iota
	AtWordStart
	AfterPhone
)

// Preceding is the gate on the last phone emitted for the previous syllable
type Preceding struct {
	Kind  PrecedingKind
	Phone rune
}

// Discipline tells a RuleGroup how many of its rules may fire
type Discipline int

const (
	// FirstOf stops at the first rule that rewrites the syllable
	FirstOf Discipline = iota
	// AllOf applies every matching rule in order
	AllOf
)

func (d Discipline) String() string {
	if d == FirstOf {
		return "firstOf"
	}
	return "allOf"
}

// Rule rewrites a pattern in the working text of a syllable. Template may
// reference the first capture group as ${1}.
type Rule struct {
	ID        string
	Pattern   *regexp.Regexp
	Template  string
	Syllable  int
	Preceding Preceding
	Phonology syllable.PhonologyType
	Once      bool
}

// RuleGroup is an ordered pass over a syllable
type RuleGroup struct {
	Name       string
	Discipline Discipline
	Rules      []Rule
}

// ruleContext describes the syllable being rewritten
type ruleContext struct {
	index     int
	preceding rune
	wordStart bool
	phonology syllable.PhonologyType
}

type ruleOption func(*Rule)

func atSyllable(i int) ruleOption {
	return func(r *Rule) { r.Syllable = i }
}

func after(phone rune) ruleOption {
	return func(r *Rule) { r.Preceding = Preceding{Kind: AfterPhone, Phone: phone} }
}

func atWordStart() ruleOption {
	return func(r *Rule) { r.Preceding = Preceding{Kind: AtWordStart} }
}

func tagged(t syllable.PhonologyType) ruleOption {
	return func(r *Rule) { r.Phonology = t }
}

func once() ruleOption {
	return func(r *Rule) { r.Once = true }
}

func newRule(id, pattern, template string, opts ...ruleOption) Rule {
	r := Rule{
		ID:       id,
		Pattern:  regexp.MustCompile(pattern),
		Template: template,
		Syllable: AnySyllable,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// admits reports whether the rule's gate matches the syllable
func (r *Rule) admits(ctx ruleContext) bool {
	if r.Syllable != AnySyllable && r.Syllable != ctx.index {
		return false
	}
	switch r.Preceding.Kind {
	case AtWordStart:
		if !ctx.wordStart {
			return false
		}
	case AfterPhone:
		if ctx.wordStart || r.Preceding.Phone != ctx.preceding {
			return false
		}
	}
	return r.Phonology == 0 || r.Phonology == ctx.phonology
}

// rewrite applies the rule until its pattern stops matching, or once when
// the rule says so. It reports whether the rule matched at least once.
func (r *Rule) rewrite(text string) (string, bool, error) {
	applied := false
	for i := 0; ; i++ {
		loc := r.Pattern.FindStringSubmatchIndex(text)
		if loc == nil {
			return text, applied, nil
		}
		if i == maxRuleIterations {
			return text, applied, fmt.Errorf("%w: rule %s still matches %q after %d rewrites",
				ErrUnreachableState, r.ID, text, maxRuleIterations)
		}

		replacement := r.Pattern.ExpandString(nil, r.Template, text, loc)
		text = text[:loc[0]] + string(replacement) + text[loc[1]:]
		applied = true

		if r.Once {
			return text, applied, nil
		}
	}
}

// apply runs the group over the working text of one syllable
func (g *RuleGroup) apply(text string, ctx ruleContext) (string, error) {
	for i := range g.Rules {
		rule := &g.Rules[i]
		if !rule.admits(ctx) {
			continue
		}
		out, applied, err := rule.rewrite(text)
		if err != nil {
			return text, fmt.Errorf("group %s: %w", g.Name, err)
		}
		text = out
		if applied && g.Discipline == FirstOf {
			break
		}
	}
	return text, nil
}
