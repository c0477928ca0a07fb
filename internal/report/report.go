package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"codeberg.org/snonux/silabario/internal/processor"
)

// Format is an output format for analyses
type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
)

// ParseFormat validates a --format value
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case Text, JSON, YAML:
		return f, nil
	case "yml":
		return YAML, nil
	case "":
		return Text, nil
	}
	return "", fmt.Errorf("unknown report format: %s", s)
}

// Write renders analyses to w in format
func Write(w io.Writer, format Format, analyses []processor.Analysis) error {
	switch format {
	case Text:
		return writeText(w, analyses)
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(analyses); err != nil {
			return fmt.Errorf("failed to encode JSON report: %w", err)
		}
		return nil
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(analyses); err != nil {
			return fmt.Errorf("failed to encode YAML report: %w", err)
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown report format: %s", format)
}

func writeText(w io.Writer, analyses []processor.Analysis) error {
	s := newStyles(lipgloss.NewRenderer(w))

	var b strings.Builder
	for i, a := range analyses {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(s.word.Render(a.Word))
		b.WriteByte('\n')

		if a.Failed() {
			field(&b, s, "error", s.err.Render(a.Error))
			continue
		}

		if syl := a.Syllabification; syl != nil {
			field(&b, s, "syllables", fmt.Sprintf("%s  (%d of %d, %s)",
				hyphenate(s, syl), syl.StressedSyllable, len(syl.Syllables), syl.Accentuation))
			for _, tag := range syl.Phonology {
				field(&b, s, "phonology", tag)
			}
		}
		if a.IPA != "" {
			field(&b, s, "ipa", fmt.Sprintf("%s  %s", s.ipa.Render(a.IPA), s.muted.Render("["+a.Dialect+"]")))
		}
		if ref := a.Reference; ref != nil {
			field(&b, s, "reference", fmt.Sprintf("%s  %s", ref.IPA,
				s.muted.Render(fmt.Sprintf("(%s, distance %d)", ref.Provider, ref.Distance))))
		}
		if a.Translation != "" {
			field(&b, s, "translation", a.Translation)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func field(b *strings.Builder, s styles, label, value string) {
	b.WriteString("  ")
	b.WriteString(s.label.Render(label + ":"))
	b.WriteString(" ")
	b.WriteString(value)
	b.WriteByte('\n')
}

// hyphenate joins the syllables with '-' and highlights the stressed one
func hyphenate(s styles, syl *processor.Syllabification) string {
	parts := make([]string, len(syl.Syllables))
	for i, text := range syl.Syllables {
		if i == syl.StressedSyllable-1 {
			parts[i] = s.stressed.Render(text)
		} else {
			parts[i] = text
		}
	}
	return strings.Join(parts, "-")
}
