package processor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"codeberg.org/snonux/silabario/internal"
	"codeberg.org/snonux/silabario/internal/anki"
	"codeberg.org/snonux/silabario/internal/batch"
	"codeberg.org/snonux/silabario/internal/cli"
	"codeberg.org/snonux/silabario/internal/phonetic"
	"codeberg.org/snonux/silabario/internal/reference"
	"codeberg.org/snonux/silabario/internal/syllable"
	"codeberg.org/snonux/silabario/internal/translation"
)

// Translator translates between Spanish and English
type Translator interface {
	TranslateWord(ctx context.Context, word string) (string, error)
	TranslateToSpanish(ctx context.Context, word string) (string, error)
}

// Syllabification is the syllabifier's view of a word
type Syllabification struct {
	Syllables        []string `json:"syllables" yaml:"syllables"`
	Phonology        []string `json:"phonology,omitempty" yaml:"phonology,omitempty"`
	StressedSyllable int      `json:"stressedSyllableIdx" yaml:"stressed_syllable_idx"`
	AccentedLetter   int      `json:"accentedLetterIdx" yaml:"accented_letter_idx"`
	Accentuation     string   `json:"accentuation" yaml:"accentuation"`
}

// Reference is a transcription from an external provider and its edit
// distance to ours
type Reference struct {
	Provider string `json:"provider" yaml:"provider"`
	IPA      string `json:"ipa" yaml:"ipa"`
	Distance int    `json:"distance" yaml:"distance"`
}

// Analysis is the result for one word or sentence. Parts that were not
// requested stay empty.
type Analysis struct {
	Word            string           `json:"word" yaml:"word"`
	Syllabification *Syllabification `json:"syllabification,omitempty" yaml:"syllabification,omitempty"`
	IPA             string           `json:"ipa,omitempty" yaml:"ipa,omitempty"`
	Dialect         string           `json:"dialect,omitempty" yaml:"dialect,omitempty"`
	Reference       *Reference       `json:"reference,omitempty" yaml:"reference,omitempty"`
	Translation     string           `json:"translation,omitempty" yaml:"translation,omitempty"`
	Error           string           `json:"error,omitempty" yaml:"error,omitempty"`
}

// Failed reports whether the analysis recorded an error
func (a Analysis) Failed() bool {
	return a.Error != ""
}

// Processor runs analyses and collects their results
type Processor struct {
	flags            *cli.Flags
	out              io.Writer
	transcriber      *phonetic.Transcriber
	reference        reference.Provider
	translator       Translator
	translationCache *translation.TranslationCache

	mu      sync.Mutex
	results []Analysis
}

// NewProcessor creates a processor from the command-line flags. The
// reference provider and translator are only set up when requested.
func NewProcessor(flags *cli.Flags) (*Processor, error) {
	dialect, err := phonetic.ParseDialect(flags.Dialect)
	if err != nil {
		return nil, err
	}
	transcriber, err := phonetic.NewTranscriber(dialect)
	if err != nil {
		return nil, err
	}

	p := &Processor{
		flags:            flags,
		out:              os.Stdout,
		transcriber:      transcriber,
		translationCache: translation.NewTranslationCache(),
	}

	provider, err := newReferenceProvider(flags, dialect)
	switch {
	case errors.Is(err, reference.ErrDisabled):
	case err != nil:
		return nil, fmt.Errorf("failed to set up reference provider: %w", err)
	default:
		p.reference = provider
	}

	if flags.Translate {
		p.translator = translation.NewTranslator(cli.GetOpenAIKey())
	}

	return p, nil
}

// referenceConfig collects the provider settings from the flags. Providers
// get the dialect's canonical tag, not the raw flag.
func referenceConfig(flags *cli.Flags, dialect phonetic.DialectID) *reference.Config {
	config := reference.DefaultProviderConfig()
	config.Provider = flags.Reference
	config.Dialect = dialect.String()
	config.OpenAIKey = cli.GetOpenAIKey()
	config.GeminiKey = cli.GetGeminiKey()
	if flags.ReferenceModel != "" {
		config.OpenAIModel = flags.ReferenceModel
		config.GeminiModel = flags.ReferenceModel
	}

	if (config.Provider == "openai" || config.Provider == "gemini") && flags.OutputDir != "" {
		config.EnableCache = true
		config.CacheDir = filepath.Join(flags.OutputDir, ".cache", "reference")
	}
	return config
}

// newReferenceProvider builds the provider named by --reference. Network
// providers are cached on disk and fall back to espeak-ng when it is
// installed.
func newReferenceProvider(flags *cli.Flags, dialect phonetic.DialectID) (reference.Provider, error) {
	config := referenceConfig(flags, dialect)
	network := config.Provider == "openai" || config.Provider == "gemini"

	provider, err := reference.NewProvider(config)
	if err != nil || !network {
		return provider, err
	}

	if fallback, err := reference.NewEspeakProvider(config); err == nil {
		return reference.NewProviderWithFallback(provider, fallback), nil
	}
	return provider, nil
}

// SetOutput redirects progress output
func (p *Processor) SetOutput(w io.Writer) {
	p.out = w
}

// SetReferenceProvider replaces the reference provider; nil disables it
func (p *Processor) SetReferenceProvider(rp reference.Provider) {
	p.reference = rp
}

// SetTranslator replaces the translator; nil disables translation
func (p *Processor) SetTranslator(t Translator) {
	p.translator = t
}

// Results returns the analyses collected so far in input order
func (p *Processor) Results() []Analysis {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Analysis(nil), p.results...)
}

func (p *Processor) record(analyses ...Analysis) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.results = append(p.results, analyses...)
}

// Analyze runs the parts of the analysis that mode asks for. Failures are
// recorded in the returned Analysis, which is returned together with the
// error.
func (p *Processor) Analyze(ctx context.Context, word string, mode cli.Mode) (Analysis, error) {
	a := Analysis{Word: strings.TrimSpace(word)}

	ws, err := syllable.Syllabify(word)
	if err != nil {
		a.Error = err.Error()
		return a, err
	}
	a.Word = ws.Word

	if mode != cli.ModeIPA {
		a.Syllabification = newSyllabification(ws)
	}
	if mode == cli.ModeSyllabify {
		return a, nil
	}

	ipa, err := p.transcriber.Transcribe(ws)
	if err != nil {
		a.Error = err.Error()
		return a, err
	}
	a.IPA = ipa
	a.Dialect = p.transcriber.Dialect().String()

	if mode != cli.ModeFull {
		return a, nil
	}

	if p.reference != nil {
		// A missing reference is not fatal to the analysis
		if ref, err := p.reference.Transcribe(ctx, a.Word); err != nil {
			slog.Warn("reference transcription failed", "word", a.Word, "provider", p.reference.Name(), "error", err)
		} else {
			a.Reference = &Reference{
				Provider: p.reference.Name(),
				IPA:      ref,
				Distance: reference.Distance(ipa, ref),
			}
		}
	}

	a.Translation = p.translate(ctx, a.Word)

	return a, nil
}

func newSyllabification(ws *syllable.WordSyllables) *Syllabification {
	s := &Syllabification{
		Syllables:        ws.Texts(),
		StressedSyllable: ws.StressedSyllable,
		AccentedLetter:   ws.AccentedLetter,
		Accentuation:     ws.Accentuation.SpanishName(),
	}
	for _, syl := range ws.Syllables {
		if syl.Phonology != nil {
			s.Phonology = append(s.Phonology, fmt.Sprintf("%s: %s", syl.Text, syl.Phonology))
		}
	}
	return s
}

// translate returns the cached or freshly fetched English translation, or
// "" when translation is disabled or fails
func (p *Processor) translate(ctx context.Context, word string) string {
	if cached, ok := p.translationCache.Get(word); ok {
		return cached
	}
	if p.translator == nil {
		return ""
	}

	text, err := p.translator.TranslateWord(ctx, word)
	if err != nil {
		slog.Warn("translation failed", "word", word, "error", err)
		return ""
	}
	p.translationCache.Add(word, text)
	return text
}

// ProcessSingleWord runs the full analysis of one word
func (p *Processor) ProcessSingleWord(ctx context.Context, word string) error {
	a, err := p.Analyze(ctx, word, cli.ModeFull)
	if err != nil {
		return fmt.Errorf("failed to analyse %q: %w", word, err)
	}
	p.record(a)
	return nil
}

// ProcessWords analyses each word in mode. Every word gets a result; the
// returned error reports how many failed.
func (p *Processor) ProcessWords(ctx context.Context, mode cli.Mode, words []string) error {
	failed := 0
	for _, word := range words {
		a, err := p.Analyze(ctx, word, mode)
		if err != nil {
			failed++
		}
		p.record(a)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d words failed", failed, len(words))
	}
	return nil
}

// ProcessSentence transcribes running text with phrase boundaries
func (p *Processor) ProcessSentence(ctx context.Context, text string) error {
	ipa, err := p.transcriber.Sentence(text)
	if err != nil {
		return fmt.Errorf("failed to transcribe sentence: %w", err)
	}
	p.record(Analysis{
		Word:    strings.TrimSpace(text),
		IPA:     ipa,
		Dialect: p.transcriber.Dialect().String(),
	})
	return nil
}

// ProcessBatch analyses every entry of the batch file in parallel. Failed
// words are recorded and counted; the batch carries on.
func (p *Processor) ProcessBatch(ctx context.Context) error {
	entries, err := batch.ReadBatchFile(p.flags.BatchFile)
	if err != nil {
		return err
	}

	workers := p.flags.Workers
	if workers < 1 {
		workers = 1
	}

	start := time.Now()
	results := make([]Analysis, len(entries))
	var done, failed atomic.Int64
	var printMu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, entry := range entries {
		g.Go(func() error {
			a := p.processEntry(gctx, entry)
			results[i] = a
			if a.Failed() {
				failed.Add(1)
			}

			n := done.Add(1)
			printMu.Lock()
			defer printMu.Unlock()
			if a.Failed() {
				fmt.Fprintf(p.out, "[%d/%d] %s: error: %s\n", n, len(entries), a.Word, a.Error)
			} else {
				fmt.Fprintf(p.out, "[%d/%d] %s\n", n, len(entries), a.Word)
			}
			// Per-word failures never cancel the group
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("batch interrupted: %w", err)
	}

	p.record(results...)

	total := len(entries)
	fmt.Fprintf(p.out, "\n=== Batch Processing Summary ===\n")
	fmt.Fprintf(p.out, "Total words: %d\n", total)
	fmt.Fprintf(p.out, "Analysed: %d\n", total-int(failed.Load()))
	if failed.Load() > 0 {
		fmt.Fprintf(p.out, "Failed: %d\n", failed.Load())
		for _, a := range results {
			if a.Failed() {
				fmt.Fprintf(p.out, "  - %s: %s\n", a.Word, a.Error)
			}
		}
	}
	fmt.Fprintf(p.out, "Time: %s\n", time.Since(start).Round(time.Millisecond))

	if p.translator != nil {
		path := filepath.Join(p.flags.OutputDir, "translations.txt")
		if err := translation.SaveTranslations(path, p.translationCache.GetAll()); err != nil {
			fmt.Fprintf(p.out, "Warning: %v\n", err)
		}
	}

	return nil
}

// processEntry resolves the Spanish word of a batch entry and analyses it
func (p *Processor) processEntry(ctx context.Context, entry batch.WordEntry) Analysis {
	word := entry.Word
	if entry.NeedsWord {
		if p.translator == nil {
			return Analysis{Word: "= " + entry.Translation, Error: "English-only entry needs --translate"}
		}
		spanish, err := p.translator.TranslateToSpanish(ctx, entry.Translation)
		if err != nil {
			return Analysis{Word: "= " + entry.Translation, Error: fmt.Sprintf("failed to translate %q: %v", entry.Translation, err)}
		}
		word = spanish
	}

	if entry.Translation != "" {
		p.translationCache.Add(syllable.Normalize(word), entry.Translation)
	}

	a, _ := p.Analyze(ctx, word, cli.ModeFull)
	return a
}

// GenerateAnkiFile builds cards from the successful analyses and writes
// them to the output directory. It returns the path of the written file.
func (p *Processor) GenerateAnkiFile() (string, error) {
	outputDir := p.flags.OutputDir
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	var outputPath string
	if p.flags.AnkiCSV {
		outputPath = filepath.Join(outputDir, "anki_import.csv")
	}

	gen := anki.NewGenerator(&anki.GeneratorOptions{
		OutputPath:     outputPath,
		IncludeHeaders: true,
	})
	for _, card := range p.Cards() {
		gen.AddCard(card)
	}

	total, withTranslation := gen.Stats()
	if total == 0 {
		return "", fmt.Errorf("no analysed words to export")
	}

	if p.flags.AnkiCSV {
		if err := gen.GenerateCSV(); err != nil {
			return "", fmt.Errorf("failed to generate CSV: %w", err)
		}
	} else {
		outputPath = filepath.Join(outputDir, fmt.Sprintf("%s.apkg", internal.SanitizeFilename(p.flags.DeckName)))
		if err := gen.GenerateAPKG(outputPath, p.flags.DeckName); err != nil {
			return "", fmt.Errorf("failed to generate APKG: %w", err)
		}
	}

	fmt.Fprintf(p.out, "  Generated %d cards (%d with translation)\n", total, withTranslation)

	return outputPath, nil
}

// Cards converts the successful word analyses into flashcards
func (p *Processor) Cards() []anki.Card {
	var cards []anki.Card
	for _, a := range p.Results() {
		if a.Failed() || a.Syllabification == nil || a.IPA == "" {
			continue
		}
		cards = append(cards, newCard(a))
	}
	return cards
}

func newCard(a Analysis) anki.Card {
	s := a.Syllabification

	syllables := make([]string, len(s.Syllables))
	copy(syllables, s.Syllables)
	if i := s.StressedSyllable - 1; i >= 0 && i < len(syllables) {
		syllables[i] = strings.ToUpper(syllables[i])
	}

	var notes []string
	notes = append(notes, s.Phonology...)
	if a.Reference != nil {
		notes = append(notes, fmt.Sprintf("%s: %s (distance %d)", a.Reference.Provider, a.Reference.IPA, a.Reference.Distance))
	}

	return anki.Card{
		Word:         a.Word,
		Syllables:    strings.Join(syllables, "-"),
		IPA:          a.IPA,
		Accentuation: s.Accentuation,
		Translation:  a.Translation,
		Notes:        strings.Join(notes, "; "),
	}
}
