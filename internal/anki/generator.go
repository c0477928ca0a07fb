package anki

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// Card represents a single pronunciation flashcard
type Card struct {
	Word         string // The Spanish word as written
	Syllables    string // Hyphenated syllables, stressed one in capitals
	IPA          string // Rule-based IPA transcription
	Accentuation string // aguda, llana, esdrújula or sobresdrújula
	Translation  string // Optional English translation
	Notes        string // Optional notes: phonology tags, reference transcription
}

// fields returns the card's note fields in note type order
func (c Card) fields() []string {
	return []string{c.Word, c.Syllables, c.IPA, c.Accentuation, c.Translation, c.Notes}
}

// fieldNames matches Card.fields
var fieldNames = []string{"Word", "Syllables", "IPA", "Accentuation", "Translation", "Notes"}

// GeneratorOptions configures the CSV export
type GeneratorOptions struct {
	OutputPath     string // Output CSV file path
	IncludeHeaders bool   // Include CSV headers
}

// DefaultGeneratorOptions returns sensible defaults
func DefaultGeneratorOptions() *GeneratorOptions {
	return &GeneratorOptions{
		OutputPath:     "anki_import.csv",
		IncludeHeaders: true,
	}
}

// Generator creates Anki-compatible import files
type Generator struct {
	options *GeneratorOptions
	cards   []Card
}

// NewGenerator creates a new Anki generator
func NewGenerator(options *GeneratorOptions) *Generator {
	if options == nil {
		options = DefaultGeneratorOptions()
	}
	return &Generator{
		options: options,
		cards:   make([]Card, 0),
	}
}

// AddCard adds a card to the collection
func (g *Generator) AddCard(card Card) {
	g.cards = append(g.cards, card)
}

// GetCards returns the cards added so far
func (g *Generator) GetCards() []Card {
	return g.cards
}

// GenerateCSV creates a CSV file for Anki import at the configured path
func (g *Generator) GenerateCSV() error {
	file, err := os.Create(g.options.OutputPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	return g.WriteCSV(file)
}

// WriteCSV writes the cards as CSV to w
func (g *Generator) WriteCSV(w io.Writer) error {
	writer := csv.NewWriter(w)

	if g.options.IncludeHeaders {
		if err := writer.Write(fieldNames); err != nil {
			return fmt.Errorf("failed to write headers: %w", err)
		}
	}

	for _, card := range g.cards {
		if err := writer.Write(card.fields()); err != nil {
			return fmt.Errorf("failed to write card: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// GenerateAPKG creates a .apkg file for Anki import
func (g *Generator) GenerateAPKG(outputPath, deckName string) error {
	apkgGen := NewAPKGGenerator(deckName)
	for _, card := range g.cards {
		apkgGen.AddCard(card)
	}
	return apkgGen.GenerateAPKG(outputPath)
}

// Stats returns statistics about the card collection
func (g *Generator) Stats() (totalCards, withTranslation int) {
	totalCards = len(g.cards)
	for _, card := range g.cards {
		if strings.TrimSpace(card.Translation) != "" {
			withTranslation++
		}
	}
	return
}
