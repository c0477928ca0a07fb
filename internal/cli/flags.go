package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile   string
	OutputDir string
	Format    string
	Dialect   string
	BatchFile string
	Workers   int

	// Reference transcription flags
	Reference      string
	ReferenceModel string

	// Translation and export flags
	Translate    bool
	GenerateAnki bool
	AnkiCSV      bool
	DeckName     string

	// Housekeeping
	ListModels bool
	Archive    bool

	// Logging
	LogLevel  string
	LogFormat string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		Format:    "text",
		Dialect:   "es-ES",
		Workers:   4,
		Reference: "none",
		DeckName:  "Spanish Pronunciation",
		LogLevel:  "warn",
		LogFormat: "text",
	}
}
