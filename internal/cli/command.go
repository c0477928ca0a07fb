package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/silabario/internal"
)

// Mode selects how much of the analysis a command prints
type Mode int

const (
	ModeFull      Mode = iota // syllables, IPA, reference and translation
	ModeSyllabify             // syllables, tags and stress
	ModeIPA                   // transcription only
	ModeSentence              // whole-sentence transcription
)

func (m Mode) String() string {
	switch m {
	case ModeFull:
		return "full"
	case ModeSyllabify:
		return "syllabify"
	case ModeIPA:
		return "ipa"
	case ModeSentence:
		return "sentence"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// RunFunc executes a command in the given mode
type RunFunc func(cmd *cobra.Command, mode Mode, args []string) error

// binding ties a viper key to a flag name
type binding struct {
	key  string
	flag string
}

// persistentBindings are flags shared by the root command and its subcommands
var persistentBindings = []binding{
	{"output.directory", "output"},
	{"output.format", "format"},
	{"phonetic.dialect", "dialect"},
	{"reference.provider", "reference"},
	{"reference.model", "reference-model"},
	{"log.level", "log-level"},
	{"log.format", "log-format"},
}

var localBindings = []binding{
	{"batch.workers", "workers"},
	{"anki.deck_name", "deck-name"},
}

// DefaultOutputDir is where decks and reports go unless -o is given
func DefaultOutputDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", "silabario")
}

// CreateRootCommand creates the root cobra command and its subcommands.
// Every command calls run with its Mode.
func CreateRootCommand(flags *Flags, run RunFunc) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "silabario [word]",
		Short: "Spanish syllabification and IPA transcription",
		Long: `silabario splits Spanish words into syllables, tags hiatus,
diphthongs and triphthongs, classifies stress and transcribes words and
sentences to IPA.

Examples:
  silabario ciudad                    # Full analysis of one word
  silabario --batch words.txt --anki  # Analyse a word list and build a deck
  silabario syllabify murciélago      # Syllables and stress only
  silabario ipa -d es-419 cerveza     # IPA with seseo
  silabario sentence "¿Qué tal?"      # Sentence transcription`,
		Args:    cobra.MaximumNArgs(1),
		Version: internal.Version,
		RunE:    modeRunner(run, ModeFull),
	}

	setupFlags(rootCmd, flags)

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "syllabify WORD...",
			Short: "Print syllables, phonology tags and stress",
			Args:  cobra.MinimumNArgs(1),
			RunE:  modeRunner(run, ModeSyllabify),
		},
		&cobra.Command{
			Use:   "ipa WORD...",
			Short: "Print the IPA transcription of each word",
			Args:  cobra.MinimumNArgs(1),
			RunE:  modeRunner(run, ModeIPA),
		},
		&cobra.Command{
			Use:   "sentence TEXT",
			Short: "Transcribe a whole sentence with phrase boundaries",
			Args:  cobra.MinimumNArgs(1),
			RunE:  modeRunner(run, ModeSentence),
		},
	)

	return rootCmd
}

func modeRunner(run RunFunc, mode Mode) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if run == nil {
			return cmd.Help()
		}
		return run(cmd, mode, args)
	}
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.silabario.yaml)")
	pf.StringVarP(&flags.OutputDir, "output", "o", DefaultOutputDir(), "Output directory for decks and reports")
	pf.StringVarP(&flags.Format, "format", "f", flags.Format, "Report format: text, json or yaml")
	pf.StringVarP(&flags.Dialect, "dialect", "d", flags.Dialect, "Dialect: es-ES (distinción) or es-419 (seseo)")
	pf.StringVar(&flags.Reference, "reference", flags.Reference, "Reference transcriber: none, openai, gemini, espeak or goruut")
	pf.StringVar(&flags.ReferenceModel, "reference-model", "", "Model used by the openai or gemini reference transcriber")
	pf.StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "Log level: debug, info, warn or error")
	pf.StringVar(&flags.LogFormat, "log-format", flags.LogFormat, "Log format: text or json")

	// Local flags
	cmd.Flags().StringVar(&flags.BatchFile, "batch", "", "Process words from file (one per line)")
	cmd.Flags().IntVarP(&flags.Workers, "workers", "w", flags.Workers, "Number of words analysed in parallel")
	cmd.Flags().BoolVar(&flags.Translate, "translate", false, "Translate words to English with OpenAI")
	cmd.Flags().BoolVar(&flags.GenerateAnki, "anki", false, "Generate Anki import file (APKG format by default, use --anki-csv for CSV)")
	cmd.Flags().BoolVar(&flags.AnkiCSV, "anki-csv", false, "Generate CSV format instead of APKG when using --anki")
	cmd.Flags().StringVar(&flags.DeckName, "deck-name", flags.DeckName, "Deck name for APKG export")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List OpenAI models usable as --reference-model")
	cmd.Flags().BoolVar(&flags.Archive, "archive", false, "Move the output directory into the archive and exit")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	for _, b := range persistentBindings {
		viper.BindPFlag(b.key, cmd.PersistentFlags().Lookup(b.flag))
	}
	for _, b := range localBindings {
		viper.BindPFlag(b.key, cmd.Flags().Lookup(b.flag))
	}
}

// ApplyConfig copies the merged flag, environment and config file values
// back into flags. Explicit flags win over the config file.
func ApplyConfig(flags *Flags) {
	flags.OutputDir = viper.GetString("output.directory")
	flags.Format = viper.GetString("output.format")
	flags.Dialect = viper.GetString("phonetic.dialect")
	flags.Reference = viper.GetString("reference.provider")
	flags.ReferenceModel = viper.GetString("reference.model")
	flags.LogLevel = viper.GetString("log.level")
	flags.LogFormat = viper.GetString("log.format")
	flags.Workers = viper.GetInt("batch.workers")
	flags.DeckName = viper.GetString("anki.deck_name")
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".silabario" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".silabario")
	}

	// Environment variables, e.g. SILABARIO_PHONETIC_DIALECT for phonetic.dialect
	viper.SetEnvPrefix("SILABARIO")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("reference.openai_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("reference.gemini_key")
}
