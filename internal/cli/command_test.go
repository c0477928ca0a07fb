package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func TestCreateRootCommand(t *testing.T) {
	flags := NewFlags()
	cmd := CreateRootCommand(flags, nil)

	if cmd.Use != "silabario [word]" {
		t.Errorf("Expected Use to be 'silabario [word]', got %s", cmd.Use)
	}

	if !strings.Contains(cmd.Short, "Spanish syllabification") {
		t.Errorf("Expected Short description to contain 'Spanish syllabification'")
	}

	flagTests := []struct {
		name       string
		persistent bool
	}{
		{"config", true},
		{"output", true},
		{"format", true},
		{"dialect", true},
		{"reference", true},
		{"reference-model", true},
		{"log-level", true},
		{"log-format", true},
		{"batch", false},
		{"workers", false},
		{"translate", false},
		{"anki", false},
		{"anki-csv", false},
		{"deck-name", false},
		{"list-models", false},
		{"archive", false},
	}

	for _, tt := range flagTests {
		t.Run("flag_"+tt.name, func(t *testing.T) {
			var flag *pflag.Flag
			if tt.persistent {
				flag = cmd.PersistentFlags().Lookup(tt.name)
			} else {
				flag = cmd.Flags().Lookup(tt.name)
			}
			if flag == nil {
				t.Errorf("Expected flag %s to exist", tt.name)
			}
		})
	}
}

func TestSubcommands(t *testing.T) {
	var gotMode Mode
	var gotArgs []string
	run := func(cmd *cobra.Command, mode Mode, args []string) error {
		gotMode = mode
		gotArgs = args
		return nil
	}

	tests := []struct {
		args []string
		mode Mode
		rest []string
	}{
		{[]string{"ciudad"}, ModeFull, []string{"ciudad"}},
		{[]string{"syllabify", "ciudad", "raíz"}, ModeSyllabify, []string{"ciudad", "raíz"}},
		{[]string{"ipa", "-d", "es-419", "cerveza"}, ModeIPA, []string{"cerveza"}},
		{[]string{"sentence", "¿Qué tal?"}, ModeSentence, []string{"¿Qué tal?"}},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			viper.Reset()
			flags := NewFlags()
			cmd := CreateRootCommand(flags, run)
			cmd.SetArgs(tt.args)

			if err := cmd.Execute(); err != nil {
				t.Fatalf("Execute() unexpected error: %v", err)
			}
			if gotMode != tt.mode {
				t.Errorf("mode = %v, want %v", gotMode, tt.mode)
			}
			if strings.Join(gotArgs, "|") != strings.Join(tt.rest, "|") {
				t.Errorf("args = %v, want %v", gotArgs, tt.rest)
			}
		})
	}
}

func TestSubcommandInheritsDialect(t *testing.T) {
	viper.Reset()
	flags := NewFlags()
	cmd := CreateRootCommand(flags, func(*cobra.Command, Mode, []string) error { return nil })
	cmd.SetArgs([]string{"ipa", "--dialect", "es-419", "cerveza"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}
	if flags.Dialect != "es-419" {
		t.Errorf("Dialect = %q, want es-419", flags.Dialect)
	}
}

func TestModeString(t *testing.T) {
	tests := map[Mode]string{
		ModeFull:      "full",
		ModeSyllabify: "syllabify",
		ModeIPA:       "ipa",
		ModeSentence:  "sentence",
		Mode(42):      "Mode(42)",
	}
	for mode, want := range tests {
		if got := mode.String(); got != want {
			t.Errorf("Mode(%d).String() = %q, want %q", int(mode), got, want)
		}
	}
}

func TestSetupFlags(t *testing.T) {
	cmd := &cobra.Command{}
	flags := NewFlags()

	setupFlags(cmd, flags)

	outputFlag := cmd.PersistentFlags().Lookup("output")
	if outputFlag == nil {
		t.Fatal("output flag not found")
	}

	home, _ := os.UserHomeDir()
	expectedDefault := filepath.Join(home, ".local", "state", "silabario")
	if outputFlag.DefValue != expectedDefault {
		t.Errorf("Expected default output dir to be %s, got %s", expectedDefault, outputFlag.DefValue)
	}

	formatFlag := cmd.PersistentFlags().Lookup("format")
	if formatFlag == nil {
		t.Fatal("format flag not found")
	}
	if formatFlag.DefValue != "text" {
		t.Errorf("Expected default format to be text, got %s", formatFlag.DefValue)
	}

	if f := cmd.PersistentFlags().ShorthandLookup("d"); f == nil || f.Name != "dialect" {
		t.Error("Expected -d to be the dialect shorthand")
	}
}

func TestInitConfig(t *testing.T) {
	originalConfig := viper.New()
	*originalConfig = *viper.GetViper()
	defer func() {
		*viper.GetViper() = *originalConfig
	}()

	tests := []struct {
		name      string
		setupFunc func(t *testing.T) string
		dialect   string
	}{
		{
			name: "with config file",
			setupFunc: func(t *testing.T) string {
				cfgPath := filepath.Join(t.TempDir(), "test-config.yaml")
				content := `phonetic:
  dialect: es-419
reference:
  provider: espeak
  openai_key: test-key
output:
  directory: /test/output`
				if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
					t.Fatalf("Failed to create test config: %v", err)
				}
				return cfgPath
			},
			dialect: "es-419",
		},
		{
			name:      "without config file",
			setupFunc: func(t *testing.T) string { return "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()

			InitConfig(tt.setupFunc(t))

			t.Setenv("SILABARIO_TEST_VAR", "test-value")
			if viper.GetString("test_var") != "test-value" {
				t.Error("Environment variable not properly loaded")
			}

			if tt.dialect != "" && viper.GetString("phonetic.dialect") != tt.dialect {
				t.Errorf("phonetic.dialect = %q, want %q", viper.GetString("phonetic.dialect"), tt.dialect)
			}
		})
	}
}

func TestGetAPIKeys(t *testing.T) {
	originalConfig := viper.New()
	*originalConfig = *viper.GetViper()
	defer func() {
		*viper.GetViper() = *originalConfig
	}()

	tests := []struct {
		name      string
		envVar    string
		configKey string
		get       func() string
		envValue  string
		cfgValue  string
		expected  string
	}{
		{"openai from environment", "OPENAI_API_KEY", "reference.openai_key", GetOpenAIKey, "env-key", "config-key", "env-key"},
		{"openai from config", "OPENAI_API_KEY", "reference.openai_key", GetOpenAIKey, "", "config-key", "config-key"},
		{"openai unset", "OPENAI_API_KEY", "reference.openai_key", GetOpenAIKey, "", "", ""},
		{"gemini from environment", "GEMINI_API_KEY", "reference.gemini_key", GetGeminiKey, "env-key", "config-key", "env-key"},
		{"gemini from config", "GEMINI_API_KEY", "reference.gemini_key", GetGeminiKey, "", "config-key", "config-key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()

			// t.Setenv restores the previous value after the test
			t.Setenv(tt.envVar, tt.envValue)
			if tt.cfgValue != "" {
				viper.Set(tt.configKey, tt.cfgValue)
			}

			if got := tt.get(); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestBindFlagsToViper(t *testing.T) {
	originalConfig := viper.New()
	*originalConfig = *viper.GetViper()
	defer func() {
		*viper.GetViper() = *originalConfig
	}()

	viper.Reset()

	cmd := &cobra.Command{}
	flags := NewFlags()
	setupFlags(cmd, flags)

	cmd.PersistentFlags().Set("output", "/test/output")
	cmd.PersistentFlags().Set("dialect", "es-419")
	cmd.Flags().Set("workers", "8")

	bindFlagsToViper(cmd)

	if viper.GetString("output.directory") != "/test/output" {
		t.Errorf("Expected output.directory to be /test/output, got %s", viper.GetString("output.directory"))
	}
	if viper.GetString("phonetic.dialect") != "es-419" {
		t.Errorf("Expected phonetic.dialect to be es-419, got %s", viper.GetString("phonetic.dialect"))
	}
	if viper.GetInt("batch.workers") != 8 {
		t.Errorf("Expected batch.workers to be 8, got %d", viper.GetInt("batch.workers"))
	}
}

func TestApplyConfig(t *testing.T) {
	originalConfig := viper.New()
	*originalConfig = *viper.GetViper()
	defer func() {
		*viper.GetViper() = *originalConfig
	}()

	viper.Reset()

	cmd := &cobra.Command{}
	flags := NewFlags()
	setupFlags(cmd, flags)

	// Config file values apply unless the flag was given
	viper.Set("reference.provider", "goruut")
	cmd.Flags().Set("deck-name", "Mi mazo")

	ApplyConfig(flags)

	if flags.Reference != "goruut" {
		t.Errorf("Reference = %q, want goruut", flags.Reference)
	}
	if flags.DeckName != "Mi mazo" {
		t.Errorf("DeckName = %q, want 'Mi mazo'", flags.DeckName)
	}
	if flags.Dialect != "es-ES" {
		t.Errorf("Dialect = %q, want default es-ES", flags.Dialect)
	}
	if flags.Workers != 4 {
		t.Errorf("Workers = %d, want default 4", flags.Workers)
	}
}

func TestApplyConfigFromEnvironment(t *testing.T) {
	originalConfig := viper.New()
	*originalConfig = *viper.GetViper()
	defer func() {
		*viper.GetViper() = *originalConfig
	}()

	viper.Reset()

	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	content := `phonetic:
  dialect: es-ES
anki:
  deck_name: From file`
	if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create test config: %v", err)
	}

	t.Setenv("SILABARIO_PHONETIC_DIALECT", "es-419")
	t.Setenv("SILABARIO_OUTPUT_FORMAT", "json")
	InitConfig(cfgPath)

	flags := NewFlags()
	ApplyConfig(flags)

	if flags.Dialect != "es-419" {
		t.Errorf("Dialect = %q, want es-419 from SILABARIO_PHONETIC_DIALECT", flags.Dialect)
	}
	if flags.Format != "json" {
		t.Errorf("Format = %q, want json from SILABARIO_OUTPUT_FORMAT", flags.Format)
	}
	if flags.DeckName != "From file" {
		t.Errorf("DeckName = %q, want value from config file", flags.DeckName)
	}
}
