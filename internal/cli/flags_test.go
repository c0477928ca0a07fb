package cli

import (
	"reflect"
	"testing"
)

func TestNewFlags(t *testing.T) {
	flags := NewFlags()

	tests := []struct {
		name     string
		got      interface{}
		expected interface{}
	}{
		{"Format", flags.Format, "text"},
		{"Dialect", flags.Dialect, "es-ES"},
		{"Workers", flags.Workers, 4},
		{"Reference", flags.Reference, "none"},
		{"DeckName", flags.DeckName, "Spanish Pronunciation"},
		{"LogLevel", flags.LogLevel, "warn"},
		{"LogFormat", flags.LogFormat, "text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !reflect.DeepEqual(tt.got, tt.expected) {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}

	// Boolean defaults are all false
	boolTests := []struct {
		name  string
		value bool
	}{
		{"Translate", flags.Translate},
		{"GenerateAnki", flags.GenerateAnki},
		{"AnkiCSV", flags.AnkiCSV},
		{"ListModels", flags.ListModels},
		{"Archive", flags.Archive},
	}

	for _, tt := range boolTests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value {
				t.Errorf("%s = %v, want false", tt.name, tt.value)
			}
		})
	}

	stringTests := []struct {
		name  string
		value string
	}{
		{"CfgFile", flags.CfgFile},
		{"OutputDir", flags.OutputDir},
		{"BatchFile", flags.BatchFile},
		{"ReferenceModel", flags.ReferenceModel},
	}

	for _, tt := range stringTests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				t.Errorf("%s = %v, want empty string", tt.name, tt.value)
			}
		})
	}
}
