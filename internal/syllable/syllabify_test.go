package syllable

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func tag(typ PhonologyType, text string) *Phonology {
	return &Phonology{Type: typ, Text: text}
}

type expectedSyllable struct {
	text      string
	phonology *Phonology
}

func TestSyllabify(t *testing.T) {
	tests := []struct {
		word         string
		syllables    []expectedSyllable
		stressed     int
		accented     int
		accentuation Accentuation
	}{
		{"ciudad", []expectedSyllable{{"ciu", tag(DiphthongHomogeneous, "iu")}, {"dad", nil}}, 2, -1, Acute},
		{"raíz", []expectedSyllable{{"ra", tag(HiatusAccentual, "a-í")}, {"íz", nil}}, 2, 2, Acute},
		{"cae", []expectedSyllable{{"ca", tag(HiatusSimple1, "a-e")}, {"e", nil}}, 1, -1, Plain},
		{"reo", []expectedSyllable{{"re", tag(HiatusSimple1, "e-o")}, {"o", nil}}, 1, -1, Plain},
		{"noé", []expectedSyllable{{"no", tag(HiatusAccentual, "o-é")}, {"é", nil}}, 2, 2, Acute},
		{"paseé", []expectedSyllable{{"pa", nil}, {"se", tag(HiatusAccentual, "e-é")}, {"é", nil}}, 3, 4, Acute},
		{"teatro", []expectedSyllable{{"te", tag(HiatusSimple1, "e-a")}, {"a", nil}, {"tro", nil}}, 2, -1, Plain},
		{"azahar", []expectedSyllable{{"a", nil}, {"za", tag(HiatusSimple1, "a-ha")}, {"har", nil}}, 3, -1, Acute},
		{"zanahoria", []expectedSyllable{{"za", nil}, {"na", tag(HiatusSimple1, "a-ho")}, {"ho", nil}, {"ria", tag(DiphthongCrescent, "ia")}}, 3, -1, Plain},
		{"cuautitlán", []expectedSyllable{{"cuau", tag(Triphthong, "uau")}, {"ti", nil}, {"tlán", nil}}, 3, 8, Acute},
		{"apreciáis", []expectedSyllable{{"a", nil}, {"pre", nil}, {"ciáis", tag(Triphthong, "iái")}}, 3, 6, Acute},
		{"bioinformática", []expectedSyllable{{"bioin", tag(Triphthong, "ioi")}, {"for", nil}, {"má", nil}, {"ti", nil}, {"ca", nil}}, 3, 9, Prosed},
		{"electrodoméstico", []expectedSyllable{{"e", nil}, {"lec", nil}, {"tro", nil}, {"do", nil}, {"més", nil}, {"ti", nil}, {"co", nil}}, 5, 10, Prosed},
		{"loó", []expectedSyllable{{"lo", tag(HiatusAccentual, "o-ó")}, {"ó", nil}}, 2, 2, Acute},
		{"güey", []expectedSyllable{{"güey", tag(Triphthong, "üey")}}, 1, -1, Acute},
		{"riais", []expectedSyllable{{"riais", tag(Triphthong, "iai")}}, 1, -1, Acute},
		{"samoa", []expectedSyllable{{"sa", nil}, {"mo", tag(HiatusSimple1, "o-a")}, {"a", nil}}, 2, -1, Plain},
		{"feo", []expectedSyllable{{"fe", tag(HiatusSimple1, "e-o")}, {"o", nil}}, 1, -1, Plain},
		{"caoba", []expectedSyllable{{"ca", tag(HiatusSimple1, "a-o")}, {"o", nil}, {"ba", nil}}, 2, -1, Plain},
		{"zoo", []expectedSyllable{{"zo", tag(HiatusSimple1, "o-o")}, {"o", nil}}, 1, -1, Plain},
		{"noúmeno", []expectedSyllable{{"no", tag(HiatusAccentual, "o-ú")}, {"ú", nil}, {"me", nil}, {"no", nil}}, 2, 2, Prosed},
		{"licúe", []expectedSyllable{{"li", nil}, {"cú", tag(HiatusAccentual, "ú-e")}, {"e", nil}}, 2, 3, Plain},
		{"chiita", []expectedSyllable{{"chi", tag(HiatusSimple2, "i-i")}, {"i", nil}, {"ta", nil}}, 2, -1, Plain},
		{"duunviro", []expectedSyllable{{"du", tag(HiatusSimple2, "u-u")}, {"un", nil}, {"vi", nil}, {"ro", nil}}, 3, -1, Plain},
		{"consensuéis", []expectedSyllable{{"con", nil}, {"sen", nil}, {"suéis", tag(Triphthong, "uéi")}}, 3, 8, Acute},
		{"paella", []expectedSyllable{{"pa", tag(HiatusSimple1, "a-e")}, {"e", nil}, {"lla", nil}}, 2, -1, Plain},
		{"baúl", []expectedSyllable{{"ba", tag(HiatusAccentual, "a-ú")}, {"úl", nil}}, 2, 2, Acute},
		{"sioux", []expectedSyllable{{"sioux", tag(Triphthong, "iou")}}, 1, -1, Acute},
		{"biaural", []expectedSyllable{{"biau", tag(Triphthong, "iau")}, {"ral", nil}}, 2, -1, Acute},
		{"ruido", []expectedSyllable{{"rui", tag(DiphthongHomogeneous, "ui")}, {"do", nil}}, 1, -1, Plain},
		{"europa", []expectedSyllable{{"eu", tag(DiphthongDescending, "eu")}, {"ro", nil}, {"pa", nil}}, 2, -1, Plain},
		{"matzah", []expectedSyllable{{"mat", nil}, {"zah", nil}}, 2, -1, Acute},
		{"orquesta", []expectedSyllable{{"or", nil}, {"ques", nil}, {"ta", nil}}, 2, -1, Plain},
		{"queso", []expectedSyllable{{"que", nil}, {"so", nil}}, 1, -1, Plain},
		{"habladuría", []expectedSyllable{{"ha", nil}, {"bla", nil}, {"du", nil}, {"rí", tag(HiatusAccentual, "í-a")}, {"a", nil}}, 4, 8, Plain},
		{"jaén", []expectedSyllable{{"ja", tag(HiatusAccentual, "a-é")}, {"én", nil}}, 2, 2, Acute},
		{"himno", []expectedSyllable{{"him", nil}, {"no", nil}}, 1, -1, Plain},
		{"dirham", []expectedSyllable{{"dir", nil}, {"ham", nil}}, 2, -1, Acute},
		{"apartheid", []expectedSyllable{{"a", nil}, {"part", nil}, {"heid", tag(DiphthongDescending, "ei")}}, 3, -1, Acute},
		{"ashley", []expectedSyllable{{"as", nil}, {"hley", nil}}, 1, -1, Plain},
		{"copyright", []expectedSyllable{{"cop", nil}, {"y", nil}, {"right", nil}}, 3, -1, Acute},
		{"triptongo", []expectedSyllable{{"trip", nil}, {"ton", nil}, {"go", nil}}, 2, -1, Plain},
		{"guerra", []expectedSyllable{{"gue", tag(DiphthongCrescent, "ue")}, {"rra", nil}}, 1, -1, Plain},
		{"  Ciudad ", []expectedSyllable{{"ciu", tag(DiphthongHomogeneous, "iu")}, {"dad", nil}}, 2, -1, Acute},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			got, err := Syllabify(tt.word)
			if err != nil {
				t.Fatalf("Syllabify(%q) returned error: %v", tt.word, err)
			}

			if len(got.Syllables) != len(tt.syllables) {
				t.Fatalf("Syllabify(%q) = %v, want %d syllables", tt.word, got.Texts(), len(tt.syllables))
			}
			for i, want := range tt.syllables {
				s := got.Syllables[i]
				if s.Text != want.text {
					t.Errorf("syllable %d text = %q, want %q", i, s.Text, want.text)
				}
				if !reflect.DeepEqual(s.Phonology, want.phonology) {
					t.Errorf("syllable %d (%q) phonology = %v, want %v", i, s.Text, s.Phonology, want.phonology)
				}
			}
			if got.StressedSyllable != tt.stressed {
				t.Errorf("StressedSyllable = %d, want %d", got.StressedSyllable, tt.stressed)
			}
			if got.AccentedLetter != tt.accented {
				t.Errorf("AccentedLetter = %d, want %d", got.AccentedLetter, tt.accented)
			}
			if got.Accentuation != tt.accentuation {
				t.Errorf("Accentuation = %v, want %v", got.Accentuation, tt.accentuation)
			}
		})
	}
}

func TestSyllabifyIndexes(t *testing.T) {
	got, err := Syllabify("ciudad")
	if err != nil {
		t.Fatalf("Syllabify failed: %v", err)
	}

	want := []Syllable{
		{Index: 0, Text: "ciu", Phonology: tag(DiphthongHomogeneous, "iu")},
		{Index: 3, Text: "dad"},
	}
	if !reflect.DeepEqual(got.Syllables, want) {
		t.Errorf("Syllables = %+v, want %+v", got.Syllables, want)
	}
}

func TestSyllabifyErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		err   error
	}{
		{"empty", "", ErrInvalidInput},
		{"blank", "   ", ErrInvalidInput},
		{"inner space", "a x c", ErrInvalidInput},
		{"inner tab", "casa\tgrande", ErrInvalidInput},
		{"all consonants", "xsds", ErrNoNucleus},
		{"single consonant", "h", ErrNoNucleus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Syllabify(tt.input)
			if !errors.Is(err, tt.err) {
				t.Errorf("Syllabify(%q) error = %v, want %v", tt.input, err, tt.err)
			}
		})
	}
}

var propertyWords = []string{
	"piso", "pisó", "camión", "murciélago", "esdrújula", "pingüino", "paragüas",
	"averigüéis", "buey", "ahumado", "prohibir", "rehúso", "búho", "construcción",
	"instrumento", "transportista", "abstracto", "obscuro", "perspectiva",
	"dígamelo", "cómetelo", "examen", "lápiz", "árboles", "huevo", "hielo",
	"yegua", "muy", "hoy", "israelita", "alrededor", "enredo", "subrayar",
	"wisky", "güiski", "taxi", "auxilio", "méxico", "xilófono", "afganistán", "hablar",
}

func TestSyllabifyPartition(t *testing.T) {
	for _, word := range propertyWords {
		t.Run(word, func(t *testing.T) {
			got, err := Syllabify(word)
			if err != nil {
				t.Fatalf("Syllabify(%q) returned error: %v", word, err)
			}
			if joined := strings.Join(got.Texts(), ""); joined != got.Word {
				t.Errorf("syllables %v join to %q, want %q", got.Texts(), joined, got.Word)
			}

			offset := 0
			for i, s := range got.Syllables {
				if s.Index != offset {
					t.Errorf("syllable %d index = %d, want %d", i, s.Index, offset)
				}
				offset += len([]rune(s.Text))
			}
		})
	}
}

func TestSyllabifyAccentuationInvariant(t *testing.T) {
	for _, word := range propertyWords {
		t.Run(word, func(t *testing.T) {
			got, err := Syllabify(word)
			if err != nil {
				t.Fatalf("Syllabify(%q) returned error: %v", word, err)
			}
			n := len(got.Syllables)
			if got.StressedSyllable < 1 || got.StressedSyllable > n {
				t.Fatalf("StressedSyllable %d out of range [1, %d]", got.StressedSyllable, n)
			}

			idx := n - got.StressedSyllable
			if idx > 3 {
				idx = 3
			}
			if want := accentuationTable[idx]; got.Accentuation != want {
				t.Errorf("Accentuation = %v, want %v", got.Accentuation, want)
			}
		})
	}
}

func TestAccentuationNames(t *testing.T) {
	tests := []struct {
		a       Accentuation
		name    string
		spanish string
	}{
		{Acute, "acute", "aguda"},
		{Plain, "plain", "llana"},
		{Prosed, "prosed", "esdrújula"},
		{Overprosed, "overprosed", "sobresdrújula"},
	}

	for _, tt := range tests {
		if got := tt.a.String(); got != tt.name {
			t.Errorf("String() = %q, want %q", got, tt.name)
		}
		if got := tt.a.SpanishName(); got != tt.spanish {
			t.Errorf("SpanishName() = %q, want %q", got, tt.spanish)
		}
	}
}

func TestOverprosed(t *testing.T) {
	got, err := Syllabify("dígamelo")
	if err != nil {
		t.Fatalf("Syllabify failed: %v", err)
	}
	if got.StressedSyllable != 1 {
		t.Errorf("StressedSyllable = %d, want 1", got.StressedSyllable)
	}
	if got.Accentuation != Overprosed {
		t.Errorf("Accentuation = %v, want %v", got.Accentuation, Overprosed)
	}
}
