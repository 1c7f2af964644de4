package charset

import (
	"errors"
	"testing"

	"github.com/vaultpass/passgen/internal/model"
)

func TestBuiltin(t *testing.T) {
	table := Builtin()

	tests := []struct {
		class model.Class
		want  string
	}{
		{model.LatinUpperAlphabet, uppercaseChars},
		{model.LatinLowerAlphabet, lowercaseChars},
		{model.ArabicNumerals, digitChars},
		{model.PunctuationCharacters, punctuationChars},
	}
	for _, tt := range tests {
		if got := string(table.Chars(tt.class)); got != tt.want {
			t.Errorf("Chars(%s) = %q, want %q", tt.class, got, tt.want)
		}
	}

	if len(punctuationChars) != 32 {
		t.Errorf("punctuation class has %d characters, want 32", len(punctuationChars))
	}
}

func TestNewTableRejectsMissingClass(t *testing.T) {
	_, err := NewTable(map[model.Class]string{
		model.LatinUpperAlphabet: "AB",
	})
	if !errors.Is(err, ErrEmptyClass) {
		t.Errorf("NewTable() error = %v, want ErrEmptyClass", err)
	}
}

func TestNewTableRejectsUnknownClass(t *testing.T) {
	_, err := NewTable(map[model.Class]string{
		model.LatinUpperAlphabet:    "A",
		model.LatinLowerAlphabet:    "a",
		model.ArabicNumerals:        "0",
		model.PunctuationCharacters: "!",
		"Cyrillic":                  "ж",
	})
	if !errors.Is(err, ErrUnknownClass) {
		t.Errorf("NewTable() error = %v, want ErrUnknownClass", err)
	}
}

func TestCharsReturnsCopy(t *testing.T) {
	table := Builtin()
	chars := table.Chars(model.ArabicNumerals)
	chars[0] = 'x'

	if got := string(table.Chars(model.ArabicNumerals)); got != digitChars {
		t.Errorf("table was mutated through Chars(): %q", got)
	}
	if table.Chars("Runic") != nil {
		t.Error("Chars() of unknown class should be nil")
	}
}

func TestPoolKeepsCanonicalOrderAndDuplicates(t *testing.T) {
	table, err := NewTable(map[model.Class]string{
		model.LatinUpperAlphabet:    "AB",
		model.LatinLowerAlphabet:    "A",
		model.ArabicNumerals:        "0",
		model.PunctuationCharacters: "!",
	})
	if err != nil {
		t.Fatalf("NewTable() unexpected error: %v", err)
	}

	sel := model.Selection{
		model.PunctuationCharacters: true,
		model.LatinLowerAlphabet:    true,
		model.LatinUpperAlphabet:    true,
	}
	if got := string(table.Pool(sel)); got != "ABA!" {
		t.Errorf("Pool() = %q, want %q", got, "ABA!")
	}
}
