package charset

import (
	"fmt"

	"github.com/vaultpass/passgen/internal/model"
)

const (
	uppercaseChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars   = "abcdefghijklmnopqrstuvwxyz"
	digitChars       = "0123456789"
	punctuationChars = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

// Table maps each character class to its ordered characters. A Table is
// immutable once built; Chars hands out copies.
type Table struct {
	classes map[model.Class][]rune
}

// Builtin returns the table of the four standard ASCII classes.
func Builtin() *Table {
	t, _ := NewTable(map[model.Class]string{
		model.LatinUpperAlphabet:    uppercaseChars,
		model.LatinLowerAlphabet:    lowercaseChars,
		model.ArabicNumerals:        digitChars,
		model.PunctuationCharacters: punctuationChars,
	})
	return t
}

// NewTable builds a table from class name to characters. Every known class
// must be present and non-empty; unknown class names are rejected.
func NewTable(src map[model.Class]string) (*Table, error) {
	t := &Table{classes: make(map[model.Class][]rune, len(model.Classes))}
	for class, chars := range src {
		if !class.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownClass, class)
		}
		t.classes[class] = []rune(chars)
	}
	for _, class := range model.Classes {
		if len(t.classes[class]) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrEmptyClass, class)
		}
	}
	return t, nil
}

// Chars returns a copy of the characters of class, or nil if the class is unknown.
func (t *Table) Chars(class model.Class) []rune {
	chars, ok := t.classes[class]
	if !ok {
		return nil
	}
	out := make([]rune, len(chars))
	copy(out, chars)
	return out
}

// Pool concatenates the characters of every enabled class in canonical
// order. Characters shared by several classes appear once per class.
func (t *Table) Pool(sel model.Selection) []rune {
	var pool []rune
	for _, class := range sel.Enabled() {
		pool = append(pool, t.classes[class]...)
	}
	return pool
}
