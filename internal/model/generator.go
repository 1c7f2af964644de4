package model

// Class names a character class. The values double as the table names the
// class characters are stored under.
type Class string

const (
	LatinUpperAlphabet    Class = "LatinUpperAlphabet"
	LatinLowerAlphabet    Class = "LatinLowerAlphabet"
	ArabicNumerals        Class = "ArabicNumerals"
	PunctuationCharacters Class = "PunctuationCharacters"
)

// Classes lists every character class in the order their characters are
// concatenated when building a pool.
var Classes = []Class{
	LatinUpperAlphabet,
	LatinLowerAlphabet,
	ArabicNumerals,
	PunctuationCharacters,
}

// Valid reports whether c is one of the four known classes.
func (c Class) Valid() bool {
	for _, k := range Classes {
		if k == c {
			return true
		}
	}
	return false
}

// Selection records which classes are enabled.
type Selection map[Class]bool

// AllClasses returns a selection with every class enabled.
func AllClasses() Selection {
	s := make(Selection, len(Classes))
	for _, c := range Classes {
		s[c] = true
	}
	return s
}

// Any reports whether at least one class is enabled.
func (s Selection) Any() bool {
	for _, on := range s {
		if on {
			return true
		}
	}
	return false
}

// Enabled returns the enabled classes in canonical order.
func (s Selection) Enabled() []Class {
	var out []Class
	for _, c := range Classes {
		if s[c] {
			out = append(out, c)
		}
	}
	return out
}

// GenerateRequest represents a password generation request.
// A nil Classes slice selects every class.
type GenerateRequest struct {
	Length  int     `json:"length"`
	Classes []Class `json:"classes"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Password string `json:"password"`
	Length   int    `json:"length"`
}
