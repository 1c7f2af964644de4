package charset

import (
	"errors"
	"math/rand/v2"

	"github.com/vaultpass/passgen/internal/model"
)

const (
	MinLength     = 6
	MaxLength     = 60
	DefaultLength = 16
)

var (
	ErrLengthTooShort  = errors.New("password length must be at least 6")
	ErrLengthTooLong   = errors.New("password length must be at most 60")
	ErrNoClassSelected = errors.New("at least one character class must be selected")
	ErrUnknownClass    = errors.New("unknown character class")
	ErrEmptyClass      = errors.New("character class has no characters")
)

// Source is the random index source used to draw characters.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// DefaultSource draws from the auto-seeded math/rand/v2 global generator.
func DefaultSource() Source { return globalSource{} }

// GeneratorOptions configures a single generation.
type GeneratorOptions struct {
	Length    int
	Selection model.Selection
}

// ClampLength forces n into [MinLength, MaxLength].
func ClampLength(n int) int {
	return max(MinLength, min(n, MaxLength))
}

// Generate draws opts.Length characters, each independently and uniformly
// from the pool of the selected classes. The pool is not deduplicated.
func (t *Table) Generate(src Source, opts GeneratorOptions) (string, error) {
	if opts.Length < MinLength {
		return "", ErrLengthTooShort
	}
	if opts.Length > MaxLength {
		return "", ErrLengthTooLong
	}
	if !opts.Selection.Any() {
		return "", ErrNoClassSelected
	}
	for class, on := range opts.Selection {
		if on && !class.Valid() {
			return "", ErrUnknownClass
		}
	}

	pool := t.Pool(opts.Selection)
	result := make([]rune, opts.Length)
	for i := range result {
		result[i] = pool[src.IntN(len(pool))]
	}

	return string(result), nil
}
