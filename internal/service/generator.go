package service

import (
	"sync"

	"github.com/vaultpass/passgen/internal/charset"
	"github.com/vaultpass/passgen/internal/model"
)

// GeneratorService handles password generation business logic.
// It is safe for concurrent use.
type GeneratorService struct {
	table *charset.Table

	mu  sync.Mutex
	src charset.Source
}

// NewGeneratorService creates a GeneratorService over an immutable table.
// A nil src uses charset.DefaultSource.
func NewGeneratorService(table *charset.Table, src charset.Source) *GeneratorService {
	if src == nil {
		src = charset.DefaultSource()
	}
	return &GeneratorService{table: table, src: src}
}

// Table returns the character class table the service draws from.
func (s *GeneratorService) Table() *charset.Table {
	return s.table
}

// GeneratePassword draws a password for an explicit selection and length.
func (s *GeneratorService) GeneratePassword(sel model.Selection, length int) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.table.Generate(s.src, charset.GeneratorOptions{
		Length:    length,
		Selection: sel,
	})
}

// Generate produces a password based on the given request.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	length := req.Length
	if length == 0 {
		length = charset.DefaultLength
	}

	sel := model.AllClasses()
	if req.Classes != nil {
		sel = selectionOf(req.Classes)
	}

	password, err := s.GeneratePassword(sel, length)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	return model.GenerateResponse{
		Password: password,
		Length:   len([]rune(password)),
	}, nil
}

func selectionOf(classes []model.Class) model.Selection {
	sel := make(model.Selection, len(classes))
	for _, c := range classes {
		sel[c] = true
	}
	return sel
}
