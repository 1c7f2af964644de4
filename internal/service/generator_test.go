package service

import (
	"errors"
	"math/rand/v2"
	"strings"
	"sync"
	"testing"

	"github.com/vaultpass/passgen/internal/charset"
	"github.com/vaultpass/passgen/internal/model"
)

func newTestGeneratorService() *GeneratorService {
	return NewGeneratorService(charset.Builtin(), rand.New(rand.NewPCG(7, 11)))
}

func TestGenerate_Defaults(t *testing.T) {
	svc := newTestGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != charset.DefaultLength {
		t.Errorf("expected length %d, got %d", charset.DefaultLength, resp.Length)
	}
	if len(resp.Password) != charset.DefaultLength {
		t.Errorf("expected password length %d, got %d", charset.DefaultLength, len(resp.Password))
	}
}

func TestGenerate_CustomClasses(t *testing.T) {
	svc := newTestGeneratorService()
	resp, err := svc.Generate(model.GenerateRequest{
		Length:  32,
		Classes: []model.Class{model.LatinUpperAlphabet, model.LatinLowerAlphabet},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != 32 {
		t.Errorf("expected length 32, got %d", resp.Length)
	}
	for _, c := range resp.Password {
		if !((c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')) {
			t.Errorf("unexpected character %q in password with only uppercase+lowercase", c)
		}
	}
}

func TestGenerate_LengthTooShort(t *testing.T) {
	svc := newTestGeneratorService()
	_, err := svc.Generate(model.GenerateRequest{Length: 3})
	if !errors.Is(err, charset.ErrLengthTooShort) {
		t.Fatalf("expected ErrLengthTooShort, got %v", err)
	}
}

func TestGenerate_LengthTooLong(t *testing.T) {
	svc := newTestGeneratorService()
	_, err := svc.Generate(model.GenerateRequest{Length: 200})
	if !errors.Is(err, charset.ErrLengthTooLong) {
		t.Fatalf("expected ErrLengthTooLong, got %v", err)
	}
}

func TestGenerate_NoClasses(t *testing.T) {
	svc := newTestGeneratorService()
	_, err := svc.Generate(model.GenerateRequest{Length: 16, Classes: []model.Class{}})
	if !errors.Is(err, charset.ErrNoClassSelected) {
		t.Fatalf("expected ErrNoClassSelected, got %v", err)
	}
}

func TestGenerate_UnknownClass(t *testing.T) {
	svc := newTestGeneratorService()
	_, err := svc.Generate(model.GenerateRequest{Length: 16, Classes: []model.Class{"Emoji"}})
	if !errors.Is(err, charset.ErrUnknownClass) {
		t.Fatalf("expected ErrUnknownClass, got %v", err)
	}
}

func TestGeneratePassword_NilSourceUsesDefault(t *testing.T) {
	svc := NewGeneratorService(charset.Builtin(), nil)
	password, err := svc.GeneratePassword(model.Selection{model.ArabicNumerals: true}, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Trim(password, "0123456789") != "" {
		t.Errorf("password %q contains non-digits", password)
	}
}

func TestGeneratePassword_Concurrent(t *testing.T) {
	svc := newTestGeneratorService()

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if _, err := svc.GeneratePassword(model.AllClasses(), 24); err != nil {
					errs <- err
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("unexpected error: %v", err)
	}
}
