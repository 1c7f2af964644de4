// Package ui holds the password generator window. Form carries the widget
// state and event handlers without depending on a toolkit; window.go binds
// it to Fyne widgets.
package ui

import (
	"fmt"

	"github.com/vaultpass/passgen/internal/charset"
	"github.com/vaultpass/passgen/internal/model"
)

const (
	MsgGenerateFirst = "Please generate a password first."
	MsgCopied        = "The password has been copied to the clipboard."
)

// Generator draws a password for a selection and a length.
type Generator interface {
	GeneratePassword(sel model.Selection, length int) (string, error)
}

// Clipboard receives copied text. fyne.Clipboard satisfies it.
type Clipboard interface {
	SetContent(content string)
}

// Notifier shows user-facing messages.
type Notifier interface {
	Warn(msg string)
	Info(msg string)
}

// Form is the state behind the window: which classes are checked, the
// slider length, the display field and the button enablement.
// It is meant to be driven from a single event loop.
type Form struct {
	gen       Generator
	clipboard Clipboard
	notify    Notifier

	selection   model.Selection
	length      int
	display     string
	copyEnabled bool
}

// NewForm returns a form with no class checked and the minimum length.
func NewForm(gen Generator, clipboard Clipboard, notify Notifier) *Form {
	return &Form{
		gen:       gen,
		clipboard: clipboard,
		notify:    notify,
		selection: make(model.Selection, len(model.Classes)),
		length:    charset.MinLength,
	}
}

// Toggle records a checkbox change.
func (f *Form) Toggle(class model.Class, on bool) {
	f.selection[class] = on
}

// Checked reports whether class is selected.
func (f *Form) Checked(class model.Class) bool {
	return f.selection[class]
}

// SetLength records a slider move. Fractional values are truncated.
func (f *Form) SetLength(v float64) {
	f.length = charset.ClampLength(int(v))
}

func (f *Form) Length() int {
	return f.length
}

// LengthLabel is the text of the label next to the slider.
func (f *Form) LengthLabel() string {
	return fmt.Sprintf("Password length: %d", f.length)
}

// CanGenerate is true iff at least one class is checked.
func (f *Form) CanGenerate() bool {
	return f.selection.Any()
}

// CanCopy is true once a password has been generated.
func (f *Form) CanCopy() bool {
	return f.copyEnabled
}

// Display returns the current text of the password field.
func (f *Form) Display() string {
	return f.display
}

// SetDisplay records edits made directly in the password field.
func (f *Form) SetDisplay(text string) {
	f.display = text
}

// Generate replaces the display field with a fresh password and enables Copy.
func (f *Form) Generate() error {
	if !f.CanGenerate() {
		return charset.ErrNoClassSelected
	}

	f.display = ""
	password, err := f.gen.GeneratePassword(f.selection, f.length)
	if err != nil {
		return err
	}

	f.display = password
	f.copyEnabled = true
	return nil
}

// Copy puts the display field on the clipboard, or warns if it is empty.
func (f *Form) Copy() {
	if f.display == "" {
		f.notify.Warn(MsgGenerateFirst)
		return
	}

	f.clipboard.SetContent(f.display)
	f.notify.Info(MsgCopied)
}
