package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/vaultpass/passgen/internal/charset"
	"github.com/vaultpass/passgen/internal/model"
)

const (
	AppID = "io.vaultpass.passgen"
	Title = "Password generator"
)

var checkLabels = map[model.Class]string{
	model.LatinUpperAlphabet:    "Uppercase letters",
	model.LatinLowerAlphabet:    "Lowercase letters",
	model.ArabicNumerals:        "Digits",
	model.PunctuationCharacters: "Special characters",
}

type dialogNotifier struct {
	w fyne.Window
}

func (n dialogNotifier) Warn(msg string) { dialog.ShowInformation("Warning", msg, n.w) }
func (n dialogNotifier) Info(msg string) { dialog.ShowInformation("Information", msg, n.w) }

// view holds the widgets bound to a Form.
type view struct {
	form *Form

	checks   map[model.Class]*widget.Check
	label    *widget.Label
	slider   *widget.Slider
	generate *widget.Button
	copy     *widget.Button
	entry    *widget.Entry
	onError  func(error)
}

func newView(form *Form, onError func(error)) *view {
	v := &view{
		form:    form,
		checks:  make(map[model.Class]*widget.Check, len(model.Classes)),
		onError: onError,
	}

	for _, class := range model.Classes {
		v.checks[class] = widget.NewCheck(checkLabels[class], func(on bool) {
			v.form.Toggle(class, on)
			v.sync()
		})
	}

	v.label = widget.NewLabel(form.LengthLabel())

	v.slider = widget.NewSlider(charset.MinLength, charset.MaxLength)
	v.slider.Step = 1
	v.slider.Value = float64(form.Length())
	v.slider.OnChanged = func(value float64) {
		v.form.SetLength(value)
		v.sync()
	}

	v.entry = widget.NewEntry()
	v.entry.OnChanged = v.form.SetDisplay

	v.generate = widget.NewButton("Generate", v.onGenerate)
	v.copy = widget.NewButton("Copy", v.form.Copy)

	v.sync()
	return v
}

func (v *view) onGenerate() {
	if err := v.form.Generate(); err != nil {
		v.onError(err)
	}
	v.entry.SetText(v.form.Display())
	v.sync()
}

// sync pushes the form state onto the widgets.
func (v *view) sync() {
	v.label.SetText(v.form.LengthLabel())
	if v.form.CanGenerate() {
		v.generate.Enable()
	} else {
		v.generate.Disable()
	}
	if v.form.CanCopy() {
		v.copy.Enable()
	} else {
		v.copy.Disable()
	}
}

func (v *view) content() fyne.CanvasObject {
	checks := container.NewGridWithColumns(2,
		v.checks[model.LatinUpperAlphabet],
		v.checks[model.ArabicNumerals],
		v.checks[model.LatinLowerAlphabet],
		v.checks[model.PunctuationCharacters],
	)
	length := container.NewVBox(v.label, v.slider)
	buttons := container.NewCenter(container.NewHBox(v.generate, v.copy))

	return container.NewVBox(checks, length, buttons, v.entry)
}

// Run opens the generator window and blocks until it is closed.
func Run(gen Generator) {
	a := app.NewWithID(AppID)
	w := a.NewWindow(Title)
	w.Resize(fyne.NewSize(500, 300))
	w.SetFixedSize(true)

	form := NewForm(gen, w.Clipboard(), dialogNotifier{w: w})
	v := newView(form, func(err error) {
		slog.Error("password generation failed", "error", err)
		dialog.ShowError(err, w)
	})
	w.SetContent(v.content())

	slog.Info("window opened", "title", Title)
	w.ShowAndRun()
}
