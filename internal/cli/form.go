package cli

import (
	"errors"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

var (
	colorAccent = lipgloss.Color("#fe8019")
	colorGreen  = lipgloss.Color("#8ec07c")
	colorFg     = lipgloss.Color("#ebdbb2")
	colorDim    = lipgloss.Color("#928374")
)

func salidasHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(colorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(colorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(colorFg).Background(colorAccent).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(colorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(colorAccent)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(colorAccent)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(colorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(colorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(colorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(colorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(colorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(colorDim)

	return t
}

// clockInput returns a huh.Input for an HH:MM field.
func clockInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder("09:00").
		Value(value).
		Validate(validateClock)
}

// newAddForm mirrors the registration form: date, departure, return (hidden
// when "Sin retorno" is chosen) and reason.
func newAddForm(in *addInput) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Fecha").
				Placeholder("2024-01-31").
				Value(&in.date).
				Validate(validateDate),
			clockInput("Hora de salida", &in.departure),
			huh.NewConfirm().
				Title("Sin retorno").
				Affirmative("Sí").
				Negative("No").
				Value(&in.noReturn),
		),
		huh.NewGroup(
			clockInput("Hora de regreso", &in.ret),
		).WithHideFunc(func() bool { return in.noReturn }),
		huh.NewGroup(
			huh.NewText().
				Title("Motivo").
				Value(&in.reason),
		),
	).WithTheme(salidasHuhTheme()).WithShowHelp(false)
}

func runAddForm(in *addInput) error {
	if err := newAddForm(in).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return errors.New("add cancelled")
		}
		return err
	}
	return nil
}

func confirmWithForm(title string) (bool, error) {
	var ok bool
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Sí").
				Negative("No").
				Value(&ok),
		),
	).WithTheme(salidasHuhTheme()).WithShowHelp(false).Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return false, nil
	}
	return ok, err
}
