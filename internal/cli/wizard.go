package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/folio/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// folioHuhTheme returns a custom huh theme using the formatter palette.
func folioHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// goToProjectForm asks for a project id. It does not validate: a bad id is
// reported by the detail screen the same way a bad route would be.
func goToProjectForm(result *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project ID").
				Placeholder("42").
				Value(result),
		),
	).WithTheme(folioHuhTheme()).WithShowHelp(false)
}

// projectFields holds the values of the add-project form.
type projectFields struct {
	Title       string
	Categories  string
	Description string
	Image       string
}

// addProjectForm collects a new catalog entry.
func addProjectForm(f *projectFields) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&f.Title).
				Validate(requiredText("title")),
			huh.NewInput().
				Title("Categories").
				Description("Comma separated, e.g. Web, Go").
				Value(&f.Categories),
			huh.NewText().
				Title("Description").
				Value(&f.Description),
			huh.NewInput().
				Title("Image URL").
				Placeholder("https://").
				Value(&f.Image),
		),
	).WithTheme(folioHuhTheme()).WithShowHelp(false)
}

func requiredText(name string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", name)
		}
		return nil
	}
}
