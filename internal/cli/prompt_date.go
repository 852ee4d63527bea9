package cli

import (
	"strings"
	"time"

	"github.com/alexanderramin/focustally/internal/cli/formatter"
	"github.com/alexanderramin/focustally/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// focustallyHuhTheme returns a huh theme using the formatter's Gruvbox palette.
func focustallyHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)
	t.Focused.ErrorIndicator = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// validateDateFilterInput accepts a blank answer (no filter) or anything
// domain.ResolveDateFilter accepts.
func validateDateFilterInput(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	_, err := domain.ResolveDateFilter(s, time.Now())
	return err
}

func newDatePromptForm(result *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Which day should be totaled?").
				Description("YYYY-MM-DD, today or yesterday. Leave blank for every day.").
				Placeholder("today").
				Value(result).
				Validate(validateDateFilterInput),
		),
	).WithTheme(focustallyHuhTheme()).WithShowHelp(false)
}

func promptDateFilter() (string, error) {
	var answer string
	if err := newDatePromptForm(&answer).Run(); err != nil {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}
