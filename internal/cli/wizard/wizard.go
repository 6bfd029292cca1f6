package wizard

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/mawsis/nebula-cli/pkg/models"
)

// Brand colours used by the wizard theme.
const (
	ColorPrimary   = "#A78BFA"
	ColorSecondary = "#22D3EE"
	ColorSuccess   = "#34D399"
	ColorError     = "#F87171"
	ColorText      = "#F3F4F6"
	ColorMuted     = "#9CA3AF"
	ColorBorder    = "#4B5563"
)

// asker answers one question and returns the chosen option value.
type asker func(q *Question) (string, error)

// Run asks the default questions with d preselected.
func Run(d Defaults) (*Result, error) {
	return RunQuestions(d, DefaultQuestions(d))
}

// RunQuestions asks each question in order with huh. Fields without a
// question keep their value from d.
// Each question runs as its own huh.Form to avoid the huh v0.8.x YOffset
// scroll bug that occurs when multiple groups share a single viewport.
func RunQuestions(d Defaults, questions []Question) (*Result, error) {
	theme := newNebulaWizardTheme()
	return run(d, questions, func(q *Question) (string, error) {
		return askHuh(q, theme)
	})
}

func run(d Defaults, questions []Question, ask asker) (*Result, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	result := d.resolve()
	for i := range questions {
		q := &questions[i]
		value, err := ask(q)
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil, ErrCancelled
			}
			return nil, fmt.Errorf("wizard error: %w", err)
		}
		if err := saveAnswer(q, value, result); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func askHuh(q *Question, theme *huh.Theme) (string, error) {
	selected := q.Default
	form := huh.NewForm(huh.NewGroup(buildSelectField(q, &selected))).
		WithTheme(theme).
		WithAccessible(false)
	if err := form.Run(); err != nil {
		return "", err
	}
	return selected, nil
}

// buildSelectField creates a huh.Select bound to value.
// Options are static: huh v0.8.x OptionsFunc forces a fixed height that
// scrolls the selected item to the top and hides the options above it.
func buildSelectField(q *Question, value *string) *huh.Select[string] {
	opts := make([]huh.Option[string], len(q.Options))
	for i, opt := range q.Options {
		key := opt.Label
		if opt.Desc != "" {
			key = opt.Label + " - " + opt.Desc
		}
		opts[i] = huh.NewOption(key, opt.Value)
	}

	return huh.NewSelect[string]().
		Title(q.Title).
		Description(q.Description).
		Options(opts...).
		Value(value)
}

// saveAnswer stores an answer in the result.
func saveAnswer(q *Question, value string, result *Result) error {
	if value == "" {
		value = q.Default
	}
	if !q.hasOption(value) {
		return fmt.Errorf("%w: %s %q", ErrInvalidAnswer, q.ID, value)
	}

	switch q.ID {
	case QuestionShape:
		result.Shape = models.AppShape(value)
	case QuestionDatabase:
		result.Database = models.Database(value)
	}
	return nil
}

// newNebulaWizardTheme creates a huh.Theme with the nebula palette.
func newNebulaWizardTheme() *huh.Theme {
	t := huh.ThemeBase()

	primary := lipgloss.AdaptiveColor{Light: "#6D28D9", Dark: ColorPrimary}
	secondary := lipgloss.AdaptiveColor{Light: "#0E7490", Dark: ColorSecondary}
	green := lipgloss.AdaptiveColor{Light: "#059669", Dark: ColorSuccess}
	red := lipgloss.AdaptiveColor{Light: "#DC2626", Dark: ColorError}
	text := lipgloss.AdaptiveColor{Light: "#111827", Dark: ColorText}
	muted := lipgloss.AdaptiveColor{Light: "#6B7280", Dark: ColorMuted}
	border := lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: ColorBorder}

	t.Focused.Base = t.Focused.Base.BorderForeground(border)
	t.Focused.Card = t.Focused.Base
	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(red)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(red)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(primary).SetString("▸ ")
	t.Focused.NextIndicator = t.Focused.NextIndicator.Foreground(primary)
	t.Focused.PrevIndicator = t.Focused.PrevIndicator.Foreground(primary)
	t.Focused.Option = t.Focused.Option.Foreground(text)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(green)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(green).SetString("◆ ")
	t.Focused.UnselectedOption = t.Focused.UnselectedOption.Foreground(text)
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(muted).SetString("◇ ")
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(secondary)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.Card = t.Blurred.Base
	t.Blurred.NextIndicator = lipgloss.NewStyle()
	t.Blurred.PrevIndicator = lipgloss.NewStyle()

	t.Group.Title = t.Focused.Title
	t.Group.Description = t.Focused.Description

	return t
}
