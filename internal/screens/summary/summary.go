// Package summary shows the end-of-game result.
package summary

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"quizard/internal/game"
	"quizard/internal/percent"
	"quizard/internal/quiz"
	"quizard/internal/router"
	"quizard/internal/screen"
	"quizard/internal/ui/components"
	"quizard/internal/ui/layout"
	"quizard/internal/ui/theme"
)

// SummaryScreen displays one finished session's result.
type SummaryScreen struct {
	result       *game.Result
	categoryName string
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(result *game.Result, categoryName string) *SummaryScreen {
	return &SummaryScreen{result: result, categoryName: categoryName}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Game Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	r := s.result
	if r == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Game over!"))
	b.WriteString("\n\n")

	sub := fmt.Sprintf("%s · %s", s.categoryName, modeLabel(r.Mode))
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(sub))
	b.WriteString("\n\n")

	pct := s.scorePercent()
	statsLine := fmt.Sprintf("Score: %d/%d        Accuracy: %d%%        Time: %d:%02d",
		r.Score, r.Count, pct, r.Elapsed/60, r.Elapsed%60)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	bar := components.NewProgressBar("", pct, false, min(width-8, 50))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	if r.Mode.HasRecord() {
		if r.NewRecord() {
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.Accent).
				Bold(true).
				Render(fmt.Sprintf("New record! Previous best: %d", r.Record)))
		} else {
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.TextDim).
				Render(fmt.Sprintf("Best: %d", r.Record)))
		}
		b.WriteString("\n\n")
	}

	if len(r.ErrorIDs) > 0 && r.Mode != quiz.ModeError {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("%d missed questions added to error review", len(r.ErrorIDs))))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(levelColor(percent.LevelOf(pct))).
		Render(levelMessage(percent.LevelOf(pct))))
	b.WriteString("\n\n")

	btn := components.NewButton("Continue", true, nil)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, btn.View()))

	return b.String()
}

// scorePercent favors the mode calculator; modes without records use the
// shared percent math directly.
func (s *SummaryScreen) scorePercent() int {
	r := s.result
	if calc := game.CalculatorFor(r.Mode); calc != nil {
		if pct, err := calc.RecordPercentFromValues(r.Score, r.Count); err == nil {
			return pct
		}
	}
	return percent.Calculate(r.Score, r.Count)
}

func levelColor(l percent.Level) color.Color {
	switch l {
	case percent.LevelHigh:
		return theme.Success
	case percent.LevelMedium:
		return theme.Accent
	}
	return theme.Error
}

func levelMessage(l percent.Level) string {
	switch l {
	case percent.LevelHigh:
		return "Outstanding!"
	case percent.LevelMedium:
		return "Nice work, keep going!"
	}
	return "Keep practicing, you'll get there."
}

func modeLabel(m quiz.Mode) string {
	switch m {
	case quiz.ModeArcade:
		return "Arcade"
	case quiz.ModeMarathon:
		return "Marathon"
	case quiz.ModeSprint:
		return "Sprint"
	case quiz.ModeError:
		return "Error Review"
	case quiz.ModeAITasks:
		return "AI Tasks"
	}
	return ""
}
