// Package stats shows accumulated records across all categories.
package stats

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"quizard/internal/game"
	"quizard/internal/percent"
	"quizard/internal/quiz"
	"quizard/internal/router"
	"quizard/internal/screen"
	"quizard/internal/store"
	"quizard/internal/ui/components"
	"quizard/internal/ui/layout"
	"quizard/internal/ui/theme"
)

// statsLoadedMsg carries the catalog with points and the error-set size.
type statsLoadedMsg struct {
	Categories []quiz.Category
	ErrorCount int
	Err        error
}

// StatsScreen renders per-category, per-mode best results.
type StatsScreen struct {
	content  *store.ContentRepo
	progress *store.ProgressRepo

	categories []quiz.Category
	errorCount int
	loaded     bool
	errMsg     string
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates a new StatsScreen.
func New(content *store.ContentRepo, progress *store.ProgressRepo) *StatsScreen {
	return &StatsScreen{content: content, progress: progress}
}

func (s *StatsScreen) Init() tea.Cmd {
	content, progress := s.content, s.progress
	return func() tea.Msg {
		ctx := context.Background()
		cats, err := content.Categories(ctx)
		if err != nil {
			return statsLoadedMsg{Err: err}
		}
		cats, err = progress.AttachPoints(ctx, cats)
		if err != nil {
			return statsLoadedMsg{Err: err}
		}
		errIDs, err := progress.ErrorIDs(ctx)
		if err != nil {
			return statsLoadedMsg{Err: err}
		}
		return statsLoadedMsg{Categories: cats, ErrorCount: len(errIDs)}
	}
}

func (s *StatsScreen) Title() string {
	return "Statistics"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.categories = msg.Categories
		s.errorCount = msg.ErrorCount
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "enter", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("\n\n  " + s.errMsg)
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Loading...")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Statistics"))
	b.WriteString("\n\n")

	if len(s.categories) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("No content packs loaded yet."))
		return b.String()
	}

	var cards []string
	for _, cat := range s.categories {
		cards = append(cards, s.renderCategory(cat, min(width-8, 56)))
	}
	body := strings.Join(cards, "\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, body))

	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Error review queue: %d", s.errorCount)))

	return b.String()
}

func (s *StatsScreen) renderCategory(cat quiz.Category, width int) string {
	var b strings.Builder

	pct := game.AggregateCalculator().RecordPercent(cat.Point)
	header := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(cat.Name)
	badge := levelBadge(percent.LevelOf(pct))
	gap := width - lipgloss.Width(header) - lipgloss.Width(badge)
	if gap < 1 {
		gap = 1
	}
	b.WriteString(header + strings.Repeat(" ", gap) + badge)
	b.WriteString("\n")

	bar := components.NewProgressBar("", pct, true, width)
	b.WriteString(bar.View())
	b.WriteString("\n")

	rows := []struct {
		label string
		mode  quiz.Mode
	}{
		{"Arcade", quiz.ModeArcade},
		{"Marathon", quiz.ModeMarathon},
		{"Sprint", quiz.ModeSprint},
	}
	for _, row := range rows {
		best, err := game.CalculatorFor(row.mode).Record(cat.Point)
		if err != nil {
			continue
		}
		line := fmt.Sprintf("%-10s best %d/%d", row.label, best, cat.Point.Count)
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(line))
		b.WriteString("\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d games played", cat.Point.Attempts)))

	return b.String()
}

func levelBadge(l percent.Level) string {
	switch l {
	case percent.LevelHigh:
		return lipgloss.NewStyle().Foreground(theme.Success).Render("● mastered")
	case percent.LevelMedium:
		return lipgloss.NewStyle().Foreground(theme.Accent).Render("● in progress")
	}
	return lipgloss.NewStyle().Foreground(theme.Error).Render("● starting out")
}
