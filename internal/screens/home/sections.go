package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"quizard/internal/percent"
	"quizard/internal/quiz"
	"quizard/internal/router"
	"quizard/internal/screen"
	"quizard/internal/screens/play"
	"quizard/internal/ui/components"
	"quizard/internal/ui/theme"
)

// sectionsLoadedMsg carries the category's sections with points attached.
type sectionsLoadedMsg struct {
	Sections []quiz.Section
	Err      error
}

// SectionScreen picks an arcade section. Sections unlock in order: a
// section opens once every earlier one has been cleared to a high score.
type SectionScreen struct {
	category quiz.Category
	deps     Deps
	menu     components.Menu
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*SectionScreen)(nil)

func newSectionScreen(cat quiz.Category, deps Deps) *SectionScreen {
	return &SectionScreen{category: cat, deps: deps}
}

func (s *SectionScreen) Init() tea.Cmd {
	deps := s.deps
	catID := s.category.ID
	return func() tea.Msg {
		ctx := context.Background()
		sections, err := deps.Content.Sections(ctx, catID)
		if err != nil {
			return sectionsLoadedMsg{Err: err}
		}
		sections, err = deps.Progress.AttachSectionPoints(ctx, deps.Content, sections)
		if err != nil {
			return sectionsLoadedMsg{Err: err}
		}
		return sectionsLoadedMsg{Sections: sections}
	}
}

func (s *SectionScreen) Title() string {
	return s.category.Name + " · Arcade"
}

func (s *SectionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sectionsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.loaded = true
		s.menu = components.NewMenu(s.menuItems(msg.Sections))
		return s, nil
	}

	if !s.loaded {
		return s, nil
	}
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *SectionScreen) menuItems(sections []quiz.Section) []components.MenuItem {
	items := make([]components.MenuItem, 0, len(sections))
	unlocked := true
	for i, sec := range sections {
		item := components.MenuItem{
			Label: fmt.Sprintf("Section %d", i+1),
		}
		pct := percent.Calculate(sec.Point.ArcadeBest, sec.Point.Count)
		switch {
		case !unlocked:
			item.Detail = "locked"
			item.Disabled = true
		case sec.Point.ArcadeBest == 0:
			item.Detail = fmt.Sprintf("%d questions", sec.QuestionCount)
		default:
			item.Detail = fmt.Sprintf("%d/%d cleared", sec.Point.ArcadeBest, sec.Point.Count)
		}
		if unlocked {
			item.Action = s.startSection(sec)
		}
		items = append(items, item)

		// The next section opens only after this one is cleared high.
		if !percent.IsHigh(pct) {
			unlocked = false
		}
	}
	return items
}

func (s *SectionScreen) startSection(sec quiz.Section) func() tea.Cmd {
	return func() tea.Cmd {
		opts := play.Options{
			Mode:     quiz.ModeArcade,
			Category: s.category,
			Section:  &sec,
		}
		deps := s.deps.playDeps()
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: play.New(opts, deps)}
		}
	}
}

func (s *SectionScreen) View(width, height int) string {
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
	b.WriteString(theme.Title.Width(width).Render(s.category.Name))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("Pick a section"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.menu.View()))
	return b.String()
}
