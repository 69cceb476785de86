package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"quizard/internal/game"
	"quizard/internal/quiz"
	"quizard/internal/router"
	"quizard/internal/screen"
	"quizard/internal/screens/play"
	"quizard/internal/ui/components"
	"quizard/internal/ui/theme"
)

// batchReadyMsg is sent when the AI batch fetch completes.
type batchReadyMsg struct {
	Err error
}

// ModeScreen picks a game mode for one category.
type ModeScreen struct {
	category quiz.Category
	deps     Deps
	menu     components.Menu
	fetching bool
	errMsg   string
}

var _ screen.Screen = (*ModeScreen)(nil)

func newModeScreen(cat quiz.Category, deps Deps) *ModeScreen {
	m := &ModeScreen{category: cat, deps: deps}
	m.menu = components.NewMenu(m.menuItems())
	return m
}

func (m *ModeScreen) menuItems() []components.MenuItem {
	recordDetail := func(mode quiz.Mode) string {
		calc := game.CalculatorFor(mode)
		if calc == nil {
			return ""
		}
		best, err := calc.Record(m.category.Point)
		if err != nil || best == 0 {
			return ""
		}
		return fmt.Sprintf("best %d/%d", best, m.category.QuestionCount)
	}

	items := []components.MenuItem{
		{
			Label:  "Arcade",
			Detail: recordDetail(quiz.ModeArcade),
			Action: func() tea.Cmd {
				s := newSectionScreen(m.category, m.deps)
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: s}
				}
			},
		},
		{
			Label:  "Marathon",
			Detail: recordDetail(quiz.ModeMarathon),
			Action: m.startMode(quiz.ModeMarathon),
		},
		{
			Label:  "Sprint",
			Detail: recordDetail(quiz.ModeSprint),
			Action: m.startMode(quiz.ModeSprint),
		},
	}

	aiItem := components.MenuItem{
		Label:    "AI Tasks",
		Disabled: m.deps.Tasks == nil,
	}
	if m.deps.Tasks == nil {
		aiItem.Detail = "set an API key to enable"
	} else {
		aiItem.Action = func() tea.Cmd {
			m.fetching = true
			return m.fetchBatch()
		}
	}
	items = append(items, aiItem)

	return items
}

func (m *ModeScreen) startMode(mode quiz.Mode) func() tea.Cmd {
	return func() tea.Cmd {
		opts := play.Options{Mode: mode, Category: m.category}
		deps := m.deps.playDeps()
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: play.New(opts, deps)}
		}
	}
}

// fetchBatch generates a fresh batch before the session starts. AI batches
// never persist, so every entry into the mode refetches.
func (m *ModeScreen) fetchBatch() tea.Cmd {
	tasks := m.deps.Tasks
	cat := m.category
	return func() tea.Msg {
		return batchReadyMsg{Err: tasks.Fetch(context.Background(), cat)}
	}
}

func (m *ModeScreen) Init() tea.Cmd {
	return nil
}

func (m *ModeScreen) Title() string {
	return m.category.Name
}

func (m *ModeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case batchReadyMsg:
		m.fetching = false
		if msg.Err != nil {
			m.errMsg = msg.Err.Error()
			return m, nil
		}
		opts := play.Options{Mode: quiz.ModeAITasks, Category: m.category}
		deps := m.deps.playDeps()
		return m, func() tea.Msg {
			return router.PushScreenMsg{Screen: play.New(opts, deps)}
		}

	case tea.KeyMsg:
		if m.errMsg != "" {
			m.errMsg = ""
			return m, nil
		}
		if m.fetching {
			return m, nil
		}
	}

	if m.fetching {
		return m, nil
	}
	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m *ModeScreen) View(width, height int) string {
	if m.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(fmt.Sprintf("\n\n  Could not generate questions:\n  %s\n\n  Press any key to go back.", m.errMsg))
	}
	if m.fetching {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Generating questions...")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render(m.category.Name))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("Pick a mode"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, m.menu.View()))
	return b.String()
}
