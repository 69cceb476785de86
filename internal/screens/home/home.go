// Package home is the entry screen stack: category list, mode picker, and
// the arcade section picker.
package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"quizard/internal/aitasks"
	"quizard/internal/config"
	"quizard/internal/game"
	"quizard/internal/quiz"
	"quizard/internal/router"
	"quizard/internal/screen"
	"quizard/internal/screens/play"
	"quizard/internal/screens/stats"
	"quizard/internal/store"
	"quizard/internal/ui/components"
	"quizard/internal/ui/theme"
)

// Deps are the shared dependencies handed down the home screen stack.
type Deps struct {
	Content  *store.ContentRepo
	Progress *store.ProgressRepo
	Tasks    *aitasks.Source
	Config   config.Config
}

// playDeps converts to the session's repository surface. The task source
// stays a nil interface when no provider is configured.
func (d Deps) playDeps() play.Deps {
	pd := play.Deps{Content: d.Content, Progress: d.Progress}
	if d.Tasks != nil {
		pd.Tasks = d.Tasks
	}
	return pd
}

// categoriesLoadedMsg carries the catalog with points attached.
type categoriesLoadedMsg struct {
	Categories []quiz.Category
	ErrorCount int
	Err        error
}

// HomeScreen lists the categories.
type HomeScreen struct {
	deps       Deps
	menu       components.Menu
	categories []quiz.Category
	errorCount int
	loaded     bool
	errMsg     string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	return &HomeScreen{deps: deps}
}

func (h *HomeScreen) Init() tea.Cmd {
	deps := h.deps
	return func() tea.Msg {
		ctx := context.Background()

		cats, err := deps.Content.Categories(ctx)
		if err != nil {
			return categoriesLoadedMsg{Err: err}
		}
		cats, err = deps.Progress.AttachPoints(ctx, cats)
		if err != nil {
			return categoriesLoadedMsg{Err: err}
		}
		errIDs, err := deps.Progress.ErrorIDs(ctx)
		if err != nil {
			return categoriesLoadedMsg{Err: err}
		}
		return categoriesLoadedMsg{Categories: cats, ErrorCount: len(errIDs)}
	}
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case categoriesLoadedMsg:
		if msg.Err != nil {
			h.errMsg = msg.Err.Error()
			return h, nil
		}
		h.categories = msg.Categories
		h.errorCount = msg.ErrorCount
		h.loaded = true
		h.menu = components.NewMenu(h.menuItems())
		return h, nil
	}

	if !h.loaded {
		return h, nil
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) menuItems() []components.MenuItem {
	agg := game.AggregateCalculator()

	items := make([]components.MenuItem, 0, len(h.categories)+3)
	for _, cat := range h.categories {
		pct := agg.RecordPercent(cat.Point)
		items = append(items, components.MenuItem{
			Label:  cat.Name,
			Detail: fmt.Sprintf("%d questions · %d%%", cat.QuestionCount, pct),
			Action: h.openCategory(cat),
		})
	}

	items = append(items, components.MenuItem{
		Label:    "Error Review",
		Detail:   fmt.Sprintf("%d to clear", h.errorCount),
		Disabled: h.errorCount == 0,
		Action: func() tea.Cmd {
			opts := play.Options{
				Mode:     quiz.ModeError,
				Category: quiz.Category{Name: "All Categories"},
			}
			deps := h.deps.playDeps()
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: play.New(opts, deps)}
			}
		},
	})
	items = append(items, components.MenuItem{
		Label: "Statistics",
		Action: func() tea.Cmd {
			s := stats.New(h.deps.Content, h.deps.Progress)
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: s}
			}
		},
	})
	items = append(items, components.MenuItem{
		Label: "Quit",
		Action: func() tea.Cmd {
			return tea.Quit
		},
	})
	return items
}

func (h *HomeScreen) openCategory(cat quiz.Category) func() tea.Cmd {
	return func() tea.Cmd {
		m := newModeScreen(cat, h.deps)
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: m}
		}
	}
}

func (h *HomeScreen) View(width, height int) string {
	if h.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("\n\n  " + h.errMsg)
	}
	if !h.loaded {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Loading...")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("QUIZARD"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("Pick a category"))
	b.WriteString("\n\n")

	if len(h.categories) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("No content packs loaded yet.\nRun `quizard packs add <file>` to import one."))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))
	return b.String()
}
