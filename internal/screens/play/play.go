// Package play runs one game session: question loop, condition tracking,
// and end-of-game persistence.
package play

import (
	"context"
	"errors"
	"fmt"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"quizard/internal/game"
	"quizard/internal/quiz"
	"quizard/internal/router"
	"quizard/internal/screen"
	"quizard/internal/screens/summary"
	"quizard/internal/ui/components"
	"quizard/internal/ui/layout"
	"quizard/internal/ui/theme"
)

// phase tracks where the session loop is.
type phase int

const (
	phaseLoading phase = iota
	phaseActive
	phaseFeedback
	phaseContinueOffer
	phaseQuitConfirm
	phaseEnding
	phaseWarning
)

// Options selects what to play.
type Options struct {
	Mode     quiz.Mode
	Category quiz.Category

	// Section is set for arcade sessions only.
	Section *quiz.Section
}

// Deps are the repositories the session reads and writes.
type Deps struct {
	Content  game.ContentRepo
	Progress game.ProgressRepo

	// Tasks may be nil for catalog modes.
	Tasks game.TaskSource
}

// PlayScreen implements screen.Screen for an active game session.
type PlayScreen struct {
	opts Options
	deps Deps

	manager *game.DataManager
	process *game.Process

	mc        components.MultiChoice
	spin      spinner.Model
	phase     phase
	prevPhase phase // phase to return to after quit confirm
	errMsg    string

	startTime   time.Time
	questionNum int
	lastCorrect bool
}

var _ screen.Screen = (*PlayScreen)(nil)
var _ screen.KeyHintProvider = (*PlayScreen)(nil)
var _ screen.StatusProvider = (*PlayScreen)(nil)
var _ screen.EscInterceptor = (*PlayScreen)(nil)

// New creates a PlayScreen for the given mode and category.
func New(opts Options, deps Deps) *PlayScreen {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Hint
	return &PlayScreen{
		opts: opts,
		deps: deps,
		spin: sp,
	}
}

func (s *PlayScreen) Init() tea.Cmd {
	return tea.Batch(s.initSession(), s.spin.Tick)
}

func (s *PlayScreen) Title() string {
	return fmt.Sprintf("%s · %s", s.opts.Category.Name, modeLabel(s.opts.Mode))
}

// Status renders the remaining condition for the header.
func (s *PlayScreen) Status() string {
	if s.process == nil {
		return ""
	}
	switch s.process.ConditionKind() {
	case game.ConditionTime:
		return fmt.Sprintf("⏱ %d:%02d", s.process.Condition/60, s.process.Condition%60)
	default:
		hearts := ""
		for range s.process.Condition {
			hearts += "♥ "
		}
		if hearts == "" {
			hearts = "♡"
		}
		return hearts
	}
}

// InterceptEsc keeps Esc inside the session so leaving always goes through
// the confirm dialog and end-of-game persistence.
func (s *PlayScreen) InterceptEsc() bool {
	return s.phase != phaseWarning
}

func (s *PlayScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseQuitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "End game"},
			{Key: "N", Description: "Keep playing"},
		}
	case phaseContinueOffer:
		return []layout.KeyHint{
			{Key: "Y", Description: "Continue"},
			{Key: "N", Description: "End game"},
		}
	case phaseFeedback:
		return []layout.KeyHint{
			{Key: "any key", Description: "Next"},
		}
	case phaseWarning:
		return []layout.KeyHint{
			{Key: "any key", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "1-4", Description: "Answer"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionInitMsg:
		return s.handleInit(msg)
	case questionReadyMsg:
		return s.handleQuestionReady(msg)
	case clockTickMsg:
		return s.handleClockTick()
	case feedbackDoneMsg:
		return s.handleFeedbackDone()
	case sessionEndMsg:
		return s.handleSessionEnd()
	case persistedMsg:
		return s.handlePersisted(msg)
	case spinner.TickMsg:
		if s.phase == phaseLoading || s.phase == phaseEnding {
			var cmd tea.Cmd
			s.spin, cmd = s.spin.Update(msg)
			return s, cmd
		}
		return s, nil
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

// initSession builds the data manager and the id queue off the UI loop.
func (s *PlayScreen) initSession() tea.Cmd {
	opts := s.opts
	deps := s.deps
	return func() tea.Msg {
		ctx := context.Background()

		manager, err := game.NewDataManager(opts.Mode, deps.Content, deps.Progress, deps.Tasks)
		if err != nil {
			return sessionInitMsg{Err: err}
		}

		var sectionID *int
		if opts.Section != nil {
			sectionID = &opts.Section.ID
		}

		ids, err := manager.LoadQuestionIDs(ctx, opts.Category.ID, sectionID)
		if err != nil {
			return sessionInitMsg{Err: err}
		}
		if len(ids) == 0 {
			return sessionInitMsg{Err: errors.New("no questions available")}
		}

		process, err := game.NewProcess(opts.Mode, ids, len(ids))
		if err != nil {
			return sessionInitMsg{Err: err}
		}

		return sessionInitMsg{Manager: manager, Process: process}
	}
}

func (s *PlayScreen) handleInit(msg sessionInitMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.phase = phaseWarning
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.manager = msg.Manager
	s.process = msg.Process
	s.startTime = time.Now()

	cmds := []tea.Cmd{s.nextQuestion()}
	if s.process.ConditionKind() == game.ConditionTime {
		cmds = append(cmds, clockCmd())
	}
	return s, tea.Batch(cmds...)
}

// nextQuestion pops the next id and resolves it off the UI loop.
func (s *PlayScreen) nextQuestion() tea.Cmd {
	id, ok := s.process.Next()
	if !ok {
		return func() tea.Msg { return sessionEndMsg{} }
	}
	manager := s.manager
	categoryID := s.opts.Category.ID
	return func() tea.Msg {
		q, err := manager.LoadQuestion(context.Background(), id, categoryID)
		if err != nil {
			return questionReadyMsg{Err: err}
		}
		if q == nil {
			return questionReadyMsg{Err: fmt.Errorf("question %d missing from catalog", id)}
		}
		return questionReadyMsg{Question: q}
	}
}

func (s *PlayScreen) handleQuestionReady(msg questionReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.phase = phaseWarning
		s.errMsg = msg.Err.Error()
		return s, nil
	}

	q := msg.Question
	s.process.Current = q
	s.questionNum++

	choices, correct := displayChoices(q)
	s.mc = components.NewMultiChoice(q.Text, choices, correct)
	s.phase = phaseActive
	return s, nil
}

// displayChoices drops empty padding slots and finds the correct index.
func displayChoices(q *quiz.Question) ([]string, int) {
	choices := make([]string, 0, len(q.Choices))
	correct := 0
	for _, c := range q.Choices {
		if c == "" {
			continue
		}
		if c == q.Answer {
			correct = len(choices)
		}
		choices = append(choices, c)
	}
	return choices, correct
}

func (s *PlayScreen) handleClockTick() (screen.Screen, tea.Cmd) {
	if s.process == nil || s.phase == phaseEnding || s.phase == phaseWarning {
		return s, nil
	}

	// The clock keeps running through feedback and the quit dialog.
	s.process.DepleteCondition()
	if !s.process.ConditionValid() {
		return s, func() tea.Msg { return sessionEndMsg{} }
	}
	return s, clockCmd()
}

func (s *PlayScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch s.phase {
	case phaseWarning:
		return s, func() tea.Msg { return router.PopScreenMsg{} }

	case phaseLoading, phaseEnding:
		return s, nil

	case phaseQuitConfirm:
		switch key {
		case "y", "Y":
			return s, func() tea.Msg { return sessionEndMsg{} }
		case "n", "N", "esc":
			s.phase = s.prevPhase
		}
		return s, nil

	case phaseContinueOffer:
		switch key {
		case "y", "Y":
			if err := s.process.TopUpCondition(); err != nil {
				return s, func() tea.Msg { return sessionEndMsg{} }
			}
			s.phase = phaseLoading
			return s, s.nextQuestion()
		case "n", "N", "esc":
			return s, func() tea.Msg { return sessionEndMsg{} }
		}
		return s, nil

	case phaseFeedback:
		return s, func() tea.Msg { return feedbackDoneMsg{} }

	case phaseActive:
		if key == "esc" {
			s.prevPhase = s.phase
			s.phase = phaseQuitConfirm
			return s, nil
		}
		var cmd tea.Cmd
		s.mc, cmd = s.mc.Update(msg)
		if s.mc.Submitted {
			return s.gradeAnswer()
		}
		return s, cmd
	}

	return s, nil
}

// gradeAnswer applies the submitted answer to the process.
func (s *PlayScreen) gradeAnswer() (screen.Screen, tea.Cmd) {
	s.lastCorrect = s.mc.IsCorrect()
	s.process.IncrementProgress()

	if s.lastCorrect {
		s.process.IncrementScore()
		s.process.RecordSection()
		s.process.RecordResolved()
	} else {
		s.process.RecordError()
		s.process.DepleteOnWrongAnswer()
	}

	s.phase = phaseFeedback
	return s, nil
}

func (s *PlayScreen) handleFeedbackDone() (screen.Screen, tea.Cmd) {
	s.process.Current = nil

	if !s.process.ConditionValid() {
		// Life modes get one continuation offer per session.
		if !s.process.Rewarded && s.process.ConditionKind() == game.ConditionLife {
			s.process.Rewarded = true
			s.phase = phaseContinueOffer
			return s, nil
		}
		return s, func() tea.Msg { return sessionEndMsg{} }
	}

	if !s.process.HasNext() {
		return s, func() tea.Msg { return sessionEndMsg{} }
	}

	s.phase = phaseLoading
	return s, tea.Batch(s.nextQuestion(), s.spin.Tick)
}

func (s *PlayScreen) handleSessionEnd() (screen.Screen, tea.Cmd) {
	if s.process == nil {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.phase == phaseEnding {
		return s, nil
	}
	s.phase = phaseEnding
	s.process.Finished = true

	elapsed := int(time.Since(s.startTime).Seconds())
	return s, tea.Batch(s.persistOutcome(elapsed), s.spin.Tick)
}

// persistOutcome builds the result and writes the session's outcome.
func (s *PlayScreen) persistOutcome(elapsed int) tea.Cmd {
	opts := s.opts
	manager := s.manager
	process := s.process
	return func() tea.Msg {
		ctx := context.Background()

		prior := 0
		if calc := game.CalculatorFor(opts.Mode); calc != nil {
			if rec, err := calc.Record(opts.Category.Point); err == nil {
				prior = rec
			}
		}

		result, err := game.NewResultBuilder().
			Mode(opts.Mode).
			Category(opts.Category.ID).
			Record(prior).
			Score(process.Score).
			Count(process.TotalCount).
			ErrorIDs(process.ErrorIDs()).
			Elapsed(elapsed).
			Build()
		if err != nil {
			return persistedMsg{Err: err}
		}

		if err := manager.PersistErrorOutcome(ctx, process.ErrorIDs(), process.ResolvedIDs()); err != nil {
			return persistedMsg{Err: err}
		}
		if err := manager.PersistRecord(ctx, opts.Category.ID, process.Score, elapsed); err != nil {
			return persistedMsg{Err: err}
		}

		var sectionID *int
		if opts.Section != nil {
			sectionID = &opts.Section.ID
		}
		completed, err := manager.PersistSectionOutcome(ctx, opts.Category.ID, sectionID, process.SectionIDs())
		if err != nil {
			return persistedMsg{Err: err}
		}

		return persistedMsg{Result: result, SectionsComplete: completed}
	}
}

func (s *PlayScreen) handlePersisted(msg persistedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.phase = phaseWarning
		s.errMsg = msg.Err.Error()
		return s, nil
	}

	sum := summary.New(msg.Result, s.opts.Category.Name)
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: sum}
	}
}

// clockCmd returns a 1-second tick for the sprint clock.
func clockCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return clockTickMsg(t)
	})
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
