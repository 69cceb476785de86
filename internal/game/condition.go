package game

import (
	"errors"

	"quizard/internal/quiz"
)

// ErrUnsupported is returned when an operation is called on a variant that
// does not implement it. Production code paths never reach it; the
// mode-keyed factories guarantee the right variant is attached.
var ErrUnsupported = errors.New("operation not supported for this variant")

// ConditionKind tells the UI how to render the remaining condition.
type ConditionKind int

const (
	ConditionLife ConditionKind = iota
	ConditionTime
)

// Starting budgets and penalties for the two condition variants.
const (
	startingLives = 2
	extraLives    = 1

	startingSeconds = 60
	wrongAnswerCost = 5
)

// ConditionPolicy defines how a play-through's condition resource
// initializes and depletes. Implementations are stateless; the condition
// value itself lives on the Process.
type ConditionPolicy interface {
	// Initial is the starting value for a new session.
	Initial() int

	// IsValid reports whether cond still permits play.
	IsValid(cond int) bool

	// Decrement applies the generic one-unit depletion (one elapsed
	// second in time mode) and returns the new value.
	Decrement(cond int) int

	// SpecialDecrement applies the wrong-answer penalty and returns the
	// new value. Never goes below zero.
	SpecialDecrement(cond int) int

	// AddExtra tops up the condition for the second-chance continuation.
	// Variants without top-ups return ErrUnsupported.
	AddExtra(cond int) (int, error)

	// Kind selects the UI rendering, nothing else.
	Kind() ConditionKind
}

// ConditionFor returns the policy for a mode, or nil for the sentinel mode.
func ConditionFor(mode quiz.Mode) ConditionPolicy {
	switch mode {
	case quiz.ModeArcade, quiz.ModeMarathon, quiz.ModeError:
		return lifeCondition{}
	case quiz.ModeSprint:
		return timeCondition{}
	case quiz.ModeAITasks:
		return lifeCondition{}
	}
	return nil
}

// lifeCondition ends the session after a fixed number of wrong answers.
// The plain and wrong-answer decrements behave identically here.
type lifeCondition struct{}

func (lifeCondition) Initial() int          { return startingLives }
func (lifeCondition) IsValid(cond int) bool { return cond > 0 }

func (lifeCondition) Decrement(cond int) int {
	if cond <= 0 {
		return 0
	}
	return cond - 1
}

func (l lifeCondition) SpecialDecrement(cond int) int {
	return l.Decrement(cond)
}

func (lifeCondition) AddExtra(cond int) (int, error) {
	return cond + extraLives, nil
}

func (lifeCondition) Kind() ConditionKind { return ConditionLife }

// timeCondition ends the session when the time budget runs out. Wrong
// answers burn wrongAnswerCost seconds, floored at zero.
type timeCondition struct{}

func (timeCondition) Initial() int          { return startingSeconds }
func (timeCondition) IsValid(cond int) bool { return cond > 0 }

func (timeCondition) Decrement(cond int) int {
	if cond <= 0 {
		return 0
	}
	return cond - 1
}

func (timeCondition) SpecialDecrement(cond int) int {
	cond -= wrongAnswerCost
	if cond < 0 {
		cond = 0
	}
	return cond
}

func (timeCondition) AddExtra(cond int) (int, error) {
	return cond, ErrUnsupported
}

func (timeCondition) Kind() ConditionKind { return ConditionTime }
