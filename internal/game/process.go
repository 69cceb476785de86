package game

import (
	"errors"

	"quizard/internal/percent"
	"quizard/internal/quiz"
)

// ErrInvalidMode is returned when a game component is asked to operate for
// the sentinel mode. This is a caller bug, never a runtime condition.
var ErrInvalidMode = errors.New("invalid game mode")

// Process is the in-memory state of one play-through. It is owned by a
// single screen at a time and mutated synchronously; it is never persisted
// across restarts. At session end its terminal summary is extracted into a
// Result and the Process is discarded.
type Process struct {
	// Mode is fixed for the lifetime of the session.
	Mode quiz.Mode

	// Current is the question being played, nil between questions.
	Current *quiz.Question

	// TotalCount is the number of questions this session started with.
	TotalCount int

	// Condition is the remaining lives or seconds, depending on Mode.
	Condition int

	// Score counts correct answers.
	Score int

	// Finished is set once and never cleared; there is no resume.
	Finished bool

	// Rewarded marks that the second-chance continuation was offered.
	Rewarded bool

	// RewardGranted marks that the continuation actually topped up.
	RewardGranted bool

	queue    []int
	answered int

	sectionDone map[int]struct{}
	wrong       map[int]struct{}
	resolved    map[int]struct{}

	policy ConditionPolicy
}

// NewProcess creates a Process for one session. ids is the pre-sequenced
// question id queue from the data layer. The sentinel mode has no condition
// policy and is rejected.
func NewProcess(mode quiz.Mode, ids []int, totalCount int) (*Process, error) {
	policy := ConditionFor(mode)
	if policy == nil {
		return nil, ErrInvalidMode
	}
	queue := make([]int, len(ids))
	copy(queue, ids)
	return &Process{
		Mode:        mode,
		TotalCount:  totalCount,
		Condition:   policy.Initial(),
		queue:       queue,
		sectionDone: make(map[int]struct{}),
		wrong:       make(map[int]struct{}),
		resolved:    make(map[int]struct{}),
		policy:      policy,
	}, nil
}

// HasNext reports whether any question ids remain.
func (p *Process) HasNext() bool {
	return len(p.queue) > 0
}

// Next pops the first remaining id. ok is false once the queue is empty.
func (p *Process) Next() (id int, ok bool) {
	if len(p.queue) == 0 {
		return 0, false
	}
	id = p.queue[0]
	p.queue = p.queue[1:]
	return id, true
}

// RecordSection marks the current question as completed for section
// progress. Arcade only; a no-op for other modes or without a current
// question.
func (p *Process) RecordSection() {
	if p.Mode != quiz.ModeArcade || p.Current == nil {
		return
	}
	p.sectionDone[p.Current.ID] = struct{}{}
}

// RecordError adds the current question to the session error set.
func (p *Process) RecordError() {
	if p.Current == nil {
		return
	}
	p.wrong[p.Current.ID] = struct{}{}
}

// RecordResolved marks the current question as resolved during error
// review. No-op for other modes.
func (p *Process) RecordResolved() {
	if p.Mode != quiz.ModeError || p.Current == nil {
		return
	}
	p.resolved[p.Current.ID] = struct{}{}
}

// SectionIDs returns the ids completed for section progress this session.
func (p *Process) SectionIDs() []int { return setToSlice(p.sectionDone) }

// ErrorIDs returns the ids answered incorrectly this session.
func (p *Process) ErrorIDs() []int { return setToSlice(p.wrong) }

// ResolvedIDs returns the ids resolved during error review.
func (p *Process) ResolvedIDs() []int { return setToSlice(p.resolved) }

// IncrementProgress bumps the answered count behind the progress bar.
func (p *Process) IncrementProgress() { p.answered++ }

// DecrementProgress walks the answered count back (used when a question is
// skipped after being counted).
func (p *Process) DecrementProgress() {
	if p.answered > 0 {
		p.answered--
	}
}

// Progress is the answered share of the session as a percent.
func (p *Process) Progress() int {
	return percent.Calculate(p.answered, p.TotalCount)
}

// IncrementScore adds one for a correct answer.
func (p *Process) IncrementScore() { p.Score++ }

// ConditionValid reports whether the condition still permits play.
func (p *Process) ConditionValid() bool {
	return p.policy.IsValid(p.Condition)
}

// DepleteCondition applies the generic one-unit depletion.
func (p *Process) DepleteCondition() {
	p.Condition = p.policy.Decrement(p.Condition)
}

// DepleteOnWrongAnswer applies the wrong-answer penalty.
func (p *Process) DepleteOnWrongAnswer() {
	p.Condition = p.policy.SpecialDecrement(p.Condition)
}

// TopUpCondition applies the second-chance continuation top-up.
func (p *Process) TopUpCondition() error {
	cond, err := p.policy.AddExtra(p.Condition)
	if err != nil {
		return err
	}
	p.Condition = cond
	p.RewardGranted = true
	return nil
}

// ConditionKind selects the UI rendering for the condition.
func (p *Process) ConditionKind() ConditionKind {
	return p.policy.Kind()
}

func setToSlice(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	return out
}
