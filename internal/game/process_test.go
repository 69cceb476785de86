package game

import (
	"errors"
	"testing"

	"quizard/internal/quiz"
)

func testQuestion(id int) *quiz.Question {
	return &quiz.Question{
		ID:         id,
		Text:       "prompt",
		Answer:     "a",
		Choices:    []string{"a", "b", "c", "d"},
		Difficulty: 1,
		CategoryID: 1,
		SectionID:  1,
	}
}

func TestNewProcess_SentinelModeRejected(t *testing.T) {
	if _, err := NewProcess(quiz.ModeUnused, []int{1}, 1); !errors.Is(err, ErrInvalidMode) {
		t.Errorf("err = %v, want ErrInvalidMode", err)
	}
}

func TestProcess_QueueFIFO(t *testing.T) {
	ids := []int{7, 3, 9, 1}
	p, err := NewProcess(quiz.ModeMarathon, ids, len(ids))
	if err != nil {
		t.Fatal(err)
	}

	var got []int
	for p.HasNext() {
		id, ok := p.Next()
		if !ok {
			t.Fatal("Next returned !ok while HasNext was true")
		}
		got = append(got, id)
	}

	if len(got) != len(ids) {
		t.Fatalf("popped %d ids, want %d", len(got), len(ids))
	}
	for i := range ids {
		if got[i] != ids[i] {
			t.Errorf("pop %d = %d, want %d", i, got[i], ids[i])
		}
	}

	if _, ok := p.Next(); ok {
		t.Error("Next on empty queue should return !ok")
	}
	if p.HasNext() {
		t.Error("HasNext on empty queue should be false")
	}
}

func TestProcess_HasNextEmptyQueue(t *testing.T) {
	p, _ := NewProcess(quiz.ModeMarathon, nil, 0)
	if p.HasNext() {
		t.Error("HasNext with unset queue should be false")
	}
}

func TestProcess_RecordSection_ArcadeOnly(t *testing.T) {
	for _, mode := range []quiz.Mode{quiz.ModeMarathon, quiz.ModeSprint, quiz.ModeError, quiz.ModeAITasks} {
		p, _ := NewProcess(mode, []int{1}, 1)
		p.Current = testQuestion(1)
		p.RecordSection()
		if len(p.SectionIDs()) != 0 {
			t.Errorf("%s: RecordSection should be a no-op", mode)
		}
	}

	p, _ := NewProcess(quiz.ModeArcade, []int{1}, 1)
	p.RecordSection() // no current question
	if len(p.SectionIDs()) != 0 {
		t.Error("RecordSection without current question should be a no-op")
	}

	p.Current = testQuestion(1)
	p.RecordSection()
	if got := p.SectionIDs(); len(got) != 1 || got[0] != 1 {
		t.Errorf("SectionIDs = %v, want [1]", got)
	}
}

func TestProcess_RecordResolved_ErrorModeOnly(t *testing.T) {
	p, _ := NewProcess(quiz.ModeArcade, []int{1}, 1)
	p.Current = testQuestion(1)
	p.RecordResolved()
	if len(p.ResolvedIDs()) != 0 {
		t.Error("RecordResolved outside error mode should be a no-op")
	}

	p, _ = NewProcess(quiz.ModeError, []int{1}, 1)
	p.Current = testQuestion(1)
	p.RecordResolved()
	if got := p.ResolvedIDs(); len(got) != 1 || got[0] != 1 {
		t.Errorf("ResolvedIDs = %v, want [1]", got)
	}
}

func TestProcess_RecordError_AnyMode(t *testing.T) {
	for _, mode := range []quiz.Mode{quiz.ModeArcade, quiz.ModeMarathon, quiz.ModeSprint, quiz.ModeError, quiz.ModeAITasks} {
		p, _ := NewProcess(mode, []int{4}, 1)
		p.Current = testQuestion(4)
		p.RecordError()
		if got := p.ErrorIDs(); len(got) != 1 || got[0] != 4 {
			t.Errorf("%s: ErrorIDs = %v, want [4]", mode, got)
		}
	}
}

func TestProcess_Progress(t *testing.T) {
	p, _ := NewProcess(quiz.ModeMarathon, []int{1, 2, 3, 4}, 4)
	if p.Progress() != 0 {
		t.Errorf("initial progress = %d, want 0", p.Progress())
	}
	p.IncrementProgress()
	p.IncrementProgress()
	if p.Progress() != 50 {
		t.Errorf("progress = %d, want 50", p.Progress())
	}
	p.DecrementProgress()
	if p.Progress() != 25 {
		t.Errorf("progress after decrement = %d, want 25", p.Progress())
	}
}

func TestProcess_ProgressZeroTotal(t *testing.T) {
	p, _ := NewProcess(quiz.ModeMarathon, nil, 0)
	p.IncrementProgress()
	if p.Progress() != 0 {
		t.Errorf("progress with zero total = %d, want 0", p.Progress())
	}
}

func TestProcess_ArcadeScenario(t *testing.T) {
	// Category with 20 questions, one section of 20: all answered correctly.
	ids := make([]int, 20)
	for i := range ids {
		ids[i] = i + 1
	}
	p, err := NewProcess(quiz.ModeArcade, ids, len(ids))
	if err != nil {
		t.Fatal(err)
	}

	if p.Condition != 2 {
		t.Fatalf("starting condition = %d, want 2", p.Condition)
	}

	for p.HasNext() {
		id, _ := p.Next()
		p.Current = testQuestion(id)
		p.IncrementScore()
		p.IncrementProgress()
		p.RecordSection()
	}

	if p.Score != 20 {
		t.Errorf("score = %d, want 20", p.Score)
	}
	if p.Progress() != 100 {
		t.Errorf("progress = %d, want 100", p.Progress())
	}
	if p.HasNext() {
		t.Error("queue should be exhausted")
	}
	if len(p.SectionIDs()) != 20 {
		t.Errorf("section ids = %d, want 20", len(p.SectionIDs()))
	}
	if !p.ConditionValid() {
		t.Error("condition should still be valid after a clean run")
	}
}

func TestProcess_SprintScenario(t *testing.T) {
	p, err := NewProcess(quiz.ModeSprint, []int{1, 2, 3}, 3)
	if err != nil {
		t.Fatal(err)
	}

	if p.Condition != 60 {
		t.Fatalf("starting condition = %d, want 60", p.Condition)
	}

	p.DepleteOnWrongAnswer()
	if p.Condition != 55 {
		t.Errorf("condition after one wrong answer = %d, want 55", p.Condition)
	}

	// Eleven more wrong answers drain the rest; the floor keeps it at 0.
	for i := 0; i < 11; i++ {
		p.DepleteOnWrongAnswer()
	}
	if p.Condition != 0 {
		t.Errorf("condition after 12 wrong answers = %d, want exactly 0", p.Condition)
	}
	if p.ConditionValid() {
		t.Error("exhausted condition should end the session")
	}
}

func TestProcess_TopUpCondition(t *testing.T) {
	p, _ := NewProcess(quiz.ModeArcade, []int{1}, 1)
	p.Condition = 0
	if err := p.TopUpCondition(); err != nil {
		t.Fatalf("TopUpCondition: %v", err)
	}
	if p.Condition != 1 {
		t.Errorf("condition after top-up = %d, want 1", p.Condition)
	}
	if !p.RewardGranted {
		t.Error("RewardGranted should be set")
	}

	sprint, _ := NewProcess(quiz.ModeSprint, []int{1}, 1)
	if err := sprint.TopUpCondition(); !errors.Is(err, ErrUnsupported) {
		t.Errorf("sprint top-up error = %v, want ErrUnsupported", err)
	}
}
