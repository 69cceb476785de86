package game

import (
	"context"
	"errors"
	"sort"
	"testing"

	"quizard/internal/quiz"
)

type fakeContent struct {
	questions map[int]*quiz.Question
	category  []int
	sections  map[int][]int
}

func (f *fakeContent) Question(_ context.Context, id int) (*quiz.Question, error) {
	return f.questions[id], nil
}

func (f *fakeContent) QuestionIDs(_ context.Context, _ int, byDifficulty bool) ([]int, error) {
	out := append([]int(nil), f.category...)
	if byDifficulty {
		sort.Slice(out, func(i, j int) bool {
			return f.questions[out[i]].Difficulty < f.questions[out[j]].Difficulty
		})
	}
	return out, nil
}

func (f *fakeContent) SectionQuestionIDs(_ context.Context, _, sectionID int) ([]int, error) {
	return f.sections[sectionID], nil
}

type fakeProgress struct {
	errorIDs  []int
	merged    []int
	resolved  []int
	reset     []int
	marked    []int
	records   map[string]int
	completed map[int]bool
}

func newFakeProgress() *fakeProgress {
	return &fakeProgress{records: make(map[string]int), completed: make(map[int]bool)}
}

func (f *fakeProgress) ErrorIDs(context.Context) ([]int, error) { return f.errorIDs, nil }

func (f *fakeProgress) MergeErrors(_ context.Context, ids []int) error {
	f.merged = append(f.merged, ids...)
	return nil
}

func (f *fakeProgress) ResolveErrors(_ context.Context, ids []int) error {
	f.resolved = append(f.resolved, ids...)
	return nil
}

func (f *fakeProgress) AddRecord(_ context.Context, mode quiz.Mode, _, score, _ int) error {
	if score >= f.records[mode.String()] {
		f.records[mode.String()] = score
	}
	return nil
}

func (f *fakeProgress) ResetSectionProgress(_ context.Context, ids []int) error {
	f.reset = append(f.reset, ids...)
	for _, id := range ids {
		delete(f.completed, id)
	}
	return nil
}

func (f *fakeProgress) MarkSectionProgress(_ context.Context, ids []int) error {
	f.marked = append(f.marked, ids...)
	for _, id := range ids {
		f.completed[id] = true
	}
	return nil
}

func (f *fakeProgress) TotalProgressSections(_ context.Context, ids []int) (int, error) {
	n := 0
	for _, id := range ids {
		if f.completed[id] {
			n++
		}
	}
	return n, nil
}

type fakeTasks struct {
	batches map[int][]quiz.Question
}

func (f *fakeTasks) Question(categoryID, id int) (*quiz.Question, error) {
	for i := range f.batches[categoryID] {
		if f.batches[categoryID][i].ID == id {
			return &f.batches[categoryID][i], nil
		}
	}
	return nil, quiz.ErrNoBatch
}

func (f *fakeTasks) QuestionIDs(categoryID int) ([]int, error) {
	batch, ok := f.batches[categoryID]
	if !ok {
		return nil, quiz.ErrNoBatch
	}
	ids := make([]int, len(batch))
	for i, q := range batch {
		ids[i] = q.ID
	}
	return ids, nil
}

func testContent() *fakeContent {
	questions := make(map[int]*quiz.Question)
	var category []int
	sections := map[int][]int{1: {1, 2}, 2: {3, 4}}
	for id := 1; id <= 4; id++ {
		questions[id] = &quiz.Question{
			ID:         id,
			Difficulty: 5 - id,
			CategoryID: 1,
			SectionID:  (id + 1) / 2,
		}
		category = append(category, id)
	}
	return &fakeContent{questions: questions, category: category, sections: sections}
}

func TestNewDataManager_SentinelMode(t *testing.T) {
	if _, err := NewDataManager(quiz.ModeUnused, testContent(), newFakeProgress(), &fakeTasks{}); !errors.Is(err, ErrInvalidMode) {
		t.Errorf("err = %v, want ErrInvalidMode", err)
	}
}

func TestLoadQuestionIDs_ArcadeRequiresSection(t *testing.T) {
	m, _ := NewDataManager(quiz.ModeArcade, testContent(), newFakeProgress(), nil)

	ids, err := m.LoadQuestionIDs(context.Background(), 1, nil)
	if err != nil {
		t.Fatal(err)
	}
	if ids != nil {
		t.Errorf("ids without section = %v, want nil", ids)
	}

	section := 2
	ids, err = m.LoadQuestionIDs(context.Background(), 1, &section)
	if err != nil {
		t.Fatal(err)
	}
	sort.Ints(ids)
	if len(ids) != 2 || ids[0] != 3 || ids[1] != 4 {
		t.Errorf("section ids = %v, want [3 4]", ids)
	}
}

func TestLoadQuestionIDs_SprintByDifficulty(t *testing.T) {
	m, _ := NewDataManager(quiz.ModeSprint, testContent(), newFakeProgress(), nil)
	ids, err := m.LoadQuestionIDs(context.Background(), 1, nil)
	if err != nil {
		t.Fatal(err)
	}
	// Difficulty is 5-id, so ascending difficulty reverses the ids.
	want := []int{4, 3, 2, 1}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("ids = %v, want %v", ids, want)
		}
	}
}

func TestLoadQuestionIDs_MarathonWholeCategory(t *testing.T) {
	m, _ := NewDataManager(quiz.ModeMarathon, testContent(), newFakeProgress(), nil)
	ids, err := m.LoadQuestionIDs(context.Background(), 1, nil)
	if err != nil {
		t.Fatal(err)
	}
	sort.Ints(ids)
	if len(ids) != 4 {
		t.Errorf("ids = %v, want all 4 category questions", ids)
	}
}

func TestLoadQuestionIDs_ErrorModeUsesTrackedErrors(t *testing.T) {
	progress := newFakeProgress()
	progress.errorIDs = []int{2, 4}
	m, _ := NewDataManager(quiz.ModeError, testContent(), progress, nil)

	ids, err := m.LoadQuestionIDs(context.Background(), 99, nil)
	if err != nil {
		t.Fatal(err)
	}
	sort.Ints(ids)
	if len(ids) != 2 || ids[0] != 2 || ids[1] != 4 {
		t.Errorf("ids = %v, want [2 4]", ids)
	}
}

func TestLoadQuestion_AITasksCacheMiss(t *testing.T) {
	m, _ := NewDataManager(quiz.ModeAITasks, nil, nil, &fakeTasks{batches: map[int][]quiz.Question{}})
	if _, err := m.LoadQuestionIDs(context.Background(), 5, nil); !errors.Is(err, quiz.ErrNoBatch) {
		t.Errorf("err = %v, want ErrNoBatch", err)
	}
}

func TestPersistSectionOutcome_ResetsThenMarks(t *testing.T) {
	progress := newFakeProgress()
	// Question 4 was completed in an earlier run of section 2.
	progress.completed[4] = true

	m, _ := NewDataManager(quiz.ModeArcade, testContent(), progress, nil)
	section := 2
	total, err := m.PersistSectionOutcome(context.Background(), 1, &section, []int{3})
	if err != nil {
		t.Fatal(err)
	}

	// The stale completion of 4 was wiped, only 3 remains.
	if total != 1 {
		t.Errorf("total = %d, want 1", total)
	}
	if len(progress.reset) != 2 {
		t.Errorf("reset ids = %v, want the section's full range", progress.reset)
	}
	if len(progress.marked) != 1 || progress.marked[0] != 3 {
		t.Errorf("marked ids = %v, want [3]", progress.marked)
	}
}

func TestPersistSectionOutcome_NonArcadeNoop(t *testing.T) {
	progress := newFakeProgress()
	m, _ := NewDataManager(quiz.ModeMarathon, testContent(), progress, nil)
	section := 1
	total, err := m.PersistSectionOutcome(context.Background(), 1, &section, []int{1})
	if err != nil {
		t.Fatal(err)
	}
	if total != 0 || len(progress.marked) != 0 {
		t.Error("non-arcade section outcome should be a no-op")
	}
}

func TestPersistRecord_ModeGating(t *testing.T) {
	for _, mode := range []quiz.Mode{quiz.ModeArcade, quiz.ModeMarathon, quiz.ModeSprint} {
		progress := newFakeProgress()
		m, _ := NewDataManager(mode, testContent(), progress, nil)
		if err := m.PersistRecord(context.Background(), 1, 17, 0); err != nil {
			t.Fatal(err)
		}
		if progress.records[mode.String()] != 17 {
			t.Errorf("%s: record not persisted", mode)
		}
	}

	for _, mode := range []quiz.Mode{quiz.ModeError, quiz.ModeAITasks} {
		progress := newFakeProgress()
		m, _ := NewDataManager(mode, testContent(), progress, &fakeTasks{})
		if err := m.PersistRecord(context.Background(), 1, 17, 0); err != nil {
			t.Fatal(err)
		}
		if len(progress.records) != 0 {
			t.Errorf("%s: record should not be persisted", mode)
		}
	}
}

func TestPersistErrorOutcome_Routing(t *testing.T) {
	progress := newFakeProgress()
	m, _ := NewDataManager(quiz.ModeMarathon, testContent(), progress, nil)
	if err := m.PersistErrorOutcome(context.Background(), []int{5, 6}, nil); err != nil {
		t.Fatal(err)
	}
	if len(progress.merged) != 2 {
		t.Errorf("merged = %v, want [5 6]", progress.merged)
	}

	progress = newFakeProgress()
	m, _ = NewDataManager(quiz.ModeError, testContent(), progress, nil)
	if err := m.PersistErrorOutcome(context.Background(), []int{5}, []int{7}); err != nil {
		t.Fatal(err)
	}
	if len(progress.resolved) != 1 || progress.resolved[0] != 7 {
		t.Errorf("resolved = %v, want [7]", progress.resolved)
	}
	if len(progress.merged) != 0 {
		t.Error("error review must not merge new errors")
	}

	progress = newFakeProgress()
	m, _ = NewDataManager(quiz.ModeAITasks, testContent(), progress, &fakeTasks{})
	if err := m.PersistErrorOutcome(context.Background(), []int{5}, nil); err != nil {
		t.Fatal(err)
	}
	if len(progress.merged) != 0 {
		t.Error("ai tasks must not touch the error set")
	}
}
