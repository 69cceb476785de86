package game

import (
	"context"
	"math/rand/v2"

	"quizard/internal/quiz"
)

// ContentRepo is the read surface of the question catalog. Absence is
// reported as nil/empty, not as an error.
type ContentRepo interface {
	Question(ctx context.Context, id int) (*quiz.Question, error)
	QuestionIDs(ctx context.Context, categoryID int, byDifficulty bool) ([]int, error)
	SectionQuestionIDs(ctx context.Context, categoryID, sectionID int) ([]int, error)
}

// ProgressRepo is the write/read surface of the user's persisted progress.
// The best-score decision for AddRecord lives here, not in the manager.
type ProgressRepo interface {
	ErrorIDs(ctx context.Context) ([]int, error)
	MergeErrors(ctx context.Context, ids []int) error
	ResolveErrors(ctx context.Context, ids []int) error
	AddRecord(ctx context.Context, mode quiz.Mode, categoryID, score, elapsed int) error
	ResetSectionProgress(ctx context.Context, ids []int) error
	MarkSectionProgress(ctx context.Context, ids []int) error
	TotalProgressSections(ctx context.Context, ids []int) (int, error)
}

// TaskSource serves AI-generated questions from a previously fetched
// in-memory batch.
type TaskSource interface {
	Question(categoryID, id int) (*quiz.Question, error)
	QuestionIDs(categoryID int) ([]int, error)
}

// DataManager routes question loading and result persistence by mode,
// hiding that four modes read the catalog while AI tasks read a cache.
type DataManager struct {
	mode     quiz.Mode
	content  ContentRepo
	progress ProgressRepo
	tasks    TaskSource
}

// NewDataManager builds a manager for one session's mode.
func NewDataManager(mode quiz.Mode, content ContentRepo, progress ProgressRepo, tasks TaskSource) (*DataManager, error) {
	if mode == quiz.ModeUnused {
		return nil, ErrInvalidMode
	}
	return &DataManager{mode: mode, content: content, progress: progress, tasks: tasks}, nil
}

// LoadQuestion resolves a question id for the active mode.
func (m *DataManager) LoadQuestion(ctx context.Context, id, categoryID int) (*quiz.Question, error) {
	switch m.mode {
	case quiz.ModeAITasks:
		return m.tasks.Question(categoryID, id)
	case quiz.ModeUnused:
		return nil, ErrInvalidMode
	}
	return m.content.Question(ctx, id)
}

// LoadQuestionIDs builds the session's id queue. Arcade requires a section
// id and yields nil without one; marathon and sprint take the whole
// category (sprint ordered by difficulty); error review takes the user's
// tracked error ids; AI tasks take the fetched batch. Queues without an
// inherent order are shuffled here.
func (m *DataManager) LoadQuestionIDs(ctx context.Context, categoryID int, sectionID *int) ([]int, error) {
	switch m.mode {
	case quiz.ModeArcade:
		if sectionID == nil {
			return nil, nil
		}
		ids, err := m.content.SectionQuestionIDs(ctx, categoryID, *sectionID)
		if err != nil {
			return nil, err
		}
		return shuffled(ids), nil

	case quiz.ModeMarathon:
		ids, err := m.content.QuestionIDs(ctx, categoryID, false)
		if err != nil {
			return nil, err
		}
		return shuffled(ids), nil

	case quiz.ModeSprint:
		return m.content.QuestionIDs(ctx, categoryID, true)

	case quiz.ModeError:
		ids, err := m.progress.ErrorIDs(ctx)
		if err != nil {
			return nil, err
		}
		return shuffled(ids), nil

	case quiz.ModeAITasks:
		return m.tasks.QuestionIDs(categoryID)
	}
	return nil, ErrInvalidMode
}

// PersistSectionOutcome resets the section's prior progress, marks the
// newly completed ids, and returns the category's total completed count
// across all sections. Arcade only.
func (m *DataManager) PersistSectionOutcome(ctx context.Context, categoryID int, sectionID *int, completedIDs []int) (int, error) {
	if m.mode == quiz.ModeUnused {
		return 0, ErrInvalidMode
	}
	if m.mode != quiz.ModeArcade || sectionID == nil {
		return 0, nil
	}

	sectionIDs, err := m.content.SectionQuestionIDs(ctx, categoryID, *sectionID)
	if err != nil {
		return 0, err
	}
	if err := m.progress.ResetSectionProgress(ctx, sectionIDs); err != nil {
		return 0, err
	}
	if err := m.progress.MarkSectionProgress(ctx, completedIDs); err != nil {
		return 0, err
	}

	categoryIDs, err := m.content.QuestionIDs(ctx, categoryID, false)
	if err != nil {
		return 0, err
	}
	return m.progress.TotalProgressSections(ctx, categoryIDs)
}

// PersistRecord hands the session score to the progress repository for the
// record-bearing modes. The repository keeps the better of old and new.
func (m *DataManager) PersistRecord(ctx context.Context, categoryID, score, elapsed int) error {
	if m.mode == quiz.ModeUnused {
		return ErrInvalidMode
	}
	if !m.mode.HasRecord() {
		return nil
	}
	return m.progress.AddRecord(ctx, m.mode, categoryID, score, elapsed)
}

// PersistErrorOutcome merges newly wrong ids into the user's error set, or
// removes resolved ids from it during error review. No-op for AI tasks.
func (m *DataManager) PersistErrorOutcome(ctx context.Context, errorIDs, resolvedIDs []int) error {
	switch m.mode {
	case quiz.ModeUnused:
		return ErrInvalidMode
	case quiz.ModeAITasks:
		return nil
	case quiz.ModeError:
		if len(resolvedIDs) == 0 {
			return nil
		}
		return m.progress.ResolveErrors(ctx, resolvedIDs)
	}
	if len(errorIDs) == 0 {
		return nil
	}
	return m.progress.MergeErrors(ctx, errorIDs)
}

func shuffled(ids []int) []int {
	if ids == nil {
		return nil
	}
	out := make([]int, len(ids))
	copy(out, ids)
	rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
