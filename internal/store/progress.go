package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"quizard/internal/quiz"
)

// ProgressRepo owns the player's persisted progress: best results, the
// global error set, and per-question section completion.
type ProgressRepo struct {
	db *bun.DB
}

// ErrorIDs returns the globally tracked missed-question ids.
func (r *ProgressRepo) ErrorIDs(ctx context.Context) ([]int, error) {
	var ids []int
	err := r.db.NewSelect().
		Model((*errorRow)(nil)).
		Column("e.question_id").
		OrderExpr("e.question_id ASC").
		Scan(ctx, &ids)
	if err != nil {
		return nil, fmt.Errorf("load error ids: %w", err)
	}
	return ids, nil
}

// MergeErrors adds newly missed question ids to the error set.
func (r *ProgressRepo) MergeErrors(ctx context.Context, ids []int) error {
	if len(ids) == 0 {
		return nil
	}
	rows := make([]errorRow, len(ids))
	for i, id := range ids {
		rows[i] = errorRow{QuestionID: id}
	}
	_, err := r.db.NewInsert().
		Model(&rows).
		Ignore().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("merge errors: %w", err)
	}
	return nil
}

// ResolveErrors removes resolved question ids from the error set.
func (r *ProgressRepo) ResolveErrors(ctx context.Context, ids []int) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.db.NewDelete().
		Model((*errorRow)(nil)).
		Where("question_id IN (?)", bun.In(ids)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("resolve errors: %w", err)
	}
	return nil
}

// AddRecord appends a session to the record history and folds the score
// into the category's best results, keeping the better of old and new.
func (r *ProgressRepo) AddRecord(ctx context.Context, mode quiz.Mode, categoryID, score, elapsed int) error {
	if !mode.HasRecord() {
		return nil
	}

	hist := &recordRow{
		SessionID:  uuid.NewString(),
		Mode:       mode.String(),
		CategoryID: categoryID,
		Score:      score,
		Elapsed:    elapsed,
		CreatedAt:  time.Now().UTC(),
	}
	if _, err := r.db.NewInsert().Model(hist).Exec(ctx); err != nil {
		return fmt.Errorf("append record: %w", err)
	}

	point, err := r.loadPoint(ctx, categoryID)
	if err != nil {
		return err
	}
	if point == nil {
		point = &pointRow{CategoryID: categoryID}
	}

	switch mode {
	case quiz.ModeArcade:
		if score > point.ArcadeBest {
			point.ArcadeBest = score
		}
	case quiz.ModeMarathon:
		if score > point.MarathonBest {
			point.MarathonBest = score
		}
	case quiz.ModeSprint:
		if score > point.SprintBest {
			point.SprintBest = score
		}
	}
	point.Attempts++

	_, err = r.db.NewInsert().
		Model(point).
		On("CONFLICT (category_id) DO UPDATE").
		Set("arcade_best = EXCLUDED.arcade_best").
		Set("marathon_best = EXCLUDED.marathon_best").
		Set("sprint_best = EXCLUDED.sprint_best").
		Set("attempts = EXCLUDED.attempts").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("update points: %w", err)
	}
	return nil
}

// ResetSectionProgress clears completion marks for the given question ids.
func (r *ProgressRepo) ResetSectionProgress(ctx context.Context, ids []int) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.db.NewDelete().
		Model((*sectionProgressRow)(nil)).
		Where("question_id IN (?)", bun.In(ids)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("reset section progress: %w", err)
	}
	return nil
}

// MarkSectionProgress records the given question ids as completed.
func (r *ProgressRepo) MarkSectionProgress(ctx context.Context, ids []int) error {
	if len(ids) == 0 {
		return nil
	}
	rows := make([]sectionProgressRow, len(ids))
	for i, id := range ids {
		rows[i] = sectionProgressRow{QuestionID: id}
	}
	_, err := r.db.NewInsert().
		Model(&rows).
		Ignore().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("mark section progress: %w", err)
	}
	return nil
}

// TotalProgressSections counts how many of the given question ids carry a
// completion mark.
func (r *ProgressRepo) TotalProgressSections(ctx context.Context, ids []int) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	count, err := r.db.NewSelect().
		Model((*sectionProgressRow)(nil)).
		Where("question_id IN (?)", bun.In(ids)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count section progress: %w", err)
	}
	return count, nil
}

// AttachPoints joins the persisted best results onto categories. A new
// slice is returned; the inputs are not mutated.
func (r *ProgressRepo) AttachPoints(ctx context.Context, categories []quiz.Category) ([]quiz.Category, error) {
	out := make([]quiz.Category, len(categories))
	for i, cat := range categories {
		point, err := r.loadPoint(ctx, cat.ID)
		if err != nil {
			return nil, err
		}
		cat.Point = quiz.Point{Count: cat.QuestionCount}
		if point != nil {
			cat.Point.ArcadeBest = point.ArcadeBest
			cat.Point.MarathonBest = point.MarathonBest
			cat.Point.SprintBest = point.SprintBest
			cat.Point.Attempts = point.Attempts
		}
		out[i] = cat
	}
	return out, nil
}

// AttachSectionPoints fills each section's point with its completed count.
// The completed count lands in ArcadeBest since sections only exist for
// arcade play.
func (r *ProgressRepo) AttachSectionPoints(ctx context.Context, content *ContentRepo, sections []quiz.Section) ([]quiz.Section, error) {
	out := make([]quiz.Section, len(sections))
	for i, sec := range sections {
		ids, err := content.SectionQuestionIDs(ctx, sec.CategoryID, sec.ID)
		if err != nil {
			return nil, err
		}
		done, err := r.TotalProgressSections(ctx, ids)
		if err != nil {
			return nil, err
		}
		sec.Point = quiz.Point{
			ArcadeBest: done,
			Count:      sec.QuestionCount,
		}
		out[i] = sec
	}
	return out, nil
}

// Reset wipes all player progress while leaving the catalog untouched.
func (r *ProgressRepo) Reset(ctx context.Context) error {
	for _, model := range []any{
		(*pointRow)(nil),
		(*sectionProgressRow)(nil),
		(*errorRow)(nil),
		(*recordRow)(nil),
	} {
		if _, err := r.db.NewDelete().Model(model).Where("1 = 1").Exec(ctx); err != nil {
			return fmt.Errorf("reset progress: %w", err)
		}
	}
	return nil
}

func (r *ProgressRepo) loadPoint(ctx context.Context, categoryID int) (*pointRow, error) {
	row := new(pointRow)
	err := r.db.NewSelect().Model(row).Where("p.category_id = ?", categoryID).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load points: %w", err)
	}
	return row, nil
}
