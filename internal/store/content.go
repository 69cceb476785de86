package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"quizard/internal/quiz"
)

// ContentRepo reads the question catalog. Absence is reported as nil/empty,
// never as an error.
type ContentRepo struct {
	db *bun.DB
}

// Question returns the question with the given id, or nil if absent.
func (r *ContentRepo) Question(ctx context.Context, id int) (*quiz.Question, error) {
	row := new(questionRow)
	err := r.db.NewSelect().Model(row).Where("q.id = ?", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load question %d: %w", id, err)
	}
	return row.toQuestion(), nil
}

// QuestionIDs returns the category's question ids, ordered by difficulty
// when byDifficulty is set and by id otherwise.
func (r *ContentRepo) QuestionIDs(ctx context.Context, categoryID int, byDifficulty bool) ([]int, error) {
	var ids []int
	q := r.db.NewSelect().
		Model((*questionRow)(nil)).
		Column("q.id").
		Where("q.category_id = ?", categoryID)
	if byDifficulty {
		q = q.OrderExpr("q.difficulty ASC, q.id ASC")
	} else {
		q = q.OrderExpr("q.id ASC")
	}
	if err := q.Scan(ctx, &ids); err != nil {
		return nil, fmt.Errorf("load question ids: %w", err)
	}
	return ids, nil
}

// SectionQuestionIDs returns the ids of one section of a category.
func (r *ContentRepo) SectionQuestionIDs(ctx context.Context, categoryID, sectionID int) ([]int, error) {
	var ids []int
	err := r.db.NewSelect().
		Model((*questionRow)(nil)).
		Column("q.id").
		Where("q.category_id = ?", categoryID).
		Where("q.section_id = ?", sectionID).
		OrderExpr("q.id ASC").
		Scan(ctx, &ids)
	if err != nil {
		return nil, fmt.Errorf("load section question ids: %w", err)
	}
	return ids, nil
}

// SectionCount returns the number of sections in a category.
func (r *ContentRepo) SectionCount(ctx context.Context, categoryID int) (int, error) {
	count, err := r.db.NewSelect().
		Model((*sectionRow)(nil)).
		Where("s.category_id = ?", categoryID).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count sections: %w", err)
	}
	return count, nil
}

// Sections returns the category's sections ordered by section id.
func (r *ContentRepo) Sections(ctx context.Context, categoryID int) ([]quiz.Section, error) {
	var rows []sectionRow
	err := r.db.NewSelect().
		Model(&rows).
		Where("s.category_id = ?", categoryID).
		OrderExpr("s.section_id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("load sections: %w", err)
	}
	sections := make([]quiz.Section, len(rows))
	for i, row := range rows {
		sections[i] = quiz.Section{
			ID:            row.SectionID,
			CategoryID:    row.CategoryID,
			QuestionCount: row.QuestionCount,
		}
	}
	return sections, nil
}

// Categories returns all categories ordered by their display ordinal.
func (r *ContentRepo) Categories(ctx context.Context) ([]quiz.Category, error) {
	var rows []categoryRow
	err := r.db.NewSelect().
		Model(&rows).
		OrderExpr("c.ordinal ASC, c.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}
	categories := make([]quiz.Category, len(rows))
	for i, row := range rows {
		categories[i] = quiz.Category{
			ID:            row.ID,
			Name:          row.Name,
			Info:          row.Info,
			Image:         row.Image,
			QuestionCount: row.QuestionCount,
			Ordinal:       row.Ordinal,
		}
	}
	return categories, nil
}
