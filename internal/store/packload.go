package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"

	"github.com/uptrace/bun"

	"quizard/internal/quiz"
)

// Pack is the on-disk JSON shape of a content pack.
type Pack struct {
	Categories []PackCategory `json:"categories"`
}

// PackCategory is one category of a content pack.
type PackCategory struct {
	ID        int            `json:"id"`
	Name      string         `json:"name"`
	Info      string         `json:"info"`
	Image     string         `json:"image"`
	Ordinal   int            `json:"ordinal"`
	Questions []PackQuestion `json:"questions"`
}

// PackQuestion is one question of a content pack.
type PackQuestion struct {
	ID         int      `json:"id"`
	Text       string   `json:"text"`
	Answer     string   `json:"answer"`
	Choices    []string `json:"choices"`
	Difficulty int      `json:"difficulty"`
	Section    int      `json:"section"`
}

// LoadPack imports a JSON content pack into the catalog. Existing rows for
// the pack's categories are replaced. Returns the imported question count.
func (s *Store) LoadPack(ctx context.Context, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read pack: %w", err)
	}

	var pack Pack
	if err := json.Unmarshal(data, &pack); err != nil {
		return 0, fmt.Errorf("parse pack: %w", err)
	}

	if err := validatePack(&pack); err != nil {
		return 0, err
	}

	total := 0
	err = s.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		for _, cat := range pack.Categories {
			n, err := importCategory(ctx, tx, cat)
			if err != nil {
				return err
			}
			total += n
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("import pack: %w", err)
	}
	return total, nil
}

func validatePack(pack *Pack) error {
	for _, cat := range pack.Categories {
		if cat.Name == "" {
			return fmt.Errorf("category %d: empty name", cat.ID)
		}
		for _, q := range cat.Questions {
			if err := validatePackQuestion(q); err != nil {
				return fmt.Errorf("category %d question %d: %w", cat.ID, q.ID, err)
			}
		}
	}
	return nil
}

func validatePackQuestion(q PackQuestion) error {
	if q.Text == "" {
		return fmt.Errorf("empty text")
	}
	if len(q.Choices) > quiz.ChoiceSlots {
		return fmt.Errorf("more than %d choices", quiz.ChoiceSlots)
	}
	if q.Difficulty < quiz.MinDifficulty || q.Difficulty > quiz.MaxDifficulty {
		return fmt.Errorf("difficulty %d out of range", q.Difficulty)
	}
	for _, c := range q.Choices {
		if c != "" && c == q.Answer {
			return nil
		}
	}
	return fmt.Errorf("answer %q not among choices", q.Answer)
}

func importCategory(ctx context.Context, tx bun.Tx, cat PackCategory) (int, error) {
	// Replace any prior import of this category.
	if _, err := tx.NewDelete().Model((*questionRow)(nil)).Where("category_id = ?", cat.ID).Exec(ctx); err != nil {
		return 0, err
	}
	if _, err := tx.NewDelete().Model((*sectionRow)(nil)).Where("category_id = ?", cat.ID).Exec(ctx); err != nil {
		return 0, err
	}
	if _, err := tx.NewDelete().Model((*categoryRow)(nil)).Where("id = ?", cat.ID).Exec(ctx); err != nil {
		return 0, err
	}

	catRow := &categoryRow{
		ID:            cat.ID,
		Name:          cat.Name,
		Info:          cat.Info,
		Image:         cat.Image,
		Ordinal:       cat.Ordinal,
		QuestionCount: len(cat.Questions),
	}
	if _, err := tx.NewInsert().Model(catRow).Exec(ctx); err != nil {
		return 0, err
	}

	sectionCounts := make(map[int]int)
	for _, q := range cat.Questions {
		choices := make([]string, quiz.ChoiceSlots)
		copy(choices, q.Choices)
		row := &questionRow{
			ID:         q.ID,
			CategoryID: cat.ID,
			SectionID:  q.Section,
			Text:       q.Text,
			Answer:     q.Answer,
			OptionA:    choices[0],
			OptionB:    choices[1],
			OptionC:    choices[2],
			OptionD:    choices[3],
			Difficulty: q.Difficulty,
		}
		if _, err := tx.NewInsert().Model(row).Exec(ctx); err != nil {
			return 0, err
		}
		sectionCounts[q.Section]++
	}

	for sectionID, count := range sectionCounts {
		row := &sectionRow{
			CategoryID:    cat.ID,
			SectionID:     sectionID,
			QuestionCount: count,
		}
		if _, err := tx.NewInsert().Model(row).Exec(ctx); err != nil {
			return 0, err
		}
	}

	return len(cat.Questions), nil
}
