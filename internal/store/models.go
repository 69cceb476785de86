package store

import (
	"time"

	"github.com/uptrace/bun"

	"quizard/internal/quiz"
)

// questionRow stores a catalog question. The four option columns keep the
// fixed choice-slot layout of the content packs; unused slots are empty.
type questionRow struct {
	bun.BaseModel `bun:"table:questions,alias:q"`

	ID         int    `bun:"id,pk"`
	CategoryID int    `bun:"category_id,notnull"`
	SectionID  int    `bun:"section_id,notnull"`
	Text       string `bun:"text,notnull"`
	Answer     string `bun:"answer,notnull"`
	OptionA    string `bun:"option_a"`
	OptionB    string `bun:"option_b"`
	OptionC    string `bun:"option_c"`
	OptionD    string `bun:"option_d"`
	Difficulty int    `bun:"difficulty,notnull"`
}

func (r *questionRow) toQuestion() *quiz.Question {
	return &quiz.Question{
		ID:         r.ID,
		Text:       r.Text,
		Answer:     r.Answer,
		Choices:    []string{r.OptionA, r.OptionB, r.OptionC, r.OptionD},
		Difficulty: r.Difficulty,
		CategoryID: r.CategoryID,
		SectionID:  r.SectionID,
	}
}

type categoryRow struct {
	bun.BaseModel `bun:"table:categories,alias:c"`

	ID            int    `bun:"id,pk"`
	Name          string `bun:"name,notnull"`
	Info          string `bun:"info"`
	Image         string `bun:"image"`
	Ordinal       int    `bun:"ordinal"`
	QuestionCount int    `bun:"question_count,notnull"`
}

type sectionRow struct {
	bun.BaseModel `bun:"table:sections,alias:s"`

	CategoryID    int `bun:"category_id,pk"`
	SectionID     int `bun:"section_id,pk"`
	QuestionCount int `bun:"question_count,notnull"`
}

// pointRow accumulates the per-category best results. The repository is the
// only writer; readers receive immutable quiz.Point values.
type pointRow struct {
	bun.BaseModel `bun:"table:points,alias:p"`

	CategoryID   int `bun:"category_id,pk"`
	ArcadeBest   int `bun:"arcade_best,notnull,default:0"`
	MarathonBest int `bun:"marathon_best,notnull,default:0"`
	SprintBest   int `bun:"sprint_best,notnull,default:0"`
	Attempts     int `bun:"attempts,notnull,default:0"`
}

// sectionProgressRow marks one question as completed for arcade section
// unlocking. Presence is the flag.
type sectionProgressRow struct {
	bun.BaseModel `bun:"table:section_progress,alias:sp"`

	QuestionID int `bun:"question_id,pk"`
}

// errorRow tracks one missed question in the global error set.
type errorRow struct {
	bun.BaseModel `bun:"table:errors,alias:e"`

	QuestionID int `bun:"question_id,pk"`
}

// recordRow is the append-only history of finished record-bearing sessions.
// SessionID gives each row a stable identifier independent of the
// autoincrement key, so exports survive a database reset.
type recordRow struct {
	bun.BaseModel `bun:"table:records,alias:r"`

	ID         int64     `bun:"id,pk,autoincrement"`
	SessionID  string    `bun:"session_id,notnull"`
	Mode       string    `bun:"mode,notnull"`
	CategoryID int       `bun:"category_id,notnull"`
	Score      int       `bun:"score,notnull"`
	Elapsed    int       `bun:"elapsed,notnull"`
	CreatedAt  time.Time `bun:"created_at,notnull"`
}
