package game

import (
	"errors"
	"fmt"

	"quizard/internal/quiz"
)

// ErrIncompleteResult is returned by ResultBuilder.Build when a required
// field was never set.
var ErrIncompleteResult = errors.New("incomplete game result")

// Result is the immutable end-of-game snapshot handed to the summary
// screen and the persistence layer.
type Result struct {
	Mode       quiz.Mode
	CategoryID int

	// Record is the best score prior to this session.
	Record int

	// Score is the final score of this session.
	Score int

	// Count is the total question count the session started with.
	Count int

	// ErrorIDs are the ids answered incorrectly this session.
	ErrorIDs []int

	// Elapsed is the session duration in seconds.
	Elapsed int
}

// NewRecord reports whether this session beat the prior record.
func (r *Result) NewRecord() bool {
	return r.Score > r.Record
}

// ResultBuilder accumulates the fields of a Result. Build fails unless
// mode, record, score, and count have all been provided.
type ResultBuilder struct {
	mode       quiz.Mode
	categoryID int
	record     int
	score      int
	count      int
	errorIDs   []int
	elapsed    int
}

const unset = -1

// NewResultBuilder returns a builder with all required fields unset.
func NewResultBuilder() *ResultBuilder {
	return &ResultBuilder{
		mode:   quiz.ModeUnused,
		record: unset,
		score:  unset,
		count:  unset,
	}
}

func (b *ResultBuilder) Mode(m quiz.Mode) *ResultBuilder {
	b.mode = m
	return b
}

func (b *ResultBuilder) Category(id int) *ResultBuilder {
	b.categoryID = id
	return b
}

func (b *ResultBuilder) Record(record int) *ResultBuilder {
	b.record = record
	return b
}

func (b *ResultBuilder) Score(score int) *ResultBuilder {
	b.score = score
	return b
}

func (b *ResultBuilder) Count(count int) *ResultBuilder {
	b.count = count
	return b
}

func (b *ResultBuilder) ErrorIDs(ids []int) *ResultBuilder {
	b.errorIDs = ids
	return b
}

func (b *ResultBuilder) Elapsed(seconds int) *ResultBuilder {
	b.elapsed = seconds
	return b
}

// Build returns the Result or ErrIncompleteResult naming the missing field.
func (b *ResultBuilder) Build() (*Result, error) {
	switch {
	case b.mode == quiz.ModeUnused:
		return nil, fmt.Errorf("%w: mode", ErrIncompleteResult)
	case b.record == unset:
		return nil, fmt.Errorf("%w: record", ErrIncompleteResult)
	case b.score == unset:
		return nil, fmt.Errorf("%w: score", ErrIncompleteResult)
	case b.count == unset:
		return nil, fmt.Errorf("%w: count", ErrIncompleteResult)
	}
	return &Result{
		Mode:       b.mode,
		CategoryID: b.categoryID,
		Record:     b.record,
		Score:      b.score,
		Count:      b.count,
		ErrorIDs:   b.errorIDs,
		Elapsed:    b.elapsed,
	}, nil
}
