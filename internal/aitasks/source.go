// Package aitasks caches model-generated question batches for play.
//
// Batches live only in memory. AI task sessions produce no records and no
// error-set entries, so nothing here touches the database.
package aitasks

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"quizard/internal/quiz"
	"quizard/internal/quizgen"
)

// DefaultBatchSize is the number of questions fetched per category.
const DefaultBatchSize = 10

// Source fetches and caches one question batch per category. It implements
// the task source the session data manager reads from.
type Source struct {
	generator quizgen.Generator
	batchSize int

	mu      sync.Mutex
	batches map[int][]quiz.Question
}

// NewSource creates a Source backed by the given generator. A batchSize of
// zero or less falls back to DefaultBatchSize.
func NewSource(generator quizgen.Generator, batchSize int) *Source {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &Source{
		generator: generator,
		batchSize: batchSize,
		batches:   make(map[int][]quiz.Question),
	}
}

// Fetch generates and caches a batch for the category, replacing any prior
// batch. Texts of the replaced batch are passed to the generator so a
// refreshed batch avoids repeats.
func (s *Source) Fetch(ctx context.Context, category quiz.Category) error {
	s.mu.Lock()
	prior := make([]string, 0, len(s.batches[category.ID]))
	for _, q := range s.batches[category.ID] {
		prior = append(prior, q.Text)
	}
	s.mu.Unlock()

	batch, err := s.generator.GenerateBatch(ctx, quizgen.GenerateInput{
		Category:       category,
		Count:          s.batchSize,
		PriorQuestions: prior,
	})
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.batches[category.ID] = batch
	s.mu.Unlock()
	return nil
}

// Prefetch fetches batches for all given categories concurrently. The first
// failure cancels the remaining fetches; categories fetched before the
// failure stay cached.
func (s *Source) Prefetch(ctx context.Context, categories []quiz.Category) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(2)
	for _, cat := range categories {
		g.Go(func() error {
			return s.Fetch(ctx, cat)
		})
	}
	return g.Wait()
}

// Cached reports whether a batch is available for the category.
func (s *Source) Cached(categoryID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.batches[categoryID]) > 0
}

// Question returns one cached question by id.
func (s *Source) Question(categoryID, id int) (*quiz.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	batch, ok := s.batches[categoryID]
	if !ok {
		return nil, quiz.ErrNoBatch
	}
	for _, q := range batch {
		if q.ID == id {
			return &q, nil
		}
	}
	return nil, quiz.ErrQuestionNotFound
}

// QuestionIDs returns the cached batch's ids in generation order.
func (s *Source) QuestionIDs(categoryID int) ([]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	batch, ok := s.batches[categoryID]
	if !ok {
		return nil, quiz.ErrNoBatch
	}
	ids := make([]int, len(batch))
	for i, q := range batch {
		ids[i] = q.ID
	}
	return ids, nil
}

// Drop discards the cached batch for the category.
func (s *Source) Drop(categoryID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.batches, categoryID)
}
