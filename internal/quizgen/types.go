// Package quizgen generates batches of trivia questions with a hosted model.
package quizgen

import (
	"context"

	"quizard/internal/quiz"
)

// GenerateInput holds all context needed to generate a batch.
type GenerateInput struct {
	// Category is the topic the batch is generated for.
	Category quiz.Category

	// Count is the number of questions requested.
	Count int

	// PriorQuestions contains the Text of questions already generated for
	// this category. Used for deduplication in the prompt.
	PriorQuestions []string
}

// Generator produces a batch of playable questions.
type Generator interface {
	// GenerateBatch returns Count validated questions for the input
	// category. The returned questions carry sequential IDs starting at 1
	// and shuffled choice order.
	GenerateBatch(ctx context.Context, input GenerateInput) ([]quiz.Question, error)
}
