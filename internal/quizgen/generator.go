package quizgen

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"

	"quizard/internal/llm"
	"quizard/internal/quiz"
)

// LLMGenerator implements Generator using the model provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// rawQuestion is one model-produced question before validation.
type rawQuestion struct {
	QuestionText string   `json:"question_text"`
	Answer       string   `json:"answer"`
	Choices      []string `json:"choices"`
	Difficulty   int      `json:"difficulty"`
}

// batchOutput is the raw model response before validation.
type batchOutput struct {
	Questions []rawQuestion `json:"questions"`
}

// GenerateBatch produces a validated batch for the given category.
func (g *LLMGenerator) GenerateBatch(ctx context.Context, input GenerateInput) ([]quiz.Question, error) {
	req := llm.Request{
		System:      systemPrompt,
		Prompt:      buildUserMessage(input, g.config),
		Schema:      BatchSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("batch generation failed: %w", err)
	}

	var raw batchOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse model response: %w", err)
	}

	// Run validators in order.
	for _, v := range g.config.Validators {
		if verr := v.Validate(raw.Questions, input); verr != nil {
			return nil, verr
		}
	}

	return mapBatch(raw.Questions, input.Category.ID), nil
}

// mapBatch converts validated raw questions into playable ones. IDs are
// assigned in order starting at 1 and each question's choice order is
// shuffled so the correct answer does not sit in a fixed slot.
func mapBatch(batch []rawQuestion, categoryID int) []quiz.Question {
	out := make([]quiz.Question, len(batch))
	for i, q := range batch {
		choices := make([]string, len(q.Choices))
		copy(choices, q.Choices)
		rand.Shuffle(len(choices), func(a, b int) {
			choices[a], choices[b] = choices[b], choices[a]
		})

		out[i] = quiz.Question{
			ID:         i + 1,
			Text:       q.QuestionText,
			Answer:     q.Answer,
			Choices:    choices,
			Difficulty: q.Difficulty,
			CategoryID: categoryID,
		}
	}
	return out
}
