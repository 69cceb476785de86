package quizgen

import "quizard/internal/llm"

// BatchSchema defines the JSON schema for model batch responses.
var BatchSchema = &llm.Schema{
	Name:        "trivia-batch",
	Description: "A batch of multiple-choice trivia questions for one category",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":        "array",
				"description": "The generated questions, in no particular order",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question_text": map[string]any{
							"type":        "string",
							"description": "The question shown to the player, self-contained plain text",
						},
						"answer": map[string]any{
							"type":        "string",
							"description": "The text of the correct choice, verbatim",
						},
						"choices": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "string",
							},
							"description": "Exactly 4 options where exactly one matches answer",
						},
						"difficulty": map[string]any{
							"type":        "integer",
							"minimum":     1,
							"maximum":     5,
							"description": "Self-assessed difficulty from 1 (easy) to 5 (hard)",
						},
					},
					"required":             []any{"question_text", "answer", "choices", "difficulty"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
