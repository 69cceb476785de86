package quizgen

import (
	"fmt"
	"slices"

	"quizard/internal/quiz"
)

// StructuralValidator checks that the batch has the requested size and that
// every question's fields are present and within bounds.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(batch []rawQuestion, input GenerateInput) *ValidationError {
	if len(batch) != input.Count {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("expected %d questions, got %d", input.Count, len(batch)),
		}
	}

	for i, q := range batch {
		if q.QuestionText == "" {
			return v.fail(i, "question_text is empty")
		}
		if len(q.QuestionText) > 500 {
			return v.fail(i, "question_text exceeds 500 characters")
		}
		if len(q.Choices) != quiz.ChoiceSlots {
			return v.fail(i, fmt.Sprintf("expected %d choices, got %d", quiz.ChoiceSlots, len(q.Choices)))
		}
		if slices.Contains(q.Choices, "") {
			return v.fail(i, "empty choice")
		}
		if q.Difficulty < quiz.MinDifficulty || q.Difficulty > quiz.MaxDifficulty {
			return v.fail(i, fmt.Sprintf("difficulty must be between %d and %d", quiz.MinDifficulty, quiz.MaxDifficulty))
		}
	}
	return nil
}

func (v *StructuralValidator) fail(i int, msg string) *ValidationError {
	return &ValidationError{
		Validator: v.Name(),
		Message:   fmt.Sprintf("question %d: %s", i+1, msg),
	}
}

// AnswerMembershipValidator checks that every answer appears among its
// question's choices exactly once.
type AnswerMembershipValidator struct{}

func (v *AnswerMembershipValidator) Name() string { return "answer-membership" }

func (v *AnswerMembershipValidator) Validate(batch []rawQuestion, _ GenerateInput) *ValidationError {
	for i, q := range batch {
		matches := 0
		for _, c := range q.Choices {
			if c == q.Answer {
				matches++
			}
		}
		if matches != 1 {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("question %d: answer matches %d choices, want 1", i+1, matches),
			}
		}
	}
	return nil
}
