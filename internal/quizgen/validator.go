package quizgen

import "fmt"

// Validator checks a generated batch for correctness.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for this validator, used in error
	// messages, e.g. "structural", "answer-membership".
	Name() string

	// Validate checks the batch and returns nil if it passes.
	Validate(batch []rawQuestion, input GenerateInput) *ValidationError
}

// ValidationError describes why a batch failed validation.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}
