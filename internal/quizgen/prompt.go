package quizgen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a quizmaster writing multiple-choice trivia questions.

Rules:
- Generate exactly the requested number of questions for the given category.
- Each question must be clear, self-contained, and answerable without outside context.
- Use plain text. No markdown, no numbering in the question text itself.
- Provide exactly 4 choices per question where exactly one is correct.
- The answer field must match the correct choice verbatim.
- Distractors should be plausible, not obviously wrong or absurd.
- Facts must be accurate and uncontroversial. Avoid questions whose answer changes over time.
- Spread difficulty across the batch from easy to hard.
- Do not repeat any question from the "already generated" list.`

// buildUserMessage constructs the user message from GenerateInput and Config limits.
func buildUserMessage(input GenerateInput, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Category: %s\n", input.Category.Name)
	if input.Category.Info != "" {
		fmt.Fprintf(&b, "Description: %s\n", input.Category.Info)
	}
	fmt.Fprintf(&b, "Questions requested: %d\n", input.Count)

	b.WriteString("\nAlready generated for this category:\n")
	b.WriteString(buildDedup(input.PriorQuestions, cfg.MaxPriorQuestions))

	return b.String()
}

// buildDedup formats prior questions for the prompt, respecting the max limit.
// Returns "None" if there are no prior questions.
func buildDedup(priorQuestions []string, max int) string {
	if len(priorQuestions) == 0 {
		return "None"
	}

	// Keep only the most recent N questions.
	if max > 0 && len(priorQuestions) > max {
		priorQuestions = priorQuestions[len(priorQuestions)-max:]
	}

	var b strings.Builder
	for i, q := range priorQuestions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}
	return strings.TrimRight(b.String(), "\n")
}
