package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"testing"

	"quizard/internal/llm"
	"quizard/internal/quiz"
)

func testInput(count int) GenerateInput {
	return GenerateInput{
		Category: quiz.Category{ID: 7, Name: "World Capitals", Info: "Capital cities of the world"},
		Count:    count,
	}
}

func batchJSON(n int) json.RawMessage {
	var items []string
	for i := range n {
		items = append(items, fmt.Sprintf(`{
			"question_text": "What is the capital of country %d?",
			"answer": "City %d",
			"choices": ["City %d", "Town A", "Town B", "Town C"],
			"difficulty": %d
		}`, i, i, i, i%5+1))
	}
	return json.RawMessage(`{"questions":[` + strings.Join(items, ",") + `]}`)
}

func TestGenerateBatch_MapsQuestions(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: batchJSON(3)})
	g := New(mock, DefaultConfig())

	got, err := g.GenerateBatch(context.Background(), testInput(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(got))
	}
	for i, q := range got {
		if q.ID != i+1 {
			t.Errorf("question %d: ID = %d, want %d", i, q.ID, i+1)
		}
		if q.CategoryID != 7 {
			t.Errorf("question %d: CategoryID = %d, want 7", i, q.CategoryID)
		}
		if len(q.Choices) != quiz.ChoiceSlots {
			t.Errorf("question %d: %d choices, want %d", i, len(q.Choices), quiz.ChoiceSlots)
		}
		if !slices.Contains(q.Choices, q.Answer) {
			t.Errorf("question %d: answer %q not among choices %v", i, q.Answer, q.Choices)
		}
	}
}

func TestGenerateBatch_PromptCarriesCategoryAndDedup(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: batchJSON(1)})
	g := New(mock, DefaultConfig())

	input := testInput(1)
	input.PriorQuestions = []string{"What is the capital of France?"}

	if _, err := g.GenerateBatch(context.Background(), input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(mock.Calls))
	}
	prompt := mock.Calls[0].Prompt
	if !strings.Contains(prompt, "World Capitals") {
		t.Errorf("prompt missing category name:\n%s", prompt)
	}
	if !strings.Contains(prompt, "What is the capital of France?") {
		t.Errorf("prompt missing prior question:\n%s", prompt)
	}
	if mock.Calls[0].Schema != BatchSchema {
		t.Error("request did not carry the batch schema")
	}
}

func TestGenerateBatch_WrongCountRejected(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: batchJSON(2)})
	g := New(mock, DefaultConfig())

	_, err := g.GenerateBatch(context.Background(), testInput(5))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Validator != "structural" {
		t.Errorf("expected structural failure, got %q", verr.Validator)
	}
}

func TestGenerateBatch_AnswerNotAmongChoicesRejected(t *testing.T) {
	content := json.RawMessage(`{"questions":[{
		"question_text": "What is the capital of Japan?",
		"answer": "Tokyo",
		"choices": ["Kyoto", "Osaka", "Nagoya", "Sapporo"],
		"difficulty": 1
	}]}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: content})
	g := New(mock, DefaultConfig())

	_, err := g.GenerateBatch(context.Background(), testInput(1))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Validator != "answer-membership" {
		t.Errorf("expected answer-membership failure, got %q", verr.Validator)
	}
}

func TestGenerateBatch_ProviderErrorWrapped(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})
	g := New(mock, DefaultConfig())

	_, err := g.GenerateBatch(context.Background(), testInput(1))
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestStructuralValidator_FieldChecks(t *testing.T) {
	valid := rawQuestion{
		QuestionText: "Which ocean is the largest?",
		Answer:       "Pacific",
		Choices:      []string{"Pacific", "Atlantic", "Indian", "Arctic"},
		Difficulty:   2,
	}

	cases := []struct {
		name   string
		mutate func(*rawQuestion)
	}{
		{"empty text", func(q *rawQuestion) { q.QuestionText = "" }},
		{"long text", func(q *rawQuestion) { q.QuestionText = strings.Repeat("x", 501) }},
		{"three choices", func(q *rawQuestion) { q.Choices = q.Choices[:3] }},
		{"empty choice", func(q *rawQuestion) { q.Choices = []string{"Pacific", "", "Indian", "Arctic"} }},
		{"difficulty low", func(q *rawQuestion) { q.Difficulty = 0 }},
		{"difficulty high", func(q *rawQuestion) { q.Difficulty = 6 }},
	}

	v := &StructuralValidator{}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := valid
			q.Choices = slices.Clone(valid.Choices)
			tc.mutate(&q)
			if v.Validate([]rawQuestion{q}, testInput(1)) == nil {
				t.Error("expected validation failure")
			}
		})
	}

	if err := v.Validate([]rawQuestion{valid}, testInput(1)); err != nil {
		t.Errorf("valid question rejected: %v", err)
	}
}

func TestBuildDedup_Truncates(t *testing.T) {
	prior := []string{"one", "two", "three", "four"}
	got := buildDedup(prior, 2)
	if strings.Contains(got, "one") || strings.Contains(got, "two") {
		t.Errorf("expected oldest entries dropped, got:\n%s", got)
	}
	if !strings.Contains(got, "three") || !strings.Contains(got, "four") {
		t.Errorf("expected newest entries kept, got:\n%s", got)
	}
	if buildDedup(nil, 5) != "None" {
		t.Error("expected \"None\" for empty prior list")
	}
}
