// Package llm abstracts the hosted model APIs used for AI task generation.
package llm

import (
	"context"
	"encoding/json"
)

// Provider sends prompts to a hosted model and returns structured JSON.
type Provider interface {
	// Generate sends a prompt and returns the model's response. When the
	// request carries a Schema, the returned Content is JSON validated
	// against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the configured model identifier.
	ModelID() string
}

// Request describes one generation call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Prompt is the user message. Task generation is single-turn.
	Prompt string

	// Schema, when set, selects the provider's structured output
	// mechanism and is enforced on the response.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in [0, 1]; zero means deterministic.
	Temperature float64
}

// Schema is a named JSON Schema for structured output.
type Schema struct {
	// Name identifies the schema to the provider, kebab-case.
	Name string

	// Description guides the model.
	Description string

	// Definition is the JSON Schema document.
	Definition map[string]any
}

// Response is the model's output.
type Response struct {
	// Content is validated JSON when the request had a Schema, raw text
	// otherwise.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string
}

// Usage tracks token consumption for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// resolveModel maps a friendly model name through the given table, passing
// unknown names through as literal model ids.
func resolveModel(name string, models map[string]string) string {
	if id, ok := models[name]; ok {
		return id
	}
	return name
}
