// Package llm is the model backend behind the job-match advisor. It hides
// the Anthropic, OpenAI, Gemini and OpenRouter SDKs behind one Provider
// interface and layers retry, timeout and logging decorators on top.
package llm

import (
	"context"
	"encoding/json"
)

// Provider sends one prompt to a model and returns its output.
type Provider interface {
	// Generate returns the model output. When req.Schema is set the
	// provider asks for structured JSON and validates it before returning.
	Generate(ctx context.Context, req Request) (*Response, error)

	ModelID() string
}

// Request describes a single-turn or short multi-turn prompt.
type Request struct {
	System   string
	Messages []Message

	// Schema, when set, is passed to the vendor's structured output
	// mechanism and checked with ValidateJSON. When nil the response
	// Content holds the raw model text.
	Schema *Schema

	MaxTokens int

	// Temperature in [0, 1]. Zero leaves the vendor default.
	Temperature float64
}

type Message struct {
	Role    Role
	Content string
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is a named JSON Schema document.
type Schema struct {
	// Name is kebab-case, e.g. "job-match". It keys the compiled schema cache.
	Name        string
	Description string
	Definition  map[string]any
}

// Stop reasons normalized across vendors.
const (
	StopEnd       = "end"
	StopMaxTokens = "max_tokens"
)

type Response struct {
	// Content is validated JSON when the request carried a Schema and the
	// raw model text otherwise.
	Content    json.RawMessage
	Usage      Usage
	Model      string
	StopReason string
}

// Text returns Content as a plain string.
func (r *Response) Text() string {
	if r == nil {
		return ""
	}
	return string(r.Content)
}

type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
