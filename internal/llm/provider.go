package llm

import (
	"context"
	"encoding/json"
)

// Provider is the reasoning-oracle abstraction the tutoring engine talks to.
// Everything nondeterministic lives behind this interface; the engine itself
// never touches a vendor SDK directly.
type Provider interface {
	// Generate sends a prompt to the oracle and returns its response.
	// When the request carries a Schema, the provider uses its native
	// structured-output mechanism and the response Content is the
	// validated JSON object. Otherwise Content is raw text.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes a single oracle call.
type Request struct {
	// System is the system prompt. Sets the oracle's role and constraints.
	System string

	// Messages is the conversation history. Most engine calls are
	// single-turn and carry one user message.
	Messages []Message

	// Schema is the JSON Schema the response must conform to.
	// Nil means free text.
	Schema *Schema

	// MaxTokens caps the response length. Each engine role picks its own
	// budget: short for analysis and next questions, larger for the
	// completion report.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	Temperature float64
}

// Message is a single message in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema defines the JSON structure expected from the oracle.
type Schema struct {
	// Name identifies this schema (tool name for Anthropic, schema name
	// for OpenAI). Kebab-case, e.g. "understanding-analysis".
	Name string

	// Description is sent to the oracle to guide generation.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the oracle's output.
type Response struct {
	// Content is the generated output. Validated JSON when the request
	// carried a Schema, raw text otherwise.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason is normalized to: "end", "max_tokens", "error".
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
