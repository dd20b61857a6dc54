package llm

import (
	"context"
	"encoding/json"
	"fmt"
)

// ProviderID represents a unique provider identifier
type ProviderID string

const (
	ProviderAnthropic ProviderID = "anthropic"
	ProviderOpenAI    ProviderID = "openai"
	ProviderGemini    ProviderID = "gemini"
)

// Provider is the interface all LLM providers must implement
type Provider interface {
	// ID returns the unique provider identifier
	ID() ProviderID

	// Name returns the human-readable provider name
	Name() string

	// Chat sends a message and returns the response
	Chat(ctx context.Context, req *ChatRequest) (*ChatResponse, error)

	// SupportsTools returns true if provider supports tool use
	SupportsTools() bool

	// Models returns available models for this provider
	Models() []Model

	// DefaultModel returns the default model for this provider
	DefaultModel() string

	// SetModel switches the active model. Returns error if model ID is not
	// in the provider's supported model list.
	SetModel(modelID string) error

	// ChatWithToolResults continues a conversation after tools have been executed.
	ChatWithToolResults(ctx context.Context, req *ChatRequest, toolCalls []ToolCall, toolResults []ToolResult) (*ChatResponse, error)
}

// Model represents an available model
type Model struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	ContextWindow int     `json:"context_window"`
	InputCost     float64 `json:"input_cost"`  // per 1M tokens
	OutputCost    float64 `json:"output_cost"` // per 1M tokens
	SupportsTools bool    `json:"supports_tools"`
}

// Message represents a conversation message
type Message struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// ToolCall represents a tool call from the model
type ToolCall struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Input json.RawMessage `json:"input"`
}

// ToolChoiceMode controls whether the model may, must not, or must call
// a tool on the next turn.
type ToolChoiceMode int

const (
	ToolChoiceAuto ToolChoiceMode = iota
	ToolChoiceNone
	ToolChoiceForce
)

// ToolChoice selects the tool-use behaviour for a chat turn. Name is the
// tool to force when Mode is ToolChoiceForce.
type ToolChoice struct {
	Mode ToolChoiceMode `json:"mode,omitempty"`
	Name string         `json:"name,omitempty"`
}

// ChatRequest is a provider-agnostic chat request
type ChatRequest struct {
	SystemPrompt string     `json:"system_prompt"`
	Messages     []Message  `json:"messages"`
	Tools        []Tool     `json:"tools,omitempty"`
	Model        string     `json:"model,omitempty"` // Uses default if empty
	ToolChoice   ToolChoice `json:"tool_choice,omitempty"`
	MaxTokens    int        `json:"max_tokens,omitempty"`
}

// ChatResponse is a provider-agnostic chat response
type ChatResponse struct {
	Content    string     `json:"content"`
	ToolCalls  []ToolCall `json:"tool_calls,omitempty"`
	StopReason string     `json:"stop_reason"`
	Usage      Usage      `json:"usage"`
}

// Usage tracks token usage
type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

// EnvVarForProvider returns the environment variable name for a provider's API key
func EnvVarForProvider(id ProviderID) string {
	switch id {
	case ProviderAnthropic:
		return "ANTHROPIC_API_KEY"
	case ProviderOpenAI:
		return "OPENAI_API_KEY"
	case ProviderGemini:
		return "GOOGLE_API_KEY"
	default:
		return ""
	}
}

// AllProviderIDs returns all known provider IDs in priority order
func AllProviderIDs() []ProviderID {
	return []ProviderID{
		ProviderAnthropic,
		ProviderOpenAI,
		ProviderGemini,
	}
}

// ValidateModelID checks whether modelID exists in the given model list.
func ValidateModelID(modelID string, models []Model) error {
	for _, m := range models {
		if m.ID == modelID {
			return nil
		}
	}
	return fmt.Errorf("unknown model %q for this provider", modelID)
}

// ProviderInfo is a summary row for provider listings.
type ProviderInfo struct {
	ID            ProviderID `json:"id"`
	Name          string     `json:"name"`
	SupportsTools bool       `json:"supports_tools"`
	IsDefault     bool       `json:"is_default"`
}

// ProviderRegistry holds the configured providers for a session.
type ProviderRegistry struct {
	providers map[ProviderID]Provider
	defaultID ProviderID
}

// NewProviderRegistry creates an empty registry with Anthropic as the
// default provider id.
func NewProviderRegistry() *ProviderRegistry {
	return &ProviderRegistry{
		providers: make(map[ProviderID]Provider),
		defaultID: ProviderAnthropic,
	}
}

// Register adds or replaces a provider.
func (r *ProviderRegistry) Register(p Provider) {
	r.providers[p.ID()] = p
}

// Get returns the provider with the given id.
func (r *ProviderRegistry) Get(id ProviderID) (Provider, error) {
	p, ok := r.providers[id]
	if !ok {
		return nil, fmt.Errorf("provider not found: %s", id)
	}
	return p, nil
}

// GetDefault returns the default provider.
func (r *ProviderRegistry) GetDefault() (Provider, error) {
	return r.Get(r.defaultID)
}

// SetDefault switches the default provider; it must be registered.
func (r *ProviderRegistry) SetDefault(id ProviderID) error {
	if _, ok := r.providers[id]; !ok {
		return fmt.Errorf("provider not found: %s", id)
	}
	r.defaultID = id
	return nil
}

// List returns the registered provider ids.
func (r *ProviderRegistry) List() []ProviderID {
	ids := make([]ProviderID, 0, len(r.providers))
	for id := range r.providers {
		ids = append(ids, id)
	}
	return ids
}

// ListProviders returns summary info for every registered provider.
func (r *ProviderRegistry) ListProviders() []ProviderInfo {
	infos := make([]ProviderInfo, 0, len(r.providers))
	for id, p := range r.providers {
		infos = append(infos, ProviderInfo{
			ID:            id,
			Name:          p.Name(),
			SupportsTools: p.SupportsTools(),
			IsDefault:     id == r.defaultID,
		})
	}
	return infos
}
