// Package agent runs the conversation loop: user text goes to the LLM
// provider, tool calls come back, the toolkit registry executes them, and
// results feed the next provider turn until the model settles on a reply.
package agent

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/hashpilot/hashpilot/internal/config"
	"github.com/hashpilot/hashpilot/internal/history"
	"github.com/hashpilot/hashpilot/internal/llm"
	"github.com/hashpilot/hashpilot/internal/toolkit"
)

// ChatEvent represents a single event in the chat flow (tool call, result, or content)
type ChatEvent struct {
	Type    string // "tool_call", "tool_result", "content"
	Tool    string // Tool name for tool_call/tool_result
	Args    string // Tool arguments (redacted) for tool_call
	Content string // Content for tool_result or final content
	IsError bool   // True if tool result was an error
}

// Agent orchestrates conversations and tool calls against the ledger.
type Agent struct {
	// mu protects transcript from concurrent access. Prevents concurrent Chat()
	// calls from interleaving messages and corrupting transcript state.
	mu           sync.Mutex
	provider     llm.Provider
	registry     *toolkit.Registry
	history      *history.Store
	network      string
	systemPrompt string
	transcript   *Transcript
	providers    *llm.ProviderRegistry
	log          *sessionLogger
}

// Options carries the optional collaborators an Agent can run without.
type Options struct {
	// History records executed transactions; nil disables recording.
	History *history.Store
	// DataDir enables session logging when non-empty.
	DataDir string
	// Providers enables switching between configured providers at
	// runtime; nil pins the agent to the one it was built with.
	Providers *llm.ProviderRegistry
}

// New wires an agent over an initialized provider and tool registry.
func New(provider llm.Provider, registry *toolkit.Registry, cctx config.Context, opts Options) (*Agent, error) {
	if provider == nil {
		return nil, fmt.Errorf("provider is required")
	}
	if registry == nil {
		return nil, fmt.Errorf("tool registry is required")
	}

	tr := NewTranscript()
	a := &Agent{
		provider:     provider,
		registry:     registry,
		history:      opts.History,
		network:      cctx.Network,
		systemPrompt: toolkit.SystemPrompt(cctx),
		transcript:   tr,
		providers:    opts.Providers,
	}

	if opts.DataDir != "" {
		log, err := newSessionLogger(opts.DataDir, tr.ID)
		if err != nil {
			return nil, fmt.Errorf("open session log: %w", err)
		}
		a.log = log
	}
	return a, nil
}

// NewProvider creates an LLM provider from its API-key environment
// variable.
func NewProvider(ctx context.Context, id llm.ProviderID) (llm.Provider, error) {
	envVar := llm.EnvVarForProvider(id)
	if envVar == "" {
		return nil, fmt.Errorf("unknown provider: %s", id)
	}
	key := os.Getenv(envVar)
	if key == "" {
		return nil, fmt.Errorf("no API key for %s: set %s", id, envVar)
	}

	switch id {
	case llm.ProviderAnthropic:
		return llm.NewAnthropicProvider(key, "")
	case llm.ProviderOpenAI:
		return llm.NewOpenAIProvider(key, "", "")
	case llm.ProviderGemini:
		return llm.NewGeminiProvider(ctx, key, "")
	default:
		return nil, fmt.Errorf("unknown provider: %s", id)
	}
}

// BuildProviderRegistry constructs every provider whose API-key
// environment variable is set and marks defaultID as the default.
// It fails when the default provider's key is missing, so the caller
// gets the set-this-variable message for the provider it asked for.
func BuildProviderRegistry(ctx context.Context, defaultID llm.ProviderID) (*llm.ProviderRegistry, error) {
	registry := llm.NewProviderRegistry()
	for _, id := range llm.AllProviderIDs() {
		if os.Getenv(llm.EnvVarForProvider(id)) == "" {
			continue
		}
		p, err := NewProvider(ctx, id)
		if err != nil {
			return nil, err
		}
		registry.Register(p)
	}
	envVar := llm.EnvVarForProvider(defaultID)
	if envVar == "" {
		return nil, fmt.Errorf("unknown provider: %s", defaultID)
	}
	if err := registry.SetDefault(defaultID); err != nil {
		return nil, fmt.Errorf("no API key for %s: set %s", defaultID, envVar)
	}
	return registry, nil
}

// Chat sends a user message and returns the agent's response.
// This is a thin wrapper around ChatWithEvents that discards event data.
func (a *Agent) Chat(ctx context.Context, userMessage string) (string, error) {
	events, err := a.ChatWithEvents(ctx, userMessage)
	if err != nil {
		return "", err
	}

	for i := len(events) - 1; i >= 0; i-- {
		if events[i].Type == "content" {
			return events[i].Content, nil
		}
	}
	return "", nil
}

// ChatWithEvents sends a user message and returns structured events for UI rendering.
// This exposes tool calls and results to the caller for visualization.
func (a *Agent) ChatWithEvents(ctx context.Context, userMessage string) ([]ChatEvent, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.provider == nil {
		return nil, fmt.Errorf("agent provider not initialized")
	}

	a.transcript.AddUser(userMessage)
	a.logRecord(sessionRecord{TS: nowTS(), Type: "user", Content: userMessage})

	req := &llm.ChatRequest{
		SystemPrompt: a.systemPrompt,
		Messages:     a.transcript.Messages(),
		Tools:        a.tools(),
	}

	response, err := a.provider.Chat(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to get response: %w", err)
	}

	var events []ChatEvent
	for len(response.ToolCalls) > 0 {
		toolCalls := response.ToolCalls
		a.transcript.AddAssistant(response.Content, toolCalls)

		toolResults, toolEvents := a.executeToolCalls(ctx, toolCalls)
		events = append(events, toolEvents...)
		for _, result := range toolResults {
			a.transcript.AddToolResult(result)
		}

		response, err = a.provider.ChatWithToolResults(ctx, req, toolCalls, toolResults)
		if err != nil {
			return nil, fmt.Errorf("failed to continue conversation: %w", err)
		}
	}

	if response.Content != "" {
		a.transcript.AddAssistant(response.Content, nil)
		a.logRecord(sessionRecord{TS: nowTS(), Type: "assistant", Content: response.Content})

		events = append(events, ChatEvent{
			Type:    "content",
			Content: response.Content,
		})
	}

	return events, nil
}

// executeToolCalls runs all tool calls through the registry and returns
// provider-shaped results plus UI events.
func (a *Agent) executeToolCalls(ctx context.Context, toolCalls []llm.ToolCall) ([]llm.ToolResult, []ChatEvent) {
	results := make([]llm.ToolResult, len(toolCalls))
	var events []ChatEvent

	for i, tc := range toolCalls {
		args := RedactJSONArgs(string(tc.Input))
		events = append(events, ChatEvent{Type: "tool_call", Tool: tc.Name, Args: args})
		a.logRecord(sessionRecord{TS: nowTS(), Type: "tool_call", ToolName: tc.Name, Args: args})

		resp := a.registry.Execute(ctx, tc.Name, tc.Input)
		a.recordHistory(tc.Name, resp)

		results[i] = llm.ToolResult{
			ToolUseID: tc.ID,
			Content:   resp.HumanMessage,
			IsError:   resp.Failed(),
		}
		events = append(events, ChatEvent{
			Type:    "tool_result",
			Tool:    tc.Name,
			Content: resp.HumanMessage,
			IsError: resp.Failed(),
		})
		a.logRecord(sessionRecord{TS: nowTS(), Type: "tool_result", ToolName: tc.Name, Text: resp.HumanMessage, IsError: resp.Failed()})
	}
	return results, events
}

// recordHistory persists the executed result carried in a tool response.
// Recording failures never interrupt the conversation.
func (a *Agent) recordHistory(method string, resp toolkit.ToolResponse) {
	if a.history == nil || resp.Failed() {
		return
	}
	result, ok := resp.Raw.(*toolkit.ExecutedResult)
	if !ok {
		return
	}
	_ = a.history.Record(a.network, method, result)
}

// GetProvider returns the current provider
func (a *Agent) GetProvider() llm.Provider {
	return a.provider
}

// SetModel switches the active model on the current provider.
// Clears conversation history since prior messages may be incompatible.
func (a *Agent) SetModel(modelID string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.provider.SetModel(modelID); err != nil {
		return err
	}
	a.transcript = NewTranscript()
	return nil
}

// CurrentModel returns the active model ID for the current provider.
func (a *Agent) CurrentModel() string {
	return a.provider.DefaultModel()
}

// ListModels returns the available models for the current provider.
func (a *Agent) ListModels() []llm.Model {
	return a.provider.Models()
}

// ProviderName returns the human-readable name of the current provider.
func (a *Agent) ProviderName() string {
	return a.provider.Name()
}

// CurrentProviderID returns the provider identifier for the active provider.
func (a *Agent) CurrentProviderID() llm.ProviderID {
	return a.provider.ID()
}

// SetProvider switches the active provider to another configured one.
// Clears conversation history since prior messages may be incompatible.
func (a *Agent) SetProvider(id llm.ProviderID) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.providers == nil {
		return fmt.Errorf("provider switching not configured")
	}
	p, err := a.providers.Get(id)
	if err != nil {
		return err
	}
	a.provider = p
	if err := a.providers.SetDefault(id); err != nil {
		return err
	}
	a.transcript = NewTranscript()
	return nil
}

// ListProviders returns summary rows for the configured providers, or
// just the active one when switching is not configured.
func (a *Agent) ListProviders() []llm.ProviderInfo {
	if a.providers == nil {
		return []llm.ProviderInfo{{
			ID:            a.provider.ID(),
			Name:          a.provider.Name(),
			SupportsTools: a.provider.SupportsTools(),
			IsDefault:     true,
		}}
	}
	return a.providers.ListProviders()
}

// Tools returns the registry's tool set in provider form, in registration
// order.
func (a *Agent) Tools() []llm.Tool {
	return a.tools()
}

func (a *Agent) tools() []llm.Tool {
	registered := a.registry.All()
	out := make([]llm.Tool, len(registered))
	for i, tool := range registered {
		out[i] = llm.Tool{
			Name:        tool.Method,
			Description: tool.Description,
			InputSchema: tool.SchemaJSON,
		}
	}
	return out
}

// Reset clears the conversation history. Safe to call concurrently with Chat().
func (a *Agent) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.transcript = NewTranscript()
}

// Close cleans up agent resources
func (a *Agent) Close() {
	if a.log != nil {
		a.log.Close()
	}
	if a.providers != nil {
		for _, id := range a.providers.List() {
			if p, err := a.providers.Get(id); err == nil {
				if gemini, ok := p.(*llm.GeminiProvider); ok {
					_ = gemini.Close()
				}
			}
		}
		return
	}
	if gemini, ok := a.provider.(*llm.GeminiProvider); ok {
		_ = gemini.Close()
	}
}

func (a *Agent) logRecord(rec sessionRecord) {
	if a.log != nil {
		a.log.logRecord(rec)
	}
}
