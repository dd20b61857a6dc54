package agent

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashpilot/hashpilot/internal/config"
	"github.com/hashpilot/hashpilot/internal/history"
	"github.com/hashpilot/hashpilot/internal/llm"
	"github.com/hashpilot/hashpilot/internal/toolkit"
)

// scriptedProvider returns canned responses: tool calls on the first
// turn, a closing message once results come back.
type scriptedProvider struct {
	id          llm.ProviderID
	toolCalls   []llm.ToolCall
	finalReply  string
	lastResults []llm.ToolResult
}

func (p *scriptedProvider) ID() llm.ProviderID {
	if p.id == "" {
		return llm.ProviderAnthropic
	}
	return p.id
}
func (p *scriptedProvider) Name() string          { return "Scripted" }
func (p *scriptedProvider) SupportsTools() bool   { return true }
func (p *scriptedProvider) Models() []llm.Model   { return []llm.Model{{ID: "scripted"}} }
func (p *scriptedProvider) DefaultModel() string  { return "scripted" }
func (p *scriptedProvider) SetModel(string) error { return nil }

func (p *scriptedProvider) Chat(_ context.Context, _ *llm.ChatRequest) (*llm.ChatResponse, error) {
	if len(p.toolCalls) > 0 {
		return &llm.ChatResponse{ToolCalls: p.toolCalls, StopReason: "tool_use"}, nil
	}
	return &llm.ChatResponse{Content: p.finalReply, StopReason: "end_turn"}, nil
}

func (p *scriptedProvider) ChatWithToolResults(_ context.Context, _ *llm.ChatRequest, _ []llm.ToolCall, results []llm.ToolResult) (*llm.ChatResponse, error) {
	p.lastResults = results
	return &llm.ChatResponse{Content: p.finalReply, StopReason: "end_turn"}, nil
}

func testRegistry(t *testing.T) *toolkit.Registry {
	t.Helper()
	r, err := toolkit.NewRegistry(&toolkit.Tool{
		Method:      "create_topic",
		Name:        "Create Topic",
		Description: "Creates a consensus topic.",
		SchemaJSON:  json.RawMessage(`{"type": "object"}`),
		Execute: func(_ context.Context, _ json.RawMessage) toolkit.ToolResponse {
			return toolkit.ToolResponse{
				HumanMessage: "Topic created successfully.\nTransaction ID: 0.0.1002@1700000000.000000001",
				Raw: &toolkit.ExecutedResult{
					Status:        "SUCCESS",
					TransactionID: "0.0.1002@1700000000.000000001",
					TopicID:       "0.0.777",
				},
			}
		},
	})
	require.NoError(t, err)
	return r
}

func testContext() config.Context {
	return config.Context{
		Mode:      config.ModeAutonomous,
		AccountID: "0.0.1002",
		Network:   "testnet",
	}
}

func TestChatWithEvents_ToolRoundTrip(t *testing.T) {
	provider := &scriptedProvider{
		toolCalls: []llm.ToolCall{
			{ID: "call-1", Name: "create_topic", Input: json.RawMessage(`{}`)},
		},
		finalReply: "Created topic 0.0.777 for you.",
	}
	hist, err := history.OpenDSN(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = hist.Close() })

	a, err := New(provider, testRegistry(t), testContext(), Options{History: hist})
	require.NoError(t, err)

	events, err := a.ChatWithEvents(context.Background(), "make me a topic")
	require.NoError(t, err)

	var types []string
	for _, e := range events {
		types = append(types, e.Type)
	}
	assert.Equal(t, []string{"tool_call", "tool_result", "content"}, types)
	assert.Equal(t, "create_topic", events[0].Tool)
	assert.Contains(t, events[1].Content, "Topic created successfully")
	assert.False(t, events[1].IsError)
	assert.Equal(t, "Created topic 0.0.777 for you.", events[2].Content)

	// Tool results were handed back to the provider.
	require.Len(t, provider.lastResults, 1)
	assert.Equal(t, "call-1", provider.lastResults[0].ToolUseID)
	assert.False(t, provider.lastResults[0].IsError)

	// The executed transaction landed in history.
	entry, err := hist.Get("testnet", "0.0.1002@1700000000.000000001")
	require.NoError(t, err)
	assert.Equal(t, "create_topic", entry.Method)
	assert.Equal(t, "0.0.777", entry.EntityID)
}

func TestChatWithEvents_UnknownToolIsError(t *testing.T) {
	provider := &scriptedProvider{
		toolCalls: []llm.ToolCall{
			{ID: "call-1", Name: "no_such_tool", Input: json.RawMessage(`{}`)},
		},
		finalReply: "That tool does not exist.",
	}

	a, err := New(provider, testRegistry(t), testContext(), Options{})
	require.NoError(t, err)

	events, err := a.ChatWithEvents(context.Background(), "do the thing")
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(events), 2)
	assert.True(t, events[1].IsError)
	assert.Contains(t, events[1].Content, "unknown tool")
}

func TestChat_ReturnsFinalContent(t *testing.T) {
	provider := &scriptedProvider{finalReply: "Nothing to do."}

	a, err := New(provider, testRegistry(t), testContext(), Options{})
	require.NoError(t, err)

	reply, err := a.Chat(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "Nothing to do.", reply)
}

func TestTools_ExposesRegistryInProviderForm(t *testing.T) {
	a, err := New(&scriptedProvider{}, testRegistry(t), testContext(), Options{})
	require.NoError(t, err)

	tools := a.Tools()
	require.Len(t, tools, 1)
	assert.Equal(t, "create_topic", tools[0].Name)
	assert.NotEmpty(t, tools[0].Description)
	assert.NotEmpty(t, tools[0].InputSchema)
}

func TestNewRequiresCollaborators(t *testing.T) {
	_, err := New(nil, testRegistry(t), testContext(), Options{})
	assert.Error(t, err)

	_, err = New(&scriptedProvider{}, nil, testContext(), Options{})
	assert.Error(t, err)
}

func TestReset(t *testing.T) {
	a, err := New(&scriptedProvider{finalReply: "ok"}, testRegistry(t), testContext(), Options{})
	require.NoError(t, err)

	_, err = a.Chat(context.Background(), "hello")
	require.NoError(t, err)
	require.NotEmpty(t, a.transcript.Turns)

	a.Reset()
	assert.Empty(t, a.transcript.Turns)
}

func TestChatWithEvents_RecordsToolRoundsInTranscript(t *testing.T) {
	provider := &scriptedProvider{
		toolCalls: []llm.ToolCall{
			{ID: "call-1", Name: "create_topic", Input: json.RawMessage(`{}`)},
		},
		finalReply: "Created topic 0.0.777 for you.",
	}

	a, err := New(provider, testRegistry(t), testContext(), Options{})
	require.NoError(t, err)

	_, err = a.ChatWithEvents(context.Background(), "make me a topic")
	require.NoError(t, err)

	var roles []string
	for _, turn := range a.transcript.Turns {
		roles = append(roles, turn.Role)
	}
	assert.Equal(t, []string{"user", "assistant", "tool", "assistant"}, roles)
	assert.Equal(t, "create_topic", a.transcript.Turns[1].ToolCalls[0].Name)
	assert.Equal(t, "call-1", a.transcript.Turns[2].ToolResult.ToolUseID)

	// Tool rounds stay out of the provider-facing message history.
	messages := a.transcript.Messages()
	require.Len(t, messages, 2)
	assert.Equal(t, "user", messages[0].Role)
	assert.Equal(t, "Created topic 0.0.777 for you.", messages[1].Content)
}

func TestSetProvider(t *testing.T) {
	anthropic := &scriptedProvider{id: llm.ProviderAnthropic, finalReply: "from anthropic"}
	openai := &scriptedProvider{id: llm.ProviderOpenAI, finalReply: "from openai"}

	providers := llm.NewProviderRegistry()
	providers.Register(anthropic)
	providers.Register(openai)
	require.NoError(t, providers.SetDefault(llm.ProviderAnthropic))

	a, err := New(anthropic, testRegistry(t), testContext(), Options{Providers: providers})
	require.NoError(t, err)

	_, err = a.Chat(context.Background(), "hello")
	require.NoError(t, err)
	require.NotEmpty(t, a.transcript.Turns)

	t.Run("switches and clears history", func(t *testing.T) {
		require.NoError(t, a.SetProvider(llm.ProviderOpenAI))
		assert.Equal(t, llm.ProviderOpenAI, a.CurrentProviderID())
		assert.Empty(t, a.transcript.Turns)

		reply, err := a.Chat(context.Background(), "hello again")
		require.NoError(t, err)
		assert.Equal(t, "from openai", reply)
	})

	t.Run("rejects unconfigured provider", func(t *testing.T) {
		err := a.SetProvider(llm.ProviderGemini)
		assert.Error(t, err)
		assert.Equal(t, llm.ProviderOpenAI, a.CurrentProviderID())
	})

	t.Run("fails without a registry", func(t *testing.T) {
		pinned, err := New(anthropic, testRegistry(t), testContext(), Options{})
		require.NoError(t, err)
		assert.Error(t, pinned.SetProvider(llm.ProviderOpenAI))
	})
}

func TestListProviders(t *testing.T) {
	t.Run("reports configured providers with the default marked", func(t *testing.T) {
		providers := llm.NewProviderRegistry()
		providers.Register(&scriptedProvider{id: llm.ProviderAnthropic})
		providers.Register(&scriptedProvider{id: llm.ProviderOpenAI})
		require.NoError(t, providers.SetDefault(llm.ProviderOpenAI))

		a, err := New(&scriptedProvider{id: llm.ProviderOpenAI}, testRegistry(t), testContext(), Options{Providers: providers})
		require.NoError(t, err)

		infos := a.ListProviders()
		require.Len(t, infos, 2)
		defaults := 0
		for _, info := range infos {
			if info.IsDefault {
				defaults++
				assert.Equal(t, llm.ProviderOpenAI, info.ID)
			}
		}
		assert.Equal(t, 1, defaults)
	})

	t.Run("falls back to the active provider without a registry", func(t *testing.T) {
		a, err := New(&scriptedProvider{}, testRegistry(t), testContext(), Options{})
		require.NoError(t, err)

		infos := a.ListProviders()
		require.Len(t, infos, 1)
		assert.Equal(t, llm.ProviderAnthropic, infos[0].ID)
		assert.True(t, infos[0].IsDefault)
	})
}

func TestBuildProviderRegistry(t *testing.T) {
	t.Run("fails when the default key is missing", func(t *testing.T) {
		t.Setenv("ANTHROPIC_API_KEY", "")
		_, err := BuildProviderRegistry(context.Background(), llm.ProviderAnthropic)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ANTHROPIC_API_KEY")
	})

	t.Run("rejects unknown provider ids", func(t *testing.T) {
		_, err := BuildProviderRegistry(context.Background(), llm.ProviderID("llama"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown provider")
	})

	t.Run("registers providers with keys present", func(t *testing.T) {
		t.Setenv("ANTHROPIC_API_KEY", "test-key")
		t.Setenv("OPENAI_API_KEY", "test-key")
		t.Setenv("GOOGLE_API_KEY", "")

		providers, err := BuildProviderRegistry(context.Background(), llm.ProviderOpenAI)
		require.NoError(t, err)
		assert.Len(t, providers.List(), 2)

		p, err := providers.GetDefault()
		require.NoError(t, err)
		assert.Equal(t, llm.ProviderOpenAI, p.ID())
	})
}
