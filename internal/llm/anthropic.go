package llm

import (
	"context"
	"fmt"

	"github.com/liushuangls/go-anthropic/v2"
)

const anthropicDefaultModel = "claude-sonnet-4-20250514"

// anthropicMaxTokens caps a single completion. Tool-call turns are short;
// the final summary of a multi-transfer rarely exceeds a page.
const anthropicMaxTokens = 4096

// AnthropicModels are the tool-capable models the agent can drive.
var AnthropicModels = []Model{
	{ID: "claude-sonnet-4-20250514", Name: "Claude Sonnet 4", ContextWindow: 200000, InputCost: 3.0, OutputCost: 15.0, SupportsTools: true},
	{ID: "claude-opus-4-20250514", Name: "Claude Opus 4", ContextWindow: 200000, InputCost: 15.0, OutputCost: 75.0, SupportsTools: true},
	{ID: "claude-3-5-haiku-20241022", Name: "Claude 3.5 Haiku", ContextWindow: 200000, InputCost: 0.80, OutputCost: 4.0, SupportsTools: true},
}

// AnthropicProvider drives the ledger tools through the Anthropic
// Messages API.
type AnthropicProvider struct {
	client *anthropic.Client
	model  string
}

func NewAnthropicProvider(apiKey, model string) (*AnthropicProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		model = anthropicDefaultModel
	}
	return &AnthropicProvider{client: anthropic.NewClient(apiKey), model: model}, nil
}

func (p *AnthropicProvider) ID() ProviderID      { return ProviderAnthropic }
func (p *AnthropicProvider) Name() string        { return "Anthropic" }
func (p *AnthropicProvider) SupportsTools() bool { return true }
func (p *AnthropicProvider) Models() []Model     { return AnthropicModels }
func (p *AnthropicProvider) DefaultModel() string {
	return p.model
}

func (p *AnthropicProvider) SetModel(modelID string) error {
	if err := ValidateModelID(modelID, p.Models()); err != nil {
		return err
	}
	p.model = modelID
	return nil
}

func (p *AnthropicProvider) Chat(ctx context.Context, req *ChatRequest) (*ChatResponse, error) {
	return p.send(ctx, req, nil, nil)
}

func (p *AnthropicProvider) ChatWithToolResults(ctx context.Context, req *ChatRequest, toolCalls []ToolCall, toolResults []ToolResult) (*ChatResponse, error) {
	return p.send(ctx, req, toolCalls, toolResults)
}

// send assembles one Messages request. When toolCalls/toolResults are
// present they are appended after the plain history as an assistant
// tool_use turn followed by a user tool_result turn, which is how the
// Messages API expects an executed round to be replayed.
func (p *AnthropicProvider) send(ctx context.Context, req *ChatRequest, toolCalls []ToolCall, toolResults []ToolResult) (*ChatResponse, error) {
	model := req.Model
	if model == "" {
		model = p.model
	}
	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = anthropicMaxTokens
	}

	messages := make([]anthropic.Message, 0, len(req.Messages)+2)
	for _, msg := range req.Messages {
		role := anthropic.RoleUser
		if msg.Role == "assistant" {
			role = anthropic.RoleAssistant
		}
		messages = append(messages, anthropic.Message{
			Role:    role,
			Content: []anthropic.MessageContent{anthropic.NewTextMessageContent(msg.Content)},
		})
	}

	if len(toolCalls) > 0 {
		uses := make([]anthropic.MessageContent, 0, len(toolCalls))
		for _, tc := range toolCalls {
			uses = append(uses, anthropic.NewToolUseMessageContent(tc.ID, tc.Name, tc.Input))
		}
		messages = append(messages, anthropic.Message{Role: anthropic.RoleAssistant, Content: uses})
	}
	if len(toolResults) > 0 {
		results := make([]anthropic.MessageContent, 0, len(toolResults))
		for _, tr := range toolResults {
			results = append(results, anthropic.NewToolResultMessageContent(tr.ToolUseID, tr.Content, tr.IsError))
		}
		messages = append(messages, anthropic.Message{Role: anthropic.RoleUser, Content: results})
	}

	apiReq := anthropic.MessagesRequest{
		Model:     anthropic.Model(model),
		MaxTokens: maxTokens,
		System:    req.SystemPrompt,
		Messages:  messages,
	}

	// The Messages API has no "none" choice; withholding the tool block
	// has the same effect.
	if len(req.Tools) > 0 && req.ToolChoice.Mode != ToolChoiceNone {
		tools := make([]anthropic.ToolDefinition, 0, len(req.Tools))
		for _, tool := range req.Tools {
			tools = append(tools, anthropic.ToolDefinition{
				Name:        tool.Name,
				Description: tool.Description,
				InputSchema: tool.InputSchema,
			})
		}
		apiReq.Tools = tools
		if req.ToolChoice.Mode == ToolChoiceForce && req.ToolChoice.Name != "" {
			apiReq.ToolChoice = &anthropic.ToolChoice{Type: "tool", Name: req.ToolChoice.Name}
		}
	}

	resp, err := p.client.CreateMessages(ctx, apiReq)
	if err != nil {
		return nil, fmt.Errorf("anthropic: %w", err)
	}

	out := &ChatResponse{
		StopReason: string(resp.StopReason),
		Usage: Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
		},
	}
	for _, content := range resp.Content {
		switch content.Type {
		case anthropic.MessagesContentTypeText:
			if content.Text != nil {
				out.Content = *content.Text
			}
		case anthropic.MessagesContentTypeToolUse:
			out.ToolCalls = append(out.ToolCalls, ToolCall{
				ID:    content.ID,
				Name:  content.Name,
				Input: content.Input,
			})
		}
	}
	return out, nil
}
