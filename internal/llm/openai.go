package llm

import (
	"context"
	"encoding/json"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

const openaiDefaultModel = "gpt-4o"

// OpenAIModels are the tool-capable models the agent can drive.
var OpenAIModels = []Model{
	{ID: "gpt-4o", Name: "GPT-4o", ContextWindow: 128000, InputCost: 2.50, OutputCost: 10.0, SupportsTools: true},
	{ID: "gpt-4o-mini", Name: "GPT-4o Mini", ContextWindow: 128000, InputCost: 0.15, OutputCost: 0.60, SupportsTools: true},
	{ID: "gpt-4.1", Name: "GPT-4.1", ContextWindow: 1000000, InputCost: 2.0, OutputCost: 8.0, SupportsTools: true},
	{ID: "gpt-4.1-mini", Name: "GPT-4.1 Mini", ContextWindow: 1000000, InputCost: 0.40, OutputCost: 1.60, SupportsTools: true},
}

// OpenAIProvider drives the ledger tools through the Chat Completions
// API with function calling.
type OpenAIProvider struct {
	client *openai.Client
	model  string
}

func NewOpenAIProvider(apiKey, model, baseURL string) (*OpenAIProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	if model == "" {
		model = openaiDefaultModel
	}
	return &OpenAIProvider{client: openai.NewClientWithConfig(config), model: model}, nil
}

func (p *OpenAIProvider) ID() ProviderID      { return ProviderOpenAI }
func (p *OpenAIProvider) Name() string        { return "OpenAI" }
func (p *OpenAIProvider) SupportsTools() bool { return true }
func (p *OpenAIProvider) Models() []Model     { return OpenAIModels }
func (p *OpenAIProvider) DefaultModel() string {
	return p.model
}

func (p *OpenAIProvider) SetModel(modelID string) error {
	if err := ValidateModelID(modelID, p.Models()); err != nil {
		return err
	}
	p.model = modelID
	return nil
}

func (p *OpenAIProvider) Chat(ctx context.Context, req *ChatRequest) (*ChatResponse, error) {
	return p.send(ctx, req, nil, nil)
}

func (p *OpenAIProvider) ChatWithToolResults(ctx context.Context, req *ChatRequest, toolCalls []ToolCall, toolResults []ToolResult) (*ChatResponse, error) {
	return p.send(ctx, req, toolCalls, toolResults)
}

// send assembles one completion request. An executed tool round is
// replayed as an assistant message carrying tool_calls followed by one
// role:tool message per result.
func (p *OpenAIProvider) send(ctx context.Context, req *ChatRequest, toolCalls []ToolCall, toolResults []ToolResult) (*ChatResponse, error) {
	model := req.Model
	if model == "" {
		model = p.model
	}
	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = 4096
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(req.Messages)+len(toolResults)+2)
	if req.SystemPrompt != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.SystemPrompt,
		})
	}
	for _, msg := range req.Messages {
		role := openai.ChatMessageRoleUser
		if msg.Role == "assistant" {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: msg.Content})
	}

	if len(toolCalls) > 0 {
		assistant := openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant}
		for _, tc := range toolCalls {
			assistant.ToolCalls = append(assistant.ToolCalls, openai.ToolCall{
				ID:   tc.ID,
				Type: openai.ToolTypeFunction,
				Function: openai.FunctionCall{
					Name:      tc.Name,
					Arguments: string(tc.Input),
				},
			})
		}
		messages = append(messages, assistant)
	}
	for _, tr := range toolResults {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:       openai.ChatMessageRoleTool,
			Content:    tr.Content,
			ToolCallID: tr.ToolUseID,
		})
	}

	apiReq := openai.ChatCompletionRequest{
		Model:     model,
		MaxTokens: maxTokens,
		Messages:  messages,
	}

	if len(req.Tools) > 0 {
		tools := make([]openai.Tool, 0, len(req.Tools))
		for _, tool := range req.Tools {
			var params map[string]any
			_ = json.Unmarshal(tool.InputSchema, &params) // schema validated at registration
			tools = append(tools, openai.Tool{
				Type: openai.ToolTypeFunction,
				Function: &openai.FunctionDefinition{
					Name:        tool.Name,
					Description: tool.Description,
					Parameters:  params,
				},
			})
		}
		apiReq.Tools = tools
		if tc := mapToolChoice(req.ToolChoice); tc != nil {
			apiReq.ToolChoice = tc
		}
	}

	resp, err := p.client.CreateChatCompletion(ctx, apiReq)
	if err != nil {
		return nil, fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai: no choices in response")
	}

	choice := resp.Choices[0]
	out := &ChatResponse{
		Content:    choice.Message.Content,
		StopReason: string(choice.FinishReason),
		Usage: Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
		},
	}
	for _, tc := range choice.Message.ToolCalls {
		if tc.Type == openai.ToolTypeFunction {
			out.ToolCalls = append(out.ToolCalls, ToolCall{
				ID:    tc.ID,
				Name:  tc.Function.Name,
				Input: json.RawMessage(tc.Function.Arguments),
			})
		}
	}
	return out, nil
}

func mapToolChoice(choice ToolChoice) any {
	switch choice.Mode {
	case ToolChoiceNone:
		return "none"
	case ToolChoiceForce:
		if choice.Name == "" {
			return nil
		}
		return openai.ToolChoice{
			Type:     openai.ToolTypeFunction,
			Function: openai.ToolFunction{Name: choice.Name},
		}
	default:
		return "auto"
	}
}
