package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const geminiDefaultModel = "gemini-2.0-flash"

// GeminiModels are the tool-capable models the agent can drive.
var GeminiModels = []Model{
	{ID: "gemini-2.0-flash", Name: "Gemini 2.0 Flash", ContextWindow: 1000000, InputCost: 0.10, OutputCost: 0.40, SupportsTools: true},
	{ID: "gemini-2.5-pro", Name: "Gemini 2.5 Pro", ContextWindow: 1000000, InputCost: 1.25, OutputCost: 10.0, SupportsTools: true},
	{ID: "gemini-2.5-flash", Name: "Gemini 2.5 Flash", ContextWindow: 1000000, InputCost: 0.30, OutputCost: 2.50, SupportsTools: true},
}

// GeminiProvider drives the ledger tools through the Gemini API's
// function calling. It holds a client connection and must be Closed.
type GeminiProvider struct {
	client *genai.Client
	model  string
}

func NewGeminiProvider(ctx context.Context, apiKey, model string) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}
	if model == "" {
		model = geminiDefaultModel
	}
	return &GeminiProvider{client: client, model: model}, nil
}

func (p *GeminiProvider) ID() ProviderID      { return ProviderGemini }
func (p *GeminiProvider) Name() string        { return "Google Gemini" }
func (p *GeminiProvider) SupportsTools() bool { return true }
func (p *GeminiProvider) Models() []Model     { return GeminiModels }
func (p *GeminiProvider) DefaultModel() string {
	return p.model
}

func (p *GeminiProvider) SetModel(modelID string) error {
	if err := ValidateModelID(modelID, p.Models()); err != nil {
		return err
	}
	p.model = modelID
	return nil
}

func (p *GeminiProvider) Close() error {
	return p.client.Close()
}

func (p *GeminiProvider) Chat(ctx context.Context, req *ChatRequest) (*ChatResponse, error) {
	return p.send(ctx, req, nil, nil)
}

func (p *GeminiProvider) ChatWithToolResults(ctx context.Context, req *ChatRequest, toolCalls []ToolCall, toolResults []ToolResult) (*ChatResponse, error) {
	return p.send(ctx, req, toolCalls, toolResults)
}

// send replays the conversation through a chat session: all turns but
// the last become history, the last is the message sent. An executed
// tool round is replayed as a model turn of FunctionCalls followed by a
// user turn of FunctionResponses.
func (p *GeminiProvider) send(ctx context.Context, req *ChatRequest, toolCalls []ToolCall, toolResults []ToolResult) (*ChatResponse, error) {
	modelName := req.Model
	if modelName == "" {
		modelName = p.model
	}
	model := p.client.GenerativeModel(modelName)

	if req.SystemPrompt != "" {
		model.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(req.SystemPrompt)},
		}
	}
	if len(req.Tools) > 0 && req.ToolChoice.Mode != ToolChoiceNone {
		decls := make([]*genai.FunctionDeclaration, 0, len(req.Tools))
		for _, tool := range req.Tools {
			decls = append(decls, &genai.FunctionDeclaration{
				Name:        tool.Name,
				Description: tool.Description,
				Parameters:  schemaToGenai(tool.InputSchema),
			})
		}
		model.Tools = []*genai.Tool{{FunctionDeclarations: decls}}
	}

	var contents []*genai.Content
	for _, msg := range req.Messages {
		role := "user"
		if msg.Role == "assistant" {
			role = "model"
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(msg.Content)},
		})
	}

	if len(toolCalls) > 0 {
		var calls []genai.Part
		for _, tc := range toolCalls {
			var args map[string]any
			_ = json.Unmarshal(tc.Input, &args)
			calls = append(calls, genai.FunctionCall{Name: tc.Name, Args: args})
		}
		contents = append(contents, &genai.Content{Role: "model", Parts: calls})
	}
	if len(toolResults) > 0 {
		var responses []genai.Part
		for _, tr := range toolResults {
			// Gemini matches responses to calls by function name, not id.
			responses = append(responses, genai.FunctionResponse{
				Name:     tr.ToolUseID,
				Response: map[string]any{"result": tr.Content},
			})
		}
		contents = append(contents, &genai.Content{Role: "user", Parts: responses})
	}

	if len(contents) == 0 {
		return nil, fmt.Errorf("gemini: empty conversation")
	}

	cs := model.StartChat()
	cs.History = contents[:len(contents)-1]
	last := contents[len(contents)-1]

	resp, err := cs.SendMessage(ctx, last.Parts...)
	if err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}
	return parseGeminiResponse(resp)
}

func parseGeminiResponse(resp *genai.GenerateContentResponse) (*ChatResponse, error) {
	if len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("gemini: no candidates in response")
	}
	candidate := resp.Candidates[0]

	out := &ChatResponse{StopReason: string(candidate.FinishReason)}
	if resp.UsageMetadata != nil {
		out.Usage = Usage{
			InputTokens:  int(resp.UsageMetadata.PromptTokenCount),
			OutputTokens: int(resp.UsageMetadata.CandidatesTokenCount),
		}
	}
	if candidate.Content != nil {
		for _, part := range candidate.Content.Parts {
			switch v := part.(type) {
			case genai.Text:
				out.Content = string(v)
			case genai.FunctionCall:
				args, _ := json.Marshal(v.Args)
				out.ToolCalls = append(out.ToolCalls, ToolCall{
					ID:    v.Name, // name doubles as the call id
					Name:  v.Name,
					Input: args,
				})
			}
		}
	}
	return out, nil
}

// schemaToGenai translates a tool's JSON schema into the genai schema
// type. Only the subset the tool schemas use is mapped: object roots,
// typed properties with descriptions and enums, string items for
// arrays, and the required list.
func schemaToGenai(raw json.RawMessage) *genai.Schema {
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil
	}
	return mapGenaiSchema(doc)
}

func mapGenaiSchema(doc map[string]any) *genai.Schema {
	schema := &genai.Schema{Type: genaiType(doc)}

	if desc, ok := doc["description"].(string); ok {
		schema.Description = desc
	}
	if props, ok := doc["properties"].(map[string]any); ok {
		schema.Properties = make(map[string]*genai.Schema, len(props))
		for name, prop := range props {
			if m, ok := prop.(map[string]any); ok {
				schema.Properties[name] = mapGenaiSchema(m)
			}
		}
	}
	if items, ok := doc["items"].(map[string]any); ok {
		schema.Items = mapGenaiSchema(items)
	}
	if enum, ok := doc["enum"].([]any); ok {
		for _, v := range enum {
			if s, ok := v.(string); ok {
				schema.Enum = append(schema.Enum, s)
			}
		}
	}
	if required, ok := doc["required"].([]any); ok {
		for _, v := range required {
			if s, ok := v.(string); ok {
				schema.Required = append(schema.Required, s)
			}
		}
	}
	return schema
}

func genaiType(doc map[string]any) genai.Type {
	t, _ := doc["type"].(string)
	switch t {
	case "string":
		return genai.TypeString
	case "number":
		return genai.TypeNumber
	case "integer":
		return genai.TypeInteger
	case "boolean":
		return genai.TypeBoolean
	case "array":
		return genai.TypeArray
	case "object":
		return genai.TypeObject
	default:
		// Union-typed parameters (e.g. bool-or-string keys) have no
		// single genai type; unspecified lets the model pass either.
		return genai.TypeUnspecified
	}
}
