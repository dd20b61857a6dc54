package llm

import (
	"encoding/json"
)

// Tool represents a tool that can be called by the LLM
type Tool struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	InputSchema json.RawMessage `json:"input_schema"`
}

// ToolResult represents the result of a tool call
type ToolResult struct {
	ToolUseID string `json:"tool_use_id"`
	Content   string `json:"content"`
	IsError   bool   `json:"is_error"`
}

// ToolHandler is a function that handles a tool call
type ToolHandler func(input json.RawMessage) (string, error)

// NewTool creates a new tool definition
func NewTool(name, description string, schema interface{}) Tool {
	schemaBytes, _ := json.Marshal(schema)
	return Tool{
		Name:        name,
		Description: description,
		InputSchema: schemaBytes,
	}
}
