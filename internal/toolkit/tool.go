// Package toolkit is the tool façade layer: it defines the tool shape
// exposed to the agent, the uniform response envelope, the registry that
// validates and dispatches calls, and the execution strategy that turns
// built transactions into results.
package toolkit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ToolResponse is the terminal value every tool invocation produces.
// Errors never propagate past a tool; they arrive here as Error plus a
// human-readable failure message.
type ToolResponse struct {
	HumanMessage string         `json:"human_message"`
	Error        string         `json:"error,omitempty"`
	Raw          any            `json:"raw,omitempty"`
	Extra        map[string]any `json:"extra,omitempty"`
}

// Failed reports whether the invocation ended in the failure state.
func (r ToolResponse) Failed() bool { return r.Error != "" }

// Failure builds the uniform failure response for an operation. The
// cause string is kept verbatim so the caller can self-correct (ledger
// rejection codes must survive into the message).
func Failure(operation string, err error) ToolResponse {
	msg := fmt.Sprintf("Failed to %s: %v", operation, err)
	return ToolResponse{HumanMessage: msg, Error: msg}
}

// ExecuteFunc runs one tool invocation against already-validated raw
// arguments. Implementations catch every error and fold it into the
// response; they never return one.
type ExecuteFunc func(ctx context.Context, raw json.RawMessage) ToolResponse

// Tool is one callable ledger operation.
type Tool struct {
	// Method is the stable identifier used for dispatch.
	Method string
	// Name is the human-facing title.
	Name string
	// Description is the prompt fragment describing parameters and usage.
	Description string
	// Schema validates raw arguments before dispatch; SchemaJSON is the
	// same document handed to LLM providers as the parameter declaration.
	Schema     *jsonschema.Schema
	SchemaJSON json.RawMessage
	Execute    ExecuteFunc
}
