package toolkit

import (
	"context"
	"encoding/json"
	"fmt"
)

// Registry holds the tool set for one agent session. It is constructed
// once at startup and passed by reference; there is no process-wide
// registration table.
type Registry struct {
	order []string
	tools map[string]*Tool
}

func NewRegistry(tools ...*Tool) (*Registry, error) {
	if len(tools) == 0 {
		return nil, fmt.Errorf("no tools registered")
	}
	r := &Registry{tools: make(map[string]*Tool, len(tools))}
	for _, tool := range tools {
		if tool.Method == "" {
			return nil, fmt.Errorf("tool %q has no method", tool.Name)
		}
		if _, dup := r.tools[tool.Method]; dup {
			return nil, fmt.Errorf("duplicate tool method %q", tool.Method)
		}
		r.tools[tool.Method] = tool
		r.order = append(r.order, tool.Method)
	}
	return r, nil
}

// All returns the tools in registration order.
func (r *Registry) All() []*Tool {
	out := make([]*Tool, 0, len(r.order))
	for _, method := range r.order {
		out = append(out, r.tools[method])
	}
	return out
}

func (r *Registry) Get(method string) (*Tool, bool) {
	tool, ok := r.tools[method]
	return tool, ok
}

// Execute validates the arguments against the tool's schema and runs it.
// Unknown methods and schema violations come back as failure responses,
// not errors: the agent surface never throws.
func (r *Registry) Execute(ctx context.Context, method string, raw json.RawMessage) ToolResponse {
	tool, ok := r.tools[method]
	if !ok {
		msg := fmt.Sprintf("unknown tool: %s", method)
		return ToolResponse{HumanMessage: msg, Error: msg}
	}
	if tool.Schema != nil {
		if err := Validate(tool.Schema, raw); err != nil {
			return Failure(tool.operationName(), err)
		}
	}
	return tool.Execute(ctx, raw)
}

// operationName is the lowercase phrase used in failure messages, e.g.
// "create fungible token".
func (t *Tool) operationName() string {
	if t.Name == "" {
		return t.Method
	}
	return lowerWords(t.Name)
}

func lowerWords(s string) string {
	out := []rune(s)
	for i, r := range out {
		if r >= 'A' && r <= 'Z' {
			out[i] = r + ('a' - 'A')
		}
	}
	return string(out)
}
