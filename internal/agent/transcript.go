package agent

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/hashpilot/hashpilot/internal/llm"
)

// Turn is a single entry in a chat transcript: a user prompt, an
// assistant reply (possibly carrying tool calls), or a tool result.
type Turn struct {
	At         time.Time       `json:"at"`
	Role       string          `json:"role"`
	Content    string          `json:"content"`
	ToolCalls  []llm.ToolCall  `json:"tool_calls,omitempty"`
	ToolResult *llm.ToolResult `json:"tool_result,omitempty"`
}

// Transcript accumulates every turn of a chat session in order,
// including the tool rounds the providers never echo back.
type Transcript struct {
	ID      string    `json:"id"`
	Started time.Time `json:"started"`
	Turns   []Turn    `json:"turns"`
}

func NewTranscript() *Transcript {
	return &Transcript{
		ID:      transcriptID(),
		Started: time.Now(),
		Turns:   make([]Turn, 0),
	}
}

// AddUser appends a user prompt.
func (t *Transcript) AddUser(content string) {
	t.Turns = append(t.Turns, Turn{
		At:      time.Now(),
		Role:    "user",
		Content: content,
	})
}

// AddAssistant appends an assistant reply. toolCalls carries the calls
// the model requested alongside the text, or nil for a plain reply.
func (t *Transcript) AddAssistant(content string, toolCalls []llm.ToolCall) {
	t.Turns = append(t.Turns, Turn{
		At:        time.Now(),
		Role:      "assistant",
		Content:   content,
		ToolCalls: toolCalls,
	})
}

// AddToolResult appends the outcome of one tool call.
func (t *Transcript) AddToolResult(result llm.ToolResult) {
	t.Turns = append(t.Turns, Turn{
		At:         time.Now(),
		Role:       "tool",
		ToolResult: &result,
	})
}

// Messages renders the transcript as provider messages. Tool turns and
// text-free assistant turns are skipped: each provider re-shapes tool
// rounds in its own wire format, so only user and assistant text goes
// back on the next request.
func (t *Transcript) Messages() []llm.Message {
	messages := make([]llm.Message, 0)
	for _, turn := range t.Turns {
		if (turn.Role == "user" || turn.Role == "assistant") && turn.Content != "" {
			messages = append(messages, llm.Message{
				Role:    turn.Role,
				Content: turn.Content,
			})
		}
	}
	return messages
}

// Export serializes the transcript for session dumps.
func (t *Transcript) Export() ([]byte, error) {
	return json.MarshalIndent(t, "", "  ")
}

// transcriptID builds an ID like 20260831-142305-a1b2c3. The random
// suffix keeps transcripts distinct even when two sessions start
// within the same second.
func transcriptID() string {
	suffix := make([]byte, 3)
	if _, err := rand.Read(suffix); err != nil {
		return time.Now().Format("20060102-150405")
	}
	return time.Now().Format("20060102-150405") + "-" + hex.EncodeToString(suffix)
}
