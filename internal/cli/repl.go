package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hashpilot/hashpilot/internal/agent"
	"github.com/hashpilot/hashpilot/internal/config"
	"github.com/hashpilot/hashpilot/internal/history"
	"github.com/hashpilot/hashpilot/internal/llm"
	"github.com/hashpilot/hashpilot/internal/ui"
)

// chatMessage represents a message in the chat history
type chatMessage struct {
	role    string // "user", "assistant", "tool_call", "tool_result", "error", "system"
	tool    string
	content string
	time    time.Time
}

// model represents the REPL state
type model struct {
	agent    *agent.Agent
	network  string
	textarea textarea.Model
	viewport viewport.Model
	messages []chatMessage
	spinner  spinner.Model
	loading  bool
	width    int
	height   int
	ready    bool
	quitting bool
}

// responseMsg is sent when the agent responds
type responseMsg struct {
	events []agent.ChatEvent
	err    error
}

// initialModel creates the initial model state
func initialModel(ag *agent.Agent, network string) model {
	ta := textarea.New()
	ta.Placeholder = "Ask me to transfer, create a token, check a balance..."
	ta.Focus()
	ta.CharLimit = 500
	ta.SetWidth(80)
	ta.SetHeight(3)
	ta.ShowLineNumbers = false
	ta.Prompt = ui.SymbolPrompt + " "

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(ui.ColorPrimary)

	return model{
		agent:    ag,
		network:  network,
		textarea: ta,
		spinner:  sp,
		messages: []chatMessage{
			{
				role:    "system",
				content: fmt.Sprintf("Welcome to hashpilot (%s).\nType your requests below. Use /help for commands, /quit to exit.", network),
				time:    time.Now(),
			},
		},
	}
}

// Init initializes the model
func (m model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.spinner.Tick)
}

// Update handles messages and updates state
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
		spCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			m.quitting = true
			return m, tea.Quit

		case tea.KeyEnter:
			if m.loading {
				return m, nil
			}

			input := strings.TrimSpace(m.textarea.Value())
			if input == "" {
				return m, nil
			}

			if strings.HasPrefix(input, "/") {
				m.textarea.Reset()
				return m.handleCommand(input)
			}

			m.messages = append(m.messages, chatMessage{
				role:    "user",
				content: input,
				time:    time.Now(),
			})

			m.textarea.Reset()
			m.loading = true
			m.updateViewport()

			return m, m.sendToAgent(input)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-8)
			m.viewport.YPosition = 0
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 8
		}
		m.textarea.SetWidth(msg.Width - 4)
		m.updateViewport()

	case responseMsg:
		m.loading = false
		if msg.err != nil {
			m.messages = append(m.messages, chatMessage{
				role:    "error",
				content: msg.err.Error(),
				time:    time.Now(),
			})
		} else {
			for _, e := range msg.events {
				switch e.Type {
				case "tool_call":
					m.messages = append(m.messages, chatMessage{
						role: "tool_call", tool: e.Tool, content: e.Args, time: time.Now(),
					})
				case "tool_result":
					role := "tool_result"
					if e.IsError {
						role = "error"
					}
					m.messages = append(m.messages, chatMessage{
						role: role, tool: e.Tool, content: e.Content, time: time.Now(),
					})
				case "content":
					m.messages = append(m.messages, chatMessage{
						role: "assistant", content: e.Content, time: time.Now(),
					})
				}
			}
		}
		m.updateViewport()
		m.viewport.GotoBottom()

	case spinner.TickMsg:
		m.spinner, spCmd = m.spinner.Update(msg)
		return m, spCmd
	}

	m.textarea, tiCmd = m.textarea.Update(msg)
	m.viewport, vpCmd = m.viewport.Update(msg)

	return m, tea.Batch(tiCmd, vpCmd)
}

// View renders the UI
func (m model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	if !m.ready {
		return "Initializing...\n"
	}

	var b strings.Builder

	title := ui.TitleStyle.Render("  hashpilot - Hedera Agent")
	b.WriteString(title + "\n\n")

	b.WriteString(m.viewport.View())
	b.WriteString("\n")

	if m.loading {
		b.WriteString(fmt.Sprintf("\n  %s Working...\n\n", m.spinner.View()))
	} else {
		b.WriteString("\n")
	}

	b.WriteString(m.textarea.View())
	b.WriteString("\n")

	help := ui.HelpStyle.Render("  /help • /model • /provider • /clear • /quit • Ctrl+C to exit")
	b.WriteString(help)

	return b.String()
}

// updateViewport updates the viewport content with messages
func (m *model) updateViewport() {
	var content strings.Builder

	for _, msg := range m.messages {
		switch msg.role {
		case "user":
			content.WriteString(ui.UserStyle.Render("You: "))
			content.WriteString(msg.content)
		case "assistant":
			content.WriteString(ui.AssistantStyle.Render("hashpilot: "))
			content.WriteString(msg.content)
		case "tool_call":
			content.WriteString(ui.ToolCallStyle.Render(ui.SymbolBullet + " " + msg.tool))
			if msg.content != "" && msg.content != "{}" {
				content.WriteString(ui.ToolResultStyle.Render(" " + msg.content))
			}
		case "tool_result":
			content.WriteString(ui.ToolResultStyle.Render(ui.SymbolTree + " " + msg.content))
		case "error":
			content.WriteString(ui.ErrorStyle.Render("Error: "))
			content.WriteString(msg.content)
		case "system":
			content.WriteString(ui.SystemStyle.Render(msg.content))
		}
		content.WriteString("\n\n")
	}

	m.viewport.SetContent(content.String())
}

// handleCommand handles slash commands
func (m model) handleCommand(input string) (tea.Model, tea.Cmd) {
	input = strings.TrimSpace(input)
	parts := strings.SplitN(input, " ", 2)
	cmd := strings.ToLower(parts[0])
	arg := ""
	if len(parts) > 1 {
		arg = strings.TrimSpace(parts[1])
	}

	switch cmd {
	case "/quit", "/exit", "/q":
		m.quitting = true
		return m, tea.Quit

	case "/clear":
		m.messages = []chatMessage{
			{
				role:    "system",
				content: "Chat cleared. How can I help you?",
				time:    time.Now(),
			},
		}
		if m.agent != nil {
			m.agent.Reset()
		}
		m.updateViewport()
		return m, nil

	case "/model":
		return m.handleModelCommand(arg)

	case "/provider":
		return m.handleProviderCommand(arg)

	case "/help", "/?":
		helpText := `Available commands:
  /help, /?       - Show this help
  /model          - List available models
  /model <id>     - Switch to a different model
  /provider       - List configured LLM providers
  /provider <id>  - Switch to a different provider
  /clear          - Clear chat history
  /quit, /exit    - Exit hashpilot

Example requests:
  "Send 5 HBAR to 0.0.2002"
  "Create a token called Demo with symbol DMO and 1000 supply"
  "What's my balance?"
  "Create a topic for deployment logs"`

		m.messages = append(m.messages, chatMessage{
			role:    "system",
			content: helpText,
			time:    time.Now(),
		})
		m.updateViewport()
		return m, nil

	default:
		m.messages = append(m.messages, chatMessage{
			role:    "error",
			content: fmt.Sprintf("Unknown command: %s. Type /help for available commands.", cmd),
			time:    time.Now(),
		})
		m.updateViewport()
		return m, nil
	}
}

// handleModelCommand lists models or switches to a new one
func (m model) handleModelCommand(modelID string) (tea.Model, tea.Cmd) {
	if m.agent == nil {
		m.messages = append(m.messages, chatMessage{
			role:    "error",
			content: "Agent not initialized.",
			time:    time.Now(),
		})
		m.updateViewport()
		return m, nil
	}

	// No argument: list available models
	if modelID == "" {
		current := m.agent.CurrentModel()
		models := m.agent.ListModels()
		provider := m.agent.ProviderName()

		var b strings.Builder
		b.WriteString(fmt.Sprintf("Models for %s:\n", provider))
		for _, md := range models {
			marker := "  "
			if md.ID == current {
				marker = ui.SymbolArrow + " "
			}
			b.WriteString(fmt.Sprintf("  %s%-30s %s\n", marker, md.ID, md.Name))
		}
		b.WriteString(fmt.Sprintf("\nActive: %s", current))
		b.WriteString("\nUsage: /model <id>")

		m.messages = append(m.messages, chatMessage{
			role:    "system",
			content: b.String(),
			time:    time.Now(),
		})
		m.updateViewport()
		return m, nil
	}

	if err := m.agent.SetModel(modelID); err != nil {
		m.messages = append(m.messages, chatMessage{
			role:    "error",
			content: fmt.Sprintf("Failed to switch model: %v", err),
			time:    time.Now(),
		})
		m.updateViewport()
		return m, nil
	}

	m.messages = append(m.messages, chatMessage{
		role:    "system",
		content: fmt.Sprintf("Switched to %s. Conversation history cleared.", modelID),
		time:    time.Now(),
	})
	m.updateViewport()
	return m, nil
}

// handleProviderCommand lists configured providers or switches to one
func (m model) handleProviderCommand(providerID string) (tea.Model, tea.Cmd) {
	if m.agent == nil {
		m.messages = append(m.messages, chatMessage{
			role:    "error",
			content: "Agent not initialized.",
			time:    time.Now(),
		})
		m.updateViewport()
		return m, nil
	}

	if providerID == "" {
		var b strings.Builder
		b.WriteString("Configured providers:\n")
		for _, info := range m.agent.ListProviders() {
			marker := "  "
			if info.IsDefault {
				marker = ui.SymbolArrow + " "
			}
			b.WriteString(fmt.Sprintf("  %s%-12s %s\n", marker, info.ID, info.Name))
		}
		b.WriteString("\nUsage: /provider <id>")

		m.messages = append(m.messages, chatMessage{
			role:    "system",
			content: b.String(),
			time:    time.Now(),
		})
		m.updateViewport()
		return m, nil
	}

	if err := m.agent.SetProvider(llm.ProviderID(providerID)); err != nil {
		m.messages = append(m.messages, chatMessage{
			role:    "error",
			content: fmt.Sprintf("Failed to switch provider: %v", err),
			time:    time.Now(),
		})
		m.updateViewport()
		return m, nil
	}

	m.messages = append(m.messages, chatMessage{
		role:    "system",
		content: fmt.Sprintf("Switched to %s (%s). Conversation history cleared.", providerID, m.agent.CurrentModel()),
		time:    time.Now(),
	})
	m.updateViewport()
	return m, nil
}

// sendToAgent sends a message to the agent and returns a command
func (m model) sendToAgent(input string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
		defer cancel()

		events, err := m.agent.ChatWithEvents(ctx, input)
		return responseMsg{
			events: events,
			err:    err,
		}
	}
}

// RunREPL starts the interactive agent over the loaded configuration.
func RunREPL(cfg *config.Config) error {
	sess, err := newSession(cfg)
	if err != nil {
		return err
	}
	defer sess.Close()

	providerID := llm.ProviderID(cfg.LLMProvider)
	if providerID == "" {
		providerID = llm.ProviderAnthropic
	}
	ctx := context.Background()
	providers, err := agent.BuildProviderRegistry(ctx, providerID)
	if err != nil {
		return err
	}
	provider, err := providers.GetDefault()
	if err != nil {
		return err
	}

	dataDir, err := config.DataDir()
	if err != nil {
		return err
	}
	hist, err := history.Open(dataDir)
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer hist.Close()

	ag, err := agent.New(provider, sess.registry, sess.cctx, agent.Options{
		History:   hist,
		DataDir:   dataDir,
		Providers: providers,
	})
	if err != nil {
		return fmt.Errorf("failed to create agent: %w", err)
	}
	defer ag.Close()

	p := tea.NewProgram(
		initialModel(ag, sess.cctx.Network),
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
