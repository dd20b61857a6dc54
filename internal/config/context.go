package config

// AgentMode controls how built transactions leave the toolkit.
type AgentMode string

const (
	// ModeAutonomous executes transactions directly with the operator client.
	ModeAutonomous AgentMode = "autonomous"
	// ModeReturnBytes serializes transactions for out-of-band signing
	// instead of executing them.
	ModeReturnBytes AgentMode = "return_bytes"
)

// Context is the read-only per-invocation context handed to every tool.
// AccountID, when set, is the user's account and the default for any
// account parameter the caller leaves out.
type Context struct {
	Mode      AgentMode
	AccountID string
	Network   string
	// MirrorBaseURL overrides the network-derived mirror node endpoint.
	// Used by tests and private mirror deployments.
	MirrorBaseURL string
	// ERC20FactoryID overrides the built-in BaseERC20Factory contract id.
	ERC20FactoryID string
}

// ContextFor derives the tool context from the loaded configuration.
func ContextFor(cfg *Config) Context {
	mode := AgentMode(cfg.AgentMode)
	if mode != ModeReturnBytes {
		mode = ModeAutonomous
	}
	return Context{
		Mode:           mode,
		AccountID:      cfg.OperatorAccountID,
		Network:        cfg.Network,
		MirrorBaseURL:  cfg.MirrorBaseURL,
		ERC20FactoryID: cfg.ERC20FactoryID,
	}
}
