package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// DefaultDirName is the directory under $HOME holding config and local state.
const DefaultDirName = ".hashpilot"

// Config is the application configuration loaded from
// $HOME/.hashpilot/config.yaml with environment-variable overrides.
type Config struct {
	Network           string `mapstructure:"network"`
	OperatorAccountID string `mapstructure:"operator_account_id"`
	OperatorKey       string `mapstructure:"operator_key"`
	MirrorBaseURL     string `mapstructure:"mirror_base_url"`
	ERC20FactoryID    string `mapstructure:"erc20_factory_id"`
	LLMProvider       string `mapstructure:"llm_provider"`
	AgentMode         string `mapstructure:"agent_mode"`
}

// DataDir returns the hashpilot data directory, creating it if needed.
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	dir := filepath.Join(home, DefaultDirName)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("failed to create data directory: %w", err)
	}
	return dir, nil
}

// Load reads the configuration from viper's active sources. Missing values
// fall back to HEDERA_* environment variables so the CLI works without a
// config file.
func Load() (*Config, error) {
	cfg := &Config{
		Network:   "testnet",
		AgentMode: string(ModeAutonomous),
	}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.OperatorAccountID == "" {
		cfg.OperatorAccountID = os.Getenv("HEDERA_OPERATOR_ID")
	}
	if cfg.OperatorKey == "" {
		cfg.OperatorKey = os.Getenv("HEDERA_OPERATOR_KEY")
	}
	if v := os.Getenv("HEDERA_NETWORK"); v != "" {
		cfg.Network = v
	}

	switch cfg.Network {
	case "mainnet", "testnet", "previewnet":
	default:
		return nil, fmt.Errorf("unknown network: %s", cfg.Network)
	}

	return cfg, nil
}

// HasOperator reports whether operator credentials are configured.
func (c *Config) HasOperator() bool {
	return c.OperatorAccountID != "" && c.OperatorKey != ""
}
