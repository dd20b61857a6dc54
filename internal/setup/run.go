package setup

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/hashpilot/hashpilot/internal/config"
)

// Run walks the user through operator credentials and saves them to
// the config file. It returns the updated configuration, or nil if the
// user cancelled by submitting an empty account ID.
func Run(cfg *config.Config) (*config.Config, error) {
	in := bufio.NewReader(os.Stdin)

	fmt.Println("Welcome to hashpilot. Let's set up your operator account.")
	fmt.Println("You can create a free testnet account at https://portal.hedera.com")
	fmt.Println()

	network, err := promptNetwork(in, cfg.Network)
	if err != nil {
		return nil, err
	}

	accountID, err := promptAccountID(in)
	if err != nil {
		return nil, err
	}
	if accountID == "" {
		fmt.Println("Setup cancelled.")
		return nil, nil
	}

	key, err := promptOperatorKey()
	if err != nil {
		return nil, err
	}

	cfg.Network = network
	cfg.OperatorAccountID = accountID
	cfg.OperatorKey = key

	path, err := save(cfg)
	if err != nil {
		return nil, err
	}

	fmt.Printf("Configuration saved to %s\n\n", path)
	return cfg, nil
}

func promptNetwork(in *bufio.Reader, current string) (string, error) {
	if current == "" {
		current = "testnet"
	}
	for {
		fmt.Printf("Network [mainnet/testnet/previewnet] (%s): ", current)
		line, err := in.ReadString('\n')
		if err != nil {
			return "", err
		}
		answer := strings.ToLower(strings.TrimSpace(line))
		if answer == "" {
			return current, nil
		}
		switch answer {
		case "mainnet", "testnet", "previewnet":
			return answer, nil
		}
		fmt.Println("Please enter mainnet, testnet, or previewnet.")
	}
}

func promptAccountID(in *bufio.Reader) (string, error) {
	for {
		fmt.Print("Operator account ID (e.g. 0.0.1234, empty to cancel): ")
		line, err := in.ReadString('\n')
		if err != nil {
			return "", err
		}
		answer := strings.TrimSpace(line)
		if answer == "" {
			return "", nil
		}
		if _, err := hedera.AccountIDFromString(answer); err != nil {
			fmt.Printf("Invalid account ID: %v\n", err)
			continue
		}
		return answer, nil
	}
}

func promptOperatorKey() (string, error) {
	for {
		fmt.Print("Operator private key (input hidden): ")
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			return "", fmt.Errorf("read key: %w", err)
		}
		answer := strings.TrimSpace(string(raw))
		if answer == "" {
			fmt.Println("A private key is required.")
			continue
		}
		if _, err := hedera.PrivateKeyFromString(answer); err != nil {
			fmt.Printf("Invalid private key: %v\n", err)
			continue
		}
		return answer, nil
	}
}

// save writes the configuration to the data directory and tightens the
// file permissions since it contains the operator key.
func save(cfg *config.Config) (string, error) {
	dir, err := config.DataDir()
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, "config.yaml")

	v := viper.New()
	v.Set("network", cfg.Network)
	v.Set("operator_account_id", cfg.OperatorAccountID)
	v.Set("operator_key", cfg.OperatorKey)
	if cfg.MirrorBaseURL != "" {
		v.Set("mirror_base_url", cfg.MirrorBaseURL)
	}
	if cfg.ERC20FactoryID != "" {
		v.Set("erc20_factory_id", cfg.ERC20FactoryID)
	}
	if cfg.LLMProvider != "" {
		v.Set("llm_provider", cfg.LLMProvider)
	}
	if cfg.AgentMode != "" {
		v.Set("agent_mode", cfg.AgentMode)
	}

	if err := v.WriteConfigAs(path); err != nil {
		return "", fmt.Errorf("write config: %w", err)
	}
	if err := os.Chmod(path, 0600); err != nil {
		return "", fmt.Errorf("chmod config: %w", err)
	}
	return path, nil
}
