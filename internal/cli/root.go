// Package cli wires the cobra command tree: the default command starts
// the interactive agent, subcommands expose tools, history, and direct
// mirror queries without an LLM in the loop.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hashpilot/hashpilot/internal/config"
	"github.com/hashpilot/hashpilot/internal/setup"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "hashpilot",
		Short: "Conversational agent for the Hedera network",
		Long: `hashpilot is a terminal agent for Hedera.

It turns natural-language requests into ledger transactions: transfers,
account and topic management, token creation and minting, ERC20
deployment, and mirror node queries. Mutating operations run with the
configured operator account, or return unsigned transaction bytes in
return-bytes mode.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			if !cfg.HasOperator() {
				if !setup.IsInteractive() {
					setup.PrintEnvInstructions()
					return fmt.Errorf("setup required: run hashpilot interactively or set environment variables")
				}
				updated, err := setup.Run(cfg)
				if err != nil {
					return fmt.Errorf("setup failed: %w", err)
				}
				if updated == nil {
					return nil
				}
				cfg = updated
			}

			return RunREPL(cfg)
		},
	}
)

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.hashpilot/config.yaml)")
	rootCmd.PersistentFlags().String("network", "", "Hedera network (mainnet, testnet, previewnet)")
	_ = viper.BindPFlag("network", rootCmd.PersistentFlags().Lookup("network"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		configDir := filepath.Join(home, config.DefaultDirName)
		if err := os.MkdirAll(configDir, 0700); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not create config directory: %v\n", err)
		}

		viper.AddConfigPath(configDir)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.AutomaticEnv()

	// Silently ignore missing config file - it's optional
	_ = viper.ReadInConfig()
}
