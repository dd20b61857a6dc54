package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hashpilot/hashpilot/internal/config"
	"github.com/hashpilot/hashpilot/internal/mirror"
)

var balanceCmd = &cobra.Command{
	Use:   "balance [account-id]",
	Short: "Show an account's HBAR and token balances from the mirror node",
	Long: `Queries the mirror node directly, without the LLM in the loop.
Defaults to the configured operator account when no account is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		accountID := cfg.OperatorAccountID
		if len(args) == 1 {
			accountID = args[0]
		}
		if accountID == "" {
			return fmt.Errorf("no account given and no operator configured")
		}

		cctx := config.ContextFor(cfg)
		client, err := mirror.NewClient(cctx.Network, cctx.MirrorBaseURL)
		if err != nil {
			return err
		}

		balance, err := client.GetAccountBalance(cmd.Context(), accountID)
		if err != nil {
			return err
		}

		fmt.Printf("Account %s on %s\n", balance.Account, cctx.Network)
		fmt.Printf("  HBAR: %.8f\n", float64(balance.Balance)/100_000_000)
		for _, token := range balance.Tokens {
			fmt.Printf("  %s: %d (base units)\n", token.TokenID, token.Balance)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(balanceCmd)
}
