package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hashpilot/hashpilot/internal/config"
	"github.com/hashpilot/hashpilot/internal/history"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent transactions executed by the agent",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		dataDir, err := config.DataDir()
		if err != nil {
			return err
		}
		store, err := history.Open(dataDir)
		if err != nil {
			return fmt.Errorf("open history: %w", err)
		}
		defer store.Close()

		entries, err := store.Recent(cfg.Network, historyLimit)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Printf("No transactions recorded on %s yet.\n", cfg.Network)
			return nil
		}

		for _, e := range entries {
			line := fmt.Sprintf("%s  %-35s %-12s %s",
				e.CreatedAt.Format("2006-01-02 15:04:05"), e.Method, e.Status, e.TransactionID)
			if e.EntityID != "" {
				line += "  " + e.EntityID
			}
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum number of entries to show")
	rootCmd.AddCommand(historyCmd)
}
