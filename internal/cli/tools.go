package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hashpilot/hashpilot/internal/config"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the operations the agent can perform",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		sess, err := newSession(cfg)
		if err != nil {
			return err
		}
		defer sess.Close()

		for _, tool := range sess.registry.All() {
			fmt.Printf("%-45s %s\n", tool.Method, tool.Description)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(toolsCmd)
}
