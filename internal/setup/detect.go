// Package setup handles first-run configuration: detecting whether a
// terminal is attached and walking the user through operator credentials
// when no configuration exists yet.
package setup

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/hashpilot/hashpilot/internal/llm"
)

// IsInteractive reports whether both stdin and stdout are attached to a
// terminal. Setup prompts are only shown in interactive sessions.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// PrintEnvInstructions prints the environment variables needed to run
// without a config file, for non-interactive environments like CI.
func PrintEnvInstructions() {
	fmt.Fprintln(os.Stderr, "No operator account configured. Set the following environment variables:")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "  HEDERA_OPERATOR_ID    operator account (e.g. 0.0.1234)")
	fmt.Fprintln(os.Stderr, "  HEDERA_OPERATOR_KEY   operator private key (DER or hex)")
	fmt.Fprintln(os.Stderr, "  HEDERA_NETWORK        mainnet, testnet, or previewnet (default testnet)")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "And an API key for your LLM provider:")
	for _, id := range llm.AllProviderIDs() {
		fmt.Fprintf(os.Stderr, "  %-21s %s\n", llm.EnvVarForProvider(id), id)
	}
}
