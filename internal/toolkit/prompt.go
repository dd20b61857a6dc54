package toolkit

import (
	"fmt"
	"strings"

	"github.com/hashpilot/hashpilot/internal/config"
)

const schedulingGuidance = `Some tools accept an optional "scheduling_params" object. When the user asks
for a transaction to be scheduled rather than executed immediately, set
"is_scheduled" to true inside that object. A scheduled transaction is wrapped
in a schedule entity and executes once the required signatures are collected.
The payer of the inner transaction is never assumed: only set
"payer_account_id" when the user names one explicitly.`

// SystemPrompt assembles the instruction preamble handed to the model:
// operating context first, then per-mode guidance, then scheduling rules.
func SystemPrompt(cctx config.Context) string {
	var b strings.Builder

	b.WriteString("You are an assistant that operates on the Hedera network by calling tools.\n\n")

	if cctx.AccountID != "" {
		fmt.Fprintf(&b, "The connected operator account is %s on %s. When a tool parameter names an account and the user does not specify one, omit the parameter so it defaults to the operator account.\n\n", cctx.AccountID, cctx.Network)
	} else {
		fmt.Fprintf(&b, "No operator account is configured; the network is %s. Account parameters cannot be defaulted, so always ask the user for explicit account ids.\n\n", cctx.Network)
	}

	switch cctx.Mode {
	case config.ModeReturnBytes:
		b.WriteString("Transactions are not submitted directly. Each mutating tool returns the serialized transaction bytes for the user to sign and submit out of band. Make that clear when reporting results.\n\n")
	default:
		b.WriteString("Transactions are signed with the operator key and submitted immediately. Report the transaction id and any created entity id back to the user.\n\n")
	}

	b.WriteString(schedulingGuidance)
	return b.String()
}
