// Package tools defines the callable tool set: one tool per ledger
// operation, each wiring parameter decoding, normalisation, transaction
// construction, execution, and the human-readable result message.
package tools

import (
	"fmt"
	"strings"

	"github.com/hashpilot/hashpilot/internal/mirror"
	"github.com/hashpilot/hashpilot/internal/normalise"
	"github.com/hashpilot/hashpilot/internal/toolkit"
)

// Deps carries the shared collaborators every tool closure captures.
type Deps struct {
	Normaliser *normalise.Normaliser
	Executor   toolkit.Executor
	Mirror     mirror.Service
}

// All returns the full tool set in its stable presentation order:
// transfers, allowances, accounts, topics, tokens, contract deployment,
// queries.
func All(d Deps) []*toolkit.Tool {
	return []*toolkit.Tool{
		transferHbarTool(d),
		transferHbarWithAllowanceTool(d),
		transferTokenWithAllowanceTool(d),
		transferNFTWithAllowanceTool(d),
		approveHbarAllowanceTool(d),
		approveTokenAllowanceTool(d),
		approveNFTAllowanceTool(d),
		createAccountTool(d),
		updateAccountTool(d),
		deleteAccountTool(d),
		createTopicTool(d),
		updateTopicTool(d),
		deleteTopicTool(d),
		submitTopicMessageTool(d),
		associateTokenTool(d),
		dissociateTokenTool(d),
		createFungibleTokenTool(d),
		mintFungibleTokenTool(d),
		updateTokenTool(d),
		deleteTokenTool(d),
		createERC20Tool(d),
		getTokenInfoTool(d),
		getTopicInfoTool(d),
		getExchangeRateTool(d),
		getTransactionRecordTool(d),
		getAccountBalanceTool(d),
	}
}

// NewRegistry builds the dispatch registry over the full tool set.
func NewRegistry(d Deps) (*toolkit.Registry, error) {
	return toolkit.NewRegistry(All(d)...)
}

// report formats the success message for an executed mutation. Scheduled
// operations get the schedule wording regardless of what they wrap; in
// return-bytes mode nothing was submitted and the bytes travel in Raw.
func report(result *toolkit.ExecutedResult, headline string, entityLines ...string) toolkit.ToolResponse {
	if result.Bytes != "" {
		return toolkit.ToolResponse{
			HumanMessage: "Transaction bytes generated successfully. Sign and submit them to the network to complete the operation.",
			Raw:          result,
		}
	}

	var b strings.Builder
	if result.Scheduled() {
		b.WriteString("Scheduled transaction created successfully.")
		fmt.Fprintf(&b, "\nTransaction ID: %s", result.TransactionID)
		fmt.Fprintf(&b, "\nSchedule ID: %s", result.ScheduleID)
	} else {
		b.WriteString(headline)
		fmt.Fprintf(&b, "\nTransaction ID: %s", result.TransactionID)
		for _, line := range entityLines {
			b.WriteString("\n")
			b.WriteString(line)
		}
	}
	return toolkit.ToolResponse{HumanMessage: b.String(), Raw: result}
}
