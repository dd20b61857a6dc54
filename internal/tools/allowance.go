package tools

import (
	"context"
	"encoding/json"

	"github.com/hashpilot/hashpilot/internal/build"
	"github.com/hashpilot/hashpilot/internal/params"
	"github.com/hashpilot/hashpilot/internal/toolkit"
)

func approveHbarAllowanceTool(d Deps) *toolkit.Tool {
	return &toolkit.Tool{
		Method: "approve_hbar_allowance",
		Name:   "Approve HBAR Allowance",
		Description: `Approves an HBAR spending allowance for another account. The owner
defaults to the connected operator account. An amount of 0 revokes a
previously granted allowance.`,
		Schema:     params.ApproveHbarAllowanceSchema,
		SchemaJSON: json.RawMessage(params.ApproveHbarAllowanceSchemaJSON),
		Execute: func(ctx context.Context, raw json.RawMessage) toolkit.ToolResponse {
			const op = "approve hbar allowance"
			var p params.ApproveHbarAllowance
			if err := toolkit.Unmarshal(raw, &p); err != nil {
				return toolkit.Failure(op, err)
			}
			norm, err := d.Normaliser.ApproveHbarAllowance(ctx, p)
			if err != nil {
				return toolkit.Failure(op, err)
			}
			built, err := build.ApproveHbarAllowance(norm)
			if err != nil {
				return toolkit.Failure(op, err)
			}
			result, err := d.Executor.Execute(ctx, built)
			if err != nil {
				return toolkit.Failure(op, err)
			}
			return report(result, "HBAR allowance approved successfully.")
		},
	}
}

func approveTokenAllowanceTool(d Deps) *toolkit.Tool {
	return &toolkit.Tool{
		Method: "approve_token_allowance",
		Name:   "Approve Token Allowance",
		Description: `Approves a fungible-token spending allowance for another account.
Amounts are in display units; decimals come from the mirror node. The
owner defaults to the connected operator account and 0 revokes.`,
		Schema:     params.ApproveTokenAllowanceSchema,
		SchemaJSON: json.RawMessage(params.ApproveTokenAllowanceSchemaJSON),
		Execute: func(ctx context.Context, raw json.RawMessage) toolkit.ToolResponse {
			const op = "approve token allowance"
			var p params.ApproveTokenAllowance
			if err := toolkit.Unmarshal(raw, &p); err != nil {
				return toolkit.Failure(op, err)
			}
			norm, err := d.Normaliser.ApproveTokenAllowance(ctx, p)
			if err != nil {
				return toolkit.Failure(op, err)
			}
			built, err := build.ApproveTokenAllowance(norm)
			if err != nil {
				return toolkit.Failure(op, err)
			}
			result, err := d.Executor.Execute(ctx, built)
			if err != nil {
				return toolkit.Failure(op, err)
			}
			return report(result, "Token allowance approved successfully.")
		},
	}
}

func approveNFTAllowanceTool(d Deps) *toolkit.Tool {
	return &toolkit.Tool{
		Method: "approve_nft_allowance",
		Name:   "Approve NFT Allowance",
		Description: `Approves an NFT transfer allowance for another account, either for
specific serial numbers or for every serial via all_serials. The owner
defaults to the connected operator account.`,
		Schema:     params.ApproveNFTAllowanceSchema,
		SchemaJSON: json.RawMessage(params.ApproveNFTAllowanceSchemaJSON),
		Execute: func(ctx context.Context, raw json.RawMessage) toolkit.ToolResponse {
			const op = "approve nft allowance"
			var p params.ApproveNFTAllowance
			if err := toolkit.Unmarshal(raw, &p); err != nil {
				return toolkit.Failure(op, err)
			}
			norm, err := d.Normaliser.ApproveNFTAllowance(ctx, p)
			if err != nil {
				return toolkit.Failure(op, err)
			}
			built, err := build.ApproveNFTAllowance(norm)
			if err != nil {
				return toolkit.Failure(op, err)
			}
			result, err := d.Executor.Execute(ctx, built)
			if err != nil {
				return toolkit.Failure(op, err)
			}
			return report(result, "NFT allowance approved successfully.")
		},
	}
}
