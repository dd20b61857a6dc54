package tools

import (
	"context"
	"encoding/json"

	"github.com/hashpilot/hashpilot/internal/build"
	"github.com/hashpilot/hashpilot/internal/params"
	"github.com/hashpilot/hashpilot/internal/toolkit"
)

func transferHbarTool(d Deps) *toolkit.Tool {
	return &toolkit.Tool{
		Method: "transfer_hbar",
		Name:   "Transfer HBAR",
		Description: `Transfers HBAR from one account to one or more recipients. Amounts are in
HBAR (display units). When source_account_id is omitted the connected
operator account pays. Supports optional scheduling via scheduling_params.`,
		Schema:     params.TransferHbarSchema,
		SchemaJSON: json.RawMessage(params.TransferHbarSchemaJSON),
		Execute: func(ctx context.Context, raw json.RawMessage) toolkit.ToolResponse {
			const op = "transfer hbar"
			var p params.TransferHbar
			if err := toolkit.Unmarshal(raw, &p); err != nil {
				return toolkit.Failure(op, err)
			}
			norm, err := d.Normaliser.TransferHbar(ctx, p)
			if err != nil {
				return toolkit.Failure(op, err)
			}
			built, err := build.TransferHbar(norm)
			if err != nil {
				return toolkit.Failure(op, err)
			}
			result, err := d.Executor.Execute(ctx, built)
			if err != nil {
				return toolkit.Failure(op, err)
			}
			return report(result, "HBAR transferred successfully.")
		},
	}
}

func transferHbarWithAllowanceTool(d Deps) *toolkit.Tool {
	return &toolkit.Tool{
		Method: "transfer_hbar_with_allowance",
		Name:   "Transfer HBAR With Allowance",
		Description: `Transfers HBAR spending a previously approved allowance. The allowance
owner must be named explicitly in source_account_id; the operator account
acts as the approved spender.`,
		Schema:     params.TransferHbarWithAllowanceSchema,
		SchemaJSON: json.RawMessage(params.TransferHbarWithAllowanceSchemaJSON),
		Execute: func(ctx context.Context, raw json.RawMessage) toolkit.ToolResponse {
			const op = "transfer hbar with allowance"
			var p params.TransferHbarWithAllowance
			if err := toolkit.Unmarshal(raw, &p); err != nil {
				return toolkit.Failure(op, err)
			}
			norm, err := d.Normaliser.TransferHbarWithAllowance(ctx, p)
			if err != nil {
				return toolkit.Failure(op, err)
			}
			built, err := build.TransferHbar(norm)
			if err != nil {
				return toolkit.Failure(op, err)
			}
			result, err := d.Executor.Execute(ctx, built)
			if err != nil {
				return toolkit.Failure(op, err)
			}
			return report(result, "HBAR transferred successfully using allowance.")
		},
	}
}

func transferTokenWithAllowanceTool(d Deps) *toolkit.Tool {
	return &toolkit.Tool{
		Method: "transfer_fungible_token_with_allowance",
		Name:   "Transfer Fungible Token With Allowance",
		Description: `Transfers fungible tokens spending a previously approved allowance.
Amounts are in display units; the token's decimals are read from the
mirror node. The allowance owner must be named in source_account_id.`,
		Schema:     params.TransferTokenWithAllowanceSchema,
		SchemaJSON: json.RawMessage(params.TransferTokenWithAllowanceSchemaJSON),
		Execute: func(ctx context.Context, raw json.RawMessage) toolkit.ToolResponse {
			const op = "transfer fungible token with allowance"
			var p params.TransferTokenWithAllowance
			if err := toolkit.Unmarshal(raw, &p); err != nil {
				return toolkit.Failure(op, err)
			}
			norm, err := d.Normaliser.TransferTokenWithAllowance(ctx, p)
			if err != nil {
				return toolkit.Failure(op, err)
			}
			built, err := build.TransferToken(norm)
			if err != nil {
				return toolkit.Failure(op, err)
			}
			result, err := d.Executor.Execute(ctx, built)
			if err != nil {
				return toolkit.Failure(op, err)
			}
			return report(result, "Fungible tokens transferred successfully using allowance.")
		},
	}
}

func transferNFTWithAllowanceTool(d Deps) *toolkit.Tool {
	return &toolkit.Tool{
		Method: "transfer_non_fungible_token_with_allowance",
		Name:   "Transfer NFT With Allowance",
		Description: `Transfers a single NFT serial spending a previously approved allowance.
The allowance owner must be named in source_account_id.`,
		Schema:     params.TransferNFTWithAllowanceSchema,
		SchemaJSON: json.RawMessage(params.TransferNFTWithAllowanceSchemaJSON),
		Execute: func(ctx context.Context, raw json.RawMessage) toolkit.ToolResponse {
			const op = "transfer nft with allowance"
			var p params.TransferNFTWithAllowance
			if err := toolkit.Unmarshal(raw, &p); err != nil {
				return toolkit.Failure(op, err)
			}
			norm, err := d.Normaliser.TransferNFTWithAllowance(ctx, p)
			if err != nil {
				return toolkit.Failure(op, err)
			}
			built, err := build.TransferNFT(norm)
			if err != nil {
				return toolkit.Failure(op, err)
			}
			result, err := d.Executor.Execute(ctx, built)
			if err != nil {
				return toolkit.Failure(op, err)
			}
			return report(result, "NFT transferred successfully using allowance.")
		},
	}
}
