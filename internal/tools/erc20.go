package tools

import (
	"context"
	"encoding/json"

	"github.com/hashpilot/hashpilot/internal/build"
	"github.com/hashpilot/hashpilot/internal/params"
	"github.com/hashpilot/hashpilot/internal/toolkit"
)

func createERC20Tool(d Deps) *toolkit.Tool {
	return &toolkit.Tool{
		Method: "create_erc20",
		Name:   "Create ERC20 Token",
		Description: `Deploys an ERC20 token through the network's factory contract. Decimals
default to 18; initial_supply is in display units and is scaled by
decimals on chain.`,
		Schema:     params.CreateERC20Schema,
		SchemaJSON: json.RawMessage(params.CreateERC20SchemaJSON),
		Execute: func(ctx context.Context, raw json.RawMessage) toolkit.ToolResponse {
			const op = "create erc20 token"
			var p params.CreateERC20
			if err := toolkit.Unmarshal(raw, &p); err != nil {
				return toolkit.Failure(op, err)
			}
			norm, err := d.Normaliser.CreateERC20(ctx, p)
			if err != nil {
				return toolkit.Failure(op, err)
			}
			built, err := build.ExecuteContract(norm)
			if err != nil {
				return toolkit.Failure(op, err)
			}
			result, err := d.Executor.Execute(ctx, built)
			if err != nil {
				return toolkit.Failure(op, err)
			}
			return report(result, "ERC20 token created successfully.")
		},
	}
}
