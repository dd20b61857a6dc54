package tools

import (
	"context"
	"encoding/json"

	"github.com/hashpilot/hashpilot/internal/build"
	"github.com/hashpilot/hashpilot/internal/params"
	"github.com/hashpilot/hashpilot/internal/toolkit"
)

func createFungibleTokenTool(d Deps) *toolkit.Tool {
	return &toolkit.Tool{
		Method: "create_fungible_token",
		Name:   "Create Fungible Token",
		Description: `Creates a fungible token. initial_supply and max_supply are in display
units and are scaled by decimals. Supplying max_supply implies a finite
supply type. A supply key defaults to the treasury's key when the supply
is finite or is_supply_key is set. The treasury defaults to the operator
account.`,
		Schema:     params.CreateFungibleTokenSchema,
		SchemaJSON: json.RawMessage(params.CreateFungibleTokenSchemaJSON),
		Execute: func(ctx context.Context, raw json.RawMessage) toolkit.ToolResponse {
			const op = "create fungible token"
			var p params.CreateFungibleToken
			if err := toolkit.Unmarshal(raw, &p); err != nil {
				return toolkit.Failure(op, err)
			}
			norm, err := d.Normaliser.CreateFungibleToken(ctx, p)
			if err != nil {
				return toolkit.Failure(op, err)
			}
			built, err := build.CreateFungibleToken(norm)
			if err != nil {
				return toolkit.Failure(op, err)
			}
			result, err := d.Executor.Execute(ctx, built)
			if err != nil {
				return toolkit.Failure(op, err)
			}
			return report(result, "Token created successfully.", "Token ID: "+result.TokenID)
		},
	}
}

func mintFungibleTokenTool(d Deps) *toolkit.Tool {
	return &toolkit.Tool{
		Method: "mint_fungible_token",
		Name:   "Mint Fungible Token",
		Description: `Mints additional supply of a fungible token to its treasury. The amount
is in display units; the token's decimals are read from the mirror node.
Requires the token's supply key.`,
		Schema:     params.MintFungibleTokenSchema,
		SchemaJSON: json.RawMessage(params.MintFungibleTokenSchemaJSON),
		Execute: func(ctx context.Context, raw json.RawMessage) toolkit.ToolResponse {
			const op = "mint fungible token"
			var p params.MintFungibleToken
			if err := toolkit.Unmarshal(raw, &p); err != nil {
				return toolkit.Failure(op, err)
			}
			norm, err := d.Normaliser.MintFungibleToken(ctx, p)
			if err != nil {
				return toolkit.Failure(op, err)
			}
			built, err := build.MintFungibleToken(norm)
			if err != nil {
				return toolkit.Failure(op, err)
			}
			result, err := d.Executor.Execute(ctx, built)
			if err != nil {
				return toolkit.Failure(op, err)
			}
			return report(result, "Tokens minted successfully.")
		},
	}
}

func updateTokenTool(d Deps) *toolkit.Tool {
	return &toolkit.Tool{
		Method: "update_token",
		Name:   "Update Token",
		Description: `Updates mutable properties of a token: name, symbol, memo, treasury, and
the admin, supply, wipe, freeze, and metadata keys. Key fields accept a
key string or true for the operator key. Requires the token's admin key.`,
		Schema:     params.UpdateTokenSchema,
		SchemaJSON: json.RawMessage(params.UpdateTokenSchemaJSON),
		Execute: func(ctx context.Context, raw json.RawMessage) toolkit.ToolResponse {
			const op = "update token"
			var p params.UpdateToken
			if err := toolkit.Unmarshal(raw, &p); err != nil {
				return toolkit.Failure(op, err)
			}
			norm, err := d.Normaliser.UpdateToken(ctx, p)
			if err != nil {
				return toolkit.Failure(op, err)
			}
			built, err := build.UpdateToken(norm)
			if err != nil {
				return toolkit.Failure(op, err)
			}
			result, err := d.Executor.Execute(ctx, built)
			if err != nil {
				return toolkit.Failure(op, err)
			}
			return report(result, "Token updated successfully.")
		},
	}
}

func deleteTokenTool(d Deps) *toolkit.Tool {
	return &toolkit.Tool{
		Method: "delete_token",
		Name:   "Delete Token",
		Description: `Deletes a token. Requires the token's admin key; tokens created without
one are immutable and cannot be deleted.`,
		Schema:     params.DeleteTokenSchema,
		SchemaJSON: json.RawMessage(params.DeleteTokenSchemaJSON),
		Execute: func(ctx context.Context, raw json.RawMessage) toolkit.ToolResponse {
			const op = "delete token"
			var p params.DeleteToken
			if err := toolkit.Unmarshal(raw, &p); err != nil {
				return toolkit.Failure(op, err)
			}
			norm, err := d.Normaliser.DeleteToken(ctx, p)
			if err != nil {
				return toolkit.Failure(op, err)
			}
			built, err := build.DeleteToken(norm)
			if err != nil {
				return toolkit.Failure(op, err)
			}
			result, err := d.Executor.Execute(ctx, built)
			if err != nil {
				return toolkit.Failure(op, err)
			}
			return report(result, "Token deleted successfully.")
		},
	}
}

func associateTokenTool(d Deps) *toolkit.Tool {
	return &toolkit.Tool{
		Method: "associate_token",
		Name:   "Associate Token",
		Description: `Associates one or more tokens with an account so it can hold them. The
account defaults to the operator account.`,
		Schema:     params.AssociateTokenSchema,
		SchemaJSON: json.RawMessage(params.AssociateTokenSchemaJSON),
		Execute: func(ctx context.Context, raw json.RawMessage) toolkit.ToolResponse {
			const op = "associate token"
			var p params.AssociateToken
			if err := toolkit.Unmarshal(raw, &p); err != nil {
				return toolkit.Failure(op, err)
			}
			norm, err := d.Normaliser.AssociateToken(ctx, p)
			if err != nil {
				return toolkit.Failure(op, err)
			}
			built, err := build.AssociateToken(norm)
			if err != nil {
				return toolkit.Failure(op, err)
			}
			result, err := d.Executor.Execute(ctx, built)
			if err != nil {
				return toolkit.Failure(op, err)
			}
			return report(result, "Tokens associated successfully.")
		},
	}
}

func dissociateTokenTool(d Deps) *toolkit.Tool {
	return &toolkit.Tool{
		Method: "dissociate_token",
		Name:   "Dissociate Token",
		Description: `Dissociates one or more tokens from an account. The account must hold a
zero balance of each token. The account defaults to the operator account.`,
		Schema:     params.DissociateTokenSchema,
		SchemaJSON: json.RawMessage(params.DissociateTokenSchemaJSON),
		Execute: func(ctx context.Context, raw json.RawMessage) toolkit.ToolResponse {
			const op = "dissociate token"
			var p params.DissociateToken
			if err := toolkit.Unmarshal(raw, &p); err != nil {
				return toolkit.Failure(op, err)
			}
			norm, err := d.Normaliser.DissociateToken(ctx, p)
			if err != nil {
				return toolkit.Failure(op, err)
			}
			built, err := build.DissociateToken(norm)
			if err != nil {
				return toolkit.Failure(op, err)
			}
			result, err := d.Executor.Execute(ctx, built)
			if err != nil {
				return toolkit.Failure(op, err)
			}
			return report(result, "Tokens dissociated successfully.")
		},
	}
}
