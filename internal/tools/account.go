package tools

import (
	"context"
	"encoding/json"

	"github.com/hashpilot/hashpilot/internal/build"
	"github.com/hashpilot/hashpilot/internal/params"
	"github.com/hashpilot/hashpilot/internal/toolkit"
)

func createAccountTool(d Deps) *toolkit.Tool {
	return &toolkit.Tool{
		Method: "create_account",
		Name:   "Create Account",
		Description: `Creates a new Hedera account. When public_key is omitted the operator's
public key controls the new account. initial_balance is in HBAR.`,
		Schema:     params.CreateAccountSchema,
		SchemaJSON: json.RawMessage(params.CreateAccountSchemaJSON),
		Execute: func(ctx context.Context, raw json.RawMessage) toolkit.ToolResponse {
			const op = "create account"
			var p params.CreateAccount
			if err := toolkit.Unmarshal(raw, &p); err != nil {
				return toolkit.Failure(op, err)
			}
			norm, err := d.Normaliser.CreateAccount(ctx, p)
			if err != nil {
				return toolkit.Failure(op, err)
			}
			built, err := build.CreateAccount(norm)
			if err != nil {
				return toolkit.Failure(op, err)
			}
			result, err := d.Executor.Execute(ctx, built)
			if err != nil {
				return toolkit.Failure(op, err)
			}
			return report(result, "Account created successfully.", "Account ID: "+result.AccountID)
		},
	}
}

func updateAccountTool(d Deps) *toolkit.Tool {
	return &toolkit.Tool{
		Method: "update_account",
		Name:   "Update Account",
		Description: `Updates mutable properties of an account: memo, maximum automatic token
associations, staking target, and the decline-staking-reward flag. When
account_id is omitted the operator account is updated.`,
		Schema:     params.UpdateAccountSchema,
		SchemaJSON: json.RawMessage(params.UpdateAccountSchemaJSON),
		Execute: func(ctx context.Context, raw json.RawMessage) toolkit.ToolResponse {
			const op = "update account"
			var p params.UpdateAccount
			if err := toolkit.Unmarshal(raw, &p); err != nil {
				return toolkit.Failure(op, err)
			}
			norm, err := d.Normaliser.UpdateAccount(ctx, p)
			if err != nil {
				return toolkit.Failure(op, err)
			}
			built, err := build.UpdateAccount(norm)
			if err != nil {
				return toolkit.Failure(op, err)
			}
			result, err := d.Executor.Execute(ctx, built)
			if err != nil {
				return toolkit.Failure(op, err)
			}
			return report(result, "Account updated successfully.")
		},
	}
}

func deleteAccountTool(d Deps) *toolkit.Tool {
	return &toolkit.Tool{
		Method: "delete_account",
		Name:   "Delete Account",
		Description: `Deletes an account and sends its remaining balance to
transfer_account_id (the operator account when omitted). account_id is
required: deletion never falls back to the operator account.`,
		Schema:     params.DeleteAccountSchema,
		SchemaJSON: json.RawMessage(params.DeleteAccountSchemaJSON),
		Execute: func(ctx context.Context, raw json.RawMessage) toolkit.ToolResponse {
			const op = "delete account"
			var p params.DeleteAccount
			if err := toolkit.Unmarshal(raw, &p); err != nil {
				return toolkit.Failure(op, err)
			}
			norm, err := d.Normaliser.DeleteAccount(ctx, p)
			if err != nil {
				return toolkit.Failure(op, err)
			}
			built, err := build.DeleteAccount(norm)
			if err != nil {
				return toolkit.Failure(op, err)
			}
			result, err := d.Executor.Execute(ctx, built)
			if err != nil {
				return toolkit.Failure(op, err)
			}
			return report(result, "Account deleted successfully.")
		},
	}
}
