package params

import (
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Shared schema fragments. Schemas below are plain draft-07 documents;
// the same text is handed to the LLM as each tool's parameter declaration.
const (
	schedulingProp = `"scheduling_params": {
		"type": "object",
		"description": "Optional deferred execution. Set is_scheduled to true to create a scheduled transaction instead of executing immediately.",
		"properties": {
			"is_scheduled": {"type": "boolean"},
			"admin_key": {"type": ["string", "boolean"], "description": "Public key allowed to delete the schedule, or true to use your own key"},
			"payer_account_id": {"type": "string"},
			"expiration_time": {"type": "string", "description": "ISO-8601 timestamp"},
			"wait_for_expiry": {"type": "boolean"}
		}
	}`

	transfersProp = `"transfers": {
		"type": "array",
		"minItems": 1,
		"items": {
			"type": "object",
			"properties": {
				"account_id": {"type": "string", "description": "Recipient account id, e.g. 0.0.1234"},
				"amount": {"type": "number", "description": "Amount in display units"}
			},
			"required": ["account_id", "amount"]
		}
	}`

	keyProp = `{"type": ["string", "boolean"], "description": "A public key string, or true to use your own key"}`
)

const TransferHbarSchemaJSON = `{
	"type": "object",
	"properties": {
		` + transfersProp + `,
		"source_account_id": {"type": "string"},
		"transaction_memo": {"type": "string"},
		` + schedulingProp + `
	},
	"required": ["transfers"]
}`

const TransferHbarWithAllowanceSchemaJSON = `{
	"type": "object",
	"properties": {
		` + transfersProp + `,
		"source_account_id": {"type": "string", "description": "Owner account that granted the allowance. Required."},
		"transaction_memo": {"type": "string"},
		` + schedulingProp + `
	},
	"required": ["transfers"]
}`

const TransferTokenWithAllowanceSchemaJSON = `{
	"type": "object",
	"properties": {
		"token_id": {"type": "string"},
		` + transfersProp + `,
		"source_account_id": {"type": "string", "description": "Owner account that granted the allowance. Required."},
		"transaction_memo": {"type": "string"},
		` + schedulingProp + `
	},
	"required": ["token_id", "transfers"]
}`

const TransferNFTWithAllowanceSchemaJSON = `{
	"type": "object",
	"properties": {
		"token_id": {"type": "string"},
		"serial_number": {"type": "integer"},
		"source_account_id": {"type": "string", "description": "Owner account that granted the allowance. Required."},
		"receiver_account_id": {"type": "string"},
		"transaction_memo": {"type": "string"},
		` + schedulingProp + `
	},
	"required": ["token_id", "serial_number", "receiver_account_id"]
}`

const ApproveHbarAllowanceSchemaJSON = `{
	"type": "object",
	"properties": {
		"owner_account_id": {"type": "string", "description": "Granting account; defaults to your own account"},
		"spender_account_id": {"type": "string", "description": "Account allowed to spend"},
		"amount": {"type": "number", "minimum": 0, "description": "Allowance in HBAR; 0 revokes"},
		"transaction_memo": {"type": "string"}
	},
	"required": ["spender_account_id", "amount"]
}`

const ApproveTokenAllowanceSchemaJSON = `{
	"type": "object",
	"properties": {
		"owner_account_id": {"type": "string", "description": "Granting account; defaults to your own account"},
		"spender_account_id": {"type": "string", "description": "Account allowed to spend"},
		"token_id": {"type": "string"},
		"amount": {"type": "number", "minimum": 0, "description": "Allowance in display units; 0 revokes"},
		"transaction_memo": {"type": "string"}
	},
	"required": ["spender_account_id", "token_id", "amount"]
}`

const ApproveNFTAllowanceSchemaJSON = `{
	"type": "object",
	"properties": {
		"owner_account_id": {"type": "string", "description": "Granting account; defaults to your own account"},
		"spender_account_id": {"type": "string", "description": "Account allowed to spend"},
		"token_id": {"type": "string"},
		"all_serials": {"type": "boolean", "description": "Approve every serial, current and future"},
		"serial_numbers": {"type": "array", "items": {"type": "integer"}, "description": "Specific serials to approve"},
		"transaction_memo": {"type": "string"}
	},
	"required": ["spender_account_id", "token_id"]
}`

const CreateAccountSchemaJSON = `{
	"type": "object",
	"properties": {
		"public_key": {"type": "string", "description": "Key for the new account; defaults to your own key"},
		"initial_balance": {"type": "number", "description": "Initial balance in hbar"},
		"account_memo": {"type": "string"},
		"max_automatic_token_associations": {"type": "integer", "minimum": 0},
		"transaction_memo": {"type": "string"},
		` + schedulingProp + `
	}
}`

const UpdateAccountSchemaJSON = `{
	"type": "object",
	"properties": {
		"account_id": {"type": "string"},
		"account_memo": {"type": "string"},
		"max_automatic_token_associations": {"type": "integer", "minimum": 0},
		"staked_account_id": {"type": "string"},
		"decline_staking_reward": {"type": "boolean"},
		"transaction_memo": {"type": "string"},
		` + schedulingProp + `
	}
}`

const DeleteAccountSchemaJSON = `{
	"type": "object",
	"properties": {
		"account_id": {"type": "string", "description": "Account to delete. Must be explicit; never defaulted."},
		"transfer_account_id": {"type": "string", "description": "Account receiving the remaining balance; defaults to your own account"}
	},
	"required": ["account_id"]
}`

const CreateTopicSchemaJSON = `{
	"type": "object",
	"properties": {
		"topic_memo": {"type": "string"},
		"is_submit_key": {"type": "boolean", "description": "Restrict message submission to your key"},
		"transaction_memo": {"type": "string"},
		` + schedulingProp + `
	}
}`

const UpdateTopicSchemaJSON = `{
	"type": "object",
	"properties": {
		"topic_id": {"type": "string"},
		"topic_memo": {"type": "string"},
		"admin_key": ` + keyProp + `,
		"submit_key": ` + keyProp + `,
		"auto_renew_account_id": {"type": "string"},
		"expiration_time": {"type": "string", "description": "ISO-8601 timestamp"},
		"transaction_memo": {"type": "string"},
		` + schedulingProp + `
	},
	"required": ["topic_id"]
}`

const DeleteTopicSchemaJSON = `{
	"type": "object",
	"properties": {
		"topic_id": {"type": "string"},
		"transaction_memo": {"type": "string"},
		` + schedulingProp + `
	},
	"required": ["topic_id"]
}`

const SubmitTopicMessageSchemaJSON = `{
	"type": "object",
	"properties": {
		"topic_id": {"type": "string"},
		"message": {"type": "string"},
		"transaction_memo": {"type": "string"},
		` + schedulingProp + `
	},
	"required": ["topic_id", "message"]
}`

const AssociateTokenSchemaJSON = `{
	"type": "object",
	"properties": {
		"account_id": {"type": "string", "description": "Defaults to your own account"},
		"token_ids": {"type": "array", "minItems": 1, "items": {"type": "string"}}
	},
	"required": ["token_ids"]
}`

const DissociateTokenSchemaJSON = AssociateTokenSchemaJSON

const CreateFungibleTokenSchemaJSON = `{
	"type": "object",
	"properties": {
		"token_name": {"type": "string"},
		"token_symbol": {"type": "string"},
		"initial_supply": {"type": "number", "description": "Initial supply in display units"},
		"supply_type": {"type": "string", "enum": ["finite", "infinite"]},
		"max_supply": {"type": "number", "description": "Maximum supply in display units; implies finite supply"},
		"decimals": {"type": "integer"},
		"treasury_account_id": {"type": "string", "description": "Defaults to your own account"},
		"is_supply_key": {"type": "boolean", "description": "Set a supply key so tokens can be minted later"},
		"token_memo": {"type": "string"},
		"transaction_memo": {"type": "string"},
		` + schedulingProp + `
	},
	"required": ["token_name", "token_symbol"]
}`

const MintFungibleTokenSchemaJSON = `{
	"type": "object",
	"properties": {
		"token_id": {"type": "string"},
		"amount": {"type": "number", "description": "Amount to mint in display units"},
		"transaction_memo": {"type": "string"},
		` + schedulingProp + `
	},
	"required": ["token_id", "amount"]
}`

const UpdateTokenSchemaJSON = `{
	"type": "object",
	"properties": {
		"token_id": {"type": "string"},
		"token_name": {"type": "string"},
		"token_symbol": {"type": "string"},
		"token_memo": {"type": "string"},
		"treasury_account_id": {"type": "string"},
		"admin_key": ` + keyProp + `,
		"supply_key": ` + keyProp + `,
		"wipe_key": ` + keyProp + `,
		"freeze_key": ` + keyProp + `,
		"metadata_key": ` + keyProp + `,
		"transaction_memo": {"type": "string"},
		` + schedulingProp + `
	},
	"required": ["token_id"]
}`

const DeleteTokenSchemaJSON = `{
	"type": "object",
	"properties": {
		"token_id": {"type": "string"},
		"transaction_memo": {"type": "string"}
	},
	"required": ["token_id"]
}`

const CreateERC20SchemaJSON = `{
	"type": "object",
	"properties": {
		"token_name": {"type": "string"},
		"token_symbol": {"type": "string"},
		"decimals": {"type": "integer", "description": "Defaults to 18"},
		"initial_supply": {"type": "number", "description": "Initial supply in display units, defaults to 0"}
	},
	"required": ["token_name", "token_symbol"]
}`

const GetTokenInfoSchemaJSON = `{
	"type": "object",
	"properties": {
		"token_id": {"type": "string"}
	},
	"required": ["token_id"]
}`

const GetTopicInfoSchemaJSON = `{
	"type": "object",
	"properties": {
		"topic_id": {"type": "string"}
	},
	"required": ["topic_id"]
}`

const GetExchangeRateSchemaJSON = `{
	"type": "object",
	"properties": {
		"timestamp": {"type": "string", "description": "Optional consensus timestamp; defaults to the current rate"}
	}
}`

const GetTransactionRecordSchemaJSON = `{
	"type": "object",
	"properties": {
		"transaction_id": {"type": "string", "description": "Either 0.0.x@seconds.nanos or 0.0.x-seconds-nanos"},
		"nonce": {"type": "integer"}
	},
	"required": ["transaction_id"]
}`

const GetAccountBalanceSchemaJSON = `{
	"type": "object",
	"properties": {
		"account_id": {"type": "string", "description": "Defaults to your own account"}
	}
}`

// MustSchema compiles a schema document, panicking on malformed text.
// Called only from package-level vars with constant input.
func MustSchema(name, src string) *jsonschema.Schema {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft7
	if err := c.AddResource(name, strings.NewReader(src)); err != nil {
		panic(err)
	}
	return c.MustCompile(name)
}

var (
	TransferHbarSchema               = MustSchema("transfer_hbar.json", TransferHbarSchemaJSON)
	TransferHbarWithAllowanceSchema  = MustSchema("transfer_hbar_with_allowance.json", TransferHbarWithAllowanceSchemaJSON)
	TransferTokenWithAllowanceSchema = MustSchema("transfer_token_with_allowance.json", TransferTokenWithAllowanceSchemaJSON)
	TransferNFTWithAllowanceSchema   = MustSchema("transfer_nft_with_allowance.json", TransferNFTWithAllowanceSchemaJSON)
	ApproveHbarAllowanceSchema       = MustSchema("approve_hbar_allowance.json", ApproveHbarAllowanceSchemaJSON)
	ApproveTokenAllowanceSchema      = MustSchema("approve_token_allowance.json", ApproveTokenAllowanceSchemaJSON)
	ApproveNFTAllowanceSchema        = MustSchema("approve_nft_allowance.json", ApproveNFTAllowanceSchemaJSON)
	CreateAccountSchema              = MustSchema("create_account.json", CreateAccountSchemaJSON)
	UpdateAccountSchema              = MustSchema("update_account.json", UpdateAccountSchemaJSON)
	DeleteAccountSchema              = MustSchema("delete_account.json", DeleteAccountSchemaJSON)
	CreateTopicSchema                = MustSchema("create_topic.json", CreateTopicSchemaJSON)
	UpdateTopicSchema                = MustSchema("update_topic.json", UpdateTopicSchemaJSON)
	DeleteTopicSchema                = MustSchema("delete_topic.json", DeleteTopicSchemaJSON)
	SubmitTopicMessageSchema         = MustSchema("submit_topic_message.json", SubmitTopicMessageSchemaJSON)
	AssociateTokenSchema             = MustSchema("associate_token.json", AssociateTokenSchemaJSON)
	DissociateTokenSchema            = MustSchema("dissociate_token.json", DissociateTokenSchemaJSON)
	CreateFungibleTokenSchema        = MustSchema("create_fungible_token.json", CreateFungibleTokenSchemaJSON)
	MintFungibleTokenSchema          = MustSchema("mint_fungible_token.json", MintFungibleTokenSchemaJSON)
	UpdateTokenSchema                = MustSchema("update_token.json", UpdateTokenSchemaJSON)
	DeleteTokenSchema                = MustSchema("delete_token.json", DeleteTokenSchemaJSON)
	CreateERC20Schema                = MustSchema("create_erc20.json", CreateERC20SchemaJSON)
	GetTokenInfoSchema               = MustSchema("get_token_info.json", GetTokenInfoSchemaJSON)
	GetTopicInfoSchema               = MustSchema("get_topic_info.json", GetTopicInfoSchemaJSON)
	GetExchangeRateSchema            = MustSchema("get_exchange_rate.json", GetExchangeRateSchemaJSON)
	GetTransactionRecordSchema       = MustSchema("get_transaction_record.json", GetTransactionRecordSchemaJSON)
	GetAccountBalanceSchema          = MustSchema("get_account_balance.json", GetAccountBalanceSchemaJSON)
)
