// Package params defines the raw parameter shapes tools accept from the
// agent, one struct and one JSON schema per operation. Amounts are in
// display units; normalisation to base units happens downstream.
package params

import "github.com/hashpilot/hashpilot/internal/resolve"

// Scheduling controls deferred execution of a schedulable operation.
// When IsScheduled is false the other fields are ignored.
type Scheduling struct {
	IsScheduled    bool             `json:"is_scheduled,omitempty"`
	AdminKey       resolve.KeyInput `json:"admin_key,omitempty"`
	PayerAccountID string           `json:"payer_account_id,omitempty"`
	ExpirationTime string           `json:"expiration_time,omitempty"`
	WaitForExpiry  bool             `json:"wait_for_expiry,omitempty"`
}

// TransferTarget is one recipient line of an hbar or token transfer.
type TransferTarget struct {
	AccountID string  `json:"account_id"`
	Amount    float64 `json:"amount"`
}

type TransferHbar struct {
	Transfers       []TransferTarget `json:"transfers"`
	SourceAccountID string           `json:"source_account_id,omitempty"`
	TransactionMemo string           `json:"transaction_memo,omitempty"`
	Scheduling      *Scheduling      `json:"scheduling_params,omitempty"`
}

type TransferHbarWithAllowance struct {
	Transfers       []TransferTarget `json:"transfers"`
	SourceAccountID string           `json:"source_account_id,omitempty"`
	TransactionMemo string           `json:"transaction_memo,omitempty"`
	Scheduling      *Scheduling      `json:"scheduling_params,omitempty"`
}

type TransferTokenWithAllowance struct {
	TokenID         string           `json:"token_id"`
	Transfers       []TransferTarget `json:"transfers"`
	SourceAccountID string           `json:"source_account_id,omitempty"`
	TransactionMemo string           `json:"transaction_memo,omitempty"`
	Scheduling      *Scheduling      `json:"scheduling_params,omitempty"`
}

type TransferNFTWithAllowance struct {
	TokenID           string      `json:"token_id"`
	SerialNumber      int64       `json:"serial_number"`
	SourceAccountID   string      `json:"source_account_id,omitempty"`
	ReceiverAccountID string      `json:"receiver_account_id"`
	TransactionMemo   string      `json:"transaction_memo,omitempty"`
	Scheduling        *Scheduling `json:"scheduling_params,omitempty"`
}

type ApproveHbarAllowance struct {
	OwnerAccountID   string  `json:"owner_account_id,omitempty"`
	SpenderAccountID string  `json:"spender_account_id"`
	Amount           float64 `json:"amount"`
	TransactionMemo  string  `json:"transaction_memo,omitempty"`
}

type ApproveTokenAllowance struct {
	OwnerAccountID   string  `json:"owner_account_id,omitempty"`
	SpenderAccountID string  `json:"spender_account_id"`
	TokenID          string  `json:"token_id"`
	Amount           float64 `json:"amount"`
	TransactionMemo  string  `json:"transaction_memo,omitempty"`
}

type ApproveNFTAllowance struct {
	OwnerAccountID   string  `json:"owner_account_id,omitempty"`
	SpenderAccountID string  `json:"spender_account_id"`
	TokenID          string  `json:"token_id"`
	AllSerials       bool    `json:"all_serials,omitempty"`
	SerialNumbers    []int64 `json:"serial_numbers,omitempty"`
	TransactionMemo  string  `json:"transaction_memo,omitempty"`
}

type CreateAccount struct {
	PublicKey                     string      `json:"public_key,omitempty"`
	InitialBalance                float64     `json:"initial_balance,omitempty"`
	AccountMemo                   string      `json:"account_memo,omitempty"`
	MaxAutomaticTokenAssociations *int32      `json:"max_automatic_token_associations,omitempty"`
	TransactionMemo               string      `json:"transaction_memo,omitempty"`
	Scheduling                    *Scheduling `json:"scheduling_params,omitempty"`
}

type UpdateAccount struct {
	AccountID                     string      `json:"account_id,omitempty"`
	AccountMemo                   *string     `json:"account_memo,omitempty"`
	MaxAutomaticTokenAssociations *int32      `json:"max_automatic_token_associations,omitempty"`
	StakedAccountID               string      `json:"staked_account_id,omitempty"`
	DeclineStakingReward          *bool       `json:"decline_staking_reward,omitempty"`
	TransactionMemo               string      `json:"transaction_memo,omitempty"`
	Scheduling                    *Scheduling `json:"scheduling_params,omitempty"`
}

type DeleteAccount struct {
	AccountID         string `json:"account_id,omitempty"`
	TransferAccountID string `json:"transfer_account_id,omitempty"`
}

type CreateTopic struct {
	TopicMemo       string      `json:"topic_memo,omitempty"`
	IsSubmitKey     bool        `json:"is_submit_key,omitempty"`
	TransactionMemo string      `json:"transaction_memo,omitempty"`
	Scheduling      *Scheduling `json:"scheduling_params,omitempty"`
}

type UpdateTopic struct {
	TopicID            string           `json:"topic_id"`
	TopicMemo          *string          `json:"topic_memo,omitempty"`
	AdminKey           resolve.KeyInput `json:"admin_key,omitempty"`
	SubmitKey          resolve.KeyInput `json:"submit_key,omitempty"`
	AutoRenewAccountID string           `json:"auto_renew_account_id,omitempty"`
	ExpirationTime     string           `json:"expiration_time,omitempty"`
	TransactionMemo    string           `json:"transaction_memo,omitempty"`
	Scheduling         *Scheduling      `json:"scheduling_params,omitempty"`
}

type DeleteTopic struct {
	TopicID         string      `json:"topic_id"`
	TransactionMemo string      `json:"transaction_memo,omitempty"`
	Scheduling      *Scheduling `json:"scheduling_params,omitempty"`
}

type SubmitTopicMessage struct {
	TopicID         string      `json:"topic_id"`
	Message         string      `json:"message"`
	TransactionMemo string      `json:"transaction_memo,omitempty"`
	Scheduling      *Scheduling `json:"scheduling_params,omitempty"`
}

type AssociateToken struct {
	AccountID string   `json:"account_id,omitempty"`
	TokenIDs  []string `json:"token_ids"`
}

type DissociateToken struct {
	AccountID string   `json:"account_id,omitempty"`
	TokenIDs  []string `json:"token_ids"`
}

type CreateFungibleToken struct {
	TokenName         string      `json:"token_name"`
	TokenSymbol       string      `json:"token_symbol"`
	InitialSupply     *float64    `json:"initial_supply,omitempty"`
	SupplyType        string      `json:"supply_type,omitempty"`
	MaxSupply         *float64    `json:"max_supply,omitempty"`
	Decimals          *int        `json:"decimals,omitempty"`
	TreasuryAccountID string      `json:"treasury_account_id,omitempty"`
	IsSupplyKey       bool        `json:"is_supply_key,omitempty"`
	TokenMemo         string      `json:"token_memo,omitempty"`
	TransactionMemo   string      `json:"transaction_memo,omitempty"`
	Scheduling        *Scheduling `json:"scheduling_params,omitempty"`
}

type MintFungibleToken struct {
	TokenID         string      `json:"token_id"`
	Amount          float64     `json:"amount"`
	TransactionMemo string      `json:"transaction_memo,omitempty"`
	Scheduling      *Scheduling `json:"scheduling_params,omitempty"`
}

type UpdateToken struct {
	TokenID           string           `json:"token_id"`
	TokenName         string           `json:"token_name,omitempty"`
	TokenSymbol       string           `json:"token_symbol,omitempty"`
	TokenMemo         *string          `json:"token_memo,omitempty"`
	TreasuryAccountID string           `json:"treasury_account_id,omitempty"`
	AdminKey          resolve.KeyInput `json:"admin_key,omitempty"`
	SupplyKey         resolve.KeyInput `json:"supply_key,omitempty"`
	WipeKey           resolve.KeyInput `json:"wipe_key,omitempty"`
	FreezeKey         resolve.KeyInput `json:"freeze_key,omitempty"`
	MetadataKey       resolve.KeyInput `json:"metadata_key,omitempty"`
	TransactionMemo   string           `json:"transaction_memo,omitempty"`
	Scheduling        *Scheduling      `json:"scheduling_params,omitempty"`
}

type DeleteToken struct {
	TokenID         string `json:"token_id"`
	TransactionMemo string `json:"transaction_memo,omitempty"`
}

type CreateERC20 struct {
	TokenName     string   `json:"token_name"`
	TokenSymbol   string   `json:"token_symbol"`
	Decimals      *int     `json:"decimals,omitempty"`
	InitialSupply *float64 `json:"initial_supply,omitempty"`
}

type GetTokenInfo struct {
	TokenID string `json:"token_id"`
}

type GetTopicInfo struct {
	TopicID string `json:"topic_id"`
}

type GetExchangeRate struct {
	Timestamp string `json:"timestamp,omitempty"`
}

type GetTransactionRecord struct {
	TransactionID string `json:"transaction_id"`
	Nonce         *int   `json:"nonce,omitempty"`
}

type GetAccountBalance struct {
	AccountID string `json:"account_id,omitempty"`
}
