package build

import (
	hedera "github.com/hashgraph/hedera-sdk-go/v2"

	"github.com/hashpilot/hashpilot/internal/normalise"
	"github.com/hashpilot/hashpilot/internal/toolkit"
)

func CreateFungibleToken(p *normalise.FungibleTokenCreate) (toolkit.Built, error) {
	tx := hedera.NewTokenCreateTransaction().
		SetTokenName(p.Name).
		SetTokenSymbol(p.Symbol).
		SetTokenType(hedera.TokenTypeFungibleCommon).
		SetDecimals(p.Decimals).
		SetInitialSupply(p.InitialSupply).
		SetSupplyType(p.SupplyType).
		SetTreasuryAccountID(p.Treasury)
	if p.SupplyType == hedera.TokenSupplyTypeFinite {
		tx.SetMaxSupply(p.MaxSupply)
	}
	if p.SupplyKey != nil {
		tx.SetSupplyKey(p.SupplyKey)
	}
	if p.Memo != "" {
		tx.SetTokenMemo(p.Memo)
	}
	if p.TxMemo != "" {
		tx.SetTransactionMemo(p.TxMemo)
	}
	return maybeWrapInSchedule(tx, p.Schedule)
}

func MintFungibleToken(p *normalise.FungibleTokenMint) (toolkit.Built, error) {
	tx := hedera.NewTokenMintTransaction().
		SetTokenID(p.TokenID).
		SetAmount(p.Amount)
	if p.TxMemo != "" {
		tx.SetTransactionMemo(p.TxMemo)
	}
	return maybeWrapInSchedule(tx, p.Schedule)
}

func UpdateToken(p *normalise.TokenUpdate) (toolkit.Built, error) {
	tx := hedera.NewTokenUpdateTransaction().
		SetTokenID(p.TokenID)
	if p.Name != "" {
		tx.SetTokenName(p.Name)
	}
	if p.Symbol != "" {
		tx.SetTokenSymbol(p.Symbol)
	}
	if p.Memo != nil {
		tx.SetTokenMemo(*p.Memo)
	}
	if p.Treasury != nil {
		tx.SetTreasuryAccountID(*p.Treasury)
	}
	if p.AdminKey != nil {
		tx.SetAdminKey(p.AdminKey)
	}
	if p.SupplyKey != nil {
		tx.SetSupplyKey(p.SupplyKey)
	}
	if p.WipeKey != nil {
		tx.SetWipeKey(p.WipeKey)
	}
	if p.FreezeKey != nil {
		tx.SetFreezeKey(p.FreezeKey)
	}
	if p.MetadataKey != nil {
		tx.SetMetadataKey(p.MetadataKey)
	}
	if p.TxMemo != "" {
		tx.SetTransactionMemo(p.TxMemo)
	}
	return maybeWrapInSchedule(tx, p.Schedule)
}

func DeleteToken(p *normalise.TokenDelete) (toolkit.Built, error) {
	tx := hedera.NewTokenDeleteTransaction().
		SetTokenID(p.TokenID)
	if p.TxMemo != "" {
		tx.SetTransactionMemo(p.TxMemo)
	}
	return toolkit.Built{Inner: tx}, nil
}

func AssociateToken(p *normalise.TokenAssociate) (toolkit.Built, error) {
	tx := hedera.NewTokenAssociateTransaction().
		SetAccountID(p.AccountID).
		SetTokenIDs(p.TokenIDs...)
	return toolkit.Built{Inner: tx}, nil
}

func DissociateToken(p *normalise.TokenDissociate) (toolkit.Built, error) {
	tx := hedera.NewTokenDissociateTransaction().
		SetAccountID(p.AccountID).
		SetTokenIDs(p.TokenIDs...)
	return toolkit.Built{Inner: tx}, nil
}

// ExecuteContract builds the contract call used for ERC-20 deployment.
func ExecuteContract(p *normalise.ContractExecute) (toolkit.Built, error) {
	tx := hedera.NewContractExecuteTransaction().
		SetContractID(p.ContractID).
		SetGas(p.Gas).
		SetFunctionParameters(p.Parameters)
	if p.TxMemo != "" {
		tx.SetTransactionMemo(p.TxMemo)
	}
	return maybeWrapInSchedule(tx, p.Schedule)
}
