package build

import (
	hedera "github.com/hashgraph/hedera-sdk-go/v2"

	"github.com/hashpilot/hashpilot/internal/normalise"
	"github.com/hashpilot/hashpilot/internal/toolkit"
)

func CreateAccount(p *normalise.AccountCreate) (toolkit.Built, error) {
	tx := hedera.NewAccountCreateTransaction().
		SetKey(p.Key).
		SetInitialBalance(p.InitialBalance)
	if p.Memo != "" {
		tx.SetAccountMemo(p.Memo)
	}
	if p.MaxAutomaticTokenAssociations != nil {
		tx.SetMaxAutomaticTokenAssociations(uint32(*p.MaxAutomaticTokenAssociations))
	}
	if p.TxMemo != "" {
		tx.SetTransactionMemo(p.TxMemo)
	}
	return maybeWrapInSchedule(tx, p.Schedule)
}

func UpdateAccount(p *normalise.AccountUpdate) (toolkit.Built, error) {
	tx := hedera.NewAccountUpdateTransaction().
		SetAccountID(p.AccountID)
	if p.Memo != nil {
		tx.SetAccountMemo(*p.Memo)
	}
	if p.MaxAutomaticTokenAssociations != nil {
		tx.SetMaxAutomaticTokenAssociations(uint32(*p.MaxAutomaticTokenAssociations))
	}
	if p.StakedAccountID != nil {
		tx.SetStakedAccountID(*p.StakedAccountID)
	}
	if p.DeclineStakingReward != nil {
		tx.SetDeclineStakingReward(*p.DeclineStakingReward)
	}
	if p.TxMemo != "" {
		tx.SetTransactionMemo(p.TxMemo)
	}
	return maybeWrapInSchedule(tx, p.Schedule)
}

func DeleteAccount(p *normalise.AccountDelete) (toolkit.Built, error) {
	tx := hedera.NewAccountDeleteTransaction().
		SetAccountID(p.AccountID).
		SetTransferAccountID(p.TransferAccountID)
	return toolkit.Built{Inner: tx}, nil
}
