package build

import (
	"fmt"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"

	"github.com/hashpilot/hashpilot/internal/normalise"
	"github.com/hashpilot/hashpilot/internal/toolkit"
)

// TransferHbar adds one hbar line per ledger entry. The source's line is
// marked as an allowance spend when the transfer is approved; the ledger
// already nets to zero so no further arithmetic happens here.
func TransferHbar(p *normalise.HbarTransfer) (toolkit.Built, error) {
	tx := hedera.NewTransferTransaction()
	for acct, delta := range p.Ledger {
		id, err := hedera.AccountIDFromString(acct)
		if err != nil {
			return toolkit.Built{}, fmt.Errorf("ledger account %q: %w", acct, err)
		}
		amount := hedera.HbarFromTinybar(delta)
		if p.Approved && acct == p.Source {
			tx.AddApprovedHbarTransfer(id, amount, true)
		} else {
			tx.AddHbarTransfer(id, amount)
		}
	}
	if p.Memo != "" {
		tx.SetTransactionMemo(p.Memo)
	}
	return maybeWrapInSchedule(tx, p.Schedule)
}

// TransferToken adds one token line per (token, account) ledger entry.
func TransferToken(p *normalise.TokenTransfer) (toolkit.Built, error) {
	tx := hedera.NewTransferTransaction()
	for acct, delta := range p.Ledger {
		id, err := hedera.AccountIDFromString(acct)
		if err != nil {
			return toolkit.Built{}, fmt.Errorf("ledger account %q: %w", acct, err)
		}
		if p.Approved && acct == p.Source {
			tx.AddApprovedTokenTransfer(p.TokenID, id, delta, true)
		} else {
			tx.AddTokenTransfer(p.TokenID, id, delta)
		}
	}
	if p.Memo != "" {
		tx.SetTransactionMemo(p.Memo)
	}
	return maybeWrapInSchedule(tx, p.Schedule)
}

func TransferNFT(p *normalise.NFTTransfer) (toolkit.Built, error) {
	tx := hedera.NewTransferTransaction()
	if p.Approved {
		tx.AddApprovedNftTransfer(p.NftID, p.Sender, p.Receiver, true)
	} else {
		tx.AddNftTransfer(p.NftID, p.Sender, p.Receiver)
	}
	if p.Memo != "" {
		tx.SetTransactionMemo(p.Memo)
	}
	return maybeWrapInSchedule(tx, p.Schedule)
}
