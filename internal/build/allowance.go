package build

import (
	hedera "github.com/hashgraph/hedera-sdk-go/v2"

	"github.com/hashpilot/hashpilot/internal/normalise"
	"github.com/hashpilot/hashpilot/internal/toolkit"
)

// ApproveHbarAllowance authorises the spender to move hbar from the
// owner's account. Approvals are not schedulable; the owner signs
// directly.
func ApproveHbarAllowance(p *normalise.HbarAllowance) (toolkit.Built, error) {
	tx := hedera.NewAccountAllowanceApproveTransaction().
		ApproveHbarAllowance(p.Owner, p.Spender, p.Amount)
	if p.Memo != "" {
		tx.SetTransactionMemo(p.Memo)
	}
	return toolkit.Built{Inner: tx}, nil
}

func ApproveTokenAllowance(p *normalise.TokenAllowance) (toolkit.Built, error) {
	tx := hedera.NewAccountAllowanceApproveTransaction().
		ApproveTokenAllowance(p.TokenID, p.Owner, p.Spender, p.Amount)
	if p.Memo != "" {
		tx.SetTransactionMemo(p.Memo)
	}
	return toolkit.Built{Inner: tx}, nil
}

func ApproveNFTAllowance(p *normalise.NFTAllowance) (toolkit.Built, error) {
	tx := hedera.NewAccountAllowanceApproveTransaction()
	if p.AllSerials {
		tx.ApproveTokenNftAllowanceAllSerials(p.TokenID, p.Owner, p.Spender)
	} else {
		for _, serial := range p.Serials {
			nftID := hedera.NftID{TokenID: p.TokenID, SerialNumber: serial}
			tx.ApproveTokenNftAllowance(nftID, p.Owner, p.Spender)
		}
	}
	if p.Memo != "" {
		tx.SetTransactionMemo(p.Memo)
	}
	return toolkit.Built{Inner: tx}, nil
}
