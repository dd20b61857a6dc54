package normalise

import (
	"context"
	"fmt"
	"math"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"

	"github.com/hashpilot/hashpilot/internal/hederr"
	"github.com/hashpilot/hashpilot/internal/params"
)

// HbarAllowance grants a spender the right to move hbar out of the
// owner's account. A zero amount revokes an existing allowance.
type HbarAllowance struct {
	Owner   hedera.AccountID
	Spender hedera.AccountID
	Amount  hedera.Hbar
	Memo    string
}

// TokenAllowance is the fungible-token counterpart, with the amount
// already converted to base units.
type TokenAllowance struct {
	TokenID hedera.TokenID
	Owner   hedera.AccountID
	Spender hedera.AccountID
	Amount  int64
	Memo    string
}

// NFTAllowance approves specific serials, or every serial the owner
// holds now and later when AllSerials is set.
type NFTAllowance struct {
	TokenID    hedera.TokenID
	Owner      hedera.AccountID
	Spender    hedera.AccountID
	AllSerials bool
	Serials    []int64
	Memo       string
}

// allowanceParties resolves the owner (defaulting to the operator) and
// parses the spender, shared by all three approval normalisers.
func (n *Normaliser) allowanceParties(ownerID, spenderID string) (owner, spender hedera.AccountID, err error) {
	owner, err = n.resolver.Account(ownerID)
	if err != nil {
		return owner, spender, err
	}
	spender, err = hedera.AccountIDFromString(spenderID)
	if err != nil {
		return owner, spender, fmt.Errorf("%w: spender %q is not a valid account id", hederr.ErrIdentityResolution, spenderID)
	}
	return owner, spender, nil
}

func (n *Normaliser) ApproveHbarAllowance(_ context.Context, p params.ApproveHbarAllowance) (*HbarAllowance, error) {
	owner, spender, err := n.allowanceParties(p.OwnerAccountID, p.SpenderAccountID)
	if err != nil {
		return nil, err
	}
	if p.Amount < 0 {
		return nil, fmt.Errorf("%w: allowance amount must be non-negative, got %v", hederr.ErrInvalidAmount, p.Amount)
	}
	return &HbarAllowance{
		Owner:   owner,
		Spender: spender,
		Amount:  hedera.HbarFromTinybar(int64(math.Round(p.Amount * tinybarsPerHbar))),
		Memo:    truncateMemo(p.TransactionMemo),
	}, nil
}

func (n *Normaliser) ApproveTokenAllowance(ctx context.Context, p params.ApproveTokenAllowance) (*TokenAllowance, error) {
	owner, spender, err := n.allowanceParties(p.OwnerAccountID, p.SpenderAccountID)
	if err != nil {
		return nil, err
	}
	tokenID, err := hedera.TokenIDFromString(p.TokenID)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a valid token id", hederr.ErrValidation, p.TokenID)
	}
	if p.Amount < 0 {
		return nil, fmt.Errorf("%w: allowance amount must be non-negative, got %v", hederr.ErrInvalidAmount, p.Amount)
	}
	decimals, err := n.tokenDecimals(ctx, p.TokenID)
	if err != nil {
		return nil, err
	}
	return &TokenAllowance{
		TokenID: tokenID,
		Owner:   owner,
		Spender: spender,
		Amount:  baseUnits(p.Amount, decimals),
		Memo:    truncateMemo(p.TransactionMemo),
	}, nil
}

func (n *Normaliser) ApproveNFTAllowance(_ context.Context, p params.ApproveNFTAllowance) (*NFTAllowance, error) {
	owner, spender, err := n.allowanceParties(p.OwnerAccountID, p.SpenderAccountID)
	if err != nil {
		return nil, err
	}
	tokenID, err := hedera.TokenIDFromString(p.TokenID)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a valid token id", hederr.ErrValidation, p.TokenID)
	}
	if !p.AllSerials && len(p.SerialNumbers) == 0 {
		return nil, fmt.Errorf("%w: set all_serials or list serial_numbers", hederr.ErrValidation)
	}
	if p.AllSerials && len(p.SerialNumbers) > 0 {
		return nil, fmt.Errorf("%w: all_serials and serial_numbers are mutually exclusive", hederr.ErrValidation)
	}
	for _, serial := range p.SerialNumbers {
		if serial <= 0 {
			return nil, fmt.Errorf("%w: serial number must be positive, got %d", hederr.ErrInvalidAmount, serial)
		}
	}
	return &NFTAllowance{
		TokenID:    tokenID,
		Owner:      owner,
		Spender:    spender,
		AllSerials: p.AllSerials,
		Serials:    p.SerialNumbers,
		Memo:       truncateMemo(p.TransactionMemo),
	}, nil
}
