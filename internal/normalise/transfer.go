package normalise

import (
	"context"
	"fmt"
	"strconv"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"

	"github.com/hashpilot/hashpilot/internal/hederr"
	"github.com/hashpilot/hashpilot/internal/params"
)

// HbarTransfer is a normalised hbar movement. Ledger maps canonical
// account ids to signed tinybar deltas and always sums to zero; Source
// carries the debit line, marked as an allowance spend when Approved.
type HbarTransfer struct {
	Ledger   map[string]int64
	Source   string
	Approved bool
	Memo     string
	Schedule *ScheduleSpec
}

// TokenTransfer is a normalised fungible-token movement in base units.
// Same ledger shape as HbarTransfer.
type TokenTransfer struct {
	TokenID  hedera.TokenID
	Ledger   map[string]int64
	Source   string
	Approved bool
	Memo     string
	Schedule *ScheduleSpec
}

// NFTTransfer moves one serial of a non-fungible token.
type NFTTransfer struct {
	NftID    hedera.NftID
	Sender   hedera.AccountID
	Receiver hedera.AccountID
	Approved bool
	Memo     string
	Schedule *ScheduleSpec
}

// buildLedger nets the recipient lines into per-account deltas and debits
// the source with the aggregate, so the ledger always sums to zero.
// toUnits converts one display amount; it must reject non-positive input.
func buildLedger(targets []params.TransferTarget, source string, toUnits func(float64) (int64, error)) (map[string]int64, error) {
	ledger := make(map[string]int64, len(targets)+1)
	var total int64
	for _, target := range targets {
		acct, err := hedera.AccountIDFromString(target.AccountID)
		if err != nil {
			return nil, fmt.Errorf("%w: recipient %q is not a valid account id", hederr.ErrIdentityResolution, target.AccountID)
		}
		amount, err := toUnits(target.Amount)
		if err != nil {
			return nil, err
		}
		ledger[acct.String()] += amount
		total += amount
	}
	ledger[source] -= total
	return ledger, nil
}

func (n *Normaliser) TransferHbar(ctx context.Context, p params.TransferHbar) (*HbarTransfer, error) {
	source, err := n.resolver.AccountString(p.SourceAccountID)
	if err != nil {
		return nil, err
	}
	ledger, err := buildLedger(p.Transfers, source, tinybars)
	if err != nil {
		return nil, err
	}
	schedule, err := n.Scheduled(ctx, p.Scheduling)
	if err != nil {
		return nil, err
	}
	return &HbarTransfer{
		Ledger:   ledger,
		Source:   source,
		Memo:     truncateMemo(p.TransactionMemo),
		Schedule: schedule,
	}, nil
}

// TransferHbarWithAllowance spends hbar from an allowance granted by the
// owner. The owner must be explicit: defaulting it would silently spend
// the wrong account's allowance.
func (n *Normaliser) TransferHbarWithAllowance(ctx context.Context, p params.TransferHbarWithAllowance) (*HbarTransfer, error) {
	if p.SourceAccountID == "" {
		return nil, fmt.Errorf("%w: source_account_id is required for allowance transfers", hederr.ErrMissingOwner)
	}
	source, err := n.resolver.AccountString(p.SourceAccountID)
	if err != nil {
		return nil, err
	}
	ledger, err := buildLedger(p.Transfers, source, tinybars)
	if err != nil {
		return nil, err
	}
	schedule, err := n.Scheduled(ctx, p.Scheduling)
	if err != nil {
		return nil, err
	}
	return &HbarTransfer{
		Ledger:   ledger,
		Source:   source,
		Approved: true,
		Memo:     truncateMemo(p.TransactionMemo),
		Schedule: schedule,
	}, nil
}

func (n *Normaliser) TransferTokenWithAllowance(ctx context.Context, p params.TransferTokenWithAllowance) (*TokenTransfer, error) {
	if p.SourceAccountID == "" {
		return nil, fmt.Errorf("%w: source_account_id is required for allowance transfers", hederr.ErrMissingOwner)
	}
	source, err := n.resolver.AccountString(p.SourceAccountID)
	if err != nil {
		return nil, err
	}
	tokenID, err := hedera.TokenIDFromString(p.TokenID)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a valid token id", hederr.ErrValidation, p.TokenID)
	}
	decimals, err := n.tokenDecimals(ctx, p.TokenID)
	if err != nil {
		return nil, err
	}
	ledger, err := buildLedger(p.Transfers, source, func(display float64) (int64, error) {
		amount := baseUnits(display, decimals)
		if amount <= 0 {
			return 0, fmt.Errorf("%w: token amount must be positive, got %v", hederr.ErrInvalidAmount, display)
		}
		return amount, nil
	})
	if err != nil {
		return nil, err
	}
	schedule, err := n.Scheduled(ctx, p.Scheduling)
	if err != nil {
		return nil, err
	}
	return &TokenTransfer{
		TokenID:  tokenID,
		Ledger:   ledger,
		Source:   source,
		Approved: true,
		Memo:     truncateMemo(p.TransactionMemo),
		Schedule: schedule,
	}, nil
}

func (n *Normaliser) TransferNFTWithAllowance(ctx context.Context, p params.TransferNFTWithAllowance) (*NFTTransfer, error) {
	if p.SourceAccountID == "" {
		return nil, fmt.Errorf("%w: source_account_id is required for allowance transfers", hederr.ErrMissingOwner)
	}
	sender, err := hedera.AccountIDFromString(p.SourceAccountID)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a valid account id", hederr.ErrIdentityResolution, p.SourceAccountID)
	}
	receiver, err := hedera.AccountIDFromString(p.ReceiverAccountID)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a valid account id", hederr.ErrIdentityResolution, p.ReceiverAccountID)
	}
	tokenID, err := hedera.TokenIDFromString(p.TokenID)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a valid token id", hederr.ErrValidation, p.TokenID)
	}
	if p.SerialNumber <= 0 {
		return nil, fmt.Errorf("%w: serial number must be positive, got %d", hederr.ErrInvalidAmount, p.SerialNumber)
	}
	schedule, err := n.Scheduled(ctx, p.Scheduling)
	if err != nil {
		return nil, err
	}
	return &NFTTransfer{
		NftID:    hedera.NftID{TokenID: tokenID, SerialNumber: p.SerialNumber},
		Sender:   sender,
		Receiver: receiver,
		Approved: true,
		Memo:     truncateMemo(p.TransactionMemo),
		Schedule: schedule,
	}, nil
}

// tokenDecimals reads a token's decimal count from the mirror node. The
// API encodes it as a string.
func (n *Normaliser) tokenDecimals(ctx context.Context, tokenID string) (int, error) {
	info, err := n.mirror.GetTokenInfo(ctx, tokenID)
	if err != nil {
		return 0, fmt.Errorf("%w for token %s: %v", hederr.ErrDecimalsUnavailable, tokenID, err)
	}
	decimals, err := strconv.Atoi(info.Decimals)
	if err != nil {
		return 0, fmt.Errorf("%w for token %s: bad decimals %q", hederr.ErrDecimalsUnavailable, tokenID, info.Decimals)
	}
	return decimals, nil
}
