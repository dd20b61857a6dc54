package normalise

import (
	"context"
	"fmt"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"

	"github.com/hashpilot/hashpilot/internal/hederr"
	"github.com/hashpilot/hashpilot/internal/params"
	"github.com/hashpilot/hashpilot/internal/resolve"
)

type AccountCreate struct {
	Key                           hedera.Key
	InitialBalance                hedera.Hbar
	Memo                          string
	MaxAutomaticTokenAssociations *int32
	TxMemo                        string
	Schedule                      *ScheduleSpec
}

type AccountUpdate struct {
	AccountID                     hedera.AccountID
	Memo                          *string
	MaxAutomaticTokenAssociations *int32
	StakedAccountID               *hedera.AccountID
	DeclineStakingReward          *bool
	TxMemo                        string
	Schedule                      *ScheduleSpec
}

type AccountDelete struct {
	AccountID         hedera.AccountID
	TransferAccountID hedera.AccountID
}

// CreateAccount resolves the new account's key in priority order:
// explicit parameter, then the operator key, then the mirror node key of
// the default account.
func (n *Normaliser) CreateAccount(ctx context.Context, p params.CreateAccount) (*AccountCreate, error) {
	var key hedera.Key
	if p.PublicKey != "" {
		parsed, err := resolve.ParsePublicKey(p.PublicKey)
		if err != nil {
			return nil, err
		}
		key = parsed
	} else {
		parsed, err := n.resolver.DefaultPublicKey(ctx)
		if err != nil {
			return nil, err
		}
		key = parsed
	}

	if p.InitialBalance < 0 {
		return nil, fmt.Errorf("%w: initial balance must not be negative, got %v", hederr.ErrInvalidAmount, p.InitialBalance)
	}
	balance := hedera.HbarFromTinybar(int64(p.InitialBalance * tinybarsPerHbar))

	if err := checkMaxAssociations(p.MaxAutomaticTokenAssociations); err != nil {
		return nil, err
	}

	schedule, err := n.Scheduled(ctx, p.Scheduling)
	if err != nil {
		return nil, err
	}

	return &AccountCreate{
		Key:                           key,
		InitialBalance:                balance,
		Memo:                          truncateMemo(p.AccountMemo),
		MaxAutomaticTokenAssociations: p.MaxAutomaticTokenAssociations,
		TxMemo:                        truncateMemo(p.TransactionMemo),
		Schedule:                      schedule,
	}, nil
}

func (n *Normaliser) UpdateAccount(ctx context.Context, p params.UpdateAccount) (*AccountUpdate, error) {
	acct, err := n.resolver.Account(p.AccountID)
	if err != nil {
		return nil, err
	}
	if err := checkMaxAssociations(p.MaxAutomaticTokenAssociations); err != nil {
		return nil, err
	}
	out := &AccountUpdate{
		AccountID:                     acct,
		MaxAutomaticTokenAssociations: p.MaxAutomaticTokenAssociations,
		DeclineStakingReward:          p.DeclineStakingReward,
		TxMemo:                        truncateMemo(p.TransactionMemo),
	}
	if p.AccountMemo != nil {
		memo := truncateMemo(*p.AccountMemo)
		out.Memo = &memo
	}
	if p.StakedAccountID != "" {
		staked, err := hedera.AccountIDFromString(p.StakedAccountID)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a valid account id", hederr.ErrIdentityResolution, p.StakedAccountID)
		}
		out.StakedAccountID = &staked
	}
	schedule, err := n.Scheduled(ctx, p.Scheduling)
	if err != nil {
		return nil, err
	}
	out.Schedule = schedule
	return out, nil
}

// DeleteAccount requires an explicit target: deleting a defaulted account
// would be deleting the operator by accident. The remaining balance goes
// to transfer_account_id, defaulting to the operator.
func (n *Normaliser) DeleteAccount(_ context.Context, p params.DeleteAccount) (*AccountDelete, error) {
	if !resolve.IsHederaAddress(p.AccountID) {
		return nil, fmt.Errorf("%w: account_id must be an explicit shard.realm.num id", hederr.ErrValidation)
	}
	acct, err := hedera.AccountIDFromString(p.AccountID)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a valid account id", hederr.ErrIdentityResolution, p.AccountID)
	}
	transfer, err := n.resolver.Account(p.TransferAccountID)
	if err != nil {
		return nil, err
	}
	return &AccountDelete{AccountID: acct, TransferAccountID: transfer}, nil
}

// checkMaxAssociations rejects negative association limits before the
// value is narrowed to the SDK's unsigned setter.
func checkMaxAssociations(v *int32) error {
	if v != nil && *v < 0 {
		return fmt.Errorf("%w: max_automatic_token_associations must be non-negative, got %d", hederr.ErrValidation, *v)
	}
	return nil
}
