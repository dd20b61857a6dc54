package normalise

import (
	"context"
	"fmt"
	"regexp"

	"github.com/hashpilot/hashpilot/internal/hederr"
	"github.com/hashpilot/hashpilot/internal/params"
)

// TransactionRecordQuery holds a mirror-format transaction id.
type TransactionRecordQuery struct {
	TransactionID string
	Nonce         *int
}

type AccountBalanceQuery struct {
	AccountID string
}

var (
	sdkTxIDPattern    = regexp.MustCompile(`^(\d+\.\d+\.\d+)@(\d+)\.(\d+)$`)
	mirrorTxIDPattern = regexp.MustCompile(`^\d+\.\d+\.\d+-\d+-\d+$`)
)

// TransactionID converts an SDK-format transaction id
// (shard.realm.num@seconds.nanos) to the mirror node format
// (shard.realm.num-seconds-nanos). Mirror-format ids pass through.
func TransactionID(raw string) (string, error) {
	if m := sdkTxIDPattern.FindStringSubmatch(raw); m != nil {
		return fmt.Sprintf("%s-%s-%s", m[1], m[2], m[3]), nil
	}
	if mirrorTxIDPattern.MatchString(raw) {
		return raw, nil
	}
	return "", fmt.Errorf("%w: %q matches neither shard.realm.num@seconds.nanos nor shard.realm.num-seconds-nanos", hederr.ErrInvalidTransactionID, raw)
}

func (n *Normaliser) GetTransactionRecord(_ context.Context, p params.GetTransactionRecord) (*TransactionRecordQuery, error) {
	txID, err := TransactionID(p.TransactionID)
	if err != nil {
		return nil, err
	}
	return &TransactionRecordQuery{TransactionID: txID, Nonce: p.Nonce}, nil
}

func (n *Normaliser) GetAccountBalance(_ context.Context, p params.GetAccountBalance) (*AccountBalanceQuery, error) {
	acct, err := n.resolver.AccountString(p.AccountID)
	if err != nil {
		return nil, err
	}
	return &AccountBalanceQuery{AccountID: acct}, nil
}
