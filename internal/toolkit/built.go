package toolkit

import (
	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

// Transaction is the uniform facet of the SDK transaction types the
// execution layer needs.
type Transaction interface {
	Execute(client *hedera.Client) (hedera.TransactionResponse, error)
	ToBytes() ([]byte, error)
}

// Built is a constructed ledger operation. When Schedule is non-nil, the
// schedule wrapper is the transaction to submit and Inner is the deferred
// operation embedded in it.
type Built struct {
	Inner    Transaction
	Schedule *hedera.ScheduleCreateTransaction
}

// IsScheduled reports whether the operation is wrapped for deferral.
func (b Built) IsScheduled() bool { return b.Schedule != nil }

// Primary returns the transaction to submit: the schedule wrapper when
// present, the inner transaction otherwise.
func (b Built) Primary() Transaction {
	if b.Schedule != nil {
		return b.Schedule
	}
	return b.Inner
}
