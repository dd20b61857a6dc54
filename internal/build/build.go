// Package build constructs SDK transactions from normalised parameters.
// Builders are pure: no network calls, no client needed. The
// toolkit.Built variant makes the schedule-wrap decision explicit so the
// execution layer can handle both shapes exhaustively.
package build

import (
	"fmt"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"

	"github.com/hashpilot/hashpilot/internal/normalise"
	"github.com/hashpilot/hashpilot/internal/toolkit"
)

// Schedulable is a transaction the ledger can defer behind a schedule.
type Schedulable interface {
	toolkit.Transaction
	Schedule() (*hedera.ScheduleCreateTransaction, error)
}

// maybeWrapInSchedule embeds tx in a schedule-create wrapper when a spec
// is present, applying admin key, payer, expiration, and the wait flag.
// With a nil spec the transaction is returned unchanged.
func maybeWrapInSchedule(tx Schedulable, spec *normalise.ScheduleSpec) (toolkit.Built, error) {
	if spec == nil {
		return toolkit.Built{Inner: tx}, nil
	}
	wrapper, err := tx.Schedule()
	if err != nil {
		return toolkit.Built{}, fmt.Errorf("wrap in schedule: %w", err)
	}
	if spec.AdminKey != nil {
		wrapper.SetAdminKey(spec.AdminKey)
	}
	if spec.PayerAccountID != nil {
		wrapper.SetPayerAccountID(*spec.PayerAccountID)
	}
	if spec.ExpirationTime != nil {
		wrapper.SetExpirationTime(*spec.ExpirationTime)
	}
	if spec.WaitForExpiry {
		wrapper.SetWaitForExpiry(true)
	}
	return toolkit.Built{Inner: tx, Schedule: wrapper}, nil
}
