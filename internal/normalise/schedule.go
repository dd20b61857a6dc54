package normalise

import (
	"context"
	"fmt"
	"time"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"

	"github.com/hashpilot/hashpilot/internal/hederr"
	"github.com/hashpilot/hashpilot/internal/params"
)

// ScheduleSpec is the resolved form of a scheduling block. A nil
// *ScheduleSpec on a normalised struct means "execute immediately".
type ScheduleSpec struct {
	AdminKey       hedera.Key
	PayerAccountID *hedera.AccountID
	ExpirationTime *time.Time
	WaitForExpiry  bool
}

// Scheduled resolves the shared scheduling block. When the block is
// absent or is_scheduled is false, all other fields are ignored and the
// result is nil.
func (n *Normaliser) Scheduled(ctx context.Context, p *params.Scheduling) (*ScheduleSpec, error) {
	if p == nil || !p.IsScheduled {
		return nil, nil
	}

	spec := &ScheduleSpec{WaitForExpiry: p.WaitForExpiry}

	adminKey, err := n.resolver.Key(ctx, p.AdminKey)
	if err != nil {
		return nil, fmt.Errorf("schedule admin key: %w", err)
	}
	spec.AdminKey = adminKey

	// Payer is never defaulted: absent means the schedule creator pays.
	if p.PayerAccountID != "" {
		payer, err := hedera.AccountIDFromString(p.PayerAccountID)
		if err != nil {
			return nil, fmt.Errorf("%w: schedule payer %q is not a valid account id", hederr.ErrIdentityResolution, p.PayerAccountID)
		}
		spec.PayerAccountID = &payer
	}

	if p.ExpirationTime != "" {
		exp, err := time.Parse(time.RFC3339, p.ExpirationTime)
		if err != nil {
			return nil, fmt.Errorf("%w: expiration_time must be ISO-8601, got %q", hederr.ErrValidation, p.ExpirationTime)
		}
		spec.ExpirationTime = &exp
	}

	return spec, nil
}
