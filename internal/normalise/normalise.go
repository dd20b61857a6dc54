// Package normalise converts raw tool parameters into ledger-ready
// values: display amounts become integer base units, loose identities
// become resolved account/token ids, and scheduling blocks become
// concrete schedule specs. Each operation has one normaliser; the
// output structs are consumed only by the builders.
package normalise

import (
	"fmt"
	"math"

	"github.com/hashpilot/hashpilot/internal/config"
	"github.com/hashpilot/hashpilot/internal/hederr"
	"github.com/hashpilot/hashpilot/internal/mirror"
	"github.com/hashpilot/hashpilot/internal/resolve"
)

const (
	tinybarsPerHbar = 100_000_000
	memoMaxLen      = 100
)

// Normaliser holds the collaborators shared by every operation.
type Normaliser struct {
	cctx     config.Context
	resolver *resolve.Resolver
	mirror   mirror.Service
}

func New(cctx config.Context, resolver *resolve.Resolver, svc mirror.Service) *Normaliser {
	return &Normaliser{cctx: cctx, resolver: resolver, mirror: svc}
}

// tinybars converts a display hbar amount to tinybars, rejecting
// non-positive results.
func tinybars(display float64) (int64, error) {
	amount := int64(math.Round(display * tinybarsPerHbar))
	if amount <= 0 {
		return 0, fmt.Errorf("%w: hbar amount must be positive, got %v", hederr.ErrInvalidAmount, display)
	}
	return amount, nil
}

// baseUnits converts a display token amount to base units using the
// token's decimal count, rounding to the nearest integer.
func baseUnits(display float64, decimals int) int64 {
	return int64(math.Round(display * math.Pow10(decimals)))
}

// truncateMemo caps free-text memos at the ledger's 100-character limit.
// Oversized memos are truncated, not rejected.
func truncateMemo(memo string) string {
	runes := []rune(memo)
	if len(runes) <= memoMaxLen {
		return memo
	}
	return string(runes[:memoMaxLen])
}
