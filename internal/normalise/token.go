package normalise

import (
	"context"
	"fmt"
	"math"
	"math/big"
	"strings"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"

	"github.com/hashpilot/hashpilot/internal/erc20"
	"github.com/hashpilot/hashpilot/internal/hederr"
	"github.com/hashpilot/hashpilot/internal/params"
	"github.com/hashpilot/hashpilot/internal/resolve"
)

// defaultMaxSupply is the display-unit maximum applied when a finite
// supply is requested without an explicit max.
const defaultMaxSupply = 1_000_000

// FungibleTokenCreate holds ledger-ready token creation fields. Supply
// amounts are in base units.
type FungibleTokenCreate struct {
	Name          string
	Symbol        string
	Decimals      uint
	InitialSupply uint64
	SupplyType    hedera.TokenSupplyType
	MaxSupply     int64
	Treasury      hedera.AccountID
	SupplyKey     hedera.Key
	Memo          string
	TxMemo        string
	Schedule      *ScheduleSpec
}

type FungibleTokenMint struct {
	TokenID  hedera.TokenID
	Amount   uint64
	TxMemo   string
	Schedule *ScheduleSpec
}

type TokenUpdate struct {
	TokenID     hedera.TokenID
	Name        string
	Symbol      string
	Memo        *string
	Treasury    *hedera.AccountID
	AdminKey    hedera.Key
	SupplyKey   hedera.Key
	WipeKey     hedera.Key
	FreezeKey   hedera.Key
	MetadataKey hedera.Key
	TxMemo      string
	Schedule    *ScheduleSpec
}

type TokenDelete struct {
	TokenID hedera.TokenID
	TxMemo  string
}

type TokenAssociate struct {
	AccountID hedera.AccountID
	TokenIDs  []hedera.TokenID
}

// TokenDissociate shares the associate shape.
type TokenDissociate = TokenAssociate

// ContractExecute is a normalised contract call; used for ERC-20
// deployment through the factory contract.
type ContractExecute struct {
	ContractID hedera.ContractID
	Gas        uint64
	Parameters []byte
	TxMemo     string
	Schedule   *ScheduleSpec
}

// CreateFungibleToken applies the token supply rules: display amounts
// scale by 10^decimals, a max supply implies FINITE, FINITE without a max
// defaults to 1,000,000, and a FINITE token may not start at zero supply.
func (n *Normaliser) CreateFungibleToken(ctx context.Context, p params.CreateFungibleToken) (*FungibleTokenCreate, error) {
	decimals := 0
	if p.Decimals != nil {
		decimals = *p.Decimals
	}
	if decimals < 0 {
		return nil, fmt.Errorf("%w: decimals must be non-negative, got %d", hederr.ErrSupplyConstraint, decimals)
	}
	factor := int64(math.Pow10(decimals))

	supplyType, err := resolveSupplyType(p.SupplyType, p.MaxSupply != nil)
	if err != nil {
		return nil, err
	}
	finite := supplyType == hedera.TokenSupplyTypeFinite

	var maxSupply int64
	if finite {
		if p.MaxSupply != nil {
			maxSupply = baseUnits(*p.MaxSupply, decimals)
		} else {
			maxSupply = defaultMaxSupply * factor
		}
	}

	var initialDisplay float64
	if p.InitialSupply != nil {
		initialDisplay = *p.InitialSupply
	}
	if initialDisplay < 0 {
		return nil, fmt.Errorf("%w: initial supply must not be negative, got %v", hederr.ErrInvalidAmount, initialDisplay)
	}
	initialSupply := baseUnits(initialDisplay, decimals)
	if finite && initialSupply == 0 {
		// The ledger rejects finite-supply tokens with zero initial supply.
		initialSupply = factor
	}
	if finite && initialSupply > maxSupply {
		return nil, fmt.Errorf("%w: initial supply (%d) cannot exceed max supply (%d)", hederr.ErrSupplyConstraint, initialSupply, maxSupply)
	}

	treasury, err := n.resolver.Account(p.TreasuryAccountID)
	if err != nil {
		return nil, err
	}

	// A finite supply needs a supply key to mint up to the max, so the
	// key is set whenever the supply is finite or explicitly requested.
	var supplyKey hedera.Key
	if p.IsSupplyKey || finite {
		key, err := n.resolver.AccountPublicKey(ctx, treasury.String())
		if err != nil {
			return nil, fmt.Errorf("supply key: %w", err)
		}
		supplyKey = key
	}

	schedule, err := n.Scheduled(ctx, p.Scheduling)
	if err != nil {
		return nil, err
	}

	return &FungibleTokenCreate{
		Name:          p.TokenName,
		Symbol:        p.TokenSymbol,
		Decimals:      uint(decimals),
		InitialSupply: uint64(initialSupply),
		SupplyType:    supplyType,
		MaxSupply:     maxSupply,
		Treasury:      treasury,
		SupplyKey:     supplyKey,
		Memo:          truncateMemo(p.TokenMemo),
		TxMemo:        truncateMemo(p.TransactionMemo),
		Schedule:      schedule,
	}, nil
}

// resolveSupplyType maps the raw supply type, defaulting to INFINITE
// unless a max supply implies FINITE. An explicit INFINITE combined with
// a max supply is contradictory.
func resolveSupplyType(raw string, hasMaxSupply bool) (hedera.TokenSupplyType, error) {
	switch strings.ToLower(raw) {
	case "finite":
		return hedera.TokenSupplyTypeFinite, nil
	case "infinite":
		if hasMaxSupply {
			return 0, fmt.Errorf("%w: max_supply cannot be set with INFINITE supply type", hederr.ErrSupplyConstraint)
		}
		return hedera.TokenSupplyTypeInfinite, nil
	case "":
		if hasMaxSupply {
			return hedera.TokenSupplyTypeFinite, nil
		}
		return hedera.TokenSupplyTypeInfinite, nil
	default:
		return 0, fmt.Errorf("%w: supply_type must be finite or infinite, got %q", hederr.ErrValidation, raw)
	}
}

// MintFungibleToken converts a display amount to base units using the
// token's decimals from the mirror node.
func (n *Normaliser) MintFungibleToken(ctx context.Context, p params.MintFungibleToken) (*FungibleTokenMint, error) {
	tokenID, err := hedera.TokenIDFromString(p.TokenID)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a valid token id", hederr.ErrValidation, p.TokenID)
	}
	decimals, err := n.tokenDecimals(ctx, p.TokenID)
	if err != nil {
		return nil, err
	}
	amount := baseUnits(p.Amount, decimals)
	if amount <= 0 {
		return nil, fmt.Errorf("%w: mint amount must be positive, got %v", hederr.ErrInvalidAmount, p.Amount)
	}
	schedule, err := n.Scheduled(ctx, p.Scheduling)
	if err != nil {
		return nil, err
	}
	return &FungibleTokenMint{
		TokenID:  tokenID,
		Amount:   uint64(amount),
		TxMemo:   truncateMemo(p.TransactionMemo),
		Schedule: schedule,
	}, nil
}

func (n *Normaliser) UpdateToken(ctx context.Context, p params.UpdateToken) (*TokenUpdate, error) {
	tokenID, err := hedera.TokenIDFromString(p.TokenID)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a valid token id", hederr.ErrValidation, p.TokenID)
	}
	out := &TokenUpdate{
		TokenID: tokenID,
		Name:    p.TokenName,
		Symbol:  p.TokenSymbol,
		TxMemo:  truncateMemo(p.TransactionMemo),
	}
	if p.TokenMemo != nil {
		memo := truncateMemo(*p.TokenMemo)
		out.Memo = &memo
	}
	if p.TreasuryAccountID != "" {
		treasury, err := hedera.AccountIDFromString(p.TreasuryAccountID)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a valid account id", hederr.ErrIdentityResolution, p.TreasuryAccountID)
		}
		out.Treasury = &treasury
	}
	for _, k := range []struct {
		in   resolve.KeyInput
		dest *hedera.Key
	}{
		{p.AdminKey, &out.AdminKey},
		{p.SupplyKey, &out.SupplyKey},
		{p.WipeKey, &out.WipeKey},
		{p.FreezeKey, &out.FreezeKey},
		{p.MetadataKey, &out.MetadataKey},
	} {
		key, err := n.resolver.Key(ctx, k.in)
		if err != nil {
			return nil, err
		}
		*k.dest = key
	}
	schedule, err := n.Scheduled(ctx, p.Scheduling)
	if err != nil {
		return nil, err
	}
	out.Schedule = schedule
	return out, nil
}

func (n *Normaliser) DeleteToken(_ context.Context, p params.DeleteToken) (*TokenDelete, error) {
	tokenID, err := hedera.TokenIDFromString(p.TokenID)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a valid token id", hederr.ErrValidation, p.TokenID)
	}
	return &TokenDelete{TokenID: tokenID, TxMemo: truncateMemo(p.TransactionMemo)}, nil
}

func (n *Normaliser) AssociateToken(_ context.Context, p params.AssociateToken) (*TokenAssociate, error) {
	return n.associate(p.AccountID, p.TokenIDs)
}

func (n *Normaliser) DissociateToken(_ context.Context, p params.DissociateToken) (*TokenDissociate, error) {
	return n.associate(p.AccountID, p.TokenIDs)
}

func (n *Normaliser) associate(accountID string, tokenIDs []string) (*TokenAssociate, error) {
	acct, err := n.resolver.Account(accountID)
	if err != nil {
		return nil, err
	}
	tokens := make([]hedera.TokenID, 0, len(tokenIDs))
	for _, raw := range tokenIDs {
		tokenID, err := hedera.TokenIDFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a valid token id", hederr.ErrValidation, raw)
		}
		tokens = append(tokens, tokenID)
	}
	return &TokenAssociate{AccountID: acct, TokenIDs: tokens}, nil
}

// CreateERC20 encodes a deployToken call against the factory contract.
// Supply here scales like a native EVM token: base units = display ×
// 10^decimals, decimals defaulting to 18.
func (n *Normaliser) CreateERC20(_ context.Context, p params.CreateERC20) (*ContractExecute, error) {
	decimals := 18
	if p.Decimals != nil {
		decimals = *p.Decimals
	}
	if decimals < 0 || decimals > 255 {
		return nil, fmt.Errorf("%w: decimals must be between 0 and 255, got %d", hederr.ErrValidation, decimals)
	}

	initialSupply := new(big.Int)
	if p.InitialSupply != nil {
		if *p.InitialSupply < 0 {
			return nil, fmt.Errorf("%w: initial supply must not be negative, got %v", hederr.ErrInvalidAmount, *p.InitialSupply)
		}
		display := new(big.Float).SetFloat64(*p.InitialSupply)
		scale := new(big.Float).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil))
		display.Mul(display, scale).Int(initialSupply)
	}

	data, err := erc20.PackDeployToken(p.TokenName, p.TokenSymbol, uint8(decimals), initialSupply)
	if err != nil {
		return nil, err
	}

	factory, err := erc20.FactoryContractID(n.cctx.Network, n.cctx.ERC20FactoryID)
	if err != nil {
		return nil, err
	}
	contractID, err := hedera.ContractIDFromString(factory)
	if err != nil {
		return nil, fmt.Errorf("%w: factory contract id %q is invalid", hederr.ErrValidation, factory)
	}

	return &ContractExecute{
		ContractID: contractID,
		Gas:        erc20.DeployGas,
		Parameters: data,
	}, nil
}
