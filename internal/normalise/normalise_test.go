package normalise

import (
	"context"
	"strings"
	"testing"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashpilot/hashpilot/internal/config"
	"github.com/hashpilot/hashpilot/internal/hederr"
	"github.com/hashpilot/hashpilot/internal/mirror"
	"github.com/hashpilot/hashpilot/internal/params"
	"github.com/hashpilot/hashpilot/internal/resolve"
	"github.com/hashpilot/hashpilot/internal/testutil"
)

const operatorID = "0.0.1002"

func newNormaliser(t *testing.T, fm *testutil.FakeMirror) (*Normaliser, hedera.PublicKey) {
	t.Helper()
	if fm == nil {
		fm = &testutil.FakeMirror{}
	}
	priv, err := hedera.PrivateKeyGenerateEd25519()
	require.NoError(t, err)
	pub := priv.PublicKey()
	cctx := config.Context{Mode: config.ModeAutonomous, AccountID: operatorID, Network: "testnet"}
	resolver := resolve.New(cctx, &pub, fm)
	return New(cctx, resolver, fm), pub
}

func ledgerSum(ledger map[string]int64) int64 {
	var sum int64
	for _, delta := range ledger {
		sum += delta
	}
	return sum
}

func TestTransferHbar(t *testing.T) {
	n, _ := newNormaliser(t, nil)
	ctx := context.Background()

	t.Run("display amounts become tinybars", func(t *testing.T) {
		out, err := n.TransferHbar(ctx, params.TransferHbar{
			Transfers: []params.TransferTarget{{AccountID: "0.0.5005", Amount: 2.5}},
		})
		require.NoError(t, err)
		assert.EqualValues(t, 250_000_000, out.Ledger["0.0.5005"])
		assert.EqualValues(t, -250_000_000, out.Ledger[operatorID])
		assert.Equal(t, operatorID, out.Source)
		assert.False(t, out.Approved)
		assert.Zero(t, ledgerSum(out.Ledger))
	})

	t.Run("recipient lines net-sum", func(t *testing.T) {
		out, err := n.TransferHbar(ctx, params.TransferHbar{
			Transfers: []params.TransferTarget{
				{AccountID: "0.0.5005", Amount: 1},
				{AccountID: "0.0.5005", Amount: 2},
				{AccountID: "0.0.6006", Amount: 0.5},
			},
		})
		require.NoError(t, err)
		assert.EqualValues(t, 300_000_000, out.Ledger["0.0.5005"])
		assert.EqualValues(t, 50_000_000, out.Ledger["0.0.6006"])
		assert.Zero(t, ledgerSum(out.Ledger))
	})

	t.Run("explicit source", func(t *testing.T) {
		out, err := n.TransferHbar(ctx, params.TransferHbar{
			Transfers:       []params.TransferTarget{{AccountID: "0.0.5005", Amount: 1}},
			SourceAccountID: "0.0.7007",
		})
		require.NoError(t, err)
		assert.Equal(t, "0.0.7007", out.Source)
		assert.EqualValues(t, -100_000_000, out.Ledger["0.0.7007"])
	})

	t.Run("zero amount rejected", func(t *testing.T) {
		_, err := n.TransferHbar(ctx, params.TransferHbar{
			Transfers: []params.TransferTarget{{AccountID: "0.0.5005", Amount: 0}},
		})
		assert.ErrorIs(t, err, hederr.ErrInvalidAmount)
	})

	t.Run("negative amount rejected", func(t *testing.T) {
		_, err := n.TransferHbar(ctx, params.TransferHbar{
			Transfers: []params.TransferTarget{{AccountID: "0.0.5005", Amount: -3}},
		})
		assert.ErrorIs(t, err, hederr.ErrInvalidAmount)
	})

	t.Run("bad recipient id", func(t *testing.T) {
		_, err := n.TransferHbar(ctx, params.TransferHbar{
			Transfers: []params.TransferTarget{{AccountID: "bogus", Amount: 1}},
		})
		assert.ErrorIs(t, err, hederr.ErrIdentityResolution)
	})

	t.Run("memo truncated to 100 chars", func(t *testing.T) {
		out, err := n.TransferHbar(ctx, params.TransferHbar{
			Transfers:       []params.TransferTarget{{AccountID: "0.0.5005", Amount: 1}},
			TransactionMemo: strings.Repeat("m", 150),
		})
		require.NoError(t, err)
		assert.Len(t, out.Memo, 100)
	})

	t.Run("idempotent", func(t *testing.T) {
		p := params.TransferHbar{Transfers: []params.TransferTarget{{AccountID: "0.0.5005", Amount: 1.25}}}
		first, err := n.TransferHbar(ctx, p)
		require.NoError(t, err)
		second, err := n.TransferHbar(ctx, p)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}

func TestTransferHbarWithAllowance(t *testing.T) {
	n, _ := newNormaliser(t, nil)
	ctx := context.Background()

	t.Run("owner required", func(t *testing.T) {
		_, err := n.TransferHbarWithAllowance(ctx, params.TransferHbarWithAllowance{
			Transfers: []params.TransferTarget{{AccountID: "0.0.5005", Amount: 1}},
		})
		assert.ErrorIs(t, err, hederr.ErrMissingOwner)
	})

	t.Run("marks the debit as approved", func(t *testing.T) {
		out, err := n.TransferHbarWithAllowance(ctx, params.TransferHbarWithAllowance{
			Transfers:       []params.TransferTarget{{AccountID: "0.0.5005", Amount: 3}},
			SourceAccountID: "0.0.9009",
		})
		require.NoError(t, err)
		assert.True(t, out.Approved)
		assert.Equal(t, "0.0.9009", out.Source)
		assert.EqualValues(t, -300_000_000, out.Ledger["0.0.9009"])
		assert.Zero(t, ledgerSum(out.Ledger))
	})
}

func TestTransferTokenWithAllowance(t *testing.T) {
	fm := &testutil.FakeMirror{
		Tokens: map[string]*mirror.TokenInfo{
			"0.0.4242": {TokenID: "0.0.4242", Decimals: "2"},
		},
	}
	n, _ := newNormaliser(t, fm)
	ctx := context.Background()

	t.Run("scales by mirror decimals", func(t *testing.T) {
		out, err := n.TransferTokenWithAllowance(ctx, params.TransferTokenWithAllowance{
			TokenID:         "0.0.4242",
			SourceAccountID: "0.0.9009",
			Transfers:       []params.TransferTarget{{AccountID: "0.0.5005", Amount: 5}},
		})
		require.NoError(t, err)
		assert.EqualValues(t, 500, out.Ledger["0.0.5005"])
		assert.EqualValues(t, -500, out.Ledger["0.0.9009"])
		assert.True(t, out.Approved)
		assert.Zero(t, ledgerSum(out.Ledger))
	})

	t.Run("unknown token", func(t *testing.T) {
		_, err := n.TransferTokenWithAllowance(ctx, params.TransferTokenWithAllowance{
			TokenID:         "0.0.999999",
			SourceAccountID: "0.0.9009",
			Transfers:       []params.TransferTarget{{AccountID: "0.0.5005", Amount: 5}},
		})
		assert.ErrorIs(t, err, hederr.ErrDecimalsUnavailable)
	})

	t.Run("owner required", func(t *testing.T) {
		_, err := n.TransferTokenWithAllowance(ctx, params.TransferTokenWithAllowance{
			TokenID:   "0.0.4242",
			Transfers: []params.TransferTarget{{AccountID: "0.0.5005", Amount: 5}},
		})
		assert.ErrorIs(t, err, hederr.ErrMissingOwner)
	})
}

func TestTransferNFTWithAllowance(t *testing.T) {
	n, _ := newNormaliser(t, nil)
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		out, err := n.TransferNFTWithAllowance(ctx, params.TransferNFTWithAllowance{
			TokenID:           "0.0.4242",
			SerialNumber:      7,
			SourceAccountID:   "0.0.9009",
			ReceiverAccountID: "0.0.5005",
		})
		require.NoError(t, err)
		assert.EqualValues(t, 7, out.NftID.SerialNumber)
		assert.Equal(t, "0.0.9009", out.Sender.String())
		assert.Equal(t, "0.0.5005", out.Receiver.String())
		assert.True(t, out.Approved)
	})

	t.Run("owner required", func(t *testing.T) {
		_, err := n.TransferNFTWithAllowance(ctx, params.TransferNFTWithAllowance{
			TokenID: "0.0.4242", SerialNumber: 7, ReceiverAccountID: "0.0.5005",
		})
		assert.ErrorIs(t, err, hederr.ErrMissingOwner)
	})

	t.Run("bad serial", func(t *testing.T) {
		_, err := n.TransferNFTWithAllowance(ctx, params.TransferNFTWithAllowance{
			TokenID: "0.0.4242", SerialNumber: 0, SourceAccountID: "0.0.9009", ReceiverAccountID: "0.0.5005",
		})
		assert.ErrorIs(t, err, hederr.ErrInvalidAmount)
	})
}

func TestApproveHbarAllowance(t *testing.T) {
	n, _ := newNormaliser(t, nil)
	ctx := context.Background()

	t.Run("owner defaults to operator", func(t *testing.T) {
		out, err := n.ApproveHbarAllowance(ctx, params.ApproveHbarAllowance{
			SpenderAccountID: "0.0.5005",
			Amount:           2.5,
		})
		require.NoError(t, err)
		assert.Equal(t, operatorID, out.Owner.String())
		assert.Equal(t, "0.0.5005", out.Spender.String())
		assert.EqualValues(t, 250_000_000, out.Amount.AsTinybar())
	})

	t.Run("explicit owner", func(t *testing.T) {
		out, err := n.ApproveHbarAllowance(ctx, params.ApproveHbarAllowance{
			OwnerAccountID:   "0.0.9009",
			SpenderAccountID: "0.0.5005",
			Amount:           1,
		})
		require.NoError(t, err)
		assert.Equal(t, "0.0.9009", out.Owner.String())
	})

	t.Run("zero amount revokes", func(t *testing.T) {
		out, err := n.ApproveHbarAllowance(ctx, params.ApproveHbarAllowance{
			SpenderAccountID: "0.0.5005",
			Amount:           0,
		})
		require.NoError(t, err)
		assert.Zero(t, out.Amount.AsTinybar())
	})

	t.Run("negative amount rejected", func(t *testing.T) {
		_, err := n.ApproveHbarAllowance(ctx, params.ApproveHbarAllowance{
			SpenderAccountID: "0.0.5005",
			Amount:           -1,
		})
		assert.ErrorIs(t, err, hederr.ErrInvalidAmount)
	})

	t.Run("bad spender", func(t *testing.T) {
		_, err := n.ApproveHbarAllowance(ctx, params.ApproveHbarAllowance{
			SpenderAccountID: "bogus",
			Amount:           1,
		})
		assert.ErrorIs(t, err, hederr.ErrIdentityResolution)
	})
}

func TestApproveTokenAllowance(t *testing.T) {
	fm := &testutil.FakeMirror{
		Tokens: map[string]*mirror.TokenInfo{
			"0.0.4242": {TokenID: "0.0.4242", Decimals: "2"},
		},
	}
	n, _ := newNormaliser(t, fm)
	ctx := context.Background()

	t.Run("scales by mirror decimals", func(t *testing.T) {
		out, err := n.ApproveTokenAllowance(ctx, params.ApproveTokenAllowance{
			SpenderAccountID: "0.0.5005",
			TokenID:          "0.0.4242",
			Amount:           3.5,
		})
		require.NoError(t, err)
		assert.Equal(t, operatorID, out.Owner.String())
		assert.EqualValues(t, 350, out.Amount)
	})

	t.Run("unknown token", func(t *testing.T) {
		_, err := n.ApproveTokenAllowance(ctx, params.ApproveTokenAllowance{
			SpenderAccountID: "0.0.5005",
			TokenID:          "0.0.9999",
			Amount:           1,
		})
		assert.ErrorIs(t, err, hederr.ErrDecimalsUnavailable)
	})

	t.Run("bad token id", func(t *testing.T) {
		_, err := n.ApproveTokenAllowance(ctx, params.ApproveTokenAllowance{
			SpenderAccountID: "0.0.5005",
			TokenID:          "bogus",
			Amount:           1,
		})
		assert.ErrorIs(t, err, hederr.ErrValidation)
	})
}

func TestApproveNFTAllowance(t *testing.T) {
	n, _ := newNormaliser(t, nil)
	ctx := context.Background()

	t.Run("specific serials", func(t *testing.T) {
		out, err := n.ApproveNFTAllowance(ctx, params.ApproveNFTAllowance{
			SpenderAccountID: "0.0.5005",
			TokenID:          "0.0.4242",
			SerialNumbers:    []int64{1, 7},
		})
		require.NoError(t, err)
		assert.Equal(t, []int64{1, 7}, out.Serials)
		assert.False(t, out.AllSerials)
	})

	t.Run("all serials", func(t *testing.T) {
		out, err := n.ApproveNFTAllowance(ctx, params.ApproveNFTAllowance{
			SpenderAccountID: "0.0.5005",
			TokenID:          "0.0.4242",
			AllSerials:       true,
		})
		require.NoError(t, err)
		assert.True(t, out.AllSerials)
	})

	t.Run("neither serials nor all_serials", func(t *testing.T) {
		_, err := n.ApproveNFTAllowance(ctx, params.ApproveNFTAllowance{
			SpenderAccountID: "0.0.5005",
			TokenID:          "0.0.4242",
		})
		assert.ErrorIs(t, err, hederr.ErrValidation)
	})

	t.Run("all_serials with explicit serials rejected", func(t *testing.T) {
		_, err := n.ApproveNFTAllowance(ctx, params.ApproveNFTAllowance{
			SpenderAccountID: "0.0.5005",
			TokenID:          "0.0.4242",
			AllSerials:       true,
			SerialNumbers:    []int64{1},
		})
		assert.ErrorIs(t, err, hederr.ErrValidation)
	})

	t.Run("non-positive serial rejected", func(t *testing.T) {
		_, err := n.ApproveNFTAllowance(ctx, params.ApproveNFTAllowance{
			SpenderAccountID: "0.0.5005",
			TokenID:          "0.0.4242",
			SerialNumbers:    []int64{0},
		})
		assert.ErrorIs(t, err, hederr.ErrInvalidAmount)
	})
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestCreateFungibleToken(t *testing.T) {
	ctx := context.Background()

	t.Run("minimal defaults to infinite supply", func(t *testing.T) {
		n, _ := newNormaliser(t, nil)
		out, err := n.CreateFungibleToken(ctx, params.CreateFungibleToken{
			TokenName: "MyToken", TokenSymbol: "MTK",
		})
		require.NoError(t, err)
		assert.Equal(t, hedera.TokenSupplyTypeInfinite, out.SupplyType)
		assert.EqualValues(t, 0, out.Decimals)
		assert.EqualValues(t, 0, out.InitialSupply)
		assert.Zero(t, out.MaxSupply)
		assert.Equal(t, operatorID, out.Treasury.String())
		assert.Nil(t, out.SupplyKey)
	})

	t.Run("max supply implies finite and bumps zero initial", func(t *testing.T) {
		n, opKey := newNormaliser(t, nil)
		out, err := n.CreateFungibleToken(ctx, params.CreateFungibleToken{
			TokenName: "T", TokenSymbol: "T",
			MaxSupply: floatPtr(500), Decimals: intPtr(0),
		})
		require.NoError(t, err)
		assert.Equal(t, hedera.TokenSupplyTypeFinite, out.SupplyType)
		assert.EqualValues(t, 1, out.InitialSupply)
		assert.EqualValues(t, 500, out.MaxSupply)
		// Finite supply always carries a supply key; the mirror has no
		// account entry here so it falls back to the operator key.
		require.NotNil(t, out.SupplyKey)
		assert.Equal(t, opKey.String(), out.SupplyKey.(hedera.PublicKey).String())
	})

	t.Run("finite without max defaults to one million", func(t *testing.T) {
		n, _ := newNormaliser(t, nil)
		out, err := n.CreateFungibleToken(ctx, params.CreateFungibleToken{
			TokenName: "T", TokenSymbol: "T", SupplyType: "finite", Decimals: intPtr(2),
		})
		require.NoError(t, err)
		assert.EqualValues(t, 100_000_000, out.MaxSupply) // 1,000,000 × 10^2
		assert.EqualValues(t, 100, out.InitialSupply)     // bumped to 1 × 10^2
	})

	t.Run("supply scales by decimals", func(t *testing.T) {
		n, _ := newNormaliser(t, nil)
		out, err := n.CreateFungibleToken(ctx, params.CreateFungibleToken{
			TokenName: "T", TokenSymbol: "T",
			Decimals: intPtr(2), InitialSupply: floatPtr(5), MaxSupply: floatPtr(100),
		})
		require.NoError(t, err)
		assert.EqualValues(t, 500, out.InitialSupply)
		assert.EqualValues(t, 10_000, out.MaxSupply)
	})

	t.Run("initial above max", func(t *testing.T) {
		n, _ := newNormaliser(t, nil)
		_, err := n.CreateFungibleToken(ctx, params.CreateFungibleToken{
			TokenName: "T", TokenSymbol: "T",
			InitialSupply: floatPtr(2000), MaxSupply: floatPtr(1000),
		})
		require.ErrorIs(t, err, hederr.ErrSupplyConstraint)
		assert.Contains(t, err.Error(), "cannot exceed max")
	})

	t.Run("negative decimals", func(t *testing.T) {
		n, _ := newNormaliser(t, nil)
		_, err := n.CreateFungibleToken(ctx, params.CreateFungibleToken{
			TokenName: "T", TokenSymbol: "T", Decimals: intPtr(-2),
		})
		require.ErrorIs(t, err, hederr.ErrSupplyConstraint)
		assert.Contains(t, err.Error(), "non-negative")
	})

	t.Run("max supply with infinite type", func(t *testing.T) {
		n, _ := newNormaliser(t, nil)
		_, err := n.CreateFungibleToken(ctx, params.CreateFungibleToken{
			TokenName: "T", TokenSymbol: "T",
			SupplyType: "infinite", MaxSupply: floatPtr(100),
		})
		require.ErrorIs(t, err, hederr.ErrSupplyConstraint)
		assert.Contains(t, err.Error(), "INFINITE")
	})

	t.Run("supply key from treasury mirror key", func(t *testing.T) {
		priv, err := hedera.PrivateKeyGenerateEd25519()
		require.NoError(t, err)
		treasuryKey := priv.PublicKey()
		fm := &testutil.FakeMirror{
			Accounts: map[string]*mirror.AccountInfo{
				"0.0.7777": {Account: "0.0.7777", Key: &mirror.Key{Type: "ED25519", Key: treasuryKey.StringRaw()}},
			},
		}
		n, _ := newNormaliser(t, fm)
		out, err := n.CreateFungibleToken(ctx, params.CreateFungibleToken{
			TokenName: "T", TokenSymbol: "T",
			TreasuryAccountID: "0.0.7777", IsSupplyKey: true,
		})
		require.NoError(t, err)
		assert.Equal(t, "0.0.7777", out.Treasury.String())
		require.NotNil(t, out.SupplyKey)
		assert.Equal(t, treasuryKey.String(), out.SupplyKey.(hedera.PublicKey).String())
	})

	t.Run("explicit supply key request without finite", func(t *testing.T) {
		n, opKey := newNormaliser(t, nil)
		out, err := n.CreateFungibleToken(ctx, params.CreateFungibleToken{
			TokenName: "T", TokenSymbol: "T", IsSupplyKey: true,
		})
		require.NoError(t, err)
		require.NotNil(t, out.SupplyKey)
		assert.Equal(t, opKey.String(), out.SupplyKey.(hedera.PublicKey).String())
	})

	t.Run("token memo truncated", func(t *testing.T) {
		n, _ := newNormaliser(t, nil)
		out, err := n.CreateFungibleToken(ctx, params.CreateFungibleToken{
			TokenName: "T", TokenSymbol: "T", TokenMemo: strings.Repeat("x", 140),
		})
		require.NoError(t, err)
		assert.Len(t, out.Memo, 100)
	})
}

func TestMintFungibleToken(t *testing.T) {
	ctx := context.Background()
	fm := &testutil.FakeMirror{
		Tokens: map[string]*mirror.TokenInfo{
			"0.0.4242": {TokenID: "0.0.4242", Decimals: "3"},
		},
	}
	n, _ := newNormaliser(t, fm)

	t.Run("rounds to base units", func(t *testing.T) {
		out, err := n.MintFungibleToken(ctx, params.MintFungibleToken{TokenID: "0.0.4242", Amount: 10.5})
		require.NoError(t, err)
		assert.EqualValues(t, 10_500, out.Amount)
	})

	t.Run("missing token", func(t *testing.T) {
		_, err := n.MintFungibleToken(ctx, params.MintFungibleToken{TokenID: "0.0.999999999", Amount: 10})
		require.ErrorIs(t, err, hederr.ErrDecimalsUnavailable)
		assert.Contains(t, err.Error(), "unable to retrieve token decimals")
	})

	t.Run("zero amount", func(t *testing.T) {
		_, err := n.MintFungibleToken(ctx, params.MintFungibleToken{TokenID: "0.0.4242", Amount: 0})
		assert.ErrorIs(t, err, hederr.ErrInvalidAmount)
	})

	t.Run("unparseable decimals", func(t *testing.T) {
		bad := &testutil.FakeMirror{Tokens: map[string]*mirror.TokenInfo{
			"0.0.1": {TokenID: "0.0.1", Decimals: "many"},
		}}
		nb, _ := newNormaliser(t, bad)
		_, err := nb.MintFungibleToken(ctx, params.MintFungibleToken{TokenID: "0.0.1", Amount: 10})
		assert.ErrorIs(t, err, hederr.ErrDecimalsUnavailable)
	})
}

func TestTransactionID(t *testing.T) {
	t.Run("sdk format converts", func(t *testing.T) {
		got, err := TransactionID("0.0.4177806@1755169980.051721264")
		require.NoError(t, err)
		assert.Equal(t, "0.0.4177806-1755169980-051721264", got)
	})

	t.Run("mirror format passes through", func(t *testing.T) {
		got, err := TransactionID("0.0.4177806-1755169980-051721264")
		require.NoError(t, err)
		assert.Equal(t, "0.0.4177806-1755169980-051721264", got)
	})

	t.Run("neither format", func(t *testing.T) {
		_, err := TransactionID("not-an-id")
		assert.ErrorIs(t, err, hederr.ErrInvalidTransactionID)
	})
}

func TestScheduled(t *testing.T) {
	n, opKey := newNormaliser(t, nil)
	ctx := context.Background()

	t.Run("nil block", func(t *testing.T) {
		spec, err := n.Scheduled(ctx, nil)
		require.NoError(t, err)
		assert.Nil(t, spec)
	})

	t.Run("not scheduled ignores other fields", func(t *testing.T) {
		spec, err := n.Scheduled(ctx, &params.Scheduling{
			IsScheduled: false, PayerAccountID: "garbage", ExpirationTime: "garbage",
		})
		require.NoError(t, err)
		assert.Nil(t, spec)
	})

	t.Run("admin key true resolves to own key", func(t *testing.T) {
		spec, err := n.Scheduled(ctx, &params.Scheduling{
			IsScheduled: true, AdminKey: resolve.KeyBool(true),
		})
		require.NoError(t, err)
		require.NotNil(t, spec)
		assert.Equal(t, opKey.String(), spec.AdminKey.(hedera.PublicKey).String())
	})

	t.Run("full block", func(t *testing.T) {
		spec, err := n.Scheduled(ctx, &params.Scheduling{
			IsScheduled:    true,
			PayerAccountID: "0.0.77",
			ExpirationTime: "2026-09-01T12:00:00Z",
			WaitForExpiry:  true,
		})
		require.NoError(t, err)
		require.NotNil(t, spec)
		assert.Equal(t, "0.0.77", spec.PayerAccountID.String())
		require.NotNil(t, spec.ExpirationTime)
		assert.Equal(t, 2026, spec.ExpirationTime.Year())
		assert.True(t, spec.WaitForExpiry)
		assert.Nil(t, spec.AdminKey)
	})

	t.Run("bad expiration", func(t *testing.T) {
		_, err := n.Scheduled(ctx, &params.Scheduling{IsScheduled: true, ExpirationTime: "tomorrow"})
		assert.ErrorIs(t, err, hederr.ErrValidation)
	})

	t.Run("bad payer", func(t *testing.T) {
		_, err := n.Scheduled(ctx, &params.Scheduling{IsScheduled: true, PayerAccountID: "xyz"})
		assert.ErrorIs(t, err, hederr.ErrIdentityResolution)
	})
}

func TestCreateAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to operator key", func(t *testing.T) {
		n, opKey := newNormaliser(t, nil)
		out, err := n.CreateAccount(ctx, params.CreateAccount{InitialBalance: 2})
		require.NoError(t, err)
		assert.Equal(t, opKey.String(), out.Key.(hedera.PublicKey).String())
		assert.EqualValues(t, 200_000_000, out.InitialBalance.AsTinybar())
	})

	t.Run("explicit key wins", func(t *testing.T) {
		n, _ := newNormaliser(t, nil)
		priv, err := hedera.PrivateKeyGenerateEd25519()
		require.NoError(t, err)
		out, err := n.CreateAccount(ctx, params.CreateAccount{PublicKey: priv.PublicKey().String()})
		require.NoError(t, err)
		assert.Equal(t, priv.PublicKey().String(), out.Key.(hedera.PublicKey).String())
	})

	t.Run("bad key", func(t *testing.T) {
		n, _ := newNormaliser(t, nil)
		_, err := n.CreateAccount(ctx, params.CreateAccount{PublicKey: "zzz"})
		assert.ErrorIs(t, err, hederr.ErrKeyParse)
	})

	t.Run("negative balance", func(t *testing.T) {
		n, _ := newNormaliser(t, nil)
		_, err := n.CreateAccount(ctx, params.CreateAccount{InitialBalance: -1})
		assert.ErrorIs(t, err, hederr.ErrInvalidAmount)
	})

	t.Run("negative max associations", func(t *testing.T) {
		n, _ := newNormaliser(t, nil)
		max := int32(-5)
		_, err := n.CreateAccount(ctx, params.CreateAccount{MaxAutomaticTokenAssociations: &max})
		assert.ErrorIs(t, err, hederr.ErrValidation)
		assert.Contains(t, err.Error(), "non-negative")
	})
}

func TestDeleteAccount(t *testing.T) {
	n, _ := newNormaliser(t, nil)
	ctx := context.Background()

	t.Run("explicit target, transfer defaults to operator", func(t *testing.T) {
		out, err := n.DeleteAccount(ctx, params.DeleteAccount{AccountID: "0.0.5005"})
		require.NoError(t, err)
		assert.Equal(t, "0.0.5005", out.AccountID.String())
		assert.Equal(t, operatorID, out.TransferAccountID.String())
	})

	t.Run("target never defaulted", func(t *testing.T) {
		_, err := n.DeleteAccount(ctx, params.DeleteAccount{})
		assert.ErrorIs(t, err, hederr.ErrValidation)
	})
}

func TestCreateTopic(t *testing.T) {
	n, opKey := newNormaliser(t, nil)
	ctx := context.Background()

	t.Run("admin key is always the caller's", func(t *testing.T) {
		out, err := n.CreateTopic(ctx, params.CreateTopic{TopicMemo: "updates"})
		require.NoError(t, err)
		assert.Equal(t, opKey.String(), out.AdminKey.(hedera.PublicKey).String())
		assert.Nil(t, out.SubmitKey)
		assert.Equal(t, "updates", out.Memo)
	})

	t.Run("submit key on request", func(t *testing.T) {
		out, err := n.CreateTopic(ctx, params.CreateTopic{IsSubmitKey: true})
		require.NoError(t, err)
		require.NotNil(t, out.SubmitKey)
		assert.Equal(t, opKey.String(), out.SubmitKey.(hedera.PublicKey).String())
	})
}

func TestUpdateTopic(t *testing.T) {
	n, opKey := newNormaliser(t, nil)
	ctx := context.Background()

	out, err := n.UpdateTopic(ctx, params.UpdateTopic{
		TopicID:        "0.0.777",
		SubmitKey:      resolve.KeyBool(true),
		ExpirationTime: "2027-01-01T00:00:00Z",
	})
	require.NoError(t, err)
	assert.Equal(t, "0.0.777", out.TopicID.String())
	assert.Nil(t, out.AdminKey)
	assert.Equal(t, opKey.String(), out.SubmitKey.(hedera.PublicKey).String())
	require.NotNil(t, out.ExpirationTime)
	assert.Equal(t, 2027, out.ExpirationTime.Year())
}

func TestAssociateDissociate(t *testing.T) {
	n, _ := newNormaliser(t, nil)
	ctx := context.Background()

	t.Run("account defaults to operator", func(t *testing.T) {
		out, err := n.AssociateToken(ctx, params.AssociateToken{TokenIDs: []string{"0.0.1", "0.0.2"}})
		require.NoError(t, err)
		assert.Equal(t, operatorID, out.AccountID.String())
		assert.Len(t, out.TokenIDs, 2)
	})

	t.Run("bad token id", func(t *testing.T) {
		_, err := n.DissociateToken(ctx, params.DissociateToken{TokenIDs: []string{"nope"}})
		assert.ErrorIs(t, err, hederr.ErrValidation)
	})
}

func TestGetAccountBalance(t *testing.T) {
	n, _ := newNormaliser(t, nil)
	out, err := n.GetAccountBalance(context.Background(), params.GetAccountBalance{})
	require.NoError(t, err)
	assert.Equal(t, operatorID, out.AccountID)
}

func TestCreateERC20(t *testing.T) {
	n, _ := newNormaliser(t, nil)
	ctx := context.Background()

	t.Run("defaults", func(t *testing.T) {
		out, err := n.CreateERC20(ctx, params.CreateERC20{TokenName: "MyToken", TokenSymbol: "MTK"})
		require.NoError(t, err)
		assert.EqualValues(t, 3_000_000, out.Gas)
		assert.NotEmpty(t, out.Parameters)
	})

	t.Run("bad decimals", func(t *testing.T) {
		_, err := n.CreateERC20(ctx, params.CreateERC20{TokenName: "T", TokenSymbol: "T", Decimals: intPtr(300)})
		assert.ErrorIs(t, err, hederr.ErrValidation)
	})
}
