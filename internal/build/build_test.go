package build

import (
	"testing"
	"time"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashpilot/hashpilot/internal/normalise"
)

func accountID(t *testing.T, s string) hedera.AccountID {
	t.Helper()
	id, err := hedera.AccountIDFromString(s)
	require.NoError(t, err)
	return id
}

func tokenID(t *testing.T, s string) hedera.TokenID {
	t.Helper()
	id, err := hedera.TokenIDFromString(s)
	require.NoError(t, err)
	return id
}

func TestTransferHbar(t *testing.T) {
	t.Run("plain transfer stays unwrapped", func(t *testing.T) {
		built, err := TransferHbar(&normalise.HbarTransfer{
			Ledger: map[string]int64{
				"0.0.5005": 250_000_000,
				"0.0.1002": -250_000_000,
			},
			Source: "0.0.1002",
			Memo:   "rent",
		})
		require.NoError(t, err)
		assert.False(t, built.IsScheduled())
		assert.Same(t, built.Inner, built.Primary())

		tx, ok := built.Inner.(*hedera.TransferTransaction)
		require.True(t, ok)
		transfers := tx.GetHbarTransfers()
		assert.EqualValues(t, 250_000_000, transfers[accountID(t, "0.0.5005")].AsTinybar())
		assert.EqualValues(t, -250_000_000, transfers[accountID(t, "0.0.1002")].AsTinybar())
		assert.Equal(t, "rent", tx.GetTransactionMemo())
	})

	t.Run("net sum of built lines is zero", func(t *testing.T) {
		built, err := TransferHbar(&normalise.HbarTransfer{
			Ledger: map[string]int64{
				"0.0.5005": 100,
				"0.0.6006": 250,
				"0.0.1002": -350,
			},
			Source: "0.0.1002",
		})
		require.NoError(t, err)
		tx := built.Inner.(*hedera.TransferTransaction)
		var sum int64
		for _, amount := range tx.GetHbarTransfers() {
			sum += amount.AsTinybar()
		}
		assert.Zero(t, sum)
	})

	t.Run("bad ledger account", func(t *testing.T) {
		_, err := TransferHbar(&normalise.HbarTransfer{Ledger: map[string]int64{"junk": 1}})
		assert.Error(t, err)
	})
}

func TestTransferToken(t *testing.T) {
	built, err := TransferToken(&normalise.TokenTransfer{
		TokenID: tokenID(t, "0.0.4242"),
		Ledger: map[string]int64{
			"0.0.5005": 500,
			"0.0.9009": -500,
		},
		Source:   "0.0.9009",
		Approved: true,
	})
	require.NoError(t, err)

	tx, ok := built.Inner.(*hedera.TransferTransaction)
	require.True(t, ok)
	byToken := tx.GetTokenTransfers()
	lines := byToken[tokenID(t, "0.0.4242")]
	require.Len(t, lines, 2)
	var sum int64
	for _, line := range lines {
		sum += line.Amount
		if line.AccountID.String() == "0.0.9009" {
			assert.True(t, line.IsApproved)
		}
	}
	assert.Zero(t, sum)
}

func TestTransferNFT(t *testing.T) {
	built, err := TransferNFT(&normalise.NFTTransfer{
		NftID:    hedera.NftID{TokenID: tokenID(t, "0.0.4242"), SerialNumber: 7},
		Sender:   accountID(t, "0.0.9009"),
		Receiver: accountID(t, "0.0.5005"),
		Approved: true,
	})
	require.NoError(t, err)
	_, ok := built.Inner.(*hedera.TransferTransaction)
	assert.True(t, ok)
	assert.False(t, built.IsScheduled())
}

func TestApproveHbarAllowance(t *testing.T) {
	built, err := ApproveHbarAllowance(&normalise.HbarAllowance{
		Owner:   accountID(t, "0.0.1002"),
		Spender: accountID(t, "0.0.5005"),
		Amount:  hedera.HbarFromTinybar(250_000_000),
		Memo:    "spend limit",
	})
	require.NoError(t, err)
	assert.False(t, built.IsScheduled())

	tx, ok := built.Inner.(*hedera.AccountAllowanceApproveTransaction)
	require.True(t, ok)
	allowances := tx.GetHbarAllowances()
	require.Len(t, allowances, 1)
	assert.Equal(t, "0.0.1002", allowances[0].OwnerAccountID.String())
	assert.Equal(t, "0.0.5005", allowances[0].SpenderAccountID.String())
	assert.EqualValues(t, 250_000_000, allowances[0].Amount)
	assert.Equal(t, "spend limit", tx.GetTransactionMemo())
}

func TestApproveTokenAllowance(t *testing.T) {
	built, err := ApproveTokenAllowance(&normalise.TokenAllowance{
		TokenID: tokenID(t, "0.0.4242"),
		Owner:   accountID(t, "0.0.1002"),
		Spender: accountID(t, "0.0.5005"),
		Amount:  350,
	})
	require.NoError(t, err)

	tx, ok := built.Inner.(*hedera.AccountAllowanceApproveTransaction)
	require.True(t, ok)
	allowances := tx.GetTokenAllowances()
	require.Len(t, allowances, 1)
	assert.Equal(t, "0.0.4242", allowances[0].TokenID.String())
	assert.EqualValues(t, 350, allowances[0].Amount)
}

func TestApproveNFTAllowance(t *testing.T) {
	t.Run("specific serials", func(t *testing.T) {
		built, err := ApproveNFTAllowance(&normalise.NFTAllowance{
			TokenID: tokenID(t, "0.0.4242"),
			Owner:   accountID(t, "0.0.1002"),
			Spender: accountID(t, "0.0.5005"),
			Serials: []int64{1, 7},
		})
		require.NoError(t, err)

		tx, ok := built.Inner.(*hedera.AccountAllowanceApproveTransaction)
		require.True(t, ok)
		allowances := tx.GetTokenNftAllowances()
		require.Len(t, allowances, 1)
		assert.Equal(t, []int64{1, 7}, allowances[0].SerialNumbers)
		assert.False(t, allowances[0].AllSerials)
	})

	t.Run("all serials", func(t *testing.T) {
		built, err := ApproveNFTAllowance(&normalise.NFTAllowance{
			TokenID:    tokenID(t, "0.0.4242"),
			Owner:      accountID(t, "0.0.1002"),
			Spender:    accountID(t, "0.0.5005"),
			AllSerials: true,
		})
		require.NoError(t, err)

		tx := built.Inner.(*hedera.AccountAllowanceApproveTransaction)
		allowances := tx.GetTokenNftAllowances()
		require.Len(t, allowances, 1)
		assert.True(t, allowances[0].AllSerials)
	})
}

func TestScheduleWrap(t *testing.T) {
	ledger := map[string]int64{"0.0.5005": 100, "0.0.1002": -100}

	t.Run("absent spec returns inner as-is", func(t *testing.T) {
		built, err := TransferHbar(&normalise.HbarTransfer{Ledger: ledger, Source: "0.0.1002"})
		require.NoError(t, err)
		assert.Nil(t, built.Schedule)
	})

	t.Run("present spec wraps and keeps the inner", func(t *testing.T) {
		payer := accountID(t, "0.0.77")
		exp := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
		built, err := TransferHbar(&normalise.HbarTransfer{
			Ledger: ledger,
			Source: "0.0.1002",
			Schedule: &normalise.ScheduleSpec{
				PayerAccountID: &payer,
				ExpirationTime: &exp,
				WaitForExpiry:  true,
			},
		})
		require.NoError(t, err)
		require.True(t, built.IsScheduled())
		assert.NotNil(t, built.Inner)

		// The wrapper, not the inner transfer, is what gets submitted.
		primary, ok := built.Primary().(*hedera.ScheduleCreateTransaction)
		require.True(t, ok)
		assert.Equal(t, payer.String(), primary.GetPayerAccountID().String())

		// The inner transfer is unchanged by wrapping.
		inner := built.Inner.(*hedera.TransferTransaction)
		assert.EqualValues(t, 100, inner.GetHbarTransfers()[accountID(t, "0.0.5005")].AsTinybar())
	})
}

func TestCreateFungibleToken(t *testing.T) {
	t.Run("finite token carries max supply", func(t *testing.T) {
		built, err := CreateFungibleToken(&normalise.FungibleTokenCreate{
			Name: "MyToken", Symbol: "MTK",
			Decimals: 2, InitialSupply: 500,
			SupplyType: hedera.TokenSupplyTypeFinite, MaxSupply: 10_000,
			Treasury: accountID(t, "0.0.1002"),
		})
		require.NoError(t, err)
		tx, ok := built.Inner.(*hedera.TokenCreateTransaction)
		require.True(t, ok)
		assert.Equal(t, "MyToken", tx.GetTokenName())
		assert.EqualValues(t, 2, tx.GetDecimals())
		assert.EqualValues(t, 500, tx.GetInitialSupply())
		assert.EqualValues(t, 10_000, tx.GetMaxSupply())
		assert.Equal(t, hedera.TokenSupplyTypeFinite, tx.GetSupplyType())
		assert.Equal(t, "0.0.1002", tx.GetTreasuryAccountID().String())
	})

	t.Run("infinite token sets no max supply", func(t *testing.T) {
		built, err := CreateFungibleToken(&normalise.FungibleTokenCreate{
			Name: "T", Symbol: "T",
			SupplyType: hedera.TokenSupplyTypeInfinite,
			Treasury:   accountID(t, "0.0.1002"),
		})
		require.NoError(t, err)
		tx := built.Inner.(*hedera.TokenCreateTransaction)
		assert.Zero(t, tx.GetMaxSupply())
	})
}

func TestMintFungibleToken(t *testing.T) {
	built, err := MintFungibleToken(&normalise.FungibleTokenMint{
		TokenID: tokenID(t, "0.0.4242"),
		Amount:  10_500,
	})
	require.NoError(t, err)
	tx, ok := built.Inner.(*hedera.TokenMintTransaction)
	require.True(t, ok)
	assert.EqualValues(t, 10_500, tx.GetAmount())
	assert.Equal(t, "0.0.4242", tx.GetTokenID().String())
}

func TestAssociateDissociate(t *testing.T) {
	p := &normalise.TokenAssociate{
		AccountID: accountID(t, "0.0.1002"),
		TokenIDs:  []hedera.TokenID{tokenID(t, "0.0.1"), tokenID(t, "0.0.2")},
	}

	built, err := AssociateToken(p)
	require.NoError(t, err)
	assoc, ok := built.Inner.(*hedera.TokenAssociateTransaction)
	require.True(t, ok)
	assert.Len(t, assoc.GetTokenIDs(), 2)

	built, err = DissociateToken(p)
	require.NoError(t, err)
	_, ok = built.Inner.(*hedera.TokenDissociateTransaction)
	assert.True(t, ok)
}

func TestCreateAccount(t *testing.T) {
	priv, err := hedera.PrivateKeyGenerateEd25519()
	require.NoError(t, err)
	max := int32(12)

	built, err := CreateAccount(&normalise.AccountCreate{
		Key:                           priv.PublicKey(),
		InitialBalance:                hedera.HbarFromTinybar(200_000_000),
		Memo:                          "ops account",
		MaxAutomaticTokenAssociations: &max,
	})
	require.NoError(t, err)
	tx, ok := built.Inner.(*hedera.AccountCreateTransaction)
	require.True(t, ok)
	assert.Equal(t, "ops account", tx.GetAccountMemo())
	assert.Equal(t, uint32(12), tx.GetMaxAutomaticTokenAssociations())
}

func TestCreateTopic(t *testing.T) {
	priv, err := hedera.PrivateKeyGenerateEd25519()
	require.NoError(t, err)
	key := priv.PublicKey()

	built, err := CreateTopic(&normalise.TopicCreate{
		Memo:      "updates",
		AdminKey:  key,
		SubmitKey: key,
	})
	require.NoError(t, err)
	tx, ok := built.Inner.(*hedera.TopicCreateTransaction)
	require.True(t, ok)
	assert.Equal(t, "updates", tx.GetTopicMemo())
}

func TestSubmitTopicMessage(t *testing.T) {
	topic, err := hedera.TopicIDFromString("0.0.777")
	require.NoError(t, err)

	built, err := SubmitTopicMessage(&normalise.TopicMessageSubmit{
		TopicID: topic,
		Message: "hello",
	})
	require.NoError(t, err)
	tx, ok := built.Inner.(*hedera.TopicMessageSubmitTransaction)
	require.True(t, ok)
	assert.Equal(t, []byte("hello"), tx.GetMessage())
}

func TestExecuteContract(t *testing.T) {
	contract, err := hedera.ContractIDFromString("0.0.5615001")
	require.NoError(t, err)

	built, err := ExecuteContract(&normalise.ContractExecute{
		ContractID: contract,
		Gas:        3_000_000,
		Parameters: []byte{0x01, 0x02},
	})
	require.NoError(t, err)
	tx, ok := built.Inner.(*hedera.ContractExecuteTransaction)
	require.True(t, ok)
	assert.EqualValues(t, 3_000_000, tx.GetGas())
}
