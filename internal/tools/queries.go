package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hashpilot/hashpilot/internal/params"
	"github.com/hashpilot/hashpilot/internal/toolkit"
)

const tinybarsPerHbar = 100_000_000

func getTokenInfoTool(d Deps) *toolkit.Tool {
	return &toolkit.Tool{
		Method: "get_token_info",
		Name:   "Get Token Info",
		Description: `Returns token metadata from the mirror node: name, symbol, decimals,
supply figures, treasury, and keys.`,
		Schema:     params.GetTokenInfoSchema,
		SchemaJSON: json.RawMessage(params.GetTokenInfoSchemaJSON),
		Execute: func(ctx context.Context, raw json.RawMessage) toolkit.ToolResponse {
			const op = "get token info"
			var p params.GetTokenInfo
			if err := toolkit.Unmarshal(raw, &p); err != nil {
				return toolkit.Failure(op, err)
			}
			info, err := d.Mirror.GetTokenInfo(ctx, p.TokenID)
			if err != nil {
				return toolkit.Failure(op, err)
			}

			var b strings.Builder
			fmt.Fprintf(&b, "Token %s (%s)\n", info.Name, info.Symbol)
			fmt.Fprintf(&b, "Token ID: %s\n", info.TokenID)
			fmt.Fprintf(&b, "Type: %s\n", info.Type)
			fmt.Fprintf(&b, "Decimals: %s\n", info.Decimals)
			fmt.Fprintf(&b, "Total supply: %s (base units)\n", info.TotalSupply)
			fmt.Fprintf(&b, "Supply type: %s", info.SupplyType)
			if info.SupplyType == "FINITE" {
				fmt.Fprintf(&b, ", max supply: %s (base units)", info.MaxSupply)
			}
			fmt.Fprintf(&b, "\nTreasury: %s", info.TreasuryAccountID)
			if info.Memo != "" {
				fmt.Fprintf(&b, "\nMemo: %s", info.Memo)
			}
			return toolkit.ToolResponse{HumanMessage: b.String(), Raw: info}
		},
	}
}

func getTopicInfoTool(d Deps) *toolkit.Tool {
	return &toolkit.Tool{
		Method: "get_topic_info",
		Name:   "Get Topic Info",
		Description: `Returns consensus topic metadata from the mirror node: memo, keys, and
auto-renew settings.`,
		Schema:     params.GetTopicInfoSchema,
		SchemaJSON: json.RawMessage(params.GetTopicInfoSchemaJSON),
		Execute: func(ctx context.Context, raw json.RawMessage) toolkit.ToolResponse {
			const op = "get topic info"
			var p params.GetTopicInfo
			if err := toolkit.Unmarshal(raw, &p); err != nil {
				return toolkit.Failure(op, err)
			}
			info, err := d.Mirror.GetTopicInfo(ctx, p.TopicID)
			if err != nil {
				return toolkit.Failure(op, err)
			}

			var b strings.Builder
			fmt.Fprintf(&b, "Topic %s", info.TopicID)
			if info.Memo != "" {
				fmt.Fprintf(&b, "\nMemo: %s", info.Memo)
			}
			if info.AdminKey != nil {
				fmt.Fprintf(&b, "\nAdmin key: %s (%s)", info.AdminKey.Key, info.AdminKey.Type)
			}
			if info.SubmitKey != nil {
				fmt.Fprintf(&b, "\nSubmit key: %s (%s)", info.SubmitKey.Key, info.SubmitKey.Type)
			} else {
				b.WriteString("\nSubmit key: none (open for submission)")
			}
			if info.AutoRenewAccount != "" {
				fmt.Fprintf(&b, "\nAuto-renew account: %s", info.AutoRenewAccount)
			}
			return toolkit.ToolResponse{HumanMessage: b.String(), Raw: info}
		},
	}
}

func getExchangeRateTool(d Deps) *toolkit.Tool {
	return &toolkit.Tool{
		Method: "get_exchange_rate",
		Name:   "Get Exchange Rate",
		Description: `Returns the network HBAR/USD exchange rate. An optional consensus
timestamp selects the rate effective at that time; otherwise the current
rate is returned.`,
		Schema:     params.GetExchangeRateSchema,
		SchemaJSON: json.RawMessage(params.GetExchangeRateSchemaJSON),
		Execute: func(ctx context.Context, raw json.RawMessage) toolkit.ToolResponse {
			const op = "get exchange rate"
			var p params.GetExchangeRate
			if err := toolkit.Unmarshal(raw, &p); err != nil {
				return toolkit.Failure(op, err)
			}
			rate, err := d.Mirror.GetExchangeRate(ctx, p.Timestamp)
			if err != nil {
				return toolkit.Failure(op, err)
			}

			current := usdPerHbar(rate.CurrentRate.CentEquivalent, rate.CurrentRate.HbarEquivalent)
			next := usdPerHbar(rate.NextRate.CentEquivalent, rate.NextRate.HbarEquivalent)
			msg := fmt.Sprintf("Current exchange rate: 1 HBAR = %.4f USD\nNext rate: 1 HBAR = %.4f USD", current, next)
			return toolkit.ToolResponse{HumanMessage: msg, Raw: rate}
		},
	}
}

func usdPerHbar(centEquivalent, hbarEquivalent int64) float64 {
	if hbarEquivalent == 0 {
		return 0
	}
	return float64(centEquivalent) / float64(hbarEquivalent) / 100
}

func getTransactionRecordTool(d Deps) *toolkit.Tool {
	return &toolkit.Tool{
		Method: "get_transaction_record",
		Name:   "Get Transaction Record",
		Description: `Returns the mirror node record of a transaction. Accepts both the SDK
id format (shard.realm.num@seconds.nanos) and the mirror node format
(shard.realm.num-seconds-nanos).`,
		Schema:     params.GetTransactionRecordSchema,
		SchemaJSON: json.RawMessage(params.GetTransactionRecordSchemaJSON),
		Execute: func(ctx context.Context, raw json.RawMessage) toolkit.ToolResponse {
			const op = "get transaction record"
			var p params.GetTransactionRecord
			if err := toolkit.Unmarshal(raw, &p); err != nil {
				return toolkit.Failure(op, err)
			}
			q, err := d.Normaliser.GetTransactionRecord(ctx, p)
			if err != nil {
				return toolkit.Failure(op, err)
			}
			resp, err := d.Mirror.GetTransactionRecord(ctx, q.TransactionID, q.Nonce)
			if err != nil {
				return toolkit.Failure(op, err)
			}

			var b strings.Builder
			fmt.Fprintf(&b, "Transaction %s", q.TransactionID)
			for _, rec := range resp.Transactions {
				fmt.Fprintf(&b, "\n%s: %s at %s, fee %d tinybars", rec.Name, rec.Result, rec.ConsensusTimestamp, rec.ChargedTxFee)
				if rec.EntityID != "" {
					fmt.Fprintf(&b, ", entity %s", rec.EntityID)
				}
			}
			return toolkit.ToolResponse{HumanMessage: b.String(), Raw: resp}
		},
	}
}

func getAccountBalanceTool(d Deps) *toolkit.Tool {
	return &toolkit.Tool{
		Method: "get_account_balance",
		Name:   "Get Account Balance",
		Description: `Returns an account's HBAR balance and token holdings from the mirror
node. The account defaults to the operator account.`,
		Schema:     params.GetAccountBalanceSchema,
		SchemaJSON: json.RawMessage(params.GetAccountBalanceSchemaJSON),
		Execute: func(ctx context.Context, raw json.RawMessage) toolkit.ToolResponse {
			const op = "get account balance"
			var p params.GetAccountBalance
			if err := toolkit.Unmarshal(raw, &p); err != nil {
				return toolkit.Failure(op, err)
			}
			q, err := d.Normaliser.GetAccountBalance(ctx, p)
			if err != nil {
				return toolkit.Failure(op, err)
			}
			bal, err := d.Mirror.GetAccountBalance(ctx, q.AccountID)
			if err != nil {
				return toolkit.Failure(op, err)
			}

			hbar := float64(bal.Balance) / tinybarsPerHbar
			var b strings.Builder
			fmt.Fprintf(&b, "Account %s holds %.8f HBAR", bal.Account, hbar)
			for _, tok := range bal.Tokens {
				fmt.Fprintf(&b, "\n%s: %d (base units)", tok.TokenID, tok.Balance)
			}
			return toolkit.ToolResponse{HumanMessage: b.String(), Raw: bal}
		},
	}
}
