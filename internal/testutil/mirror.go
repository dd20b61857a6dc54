package testutil

import (
	"context"
	"fmt"

	"github.com/hashpilot/hashpilot/internal/mirror"
)

// FakeMirror is an in-memory mirror.Service for tests. Nil maps report
// every lookup as missing; set Err to force a transport-level failure.
type FakeMirror struct {
	Tokens   map[string]*mirror.TokenInfo
	Accounts map[string]*mirror.AccountInfo
	Balances map[string]*mirror.AccountBalance
	Topics   map[string]*mirror.TopicInfo
	Rate     *mirror.ExchangeRateResponse
	Records  map[string]*mirror.TransactionRecordResponse
	Err      error
}

func (f *FakeMirror) GetTokenInfo(_ context.Context, tokenID string) (*mirror.TokenInfo, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	if info, ok := f.Tokens[tokenID]; ok {
		return info, nil
	}
	return nil, fmt.Errorf("mirror node: not found (404) for /api/v1/tokens/%s", tokenID)
}

func (f *FakeMirror) GetAccount(_ context.Context, accountID string) (*mirror.AccountInfo, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	if info, ok := f.Accounts[accountID]; ok {
		return info, nil
	}
	return nil, fmt.Errorf("mirror node: not found (404) for /api/v1/accounts/%s", accountID)
}

func (f *FakeMirror) GetAccountBalance(_ context.Context, accountID string) (*mirror.AccountBalance, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	if bal, ok := f.Balances[accountID]; ok {
		return bal, nil
	}
	return nil, fmt.Errorf("mirror node: no balance found for account %s", accountID)
}

func (f *FakeMirror) GetTopicInfo(_ context.Context, topicID string) (*mirror.TopicInfo, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	if info, ok := f.Topics[topicID]; ok {
		return info, nil
	}
	return nil, fmt.Errorf("mirror node: not found (404) for /api/v1/topics/%s", topicID)
}

func (f *FakeMirror) GetExchangeRate(_ context.Context, _ string) (*mirror.ExchangeRateResponse, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	if f.Rate == nil {
		return nil, fmt.Errorf("mirror node: not found (404) for /api/v1/network/exchangerate")
	}
	return f.Rate, nil
}

func (f *FakeMirror) GetTransactionRecord(_ context.Context, transactionID string, _ *int) (*mirror.TransactionRecordResponse, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	if rec, ok := f.Records[transactionID]; ok {
		return rec, nil
	}
	return nil, fmt.Errorf("mirror node: no transaction found for id %s", transactionID)
}
