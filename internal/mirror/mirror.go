// Package mirror reads public ledger state from a Hedera mirror node.
// It is the toolkit's only source of token metadata (decimals, supply,
// keys) and of account public keys that are not available locally.
package mirror

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Service is the read-only mirror node surface the toolkit depends on.
type Service interface {
	GetTokenInfo(ctx context.Context, tokenID string) (*TokenInfo, error)
	GetAccount(ctx context.Context, accountID string) (*AccountInfo, error)
	GetAccountBalance(ctx context.Context, accountID string) (*AccountBalance, error)
	GetTopicInfo(ctx context.Context, topicID string) (*TopicInfo, error)
	GetExchangeRate(ctx context.Context, timestamp string) (*ExchangeRateResponse, error)
	GetTransactionRecord(ctx context.Context, transactionID string, nonce *int) (*TransactionRecordResponse, error)
}

// Client is an HTTP mirror node client. One instance per network; safe for
// concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

const requestTimeout = 15 * time.Second

// baseURLs maps network names to the public mirror node REST endpoints.
var baseURLs = map[string]string{
	"mainnet":    "https://mainnet-public.mirrornode.hedera.com",
	"testnet":    "https://testnet.mirrornode.hedera.com",
	"previewnet": "https://previewnet.mirrornode.hedera.com",
}

// NewClient returns a mirror client for the given network. An explicit
// baseURL overrides the network default (tests, private mirrors).
func NewClient(network, baseURL string) (*Client, error) {
	if baseURL == "" {
		var ok bool
		baseURL, ok = baseURLs[network]
		if !ok {
			return nil, fmt.Errorf("no mirror node endpoint for network %q", network)
		}
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
	}, nil
}

// get issues one GET and decodes the JSON body. No retries: callers surface
// failures to the agent, which may re-invoke the tool.
func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build mirror request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("mirror node request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read mirror response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("mirror node: not found (404) for %s", path)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("mirror node: unexpected status %d for %s", resp.StatusCode, path)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode mirror response: %w", err)
	}
	return nil
}

func (c *Client) GetTokenInfo(ctx context.Context, tokenID string) (*TokenInfo, error) {
	var info TokenInfo
	if err := c.get(ctx, "/api/v1/tokens/"+url.PathEscape(tokenID), &info); err != nil {
		return nil, err
	}
	return &info, nil
}

func (c *Client) GetAccount(ctx context.Context, accountID string) (*AccountInfo, error) {
	var info AccountInfo
	if err := c.get(ctx, "/api/v1/accounts/"+url.PathEscape(accountID), &info); err != nil {
		return nil, err
	}
	return &info, nil
}

func (c *Client) GetAccountBalance(ctx context.Context, accountID string) (*AccountBalance, error) {
	var resp balancesResponse
	if err := c.get(ctx, "/api/v1/balances?account.id="+url.QueryEscape(accountID), &resp); err != nil {
		return nil, err
	}
	if len(resp.Balances) == 0 {
		return nil, fmt.Errorf("mirror node: no balance found for account %s", accountID)
	}
	return &resp.Balances[0], nil
}

func (c *Client) GetTopicInfo(ctx context.Context, topicID string) (*TopicInfo, error) {
	var info TopicInfo
	if err := c.get(ctx, "/api/v1/topics/"+url.PathEscape(topicID), &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// GetExchangeRate returns the network exchange rate. An empty timestamp
// means the current rate; otherwise the rate effective at that consensus
// timestamp.
func (c *Client) GetExchangeRate(ctx context.Context, timestamp string) (*ExchangeRateResponse, error) {
	path := "/api/v1/network/exchangerate"
	if timestamp != "" {
		path += "?timestamp=" + url.QueryEscape(timestamp)
	}
	var resp ExchangeRateResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) GetTransactionRecord(ctx context.Context, transactionID string, nonce *int) (*TransactionRecordResponse, error) {
	path := "/api/v1/transactions/" + url.PathEscape(transactionID)
	if nonce != nil {
		path += fmt.Sprintf("?nonce=%d", *nonce)
	}
	var resp TransactionRecordResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	if len(resp.Transactions) == 0 {
		return nil, fmt.Errorf("mirror node: no transaction found for id %s", transactionID)
	}
	return &resp, nil
}
