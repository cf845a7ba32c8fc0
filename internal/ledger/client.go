// internal/ledger/client.go

// Package ledger is a read-only HTTP client for a Hedera mirror node.
// Transaction signing stays in the user's wallet; the backend only looks up
// submitted transactions to verify settlements and fetches the network
// exchange rate for display conversion.
package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client is a mirror node REST client.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a mirror node client. baseURL should include the API
// prefix, e.g. https://testnet.mirrornode.hedera.com/api/v1.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *Client) doRequest(ctx context.Context, path string) ([]byte, error) {
	url := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("mirror node error %d: %s", resp.StatusCode, string(data))
	}

	return data, nil
}

// GetTransaction looks up a transaction by id. The wallet-style id form
// "0.0.x@seconds.nanos" is accepted and normalized to the mirror node form.
func (c *Client) GetTransaction(ctx context.Context, transactionID string) (*Transaction, error) {
	data, err := c.doRequest(ctx, "/transactions/"+NormalizeTransactionID(transactionID))
	if err != nil {
		return nil, err
	}

	var result transactionsResponse
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("unmarshal transactions: %w", err)
	}
	if len(result.Transactions) == 0 {
		return nil, ErrNotFound
	}

	return &result.Transactions[0], nil
}

// GetAccountBalance returns an account's balance in tinybars.
func (c *Client) GetAccountBalance(ctx context.Context, accountID string) (int64, error) {
	data, err := c.doRequest(ctx, "/accounts/"+accountID)
	if err != nil {
		return 0, err
	}

	var result accountResponse
	if err := json.Unmarshal(data, &result); err != nil {
		return 0, fmt.Errorf("unmarshal account: %w", err)
	}

	return result.Balance.Balance, nil
}

// GetExchangeRate returns the current network exchange rate.
func (c *Client) GetExchangeRate(ctx context.Context) (*ExchangeRate, error) {
	data, err := c.doRequest(ctx, "/network/exchangerate")
	if err != nil {
		return nil, err
	}

	var result exchangeRateResponse
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("unmarshal exchange rate: %w", err)
	}

	return &result.CurrentRate, nil
}

// NormalizeTransactionID converts the wallet SDK transaction id form
// "0.0.x@seconds.nanos" to the mirror node REST form "0.0.x-seconds-nanos".
// Ids already in mirror node form pass through unchanged.
func NormalizeTransactionID(transactionID string) string {
	payer, rest, found := strings.Cut(transactionID, "@")
	if !found {
		return transactionID
	}
	return payer + "-" + strings.ReplaceAll(rest, ".", "-")
}
