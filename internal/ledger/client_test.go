// internal/ledger/client_test.go
package ledger

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTransactionID(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"wallet form", "0.0.1001@1700000000.000000001", "0.0.1001-1700000000-000000001"},
		{"already mirror form", "0.0.1001-1700000000-000000001", "0.0.1001-1700000000-000000001"},
		{"no timestamp", "0.0.1001", "0.0.1001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTransactionID(tt.in))
		})
	}
}

func TestGetTransaction(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transactions/0.0.1001-1700000000-000000001", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"transactions": [{
				"transaction_id": "0.0.1001-1700000000-000000001",
				"result": "SUCCESS",
				"consensus_timestamp": "1700000002.000000001",
				"charged_tx_fee": 72128,
				"transfers": [
					{"account": "0.0.1001", "amount": -1050000000},
					{"account": "0.0.9000", "amount": 1000000000},
					{"account": "0.0.6331448", "amount": 50000000}
				]
			}]
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", 5*time.Second)
	tx, err := client.GetTransaction(context.Background(), "0.0.1001@1700000000.000000001")

	require.NoError(t, err)
	assert.True(t, tx.Succeeded())
	assert.EqualValues(t, 1000000000, tx.CreditedAmount("0.0.9000"))
	assert.EqualValues(t, 50000000, tx.CreditedAmount("0.0.6331448"))
	assert.Zero(t, tx.CreditedAmount("0.0.1001"))
}

func TestGetTransactionNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"_status":{"messages":[{"message":"Not found"}]}}`, http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, "", 5*time.Second)
	_, err := client.GetTransaction(context.Background(), "0.0.1@1.2")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetTransactionEmptyList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"transactions": []}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "", 5*time.Second)
	_, err := client.GetTransaction(context.Background(), "0.0.1@1.2")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetAccountBalance(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts/0.0.9000", r.URL.Path)
		w.Write([]byte(`{"account": "0.0.9000", "balance": {"balance": 123456789, "timestamp": "1700000000.0"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "", 5*time.Second)
	balance, err := client.GetAccountBalance(context.Background(), "0.0.9000")

	require.NoError(t, err)
	assert.EqualValues(t, 123456789, balance)
}

func TestGetExchangeRate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/network/exchangerate", r.URL.Path)
		w.Write([]byte(`{"current_rate": {"cent_equivalent": 1200, "hbar_equivalent": 100, "expiration_time": 1700003600}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "", 5*time.Second)
	rate, err := client.GetExchangeRate(context.Background())

	require.NoError(t, err)
	// 1200 cents per 100 hbar means 12 cents per hbar, so ~8.33 hbar per USD.
	assert.InDelta(t, 8.3333, rate.HbarPerUSD(), 0.001)
}

func TestContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	client := NewClient(server.URL, "", 5*time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.GetExchangeRate(ctx)
	assert.Error(t, err)
}
