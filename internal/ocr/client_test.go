// internal/ocr/client_test.go
package ocr

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanReceipt(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/scan", r.URL.Path)
		assert.Contains(t, r.Header.Get("Content-Type"), "multipart/form-data")

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "receipt.jpg", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"store_name": "Sushi Place",
			"bill_date": "2026-08-30",
			"tax": 4.2,
			"items": [
				{"name": "Salmon Roll", "quantity": 2, "price": 24.0},
				{"name": "Green Tea", "quantity": 1, "price": 3.5}
			]
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "", 5*time.Second)
	receipt, err := client.ScanReceipt(context.Background(), "receipt.jpg", strings.NewReader("fake-image-bytes"))

	require.NoError(t, err)
	assert.Equal(t, "Sushi Place", receipt.StoreName)
	assert.InDelta(t, 4.2, receipt.Tax, 1e-9)
	require.Len(t, receipt.Items, 2)
	assert.Equal(t, 2, receipt.Items[0].Quantity)
	assert.InDelta(t, 24.0, receipt.Items[0].Price, 1e-9)
}

func TestScanReceiptServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "unreadable image"}`, http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	client := NewClient(server.URL, "", 5*time.Second)
	_, err := client.ScanReceipt(context.Background(), "receipt.jpg", strings.NewReader("x"))

	assert.ErrorContains(t, err, "unreadable image")
}
