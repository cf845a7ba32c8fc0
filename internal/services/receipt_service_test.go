// internal/services/receipt_service_test.go
package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseBillDate(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want time.Time
	}{
		{"RFC3339", "2025-03-14T18:30:00Z", time.Date(2025, 3, 14, 18, 30, 0, 0, time.UTC)},
		{"ISO date", "2025-03-14", time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)},
		{"slash date", "2025/03/14", time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, parseBillDate(tt.raw).Equal(tt.want))
		})
	}
}

func TestParseBillDateFallsBackToNow(t *testing.T) {
	before := time.Now()
	got := parseBillDate("14th of March")
	after := time.Now()

	assert.False(t, got.Before(before))
	assert.False(t, got.After(after))
}

func TestAllowedImageExtensions(t *testing.T) {
	assert.True(t, isAllowedImageExtension(".jpg"))
	assert.True(t, isAllowedImageExtension(".heic"))
	assert.False(t, isAllowedImageExtension(".pdf"))
	assert.False(t, isAllowedImageExtension(""))
}
