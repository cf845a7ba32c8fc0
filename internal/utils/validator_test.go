// internal/utils/validator_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type walletPayload struct {
	WalletAddress string `validate:"required,wallet_address"`
}

type transactionPayload struct {
	TransactionID string `validate:"required,transaction_id"`
}

func TestWalletAddressValidation(t *testing.T) {
	tests := []struct {
		value string
		valid bool
	}{
		{"0.0.1001", true},
		{"0.0.6331448", true},
		{"10.2.333", true},
		{"0.0", false},
		{"0.0.abc", false},
		{"wallet-1001", false},
		{"", false},
	}

	for _, tt := range tests {
		err := ValidateStruct(&walletPayload{WalletAddress: tt.value})
		if tt.valid {
			assert.NoError(t, err, tt.value)
		} else {
			assert.Error(t, err, tt.value)
		}
	}
}

func TestTransactionIDValidation(t *testing.T) {
	tests := []struct {
		value string
		valid bool
	}{
		{"0.0.1001@1700000000.000000001", true},
		{"0.0.1001-1700000000-000000001", true},
		{"0.0.1001", false},
		{"1700000000.000000001", false},
		{"", false},
	}

	for _, tt := range tests {
		err := ValidateStruct(&transactionPayload{TransactionID: tt.value})
		if tt.valid {
			assert.NoError(t, err, tt.value)
		} else {
			assert.Error(t, err, tt.value)
		}
	}
}

func TestGetValidationErrorsMessages(t *testing.T) {
	err := ValidateStruct(&walletPayload{WalletAddress: "nope"})

	errs := GetValidationErrors(err)
	assert.Len(t, errs, 1)
	assert.Equal(t, "walletaddress", errs[0].Field)
	assert.Equal(t, "wallet_address", errs[0].Tag)
	assert.Contains(t, errs[0].Message, "account id")
}
