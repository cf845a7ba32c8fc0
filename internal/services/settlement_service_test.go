// internal/services/settlement_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JonathanMaverick/split-chain-backend/internal/ledger"
)

func TestCheckTransfer(t *testing.T) {
	creator := "0.0.9000"

	tests := []struct {
		name    string
		tx      *ledger.Transaction
		wantErr error
	}{
		{
			name: "successful transfer crediting the owner",
			tx: &ledger.Transaction{
				Result: "SUCCESS",
				Transfers: []ledger.Transfer{
					{Account: "0.0.1001", Amount: -5500},
					{Account: creator, Amount: 5000},
					{Account: "0.0.6331448", Amount: 500},
				},
			},
			wantErr: nil,
		},
		{
			name: "failed transaction",
			tx: &ledger.Transaction{
				Result: "INSUFFICIENT_PAYER_BALANCE",
				Transfers: []ledger.Transfer{
					{Account: creator, Amount: 5000},
				},
			},
			wantErr: ErrVerificationFailed,
		},
		{
			name: "success but owner not credited",
			tx: &ledger.Transaction{
				Result: "SUCCESS",
				Transfers: []ledger.Transfer{
					{Account: "0.0.1001", Amount: -5000},
					{Account: "0.0.2002", Amount: 5000},
				},
			},
			wantErr: ErrVerificationFailed,
		},
		{
			name: "owner only debited",
			tx: &ledger.Transaction{
				Result: "SUCCESS",
				Transfers: []ledger.Transfer{
					{Account: creator, Amount: -5000},
					{Account: "0.0.2002", Amount: 5000},
				},
			},
			wantErr: ErrVerificationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkTransfer(tt.tx, creator)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
