// internal/services/settlement_service.go
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/JonathanMaverick/split-chain-backend/internal/calculator"
	"github.com/JonathanMaverick/split-chain-backend/internal/config"
	"github.com/JonathanMaverick/split-chain-backend/internal/database"
	"github.com/JonathanMaverick/split-chain-backend/internal/ledger"
	"github.com/JonathanMaverick/split-chain-backend/internal/models"
)

// TransactionLookup is the slice of the ledger client the settlement
// service needs.
type TransactionLookup interface {
	GetTransaction(ctx context.Context, transactionID string) (*ledger.Transaction, error)
}

// SettlementService stamps a participant's claims as paid once the wallet
// has executed the transfer. The wallet signs and submits the transaction;
// the backend verifies it on the mirror node before recording anything.
type SettlementService struct {
	db                  *gorm.DB
	config              *config.Config
	ledger              TransactionLookup
	billService         *BillService
	notificationService *NotificationService
}

type SettleBillRequest struct {
	TransactionID string `json:"transaction_id" validate:"required,transaction_id"`
}

type SettlementResult struct {
	BillID        uuid.UUID            `json:"bill_id"`
	ParticipantID string               `json:"participant_id"`
	TransactionID string               `json:"transaction_id"`
	Amount        calculator.Breakdown `json:"amount"`
	Status        calculator.Status    `json:"status"`
}

func NewSettlementService(db *gorm.DB, config *config.Config, lookup TransactionLookup,
	billService *BillService, notificationService *NotificationService) *SettlementService {
	return &SettlementService{
		db:                  db,
		config:              config,
		ledger:              lookup,
		billService:         billService,
		notificationService: notificationService,
	}
}

// SettleBill verifies transactionID on the ledger and, if it succeeded and
// credited the bill owner, stamps it on every claim the payer holds across
// all items. A participant settles a bill exactly once.
func (s *SettlementService) SettleBill(ctx context.Context, billID uuid.UUID, payerID string, req *SettleBillRequest) (*SettlementResult, error) {
	bill, err := s.billService.GetBill(billID)
	if err != nil {
		return nil, err
	}

	if payerID == bill.CreatorID {
		return nil, ErrOwnerExempt
	}

	switch calculator.PaymentStatus(bill, payerID) {
	case calculator.StatusNotInvolved:
		return nil, ErrNotParticipant
	case calculator.StatusPaid:
		return nil, ErrAlreadyPaid
	}

	if err := s.verifyTransaction(ctx, bill, payerID, req.TransactionID); err != nil {
		return nil, err
	}

	stamped := calculator.RecordPayment(bill, payerID, req.TransactionID)
	if stamped == 0 {
		return nil, ErrNotParticipant
	}

	err = database.WithTransaction(s.db, func(tx *gorm.DB) error {
		itemIDs := make([]uuid.UUID, 0, len(bill.Items))
		for i := range bill.Items {
			itemIDs = append(itemIDs, bill.Items[i].ID)
		}

		result := tx.Model(&models.ItemParticipant{}).
			Where("item_id IN ? AND participant_id = ? AND is_paid = ''", itemIDs, payerID).
			Update("is_paid", req.TransactionID)
		if result.Error != nil {
			return fmt.Errorf("failed to stamp claims: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrAlreadyPaid
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	amount := calculator.ShareWithSurcharge(bill, payerID, s.config.Payment.ServiceFeePercent)
	if s.notificationService != nil {
		s.notificationService.NotifyPaymentReceived(bill, payerID, req.TransactionID, calculator.RoundCurrency(amount.Total))
	}

	logrus.WithFields(logrus.Fields{
		"bill_id":        billID,
		"payer":          payerID,
		"transaction_id": req.TransactionID,
		"claims":         stamped,
	}).Info("Bill settled")

	return &SettlementResult{
		BillID:        billID,
		ParticipantID: payerID,
		TransactionID: req.TransactionID,
		Amount:        amount,
		Status:        calculator.PaymentStatus(bill, payerID),
	}, nil
}

func (s *SettlementService) verifyTransaction(ctx context.Context, bill *models.Bill, payerID, transactionID string) error {
	tx, err := s.ledger.GetTransaction(ctx, transactionID)
	if err != nil {
		if errors.Is(err, ledger.ErrNotFound) {
			return ErrVerificationFailed
		}
		return fmt.Errorf("ledger lookup failed: %w", err)
	}

	if err := checkTransfer(tx, bill.CreatorID); err != nil {
		return err
	}

	// Reusing another participant's settlement transaction is rejected.
	var reused int64
	err = s.db.Model(&models.ItemParticipant{}).
		Joins("JOIN bill_items ON bill_items.id = item_participants.item_id").
		Where("bill_items.bill_id = ? AND item_participants.is_paid = ? AND item_participants.participant_id <> ?",
			bill.ID, transactionID, payerID).
		Count(&reused).Error
	if err != nil {
		return fmt.Errorf("failed to check transaction reuse: %w", err)
	}
	if reused > 0 {
		return ErrVerificationFailed
	}

	return nil
}

// checkTransfer accepts a ledger transaction as settlement proof when it
// executed successfully and credited the bill owner. Amount equivalence is
// not enforced tinybar-for-tinybar; the exchange rate moves between quote
// and submission.
func checkTransfer(tx *ledger.Transaction, creatorID string) error {
	if !tx.Succeeded() {
		return ErrVerificationFailed
	}
	if tx.CreditedAmount(creatorID) <= 0 {
		return ErrVerificationFailed
	}
	return nil
}
