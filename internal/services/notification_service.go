// internal/services/notification_service.go
package services

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/JonathanMaverick/split-chain-backend/internal/config"
	"github.com/JonathanMaverick/split-chain-backend/internal/models"
)

type NotificationService struct {
	db     *gorm.DB
	config *config.Config
}

func NewNotificationService(db *gorm.DB, config *config.Config) *NotificationService {
	return &NotificationService{
		db:     db,
		config: config,
	}
}

// NotifyBillShared records an in-app notification for a participant who was
// just assigned to a bill. Failures are logged, not surfaced; notifications
// never block bill edits.
func (s *NotificationService) NotifyBillShared(bill *models.Bill, participantID string) {
	if participantID == bill.CreatorID {
		return
	}

	notification := &models.Notification{
		WalletAddress: participantID,
		Type:          models.NotificationTypeBillShared,
		Title:         "You were added to a bill",
		Message:       fmt.Sprintf("%s split a bill from %s with you", bill.CreatorID, bill.StoreName),
		Data: models.JSONB{
			"bill_id":    bill.ID.String(),
			"store_name": bill.StoreName,
			"creator_id": bill.CreatorID,
		},
	}

	if err := s.db.Create(notification).Error; err != nil {
		logrus.WithError(err).WithField("wallet", participantID).Error("Failed to create bill-shared notification")
	}
}

// NotifyPaymentReceived tells the bill owner that a participant settled up.
func (s *NotificationService) NotifyPaymentReceived(bill *models.Bill, payerID, transactionID string, amount float64) {
	notification := &models.Notification{
		WalletAddress: bill.CreatorID,
		Type:          models.NotificationTypePaymentReceived,
		Title:         "Payment received",
		Message:       fmt.Sprintf("%s paid $%.2f for %s", payerID, amount, bill.StoreName),
		Data: models.JSONB{
			"bill_id":        bill.ID.String(),
			"payer_id":       payerID,
			"transaction_id": transactionID,
			"amount":         amount,
		},
	}

	if err := s.db.Create(notification).Error; err != nil {
		logrus.WithError(err).WithField("wallet", bill.CreatorID).Error("Failed to create payment notification")
	}
}

// NotifyFriendAdded tells a wallet identity someone added them as a friend.
func (s *NotificationService) NotifyFriendAdded(userWallet, friendWallet string) {
	notification := &models.Notification{
		WalletAddress: friendWallet,
		Type:          models.NotificationTypeFriendAdded,
		Title:         "New friend",
		Message:       fmt.Sprintf("%s added you as a friend", userWallet),
		Data: models.JSONB{
			"user_wallet_address": userWallet,
		},
	}

	if err := s.db.Create(notification).Error; err != nil {
		logrus.WithError(err).WithField("wallet", friendWallet).Error("Failed to create friend notification")
	}
}

// GetNotifications returns a wallet's notifications, newest first.
func (s *NotificationService) GetNotifications(walletAddress string, unreadOnly bool) ([]models.Notification, error) {
	query := s.db.Where("wallet_address = ?", walletAddress)
	if unreadOnly {
		query = query.Where("status = ?", models.NotificationStatusUnread)
	}

	var notifications []models.Notification
	if err := query.Order("created_at DESC").Limit(100).Find(&notifications).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch notifications: %w", err)
	}
	return notifications, nil
}

// MarkAllRead marks every unread notification for the wallet as read.
func (s *NotificationService) MarkAllRead(walletAddress string) error {
	err := s.db.Model(&models.Notification{}).
		Where("wallet_address = ? AND status = ?", walletAddress, models.NotificationStatusUnread).
		Update("status", models.NotificationStatusRead).Error
	if err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return nil
}
