// internal/services/bill_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/JonathanMaverick/split-chain-backend/internal/calculator"
	"github.com/JonathanMaverick/split-chain-backend/internal/config"
	"github.com/JonathanMaverick/split-chain-backend/internal/database"
	"github.com/JonathanMaverick/split-chain-backend/internal/models"
	"github.com/JonathanMaverick/split-chain-backend/internal/utils"
)

type BillService struct {
	db                  *gorm.DB
	config              *config.Config
	notificationService *NotificationService
}

type BillItemRequest struct {
	Name     string  `json:"name" validate:"required,max=255"`
	Quantity int     `json:"quantity" validate:"required,gte=1"`
	Price    float64 `json:"price" validate:"gte=0"`
}

type CreateBillRequest struct {
	StoreName string            `json:"store_name" validate:"required,max=255"`
	BillDate  time.Time         `json:"bill_date" validate:"required"`
	Tax       float64           `json:"tax" validate:"gte=0"`
	Items     []BillItemRequest `json:"items" validate:"required,min=1,dive"`
}

type UpdateBillRequest struct {
	StoreName string            `json:"store_name" validate:"required,max=255"`
	BillDate  time.Time         `json:"bill_date" validate:"required"`
	Tax       float64           `json:"tax" validate:"gte=0"`
	Items     []BillItemRequest `json:"items" validate:"required,min=1,dive"`
}

type AssignParticipantRequest struct {
	ItemIndex     int    `json:"item_index" validate:"gte=0"`
	ParticipantID string `json:"participant_id" validate:"required,wallet_address"`
}

func NewBillService(db *gorm.DB, config *config.Config, notificationService *NotificationService) *BillService {
	return &BillService{
		db:                  db,
		config:              config,
		notificationService: notificationService,
	}
}

// CreateBill stores a new bill for creatorID with no participants assigned
// yet. Item positions preserve the order of the incoming receipt.
func (s *BillService) CreateBill(creatorID string, req *CreateBillRequest) (*models.Bill, error) {
	bill := &models.Bill{
		StoreName: req.StoreName,
		BillDate:  req.BillDate,
		Tax:       req.Tax,
		CreatorID: creatorID,
	}
	for i, item := range req.Items {
		bill.Items = append(bill.Items, models.BillItem{
			Position: i,
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	if err := s.db.Create(bill).Error; err != nil {
		return nil, fmt.Errorf("failed to create bill: %w", err)
	}

	return bill, nil
}

// GetBill loads one bill with items in receipt order and their participant
// claims.
func (s *BillService) GetBill(billID uuid.UUID) (*models.Bill, error) {
	var bill models.Bill
	err := s.db.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("bill_items.position ASC") }).
		Preload("Items.Participants").
		First(&bill, "id = ?", billID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBillNotFound
		}
		return nil, fmt.Errorf("failed to fetch bill: %w", err)
	}
	return &bill, nil
}

// GetBillsByCreator returns the bills a wallet created, paginated, newest
// bill date first by default.
func (s *BillService) GetBillsByCreator(creatorID string, params utils.PaginationParams) ([]models.Bill, int64, error) {
	query := s.db.Model(&models.Bill{}).Where("creator_id = ?", creatorID)
	if params.Search != "" {
		query = query.Where("store_name ILIKE ?", "%"+params.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count bills: %w", err)
	}

	allowedSortFields := []string{"bill_date", "created_at", "store_name"}
	query = utils.ApplySort(query, params, allowedSortFields)
	query = utils.ApplyPagination(query, params)

	var bills []models.Bill
	err := query.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("bill_items.position ASC") }).
		Preload("Items.Participants").
		Find(&bills).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch bills: %w", err)
	}

	return bills, total, nil
}

// GetBillsByParticipant returns the bills a wallet is assigned to on at
// least one item, excluding bills it created.
func (s *BillService) GetBillsByParticipant(walletAddress string, params utils.PaginationParams) ([]models.Bill, int64, error) {
	subquery := s.db.Model(&models.ItemParticipant{}).
		Select("bill_items.bill_id").
		Joins("JOIN bill_items ON bill_items.id = item_participants.item_id").
		Where("item_participants.participant_id = ?", walletAddress)

	query := s.db.Model(&models.Bill{}).
		Where("id IN (?)", subquery).
		Where("creator_id <> ?", walletAddress)
	if params.Search != "" {
		query = query.Where("store_name ILIKE ?", "%"+params.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count bills: %w", err)
	}

	allowedSortFields := []string{"bill_date", "created_at", "store_name"}
	query = utils.ApplySort(query, params, allowedSortFields)
	query = utils.ApplyPagination(query, params)

	var bills []models.Bill
	err := query.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("bill_items.position ASC") }).
		Preload("Items.Participants").
		Find(&bills).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch bills: %w", err)
	}

	return bills, total, nil
}

// UpdateBill replaces the bill's header and items. It is only available to
// the creator, and only while no participant has paid; existing participant
// assignments are discarded with the old items and must be re-assigned.
func (s *BillService) UpdateBill(billID uuid.UUID, callerID string, req *UpdateBillRequest) (*models.Bill, error) {
	bill, err := s.GetBill(billID)
	if err != nil {
		return nil, err
	}
	if bill.CreatorID != callerID {
		return nil, ErrNotCreator
	}
	if bill.HasPaidParticipant() {
		return nil, ErrBillLocked
	}

	err = database.WithTransaction(s.db, func(tx *gorm.DB) error {
		if err := tx.Where("bill_id = ?", bill.ID).Delete(&models.BillItem{}).Error; err != nil {
			return fmt.Errorf("failed to delete old items: %w", err)
		}

		bill.StoreName = req.StoreName
		bill.BillDate = req.BillDate
		bill.Tax = req.Tax
		bill.Items = nil
		for i, item := range req.Items {
			bill.Items = append(bill.Items, models.BillItem{
				BillID:   bill.ID,
				Position: i,
				Name:     item.Name,
				Quantity: item.Quantity,
				Price:    item.Price,
			})
		}

		if err := tx.Save(bill).Error; err != nil {
			return fmt.Errorf("failed to update bill: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetBill(billID)
}

// AssignParticipant adds a wallet to one item's participant set. The add is
// idempotent and touches nothing but the addressed item; stamped claims on
// other items are never disturbed.
func (s *BillService) AssignParticipant(billID uuid.UUID, callerID string, req *AssignParticipantRequest) (*models.Bill, error) {
	bill, err := s.GetBill(billID)
	if err != nil {
		return nil, err
	}
	if bill.CreatorID != callerID {
		return nil, ErrNotCreator
	}
	if req.ItemIndex >= len(bill.Items) {
		return nil, ErrItemOutOfRange
	}

	before := len(bill.Items[req.ItemIndex].Participants)
	if err := calculator.AssignParticipant(bill, req.ItemIndex, req.ParticipantID); err != nil {
		return nil, ErrItemOutOfRange
	}
	if len(bill.Items[req.ItemIndex].Participants) == before {
		// Already assigned; nothing to persist.
		return bill, nil
	}

	claim := bill.Items[req.ItemIndex].Participants[before]
	if err := s.db.Create(&claim).Error; err != nil {
		return nil, fmt.Errorf("failed to assign participant: %w", err)
	}
	bill.Items[req.ItemIndex].Participants[before] = claim

	if s.notificationService != nil {
		s.notificationService.NotifyBillShared(bill, req.ParticipantID)
	}

	return bill, nil
}

// UnassignParticipant removes a wallet's claim from one item. Removing an
// absent claim is a no-op; removing a claim that already carries a
// settlement transaction is refused.
func (s *BillService) UnassignParticipant(billID uuid.UUID, callerID string, req *AssignParticipantRequest) (*models.Bill, error) {
	bill, err := s.GetBill(billID)
	if err != nil {
		return nil, err
	}
	if bill.CreatorID != callerID {
		return nil, ErrNotCreator
	}
	if req.ItemIndex >= len(bill.Items) {
		return nil, ErrItemOutOfRange
	}

	item := &bill.Items[req.ItemIndex]
	for i := range item.Participants {
		if item.Participants[i].ParticipantID != req.ParticipantID {
			continue
		}
		if item.Participants[i].Paid() {
			return nil, ErrClaimPaid
		}

		err := s.db.Unscoped().
			Where("item_id = ? AND participant_id = ?", item.ID, req.ParticipantID).
			Delete(&models.ItemParticipant{}).Error
		if err != nil {
			return nil, fmt.Errorf("failed to unassign participant: %w", err)
		}
		break
	}

	if err := calculator.UnassignParticipant(bill, req.ItemIndex, req.ParticipantID); err != nil {
		return nil, ErrItemOutOfRange
	}
	return bill, nil
}

// DeleteBill removes a bill. Deletion is only permitted while no
// participant has paid anything.
func (s *BillService) DeleteBill(billID uuid.UUID, callerID string) error {
	bill, err := s.GetBill(billID)
	if err != nil {
		return err
	}
	if bill.CreatorID != callerID {
		return ErrNotCreator
	}
	if bill.HasPaidParticipant() {
		return ErrBillLocked
	}

	return database.WithTransaction(s.db, func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Bill{}, "id = ?", bill.ID).Error; err != nil {
			return fmt.Errorf("failed to delete bill: %w", err)
		}
		return nil
	})
}
