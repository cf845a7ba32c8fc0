// internal/services/admin_service.go
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/JonathanMaverick/split-chain-backend/internal/config"
	"github.com/JonathanMaverick/split-chain-backend/internal/models"
	"github.com/JonathanMaverick/split-chain-backend/internal/utils"
)

// BalanceSource reports an account's on-ledger balance in tinybars.
type BalanceSource interface {
	GetAccountBalance(ctx context.Context, accountID string) (int64, error)
}

type AdminService struct {
	db     *gorm.DB
	config *config.Config
	ledger BalanceSource
}

type DashboardStats struct {
	TotalUsers         int64   `json:"total_users"`
	ActiveUsers        int64   `json:"active_users"`
	TotalBills         int64   `json:"total_bills"`
	SettledClaims      int64   `json:"settled_claims"`
	PendingClaims      int64   `json:"pending_claims"`
	BilledVolume       float64 `json:"billed_volume"`
	SurchargeTaken     float64 `json:"surcharge_taken"`
	FeeAccountTinybars int64   `json:"fee_account_tinybars"`
}

type UpdateSettingsRequest struct {
	ServiceFeePercent *float64 `json:"service_fee_percent" validate:"omitempty,min=0,max=100"`
	AdminAccount      *string  `json:"admin_account" validate:"omitempty,wallet_address"`
	MaintenanceMode   *bool    `json:"maintenance_mode"`
}

func NewAdminService(db *gorm.DB, config *config.Config, ledger BalanceSource) *AdminService {
	return &AdminService{db: db, config: config, ledger: ledger}
}

// GetDashboardStats aggregates the numbers shown on the admin dashboard.
func (s *AdminService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	if err := s.db.Model(&models.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	if err := s.db.Model(&models.User{}).Where("status = ?", models.UserStatusActive).Count(&stats.ActiveUsers).Error; err != nil {
		return nil, fmt.Errorf("failed to count active users: %w", err)
	}
	if err := s.db.Model(&models.Bill{}).Count(&stats.TotalBills).Error; err != nil {
		return nil, fmt.Errorf("failed to count bills: %w", err)
	}
	if err := s.db.Model(&models.ItemParticipant{}).Where("is_paid <> ''").Count(&stats.SettledClaims).Error; err != nil {
		return nil, fmt.Errorf("failed to count settled claims: %w", err)
	}
	if err := s.db.Model(&models.ItemParticipant{}).Where("is_paid = ''").Count(&stats.PendingClaims).Error; err != nil {
		return nil, fmt.Errorf("failed to count pending claims: %w", err)
	}

	var volume struct{ Total float64 }
	err := s.db.Model(&models.BillItem{}).
		Select("COALESCE(SUM(price), 0) AS total").
		Scan(&volume).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum billed volume: %w", err)
	}
	stats.BilledVolume = volume.Total

	// Settled non-owner claims each carried the service charge on their
	// share; approximate revenue as fee% of the settled volume.
	var settled struct{ Total float64 }
	err = s.db.Model(&models.ItemParticipant{}).
		Joins("JOIN bill_items ON bill_items.id = item_participants.item_id").
		Where("item_participants.is_paid <> ''").
		Select("COALESCE(SUM(bill_items.price / GREATEST((SELECT COUNT(*) FROM item_participants ip2 WHERE ip2.item_id = bill_items.id AND ip2.deleted_at IS NULL), 1)), 0) AS total").
		Scan(&settled).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum settled volume: %w", err)
	}
	stats.SurchargeTaken = settled.Total * s.config.Payment.ServiceFeePercent / 100

	// The fee account balance comes from the ledger, not the database. A
	// mirror node hiccup degrades the dashboard instead of breaking it.
	if s.ledger != nil {
		balance, err := s.ledger.GetAccountBalance(ctx, s.config.Payment.AdminAccount)
		if err != nil {
			logrus.WithError(err).Warn("Failed to fetch fee account balance")
		} else {
			stats.FeeAccountTinybars = balance
		}
	}

	return stats, nil
}

// GetSettings returns the persisted runtime settings, seeding a row from
// the environment config on first call.
func (s *AdminService) GetSettings() (*models.AdminSettings, error) {
	var settings models.AdminSettings
	err := s.db.First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = models.AdminSettings{
			ServiceFeePercent: s.config.Payment.ServiceFeePercent,
			AdminAccount:      s.config.Payment.AdminAccount,
		}
		if err := s.db.Create(&settings).Error; err != nil {
			return nil, fmt.Errorf("failed to seed settings: %w", err)
		}
		return &settings, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return &settings, nil
}

func (s *AdminService) UpdateSettings(req *UpdateSettingsRequest) (*models.AdminSettings, error) {
	settings, err := s.GetSettings()
	if err != nil {
		return nil, err
	}

	if req.ServiceFeePercent != nil {
		settings.ServiceFeePercent = *req.ServiceFeePercent
	}
	if req.AdminAccount != nil {
		settings.AdminAccount = *req.AdminAccount
	}
	if req.MaintenanceMode != nil {
		settings.MaintenanceMode = *req.MaintenanceMode
	}

	if err := s.db.Save(settings).Error; err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}

	// Keep the in-memory config in step so services picking the fee from
	// config see the new value without a restart.
	s.config.Payment.ServiceFeePercent = settings.ServiceFeePercent
	s.config.Payment.AdminAccount = settings.AdminAccount

	return settings, nil
}

// ListUsers returns the paginated user roster for the admin console.
func (s *AdminService) ListUsers(params utils.PaginationParams) ([]models.User, int64, error) {
	query := s.db.Model(&models.User{})

	if params.Search != "" {
		query = query.Where("wallet_address ILIKE ?", "%"+params.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	var users []models.User
	sorted := utils.ApplySort(query, params, []string{"created_at", "wallet_address", "last_login_at"})
	err := utils.ApplyPagination(sorted, params).Find(&users).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	return users, total, nil
}

// SetUserStatus suspends or reinstates a user.
func (s *AdminService) SetUserStatus(walletAddress string, status models.UserStatus) (*models.User, error) {
	var user models.User
	err := s.db.Where("wallet_address = ?", walletAddress).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	user.Status = status
	if err := s.db.Save(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to update user status: %w", err)
	}

	return &user, nil
}
