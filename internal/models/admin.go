// internal/models/admin.go
package models

import (
	"github.com/google/uuid"
)

// AdminSettings is the single row of runtime-adjustable knobs. Values here
// override the environment defaults once an admin has touched them.
type AdminSettings struct {
	BaseModel
	ServiceFeePercent float64 `json:"service_fee_percent" gorm:"not null;default:1"`
	AdminAccount      string  `json:"admin_account" gorm:"size:64;not null"`
	MaintenanceMode   bool    `json:"maintenance_mode" gorm:"not null;default:false"`
	UpdatedBy         string  `json:"updated_by" gorm:"size:64"`
}

type AuditLog struct {
	BaseModel
	WalletAddress string     `json:"wallet_address" gorm:"size:64;index"`
	Action        string     `json:"action" gorm:"size:255;not null"`
	ResourceType  string     `json:"resource_type" gorm:"size:50"`
	ResourceID    *uuid.UUID `json:"resource_id" gorm:"type:uuid"`
	IPAddress     string     `json:"ip_address" gorm:"size:45"`
	UserAgent     string     `json:"user_agent" gorm:"size:500"`
	NewValues     JSONB      `json:"new_values" gorm:"type:jsonb"`
}

// Notification is an in-app message for a wallet identity, written when a
// bill is shared with them or one of their bills receives a payment.
type Notification struct {
	BaseModel
	WalletAddress string             `json:"wallet_address" gorm:"size:64;not null;index"`
	Type          NotificationType   `json:"type" gorm:"type:varchar(30);not null"`
	Title         string             `json:"title" gorm:"size:255;not null"`
	Message       string             `json:"message" gorm:"type:text"`
	Data          JSONB              `json:"data" gorm:"type:jsonb"`
	Status        NotificationStatus `json:"status" gorm:"type:varchar(10);default:'unread';index"`
}
