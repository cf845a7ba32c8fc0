// internal/models/bill.go
package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Bill is one uploaded or manually created receipt being split among
// participants. CreatorID is the wallet address of the bill owner; the
// owner never pays their own bill.
type Bill struct {
	BaseModel
	StoreName string     `json:"store_name" gorm:"size:255;not null"`
	BillDate  time.Time  `json:"bill_date" gorm:"not null"`
	Tax       float64    `json:"tax" gorm:"type:decimal(12,2);not null;default:0"`
	CreatorID string     `json:"creator_id" gorm:"size:64;not null;index"`
	Items     []BillItem `json:"items" gorm:"foreignKey:BillID;constraint:OnDelete:CASCADE"`
}

// BillItem is one priced line of a bill. Price is the total for the whole
// line (quantity already applied), which is the amount a participant set
// divides.
type BillItem struct {
	BaseModel
	BillID       uuid.UUID         `json:"bill_id" gorm:"type:uuid;not null;index"`
	Position     int               `json:"position" gorm:"not null;default:0"`
	Name         string            `json:"name" gorm:"size:255;not null"`
	Quantity     int               `json:"quantity" gorm:"not null;default:1"`
	Price        float64           `json:"price" gorm:"type:decimal(12,2);not null"`
	Participants []ItemParticipant `json:"participants" gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE"`
}

// ItemParticipant is one wallet identity's claim on one item. IsPaid holds
// the settlement transaction id once paid; empty string means unpaid. The
// transition is one-way, enforced by the bill service.
type ItemParticipant struct {
	BaseModel
	ItemID        uuid.UUID `json:"item_id" gorm:"type:uuid;not null;index"`
	ParticipantID string    `json:"participant_id" gorm:"size:64;not null;index"`
	IsPaid        string    `json:"is_paid" gorm:"size:128;not null;default:''"`
}

// Paid reports whether this claim has been settled.
func (p *ItemParticipant) Paid() bool {
	return strings.TrimSpace(p.IsPaid) != ""
}

// HasPaidParticipant reports whether any participant on any item has already
// settled. Bills in that state must not be deleted or restructured.
func (b *Bill) HasPaidParticipant() bool {
	for i := range b.Items {
		for j := range b.Items[i].Participants {
			if b.Items[i].Participants[j].Paid() {
				return true
			}
		}
	}
	return false
}
