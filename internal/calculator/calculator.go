// internal/calculator/calculator.go

// Package calculator implements the bill allocation arithmetic: splitting
// line-item prices among their assigned participants, distributing the
// bill-level tax proportionally, and deriving per-participant payment
// status. All functions are pure over an in-memory bill; shares are never
// stored, only computed on read.
package calculator

import (
	"fmt"
	"math"

	"github.com/JonathanMaverick/split-chain-backend/internal/models"
)

// Share is a participant's computed portion of a bill before any surcharge.
type Share struct {
	Base     float64 `json:"base"`
	TaxShare float64 `json:"tax_share"`
}

// Breakdown is the full amount a participant owes, including the service
// surcharge applied to non-owners.
type Breakdown struct {
	Base      float64 `json:"base"`
	TaxShare  float64 `json:"tax_share"`
	Surcharge float64 `json:"surcharge"`
	Total     float64 `json:"total"`
}

// Status is a participant's settlement state on a bill.
type Status string

const (
	// StatusPaid means every item claim for the identity carries a
	// transaction id, or the identity is the bill owner.
	StatusPaid Status = "paid"
	// StatusPending means at least one item claim is still unpaid.
	StatusPending Status = "pending"
	// StatusNotInvolved means the identity has no claim on any item.
	StatusNotInvolved Status = "not_involved"
)

// Subtotal returns the sum of all item prices. An empty item list yields
// zero. Item prices are line totals, so quantity is not consulted.
func Subtotal(bill *models.Bill) float64 {
	var subtotal float64
	for i := range bill.Items {
		subtotal += bill.Items[i].Price
	}
	return subtotal
}

// ParticipantShare accrues, for each item the participant is assigned to,
// an equal portion of the item price plus a tax share proportional to the
// item's fraction of the subtotal. Items with no participants contribute
// nothing; a zero subtotal zeroes the tax term instead of dividing by zero.
func ParticipantShare(bill *models.Bill, participantID string) Share {
	subtotal := Subtotal(bill)

	var share Share
	for i := range bill.Items {
		item := &bill.Items[i]
		if len(item.Participants) == 0 {
			continue
		}
		if !hasParticipant(item, participantID) {
			continue
		}

		n := float64(len(item.Participants))
		share.Base += item.Price / n
		if subtotal > 0 {
			share.TaxShare += item.Price / subtotal * bill.Tax / n
		}
	}
	return share
}

// ShareWithSurcharge computes the amount the participant actually pays.
// Non-owners pay a fixed-rate surcharge on top of base plus tax; the bill
// owner's surcharge is always zero. ratePercent is expressed in percent,
// e.g. 1.0 for 1%.
func ShareWithSurcharge(bill *models.Bill, participantID string, ratePercent float64) Breakdown {
	share := ParticipantShare(bill, participantID)

	breakdown := Breakdown{
		Base:     share.Base,
		TaxShare: share.TaxShare,
	}
	if participantID != bill.CreatorID {
		breakdown.Surcharge = (share.Base + share.TaxShare) * ratePercent / 100
	}
	breakdown.Total = breakdown.Base + breakdown.TaxShare + breakdown.Surcharge
	return breakdown
}

// PaymentStatus derives the participant's settlement state. The bill owner
// is always paid. An identity with no claim on any item is reported as
// not involved rather than vacuously paid.
func PaymentStatus(bill *models.Bill, participantID string) Status {
	if participantID == bill.CreatorID {
		return StatusPaid
	}

	assigned := false
	for i := range bill.Items {
		for j := range bill.Items[i].Participants {
			p := &bill.Items[i].Participants[j]
			if p.ParticipantID != participantID {
				continue
			}
			assigned = true
			if !p.Paid() {
				return StatusPending
			}
		}
	}

	if !assigned {
		return StatusNotInvolved
	}
	return StatusPaid
}

// RecordPayment stamps txID on every claim matching participantID across
// all items, modelling "pay once, settle all your line items in one
// transaction". Claims of other identities are untouched. It returns the
// number of claims stamped.
func RecordPayment(bill *models.Bill, participantID, txID string) int {
	stamped := 0
	for i := range bill.Items {
		for j := range bill.Items[i].Participants {
			p := &bill.Items[i].Participants[j]
			if p.ParticipantID == participantID {
				p.IsPaid = txID
				stamped++
			}
		}
	}
	return stamped
}

// AssignParticipant adds participantID to the item at itemIndex. Adding an
// identity that is already assigned is a no-op. Only the participant list
// of the addressed item is touched.
func AssignParticipant(bill *models.Bill, itemIndex int, participantID string) error {
	if itemIndex < 0 || itemIndex >= len(bill.Items) {
		return fmt.Errorf("item index %d out of range (bill has %d items)", itemIndex, len(bill.Items))
	}

	item := &bill.Items[itemIndex]
	if hasParticipant(item, participantID) {
		return nil
	}

	item.Participants = append(item.Participants, models.ItemParticipant{
		ItemID:        item.ID,
		ParticipantID: participantID,
		IsPaid:        "",
	})
	return nil
}

// UnassignParticipant removes participantID from the item at itemIndex.
// Removing an identity that is not assigned is a no-op.
func UnassignParticipant(bill *models.Bill, itemIndex int, participantID string) error {
	if itemIndex < 0 || itemIndex >= len(bill.Items) {
		return fmt.Errorf("item index %d out of range (bill has %d items)", itemIndex, len(bill.Items))
	}

	item := &bill.Items[itemIndex]
	for j := range item.Participants {
		if item.Participants[j].ParticipantID == participantID {
			item.Participants = append(item.Participants[:j], item.Participants[j+1:]...)
			return nil
		}
	}
	return nil
}

// RoundCurrency rounds to 2 decimal places. Shares are accumulated
// unrounded; rounding happens only at presentation or when an amount is
// dispatched for settlement.
func RoundCurrency(v float64) float64 {
	return math.Round(v*100) / 100
}

func hasParticipant(item *models.BillItem, participantID string) bool {
	for j := range item.Participants {
		if item.Participants[j].ParticipantID == participantID {
			return true
		}
	}
	return false
}
