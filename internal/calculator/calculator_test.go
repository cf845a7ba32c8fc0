// internal/calculator/calculator_test.go
package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JonathanMaverick/split-chain-backend/internal/models"
)

const (
	walletA     = "0.0.1001"
	walletB     = "0.0.1002"
	walletC     = "0.0.1003"
	walletOwner = "0.0.9000"
)

func testBill() *models.Bill {
	// Subtotal = 130. A is on both items, B only on the first.
	return &models.Bill{
		StoreName: "Sushi Place",
		Tax:       20,
		CreatorID: walletOwner,
		Items: []models.BillItem{
			{
				Name:     "Salmon Roll",
				Quantity: 2,
				Price:    50,
				Participants: []models.ItemParticipant{
					{ParticipantID: walletA},
					{ParticipantID: walletB},
				},
			},
			{
				Name:     "Sashimi Platter",
				Quantity: 1,
				Price:    80,
				Participants: []models.ItemParticipant{
					{ParticipantID: walletA},
				},
			},
		},
	}
}

func TestSubtotal(t *testing.T) {
	tests := []struct {
		name string
		bill *models.Bill
		want float64
	}{
		{"two items", testBill(), 130},
		{"no items", &models.Bill{CreatorID: walletOwner}, 0},
		{
			"unassigned items still count",
			&models.Bill{Items: []models.BillItem{{Price: 12.5}, {Price: 7.5}}},
			20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Subtotal(tt.bill), 1e-9)
		})
	}
}

func TestParticipantShare(t *testing.T) {
	bill := testBill()

	// A: base = 50/2 + 80 = 105, tax = (50/130)*20/2 + (80/130)*20 = 16.1538...
	shareA := ParticipantShare(bill, walletA)
	assert.InDelta(t, 105.0, shareA.Base, 0.001)
	assert.InDelta(t, 16.1538, shareA.TaxShare, 0.001)

	// B: base = 50/2 = 25, tax = (50/130)*20/2 = 3.8461...
	shareB := ParticipantShare(bill, walletB)
	assert.InDelta(t, 25.0, shareB.Base, 0.001)
	assert.InDelta(t, 3.8461, shareB.TaxShare, 0.001)

	// Unassigned identity accrues nothing.
	shareC := ParticipantShare(bill, walletC)
	assert.Zero(t, shareC.Base)
	assert.Zero(t, shareC.TaxShare)
}

func TestParticipantShareTaxConservation(t *testing.T) {
	// With every item assigned, the tax shares across all identities must
	// sum back to the bill tax.
	bill := testBill()
	total := 0.0
	for _, id := range []string{walletA, walletB} {
		total += ParticipantShare(bill, id).TaxShare
	}
	assert.InDelta(t, bill.Tax, total, 0.001)
}

func TestParticipantShareBaseSumsToItemPrice(t *testing.T) {
	bill := &models.Bill{
		Tax: 0,
		Items: []models.BillItem{
			{
				Price: 100,
				Participants: []models.ItemParticipant{
					{ParticipantID: walletA},
					{ParticipantID: walletB},
					{ParticipantID: walletC},
				},
			},
		},
	}

	sum := 0.0
	for _, id := range []string{walletA, walletB, walletC} {
		sum += ParticipantShare(bill, id).Base
	}
	assert.InDelta(t, 100.0, sum, 1e-9)
}

func TestParticipantShareZeroSubtotal(t *testing.T) {
	// Zero subtotal with nonzero tax must not divide by zero; the tax term
	// is substituted with zero.
	bill := &models.Bill{
		Tax: 10,
		Items: []models.BillItem{
			{Price: 0, Participants: []models.ItemParticipant{{ParticipantID: walletA}}},
		},
	}

	share := ParticipantShare(bill, walletA)
	assert.Zero(t, share.Base)
	assert.Zero(t, share.TaxShare)
}

func TestParticipantShareSkipsEmptyItems(t *testing.T) {
	bill := &models.Bill{
		Tax: 13,
		Items: []models.BillItem{
			{Price: 40, Participants: []models.ItemParticipant{{ParticipantID: walletA}}},
			{Price: 90}, // nobody assigned yet
		},
	}

	share := ParticipantShare(bill, walletA)
	assert.InDelta(t, 40.0, share.Base, 0.001)
	// Tax proportion still uses the full subtotal of 130.
	assert.InDelta(t, 40.0/130.0*13, share.TaxShare, 0.001)
}

func TestShareWithSurcharge(t *testing.T) {
	bill := testBill()

	// Non-owner pays 1% on top of base + tax.
	breakdown := ShareWithSurcharge(bill, walletB, 1.0)
	baseAndTax := 25.0 + 50.0/130.0*20/2
	assert.InDelta(t, baseAndTax*0.01, breakdown.Surcharge, 0.001)
	assert.InDelta(t, baseAndTax*1.01, breakdown.Total, 0.001)

	// The owner never pays a surcharge, even when assigned to items.
	if err := AssignParticipant(bill, 0, walletOwner); err != nil {
		t.Fatal(err)
	}
	ownerBreakdown := ShareWithSurcharge(bill, walletOwner, 1.0)
	assert.Zero(t, ownerBreakdown.Surcharge)
	assert.InDelta(t, ownerBreakdown.Base+ownerBreakdown.TaxShare, ownerBreakdown.Total, 1e-9)
}

func TestPaymentStatus(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(b *models.Bill)
		participantID string
		want          Status
	}{
		{"creator is always paid", nil, walletOwner, StatusPaid},
		{"assigned and unpaid", nil, walletA, StatusPending},
		{
			"partially paid is still pending",
			func(b *models.Bill) { b.Items[0].Participants[0].IsPaid = "0.0.1001@1700000000.000000001" },
			walletA,
			StatusPending,
		},
		{
			"all claims stamped",
			func(b *models.Bill) {
				b.Items[0].Participants[0].IsPaid = "0.0.1001@1700000000.000000001"
				b.Items[1].Participants[0].IsPaid = "0.0.1001@1700000000.000000001"
			},
			walletA,
			StatusPaid,
		},
		{"no claims on any item", nil, walletC, StatusNotInvolved},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bill := testBill()
			if tt.mutate != nil {
				tt.mutate(bill)
			}
			assert.Equal(t, tt.want, PaymentStatus(bill, tt.participantID))
		})
	}
}

func TestRecordPayment(t *testing.T) {
	bill := testBill()
	txID := "0.0.1001@1700000000.000000001"

	stamped := RecordPayment(bill, walletA, txID)

	assert.Equal(t, 2, stamped)
	assert.Equal(t, txID, bill.Items[0].Participants[0].IsPaid)
	assert.Equal(t, txID, bill.Items[1].Participants[0].IsPaid)
	// B's claim is untouched.
	assert.Equal(t, "", bill.Items[0].Participants[1].IsPaid)
	assert.Equal(t, StatusPaid, PaymentStatus(bill, walletA))
	assert.Equal(t, StatusPending, PaymentStatus(bill, walletB))
}

func TestAssignParticipant(t *testing.T) {
	bill := testBill()

	err := AssignParticipant(bill, 0, walletC)
	assert.NoError(t, err)
	assert.Len(t, bill.Items[0].Participants, 3)

	// Idempotent: a second assignment of the same identity is a no-op.
	err = AssignParticipant(bill, 0, walletC)
	assert.NoError(t, err)
	assert.Len(t, bill.Items[0].Participants, 3)

	// Other items are never touched.
	assert.Len(t, bill.Items[1].Participants, 1)

	err = AssignParticipant(bill, 5, walletC)
	assert.Error(t, err)
}

func TestUnassignParticipant(t *testing.T) {
	bill := testBill()
	bill.Items[1].Participants[0].IsPaid = "0.0.1001@1700000000.000000001"

	err := UnassignParticipant(bill, 0, walletB)
	assert.NoError(t, err)
	assert.Len(t, bill.Items[0].Participants, 1)

	// Removing an absent identity is a no-op.
	err = UnassignParticipant(bill, 0, walletB)
	assert.NoError(t, err)
	assert.Len(t, bill.Items[0].Participants, 1)

	// Stamped claims on other items survive the mutation.
	assert.Equal(t, "0.0.1001@1700000000.000000001", bill.Items[1].Participants[0].IsPaid)

	err = UnassignParticipant(bill, -1, walletB)
	assert.Error(t, err)
}

func TestAssignUnassignRoundTrip(t *testing.T) {
	bill := testBill()
	original := make([]string, 0, len(bill.Items[0].Participants))
	for _, p := range bill.Items[0].Participants {
		original = append(original, p.ParticipantID)
	}

	assert.NoError(t, AssignParticipant(bill, 0, walletC))
	assert.NoError(t, UnassignParticipant(bill, 0, walletC))

	after := make([]string, 0, len(bill.Items[0].Participants))
	for _, p := range bill.Items[0].Participants {
		after = append(after, p.ParticipantID)
	}
	assert.Equal(t, original, after)
}

func TestRoundCurrency(t *testing.T) {
	assert.InDelta(t, 16.15, RoundCurrency(16.15384615), 1e-9)
	assert.InDelta(t, 3.85, RoundCurrency(3.84615384), 1e-9)
	assert.InDelta(t, 0.0, RoundCurrency(0), 1e-9)
}
