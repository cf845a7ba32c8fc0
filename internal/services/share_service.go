// internal/services/share_service.go
package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/JonathanMaverick/split-chain-backend/internal/calculator"
	"github.com/JonathanMaverick/split-chain-backend/internal/config"
)

// ShareService computes the per-participant view of a bill: who owes what,
// resolved through the viewer's friend list, priced in USD and hbar.
type ShareService struct {
	config        *config.Config
	billService   *BillService
	friendService *FriendService
	rateService   *RateService
}

type ParticipantShare struct {
	ParticipantID string            `json:"participant_id"`
	DisplayName   string            `json:"display_name"`
	Kind          string            `json:"kind"`
	Status        calculator.Status `json:"status"`
	Base          float64           `json:"base"`
	TaxShare      float64           `json:"tax_share"`
	Surcharge     float64           `json:"surcharge"`
	Total         float64           `json:"total"`
	TotalHbar     float64           `json:"total_hbar"`
}

type BillSharesResponse struct {
	BillID       uuid.UUID          `json:"bill_id"`
	Subtotal     float64            `json:"subtotal"`
	Tax          float64            `json:"tax"`
	HbarPerUSD   float64            `json:"hbar_per_usd"`
	AdminAccount string             `json:"admin_account"`
	Shares       []ParticipantShare `json:"shares"`
}

func NewShareService(config *config.Config, billService *BillService,
	friendService *FriendService, rateService *RateService) *ShareService {
	return &ShareService{
		config:        config,
		billService:   billService,
		friendService: friendService,
		rateService:   rateService,
	}
}

// GetShares computes every participant's breakdown for a bill as seen by
// viewerID. The bill owner carries no service charge; everyone else pays
// the configured percentage on top of their share.
func (s *ShareService) GetShares(ctx context.Context, billID uuid.UUID, viewerID string) (*BillSharesResponse, error) {
	bill, err := s.billService.GetBill(billID)
	if err != nil {
		return nil, err
	}

	directory, err := s.friendService.DirectoryFor(viewerID)
	if err != nil {
		return nil, err
	}

	rate, err := s.rateService.HbarPerUSD(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to price bill shares: %w", err)
	}

	resolved := calculator.AllParticipants(bill, viewerID, directory)
	shares := make([]ParticipantShare, 0, len(resolved))
	for _, rp := range resolved {
		breakdown := calculator.ShareWithSurcharge(bill, rp.ParticipantID, s.config.Payment.ServiceFeePercent)
		total := calculator.RoundCurrency(breakdown.Total)

		shares = append(shares, ParticipantShare{
			ParticipantID: rp.ParticipantID,
			DisplayName:   rp.DisplayName,
			Kind:          string(rp.Kind),
			Status:        rp.Status,
			Base:          calculator.RoundCurrency(breakdown.Base),
			TaxShare:      calculator.RoundCurrency(breakdown.TaxShare),
			Surcharge:     calculator.RoundCurrency(breakdown.Surcharge),
			Total:         total,
			TotalHbar:     total * rate.HbarPerUSD,
		})
	}

	return &BillSharesResponse{
		BillID:       bill.ID,
		Subtotal:     calculator.RoundCurrency(calculator.Subtotal(bill)),
		Tax:          bill.Tax,
		HbarPerUSD:   rate.HbarPerUSD,
		AdminAccount: s.config.Payment.AdminAccount,
		Shares:       shares,
	}, nil
}

// GetParticipants resolves the identities appearing on a bill without any
// pricing, for the assignment picker.
func (s *ShareService) GetParticipants(billID uuid.UUID, viewerID string) ([]calculator.ResolvedParticipant, error) {
	bill, err := s.billService.GetBill(billID)
	if err != nil {
		return nil, err
	}

	directory, err := s.friendService.DirectoryFor(viewerID)
	if err != nil {
		return nil, err
	}

	return calculator.AllParticipants(bill, viewerID, directory), nil
}
