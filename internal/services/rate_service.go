// internal/services/rate_service.go
package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/JonathanMaverick/split-chain-backend/internal/config"
	"github.com/JonathanMaverick/split-chain-backend/internal/ledger"
)

// RateSource provides the network's current USD exchange rate.
type RateSource interface {
	GetExchangeRate(ctx context.Context) (*ledger.ExchangeRate, error)
}

// RateService caches the hbar/USD rate so bill views don't hit the mirror
// node on every request. The mirror node refreshes the rate a few times an
// hour; a short cache window loses nothing.
type RateService struct {
	source RateSource
	ttl    time.Duration

	mu        sync.Mutex
	rate      float64
	fetchedAt time.Time
}

type RateResponse struct {
	HbarPerUSD float64   `json:"hbar_per_usd"`
	FetchedAt  time.Time `json:"fetched_at"`
}

func NewRateService(source RateSource, config *config.Config) *RateService {
	return &RateService{
		source: source,
		ttl:    time.Duration(config.Payment.RateCacheSecs) * time.Second,
	}
}

// HbarPerUSD returns the conversion factor from a USD amount to hbar.
func (s *RateService) HbarPerUSD(ctx context.Context) (*RateResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.rate > 0 && time.Since(s.fetchedAt) < s.ttl {
		return &RateResponse{HbarPerUSD: s.rate, FetchedAt: s.fetchedAt}, nil
	}

	er, err := s.source.GetExchangeRate(ctx)
	if err != nil {
		// Serve the stale rate if we have one rather than failing the
		// whole bill view.
		if s.rate > 0 {
			logrus.WithError(err).Warn("Exchange rate refresh failed, serving cached rate")
			return &RateResponse{HbarPerUSD: s.rate, FetchedAt: s.fetchedAt}, nil
		}
		return nil, fmt.Errorf("failed to fetch exchange rate: %w", err)
	}

	s.rate = er.HbarPerUSD()
	s.fetchedAt = time.Now()

	return &RateResponse{HbarPerUSD: s.rate, FetchedAt: s.fetchedAt}, nil
}

// ConvertUSD quotes a USD amount in hbar at the cached rate.
func (s *RateService) ConvertUSD(ctx context.Context, usd float64) (float64, error) {
	rate, err := s.HbarPerUSD(ctx)
	if err != nil {
		return 0, err
	}
	return usd * rate.HbarPerUSD, nil
}
