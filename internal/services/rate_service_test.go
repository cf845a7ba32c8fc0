// internal/services/rate_service_test.go
package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JonathanMaverick/split-chain-backend/internal/config"
	"github.com/JonathanMaverick/split-chain-backend/internal/ledger"
)

type fakeRateSource struct {
	rate  *ledger.ExchangeRate
	err   error
	calls int
}

func (f *fakeRateSource) GetExchangeRate(ctx context.Context) (*ledger.ExchangeRate, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.rate, nil
}

func rateTestConfig() *config.Config {
	return &config.Config{
		Payment: config.PaymentConfig{RateCacheSecs: 60},
	}
}

func TestRateServiceFetchesAndConverts(t *testing.T) {
	// 12 cents buy 1 hbar: 100/12 hbar per dollar.
	source := &fakeRateSource{rate: &ledger.ExchangeRate{CentEquiv: 12, HbarEquiv: 1}}
	svc := NewRateService(source, rateTestConfig())

	resp, err := svc.HbarPerUSD(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 8.3333, resp.HbarPerUSD, 0.001)

	hbar, err := svc.ConvertUSD(context.Background(), 3.0)
	require.NoError(t, err)
	assert.InDelta(t, 25.0, hbar, 0.01)
}

func TestRateServiceCachesWithinTTL(t *testing.T) {
	source := &fakeRateSource{rate: &ledger.ExchangeRate{CentEquiv: 12, HbarEquiv: 1}}
	svc := NewRateService(source, rateTestConfig())

	for i := 0; i < 5; i++ {
		_, err := svc.HbarPerUSD(context.Background())
		require.NoError(t, err)
	}

	assert.Equal(t, 1, source.calls)
}

func TestRateServiceServesStaleOnRefreshFailure(t *testing.T) {
	source := &fakeRateSource{rate: &ledger.ExchangeRate{CentEquiv: 12, HbarEquiv: 1}}
	cfg := rateTestConfig()
	cfg.Payment.RateCacheSecs = 0
	svc := NewRateService(source, cfg)

	first, err := svc.HbarPerUSD(context.Background())
	require.NoError(t, err)

	source.err = errors.New("mirror node down")
	second, err := svc.HbarPerUSD(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first.HbarPerUSD, second.HbarPerUSD)
}

func TestRateServiceFailsWithoutCache(t *testing.T) {
	source := &fakeRateSource{err: errors.New("mirror node down")}
	svc := NewRateService(source, rateTestConfig())

	_, err := svc.HbarPerUSD(context.Background())
	assert.Error(t, err)
}
