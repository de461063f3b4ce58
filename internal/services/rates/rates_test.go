package services

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/PParksung/smart-subscription-manager/internal/exchangerate"
)

// MockProvider реализует интерфейс RateProvider
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) Latest(ctx context.Context, base string) (*exchangerate.LatestResponse, error) {
	args := m.Called(ctx, base)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*exchangerate.LatestResponse), args.Error(1)
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestGetRates_ExternalAPI(t *testing.T) {
	provider := new(MockProvider)
	provider.On("Latest", mock.Anything, "USD").Return(&exchangerate.LatestResponse{
		Base: "USD",
		Date: "2025-01-15",
		Rates: map[string]float64{
			"KRW": 1342.5,
			"EUR": 0.91,
			"JPY": 148.2,
			"CNY": 7.1,
		},
	}, nil)

	svc := NewRatesService(provider, newTestLogger())
	result := svc.GetRates(context.Background())

	assert.Equal(t, "USD", result.Base)
	assert.Equal(t, "2025-01-15", result.Date)
	assert.Equal(t, SourceExternalAPI, result.Source)
	assert.Equal(t, 1.0, result.Rates["USD"])
	assert.Equal(t, 1342.5, result.Rates["KRW"])
	assert.Equal(t, 0.91, result.Rates["EUR"])
	assert.Equal(t, 148.2, result.Rates["JPY"])
	assert.Equal(t, 7.1, result.Rates["CNY"])
	provider.AssertExpectations(t)
}

func TestGetRates_MissingCurrenciesUseFallbackValues(t *testing.T) {
	provider := new(MockProvider)
	provider.On("Latest", mock.Anything, "USD").Return(&exchangerate.LatestResponse{
		Base:  "USD",
		Date:  "2025-01-15",
		Rates: map[string]float64{"KRW": 1342.5},
	}, nil)

	svc := NewRatesService(provider, newTestLogger())
	result := svc.GetRates(context.Background())

	// Вызов успешен, поэтому source остаётся external_api,
	// но отсутствующие валюты получают резервные значения
	assert.Equal(t, SourceExternalAPI, result.Source)
	assert.Equal(t, 1342.5, result.Rates["KRW"])
	assert.Equal(t, 0.92, result.Rates["EUR"])
	assert.Equal(t, 150.0, result.Rates["JPY"])
	assert.Equal(t, 7.2, result.Rates["CNY"])
}

func TestGetRates_Fallback(t *testing.T) {
	provider := new(MockProvider)
	provider.On("Latest", mock.Anything, "USD").Return(nil, errors.New("network error"))

	svc := NewRatesService(provider, newTestLogger())
	result := svc.GetRates(context.Background())

	assert.Equal(t, SourceFallback, result.Source)
	assert.NotEmpty(t, result.Date)
	for _, currency := range []string{"USD", "KRW", "EUR", "JPY", "CNY"} {
		assert.Contains(t, result.Rates, currency)
	}
	assert.Equal(t, 1.0, result.Rates["USD"])
	assert.Equal(t, 1350.0, result.Rates["KRW"])
}
