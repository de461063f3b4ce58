// Package services содержит бизнес-логику прокси курсов валют.
//
// Сбой внешнего API намеренно не превращается в ошибку для клиента:
// вместо живых курсов подставляется фиксированная резервная таблица,
// а происхождение данных отражается полем source.
package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/PParksung/smart-subscription-manager/internal/exchangerate"
	"github.com/PParksung/smart-subscription-manager/internal/lib/sl"
	"github.com/PParksung/smart-subscription-manager/internal/models"
)

// Источники данных в ответе.
const (
	SourceExternalAPI = "external_api"
	SourceFallback    = "fallback"
)

// baseCurrency базовая валюта всех запросов курсов.
const baseCurrency = "USD"

// trackedCurrencies валюты, которые всегда присутствуют в ответе.
var trackedCurrencies = []string{"USD", "KRW", "EUR", "JPY", "CNY"}

// fallbackRates резервные курсы, подставляемые при сбое внешнего API
// и для валют, отсутствующих в его ответе.
var fallbackRates = map[string]float64{
	"USD": 1.0,
	"KRW": 1350.0,
	"EUR": 0.92,
	"JPY": 150.0,
	"CNY": 7.2,
}

// RateProvider описывает интерфейс клиента внешнего API курсов валют.
type RateProvider interface {
	Latest(ctx context.Context, base string) (*exchangerate.LatestResponse, error)
}

// RatesService отдаёт курсы пяти отслеживаемых валют относительно USD.
type RatesService struct {
	client RateProvider
	log    *slog.Logger
}

// NewRatesService создает новый экземпляр RatesService.
func NewRatesService(client RateProvider, log *slog.Logger) *RatesService {
	return &RatesService{
		client: client,
		log:    log,
	}
}

// GetRates возвращает курсы валют. Никогда не возвращает ошибку:
// при любом сбое внешнего API подставляется резервная таблица.
func (s *RatesService) GetRates(ctx context.Context) *models.ExchangeRates {
	resp, err := s.client.Latest(ctx, baseCurrency)
	if err != nil {
		s.log.Warn("exchange rate api call failed, using fallback", sl.Err(err))
		return s.fallback()
	}

	rates := make(map[string]float64, len(trackedCurrencies))
	rates["USD"] = 1.0
	for _, currency := range trackedCurrencies[1:] {
		if v, ok := resp.Rates[currency]; ok {
			rates[currency] = v
		} else {
			rates[currency] = fallbackRates[currency]
		}
	}

	return &models.ExchangeRates{
		Base:   baseCurrency,
		Date:   resp.Date,
		Rates:  rates,
		Source: SourceExternalAPI,
	}
}

func (s *RatesService) fallback() *models.ExchangeRates {
	rates := make(map[string]float64, len(fallbackRates))
	for currency, v := range fallbackRates {
		rates[currency] = v
	}
	return &models.ExchangeRates{
		Base:   baseCurrency,
		Date:   time.Now().Format("2006-01-02"),
		Rates:  rates,
		Source: SourceFallback,
	}
}
