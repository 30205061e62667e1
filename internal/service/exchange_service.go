package service

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"registration-web/internal/config"
	"registration-web/internal/models"
)

// AvailableCurrencies is the fixed set accepted as base currency.
var AvailableCurrencies = []string{"USD", "EUR", "CAD", "JPY"}

type exchangeAPIResponse struct {
	Date  string             `json:"date"`
	Rates map[string]float64 `json:"rates"`
}

// ExchangeService converts amounts between currencies using an external
// rate API. Rates are fetched per request and never cached.
type ExchangeService struct {
	baseURL   string
	accessKey string
	client    *http.Client
}

func NewExchangeService(cfg *config.Config) *ExchangeService {
	return &ExchangeService{
		baseURL:   cfg.ExchangeAPIURL,
		accessKey: cfg.ExchangeAPIKey,
		client:    &http.Client{Timeout: cfg.LookupTimeout},
	}
}

// IsSupportedCurrency reports whether currency is in the available set.
func IsSupportedCurrency(currency string) bool {
	for _, available := range AvailableCurrencies {
		if currency == available {
			return true
		}
	}
	return false
}

// Latest converts amount from base into dest at today's rate. An empty dest
// converts into every other available currency.
func (s *ExchangeService) Latest(base, dest string, amount float64) (*models.ExchangeResult, error) {
	symbols := s.symbolsFor(base, dest)

	resp, err := s.fetchRates("latest", base, symbols)
	if err != nil {
		return nil, err
	}

	values := make(map[string]float64, len(symbols))
	for _, symbol := range symbols {
		values[symbol] = amount * resp.Rates[symbol]
	}

	return &models.ExchangeResult{
		BaseCurrency:     base,
		Amount:           amount,
		ExchangeRateDate: resp.Date,
		ExchangeValues:   values,
	}, nil
}

// Historical returns the raw rates for a specific day (YYYY-MM-DD),
// defaulting to today. An empty dest returns every other available currency.
func (s *ExchangeService) Historical(day, base, dest string) (*models.HistoricalRates, error) {
	if day == "" {
		day = time.Now().Format("2006-01-02")
	}
	symbols := s.symbolsFor(base, dest)

	resp, err := s.fetchRates(day, base, symbols)
	if err != nil {
		return nil, err
	}

	rates := make(map[string]float64, len(symbols))
	for _, symbol := range symbols {
		rates[symbol] = resp.Rates[symbol]
	}

	return &models.HistoricalRates{
		BaseCurrency:     base,
		ExchangeRateDate: resp.Date,
		Rates:            rates,
	}, nil
}

func (s *ExchangeService) symbolsFor(base, dest string) []string {
	if dest != "" {
		return []string{dest}
	}
	others := make([]string, 0, len(AvailableCurrencies))
	for _, currency := range AvailableCurrencies {
		if currency != base {
			others = append(others, currency)
		}
	}
	return others
}

func (s *ExchangeService) fetchRates(endpoint, base string, symbols []string) (*exchangeAPIResponse, error) {
	query := url.Values{}
	query.Set("access_key", s.accessKey)
	query.Set("base", base)
	query.Set("symbols", strings.Join(symbols, ","))

	resp, err := s.client.Get(fmt.Sprintf("%s/%s?%s", s.baseURL, endpoint, query.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to reach exchange service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &UpstreamError{Service: "exchange", StatusCode: resp.StatusCode}
	}

	var result exchangeAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode exchange response: %w", err)
	}
	return &result, nil
}
