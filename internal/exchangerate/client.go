// Package exchangerate реализует клиент внешнего API курсов валют
// (ExchangeRate-API). Сетевые и парсинговые ошибки возвращаются как есть,
// подстановка резервных значений — ответственность вызывающего слоя.
package exchangerate

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"
)

// Client клиент внешнего API курсов валют.
type Client struct {
	apiURL     string
	httpClient *http.Client
}

// NewClient создаёт новый клиент с заданным базовым URL и таймаутом.
func NewClient(apiURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		apiURL:     apiURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Latest запрашивает актуальные курсы относительно базовой валюты.
func (c *Client) Latest(ctx context.Context, base string) (*LatestResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+"/v4/latest/"+base, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New("unexpected status: " + resp.Status)
	}

	var rateResp LatestResponse
	if err := json.NewDecoder(resp.Body).Decode(&rateResp); err != nil {
		return nil, err
	}
	return &rateResp, nil
}
