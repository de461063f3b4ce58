// Package newsapi реализует клиент NewsAPI (endpoint /everything).
// Ответ со статусом, отличным от "ok", считается ошибкой вызова.
package newsapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Client клиент NewsAPI.
type Client struct {
	apiKey     string
	apiURL     string
	httpClient *http.Client
}

// NewClient создаёт новый клиент с заданным базовым URL, API-ключом и таймаутом.
func NewClient(apiURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		apiKey:     apiKey,
		apiURL:     apiURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Everything ищет статьи по запросу на заданном языке,
// отсортированные по дате публикации.
func (c *Client) Everything(ctx context.Context, query, language string, pageSize int) (*EverythingResponse, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("language", language)
	params.Set("sortBy", "publishedAt")
	params.Set("pageSize", strconv.Itoa(pageSize))
	params.Set("apiKey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+"/everything?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var newsResp EverythingResponse
	if err := json.NewDecoder(resp.Body).Decode(&newsResp); err != nil {
		return nil, err
	}
	// NewsAPI сообщает об ошибках (rate limit, плохой ключ) в теле ответа
	if newsResp.Status != "ok" {
		if newsResp.Message != "" {
			return nil, errors.New("newsapi: " + newsResp.Message)
		}
		return nil, errors.New("newsapi: unexpected status " + newsResp.Status)
	}
	return &newsResp, nil
}
