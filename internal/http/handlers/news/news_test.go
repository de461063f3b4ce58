package news

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/PParksung/smart-subscription-manager/internal/models"
)

// Мок сервиса с методом GetByCategory
type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) GetByCategory(ctx context.Context, category string, pageSize int) *models.NewsResult {
	args := m.Called(ctx, category, pageSize)
	return args.Get(0).(*models.NewsResult)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestNewsHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name         string
		target       string
		wantCategory string
		wantPageSize int
		result       *models.NewsResult
		wantTotal    bool
	}{
		{
			name:         "defaults applied",
			target:       "/news",
			wantCategory: "technology",
			wantPageSize: 5,
			result: &models.NewsResult{
				Category: "technology",
				Articles: []models.NewsArticle{},
				Source:   "fallback",
			},
		},
		{
			name:         "explicit category and page size",
			target:       "/news?category=music&pageSize=3",
			wantCategory: "music",
			wantPageSize: 3,
			result: &models.NewsResult{
				Category:     "music",
				Articles:     []models.NewsArticle{{Title: "한국어 기사"}},
				Source:       "newsapi",
				TotalResults: 12,
			},
			wantTotal: true,
		},
		{
			name:         "broken page size falls back to default",
			target:       "/news?pageSize=abc",
			wantCategory: "technology",
			wantPageSize: 5,
			result: &models.NewsResult{
				Category: "technology",
				Articles: []models.NewsArticle{},
				Source:   "fallback",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serviceMock := new(ServiceMock)
			serviceMock.On("GetByCategory", mock.Anything, tt.wantCategory, tt.wantPageSize).
				Return(tt.result).Once()

			handler := New(newNoopLogger(), serviceMock)

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)

			var got map[string]any
			assert.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
			assert.Equal(t, true, got["success"])
			assert.Equal(t, tt.result.Category, got["category"])
			assert.Equal(t, tt.result.Source, got["source"])
			if tt.wantTotal {
				assert.Equal(t, float64(12), got["totalResults"])
			} else {
				assert.NotContains(t, got, "totalResults")
			}

			serviceMock.AssertExpectations(t)
		})
	}
}
