package read

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/PParksung/smart-subscription-manager/internal/http/middlewarectx"
	"github.com/PParksung/smart-subscription-manager/internal/models"
	services "github.com/PParksung/smart-subscription-manager/internal/services/subscription"
)

// Мок сервиса с методом Read
type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Read(ctx context.Context, userID, id int64) (*models.Subscription, error) {
	args := m.Called(ctx, userID, id)
	entry, _ := args.Get(0).(*models.Subscription)
	return entry, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestReadHandler_ServeHTTP(t *testing.T) {
	serviceMock := new(ServiceMock)
	logger := newNoopLogger()

	handler := New(logger, serviceMock)

	tests := []struct {
		name           string
		urlID          string
		mockEntry      *models.Subscription
		mockErr        error
		wantStatusCode int
		wantSuccess    bool
	}{
		{
			name:           "valid read",
			urlID:          "100",
			mockEntry:      &models.Subscription{ID: 100, UserID: 42, Name: "Netflix"},
			wantStatusCode: http.StatusOK,
			wantSuccess:    true,
		},
		{
			name:           "bad id in url",
			urlID:          "abc",
			wantStatusCode: http.StatusBadRequest,
			wantSuccess:    false,
		},
		{
			name:           "subscription not found",
			urlID:          "999",
			mockErr:        services.ErrEntryNotFound,
			wantStatusCode: http.StatusNotFound,
			wantSuccess:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serviceMock.ExpectedCalls = nil
			serviceMock.Calls = nil

			if tt.mockEntry != nil || tt.mockErr != nil {
				serviceMock.On("Read", mock.Anything, int64(42), mock.Anything).
					Return(tt.mockEntry, tt.mockErr).Once()
			}

			req := httptest.NewRequest(http.MethodGet, "/subscriptions/"+tt.urlID, nil)

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.urlID)
			ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
			ctx = context.WithValue(ctx, middleware.RequestIDKey, "reqid123")
			ctx = context.WithValue(ctx, middlewarectx.UserID, int64(42))
			req = req.WithContext(ctx)

			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var got map[string]any
			assert.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
			assert.Equal(t, tt.wantSuccess, got["success"])

			if tt.mockEntry != nil {
				sub, ok := got["subscription"].(map[string]any)
				assert.True(t, ok)
				assert.Equal(t, "Netflix", sub["name"])
			}

			serviceMock.AssertExpectations(t)
		})
	}
}
