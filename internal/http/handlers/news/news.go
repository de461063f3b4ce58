// Package news реализует HTTP-обработчик прокси новостей по категории подписки.
//
// Handler читает query-параметры category и pageSize, подставляет значения
// по умолчанию и вызывает бизнес-логику поиска. Сбой внешнего API не
// превращается в ошибку: клиент всегда получает успешный ответ со статьями,
// происхождение данных видно по полю source.
package news

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/PParksung/smart-subscription-manager/internal/http/response"
	"github.com/PParksung/smart-subscription-manager/internal/models"
)

// Значения по умолчанию для query-параметров.
const (
	defaultCategory = "technology"
	defaultPageSize = 5
)

// Handler обрабатывает запросы на получение новостей по категории.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики поиска новостей
}

// Service описывает интерфейс бизнес-логики поиска новостей.
type Service interface {
	GetByCategory(ctx context.Context, category string, pageSize int) *models.NewsResult
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP обрабатывает HTTP-запрос на получение новостей.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.news"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	category := r.URL.Query().Get("category")
	if category == "" {
		category = defaultCategory
	}

	pageSize := defaultPageSize
	if raw := r.URL.Query().Get("pageSize"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			pageSize = parsed
		}
	}

	result := h.service.GetByCategory(r.Context(), category, pageSize)

	log.Info("success to get news",
		slog.String("category", category),
		slog.String("source", result.Source),
		slog.Int("count", len(result.Articles)))

	payload := map[string]any{
		"category": result.Category,
		"articles": result.Articles,
		"source":   result.Source,
	}
	if result.TotalResults > 0 {
		payload["totalResults"] = result.TotalResults
	}
	render.JSON(w, r, response.OKWithData(payload))
}
