// Package rates реализует HTTP-обработчик прокси курсов валют.
//
// Handler вызывает бизнес-логику получения курсов и возвращает их клиенту.
// Сбой внешнего API не превращается в ошибку: клиент всегда получает
// успешный ответ, происхождение данных видно по полю source.
package rates

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/PParksung/smart-subscription-manager/internal/http/response"
	"github.com/PParksung/smart-subscription-manager/internal/models"
)

// Handler обрабатывает запросы на получение курсов валют.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики получения курсов
}

// Service описывает интерфейс бизнес-логики получения курсов валют.
type Service interface {
	GetRates(ctx context.Context) *models.ExchangeRates
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP обрабатывает HTTP-запрос на получение курсов валют.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.rates"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	rates := h.service.GetRates(r.Context())

	log.Info("success to get exchange rates", slog.String("source", rates.Source))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"base":   rates.Base,
		"date":   rates.Date,
		"rates":  rates.Rates,
		"source": rates.Source,
	}))
}
