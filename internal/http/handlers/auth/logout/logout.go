// Package logout реализует HTTP-обработчик выхода пользователя.
//
// Handler удаляет серверную сессию и гасит cookie. Выход без
// действующей сессии тоже считается успешным.
package logout

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/PParksung/smart-subscription-manager/internal/http/response"
	"github.com/PParksung/smart-subscription-manager/internal/lib/sl"
)

// Handler управляет HTTP-запросами на выход пользователей.
type Handler struct {
	log        *slog.Logger // Логгер для записи информации и ошибок
	service    Service      // Сервис бизнес-логики выхода
	cookieName string       // Имя cookie с идентификатором сессии
}

// Service описывает интерфейс бизнес-логики выхода.
type Service interface {
	Logout(ctx context.Context, sessionID string) error
}

// New создает новый Handler с переданными логгером, сервисом и именем cookie.
func New(log *slog.Logger, service Service, cookieName string) *Handler {
	return &Handler{
		log:        log,
		service:    service,
		cookieName: cookieName,
	}
}

// ServeHTTP обрабатывает HTTP-запрос на выход пользователя.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.logout"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	if cookie, err := r.Cookie(h.cookieName); err == nil && cookie.Value != "" {
		if err := h.service.Logout(r.Context(), cookie.Value); err != nil {
			log.Error("failed to delete session", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not logout user"))
			return
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	log.Info("success to logout user")
	render.JSON(w, r, response.OK("logout completed"))
}
