// Package sessioninfo реализует HTTP-обработчик проверки текущей сессии.
//
// Handler читает cookie сессии и, в отличие от защищённых маршрутов,
// не отвечает 401: отсутствие или истечение сессии даёт успешный ответ
// {authenticated:false}, чтобы клиент мог показать экран входа.
package sessioninfo

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/PParksung/smart-subscription-manager/internal/lib/sl"
	"github.com/PParksung/smart-subscription-manager/internal/models"
	"github.com/PParksung/smart-subscription-manager/internal/session"
)

// Handler управляет HTTP-запросами на проверку сессии.
type Handler struct {
	log        *slog.Logger // Логгер для записи информации и ошибок
	sessions   Store        // Хранилище сессий
	cookieName string       // Имя cookie с идентификатором сессии
}

// Store описывает интерфейс хранилища сессий.
type Store interface {
	Get(ctx context.Context, id string) (*models.Session, error)
}

// New создает новый Handler с переданными логгером, хранилищем и именем cookie.
func New(log *slog.Logger, sessions Store, cookieName string) *Handler {
	return &Handler{
		log:        log,
		sessions:   sessions,
		cookieName: cookieName,
	}
}

// ServeHTTP обрабатывает HTTP-запрос на проверку текущей сессии.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.sessioninfo"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	cookie, err := r.Cookie(h.cookieName)
	if err != nil || cookie.Value == "" {
		render.JSON(w, r, map[string]any{"authenticated": false})
		return
	}

	sess, err := h.sessions.Get(r.Context(), cookie.Value)
	if err != nil {
		if !errors.Is(err, session.ErrSessionNotFound) {
			log.Error("failed to load session", sl.Err(err))
		}
		render.JSON(w, r, map[string]any{"authenticated": false})
		return
	}

	log.Info("session confirmed", slog.Int64("user_id", sess.UserID))
	render.JSON(w, r, map[string]any{
		"authenticated": true,
		"userId":        sess.UserID,
		"userEmail":     sess.Email,
		"userName":      sess.Name,
		"sessionId":     sess.ID,
	})
}
