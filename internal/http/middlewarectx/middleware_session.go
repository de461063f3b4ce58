// Package middlewarectx содержит HTTP middleware для проверки серверной сессии.
//
// SessionMiddleware читает идентификатор сессии из cookie, ищет сессию
// в хранилище и в случае успеха добавляет в контекст данные пользователя
// для дальнейшего использования в обработчиках.
//
// В случае отсутствия или истечения сессии возвращает HTTP 401 Unauthorized.
package middlewarectx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/PParksung/smart-subscription-manager/internal/http/response"
	"github.com/PParksung/smart-subscription-manager/internal/lib/sl"
	"github.com/PParksung/smart-subscription-manager/internal/models"
	"github.com/PParksung/smart-subscription-manager/internal/session"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

const (
	// UserID — ключ для идентификатора пользователя в контексте
	UserID Key = "userId"
	// UserEmail — ключ для email пользователя в контексте
	UserEmail Key = "userEmail"
	// UserName — ключ для имени пользователя в контексте
	UserName Key = "userName"
	// SessionID — ключ для идентификатора сессии в контексте
	SessionID Key = "sessionId"
)

// Store описывает интерфейс хранилища сессий для middleware.
type Store interface {
	Get(ctx context.Context, id string) (*models.Session, error)
}

// SessionMiddleware возвращает HTTP middleware, который проверяет cookie сессии.
//
// Если сессия существует, добавляет идентификатор, email и имя пользователя
// в контекст запроса, иначе возвращает ошибку с HTTP статусом 401 Unauthorized.
func SessionMiddleware(sessions Store, cookieName string, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.SessionMiddleware"

			log = log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			cookie, err := r.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				log.Error("missing session cookie")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("unauthorized"))
				return
			}

			sess, err := sessions.Get(r.Context(), cookie.Value)
			if err != nil {
				if !errors.Is(err, session.ErrSessionNotFound) {
					log.Error("failed to load session", sl.Err(err))
				}
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("unauthorized"))
				return
			}

			ctx := context.WithValue(r.Context(), UserID, sess.UserID)
			ctx = context.WithValue(ctx, UserEmail, sess.Email)
			ctx = context.WithValue(ctx, UserName, sess.Name)
			ctx = context.WithValue(ctx, SessionID, sess.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
