// Package login реализует HTTP-обработчик входа пользователя.
//
// Handler принимает JSON-запрос с email и паролем, проверяет пару
// через сервис аутентификации, создаёт серверную сессию и выставляет
// cookie с её идентификатором.
//
// Любая неверная пара email+пароль даёт одинаковый ответ 401,
// не раскрывая, какое из полей было неверным.
package login

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/PParksung/smart-subscription-manager/internal/http/response"
	"github.com/PParksung/smart-subscription-manager/internal/lib/sl"
	"github.com/PParksung/smart-subscription-manager/internal/models"
	services "github.com/PParksung/smart-subscription-manager/internal/services/auth"
)

// Handler управляет HTTP-запросами на вход пользователей.
type Handler struct {
	log        *slog.Logger        // Логгер для записи информации и ошибок
	service    Service             // Сервис бизнес-логики входа
	validate   *validator.Validate // Валидатор структуры входящих данных
	cookieName string              // Имя cookie с идентификатором сессии
	sessionTTL time.Duration       // Время жизни cookie
}

// Service описывает интерфейс бизнес-логики входа.
type Service interface {
	Login(ctx context.Context, email, password string) (*models.Session, error)
}

// New создает новый Handler с переданными логгером, сервисом и параметрами cookie.
func New(log *slog.Logger, service Service, cookieName string, sessionTTL time.Duration) *Handler {
	return &Handler{
		log:        log,
		service:    service,
		validate:   validator.New(),
		cookieName: cookieName,
		sessionTTL: sessionTTL,
	}
}

// ServeHTTP обрабатывает HTTP-запрос на вход пользователя.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.login"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	sess, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			log.Error("invalid credentials", slog.String("email", req.Email))
			w.WriteHeader(http.StatusUnauthorized)
			render.JSON(w, r, response.Error("invalid email or password"))
			return
		}
		log.Error("failed to login user", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not login user"))
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    sess.ID,
		Path:     "/",
		MaxAge:   int(h.sessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	log.Info("success to login user", slog.Int64("user_id", sess.UserID))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"message": "login completed",
		"user": map[string]any{
			"id":    sess.UserID,
			"name":  sess.Name,
			"email": sess.Email,
		},
		"sessionId": sess.ID,
	}))
}
