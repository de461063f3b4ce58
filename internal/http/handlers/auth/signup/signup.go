// Package signup реализует HTTP-обработчик регистрации нового пользователя.
//
// Handler принимает JSON-запрос с именем, email и паролем, валидирует их,
// вызывает бизнес-логику регистрации через сервис и возвращает публичные
// данные созданного пользователя в JSON-формате.
//
// В случае ошибок формируются соответствующие HTTP-ответы с описанием проблемы.
package signup

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/PParksung/smart-subscription-manager/internal/http/response"
	"github.com/PParksung/smart-subscription-manager/internal/lib/sl"
	"github.com/PParksung/smart-subscription-manager/internal/models"
	services "github.com/PParksung/smart-subscription-manager/internal/services/auth"
)

// Handler управляет HTTP-запросами на регистрацию пользователей.
//
// Использует логгер для записи операций и ошибок,
// сервис бизнес-логики для создания пользователя,
// а также валидатор для проверки структуры входных данных.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики регистрации
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики регистрации.
type Service interface {
	Signup(ctx context.Context, req models.SignupRequest) (*models.PublicUser, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP обрабатывает HTTP-запрос на регистрацию нового пользователя.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.signup"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.String("email", req.Email))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}
	log.Info("all fields are validated")

	user, err := h.service.Signup(r.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			log.Error("email already in use", slog.String("email", req.Email))
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error("email already in use"))
			return
		}
		log.Error("failed to register user", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not register user"))
		return
	}

	log.Info("success to register user", slog.Int64("id", user.ID))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"message": "signup completed",
		"user":    user,
	}))
}
