// Package subscriptionmanager предоставляет маршруты для основного приложения.
package subscriptionmanager

import (
	"io"
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/PParksung/smart-subscription-manager/internal/config"
	"github.com/PParksung/smart-subscription-manager/internal/http/handlers/auth/login"
	"github.com/PParksung/smart-subscription-manager/internal/http/handlers/auth/logout"
	"github.com/PParksung/smart-subscription-manager/internal/http/handlers/auth/signup"
	"github.com/PParksung/smart-subscription-manager/internal/http/handlers/auth/sessioninfo"
	"github.com/PParksung/smart-subscription-manager/internal/http/handlers/debuglog"
	"github.com/PParksung/smart-subscription-manager/internal/http/handlers/news"
	"github.com/PParksung/smart-subscription-manager/internal/http/handlers/rates"
	"github.com/PParksung/smart-subscription-manager/internal/http/handlers/subscription/create"
	"github.com/PParksung/smart-subscription-manager/internal/http/handlers/subscription/health"
	"github.com/PParksung/smart-subscription-manager/internal/http/handlers/subscription/list"
	"github.com/PParksung/smart-subscription-manager/internal/http/handlers/subscription/read"
	"github.com/PParksung/smart-subscription-manager/internal/http/handlers/subscription/remove"
	"github.com/PParksung/smart-subscription-manager/internal/http/handlers/subscription/reorder"
	"github.com/PParksung/smart-subscription-manager/internal/http/handlers/subscription/update"
	"github.com/PParksung/smart-subscription-manager/internal/http/middlewarectx"
	authservice "github.com/PParksung/smart-subscription-manager/internal/services/auth"
	newsservice "github.com/PParksung/smart-subscription-manager/internal/services/news"
	ratesservice "github.com/PParksung/smart-subscription-manager/internal/services/rates"
	subservice "github.com/PParksung/smart-subscription-manager/internal/services/subscription"
	"github.com/PParksung/smart-subscription-manager/internal/session"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(
	r chi.Router,
	logger *slog.Logger,
	cfg *config.Config,
	sessions session.Store,
	authService *authservice.AuthService,
	subscriptionService *subservice.SubscriptionService,
	ratesService *ratesservice.RatesService,
	newsService *newsservice.NewsService,
	debugOut io.Writer,
) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	// Открытые конечные точки
	r.Post("/auth/signup", signup.New(logger, authService).ServeHTTP)
	r.Post("/auth/login", login.New(logger, authService, cfg.CookieName, cfg.SessionTTL).ServeHTTP)
	r.Post("/auth/logout", logout.New(logger, authService, cfg.CookieName).ServeHTTP)
	r.Get("/auth/session", sessioninfo.New(logger, sessions, cfg.CookieName).ServeHTTP)

	r.Get("/exchange-rates", rates.New(logger, ratesService).ServeHTTP)
	r.Get("/news", news.New(logger, newsService).ServeHTTP)
	r.Post("/api/debug/log", debuglog.New(logger, debugOut).ServeHTTP)

	// Группа с проверкой сессии
	r.Group(func(r chi.Router) {
		r.Use(middlewarectx.SessionMiddleware(sessions, cfg.CookieName, logger))
		r.Use(middlewarectx.RateLimitMiddleware(logger))
		r.Post("/subscriptions", create.New(logger, subscriptionService).ServeHTTP)
		r.Get("/subscriptions", list.New(logger, subscriptionService).ServeHTTP)
		r.Put("/subscriptions/order", reorder.New(logger, subscriptionService).ServeHTTP)
		r.Get("/subscriptions/{id}", read.New(logger, subscriptionService).ServeHTTP)
		r.Put("/subscriptions/{id}", update.New(logger, subscriptionService).ServeHTTP)
		r.Delete("/subscriptions/{id}", remove.New(logger, subscriptionService).ServeHTTP)
	})

	r.Get("/healthz", health.New(logger).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
}
