package subscriptionmanager

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi"

	"github.com/PParksung/smart-subscription-manager/internal/config"
	"github.com/PParksung/smart-subscription-manager/internal/exchangerate"
	"github.com/PParksung/smart-subscription-manager/internal/newsapi"
	authservice "github.com/PParksung/smart-subscription-manager/internal/services/auth"
	newsservice "github.com/PParksung/smart-subscription-manager/internal/services/news"
	ratesservice "github.com/PParksung/smart-subscription-manager/internal/services/rates"
	subservice "github.com/PParksung/smart-subscription-manager/internal/services/subscription"
	"github.com/PParksung/smart-subscription-manager/internal/session"
	"github.com/PParksung/smart-subscription-manager/internal/storage/jsonfile"
)

type App struct {
	server *http.Server
	logger *slog.Logger
	db     *jsonfile.Storage
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := jsonfile.New(cfg.DataDir)
	if err != nil {
		return nil, err
	}

	// Пустой адрес Redis переключает сессии на память процесса
	var sessions session.Store
	if cfg.AddressRedis != "" {
		sessions, err = session.InitRedisStore(ctx, cfg.RedisConnection, cfg.SessionTTL)
		if err != nil {
			return nil, err
		}
	} else {
		logger.Info("redis address is empty, using in-memory session store")
		sessions = session.NewMemoryStore(cfg.SessionTTL)
	}

	rateClient := exchangerate.NewClient(cfg.ExchangeRateURL, cfg.ClientTimeout)
	newsClient := newsapi.NewClient(cfg.NewsAPIURL, cfg.NewsAPIKey, cfg.ClientTimeout)

	authService := authservice.NewAuthService(db, sessions, logger)
	subscriptionService := subservice.NewSubscriptionService(db, logger)
	ratesService := ratesservice.NewRatesService(rateClient, logger)
	newsService := newsservice.NewNewsService(newsClient, logger)

	router := chi.NewRouter()

	RegisterRoutes(router, logger, cfg, sessions, authService, subscriptionService, ratesService, newsService, os.Stdout)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		return a.server.Shutdown(timeoutCtx)
	}
}
