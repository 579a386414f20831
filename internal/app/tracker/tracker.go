// Package tracker собирает приложение дневника: хранилище, миграции,
// сессии, сервисы и HTTP-сервер с graceful shutdown.
package tracker

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/marialebedeva/dailylife-tracker/internal/config"
	"github.com/marialebedeva/dailylife-tracker/internal/migrations"
	authservice "github.com/marialebedeva/dailylife-tracker/internal/services/auth"
	recordservice "github.com/marialebedeva/dailylife-tracker/internal/services/record"
	statsservice "github.com/marialebedeva/dailylife-tracker/internal/services/stats"
	"github.com/marialebedeva/dailylife-tracker/internal/session"
	"github.com/marialebedeva/dailylife-tracker/internal/storage/repository"
)

// App хранит собранный HTTP-сервер и подключения, которые нужно
// закрыть при остановке.
type App struct {
	server   *http.Server
	logger   *slog.Logger
	db       *repository.Storage
	sessions *session.Store
}

// New инициализирует приложение: подключается к Postgres и Redis,
// применяет миграции и регистрирует маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString, cfg.StorageTimeout)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	sessions, err := session.NewStore(ctx, cfg.RedisConnection, cfg.SessionTTL)
	if err != nil {
		return nil, err
	}

	authService := authservice.NewAuthService(db, sessions)
	recordService := recordservice.NewRecordService(db, logger)
	statsService := statsservice.NewStatsService(db, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, sessions, authService, recordService, statsService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server:   srv,
		logger:   logger,
		db:       db,
		sessions: sessions,
	}, nil
}

// Run запускает HTTP-сервер и блокируется до остановки контекста.
// При остановке сервер завершает активные запросы и закрывает
// подключения к хранилищам.
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
		err := a.server.Shutdown(timeoutCtx)
		if closeErr := a.sessions.Close(); closeErr != nil {
			a.logger.Error("failed to close session store", slog.Any("err", closeErr))
		}
		a.db.Close()
		return err
	}
}
