package tracker

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/marialebedeva/dailylife-tracker/internal/http/handlers/auth/check"
	"github.com/marialebedeva/dailylife-tracker/internal/http/handlers/auth/login"
	"github.com/marialebedeva/dailylife-tracker/internal/http/handlers/auth/logout"
	"github.com/marialebedeva/dailylife-tracker/internal/http/handlers/auth/register"
	"github.com/marialebedeva/dailylife-tracker/internal/http/handlers/record/add"
	"github.com/marialebedeva/dailylife-tracker/internal/http/handlers/record/history"
	"github.com/marialebedeva/dailylife-tracker/internal/http/handlers/record/list"
	"github.com/marialebedeva/dailylife-tracker/internal/http/handlers/record/remove"
	"github.com/marialebedeva/dailylife-tracker/internal/http/handlers/record/search"
	"github.com/marialebedeva/dailylife-tracker/internal/http/handlers/stats/categories"
	"github.com/marialebedeva/dailylife-tracker/internal/http/handlers/stats/summary"
	"github.com/marialebedeva/dailylife-tracker/internal/http/middlewarectx"
	authservice "github.com/marialebedeva/dailylife-tracker/internal/services/auth"
	recordservice "github.com/marialebedeva/dailylife-tracker/internal/services/record"
	statsservice "github.com/marialebedeva/dailylife-tracker/internal/services/stats"
	"github.com/marialebedeva/dailylife-tracker/internal/session"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, sessions *session.Store, authService *authservice.AuthService, recordService *recordservice.RecordService, statsService *statsservice.StatsService) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/register", register.New(logger, authService).ServeHTTP)
		r.Post("/login", login.New(logger, authService).ServeHTTP)
		r.Post("/logout", logout.New(logger, authService).ServeHTTP)
		r.Get("/check-auth", check.New(logger, authService).ServeHTTP)

		// Группа с сессионной аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.SessionMiddleware(sessions, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))
			r.Post("/records/{kind}", add.New(logger, recordService).ServeHTTP)
			r.Get("/records/{kind}", list.New(logger, recordService).ServeHTTP)
			r.Delete("/records/{kind}/{id}", remove.New(logger, recordService).ServeHTTP)
			r.Get("/history", history.New(logger, recordService).ServeHTTP)
			r.Get("/search", search.New(logger, recordService).ServeHTTP)
			r.Get("/stats", summary.New(logger, statsService).ServeHTTP)
			r.Get("/stats/categories", categories.New(logger, statsService).ServeHTTP)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
