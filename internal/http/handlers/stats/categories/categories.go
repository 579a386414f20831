// Package categories реализует HTTP-обработчик разбивки навыков по категориям.
package categories

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/marialebedeva/dailylife-tracker/internal/http/middlewarectx"
	"github.com/marialebedeva/dailylife-tracker/internal/http/response"
	"github.com/marialebedeva/dailylife-tracker/internal/lib/sl"
)

// Handler управляет HTTP-запросами разбивки по категориям.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики статистики
}

// Service описывает интерфейс бизнес-логики разбивки по категориям.
type Service interface {
	CategoryBreakdown(ctx context.Context, userUID string) (map[string]int, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Разбивка навыков по категориям
// @Description Возвращает количество навыков текущего пользователя в каждой категории.
// @Tags Stats
// @Produce  json
// @Success 200 {object} map[string]any "Счётчики по категориям"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при подсчёте статистики"
// @Router /stats/categories [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.stats.categories"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userUID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || userUID == "" {
		log.Error("user uid not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	breakdown, err := h.service.CategoryBreakdown(r.Context(), userUID)
	if err != nil {
		log.Error("failed to count skills by category", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not count skills"))
		return
	}

	log.Info("category breakdown counted", slog.Int("categories", len(breakdown)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"categories": breakdown,
	}))
}
