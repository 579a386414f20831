// Package summary реализует HTTP-обработчик сводной статистики навыков.
//
// Возвращает счётчики навыков текущего пользователя: всего, за
// последние 7 и за последние 30 дней. Окна считаются на момент запроса.
package summary

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/marialebedeva/dailylife-tracker/internal/http/middlewarectx"
	"github.com/marialebedeva/dailylife-tracker/internal/http/response"
	"github.com/marialebedeva/dailylife-tracker/internal/lib/sl"
	"github.com/marialebedeva/dailylife-tracker/internal/models"
)

// Handler управляет HTTP-запросами сводной статистики.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики статистики
}

// Service описывает интерфейс бизнес-логики сводной статистики.
type Service interface {
	Summary(ctx context.Context, userUID string) (*models.StatsSummary, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Сводная статистика навыков
// @Description Возвращает счётчики навыков текущего пользователя: всего, за неделю и за месяц.
// @Tags Stats
// @Produce  json
// @Success 200 {object} map[string]any "Счётчики навыков"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при подсчёте статистики"
// @Router /stats [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.stats.summary"
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

	stats, err := h.service.Summary(r.Context(), userUID)
	if err != nil {
		log.Error("failed to count skills", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not count skills"))
		return
	}

	log.Info("stats counted", slog.Int("total", stats.TotalSkills))
	render.JSON(w, r, response.OKWithData(stats))
}
