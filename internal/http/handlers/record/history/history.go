// Package history реализует HTTP-обработчик объединённой ленты записей.
//
// Лента собирает события, навыки и учебные сессии текущего пользователя
// в один список по убыванию даты; каждая запись помечена своим видом.
package history

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

// Handler управляет HTTP-запросами на чтение ленты истории.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики записей
}

// Service описывает интерфейс бизнес-логики ленты истории.
type Service interface {
	History(ctx context.Context, userUID string) ([]models.Record, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Лента истории
// @Description Возвращает все записи текущего пользователя одним списком по убыванию даты.
// @Tags Records
// @Produce  json
// @Success 200 {object} map[string]any "Лента записей"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при чтении ленты"
// @Router /history [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.record.history"
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

	records, err := h.service.History(r.Context(), userUID)
	if err != nil {
		log.Error("failed to build history", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not build history"))
		return
	}

	log.Info("history built", slog.Int("count", len(records)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"records": records,
		"count":   len(records),
	}))
}
