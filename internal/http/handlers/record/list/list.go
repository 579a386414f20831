// Package list реализует HTTP-обработчик списка записей одного вида.
//
// Возвращает записи текущего пользователя в порядке убывания даты.
// Пустой список — нормальный ответ, HTTP 200 с пустым массивом.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/marialebedeva/dailylife-tracker/internal/http/middlewarectx"
	"github.com/marialebedeva/dailylife-tracker/internal/http/response"
	"github.com/marialebedeva/dailylife-tracker/internal/lib/sl"
	"github.com/marialebedeva/dailylife-tracker/internal/models"
)

// Handler управляет HTTP-запросами на чтение списка записей.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики записей
}

// Service описывает интерфейс бизнес-логики чтения записей.
type Service interface {
	List(ctx context.Context, userUID string, kind models.RecordKind) ([]models.Record, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список записей одного вида
// @Description Возвращает записи текущего пользователя указанного вида, свежие первыми.
// @Tags Records
// @Produce  json
// @Param kind path string true "Вид записи: events, skills или studies"
// @Success 200 {object} map[string]any "Список записей"
// @Failure 400 {object} response.ErrorResponse "Неизвестный вид записи"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при чтении записей"
// @Router /records/{kind} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.record.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	kind, err := models.ParseRecordKind(chi.URLParam(r, "kind"))
	if err != nil {
		log.Error("unknown record kind", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("unknown record kind"))
		return
	}

	userUID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || userUID == "" {
		log.Error("user uid not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	records, err := h.service.List(r.Context(), userUID, kind)
	if err != nil {
		log.Error("failed to list records", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list records"))
		return
	}

	log.Info("records listed", slog.String("kind", string(kind)), slog.Int("count", len(records)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"records": records,
		"count":   len(records),
	}))
}
