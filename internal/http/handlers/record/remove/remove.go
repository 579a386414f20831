// Package remove реализует HTTP-обработчик удаления записи дневника.
//
// Удаляется только запись текущего пользователя. Удаление чужой или
// отсутствующей записи не ошибка: ответ HTTP 200 с нулевым счётчиком.
package remove

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/marialebedeva/dailylife-tracker/internal/http/middlewarectx"
	"github.com/marialebedeva/dailylife-tracker/internal/http/response"
	"github.com/marialebedeva/dailylife-tracker/internal/lib/sl"
	"github.com/marialebedeva/dailylife-tracker/internal/models"
)

// Handler управляет HTTP-запросами на удаление записей.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики записей
}

// Service описывает интерфейс бизнес-логики удаления записей.
type Service interface {
	Delete(ctx context.Context, userUID string, kind models.RecordKind, id int64) (int64, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Удалить запись дневника
// @Description Удаляет запись текущего пользователя по виду и ID. Возвращает число удалённых строк.
// @Tags Records
// @Produce  json
// @Param kind path string true "Вид записи: events, skills или studies"
// @Param id path int true "ID записи"
// @Success 200 {object} map[string]any "Результат удаления"
// @Failure 400 {object} response.ErrorResponse "Неизвестный вид записи или некорректный ID"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при удалении записи"
// @Router /records/{kind}/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.record.remove"
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

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		log.Error("invalid record id", slog.String("id", chi.URLParam(r, "id")))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid record id"))
		return
	}

	userUID, ok := r.Context().Value(middlewarectx.UserUID).(string)
	if !ok || userUID == "" {
		log.Error("user uid not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	deleted, err := h.service.Delete(r.Context(), userUID, kind, id)
	if err != nil {
		log.Error("failed to delete record", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not delete record"))
		return
	}

	log.Info("record deleted", slog.String("kind", string(kind)), slog.Int64("id", id), slog.Int64("deleted_count", deleted))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"deleted_count": deleted,
	}))
}
