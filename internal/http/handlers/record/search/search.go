// Package search реализует HTTP-обработчик поиска по записям дневника.
//
// Параметры запроса: q — подстрока без учёта регистра, kind — вид
// записи или "all", from и to — включающий диапазон дат. Все параметры
// необязательны; пустой запрос возвращает всю ленту истории.
package search

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

// Handler управляет HTTP-запросами поиска по записям.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики записей
}

// Service описывает интерфейс бизнес-логики поиска.
type Service interface {
	Search(ctx context.Context, userUID, query, kindFilter, dateFrom, dateTo string) ([]models.Record, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Поиск по записям
// @Description Фильтрует ленту текущего пользователя по подстроке, виду записи и диапазону дат.
// @Tags Records
// @Produce  json
// @Param q query string false "Подстрока поиска без учёта регистра"
// @Param kind query string false "Вид записи: events, skills, studies или all"
// @Param from query string false "Нижняя граница даты, включительно (2006-01-02)"
// @Param to query string false "Верхняя граница даты, включительно (2006-01-02)"
// @Success 200 {object} map[string]any "Найденные записи"
// @Failure 400 {object} response.ErrorResponse "Неизвестный вид записи"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при поиске"
// @Router /search [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.record.search"
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

	query := r.URL.Query().Get("q")
	kind := r.URL.Query().Get("kind")
	dateFrom := r.URL.Query().Get("from")
	dateTo := r.URL.Query().Get("to")

	records, err := h.service.Search(r.Context(), userUID, query, kind, dateFrom, dateTo)
	if err != nil {
		if _, parseErr := models.ParseRecordKind(kind); kind != "" && kind != "all" && parseErr != nil {
			log.Error("unknown record kind", slog.String("kind", kind))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("unknown record kind"))
			return
		}
		log.Error("failed to search records", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not search records"))
		return
	}

	log.Info("search completed", slog.String("query", query), slog.Int("count", len(records)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"records": records,
		"count":   len(records),
	}))
}
