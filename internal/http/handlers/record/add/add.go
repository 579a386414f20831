// Package add реализует HTTP-обработчик создания записей дневника.
//
// Вид записи берётся из URL, тело запроса декодируется и валидируется
// по схеме своего вида, владелец — из контекста сессии. В ответ уходит
// созданная запись с присвоенным ID.
package add

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/marialebedeva/dailylife-tracker/internal/http/middlewarectx"
	"github.com/marialebedeva/dailylife-tracker/internal/http/response"
	"github.com/marialebedeva/dailylife-tracker/internal/lib/sl"
	"github.com/marialebedeva/dailylife-tracker/internal/models"
)

// Handler управляет HTTP-запросами на создание записей.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики записей
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики создания записей.
type Service interface {
	AddEvent(ctx context.Context, userUID string, req models.DummyEvent) (models.Record, error)
	AddSkill(ctx context.Context, userUID string, req models.DummySkill) (models.Record, error)
	AddStudy(ctx context.Context, userUID string, req models.DummyStudy) (models.Record, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Создать запись дневника
// @Description Создает запись указанного вида для текущего пользователя. Возвращает созданную запись.
// @Tags Records
// @Accept  json
// @Produce  json
// @Param kind path string true "Вид записи: events, skills или studies"
// @Success 201 {object} map[string]any "Успешное создание записи"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или вид записи"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при создании записи"
// @Router /records/{kind} [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.record.add"
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

	var record models.Record
	switch kind {
	case models.KindEvent:
		var req models.DummyEvent
		record, err = decodeAndAdd(r, h, log, &req, func(ctx context.Context) (models.Record, error) {
			return h.service.AddEvent(ctx, userUID, req)
		})
	case models.KindSkill:
		var req models.DummySkill
		record, err = decodeAndAdd(r, h, log, &req, func(ctx context.Context) (models.Record, error) {
			return h.service.AddSkill(ctx, userUID, req)
		})
	case models.KindStudy:
		var req models.DummyStudy
		record, err = decodeAndAdd(r, h, log, &req, func(ctx context.Context) (models.Record, error) {
			return h.service.AddStudy(ctx, userUID, req)
		})
	}
	if err != nil {
		writeAddError(w, r, log, err)
		return
	}

	log.Info("record created", slog.String("kind", string(kind)), slog.Int64("id", record.ID))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.OKWithData(map[string]any{
		"record": record,
	}))
}

// errBadBody и errValidation разделяют ошибки декодирования и валидации,
// чтобы writeAddError выбрал правильный HTTP-статус.
type errBadBody struct{ err error }

func (e errBadBody) Error() string { return e.err.Error() }

type errValidation struct{ errs validator.ValidationErrors }

func (e errValidation) Error() string { return e.errs.Error() }

func decodeAndAdd(r *http.Request, h *Handler, log *slog.Logger, req any, add func(ctx context.Context) (models.Record, error)) (models.Record, error) {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		return models.Record{}, errBadBody{err}
	}
	log.Info("request body decoded", slog.Any("request", req))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		return models.Record{}, errValidation{err.(validator.ValidationErrors)}
	}
	log.Info("all fields are validated")

	return add(r.Context())
}

func writeAddError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	switch e := err.(type) {
	case errBadBody:
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
	case errValidation:
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(e.errs))
	default:
		log.Error("failed to create record", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create record"))
	}
}
