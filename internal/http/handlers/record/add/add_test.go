package add

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/marialebedeva/dailylife-tracker/internal/http/middlewarectx"
	"github.com/marialebedeva/dailylife-tracker/internal/models"
)

type RecordServiceMock struct {
	mock.Mock
}

func (m *RecordServiceMock) AddEvent(ctx context.Context, userUID string, req models.DummyEvent) (models.Record, error) {
	args := m.Called(ctx, userUID, req)
	return args.Get(0).(models.Record), args.Error(1)
}

func (m *RecordServiceMock) AddSkill(ctx context.Context, userUID string, req models.DummySkill) (models.Record, error) {
	args := m.Called(ctx, userUID, req)
	return args.Get(0).(models.Record), args.Error(1)
}

func (m *RecordServiceMock) AddStudy(ctx context.Context, userUID string, req models.DummyStudy) (models.Record, error) {
	args := m.Called(ctx, userUID, req)
	return args.Get(0).(models.Record), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func newRequest(t *testing.T, kind string, body any, withUser bool) *http.Request {
	t.Helper()

	var bodyBytes []byte
	switch v := body.(type) {
	case string:
		bodyBytes = []byte(v)
	default:
		var err error
		bodyBytes, err = json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
	}

	req := httptest.NewRequest(http.MethodPost, "/records/"+kind, bytes.NewReader(bodyBytes))
	ctx := context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123")
	if withUser {
		ctx = context.WithValue(ctx, middlewarectx.UserUID, "uid-1")
	}

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("kind", kind)
	ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)

	return req.WithContext(ctx)
}

func TestAddHandler_ServeHTTP(t *testing.T) {
	eventReq := models.DummyEvent{
		Date:  "2026-08-30",
		Time:  "14:30",
		Title: "Morning run",
	}
	skillReq := models.DummySkill{
		Date:     "2026-08-30",
		Name:     "Go generics",
		Category: "programming",
		Level:    "intermediate",
	}
	studyReq := models.DummyStudy{
		Date:     "2026-08-30",
		Subject:  "Databases",
		Duration: 1.5,
	}

	t.Run("создание события", func(t *testing.T) {
		serviceMock := new(RecordServiceMock)
		serviceMock.On("AddEvent", mock.Anything, "uid-1", eventReq).
			Return(models.Record{ID: 7, Type: models.KindEvent, Date: eventReq.Date, Title: eventReq.Title}, nil).Once()

		rec := httptest.NewRecorder()
		New(newNoopLogger(), serviceMock).ServeHTTP(rec, newRequest(t, "events", eventReq, true))

		assert.Equal(t, http.StatusCreated, rec.Code)
		var got map[string]any
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Equal(t, "OK", got["status"])
		data := got["data"].(map[string]any)
		record := data["record"].(map[string]any)
		assert.Equal(t, float64(7), record["id"])
		assert.Equal(t, "event", record["type"])
		serviceMock.AssertExpectations(t)
	})

	t.Run("создание навыка", func(t *testing.T) {
		serviceMock := new(RecordServiceMock)
		serviceMock.On("AddSkill", mock.Anything, "uid-1", skillReq).
			Return(models.Record{ID: 3, Type: models.KindSkill, Date: skillReq.Date, Name: skillReq.Name}, nil).Once()

		rec := httptest.NewRecorder()
		New(newNoopLogger(), serviceMock).ServeHTTP(rec, newRequest(t, "skills", skillReq, true))

		assert.Equal(t, http.StatusCreated, rec.Code)
		serviceMock.AssertExpectations(t)
	})

	t.Run("создание учебной сессии", func(t *testing.T) {
		serviceMock := new(RecordServiceMock)
		serviceMock.On("AddStudy", mock.Anything, "uid-1", studyReq).
			Return(models.Record{ID: 5, Type: models.KindStudy, Date: studyReq.Date, Subject: studyReq.Subject}, nil).Once()

		rec := httptest.NewRecorder()
		New(newNoopLogger(), serviceMock).ServeHTTP(rec, newRequest(t, "studies", studyReq, true))

		assert.Equal(t, http.StatusCreated, rec.Code)
		serviceMock.AssertExpectations(t)
	})

	t.Run("неизвестный вид записи", func(t *testing.T) {
		serviceMock := new(RecordServiceMock)

		rec := httptest.NewRecorder()
		New(newNoopLogger(), serviceMock).ServeHTTP(rec, newRequest(t, "habits", eventReq, true))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		serviceMock.AssertExpectations(t)
	})

	t.Run("нет пользователя в контексте", func(t *testing.T) {
		serviceMock := new(RecordServiceMock)

		rec := httptest.NewRecorder()
		New(newNoopLogger(), serviceMock).ServeHTTP(rec, newRequest(t, "events", eventReq, false))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		serviceMock.AssertExpectations(t)
	})

	t.Run("некорректный json", func(t *testing.T) {
		serviceMock := new(RecordServiceMock)

		rec := httptest.NewRecorder()
		New(newNoopLogger(), serviceMock).ServeHTTP(rec, newRequest(t, "events", "not a json", true))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		serviceMock.AssertExpectations(t)
	})

	t.Run("ошибка валидации - неизвестная категория", func(t *testing.T) {
		serviceMock := new(RecordServiceMock)
		badSkill := skillReq
		badSkill.Category = "cooking"

		rec := httptest.NewRecorder()
		New(newNoopLogger(), serviceMock).ServeHTTP(rec, newRequest(t, "skills", badSkill, true))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		var got map[string]any
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Contains(t, got["error"], "field Category must be one of")
		serviceMock.AssertExpectations(t)
	})

	t.Run("ошибка валидации - неположительная длительность", func(t *testing.T) {
		serviceMock := new(RecordServiceMock)
		badStudy := studyReq
		badStudy.Duration = 0

		rec := httptest.NewRecorder()
		New(newNoopLogger(), serviceMock).ServeHTTP(rec, newRequest(t, "studies", badStudy, true))

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		serviceMock.AssertExpectations(t)
	})

	t.Run("ошибка хранилища", func(t *testing.T) {
		serviceMock := new(RecordServiceMock)
		serviceMock.On("AddEvent", mock.Anything, "uid-1", eventReq).
			Return(models.Record{}, errors.New("db down")).Once()

		rec := httptest.NewRecorder()
		New(newNoopLogger(), serviceMock).ServeHTTP(rec, newRequest(t, "events", eventReq, true))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		serviceMock.AssertExpectations(t)
	})
}
