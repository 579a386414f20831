package remove

import (
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

func (m *RecordServiceMock) Delete(ctx context.Context, userUID string, kind models.RecordKind, id int64) (int64, error) {
	args := m.Called(ctx, userUID, kind, id)
	return args.Get(0).(int64), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestRemoveHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name           string
		kind           string
		id             string
		withUser       bool
		mockKind       models.RecordKind
		mockID         int64
		mockDeleted    int64
		mockErr        error
		wantMockCall   bool
		wantStatusCode int
		wantDeleted    float64
	}{
		{
			name:           "удаление события",
			kind:           "events",
			id:             "7",
			withUser:       true,
			mockKind:       models.KindEvent,
			mockID:         7,
			mockDeleted:    1,
			wantMockCall:   true,
			wantStatusCode: http.StatusOK,
			wantDeleted:    1,
		},
		{
			name:           "удаление чужой записи не находит строк",
			kind:           "skills",
			id:             "42",
			withUser:       true,
			mockKind:       models.KindSkill,
			mockID:         42,
			mockDeleted:    0,
			wantMockCall:   true,
			wantStatusCode: http.StatusOK,
			wantDeleted:    0,
		},
		{
			name:           "неизвестный вид записи",
			kind:           "habits",
			id:             "7",
			withUser:       true,
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "некорректный id",
			kind:           "events",
			id:             "abc",
			withUser:       true,
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "отрицательный id",
			kind:           "events",
			id:             "-5",
			withUser:       true,
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "нет пользователя в контексте",
			kind:           "events",
			id:             "7",
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:           "ошибка хранилища",
			kind:           "studies",
			id:             "7",
			withUser:       true,
			mockKind:       models.KindStudy,
			mockID:         7,
			mockErr:        errors.New("db down"),
			wantMockCall:   true,
			wantStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serviceMock := new(RecordServiceMock)
			if tt.wantMockCall {
				serviceMock.On("Delete", mock.Anything, "uid-1", tt.mockKind, tt.mockID).
					Return(tt.mockDeleted, tt.mockErr).Once()
			}

			req := httptest.NewRequest(http.MethodDelete, "/records/"+tt.kind+"/"+tt.id, nil)
			ctx := context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123")
			if tt.withUser {
				ctx = context.WithValue(ctx, middlewarectx.UserUID, "uid-1")
			}
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("kind", tt.kind)
			rctx.URLParams.Add("id", tt.id)
			ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
			req = req.WithContext(ctx)

			rec := httptest.NewRecorder()
			New(newNoopLogger(), serviceMock).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			if tt.wantStatusCode == http.StatusOK {
				var got map[string]any
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
				data := got["data"].(map[string]any)
				assert.Equal(t, tt.wantDeleted, data["deleted_count"])
			}

			serviceMock.AssertExpectations(t)
		})
	}
}
