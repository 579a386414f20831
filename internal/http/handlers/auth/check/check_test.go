package check

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/marialebedeva/dailylife-tracker/internal/http/middlewarectx"
	"github.com/marialebedeva/dailylife-tracker/internal/models"
)

type AuthServiceMock struct {
	mock.Mock
}

func (m *AuthServiceMock) Check(ctx context.Context, token string) (*models.UserSummary, bool, error) {
	args := m.Called(ctx, token)
	user, _ := args.Get(0).(*models.UserSummary)
	return user, args.Bool(1), args.Error(2)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestCheckHandler_ServeHTTP(t *testing.T) {
	user := &models.UserSummary{UID: "uid-1", Username: "user1"}

	tests := []struct {
		name              string
		token             string
		mockUser          *models.UserSummary
		mockOK            bool
		mockErr           error
		wantStatusCode    int
		wantAuthenticated bool
		wantErrorBody     bool
	}{
		{
			name:              "active session",
			token:             "tok123",
			mockUser:          user,
			mockOK:            true,
			wantStatusCode:    http.StatusOK,
			wantAuthenticated: true,
		},
		{
			name:           "no token",
			token:          "",
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "expired session",
			token:          "tok-old",
			mockOK:         false,
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "store error",
			token:          "tok123",
			mockErr:        errors.New("redis down"),
			wantStatusCode: http.StatusInternalServerError,
			wantErrorBody:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authMock := new(AuthServiceMock)
			authMock.On("Check", mock.Anything, tt.token).
				Return(tt.mockUser, tt.mockOK, tt.mockErr).Once()

			handler := New(newNoopLogger(), authMock)

			req := httptest.NewRequest(http.MethodGet, "/check-auth", nil)
			if tt.token != "" {
				req.AddCookie(&http.Cookie{Name: middlewarectx.SessionCookie, Value: tt.token})
			}
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "reqid123"))
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)

			var got map[string]any
			err := json.NewDecoder(rec.Body).Decode(&got)
			assert.NoError(t, err)

			if tt.wantErrorBody {
				assert.Equal(t, "Error", got["status"])
				return
			}

			data, ok := got["data"].(map[string]any)
			assert.True(t, ok)
			assert.Equal(t, tt.wantAuthenticated, data["authenticated"])
			if tt.wantAuthenticated {
				u, ok := data["user"].(map[string]any)
				assert.True(t, ok)
				assert.Equal(t, "user1", u["username"])
			} else {
				assert.Nil(t, data["user"])
			}

			authMock.AssertExpectations(t)
		})
	}
}
