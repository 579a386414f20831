package middlewarectx

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/marialebedeva/dailylife-tracker/internal/models"
)

type SessionsMock struct {
	mock.Mock
}

func (m *SessionsMock) Validate(ctx context.Context, token string) (*models.Session, bool, error) {
	args := m.Called(ctx, token)
	sess, _ := args.Get(0).(*models.Session)
	return sess, args.Bool(1), args.Error(2)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestTokenFromRequest(t *testing.T) {
	tests := []struct {
		name   string
		cookie string
		header string
		want   string
	}{
		{name: "token from cookie", cookie: "tok-cookie", want: "tok-cookie"},
		{name: "token from bearer header", header: "Bearer tok-header", want: "tok-header"},
		{name: "cookie wins over header", cookie: "tok-cookie", header: "Bearer tok-header", want: "tok-cookie"},
		{name: "no token", want: ""},
		{name: "non-bearer header ignored", header: "Basic abc", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: SessionCookie, Value: tt.cookie})
			}
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			assert.Equal(t, tt.want, TokenFromRequest(req))
		})
	}
}

func TestSessionMiddleware(t *testing.T) {
	sess := &models.Session{
		Token:     "tok123",
		UserUID:   "uid-1",
		Username:  "user1",
		ExpiresAt: time.Now().Add(time.Hour),
	}

	tests := []struct {
		name         string
		token        string
		mockSess     *models.Session
		mockFound    bool
		mockErr      error
		wantCode     int
		wantNextCall bool
	}{
		{
			name:         "valid session",
			token:        "tok123",
			mockSess:     sess,
			mockFound:    true,
			wantCode:     http.StatusOK,
			wantNextCall: true,
		},
		{
			name:     "missing token",
			token:    "",
			wantCode: http.StatusUnauthorized,
		},
		{
			name:      "unknown token",
			token:     "tok-unknown",
			mockFound: false,
			wantCode:  http.StatusUnauthorized,
		},
		{
			name:     "store error",
			token:    "tok123",
			mockErr:  errors.New("redis down"),
			wantCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessionsMock := new(SessionsMock)
			if tt.token != "" {
				sessionsMock.On("Validate", mock.Anything, tt.token).
					Return(tt.mockSess, tt.mockFound, tt.mockErr).Once()
			}

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				assert.Equal(t, "uid-1", r.Context().Value(UserUID))
				assert.Equal(t, "user1", r.Context().Value(User))
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.token != "" {
				req.AddCookie(&http.Cookie{Name: SessionCookie, Value: tt.token})
			}
			rec := httptest.NewRecorder()

			SessionMiddleware(sessionsMock, newNoopLogger())(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantNextCall, nextCalled)
			sessionsMock.AssertExpectations(t)
		})
	}
}
