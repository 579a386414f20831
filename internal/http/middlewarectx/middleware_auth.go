// Package middlewarectx содержит HTTP middleware для проверки
// пользовательской сессии и ограничения частоты запросов.
//
// SessionMiddleware извлекает токен сессии из запроса, валидирует его
// в хранилище сессий и при успехе добавляет в контекст идентификатор
// и имя пользователя. Ни один обработчик за этим middleware не
// выполняется без действующей сессии: отсутствие или истечение токена
// даёт HTTP 401 до любого обращения к записям.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/marialebedeva/dailylife-tracker/internal/http/response"
	"github.com/marialebedeva/dailylife-tracker/internal/lib/sl"
	"github.com/marialebedeva/dailylife-tracker/internal/models"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

const (
	// UserUID — ключ для идентификатора пользователя в контексте
	UserUID Key = "user_uid"
	// User — ключ для имени пользователя в контексте
	User Key = "username"
)

// SessionCookie — имя HTTP-only cookie, в которой транспорт переносит
// токен сессии. Ядро работает только с самим токеном.
const SessionCookie = "session_token"

// Sessions описывает интерфейс проверки токена сессии.
type Sessions interface {
	Validate(ctx context.Context, token string) (*models.Session, bool, error)
}

// TokenFromRequest извлекает токен сессии из cookie или, если её нет,
// из заголовка Authorization в форме Bearer. Пустая строка — токена нет.
func TokenFromRequest(r *http.Request) string {
	if cookie, err := r.Cookie(SessionCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

// SessionMiddleware возвращает HTTP middleware, который требует
// действующую сессию для всех вложенных маршрутов.
//
// Если токен валиден, добавляет UID и имя пользователя в контекст
// запроса, иначе возвращает HTTP 401 Unauthorized.
func SessionMiddleware(sessions Sessions, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.SessionMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			token := TokenFromRequest(r)
			if token == "" {
				log.Error("missing session token")
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("unauthorized, please login"))
				return
			}

			sess, found, err := sessions.Validate(r.Context(), token)
			if err != nil {
				log.Error("failed to validate session", sl.Err(err))
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("unauthorized, please login"))
				return
			}
			if !found {
				log.Error("invalid or expired session token")
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("unauthorized, please login"))
				return
			}

			ctx := context.WithValue(r.Context(), UserUID, sess.UserUID)
			ctx = context.WithValue(ctx, User, sess.Username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
