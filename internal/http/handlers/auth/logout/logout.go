// Package logout реализует HTTP-обработчик выхода пользователя.
//
// Токен сессии берётся из cookie или заголовка Authorization, сессия
// уничтожается в хранилище, cookie затирается. Операция идемпотентна:
// повторный выход и выход без токена возвращают HTTP 200.
package logout

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/marialebedeva/dailylife-tracker/internal/http/middlewarectx"
	"github.com/marialebedeva/dailylife-tracker/internal/http/response"
	"github.com/marialebedeva/dailylife-tracker/internal/lib/sl"
)

// Handler обрабатывает HTTP-запросы выхода.
type Handler struct {
	log  *slog.Logger // Логгер для записи операций и ошибок
	auth Service      // Сервис аутентификации
}

// Service описывает интерфейс бизнес-логики выхода.
type Service interface {
	Logout(ctx context.Context, token string) error
}

// New создает новый экземпляр Handler с указанными логгером и сервисом.
func New(log *slog.Logger, auth Service) *Handler {
	return &Handler{
		log:  log,
		auth: auth,
	}
}

// ServeHTTP godoc
// @Summary Выход пользователя
// @Description Уничтожает текущую сессию и затирает cookie. Идемпотентна.
// @Tags Auth
// @Produce  json
// @Success 200 {object} response.Response "Выход выполнен"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /logout [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.logout"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	token := middlewarectx.TokenFromRequest(r)
	if err := h.auth.Logout(r.Context(), token); err != nil {
		log.Error("failed to destroy session", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to logout"))
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middlewarectx.SessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	log.Info("logout success")
	render.JSON(w, r, response.OK())
}
