// Package check реализует HTTP-обработчик проверки текущей сессии.
//
// Возвращает признак authenticated и, если сессия действует, краткую
// информацию о владельце. Ответ всегда HTTP 200: отсутствие сессии —
// валидный результат проверки, а не ошибка.
package check

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

// Handler обрабатывает HTTP-запросы проверки сессии.
type Handler struct {
	log  *slog.Logger // Логгер для записи операций и ошибок
	auth Service      // Сервис аутентификации
}

// Service описывает интерфейс бизнес-логики проверки сессии.
type Service interface {
	Check(ctx context.Context, token string) (*models.UserSummary, bool, error)
}

// New создает новый экземпляр Handler с указанными логгером и сервисом.
func New(log *slog.Logger, auth Service) *Handler {
	return &Handler{
		log:  log,
		auth: auth,
	}
}

// ServeHTTP godoc
// @Summary Проверка сессии
// @Description Сообщает, действует ли сессия запроса, и возвращает её владельца.
// @Tags Auth
// @Produce  json
// @Success 200 {object} map[string]any "Результат проверки"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /check-auth [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.check"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	token := middlewarectx.TokenFromRequest(r)
	user, ok, err := h.auth.Check(r.Context(), token)
	if err != nil {
		log.Error("failed to check session", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to check session"))
		return
	}

	if !ok {
		log.Info("no active session")
		render.JSON(w, r, response.OKWithData(map[string]any{
			"authenticated": false,
		}))
		return
	}

	log.Info("session is active", slog.String("username", user.Username))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"authenticated": true,
		"user":          user,
	}))
}
