// Package issue реализует выдачу JWT токена по произвольному payload каллера.
//
// Операция сознательно повторяет контракт исходной системы: payload не
// сверяется с существующими пользователями, любой вызвавший может получить
// токен для любого email. Слабость задокументирована в DESIGN.md.
package issue

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/MdMahfujHasan/elite-athlete-camp-server/internal/http/response"
	"github.com/MdMahfujHasan/elite-athlete-camp-server/internal/lib/sl"
)

type Handler struct {
	log   *slog.Logger
	maker Maker
}

// Maker описывает интерфейс подписи произвольного payload.
type Maker interface {
	SignPayload(payload map[string]any) (string, error)
}

func New(log *slog.Logger, maker Maker) *Handler {
	return &Handler{
		log:   log,
		maker: maker,
	}
}

// ServeHTTP godoc
// @Summary Выдать JWT токен
// @Description Подписывает переданный payload с 12-часовым сроком действия и возвращает токен.
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body map[string]any true "Произвольный payload, ожидается email"
// @Success 200 {object} map[string]any "Подписанный токен"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 500 {object} response.ErrorResponse "Ошибка подписи"
// @Router /jwt [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.token.issue"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	token, err := h.maker.SignPayload(payload)
	if err != nil {
		log.Error("failed to sign token", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not issue token"))
		return
	}

	log.Info("issued token")
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"token": token,
	}))
}
