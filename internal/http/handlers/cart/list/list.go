package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/MdMahfujHasan/elite-athlete-camp-server/internal/http/response"
	"github.com/MdMahfujHasan/elite-athlete-camp-server/internal/lib/sl"
	"github.com/MdMahfujHasan/elite-athlete-camp-server/internal/models"
)

type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс выборки корзины: без email возвращается
// пустой список, а не вся коллекция.
type Service interface {
	List(ctx context.Context, email string) ([]*models.CartItem, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.cart.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	email := r.URL.Query().Get("email")

	res, err := h.service.List(r.Context(), email)
	if err != nil {
		log.Error("failed to list cart items", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list cart items"))
		return
	}

	log.Info("list cart items", "count", len(res))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"list_count": len(res),
		"items":      res,
	}))
}
