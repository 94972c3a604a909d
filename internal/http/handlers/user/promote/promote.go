// Package promote реализует назначение роли пользователю по его ID.
// Один обработчик обслуживает оба маршрута повышения: роль фиксируется
// при создании обработчика.
package promote

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/MdMahfujHasan/elite-athlete-camp-server/internal/http/response"
	"github.com/MdMahfujHasan/elite-athlete-camp-server/internal/lib/sl"
)

type Handler struct {
	log     *slog.Logger
	service Service
	role    string
}

type Service interface {
	Promote(ctx context.Context, id, role string) (int64, error)
}

// New создает Handler, назначающий роль role.
func New(log *slog.Logger, service Service, role string) *Handler {
	return &Handler{
		log:     log,
		service: service,
		role:    role,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.promote"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		log.Error("invalid id format", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid id"))
		return
	}

	count, err := h.service.Promote(r.Context(), id, h.role)
	if err != nil {
		log.Error("failed to update user role", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to update user role"))
		return
	}

	log.Info("updated user role", slog.String("role", h.role), slog.Int64("modified", count))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"modified_count": count,
	}))
}
