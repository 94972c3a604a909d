// Package adminstatus реализует проверку "является ли текущий пользователь
// администратором" для самостоятельного запроса клиента.
//
// Email из пути сверяется с email аутентифицированного пользователя из
// контекста. При несовпадении запрос завершается ответом {admin: false}
// без обращения к хранилищу: роль чужого пользователя по этому маршруту
// узнать нельзя.
package adminstatus

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/MdMahfujHasan/elite-athlete-camp-server/internal/http/middlewarectx"
	"github.com/MdMahfujHasan/elite-athlete-camp-server/internal/http/response"
	"github.com/MdMahfujHasan/elite-athlete-camp-server/internal/lib/sl"
	"github.com/MdMahfujHasan/elite-athlete-camp-server/internal/models"
)

type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс разрешения роли пользователя.
type Service interface {
	ResolveRole(ctx context.Context, email string) (string, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.adminstatus"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	email, ok := r.Context().Value(middlewarectx.Email).(string)
	if !ok || email == "" {
		log.Error("email not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized access"))
		return
	}

	paramEmail := chi.URLParam(r, "email")
	if paramEmail != email {
		log.Info("email mismatch, reporting non-admin",
			slog.String("param", paramEmail))
		render.JSON(w, r, response.StatusOKWithData(map[string]any{
			"admin": false,
		}))
		return
	}

	role, err := h.service.ResolveRole(r.Context(), email)
	if err != nil {
		log.Error("failed to resolve role", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("internal error"))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"admin": role == models.RoleAdmin,
	}))
}
