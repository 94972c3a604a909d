package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/MdMahfujHasan/elite-athlete-camp-server/internal/http/response"
	"github.com/MdMahfujHasan/elite-athlete-camp-server/internal/lib/sl"
)

// RoleResolver разрешает роль пользователя по его email.
// Пустая строка означает отсутствие роли ("student").
type RoleResolver interface {
	ResolveRole(ctx context.Context, email string) (string, error)
}

// RequireRole возвращает middleware, который пропускает запрос только если
// роль аутентифицированного пользователя совпадает с требуемой. Роль
// разрешается по email из контекста, положенному JWTMiddleware; middleware
// должен стоять после него в цепочке.
//
// Несовпадение роли завершает запрос со статусом 403 Forbidden.
func RequireRole(role string, resolver RoleResolver, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.RequireRole"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			email, ok := r.Context().Value(Email).(string)
			if !ok || email == "" {
				log.Error("email not found in context")
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("unauthorized access"))
				return
			}

			resolved, err := resolver.ResolveRole(r.Context(), email)
			if err != nil {
				log.Error("failed to resolve role", sl.Err(err))
				w.WriteHeader(http.StatusInternalServerError)
				render.JSON(w, r, response.Error("internal error"))
				return
			}
			if resolved != role {
				log.Error("forbidden", slog.String("required", role), slog.String("resolved", resolved))
				w.WriteHeader(http.StatusForbidden)
				render.JSON(w, r, response.Error("forbidden access"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
