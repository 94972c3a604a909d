package detailedlist

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/MdMahfujHasan/elite-athlete-camp-server/internal/http/response"
	"github.com/MdMahfujHasan/elite-athlete-camp-server/internal/lib/sl"
)

type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс выборки витринной коллекции занятий.
// Документы коллекции слабо типизированы и отдаются как есть.
type Service interface {
	DetailedList(ctx context.Context) ([]bson.M, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.class.detailedlist"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	res, err := h.service.DetailedList(r.Context())
	if err != nil {
		log.Error("failed to list detailed classes", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list detailed classes"))
		return
	}

	log.Info("list detailed classes", "count", len(res))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"list_count": len(res),
		"classes":    res,
	}))
}
