// Package finalize обрабатывает запись завершённого платежа.
//
// Handler принимает запись платежа со списком идентификаторов элементов
// корзины; сервис вставляет платёж и удаляет перечисленные элементы.
// Операции не атомарны (см. services/payment).
package finalize

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/MdMahfujHasan/elite-athlete-camp-server/internal/http/response"
	"github.com/MdMahfujHasan/elite-athlete-camp-server/internal/lib/sl"
	"github.com/MdMahfujHasan/elite-athlete-camp-server/internal/models"
)

type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

type Service interface {
	Finalize(ctx context.Context, req models.DummyPayment) (string, int64, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Записать завершённый платёж
// @Description Вставляет запись платежа и удаляет оплаченные элементы корзины.
// @Tags Payments
// @Accept  json
// @Produce  json
// @Param request body models.DummyPayment true "Данные платежа со списком элементов корзины"
// @Success 200 {object} map[string]any "ID платежа и количество удалённых элементов"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или идентификатор"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при записи платежа"
// @Router /payment [post]
// @Security BearerAuth
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.payment.finalize"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyPayment
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	for _, id := range req.CartItemIDs {
		if _, err := primitive.ObjectIDFromHex(id); err != nil {
			log.Error("invalid cart item id", slog.String("id", id))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid id"))
			return
		}
	}

	id, removed, err := h.service.Finalize(r.Context(), req)
	if err != nil {
		log.Error("failed to finalize payment", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to finalize payment"))
		return
	}

	log.Info("payment finalized", slog.String("id", id), slog.Int64("deleted", removed))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"inserted_id":   id,
		"deleted_count": removed,
	}))
}
