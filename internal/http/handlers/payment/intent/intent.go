// Package intent обрабатывает создание платёжного намерения у провайдера.
//
// Handler принимает цену в десятичных единицах, сервис переводит её в
// минимальные единицы валюты и возвращает client_secret для подтверждения
// платежа на стороне клиента.
package intent

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/MdMahfujHasan/elite-athlete-camp-server/internal/http/response"
	"github.com/MdMahfujHasan/elite-athlete-camp-server/internal/lib/sl"
)

// CreateIntentRequest представляет запрос на создание платёжного намерения.
// RequestID необязателен: если передан, он становится ключом идемпотентности
// и повтор запроса не создаёт дублирующего намерения.
type CreateIntentRequest struct {
	Price     float64 `json:"price" validate:"required,gt=0"`
	RequestID string  `json:"request_id"`
}

type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

type Service interface {
	CreateIntent(ctx context.Context, price float64, requestID string) (string, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Создать платёжное намерение
// @Description Создает платёжное намерение у провайдера и возвращает clientSecret.
// @Tags Payments
// @Accept  json
// @Produce  json
// @Param request body CreateIntentRequest true "Цена и необязательный request_id"
// @Success 200 {object} map[string]any "clientSecret платёжного намерения"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка провайдера"
// @Router /create-payment-intent [post]
// @Security BearerAuth
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.payment.intent"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req CreateIntentRequest
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

	clientSecret, err := h.service.CreateIntent(r.Context(), req.Price, req.RequestID)
	if err != nil {
		log.Error("failed to create payment intent", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create payment intent"))
		return
	}

	log.Info("created payment intent")
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"clientSecret": clientSecret,
	}))
}
