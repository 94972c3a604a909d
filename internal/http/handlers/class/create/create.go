// Package create реализует HTTP-обработчик создания нового занятия инструктором.
//
// Handler принимает JSON-запрос с данными занятия, валидирует их, вызывает
// бизнес-логику создания и возвращает ID созданной записи. Статус нового
// занятия всегда pending, счётчик студентов нулевой.
package create

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
	"github.com/MdMahfujHasan/elite-athlete-camp-server/internal/models"
)

// Handler управляет HTTP-запросами на создание занятий.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики занятий
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики создания занятия.
type Service interface {
	Create(ctx context.Context, req models.DummyClass) (string, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Создать новое занятие
// @Description Создает занятие со статусом pending. Возвращает ID созданной записи.
// @Tags Classes
// @Accept  json
// @Produce  json
// @Param request body models.DummyClass true "Данные нового занятия"
// @Success 200 {object} map[string]any "Успешное создание занятия"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при создании занятия"
// @Router /classes [post]
// @Security BearerAuth
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.class.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyClass
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

	id, err := h.service.Create(r.Context(), req)
	if err != nil {
		log.Error("failed to create class", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create class"))
		return
	}

	log.Info("created new class", slog.String("id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"inserted_id": id,
	}))
}
