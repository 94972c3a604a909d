// Package payment содержит бизнес-логику платежей: создание платёжного
// намерения у провайдера и финализацию платежа с очисткой корзины.
package payment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/MdMahfujHasan/elite-athlete-camp-server/internal/models"
	"github.com/MdMahfujHasan/elite-athlete-camp-server/internal/paymentprovider"
)

// PaymentRepository определяет методы для работы с платежами и корзиной
// в хранилище.
type PaymentRepository interface {
	// CreatePayment вставляет запись платежа и возвращает её ID.
	CreatePayment(ctx context.Context, payment models.Payment) (string, error)
	// ListPayments возвращает платежи с необязательным фильтром по email.
	ListPayments(ctx context.Context, email string) ([]*models.Payment, error)
	// RemoveCartItems удаляет элементы корзины из списка ID.
	RemoveCartItems(ctx context.Context, ids []string) (int64, error)
}

// ProviderClient определяет интерфейс для работы с платёжным провайдером.
type ProviderClient interface {
	CreatePaymentIntent(ctx context.Context, reqParams paymentprovider.CreatePaymentIntentRequest) (*paymentprovider.CreatePaymentIntentResponse, error)
}

// EventPublisher публикует события платежей в брокер сообщений.
type EventPublisher interface {
	Publish(routingKey string, message any) error
}

// Service реализует бизнес-логику платежей.
type Service struct {
	repo      PaymentRepository
	provider  ProviderClient
	publisher EventPublisher
	currency  string
	log       *slog.Logger
}

// New создает новый экземпляр Service.
func New(repo PaymentRepository, provider ProviderClient, publisher EventPublisher, currency string, log *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		provider:  provider,
		publisher: publisher,
		currency:  currency,
		log:       log,
	}
}

// CreateIntent создаёт платёжное намерение на сумму price в фиксированной
// валюте и возвращает client_secret. Сумма переводится в минимальные
// единицы валюты (центы). requestID каллера становится
// ключом идемпотентности; без него генерируется новый, и повтор запроса
// создаёт новое намерение.
func (s *Service) CreateIntent(ctx context.Context, price float64, requestID string) (string, error) {
	idempotencyKey := requestID
	if idempotencyKey == "" {
		idempotencyKey = uuid.NewString()
	}

	resp, err := s.provider.CreatePaymentIntent(ctx, paymentprovider.CreatePaymentIntentRequest{
		Amount:             paymentprovider.MinorUnits(price),
		Currency:           s.currency,
		PaymentMethodTypes: []string{"card"},
		IdempotencyKey:     idempotencyKey,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}

	s.log.Info("created payment intent",
		slog.Int64("amount", paymentprovider.MinorUnits(price)),
		slog.String("currency", s.currency))
	return resp.ClientSecret, nil
}

// Finalize записывает завершённый платёж и удаляет оплаченные элементы
// корзины. Операции не объединены в транзакцию: сбой между вставкой
// платежа и очисткой корзины оставляет корзину неочищенной. После
// успешного завершения публикуется событие payment.completed; ошибка
// публикации не откатывает платёж.
func (s *Service) Finalize(ctx context.Context, req models.DummyPayment) (string, int64, error) {
	payment := models.Payment{
		Email:         req.Email,
		TransactionID: req.TransactionID,
		Price:         req.Price,
		CartItemIDs:   req.CartItemIDs,
		ClassNames:    req.ClassNames,
		Date:          time.Now().UTC(),
	}

	id, err := s.repo.CreatePayment(ctx, payment)
	if err != nil {
		return "", 0, fmt.Errorf("failed to insert payment: %w", err)
	}

	removed, err := s.repo.RemoveCartItems(ctx, req.CartItemIDs)
	if err != nil {
		return "", 0, fmt.Errorf("payment %s recorded, failed to clear cart: %w", id, err)
	}

	s.log.Info("payment finalized",
		slog.String("id", id),
		slog.Int64("items_removed", removed))

	event := models.PaymentCompletedEvent{
		PaymentID:    id,
		Email:        req.Email,
		Price:        req.Price,
		ItemsRemoved: removed,
		OccurredAt:   time.Now().UTC(),
	}
	if err := s.publisher.Publish("payment.completed", event); err != nil {
		s.log.Warn("failed to publish payment event", slog.Any("err", err))
	}

	return id, removed, nil
}

// List возвращает платежи с необязательным фильтром по email.
func (s *Service) List(ctx context.Context, email string) ([]*models.Payment, error) {
	return s.repo.ListPayments(ctx, email)
}
