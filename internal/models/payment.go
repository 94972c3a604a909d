package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment представляет завершённый платёж. CartItemIDs — идентификаторы
// элементов корзины, которые были оплачены и подлежат удалению
// в том же запросе (см. services/payment: операция не транзакционна).
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email         string             `bson:"email" json:"email"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	Price         float64            `bson:"price" json:"price"`
	CartItemIDs   []string           `bson:"cartItemIds" json:"cartItemIds"`
	ClassNames    []string           `bson:"classNames,omitempty" json:"classNames,omitempty"`
	Date          time.Time          `bson:"date" json:"date"`
}

// DummyPayment используется для приёма данных из JSON-запроса финализации платежа.
type DummyPayment struct {
	Email         string   `json:"email" validate:"required,email"`
	TransactionID string   `json:"transactionId"`
	Price         float64  `json:"price" validate:"gte=0"`
	CartItemIDs   []string `json:"cartItemIds" validate:"required,min=1"`
	ClassNames    []string `json:"classNames"`
}

// PaymentCompletedEvent публикуется в очередь после финализации платежа.
type PaymentCompletedEvent struct {
	PaymentID    string    `json:"payment_id"`
	Email        string    `json:"email"`
	Price        float64   `json:"price"`
	ItemsRemoved int64     `json:"items_removed"`
	OccurredAt   time.Time `json:"occurred_at"`
}
