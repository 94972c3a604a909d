package paymentprovider

import "math"

// CreatePaymentIntentRequest описывает запрос на создание платёжного намерения.
// Amount указывается в минимальных единицах валюты (центах).
type CreatePaymentIntentRequest struct {
	Amount             int64
	Currency           string
	PaymentMethodTypes []string
	IdempotencyKey     string
}

// CreatePaymentIntentResponse — ответ Stripe при создании платёжного намерения.
type CreatePaymentIntentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	Status       string `json:"status"`
}

// MinorUnits переводит цену в десятичных единицах в минимальные единицы
// валюты: 19.99 -> 1999. Произведение округляется: 19.99*100 в float64
// даёт 1998.99..., и прямое усечение теряло бы цент.
func MinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}
