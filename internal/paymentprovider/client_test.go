package paymentprovider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_CreatePaymentIntent(t *testing.T) {
	t.Run("успешное создание намерения", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/payment_intents", r.URL.Path)
			assert.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))
			assert.Equal(t, "idem-key-1", r.Header.Get("Idempotency-Key"))

			require.NoError(t, r.ParseForm())
			assert.Equal(t, "1999", r.PostForm.Get("amount"))
			assert.Equal(t, "usd", r.PostForm.Get("currency"))
			assert.Equal(t, []string{"card"}, r.PostForm["payment_method_types[]"])

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"pi_123","client_secret":"pi_123_secret_456","amount":1999,"currency":"usd","status":"requires_payment_method"}`))
		}))
		defer srv.Close()

		client := &Client{secretKey: "sk_test_123", apiURL: srv.URL, httpClient: srv.Client()}

		resp, err := client.CreatePaymentIntent(context.Background(), CreatePaymentIntentRequest{
			Amount:             1999,
			Currency:           "usd",
			PaymentMethodTypes: []string{"card"},
			IdempotencyKey:     "idem-key-1",
		})

		require.NoError(t, err)
		assert.Equal(t, "pi_123_secret_456", resp.ClientSecret)
		assert.Equal(t, int64(1999), resp.Amount)
	})

	t.Run("ошибка API", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusPaymentRequired)
			_, _ = w.Write([]byte(`{"error":{"message":"Your card was declined."}}`))
		}))
		defer srv.Close()

		client := &Client{secretKey: "sk_test_123", apiURL: srv.URL, httpClient: srv.Client()}

		_, err := client.CreatePaymentIntent(context.Background(), CreatePaymentIntentRequest{
			Amount:   1999,
			Currency: "usd",
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "declined")
	})
}

func TestMinorUnitsConversion(t *testing.T) {
	tests := []struct {
		price float64
		want  int64
	}{
		{19.99, 1999},
		{0, 0},
		{1, 100},
		{0.01, 1},
		{104.10, 10410},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MinorUnits(tt.price))
	}
}
