package middlewarectx

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	applibjwt "github.com/MdMahfujHasan/elite-athlete-camp-server/internal/lib/jwt"
)

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestJWTMiddleware(t *testing.T) {
	maker := applibjwt.NewJWTMaker("test_secret_key", 12*time.Hour)

	var gotEmail string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotEmail, _ = r.Context().Value(Email).(string)
		w.WriteHeader(http.StatusOK)
	})
	handler := JWTMiddleware(maker, newNoopLogger())(next)

	t.Run("валидный токен кладет email в контекст", func(t *testing.T) {
		gotEmail = ""
		token, err := maker.GenerateToken("student@example.com")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/carts", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "student@example.com", gotEmail)
	})

	t.Run("без заголовка Authorization", func(t *testing.T) {
		gotEmail = ""
		req := httptest.NewRequest(http.MethodGet, "/carts", nil)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "unauthorized access")
		assert.Empty(t, gotEmail)
	})

	t.Run("заголовок без префикса Bearer", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/carts", nil)
		req.Header.Set("Authorization", "Token abc")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("токен с чужой подписью", func(t *testing.T) {
		other := applibjwt.NewJWTMaker("another_secret_key", 12*time.Hour)
		token, err := other.GenerateToken("student@example.com")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/carts", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("просроченный токен", func(t *testing.T) {
		expired := applibjwt.NewJWTMaker("test_secret_key", -time.Hour)
		token, err := expired.GenerateToken("student@example.com")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/carts", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
