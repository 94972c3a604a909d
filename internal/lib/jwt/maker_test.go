package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTMaker_GenerateAndParseToken_ValidCases(t *testing.T) {
	secretKey := "test_secret_key_1234567890"
	tokenTTL := 12 * time.Hour
	maker := NewJWTMaker(secretKey, tokenTTL)

	tests := []struct {
		name  string
		email string
	}{
		{
			name:  "обычный email",
			email: "student@example.com",
		},
		{
			name:  "email с поддоменом",
			email: "coach@camp.example.org",
		},
		{
			name:  "email с цифрами",
			email: "user123@example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := maker.GenerateToken(tt.email)
			require.NoError(t, err)
			assert.NotEmpty(t, token)

			claims, err := maker.ParseToken(token)
			require.NoError(t, err)

			assert.Equal(t, tt.email, claims.Email)
			assert.WithinDuration(t, time.Now(), claims.IssuedAt.Time, time.Second)
			assert.WithinDuration(t, time.Now().Add(tokenTTL), claims.ExpiresAt.Time, time.Second)
		})
	}
}

func TestJWTMaker_ParseToken_InvalidTokens(t *testing.T) {
	maker := NewJWTMaker("test_secret_key", 12*time.Hour)

	t.Run("мусор вместо токена", func(t *testing.T) {
		_, err := maker.ParseToken("not.a.token")
		assert.Error(t, err)
	})

	t.Run("токен с чужой подписью", func(t *testing.T) {
		other := NewJWTMaker("another_secret_key", 12*time.Hour)
		token, err := other.GenerateToken("student@example.com")
		require.NoError(t, err)

		_, err = maker.ParseToken(token)
		assert.Error(t, err)
	})

	t.Run("просроченный токен", func(t *testing.T) {
		expired := NewJWTMaker("test_secret_key", -time.Hour)
		token, err := expired.GenerateToken("student@example.com")
		require.NoError(t, err)

		_, err = maker.ParseToken(token)
		assert.Error(t, err)
	})
}

func TestJWTMaker_SignPayload(t *testing.T) {
	maker := NewJWTMaker("test_secret_key", 12*time.Hour)

	t.Run("payload с email разбирается обратно", func(t *testing.T) {
		token, err := maker.SignPayload(map[string]any{
			"email": "student@example.com",
			"name":  "Student",
		})
		require.NoError(t, err)

		claims, err := maker.ParseToken(token)
		require.NoError(t, err)
		assert.Equal(t, "student@example.com", claims.Email)
		assert.WithinDuration(t, time.Now().Add(12*time.Hour), claims.ExpiresAt.Time, time.Second)
	})

	t.Run("payload без email подписывается", func(t *testing.T) {
		token, err := maker.SignPayload(map[string]any{"sub": "anything"})
		require.NoError(t, err)
		assert.NotEmpty(t, token)

		claims, err := maker.ParseToken(token)
		require.NoError(t, err)
		assert.Empty(t, claims.Email)
	})
}
