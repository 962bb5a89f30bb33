package jwt

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_Generate(t *testing.T) {
	tests := []struct {
		name      string
		secretKey string
		tokenTTL  time.Duration
		sessionID string
		login     string
	}{
		{
			name:      "Valid token generation",
			secretKey: "test-secret-key",
			tokenTTL:  time.Hour,
			sessionID: "5f0c9a1e-1b7e-4c55-9a0b-2d3e4f5a6b7c",
			login:     "anna",
		},
		{
			name:      "Short TTL",
			secretKey: "another-secret",
			tokenTTL:  time.Minute * 30,
			sessionID: "s-2",
			login:     "boris",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager(tt.secretKey, tt.tokenTTL)
			token, err := m.Generate(tt.sessionID, tt.login)
			require.NoError(t, err)
			assert.NotEmpty(t, token)
			assert.Equal(t, tt.tokenTTL, m.TTL())
		})
	}
}

func TestManager_Validate(t *testing.T) {
	secretKey := "test-secret-key"
	tokenTTL := time.Hour

	t.Run("Valid token", func(t *testing.T) {
		m := NewManager(secretKey, tokenTTL)
		token, err := m.Generate("session-1", "anna")
		require.NoError(t, err)

		sessionID, err := m.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, "session-1", sessionID)
	})

	t.Run("Invalid token - wrong secret", func(t *testing.T) {
		token, err := NewManager(secretKey, tokenTTL).Generate("session-1", "anna")
		require.NoError(t, err)

		_, err = NewManager("wrong-secret", tokenTTL).Validate(token)
		assert.Error(t, err)
	})

	t.Run("Invalid token - malformed", func(t *testing.T) {
		_, err := NewManager(secretKey, tokenTTL).Validate("invalid.token.string")
		assert.Error(t, err)
	})

	t.Run("Invalid token - empty", func(t *testing.T) {
		_, err := NewManager(secretKey, tokenTTL).Validate("")
		assert.Error(t, err)
	})

	t.Run("Expired token", func(t *testing.T) {
		m := NewManager(secretKey, time.Minute)
		issued := time.Now()
		m.now = func() time.Time { return issued }

		token, err := m.Generate("session-1", "anna")
		require.NoError(t, err)

		m.now = func() time.Time { return issued.Add(2 * time.Minute) }
		_, err = m.Validate(token)
		assert.ErrorIs(t, err, gojwt.ErrTokenExpired)
	})

	t.Run("Token without session id", func(t *testing.T) {
		m := NewManager(secretKey, tokenTTL)
		token, err := m.Generate("", "anna")
		require.NoError(t, err)

		_, err = m.Validate(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Foreign issuer", func(t *testing.T) {
		claims := Claims{
			SessionID: "session-1",
			RegisteredClaims: gojwt.RegisteredClaims{
				Issuer:    "someone-else",
				ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}
		token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(secretKey))
		require.NoError(t, err)

		_, err = NewManager(secretKey, tokenTTL).Validate(token)
		assert.Error(t, err)
	})
}

func TestManager_ValidateWithInvalidSigningMethod(t *testing.T) {
	m := NewManager("secret", time.Hour)

	_, err := m.Validate("eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0.eyJzaWQiOiJzZXNzaW9uLTEifQ.")
	assert.Error(t, err)
}

func BenchmarkManager_Validate(b *testing.B) {
	m := NewManager("test-secret-key", time.Hour)
	token, _ := m.Generate("session-1", "anna")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m.Validate(token)
	}
}
