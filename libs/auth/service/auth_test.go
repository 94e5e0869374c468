package service

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTokenGenerator(t *testing.T) {
	tg := NewTokenGenerator("test-secret-key", 15*time.Minute)

	assert.NotNil(t, tg)
	assert.Equal(t, "test-secret-key", tg.secret)
	assert.Equal(t, 15*time.Minute, tg.accessTokenExpiry)
}

func TestTokenGenerator_GenerateAndValidate(t *testing.T) {
	tg := NewTokenGenerator("b8a3c2267dc85f855dea9b46b452bf20", time.Hour)

	token, err := tg.GenerateAccessToken("user-1", []string{"Student", "Professor"})
	require.NoError(t, err)
	assert.Equal(t, 3, len(strings.Split(token, ".")))

	userID, roles, err := tg.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, []string{"Student", "Professor"}, roles)
}

func TestTokenGenerator_ValidateAccessToken(t *testing.T) {
	secret := "b8a3c2267dc85f855dea9b46b452bf20"
	tg := NewTokenGenerator(secret, time.Hour)

	signedWith := func(claims jwt.MapClaims) string {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		s, err := token.SignedString([]byte(secret))
		require.NoError(t, err)
		return s
	}

	tests := []struct {
		name          string
		token         string
		errorContains string
	}{
		{
			name:          "garbage token",
			token:         "not-a-token",
			errorContains: "failed to parse token",
		},
		{
			name: "expired token",
			token: signedWith(jwt.MapClaims{
				"sub":   "user-1",
				"roles": []string{"Student"},
				"exp":   time.Now().Add(-time.Hour).Unix(),
				"type":  "access",
			}),
			errorContains: "failed to parse token",
		},
		{
			name: "wrong token type",
			token: signedWith(jwt.MapClaims{
				"sub":   "user-1",
				"roles": []string{"Student"},
				"exp":   time.Now().Add(time.Hour).Unix(),
				"type":  "refresh",
			}),
			errorContains: "not an access token",
		},
		{
			name: "missing subject",
			token: signedWith(jwt.MapClaims{
				"roles": []string{"Student"},
				"exp":   time.Now().Add(time.Hour).Unix(),
				"type":  "access",
			}),
			errorContains: "sub not found",
		},
		{
			name: "missing roles",
			token: signedWith(jwt.MapClaims{
				"sub":  "user-1",
				"exp":  time.Now().Add(time.Hour).Unix(),
				"type": "access",
			}),
			errorContains: "roles not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID, roles, err := tg.ValidateAccessToken(tt.token)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorContains)
			assert.Empty(t, userID)
			assert.Nil(t, roles)
		})
	}

	t.Run("token signed with another secret", func(t *testing.T) {
		other := NewTokenGenerator("another-secret", time.Hour)
		token, err := other.GenerateAccessToken("user-1", []string{"Student"})
		require.NoError(t, err)

		_, _, err = tg.ValidateAccessToken(token)
		assert.Error(t, err)
	})
}
