package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "secure-secret-at-least-32-chars-long"

func TestTokens_RoundTrip(t *testing.T) {
	t.Parallel()

	tokens := NewTokens(testSecret, "simpleadvert-api", "simpleadvert-client")
	signed, err := tokens.Issue(42, time.Hour)
	require.NoError(t, err)

	id, err := tokens.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)
}

func TestTokens_Parse_Rejects(t *testing.T) {
	t.Parallel()

	tokens := NewTokens(testSecret, "simpleadvert-api", "simpleadvert-client")

	sign := func(claims jwt.Claims, method jwt.SigningMethod, key any) string {
		s, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return s
	}
	valid := func() jwt.RegisteredClaims {
		return jwt.RegisteredClaims{
			Subject:   "7",
			Issuer:    "simpleadvert-api",
			Audience:  jwt.ClaimStrings{"simpleadvert-client"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}
	}

	tests := []struct {
		name  string
		token string
	}{
		{"expired", func() string {
			c := valid()
			c.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
			return sign(c, jwt.SigningMethodHS256, []byte(testSecret))
		}()},
		{"wrong issuer", func() string {
			c := valid()
			c.Issuer = "someone-else"
			return sign(c, jwt.SigningMethodHS256, []byte(testSecret))
		}()},
		{"wrong audience", func() string {
			c := valid()
			c.Audience = jwt.ClaimStrings{"other"}
			return sign(c, jwt.SigningMethodHS256, []byte(testSecret))
		}()},
		{"wrong secret", sign(valid(), jwt.SigningMethodHS256, []byte("another-secret-another-secret-xx"))},
		{"wrong algorithm", sign(valid(), jwt.SigningMethodHS512, []byte(testSecret))},
		{"non-numeric subject", func() string {
			c := valid()
			c.Subject = "alice"
			return sign(c, jwt.SigningMethodHS256, []byte(testSecret))
		}()},
		{"missing expiry", func() string {
			c := valid()
			c.ExpiresAt = nil
			return sign(c, jwt.SigningMethodHS256, []byte(testSecret))
		}()},
		{"garbage", "not-a-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := tokens.Parse(tt.token)
			assert.Error(t, err)
		})
	}
}
