package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestTokenService_IssueVerifyRoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret")

	token, err := svc.Issue(42)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	userID, ok := svc.Verify(token)
	assert.True(t, ok)
	assert.Equal(t, uint(42), userID)
}

func TestTokenService_VerifyFailsClosed(t *testing.T) {
	svc := NewTokenService("test-secret")

	valid, err := svc.Issue(7)
	assert.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty token", token: ""},
		{name: "garbage token", token: "not-a-jwt"},
		{name: "truncated token", token: valid[:len(valid)-10]},
		{
			name: "wrong secret",
			token: func() string {
				other := NewTokenService("other-secret")
				tok, _ := other.Issue(7)
				return tok
			}(),
		},
		{
			name: "expired token",
			token: func() string {
				claims := &Claims{
					UserID: 7,
					RegisteredClaims: jwt.RegisteredClaims{
						ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
						IssuedAt:  jwt.NewNumericDate(time.Now().Add(-SessionExpiry)),
					},
				}
				tok, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
				return tok
			}(),
		},
		{
			name: "unsigned token",
			token: func() string {
				claims := &Claims{
					UserID: 7,
					RegisteredClaims: jwt.RegisteredClaims{
						ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
					},
				}
				tok, _ := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
				return tok
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID, ok := svc.Verify(tt.token)
			assert.False(t, ok)
			assert.Zero(t, userID)
		})
	}
}

func TestTokenService_ExpirySevenDays(t *testing.T) {
	svc := NewTokenService("test-secret")

	tokenString, err := svc.Issue(3)
	assert.NoError(t, err)

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	assert.NoError(t, err)

	claims := token.Claims.(*Claims)
	assert.NotEmpty(t, claims.ID)
	lifetime := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	assert.Equal(t, SessionExpiry, lifetime)
}
