package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
)

func TestJWTService_RoundTrip(t *testing.T) {
	service := NewJWTService("test-secret")

	token, err := service.GenerateToken(2, "maria_garcia", "Engineer")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(2), claims.UserID)
	assert.Equal(t, "maria_garcia", claims.Username)
	assert.Equal(t, "Engineer", claims.Position)
	assert.WithinDuration(t, time.Now().Add(TokenExpiry), claims.ExpiresAt.Time, time.Minute)
}

func TestJWTService_ValidateToken(t *testing.T) {
	service := NewJWTService("test-secret")

	expired := func() string {
		claims := &Claims{
			UserID:   1,
			Username: "juan_perez",
			Position: "Driver",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
				IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
		assert.NoError(t, err)
		return token
	}()

	otherSecret, err := NewJWTService("other-secret").GenerateToken(1, "juan_perez", "Driver")
	assert.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantErr bool
	}{
		{name: "valid token", token: mustToken(t, service), wantErr: false},
		{name: "expired token", token: expired, wantErr: true},
		{name: "wrong secret", token: otherSecret, wantErr: true},
		{name: "garbage", token: "not-a-token", wantErr: true},
		{name: "empty", token: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.ValidateToken(tt.token)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, claims)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, claims)
			}
		})
	}
}

func mustToken(t *testing.T, s *JWTService) string {
	t.Helper()
	token, err := s.GenerateToken(1, "juan_perez", "Driver")
	assert.NoError(t, err)
	return token
}
