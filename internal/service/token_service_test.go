package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-unit-tests"

func signTestToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestJWTTokenService_Validate_Success(t *testing.T) {
	svc := NewJWTTokenService(testSecret, "marketplace-identity")
	userID := uuid.New()

	tokenString := signTestToken(t, testSecret, jwt.MapClaims{
		"sub":   userID.String(),
		"email": "buyer@example.com",
		"role":  "BUYER",
		"iss":   "marketplace-identity",
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	claims, err := svc.Validate(tokenString)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "buyer@example.com", claims.Email)
	assert.Equal(t, "BUYER", claims.Role)
}

func TestJWTTokenService_Validate_WrongSecret(t *testing.T) {
	svc := NewJWTTokenService(testSecret, "")

	tokenString := signTestToken(t, "some-other-secret", jwt.MapClaims{
		"sub": uuid.New().String(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := svc.Validate(tokenString)
	assert.Error(t, err)
}

func TestJWTTokenService_Validate_Expired(t *testing.T) {
	svc := NewJWTTokenService(testSecret, "")

	tokenString := signTestToken(t, testSecret, jwt.MapClaims{
		"sub": uuid.New().String(),
		"exp": time.Now().Add(-time.Minute).Unix(),
	})

	_, err := svc.Validate(tokenString)
	assert.Error(t, err)
}

func TestJWTTokenService_Validate_WrongIssuer(t *testing.T) {
	svc := NewJWTTokenService(testSecret, "marketplace-identity")

	tokenString := signTestToken(t, testSecret, jwt.MapClaims{
		"sub": uuid.New().String(),
		"iss": "someone-else",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := svc.Validate(tokenString)
	assert.Error(t, err)
}

func TestJWTTokenService_Validate_MissingSubject(t *testing.T) {
	svc := NewJWTTokenService(testSecret, "")

	tokenString := signTestToken(t, testSecret, jwt.MapClaims{
		"email": "noone@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	_, err := svc.Validate(tokenString)
	assert.Error(t, err)
}

func TestJWTTokenService_Validate_MalformedToken(t *testing.T) {
	svc := NewJWTTokenService(testSecret, "")

	_, err := svc.Validate("not-a-jwt")
	assert.Error(t, err)
}

func TestJWTTokenService_Validate_SubjectNotUUID(t *testing.T) {
	svc := NewJWTTokenService(testSecret, "")

	tokenString := signTestToken(t, testSecret, jwt.MapClaims{
		"sub": "user-42",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := svc.Validate(tokenString)
	assert.Error(t, err)
}
