package jwt

import (
	"testing"
	"time"

	"resto-pos-backend/domain"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	service := NewJWTService("test-secret")

	token, err := service.GenerateToken(12, 3, domain.RoleSalesperson)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.GetClaimsByToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(12), claims.UserID)
	assert.Equal(t, uint(3), claims.BusinessID)
	assert.Equal(t, domain.RoleSalesperson, claims.Role)
}

func TestGetClaimsRejectsWrongSecret(t *testing.T) {
	issuer := NewJWTService("secret-a")
	verifier := NewJWTService("secret-b")

	token, err := issuer.GenerateToken(12, 3, domain.RoleAdmin)
	require.NoError(t, err)

	_, err = verifier.GetClaimsByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestGetClaimsRejectsGarbage(t *testing.T) {
	service := NewJWTService("test-secret")

	_, err := service.GetClaimsByToken("not.a.token")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestGetClaimsRejectsExpiredToken(t *testing.T) {
	claims := UserClaims{
		UserID:     12,
		BusinessID: 3,
		Role:       domain.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-25 * time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	service := NewJWTService("test-secret")
	_, err = service.GetClaimsByToken(signed)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

// A token without a business id cannot scope any tenant operation.
func TestGetClaimsRejectsMissingBusiness(t *testing.T) {
	claims := UserClaims{
		UserID: 12,
		Role:   domain.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	service := NewJWTService("test-secret")
	_, err = service.GetClaimsByToken(signed)
	assert.ErrorIs(t, err, domain.ErrBusinessMissing)
}
