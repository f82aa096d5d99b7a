package jwt

import (
	"errors"
	"fmt"
	"time"

	"resto-pos-backend/domain"

	"github.com/golang-jwt/jwt/v4"
)

type (
	JWTService interface {
		GenerateToken(userID, businessID uint, role string) (string, error)
		ValidateToken(token string) (*jwt.Token, error)
		GetClaimsByToken(token string) (*UserClaims, error)
	}

	// UserClaims is the verified credential payload. BusinessID is the only
	// source of tenant identity for every scoped operation; it is never read
	// from request bodies.
	UserClaims struct {
		UserID     uint   `json:"user_id"`
		BusinessID uint   `json:"business_id"`
		Role       string `json:"role"`
		jwt.RegisteredClaims
	}

	jwtService struct {
		secretKey string
		issuer    string
	}
)

func NewJWTService(secretKey string) JWTService {
	return &jwtService{
		secretKey: secretKey,
		issuer:    "RESTO-POS",
	}
}

func (j *jwtService) GenerateToken(userID, businessID uint, role string) (string, error) {
	claims := UserClaims{
		userID,
		businessID,
		role,
		jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

func (j *jwtService) parseToken(t *jwt.Token) (any, error) {
	if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
	}
	return []byte(j.secretKey), nil
}

func (j *jwtService) ValidateToken(token string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(token, &UserClaims{}, j.parseToken)
}

func (j *jwtService) GetClaimsByToken(token string) (*UserClaims, error) {
	parsed, err := j.ValidateToken(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}
	if !parsed.Valid {
		return nil, domain.ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(*UserClaims)
	if !ok {
		return nil, domain.ErrTokenInvalid
	}
	if claims.BusinessID == 0 {
		return nil, domain.ErrBusinessMissing
	}

	return claims, nil
}
