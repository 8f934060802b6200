package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/shreyash398/Green-World/internal/models"
)

// TokenTTL is the fixed session validity window. There is no refresh
// mechanism; clients re-authenticate after expiry.
const TokenTTL = time.Hour * 24 * 7

// ErrInvalidToken covers signature mismatch, structural corruption and
// expiry alike. Callers treat it as "unauthenticated", never as a crash.
var ErrInvalidToken = errors.New("invalid or expired token")

type TokenClaims struct {
	UserID uint
	Email  string
	Role   models.Role
}

// TokenService signs and verifies session tokens with an injected secret,
// so tests can run isolated instances instead of sharing process state.
type TokenService struct {
	secret []byte
}

func NewTokenService(secret string) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("JWT secret is not set")
	}

	return &TokenService{secret: []byte(secret)}, nil
}

func (s *TokenService) Generate(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    string(user.Role),
		"exp":     time.Now().Add(TokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *TokenService) Verify(tokenString string) (TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})

	if err != nil || !token.Valid {
		return TokenClaims{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)

	if !ok {
		return TokenClaims{}, ErrInvalidToken
	}

	userIDFloat, ok := claims["user_id"].(float64)

	if !ok {
		return TokenClaims{}, ErrInvalidToken
	}

	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)

	return TokenClaims{
		UserID: uint(userIDFloat),
		Email:  email,
		Role:   models.Role(role),
	}, nil
}
