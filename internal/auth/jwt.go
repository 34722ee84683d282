package auth

import (
	"errors"
	"time"

	"gatherly/config"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the user ID as the token's sole custom claim. Role is
// deliberately not embedded: the admin flag is checked against the store on
// every admin request, so a stale token can never keep admin rights.
type Claims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

// ErrInvalidToken is the uniform failure for any malformed, expired, or
// badly signed token. Callers must not leak which check failed.
var ErrInvalidToken = errors.New("invalid token")

func GenerateToken(cfg *config.JWTConfig, userID uint) (string, error) {
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(cfg.Expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    cfg.Issuer,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Secret))
}

func ParseToken(cfg *config.JWTConfig, tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(cfg.Secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
