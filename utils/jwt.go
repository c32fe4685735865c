package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrNoSecret = errors.New("JWT_SECRET is not set")

// SSOClaims là nội dung cookie sso-jwt do cổng SSO cấp.
type SSOClaims struct {
	WebLogin string   `json:"weblogin"`
	Groups   []string `json:"groups"`
	jwt.RegisteredClaims
}

// GenerateToken tạo token SSO, dùng cho môi trường dev và test.
func GenerateToken(secret, weblogin string, groups []string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", ErrNoSecret
	}
	claims := SSOClaims{
		WebLogin: weblogin,
		Groups:   groups,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   weblogin,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifyToken xác minh và parse token SSO
func VerifyToken(secret, tokenStr string) (*SSOClaims, error) {
	if secret == "" {
		return nil, ErrNoSecret
	}

	token, err := jwt.ParseWithClaims(tokenStr, &SSOClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*SSOClaims); ok && token.Valid {
		if claims.WebLogin == "" {
			claims.WebLogin = claims.Subject
		}
		return claims, nil
	}

	return nil, errors.New("invalid token")
}
