package sessions

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims bind the signed cookie to a server-side session record.
type Claims struct {
	jwt.RegisteredClaims
	SessionID string `json:"sid"`
}

func NewToken(sessionID string, secret []byte, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
		SessionID: sessionID,
	})
	return token.SignedString(secret)
}

func ParseToken(tokenString string, secret []byte) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", jwt.ErrTokenUnverifiable
	}
	return claims.SessionID, nil
}
