// Package tokens jwt токены сессии пользователя панели.
package tokens

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "invoice-dashboard"

var (
	ErrTokenExpired = errors.New("token expired")
	ErrNoUser       = errors.New("token has no user")
)

// UserClaims полезная нагрузка токена сессии. ID дублируется в Subject.
type UserClaims struct {
	jwt.RegisteredClaims
	ID    string
	Email string
}

func GenerateUserJWT(id, email string, expire time.Duration, key []byte) (string, error) {
	now := time.Now()
	userClaims := UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   id,
			ExpiresAt: jwt.NewNumericDate(now.Add(expire)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		ID:    id,
		Email: email,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, userClaims).SignedString(key)
	if err != nil {
		return "", fmt.Errorf("generating user jwt token: %s", err.Error())
	}
	return token, nil
}

// ValidateUserJWT проверяет подпись, срок действия и издателя токена. Для истекшего токена - ErrTokenExpired.
func ValidateUserJWT(tokenString string, key []byte) (*UserClaims, error) {
	var claims UserClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(_ *jwt.Token) (any, error) {
		return key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("validating user jwt token: %w", err)
	}
	if claims.ID == "" {
		return nil, ErrNoUser
	}
	return &claims, nil
}
