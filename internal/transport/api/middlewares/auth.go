package middlewares

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fsdevblog/invoice-dashboard/internal/service/tokens"
)

var ErrTokenNotExist = errors.New("token not exist")

const (
	CurrentUserIDKey = "currentUserID"
	// SessionCookie имя cookie с jwt токеном сессии.
	SessionCookie = "session"
)

// checkAuthorization извлекает токен из заголовка Authorization, либо из cookie SessionCookie, и проверяет его.
// Если токен не передан, вернется ошибка ErrTokenNotExist.
func checkAuthorization(c *gin.Context, jwtTokenSecret []byte) (*tokens.UserClaims, error) {
	var tokenStr string
	if tokenHeader := c.GetHeader("Authorization"); strings.HasPrefix(tokenHeader, "Bearer ") {
		tokenStr = strings.TrimPrefix(tokenHeader, "Bearer ")
	} else if cookie, cookieErr := c.Cookie(SessionCookie); cookieErr == nil {
		tokenStr = cookie
	}
	if tokenStr == "" {
		return nil, ErrTokenNotExist
	}

	claims, err := tokens.ValidateUserJWT(tokenStr, jwtTokenSecret)
	if err != nil {
		return nil, fmt.Errorf("check authorization: %w", err)
	}
	return claims, nil
}

// AuthRequired пропускает только запросы с действующей сессией, остальных отправляет на loginPath.
// Записывает в контекст (поле CurrentUserIDKey) id юзера.
func AuthRequired(jwtTokenSecret []byte, loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := checkAuthorization(c, jwtTokenSecret)
		if err != nil {
			if !errors.Is(err, ErrTokenNotExist) {
				_ = c.Error(err).SetType(gin.ErrorTypePrivate)
			}
			c.Redirect(http.StatusSeeOther, loginPath)
			c.Abort()
			return
		}
		c.Set(CurrentUserIDKey, claims.ID)
		c.Next()
	}
}

// NonAuthRequired отправляет юзера с действующей сессией на homePath.
func NonAuthRequired(jwtTokenSecret []byte, homePath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := checkAuthorization(c, jwtTokenSecret); err == nil {
			c.Redirect(http.StatusSeeOther, homePath)
			c.Abort()
			return
		}
		c.Next()
	}
}
