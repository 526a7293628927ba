package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

func statusErrorText(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "bad request"
	case http.StatusUnauthorized:
		return "unauthorized"
	case http.StatusForbidden:
		return "forbidden"
	case http.StatusNotFound:
		return "not found"
	case http.StatusUnprocessableEntity:
		return "unprocessable entity"
	default:
		return "internal server error"
	}
}

// Errors отвечает клиенту первой ошибкой из c.Errors, если обработчик не записал тело ответа и не выполнил
// редирект. Текст приватных ошибок заменяется описанием статуса.
func Errors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Size() > 0 {
			return
		}
		if status := c.Writer.Status(); status >= http.StatusMultipleChoices && status < http.StatusBadRequest {
			return
		}

		// обрабатываем только первую ошибку
		firstErr := c.Errors[0]
		var msg string
		if firstErr.IsType(gin.ErrorTypePublic) {
			msg = firstErr.Error()
		} else {
			msg = statusErrorText(c.Writer.Status())
		}

		if strings.Contains(c.GetHeader("Accept"), "text/plain") {
			c.String(c.Writer.Status(), msg)
		} else {
			c.JSON(c.Writer.Status(), gin.H{"error": msg})
		}
		c.Abort()
	}
}
