package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Logger пишет в лог каждый запрос. Приватные ошибки из c.Errors попадают в лог, но не в ответ.
func Logger(l *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		entry := l.WithFields(logrus.Fields{
			"method":   c.Request.Method,
			"path":     path,
			"status":   c.Writer.Status(),
			"latency":  time.Since(start).String(),
			"clientIP": c.ClientIP(),
		})

		if len(c.Errors) > 0 {
			entry.WithField("errors", c.Errors.String()).Error("request failed")
			return
		}
		entry.Info("request")
	}
}
