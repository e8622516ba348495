package middlewares

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Logger пишет в лог каждый запрос. Приватные ошибки обработчиков попадают только в лог.
func Logger(l *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		entry := l.WithFields(logrus.Fields{
			"component":  "http",
			"method":     c.Request.Method,
			"path":       path,
			"status":     c.Writer.Status(),
			"latency":    time.Since(start).String(),
			"client_ip":  c.ClientIP(),
			"request_id": c.GetString(RequestIDKey),
		})
		if userID, ok := c.Get(CurrentUserIDKey); ok {
			entry = entry.WithField("user_id", userID)
		}

		if private := c.Errors.ByType(gin.ErrorTypePrivate); len(private) > 0 {
			entry.WithField("errors", private.String()).Error("request failed")
			return
		}
		entry.Info("request")
	}
}
