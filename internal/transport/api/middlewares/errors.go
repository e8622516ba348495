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
	case http.StatusConflict:
		return "conflict"
	case http.StatusServiceUnavailable:
		return "service unavailable"
	default:
		return "internal server error"
	}
}

// Errors отдает клиенту первую ошибку обработчика. Текст публичных ошибок (gin.ErrorTypePublic) уходит
// клиенту вместе с Meta, для остальных - только текст статуса.
func Errors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		// обрабатываем только первую ошибку
		firstErr := c.Errors[0]
		body := gin.H{}
		if firstErr.IsType(gin.ErrorTypePublic) {
			if meta, ok := firstErr.Meta.(gin.H); ok {
				for k, v := range meta {
					body[k] = v
				}
			}
			body["error"] = firstErr.Error()
		} else {
			body["error"] = statusErrorText(c.Writer.Status())
		}

		if strings.Contains(c.GetHeader("Accept"), "text/plain") {
			c.String(c.Writer.Status(), body["error"].(string)) //nolint:forcetypeassert
		} else {
			c.JSON(c.Writer.Status(), body)
		}
		c.Abort()
	}
}
