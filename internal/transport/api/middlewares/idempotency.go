package middlewares

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyReplayHeader выставляется в ответах, повторенных из кэша.
	IdempotencyReplayHeader = "Idempotent-Replayed"

	idempotencyKeyPrefix = "cashbox:idempotency:"
	idempotencyInFlight  = "in-flight"
	maxIdempotencyKeyLen = 255
)

type storedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// bodyRecorder дублирует тело ответа в буфер.
type bodyRecorder struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b) //nolint:wrapcheck
}

func (w *bodyRecorder) WriteString(s string) (int, error) {
	w.buf.WriteString(s)
	return w.ResponseWriter.WriteString(s) //nolint:wrapcheck
}

// Idempotency повторяет сохраненный ответ на запрос с уже использованным заголовком Idempotency-Key.
//
// Особенности:
//   - Ключ резервируется через SETNX до выполнения обработчика. Параллельный запрос с тем же ключом
//     получает 409.
//   - Сохраняются только успешные (2xx) ответы. После ошибки ключ освобождается, и запрос можно повторить.
//   - Ключ привязан к пользователю и маршруту, поэтому должен стоять после AuthRequired.
//   - Если Redis недоступен, запрос выполняется без защиты от повтора.
func Idempotency(rdb redis.Cmdable, ttl time.Duration, l *logrus.Logger) gin.HandlerFunc {
	log := l.WithField("component", "idempotency")
	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			c.Next()
			return
		}
		if len(key) > maxIdempotencyKeyLen {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "idempotency key is too long"})
			return
		}

		userID, _ := c.Get(CurrentUserIDKey)
		redisKey := fmt.Sprintf("%s%v:%s:%s:%s", idempotencyKeyPrefix, userID, c.Request.Method, c.FullPath(), key)

		reserved, err := rdb.SetNX(c, redisKey, idempotencyInFlight, ttl).Result()
		if err != nil {
			log.WithError(err).Warn("idempotency store unavailable")
			c.Next()
			return
		}
		if !reserved {
			replay(c, rdb, redisKey, log)
			return
		}

		recorder := &bodyRecorder{ResponseWriter: c.Writer}
		c.Writer = recorder
		c.Next()

		status := recorder.Status()
		if status < http.StatusOK || status >= http.StatusMultipleChoices || len(c.Errors) > 0 {
			if delErr := rdb.Del(c, redisKey).Err(); delErr != nil {
				log.WithError(delErr).Warn("releasing idempotency key")
			}
			return
		}

		payload, err := json.Marshal(storedResponse{
			Status:      status,
			ContentType: recorder.Header().Get("Content-Type"),
			Body:        recorder.buf.Bytes(),
		})
		if err == nil {
			err = rdb.Set(c, redisKey, payload, ttl).Err()
		}
		if err != nil {
			log.WithError(err).Warn("storing idempotent response")
		}
	}
}

func replay(c *gin.Context, rdb redis.Cmdable, redisKey string, log *logrus.Entry) {
	raw, err := rdb.Get(c, redisKey).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		// ключ истек между SETNX и GET
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "request with this idempotency key is in progress"})
		return
	case err != nil:
		log.WithError(err).Warn("reading idempotent response")
		c.AbortWithStatus(http.StatusServiceUnavailable)
		return
	}

	if string(raw) == idempotencyInFlight {
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "request with this idempotency key is in progress"})
		return
	}

	var stored storedResponse
	if err = json.Unmarshal(raw, &stored); err != nil {
		log.WithError(err).Warn("decoding idempotent response")
		c.AbortWithStatus(http.StatusServiceUnavailable)
		return
	}
	c.Header(IdempotencyReplayHeader, "true")
	c.Data(stored.Status, stored.ContentType, stored.Body)
	c.Abort()
}
