// Package webhook доставляет уведомления о запросах пояснений во внешнюю систему уведомлений.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

// Константы минимального и максимально значения в заголовке Retry-After.
const (
	minRetryAfter     = 1
	maxRetryAfter     = 120
	defaultRetryAfter = 60 * time.Second
)

// IdempotencyKeyHeader позволяет получателю отбросить повторную доставку одного и того же запроса.
const IdempotencyKeyHeader = "Idempotency-Key"

// Notification тело запроса, отправляемого в вебхук.
type Notification struct {
	RequestID int64     `json:"request_id"`
	CashboxID int64     `json:"cashbox_id"`
	UserID    int64     `json:"user_id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// HTTPClient отправляет уведомления POST запросом на url вебхука.
type HTTPClient struct {
	url        string
	httpClient *http.Client
}

func New(url string) HTTPClient {
	return HTTPClient{
		url:        url,
		httpClient: http.DefaultClient,
	}
}

// Deliver отправляет уведомление. Любой 2xx ответ считается доставкой.
// При ответе http.StatusTooManyRequests возвращает TooManyRequestError, при прочих статусах StatusCodeError.
//
//nolint:nonamedreturns
func (c HTTPClient) Deliver(ctx context.Context, n Notification) (err error) {
	payload, jsonErr := json.Marshal(n)
	if jsonErr != nil {
		return fmt.Errorf("encode notification: %s", jsonErr.Error())
	}

	req, reqErr := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if reqErr != nil {
		return fmt.Errorf("create request: %s", reqErr.Error())
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(IdempotencyKeyHeader, "explanation-"+strconv.FormatInt(n.RequestID, 10))

	resp, doErr := c.httpClient.Do(req)
	if doErr != nil {
		return fmt.Errorf("do request: %w", doErr)
	}

	defer func() {
		// вычитываем тело, чтобы соединение вернулось в пул
		_, _ = io.Copy(io.Discard, resp.Body)
		if closeErr := resp.Body.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return NewTooManyRequestError(parseRetryAfter(resp.Header.Get("Retry-After")))
	case resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices:
		return NewStatusCodeError(resp.StatusCode)
	}
	return nil
}

// parseRetryAfter принимает количество секунд. В случае ошибки или значения вне
// [minRetryAfter, maxRetryAfter] возвращает defaultRetryAfter.
func parseRetryAfter(value string) time.Duration {
	seconds, err := strconv.Atoi(value)
	if err != nil || seconds < minRetryAfter || seconds > maxRetryAfter {
		return defaultRetryAfter
	}
	return time.Duration(seconds) * time.Second
}
