package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/obrasync/cashbox/internal/domain"
	"github.com/obrasync/cashbox/internal/transport/api/middlewares"
	"github.com/obrasync/cashbox/internal/transport/api/tokens"
)

const dateLayout = time.DateOnly

// getUserIDFromContext берет из контекста gin ID текущего юзера. ID устанавливается в
// middlewares.AuthRequired. В случае, если значения в контексте нет или ошибка утверждения типа -
// вернется 0.
func getUserIDFromContext(c *gin.Context) int64 {
	userID, exist := c.Get(middlewares.CurrentUserIDKey)
	if !exist {
		return 0
	}
	id, ok := userID.(int64)
	if !ok {
		return 0
	}
	return id
}

func getRoleFromContext(c *gin.Context) tokens.Role {
	role, _ := c.Get(middlewares.CurrentUserRoleKey)
	r, _ := role.(tokens.Role)
	return r
}

// paramID читает положительный int64 из параметра пути. При ошибке прерывает запрос с 404.
func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.AbortWithStatus(http.StatusNotFound)
		return 0, false
	}
	return id, true
}

// bindJSON разбирает тело запроса. Ошибки валидации отдаются с 422, ошибки формата - с 400.
func bindJSON(c *gin.Context, params any) bool {
	bindErr := c.ShouldBindJSON(params)
	if bindErr == nil {
		return true
	}
	var valErrs validator.ValidationErrors
	if errors.As(bindErr, &valErrs) {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": validationMessage(valErrs)})
		return false
	}
	_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
	return false
}

func validationMessage(errs validator.ValidationErrors) map[string]string {
	out := make(map[string]string, len(errs))
	for _, e := range errs {
		out[e.Field()] = fmt.Sprintf("failed on the '%s' rule", e.Tag())
	}
	return out
}

// abortWithServiceError переводит ошибки сервисного слоя в HTTP статус. Ошибки таксономии домена
// публичные, остальные уходят только в лог.
func abortWithServiceError(c *gin.Context, err error) {
	var (
		vErr  *domain.ValidationError
		cErr  *domain.ConflictError
		nfErr *domain.NotFoundError
	)
	switch {
	case errors.As(err, &vErr):
		_ = c.AbortWithError(http.StatusUnprocessableEntity, vErr).
			SetType(gin.ErrorTypePublic).
			SetMeta(gin.H{"field": vErr.Field})
	case errors.As(err, &cErr):
		meta := gin.H{}
		if cErr.Status != "" {
			meta["status"] = cErr.Status
			meta["approval_state"] = cErr.State
		}
		_ = c.AbortWithError(http.StatusConflict, cErr).SetType(gin.ErrorTypePublic).SetMeta(meta)
	case errors.As(err, &nfErr):
		_ = c.AbortWithError(http.StatusNotFound, nfErr).SetType(gin.ErrorTypePublic)
	case errors.Is(err, context.DeadlineExceeded):
		_ = c.AbortWithError(http.StatusServiceUnavailable, err).SetType(gin.ErrorTypePrivate)
	default:
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
	}
}

// parseDate принимает дату в формате 2006-01-02 или RFC3339. Для endOfDay дата без времени
// сдвигается на конец дня.
func parseDate(value string, endOfDay bool) (*time.Time, error) {
	if value == "" {
		return nil, nil //nolint:nilnil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, fmt.Errorf("parse date %q: %w", value, err)
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}

func dateOrNow(t *time.Time) time.Time {
	if t == nil {
		return time.Now()
	}
	return *t
}
