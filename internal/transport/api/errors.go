package api

import (
	"errors"
	"net/http"

	"github.com/fsdevblog/groph-swap/internal/domain"
	"github.com/fsdevblog/groph-swap/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// serviceErrorStatuses порядок важен: проверяется первая подходящая ошибка.
var serviceErrorStatuses = []struct { //nolint:gochecknoglobals
	err    error
	status int
}{
	{err: domain.ErrRecordNotFound, status: http.StatusNotFound},
	{err: domain.ErrInsufficientFunds, status: http.StatusPaymentRequired},
	{err: domain.ErrInsufficientAssetQuantity, status: http.StatusPaymentRequired},
	{err: domain.ErrInvalidAmount, status: http.StatusUnprocessableEntity},
	{err: domain.ErrInvalidQuantity, status: http.StatusUnprocessableEntity},
	{err: domain.ErrInvalidOrderSide, status: http.StatusUnprocessableEntity},
	{err: domain.ErrQuoteUnavailable, status: http.StatusBadGateway},
	{err: domain.ErrTransactionFailed, status: http.StatusConflict},
}

// abortWithServiceError отвечает статусом, соответствующим ошибке сервиса. Клиенту уходит только текст
// доменной ошибки, подробности остаются в логах сервиса.
func abortWithServiceError(c *gin.Context, err error) {
	for _, se := range serviceErrorStatuses {
		if errors.Is(err, se.err) {
			_ = c.AbortWithError(se.status, se.err).SetType(gin.ErrorTypePublic)
			return
		}
	}
	_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
}

// abortWithBindError ошибки валидации отдаются как 422, остальные ошибки разбора запроса как 400.
func abortWithBindError(c *gin.Context, bindErr error) {
	var valErrs validator.ValidationErrors
	if errors.As(bindErr, &valErrs) {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, &middlewares.ErrorResponse{
			Error:     valErrs.Error(),
			RequestID: c.GetString(middlewares.RequestIDKey),
		})
		return
	}
	_ = c.AbortWithError(http.StatusBadRequest, bindErr).
		SetType(gin.ErrorTypeBind)
}
