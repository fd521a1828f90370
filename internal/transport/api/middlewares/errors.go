package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ErrorResponse тело JSON ответа об ошибке.
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"requestID,omitempty"`
}

func statusErrorText(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "bad request"
	case http.StatusPaymentRequired:
		return "payment required"
	case http.StatusNotFound:
		return "not found"
	case http.StatusUnprocessableEntity:
		return "unprocessable entity"
	case http.StatusConflict:
		return "conflict"
	case http.StatusBadGateway:
		return "bad gateway"
	default:
		return "internal server error"
	}
}

// Errors отвечает на первую ошибку из c.Errors. Текст публичных ошибок отдается клиенту,
// для остальных только описание статуса. JSON, если клиент его принимает или прислал, иначе plain text.
func Errors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		firstErr := c.Errors[0]
		status := c.Writer.Status()
		msg := statusErrorText(status)
		if firstErr.IsType(gin.ErrorTypePublic) {
			msg = firstErr.Error()
		}

		if wantsJSON(c) {
			c.JSON(status, &ErrorResponse{Error: msg, RequestID: c.GetString(RequestIDKey)})
		} else {
			c.String(status, msg)
		}
		c.Abort()
	}
}

func wantsJSON(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept"), "application/json") ||
		strings.Contains(c.GetHeader("Content-Type"), "application/json")
}
