package handlers

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "catalogserver/server/errors"
	"catalogserver/server/middleware"
)

// ErrorResponse структура ответа об ошибке
type ErrorResponse struct {
	Error     string `json:"error"`
	Timestamp string `json:"timestamp"`
	RequestID string `json:"request_id,omitempty"`
}

// SendJSONError пишет JSON-ошибку и логирует ее
func SendJSONError(c *gin.Context, statusCode int, message string) {
	reqID := middleware.GetRequestID(c)
	slog.Error("HTTP error",
		"error", message,
		"status_code", statusCode,
		"request_id", reqID,
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	)
	c.JSON(statusCode, ErrorResponse{
		Error:     message,
		Timestamp: time.Now().Format(time.RFC3339),
		RequestID: reqID,
	})
}

// HandleError разворачивает ошибку в AppError и отвечает ее статусом
func HandleError(c *gin.Context, err error, message string) {
	appErr := apperrors.WrapError(err, message)
	if appErr.Err != nil {
		slog.Error(message, "error", appErr.Err, "request_id", middleware.GetRequestID(c))
	}
	SendJSONError(c, appErr.StatusCode(), appErr.UserMessage())
}
