package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// serverStart время старта процесса для расчета uptime
var serverStart = time.Now()

// HealthResponse ответ проверки живости
type HealthResponse struct {
	Status string `json:"status"`
	Uptime string `json:"uptime"`
}

// HandleHealth проверка живости сервиса
// @Summary Проверка живости
// @Tags system
// @Produce json
// @Success 200 {object} HealthResponse "Сервис жив"
// @Router /api/health [get]
func HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status: "ok",
		Uptime: time.Since(serverStart).Round(time.Second).String(),
	})
}
