package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"catalogserver/server/services"
)

// QualityHandler диагностический отчет качества каталога
type QualityHandler struct {
	service *services.ConsolidationService
}

// NewQualityHandler создает обработчик отчета качества
func NewQualityHandler(service *services.ConsolidationService) *QualityHandler {
	return &QualityHandler{service: service}
}

// HandleAnalyze строит отчет качества по снимку каталога
// @Summary Анализ качества каталога
// @Description Проверяет снимок на дубликаты SKU, пустые названия, кривые сопоставления вариаций, нечисловые цены, отсутствующие изображения и HTML в описаниях. Ничего не изменяет.
// @Tags quality
// @Accept json
// @Produce json
// @Param request body services.RunRequest false "Источник снимка"
// @Success 200 {object} quality.Report "Отчет качества"
// @Failure 404 {object} ErrorResponse "Источник не найден"
// @Failure 422 {object} ErrorResponse "Файл экспорта отвергнут"
// @Failure 500 {object} ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/quality/analyze [post]
func (h *QualityHandler) HandleAnalyze(c *gin.Context) {
	var req services.RunRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			SendJSONError(c, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	report, err := h.service.Quality(req)
	if err != nil {
		HandleError(c, err, "quality analysis failed")
		return
	}
	c.JSON(http.StatusOK, report)
}
