package handlers

import (
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"

	"catalogserver/server/services"
)

// ConsolidationHandler запуск консолидации и история запусков
type ConsolidationHandler struct {
	service *services.ConsolidationService
}

// NewConsolidationHandler создает обработчик консолидации
func NewConsolidationHandler(service *services.ConsolidationService) *ConsolidationHandler {
	return &ConsolidationHandler{service: service}
}

// HandleRun запускает консолидацию вариантов
// @Summary Запустить консолидацию вариантов
// @Description Загружает снимок каталога, выделяет непривязанные варианты, группирует их в семейства и синтезирует родительские записи. Источник — зарегистрированная загрузка, путь на сервере или автоматический поиск свежего экспорта.
// @Tags consolidation
// @Accept json
// @Produce json
// @Param request body services.RunRequest false "Параметры запуска"
// @Success 200 {object} services.RunSummary "Итог запуска"
// @Failure 400 {object} ErrorResponse "Неверные параметры"
// @Failure 404 {object} ErrorResponse "Источник не найден"
// @Failure 422 {object} ErrorResponse "Файл экспорта отвергнут"
// @Failure 500 {object} ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/consolidation/run [post]
func (h *ConsolidationHandler) HandleRun(c *gin.Context) {
	var req services.RunRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			SendJSONError(c, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	summary, err := h.service.Run(req)
	if err != nil {
		HandleError(c, err, "consolidation run failed")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// HandleHistory возвращает историю запусков
// @Summary История запусков консолидации
// @Tags consolidation
// @Produce json
// @Param limit query int false "Максимум записей" default(50)
// @Success 200 {object} map[string]interface{} "Список запусков"
// @Failure 500 {object} ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/consolidation/runs [get]
func (h *ConsolidationHandler) HandleHistory(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	runs, err := h.service.History(limit)
	if err != nil {
		HandleError(c, err, "failed to load run history")
		return
	}
	c.JSON(http.StatusOK, gin.H{"runs": runs, "total": len(runs)})
}

// HandleDetail возвращает запуск с архивом синтезированных родителей
// @Summary Детали запуска консолидации
// @Tags consolidation
// @Produce json
// @Param id path string true "Идентификатор запуска"
// @Success 200 {object} services.RunDetail "Запуск и его родители"
// @Failure 404 {object} ErrorResponse "Запуск не найден"
// @Failure 500 {object} ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/consolidation/runs/{id} [get]
func (h *ConsolidationHandler) HandleDetail(c *gin.Context) {
	detail, err := h.service.Detail(c.Param("id"))
	if err != nil {
		HandleError(c, err, "failed to load run")
		return
	}
	c.JSON(http.StatusOK, detail)
}

// HandleReport отдает книгу отчета запуска
// @Summary Скачать книгу отчета запуска
// @Tags consolidation
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Идентификатор запуска"
// @Success 200 {file} file "Книга Excel"
// @Failure 404 {object} ErrorResponse "Отчет не найден"
// @Router /api/consolidation/runs/{id}/report [get]
func (h *ConsolidationHandler) HandleReport(c *gin.Context) {
	path, err := h.service.ReportFile(c.Param("id"))
	if err != nil {
		HandleError(c, err, "failed to locate report")
		return
	}
	c.FileAttachment(path, filepath.Base(path))
}
