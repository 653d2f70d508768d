package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"catalogserver/database"
)

// ExclusionHandler управление операционным денилистом базовых SKU
type ExclusionHandler struct {
	db *database.ServiceDB
}

// NewExclusionHandler создает обработчик исключений
func NewExclusionHandler(db *database.ServiceDB) *ExclusionHandler {
	return &ExclusionHandler{db: db}
}

// ExclusionRequest тело запроса на добавление исключения
type ExclusionRequest struct {
	BaseSKU string `json:"base_sku" binding:"required"`
	Reason  string `json:"reason"`
}

// HandleList возвращает денилист
// @Summary Список исключенных базовых SKU
// @Tags exclusions
// @Produce json
// @Success 200 {object} map[string]interface{} "Денилист"
// @Failure 500 {object} ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/exclusions [get]
func (h *ExclusionHandler) HandleList(c *gin.Context) {
	exclusions, err := h.db.ListExclusions()
	if err != nil {
		HandleError(c, err, "failed to list exclusions")
		return
	}
	c.JSON(http.StatusOK, gin.H{"exclusions": exclusions, "total": len(exclusions)})
}

// HandleAdd добавляет исключение
// @Summary Добавить базовый SKU в денилист
// @Tags exclusions
// @Accept json
// @Produce json
// @Param request body ExclusionRequest true "Исключение"
// @Success 201 {object} map[string]string "Добавлено"
// @Failure 400 {object} ErrorResponse "Неверные параметры"
// @Failure 500 {object} ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/exclusions [post]
func (h *ExclusionHandler) HandleAdd(c *gin.Context) {
	var req ExclusionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendJSONError(c, http.StatusBadRequest, "base_sku is required")
		return
	}
	baseSKU := strings.TrimSpace(req.BaseSKU)
	if baseSKU == "" {
		SendJSONError(c, http.StatusBadRequest, "base_sku must not be blank")
		return
	}

	if err := h.db.AddExclusion(baseSKU, strings.TrimSpace(req.Reason)); err != nil {
		HandleError(c, err, "failed to add exclusion")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"base_sku": baseSKU})
}

// HandleRemove удаляет исключение
// @Summary Удалить базовый SKU из денилиста
// @Tags exclusions
// @Produce json
// @Param base_sku path string true "Базовый SKU"
// @Success 200 {object} map[string]string "Удалено"
// @Failure 404 {object} ErrorResponse "SKU не найден в денилисте"
// @Failure 500 {object} ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/exclusions/{base_sku} [delete]
func (h *ExclusionHandler) HandleRemove(c *gin.Context) {
	baseSKU := c.Param("base_sku")
	removed, err := h.db.RemoveExclusion(baseSKU)
	if err != nil {
		HandleError(c, err, "failed to remove exclusion")
		return
	}
	if !removed {
		SendJSONError(c, http.StatusNotFound, "base_sku is not excluded")
		return
	}
	c.JSON(http.StatusOK, gin.H{"base_sku": baseSKU})
}
