package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"catalogserver/server/services"
)

// UploadHandler прием файлов экспорта каталога
type UploadHandler struct {
	uploads *services.UploadService
}

// NewUploadHandler создает обработчик загрузок
func NewUploadHandler(uploads *services.UploadService) *UploadHandler {
	return &UploadHandler{uploads: uploads}
}

// UploadResponse ответ на успешную загрузку
type UploadResponse struct {
	ID       string `json:"id"`
	Filename string `json:"filename"`
	Size     int64  `json:"size_bytes"`
}

// HandleUpload загружает файл экспорта каталога
// @Summary Загрузить файл экспорта каталога
// @Description Принимает CSV или XLSX экспорт каталога и регистрирует его для последующих запусков
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Файл экспорта (.csv или .xlsx)"
// @Success 201 {object} UploadResponse "Файл зарегистрирован"
// @Failure 400 {object} ErrorResponse "Неверный формат файла"
// @Failure 500 {object} ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/uploads [post]
func (h *UploadHandler) HandleUpload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		SendJSONError(c, http.StatusBadRequest, "multipart field \"file\" is required")
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		HandleError(c, err, "failed to open uploaded file")
		return
	}
	defer src.Close()

	upload, err := h.uploads.Save(fileHeader.Filename, src)
	if err != nil {
		HandleError(c, err, "failed to store uploaded file")
		return
	}

	c.JSON(http.StatusCreated, UploadResponse{
		ID:       upload.ID,
		Filename: upload.Filename,
		Size:     upload.SizeBytes,
	})
}

// HandleListUploads возвращает список загрузок
// @Summary Список загруженных файлов
// @Tags uploads
// @Produce json
// @Param limit query int false "Максимум записей" default(50)
// @Success 200 {object} map[string]interface{} "Список загрузок"
// @Failure 500 {object} ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/uploads [get]
func (h *UploadHandler) HandleListUploads(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	uploads, err := h.uploads.List(limit)
	if err != nil {
		HandleError(c, err, "failed to list uploads")
		return
	}
	c.JSON(http.StatusOK, gin.H{"uploads": uploads, "total": len(uploads)})
}
