package services

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"catalogserver/database"
	apperrors "catalogserver/server/errors"
)

// allowedUploadExtensions форматы экспорта, принимаемые сервисом
var allowedUploadExtensions = map[string]struct{}{
	".csv":  {},
	".xlsx": {},
}

// UploadService прием файлов экспорта каталога: сохранение на диск под
// уникальным именем и регистрация в сервисной БД
type UploadService struct {
	uploadsDir string
	db         *database.ServiceDB
}

// NewUploadService создает сервис загрузок
func NewUploadService(uploadsDir string, db *database.ServiceDB) *UploadService {
	return &UploadService{uploadsDir: uploadsDir, db: db}
}

// Save сохраняет загруженный файл и возвращает его регистрацию
func (s *UploadService) Save(filename string, src io.Reader) (*database.Upload, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := allowedUploadExtensions[ext]; !ok {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("unsupported file format %q, expected .csv or .xlsx", ext), nil)
	}

	if err := os.MkdirAll(s.uploadsDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory: %w", err)
	}

	id := uuid.New().String()
	storedPath := filepath.Join(s.uploadsDir, id+ext)

	dst, err := os.Create(storedPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	size, err := io.Copy(dst, src)
	if err != nil {
		os.Remove(storedPath)
		return nil, fmt.Errorf("failed to store upload: %w", err)
	}

	upload := &database.Upload{
		ID:         id,
		Filename:   filepath.Base(filename),
		StoredPath: storedPath,
		SizeBytes:  size,
		CreatedAt:  time.Now(),
	}
	if err := s.db.SaveUpload(upload); err != nil {
		os.Remove(storedPath)
		return nil, err
	}
	return upload, nil
}

// Get возвращает регистрацию загрузки
func (s *UploadService) Get(id string) (*database.Upload, error) {
	return s.db.GetUpload(id)
}

// List возвращает последние загрузки
func (s *UploadService) List(limit int) ([]database.Upload, error) {
	return s.db.ListUploads(limit)
}
