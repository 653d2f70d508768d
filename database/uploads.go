package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrUploadNotFound загрузка с таким идентификатором не найдена
var ErrUploadNotFound = errors.New("upload not found")

// Upload загруженный через API файл экспорта
type Upload struct {
	ID         string    `json:"id"`
	Filename   string    `json:"filename"`
	StoredPath string    `json:"stored_path"`
	SizeBytes  int64     `json:"size_bytes"`
	CreatedAt  time.Time `json:"created_at"`
}

// SaveUpload регистрирует загруженный файл
func (db *ServiceDB) SaveUpload(upload *Upload) error {
	_, err := db.conn.Exec(`
		INSERT INTO uploads (id, filename, stored_path, size_bytes, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		upload.ID, upload.Filename, upload.StoredPath, upload.SizeBytes,
		upload.CreatedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to save upload: %w", err)
	}
	return nil
}

// GetUpload возвращает загрузку по идентификатору
func (db *ServiceDB) GetUpload(id string) (*Upload, error) {
	var upload Upload
	var createdAt string
	err := db.conn.QueryRow(`
		SELECT id, filename, stored_path, size_bytes, created_at
		FROM uploads WHERE id = ?`, id).
		Scan(&upload.ID, &upload.Filename, &upload.StoredPath, &upload.SizeBytes, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUploadNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get upload: %w", err)
	}
	if ts, err := time.Parse(time.RFC3339, createdAt); err == nil {
		upload.CreatedAt = ts
	}
	return &upload, nil
}

// ListUploads возвращает загрузки от новых к старым
func (db *ServiceDB) ListUploads(limit int) ([]Upload, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.conn.Query(`
		SELECT id, filename, stored_path, size_bytes, created_at
		FROM uploads ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list uploads: %w", err)
	}
	defer rows.Close()

	var uploads []Upload
	for rows.Next() {
		var upload Upload
		var createdAt string
		if err := rows.Scan(&upload.ID, &upload.Filename, &upload.StoredPath, &upload.SizeBytes, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan upload: %w", err)
		}
		if ts, err := time.Parse(time.RFC3339, createdAt); err == nil {
			upload.CreatedAt = ts
		}
		uploads = append(uploads, upload)
	}
	return uploads, rows.Err()
}
