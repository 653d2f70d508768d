package services

import (
	"net/http"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalogserver/database"
	apperrors "catalogserver/server/errors"
)

func newTestUploadService(t *testing.T) *UploadService {
	t.Helper()
	db, err := database.NewServiceDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewUploadService(filepath.Join(t.TempDir(), "uploads"), db)
}

func TestUploadSave(t *testing.T) {
	service := newTestUploadService(t)
	content := "sku,name\nRING-SM,GOLD RING\n"

	upload, err := service.Save("export_catalog_product_1.csv", strings.NewReader(content))
	require.NoError(t, err)

	assert.NotEmpty(t, upload.ID)
	assert.Equal(t, "export_catalog_product_1.csv", upload.Filename)
	assert.Equal(t, int64(len(content)), upload.SizeBytes)
	assert.FileExists(t, upload.StoredPath)
	assert.Equal(t, ".csv", filepath.Ext(upload.StoredPath))

	got, err := service.Get(upload.ID)
	require.NoError(t, err)
	assert.Equal(t, upload.StoredPath, got.StoredPath)

	uploads, err := service.List(0)
	require.NoError(t, err)
	assert.Len(t, uploads, 1)
}

func TestUploadSaveStripsDirectories(t *testing.T) {
	service := newTestUploadService(t)

	upload, err := service.Save("../../etc/export.csv", strings.NewReader("sku,name\n"))
	require.NoError(t, err)
	assert.Equal(t, "export.csv", upload.Filename)
}

func TestUploadSaveRejectsUnsupportedFormat(t *testing.T) {
	service := newTestUploadService(t)

	_, err := service.Save("export.pdf", strings.NewReader("data"))
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.StatusCode())
}
