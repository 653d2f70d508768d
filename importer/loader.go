package importer

import (
	"fmt"
	"path/filepath"
	"strings"

	"catalogserver/catalog"
)

// LoadSnapshot загружает снимок каталога из файла экспорта, выбирая
// парсер по расширению. Поддерживаются CSV и XLSX.
func LoadSnapshot(path string) (*catalog.Snapshot, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return LoadCSV(path)
	case ".xlsx":
		return LoadXLSX(path)
	default:
		return nil, fmt.Errorf("unsupported export file format: %s", filepath.Ext(path))
	}
}

// DiscoverAndLoad находит самый свежий экспорт и загружает его.
// Явно указанный путь имеет приоритет над поиском.
func DiscoverAndLoad(explicitPath string, searchDirs []string, patterns []string) (string, *catalog.Snapshot, error) {
	path := explicitPath
	if path == "" {
		found, err := FindLatestExport(searchDirs, patterns)
		if err != nil {
			return "", nil, err
		}
		path = found
	}

	snapshot, err := LoadSnapshot(path)
	if err != nil {
		return path, nil, err
	}
	return path, snapshot, nil
}
