package importer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// DefaultSearchDirs каталоги, в которых ищется свежий экспорт
var DefaultSearchDirs = []string{".", "exports", "data", "csv", "downloads"}

// DefaultFilePatterns маски имен файлов экспорта каталога Magento
var DefaultFilePatterns = []string{
	"export_catalog_product_*.csv",
	"export_catalog_product_*.xlsx",
}

// ErrNoExportFound ни один файл экспорта не найден в каталогах поиска
var ErrNoExportFound = errors.New("no catalog export files found")

// FindLatestExport ищет самый свежий (по времени модификации) файл
// экспорта каталога в перечисленных каталогах. Пустые аргументы
// заменяются значениями по умолчанию.
func FindLatestExport(searchDirs []string, patterns []string) (string, error) {
	if len(searchDirs) == 0 {
		searchDirs = DefaultSearchDirs
	}
	if len(patterns) == 0 {
		patterns = DefaultFilePatterns
	}

	var candidates []string
	for _, dir := range searchDirs {
		for _, pattern := range patterns {
			matches, err := filepath.Glob(filepath.Join(dir, pattern))
			if err != nil {
				// Некорректная маска — ошибка конфигурации, не файла
				return "", fmt.Errorf("bad export file pattern %q: %w", pattern, err)
			}
			candidates = append(candidates, matches...)
		}
	}
	if len(candidates) == 0 {
		return "", ErrNoExportFound
	}

	sort.Slice(candidates, func(i, j int) bool {
		ti, tj := modTime(candidates[i]), modTime(candidates[j])
		if ti.Equal(tj) {
			return candidates[i] < candidates[j]
		}
		return ti.After(tj)
	})
	return candidates[0], nil
}

// modTime время модификации файла; недоступный файл уходит в конец списка
func modTime(path string) time.Time {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}
	}
	return info.ModTime()
}
