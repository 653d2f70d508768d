package catalog

import (
	"errors"
	"fmt"
)

// Ошибки формы входных данных. Фатальны: движок не запускается,
// пока снимок не проходит проверку схемы.
var (
	ErrEmptySnapshot = errors.New("snapshot contains no records")
)

// ErrMissingColumn обязательная колонка отсутствует во входном файле
type ErrMissingColumn struct {
	Column string
}

func (e *ErrMissingColumn) Error() string {
	return fmt.Sprintf("required column %q is missing from the export", e.Column)
}

// requiredColumns колонки, без которых запуск невозможен
var requiredColumns = []string{ColSKU, ColName}

// Snapshot полный снимок загруженного каталога: записи в порядке файла
// плюс объявленный набор колонок. Загрузчик явно декларирует, какие
// опциональные колонки присутствуют; ядро никогда не досоздает колонки
// молча по ходу алгоритма.
type Snapshot struct {
	Records []ProductRecord
	Columns []string

	columnSet map[string]struct{}
}

// NewSnapshot создает снимок из записей и списка колонок файла
func NewSnapshot(records []ProductRecord, columns []string) *Snapshot {
	set := make(map[string]struct{}, len(columns))
	for _, column := range columns {
		set[column] = struct{}{}
	}
	return &Snapshot{
		Records:   records,
		Columns:   columns,
		columnSet: set,
	}
}

// HasColumn сообщает, была ли колонка объявлена загрузчиком
func (s *Snapshot) HasColumn(column string) bool {
	_, ok := s.columnSet[column]
	return ok
}

// Validate проверяет форму снимка: наличие обязательных колонок
// и хотя бы одной записи. Вызывается до запуска любой стадии.
func (s *Snapshot) Validate() error {
	for _, column := range requiredColumns {
		if !s.HasColumn(column) {
			return &ErrMissingColumn{Column: column}
		}
	}
	if len(s.Records) == 0 {
		return ErrEmptySnapshot
	}
	return nil
}

// SKUSet возвращает множество всех SKU снимка. Используется правилом
// приемлемости "родитель по соглашению об именовании уже существует".
func (s *Snapshot) SKUSet() map[string]struct{} {
	set := make(map[string]struct{}, len(s.Records))
	for i := range s.Records {
		set[s.Records[i].SKU] = struct{}{}
	}
	return set
}

// Configurables возвращает записи с типом configurable в порядке файла
func (s *Snapshot) Configurables() []ProductRecord {
	var result []ProductRecord
	for i := range s.Records {
		if s.Records[i].IsConfigurable() {
			result = append(result, s.Records[i])
		}
	}
	return result
}

// Simples возвращает записи с типом simple в порядке файла
func (s *Snapshot) Simples() []ProductRecord {
	var result []ProductRecord
	for i := range s.Records {
		if s.Records[i].IsSimple() {
			result = append(result, s.Records[i])
		}
	}
	return result
}
