package database

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Статусы запуска консолидации
const (
	RunStatusCompleted = "completed"
	RunStatusFailed    = "failed"
)

// ErrRunNotFound запуск с таким идентификатором не найден
var ErrRunNotFound = errors.New("consolidation run not found")

// RunRecord строка истории запусков
type RunRecord struct {
	ID            string    `json:"id"`
	SourceFile    string    `json:"source_file"`
	IdentityMode  string    `json:"identity_mode"`
	Status        string    `json:"status"`
	TotalRecords  int       `json:"total_records"`
	EligibleCount int       `json:"eligible_count"`
	FamilyCount   int       `json:"family_count"`
	SingleCount   int       `json:"single_count"`
	ParentCount   int       `json:"parent_count"`
	Flags         []string  `json:"flags,omitempty"`
	ReportPath    string    `json:"report_path,omitempty"`
	DurationMS    int64     `json:"duration_ms"`
	CreatedAt     time.Time `json:"created_at"`
}

// ParentRecord архивная строка синтезированного родителя
type ParentRecord struct {
	RunID          string `json:"run_id"`
	SKU            string `json:"sku"`
	Name           string `json:"name"`
	Identity       string `json:"identity"`
	TemplateSKU    string `json:"template_sku"`
	Variations     string `json:"configurable_variations"`
	AssociatedSkus string `json:"associated_skus"`
}

// SaveRun сохраняет запись о запуске
func (db *ServiceDB) SaveRun(run *RunRecord) error {
	_, err := db.conn.Exec(`
		INSERT INTO consolidation_runs
			(id, source_file, identity_mode, status, total_records, eligible_count,
			 family_count, single_count, parent_count, flags, report_path, duration_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.SourceFile, run.IdentityMode, run.Status,
		run.TotalRecords, run.EligibleCount, run.FamilyCount, run.SingleCount, run.ParentCount,
		strings.Join(run.Flags, "\n"), run.ReportPath, run.DurationMS,
		run.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to save run: %w", err)
	}
	return nil
}

// GetRun возвращает запись о запуске по идентификатору
func (db *ServiceDB) GetRun(id string) (*RunRecord, error) {
	row := db.conn.QueryRow(`
		SELECT id, source_file, identity_mode, status, total_records, eligible_count,
		       family_count, single_count, parent_count, flags, report_path, duration_ms, created_at
		FROM consolidation_runs WHERE id = ?`, id)

	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRunNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return run, nil
}

// ListRuns возвращает историю запусков от новых к старым
func (db *ServiceDB) ListRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.conn.Query(`
		SELECT id, source_file, identity_mode, status, total_records, eligible_count,
		       family_count, single_count, parent_count, flags, report_path, duration_ms, created_at
		FROM consolidation_runs ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, *run)
	}
	return runs, rows.Err()
}

// rowScanner общий интерфейс sql.Row и sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRun(scanner rowScanner) (*RunRecord, error) {
	var run RunRecord
	var flags, createdAt string
	if err := scanner.Scan(
		&run.ID, &run.SourceFile, &run.IdentityMode, &run.Status,
		&run.TotalRecords, &run.EligibleCount, &run.FamilyCount, &run.SingleCount, &run.ParentCount,
		&flags, &run.ReportPath, &run.DurationMS, &createdAt,
	); err != nil {
		return nil, err
	}
	if flags != "" {
		run.Flags = strings.Split(flags, "\n")
	}
	if ts, err := time.Parse(time.RFC3339, createdAt); err == nil {
		run.CreatedAt = ts
	}
	return &run, nil
}

// SaveRunParents сохраняет архив родителей запуска одной транзакцией
func (db *ServiceDB) SaveRunParents(runID string, parents []ParentRecord) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO run_parents
			(run_id, sku, name, identity, template_sku, configurable_variations, associated_skus)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, parent := range parents {
		if _, err := stmt.Exec(runID, parent.SKU, parent.Name, parent.Identity,
			parent.TemplateSKU, parent.Variations, parent.AssociatedSkus); err != nil {
			return fmt.Errorf("failed to save parent %s: %w", parent.SKU, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit parents: %w", err)
	}
	return nil
}

// GetRunParents возвращает архив родителей запуска в порядке SKU
func (db *ServiceDB) GetRunParents(runID string) ([]ParentRecord, error) {
	rows, err := db.conn.Query(`
		SELECT run_id, sku, name, identity, template_sku, configurable_variations, associated_skus
		FROM run_parents WHERE run_id = ? ORDER BY sku`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to get run parents: %w", err)
	}
	defer rows.Close()

	var parents []ParentRecord
	for rows.Next() {
		var parent ParentRecord
		if err := rows.Scan(&parent.RunID, &parent.SKU, &parent.Name, &parent.Identity,
			&parent.TemplateSKU, &parent.Variations, &parent.AssociatedSkus); err != nil {
			return nil, fmt.Errorf("failed to scan parent: %w", err)
		}
		parents = append(parents, parent)
	}
	return parents, rows.Err()
}
