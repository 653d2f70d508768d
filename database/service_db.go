package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// DBConfig конфигурация подключения к сервисной БД
type DBConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// ServiceDB сервисная база данных: история запусков консолидации,
// архив синтезированных родителей, операционный денилист базовых SKU
// и реестр загруженных файлов
type ServiceDB struct {
	conn *sql.DB
}

// NewServiceDB создает подключение к сервисной БД с настройками по умолчанию
func NewServiceDB(dbPath string) (*ServiceDB, error) {
	config := DBConfig{}

	// In-memory SQLite обязан жить на одном соединении, иначе каждое
	// новое соединение видит пустую БД без таблиц
	if isInMemory(dbPath) {
		config.MaxOpenConns = 1
		config.MaxIdleConns = 1
	}
	return NewServiceDBWithConfig(dbPath, config)
}

// isInMemory определяет, что путь относится к in-memory SQLite
func isInMemory(dbPath string) bool {
	if dbPath == ":memory:" {
		return true
	}
	return strings.HasPrefix(dbPath, "file:") && strings.Contains(dbPath, "mode=memory")
}

// NewServiceDBWithConfig создает подключение к сервисной БД с конфигурацией пула
func NewServiceDBWithConfig(dbPath string, config DBConfig) (*ServiceDB, error) {
	conn, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open service database: %w", err)
	}

	// SQLite плохо переносит большое число одновременных соединений
	if config.MaxOpenConns > 0 {
		conn.SetMaxOpenConns(config.MaxOpenConns)
	} else {
		conn.SetMaxOpenConns(10)
	}
	if config.MaxIdleConns > 0 {
		conn.SetMaxIdleConns(config.MaxIdleConns)
	} else {
		conn.SetMaxIdleConns(3)
	}
	if config.ConnMaxLifetime > 0 {
		conn.SetConnMaxLifetime(config.ConnMaxLifetime)
	} else {
		conn.SetConnMaxLifetime(5 * time.Minute)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping service database: %w", err)
	}

	db := &ServiceDB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to run service database migrations: %w", err)
	}
	return db, nil
}

// Close закрывает подключение
func (db *ServiceDB) Close() error {
	return db.conn.Close()
}

// migrate создает таблицы сервисной БД, если их еще нет
func (db *ServiceDB) migrate() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS consolidation_runs (
			id TEXT PRIMARY KEY,
			source_file TEXT NOT NULL,
			identity_mode TEXT NOT NULL,
			status TEXT NOT NULL,
			total_records INTEGER NOT NULL DEFAULT 0,
			eligible_count INTEGER NOT NULL DEFAULT 0,
			family_count INTEGER NOT NULL DEFAULT 0,
			single_count INTEGER NOT NULL DEFAULT 0,
			parent_count INTEGER NOT NULL DEFAULT 0,
			flags TEXT NOT NULL DEFAULT '',
			report_path TEXT NOT NULL DEFAULT '',
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS run_parents (
			run_id TEXT NOT NULL,
			sku TEXT NOT NULL,
			name TEXT NOT NULL,
			identity TEXT NOT NULL,
			template_sku TEXT NOT NULL,
			configurable_variations TEXT NOT NULL,
			associated_skus TEXT NOT NULL,
			PRIMARY KEY (run_id, sku),
			FOREIGN KEY (run_id) REFERENCES consolidation_runs(id)
		)`,
		`CREATE TABLE IF NOT EXISTS exclusions (
			base_sku TEXT PRIMARY KEY,
			reason TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS uploads (
			id TEXT PRIMARY KEY,
			filename TEXT NOT NULL,
			stored_path TEXT NOT NULL,
			size_bytes INTEGER NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_run_parents_run ON run_parents(run_id)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_created ON consolidation_runs(created_at)`,
	}

	for _, statement := range statements {
		if _, err := db.conn.Exec(statement); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}
