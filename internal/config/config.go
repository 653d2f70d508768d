package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"catalogserver/consolidation"
	"catalogserver/importer"
	"catalogserver/reports"
)

// Config конфигурация сервиса консолидации каталога. Собирается один
// раз при старте из переменных окружения и (опционально) JSON-файла и
// передается по значению в движок — никакого процессного изменяемого
// состояния.
type Config struct {
	// Сервер
	Port                string `json:"port"`
	ServiceDatabasePath string `json:"service_database_path"`
	UploadsDir          string `json:"uploads_dir"`
	ReportsDir          string `json:"reports_dir"`

	// Логирование
	LogLevel string `json:"log_level"`

	// Ограничение частоты запросов API
	RateLimitRPS   float64 `json:"rate_limit_rps"`
	RateLimitBurst int     `json:"rate_limit_burst"`

	// Поиск файла экспорта
	SearchDirs   []string `json:"search_dirs"`
	FilePatterns []string `json:"file_patterns"`

	// Движок консолидации
	SizeTokens         []string `json:"size_tokens"`
	UnknownRank        int      `json:"unknown_rank"`
	IdentityMode       string   `json:"identity_mode"`
	ParentPrefix       string   `json:"parent_prefix"`
	VariationAxis      string   `json:"variation_axis"`
	DisplayCasing      string   `json:"display_casing"`
	SearchableValue    string   `json:"searchable_visibility"`
	ExcludedOnline     []string `json:"excluded_online"`
	RequiredVisibility []string `json:"required_visibility"`
	AggregatedColumns  []string `json:"aggregated_columns"`

	// Отчеты
	VariantColumns []string `json:"variant_columns"`

	// Диагностика почти-совпадений
	SimilarityThreshold float64 `json:"similarity_threshold"`

	// Обогащение существующих родителей
	EnrichTriggerColumn string   `json:"enrich_trigger_column"`
	EnrichFacetColumns  []string `json:"enrich_facet_columns"`
	EnrichProbeSuffixes []string `json:"enrich_probe_suffixes"`

	// Пул соединений сервисной БД
	MaxOpenConns    int           `json:"max_open_conns"`
	MaxIdleConns    int           `json:"max_idle_conns"`
	ConnMaxLifetime time.Duration `json:"-"`
}

// LoadConfig загружает конфигурацию из переменных окружения; непустой
// путь к JSON-файлу накладывает значения файла поверх окружения
func LoadConfig(configPath string) (*Config, error) {
	cfg := &Config{
		Port:                getEnv("SERVER_PORT", "9090"),
		ServiceDatabasePath: getEnv("SERVICE_DATABASE_PATH", "catalog_service.db"),
		UploadsDir:          getEnv("UPLOADS_DIR", "data/uploads"),
		ReportsDir:          getEnv("REPORTS_DIR", "data/reports"),
		LogLevel:            getEnv("LOG_LEVEL", "INFO"),
		RateLimitRPS:        getEnvFloat("RATE_LIMIT_RPS", 25),
		RateLimitBurst:      getEnvInt("RATE_LIMIT_BURST", 50),
		SearchDirs:          getEnvList("EXPORT_SEARCH_DIRS", importer.DefaultSearchDirs),
		FilePatterns:        getEnvList("EXPORT_FILE_PATTERNS", importer.DefaultFilePatterns),
		SizeTokens:          getEnvList("SIZE_TOKENS", consolidation.DefaultSizeTokens),
		UnknownRank:         getEnvInt("SIZE_UNKNOWN_RANK", consolidation.DefaultUnknownRank),
		IdentityMode:        getEnv("IDENTITY_MODE", string(consolidation.IdentityByName)),
		ParentPrefix:        getEnv("PARENT_PREFIX", "P-"),
		VariationAxis:       getEnv("VARIATION_AXIS", "size"),
		DisplayCasing:       getEnv("DISPLAY_CASING", consolidation.CasingUpper),
		SearchableValue:     getEnv("SEARCHABLE_VISIBILITY", "Catalog, Search"),
		ExcludedOnline:      getEnvList("EXCLUDED_ONLINE", []string{"2"}),
		RequiredVisibility:  getEnvList("REQUIRED_VISIBILITY", nil),
		AggregatedColumns:   getEnvList("AGGREGATED_COLUMNS", []string{"base_image", "additional_images"}),
		VariantColumns:      getEnvList("VARIANT_COLUMNS", reports.DefaultVariantColumns),
		SimilarityThreshold: getEnvFloat("SIMILARITY_THRESHOLD", consolidation.DefaultSimilarityThreshold),
		EnrichTriggerColumn: getEnv("ENRICH_TRIGGER_COLUMN", "rd_ca_div_name"),
		EnrichFacetColumns:  getEnvList("ENRICH_FACET_COLUMNS", consolidation.DefaultFacetColumns),
		EnrichProbeSuffixes: getEnvList("ENRICH_PROBE_SUFFIXES", consolidation.DefaultProbeSuffixes),
		MaxOpenConns:        getEnvInt("MAX_OPEN_CONNS", 10),
		MaxIdleConns:        getEnvInt("MAX_IDLE_CONNS", 3),
		ConnMaxLifetime:     5 * time.Minute,
	}

	if configPath != "" {
		if err := cfg.applyFile(configPath); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// applyFile накладывает значения JSON-файла поверх текущих
func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := json.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}

// EngineConfig собирает конфигурацию движка консолидации.
// exclusions — операционный денилист, обычно из сервисной БД.
func (c *Config) EngineConfig(exclusions map[string]struct{}) consolidation.Config {
	return consolidation.Config{
		SizeTokens:   c.SizeTokens,
		UnknownRank:  c.UnknownRank,
		IdentityMode: consolidation.IdentityMode(c.IdentityMode),
		Policy: consolidation.OnlinePolicy{
			ExcludedOnline:     c.ExcludedOnline,
			RequiredVisibility: c.RequiredVisibility,
		},
		Exclusions: exclusions,
		Synthesizer: consolidation.SynthesizerConfig{
			ParentPrefix:         c.ParentPrefix,
			VariationAxis:        c.VariationAxis,
			DisplayCasing:        c.DisplayCasing,
			SearchableVisibility: c.SearchableValue,
			AggregatedColumns:    c.AggregatedColumns,
		},
	}
}

// ReportsConfig собирает конфигурацию экспортера отчетов
func (c *Config) ReportsConfig() reports.Config {
	return reports.Config{VariantColumns: c.VariantColumns}
}

// EnricherConfig собирает конфигурацию обогащения родителей
func (c *Config) EnricherConfig() consolidation.EnricherConfig {
	return consolidation.EnricherConfig{
		ParentPrefix:  c.ParentPrefix,
		TriggerColumn: c.EnrichTriggerColumn,
		FacetColumns:  c.EnrichFacetColumns,
		ProbeSuffixes: c.EnrichProbeSuffixes,
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return fallback
}

// getEnvList список значений через запятую; пустая переменная дает fallback
func getEnvList(key string, fallback []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	if len(items) == 0 {
		return fallback
	}
	return items
}
