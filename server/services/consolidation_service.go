package services

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"catalogserver/catalog"
	"catalogserver/consolidation"
	"catalogserver/database"
	"catalogserver/importer"
	"catalogserver/internal/config"
	"catalogserver/quality"
	"catalogserver/reports"
	apperrors "catalogserver/server/errors"
)

// RunRequest параметры запуска консолидации. Источник задается либо
// идентификатором загрузки, либо путем на сервере; пустые оба — поиск
// свежего экспорта по каталогам конфигурации.
type RunRequest struct {
	UploadID     string `json:"upload_id"`
	SourcePath   string `json:"source_path"`
	IdentityMode string `json:"identity_mode"`
}

// RunSummary итог запуска для ответа API
type RunSummary struct {
	RunID      string                 `json:"run_id"`
	SourceFile string                 `json:"source_file"`
	ReportPath string                 `json:"report_path"`
	Stats      consolidation.Counters `json:"stats"`
	Flags      []string               `json:"flags,omitempty"`
	NearMisses []consolidation.NearMiss `json:"near_misses,omitempty"`
}

// RunDetail запуск из истории вместе с архивом родителей
type RunDetail struct {
	Run     database.RunRecord      `json:"run"`
	Parents []database.ParentRecord `json:"parents"`
}

// ConsolidationService оркестрирует запуск: источник → снимок → движок →
// книга отчета → история в сервисной БД
type ConsolidationService struct {
	cfg *config.Config
	db  *database.ServiceDB
}

// NewConsolidationService создает сервис консолидации
func NewConsolidationService(cfg *config.Config, db *database.ServiceDB) *ConsolidationService {
	return &ConsolidationService{cfg: cfg, db: db}
}

// Run выполняет полный запуск консолидации
func (s *ConsolidationService) Run(req RunRequest) (*RunSummary, error) {
	sourcePath, err := s.resolveSource(req)
	if err != nil {
		return nil, err
	}

	snapshot, err := importer.LoadSnapshot(sourcePath)
	if err != nil {
		return nil, apperrors.NewUnprocessableError(
			fmt.Sprintf("failed to load export file %s", filepath.Base(sourcePath)), err)
	}

	exclusions, err := s.db.ExclusionSet()
	if err != nil {
		return nil, err
	}

	engineConfig := s.cfg.EngineConfig(exclusions)
	if req.IdentityMode != "" {
		engineConfig.IdentityMode = consolidation.IdentityMode(req.IdentityMode)
	}
	engine, err := consolidation.NewEngine(engineConfig)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid engine configuration", err)
	}

	result, err := engine.Run(snapshot)
	if err != nil {
		// Ошибка формы входа: снимок не годится для запуска
		return nil, apperrors.NewUnprocessableError("export file rejected", err)
	}

	analyzer := consolidation.NewNearMissAnalyzer(s.cfg.SimilarityThreshold)
	misses := analyzer.Analyze(result.Singles, result.Families, engineConfig.IdentityMode)
	qualityReport := quality.NewAnalyzer().Analyze(snapshot)

	runID := uuid.New().String()
	reportPath, err := s.writeWorkbook(runID, result, snapshot, misses, qualityReport)
	if err != nil {
		return nil, err
	}

	if err := s.archiveRun(runID, sourcePath, string(engineConfig.IdentityMode), reportPath, result); err != nil {
		return nil, err
	}

	return &RunSummary{
		RunID:      runID,
		SourceFile: sourcePath,
		ReportPath: reportPath,
		Stats:      result.Stats,
		Flags:      result.Flags,
		NearMisses: misses,
	}, nil
}

// Quality строит диагностический отчет качества без запуска консолидации
func (s *ConsolidationService) Quality(req RunRequest) (*quality.Report, error) {
	sourcePath, err := s.resolveSource(req)
	if err != nil {
		return nil, err
	}
	snapshot, err := importer.LoadSnapshot(sourcePath)
	if err != nil {
		return nil, apperrors.NewUnprocessableError(
			fmt.Sprintf("failed to load export file %s", filepath.Base(sourcePath)), err)
	}
	return quality.NewAnalyzer().Analyze(snapshot), nil
}

// History возвращает историю запусков
func (s *ConsolidationService) History(limit int) ([]database.RunRecord, error) {
	return s.db.ListRuns(limit)
}

// Detail возвращает запуск с архивом его родителей
func (s *ConsolidationService) Detail(runID string) (*RunDetail, error) {
	run, err := s.db.GetRun(runID)
	if err != nil {
		if errors.Is(err, database.ErrRunNotFound) {
			return nil, apperrors.NewNotFoundError("run not found", err)
		}
		return nil, err
	}
	parents, err := s.db.GetRunParents(runID)
	if err != nil {
		return nil, err
	}
	return &RunDetail{Run: *run, Parents: parents}, nil
}

// ReportFile возвращает путь к книге отчета запуска
func (s *ConsolidationService) ReportFile(runID string) (string, error) {
	run, err := s.db.GetRun(runID)
	if err != nil {
		if errors.Is(err, database.ErrRunNotFound) {
			return "", apperrors.NewNotFoundError("run not found", err)
		}
		return "", err
	}
	if run.ReportPath == "" {
		return "", apperrors.NewNotFoundError("run has no report", nil)
	}
	if _, err := os.Stat(run.ReportPath); err != nil {
		return "", apperrors.NewNotFoundError("report file is gone", err)
	}
	return run.ReportPath, nil
}

// resolveSource определяет путь к файлу экспорта по запросу
func (s *ConsolidationService) resolveSource(req RunRequest) (string, error) {
	if req.UploadID != "" {
		upload, err := s.db.GetUpload(req.UploadID)
		if err != nil {
			if errors.Is(err, database.ErrUploadNotFound) {
				return "", apperrors.NewNotFoundError("upload not found", err)
			}
			return "", err
		}
		return upload.StoredPath, nil
	}
	if req.SourcePath != "" {
		if _, err := os.Stat(req.SourcePath); err != nil {
			return "", apperrors.NewNotFoundError(
				fmt.Sprintf("source file %s not found", req.SourcePath), err)
		}
		return req.SourcePath, nil
	}

	found, err := importer.FindLatestExport(s.cfg.SearchDirs, s.cfg.FilePatterns)
	if err != nil {
		return "", apperrors.NewNotFoundError("no catalog export files found", err)
	}
	return found, nil
}

// writeWorkbook пишет книгу отчета запуска в каталог отчетов
func (s *ConsolidationService) writeWorkbook(runID string, result *consolidation.Result, snapshot *catalog.Snapshot, misses []consolidation.NearMiss, qualityReport *quality.Report) (string, error) {
	if err := os.MkdirAll(s.cfg.ReportsDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create reports directory: %w", err)
	}
	reportPath := filepath.Join(s.cfg.ReportsDir, "consolidation-"+runID+".xlsx")

	exporter := reports.NewExporter(s.cfg.ReportsConfig())
	err := exporter.WriteConsolidation(reportPath, reports.WorkbookData{
		Result:     result,
		Snapshot:   snapshot,
		NearMisses: misses,
		Quality:    qualityReport,
	})
	if err != nil {
		return "", fmt.Errorf("failed to write report workbook: %w", err)
	}
	return reportPath, nil
}

// archiveRun сохраняет запуск и его родителей в сервисную БД
func (s *ConsolidationService) archiveRun(runID, sourcePath, identityMode, reportPath string, result *consolidation.Result) error {
	run := &database.RunRecord{
		ID:            runID,
		SourceFile:    sourcePath,
		IdentityMode:  identityMode,
		Status:        database.RunStatusCompleted,
		TotalRecords:  result.Stats.TotalRecords,
		EligibleCount: result.Stats.Eligible,
		FamilyCount:   result.Stats.Families,
		SingleCount:   result.Stats.Singles,
		ParentCount:   result.Stats.Parents,
		Flags:         result.Flags,
		ReportPath:    reportPath,
		DurationMS:    result.Duration.Milliseconds(),
		CreatedAt:     time.Now(),
	}
	if err := s.db.SaveRun(run); err != nil {
		return err
	}

	parents := make([]database.ParentRecord, 0, len(result.Parents))
	for i := range result.Parents {
		parent := &result.Parents[i]
		parents = append(parents, database.ParentRecord{
			RunID:          runID,
			SKU:            parent.Record.SKU,
			Name:           parent.Record.Name,
			Identity:       parent.Identity,
			TemplateSKU:    parent.TemplateSKU,
			Variations:     parent.Record.ConfigurableVariations,
			AssociatedSkus: strings.Join(parent.Record.AssociatedSkus, ","),
		})
	}
	return s.db.SaveRunParents(runID, parents)
}
