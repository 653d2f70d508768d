package main

import (
	"flag"
	"fmt"
	"log"

	"catalogserver/consolidation"
	"catalogserver/importer"
	"catalogserver/internal/config"
	"catalogserver/reports"
	"catalogserver/server"
)

func main() {
	filePath := flag.String("file", "", "путь к файлу экспорта; пусто — поиск свежего экспорта")
	outPath := flag.String("out", "parent-rd-attributes-to-import.xlsx", "путь к книге результата")
	configPath := flag.String("config", "", "путь к JSON-файлу конфигурации")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("❌ Ошибка загрузки конфигурации: %v", err)
	}
	server.InitLogger(cfg.LogLevel)

	sourcePath, snapshot, err := importer.DiscoverAndLoad(*filePath, cfg.SearchDirs, cfg.FilePatterns)
	if err != nil {
		log.Fatalf("❌ Не удалось загрузить экспорт: %v", err)
	}
	fmt.Printf("📄 Используется файл: %s (%d записей)\n", sourcePath, len(snapshot.Records))

	if err := snapshot.Validate(); err != nil {
		log.Fatalf("❌ Экспорт отвергнут: %v", err)
	}

	enricher := consolidation.NewEnricher(cfg.EnricherConfig())
	result := enricher.Enrich(snapshot)

	exporter := reports.NewExporter(cfg.ReportsConfig())
	if err := exporter.WriteEnrichment(*outPath, result, cfg.EnrichFacetColumns); err != nil {
		log.Fatalf("❌ Не удалось записать книгу: %v", err)
	}

	fmt.Printf("✅ Готово! Результат записан в %s\n", *outPath)
	fmt.Printf("  - Обновленных родителей: %d\n", len(result.Updated))
	fmt.Printf("  - Родителей с пустыми фасетами: %d\n", len(result.EmptyParents))
}
