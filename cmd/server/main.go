// @title Catalog Consolidation API
// @version 1.0
// @description API сервиса консолидации вариантов каталога: выделение непривязанных вариантов, синтез родительских продуктов, отчеты и управление исключениями.

// @contact.name API Support
// @contact.email support@example.com

// @license.name Internal Use Only

// @host localhost:9090
// @BasePath /api
// @schemes http

package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"catalogserver/database"
	"catalogserver/internal/config"
	"catalogserver/server"
)

func main() {
	configPath := flag.String("config", "", "путь к JSON-файлу конфигурации")
	flag.Parse()

	log.Println("═══════════════════════════════════════════════════════")
	log.Println("🚀 Запуск Catalog Consolidation Server...")

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	server.InitLogger(cfg.LogLevel)

	if err := os.MkdirAll(cfg.UploadsDir, 0o755); err != nil {
		log.Printf("Предупреждение: не удалось создать каталог загрузок: %v", err)
	}
	if err := os.MkdirAll(cfg.ReportsDir, 0o755); err != nil {
		log.Printf("Предупреждение: не удалось создать каталог отчетов: %v", err)
	}

	dbConfig := database.DBConfig{
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	}
	db, err := database.NewServiceDBWithConfig(cfg.ServiceDatabasePath, dbConfig)
	if err != nil {
		log.Fatalf("Ошибка создания сервисной базы данных: %v", err)
	}
	defer db.Close()
	log.Printf("Используется сервисная база данных: %s", cfg.ServiceDatabasePath)

	srv := server.NewServer(cfg, db)

	go func() {
		log.Printf("✅ Сервер слушает порт %s", cfg.Port)
		if err := srv.Run(); err != nil {
			log.Fatalf("Ошибка сервера: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Останавливаем сервер...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Ошибка остановки сервера: %v", err)
	}
	log.Println("Сервер остановлен")
}
