package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"catalogserver/database"
	"catalogserver/internal/config"
	"catalogserver/server/handlers"
	"catalogserver/server/middleware"
	"catalogserver/server/services"
)

// Server HTTP-сервис консолидации каталога
type Server struct {
	cfg    *config.Config
	db     *database.ServiceDB
	router *gin.Engine
	http   *http.Server
}

// NewServer собирает сервер: сервисы, обработчики, маршруты
func NewServer(cfg *config.Config, db *database.ServiceDB) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(middleware.GinRequestIDMiddleware())
	router.Use(middleware.GinLoggerMiddleware())
	router.Use(middleware.GinRecoveryMiddleware())
	router.Use(middleware.GinCORSMiddleware())
	router.Use(middleware.GinRateLimitMiddleware(rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)))

	uploadService := services.NewUploadService(cfg.UploadsDir, db)
	consolidationService := services.NewConsolidationService(cfg, db)

	uploadHandler := handlers.NewUploadHandler(uploadService)
	consolidationHandler := handlers.NewConsolidationHandler(consolidationService)
	exclusionHandler := handlers.NewExclusionHandler(db)
	qualityHandler := handlers.NewQualityHandler(consolidationService)

	api := router.Group("/api")
	{
		api.GET("/health", handlers.HandleHealth)

		api.POST("/uploads", uploadHandler.HandleUpload)
		api.GET("/uploads", uploadHandler.HandleListUploads)

		api.POST("/consolidation/run", consolidationHandler.HandleRun)
		api.GET("/consolidation/runs", consolidationHandler.HandleHistory)
		api.GET("/consolidation/runs/:id", consolidationHandler.HandleDetail)
		api.GET("/consolidation/runs/:id/report", consolidationHandler.HandleReport)

		api.GET("/exclusions", exclusionHandler.HandleList)
		api.POST("/exclusions", exclusionHandler.HandleAdd)
		api.DELETE("/exclusions/:base_sku", exclusionHandler.HandleRemove)

		api.POST("/quality/analyze", qualityHandler.HandleAnalyze)
	}

	handlers.RegisterSwaggerRoutes(router, "localhost:"+cfg.Port)

	return &Server{
		cfg:    cfg,
		db:     db,
		router: router,
		http: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Router возвращает роутер (для httptest)
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run запускает HTTP-сервер и блокируется до его остановки
func (s *Server) Run() error {
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server failed: %w", err)
	}
	return nil
}

// Shutdown аккуратно останавливает сервер
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
