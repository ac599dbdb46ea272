package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shaiso/liftsheet/internal/api"
	"github.com/shaiso/liftsheet/internal/config"
	"github.com/shaiso/liftsheet/internal/convert"
	"github.com/shaiso/liftsheet/internal/ocr"
	"github.com/shaiso/liftsheet/internal/telemetry"
)

var (
	startTime = time.Now()
	reqTotal  = promauto.NewCounter(prometheus.CounterOpts{
		Name: "liftsheet_api_http_requests_total",
		Help: "Total HTTP requests handled by liftsheet_api",
	})
)

func main() {
	// Инициализируем structured logging
	logger := telemetry.SetupLogger()
	logger.Info("starting liftsheet-api")

	// Загружаем конфигурацию (файл опционален)
	cfg, err := config.Load(os.Getenv("LIFTSHEET_CONFIG"))
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	// Регистрируем OCR-движки
	registry := ocr.NewRegistry()
	registry.Register(ocr.NewTesseractEngine(cfg.OCR.Languages))

	visionEngine, err := ocr.NewVisionEngine(ctx, ocr.VisionConfig{
		CredentialsFile: cfg.OCR.CredentialsFile,
		Timeout:         cfg.OCR.Timeout,
	})
	if err != nil {
		logger.Warn("vision engine unavailable", "error", err)
	} else {
		registry.Register(visionEngine)
		defer visionEngine.Close()
	}

	engine, err := registry.Get(cfg.OCR.Engine)
	if err != nil {
		logger.Error("configured ocr engine not available", "engine", cfg.OCR.Engine, "error", err)
		os.Exit(1)
	}
	logger.Info("ocr engine ready", "engine", engine.Name())

	// Создаём сервис конвертации и API handler
	service := convert.NewService(engine, logger)
	handler := api.NewHandler(api.Config{
		Service:        service,
		Registry:       registry,
		MaxUploadBytes: cfg.MaxUploadBytes,
		Logger:         logger,
	})

	mux := http.NewServeMux()

	// Health и metrics
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		reqTotal.Inc()
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "ok %s", time.Since(startTime))
	})
	mux.Handle("/metrics", promhttp.Handler())

	// Регистрируем API маршруты
	handler.RegisterRoutes(mux)

	// Создаём HTTP сервер с возможностью graceful shutdown
	server := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: mux,
	}

	// Запускаем сервер в горутине
	go func() {
		logger.Info("listening", "addr", cfg.ListenAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Ожидаем сигнал завершения
	sigCtx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	<-sigCtx.Done()
	logger.Info("shutting down")

	// Graceful shutdown с таймаутом 10 секунд
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}

	logger.Info("stopped")
}
