package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go-jobboard/internal/config"
	"go-jobboard/internal/database"
	"go-jobboard/internal/handlers"
	"go-jobboard/internal/logging"
	"go-jobboard/internal/pdf"
	"go-jobboard/internal/services"
	"go-jobboard/internal/session"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repo, err := database.ConnectDB(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	defer repo.Close()

	if err := repo.Migrate(ctx); err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}

	jobService := services.NewJobService(repo, logger)
	sessions := session.NewStore(cfg.SessionTTL, logger)
	go sessions.Run(ctx, cfg.SweepEvery)

	var printer handlers.PDFGenerator
	if cfg.EnablePDF {
		printer = pdf.NewGenerator(logger)
	}

	r := handlers.NewRouter(
		handlers.NewJobHandler(jobService, printer, logger),
		handlers.NewSessionHandler(jobService, sessions, logger),
		cfg.AllowedOrigins,
	)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("🚀 server listening", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed to start", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
