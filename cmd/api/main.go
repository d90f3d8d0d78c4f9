package main

import (
	"context"
	"log"
	"os"
	"time"

	"go-storefront-api/internal/app"
	"go-storefront-api/internal/bootstrap"
	"go-storefront-api/internal/config"
	"go-storefront-api/internal/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	logger, err := bootstrap.NewLogger(os.Getenv("APP_ENV"))
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	cfg := config.Load()
	apperror.Init()
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	// build dependency + routes
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	application, err := app.BuildApp(ctx, r, cfg, logger)
	cancel()
	if err != nil {
		logger.Fatal("failed to build app", zap.Error(err))
	}
	defer func() {
		if err := application.Close(); err != nil {
			logger.Warn("shutdown finished with errors", zap.Error(err))
		}
	}()

	if err := bootstrap.StartHTTPServer(
		r,
		bootstrap.ServerConfig{
			Port:            cfg.Port,
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    10 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		logger,
	); err != nil {
		logger.Error("http server failed", zap.Error(err))
	}
}
