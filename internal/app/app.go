package app

import (
	"context"
	"errors"

	"go-storefront-api/internal/config"
	"go-storefront-api/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type App struct {
	Modules
	closers []func() error
}

// Close stops background work and releases connections, last opened first.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

func BuildApp(ctx context.Context, router *gin.Engine, cfg config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.L()
	}
	a := &App{}

	// 1. Setup Infrastructure
	kv, closeKV := newStorage(ctx, cfg, logger)
	a.closers = append(a.closers, closeKV)

	publisher, stopOutbox := startOutbox(ctx, cfg, logger)
	a.closers = append(a.closers, stopOutbox)

	// 2. Middleware
	router.Use(
		middleware.RequestIDMiddleware(),
		cors.New(corsConfig(cfg)),
	)

	// 3. Register Modules & Routes
	a.Modules = buildModules(cfg, kv, publisher, logger)
	registerModules(router, cfg, a.Modules)

	// 4. Background consumer over the same modules
	a.closers = append(a.closers, startConsumer(cfg, a.Modules, logger))

	return a, nil
}

func corsConfig(cfg config.Config) cors.Config {
	c := cors.DefaultConfig()
	c.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	c.AllowHeaders = append(c.AllowHeaders, middleware.SessionHeader, middleware.RequestIDHeader)
	c.ExposeHeaders = []string{middleware.SessionHeader, middleware.RequestIDHeader}
	if len(cfg.CORSAllowOrigins) == 1 && cfg.CORSAllowOrigins[0] == "*" {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = cfg.CORSAllowOrigins
		c.AllowCredentials = true
	}
	return c
}
