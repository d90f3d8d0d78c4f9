package app

import (
	"go-storefront-api/internal/cart"
	"go-storefront-api/internal/catalog"
	"go-storefront-api/internal/checkout"
	"go-storefront-api/internal/config"
	"go-storefront-api/internal/coupon"
	"go-storefront-api/internal/events"
	"go-storefront-api/internal/middleware"
	"go-storefront-api/internal/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Modules are the storefront services built over one KV.
type Modules struct {
	Catalog  catalog.Provider
	Carts    cart.Service
	Coupons  coupon.Service
	Checkout checkout.Service
}

func buildModules(cfg config.Config, kv storage.KV, publisher events.Publisher, logger *zap.Logger) Modules {
	catalogProvider := catalog.NewDefaultProvider()

	// --- Services ---
	cartService := cart.NewService(cart.Deps{
		KV:        kv,
		Catalog:   catalogProvider,
		CartTTL:   cfg.CartTTL,
		CacheSize: cfg.SessionCacheSize,
		Logger:    logger.Named("cart"),
	})
	couponService := coupon.NewService(coupon.Deps{
		KV:        kv,
		CouponTTL: cfg.CouponTTL,
		CacheSize: cfg.SessionCacheSize,
		Logger:    logger.Named("coupon"),
	})
	checkoutService := checkout.NewService(cartService, couponService, publisher, logger.Named("checkout"))

	return Modules{
		Catalog:  catalogProvider,
		Carts:    cartService,
		Coupons:  couponService,
		Checkout: checkoutService,
	}
}

func registerModules(router *gin.Engine, cfg config.Config, m Modules) {
	// --- Handlers ---
	catalogHandler := catalog.NewHandler(m.Catalog)
	cartHandler := cart.NewHandler(m.Carts)
	couponHandler := coupon.NewHandler(m.Coupons)
	checkoutHandler := checkout.NewHandler(m.Checkout)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		catalog.RegisterRoutes(api, catalogHandler)

		sessions := api.Group("")
		sessions.Use(middleware.SessionMiddleware(cfg.CartTTL))
		cart.RegisterRoutes(sessions, cartHandler)
		coupon.RegisterRoutes(sessions, couponHandler)
		checkout.RegisterRoutes(sessions, checkoutHandler)
	}
}
