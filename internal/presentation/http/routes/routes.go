package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/minhtran-dev/pos-ledger-api/internal/config"
	"github.com/minhtran-dev/pos-ledger-api/internal/presentation/http/handler"
	"github.com/minhtran-dev/pos-ledger-api/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Payment *handler.PaymentHandler
	Product *handler.ProductHandler
	Cashier *handler.CashierHandler
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": cfg.App.Name,
		})
	})

	rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: float64(cfg.RateLimit.Requests) / float64(cfg.RateLimit.Duration),
		BurstSize:         cfg.RateLimit.Requests,
		CleanupInterval:   5 * time.Minute,
		EntryTTL:          10 * time.Minute,
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	v1.Use(rateLimiter.Middleware())
	{
		payments := v1.Group("/payments")
		{
			payments.GET("", h.Payment.List)
			payments.GET("/:id", h.Payment.Get)
			payments.POST("", h.Payment.Create)
		}

		products := v1.Group("/products")
		{
			products.GET("", h.Product.List)
			products.POST("", h.Product.Create)
			products.PUT("/:id", h.Product.Update)
		}

		v1.GET("/cashiers", h.Cashier.List)
	}

	return router
}
