package http

import (
	"time"

	"payment_webapp/internal/config"
	"payment_webapp/internal/http/handlers"
	"payment_webapp/internal/http/middleware"
	"payment_webapp/internal/razorpay"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

func RegisterRoutes(r *gin.Engine, db *pgxpool.Pool, gateway *razorpay.Client, cfg *config.Config, version string) {
	h := handlers.NewHandler(db, gateway, cfg.RazorpayKeySecret)
	healthHandler := handlers.NewHealthHandler(db, version)

	apiRL := middleware.RedisRateLimit(cfg.APIRateLimit, time.Duration(cfg.APIRateWindow)*time.Second)
	authRL := middleware.RedisRateLimit(cfg.AuthRateLimit, time.Duration(cfg.AuthRateWindow)*time.Second)
	payRL := middleware.PaymentRateLimit(cfg.PayRateLimit, time.Duration(cfg.PayRateWindow)*time.Second)

	// Health checks (no rate limiting)
	r.GET("/", healthHandler.Root)
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	// Auth
	auth := r.Group("/api/auth")
	auth.Use(apiRL)
	auth.POST("/signup", authRL, h.Signup)
	auth.POST("/login", authRL, h.Login)
	auth.GET("/me", middleware.JWT(), h.Me)

	// Payments (top-level paths, matching the checkout frontend)
	r.POST("/create-order", apiRL, middleware.JWT(), payRL, h.CreateOrder)
	r.POST("/verify-payment", apiRL, middleware.JWT(), payRL, h.VerifyPayment)

	// Transaction history
	tx := r.Group("/api/transactions")
	tx.Use(apiRL, middleware.JWT())
	tx.GET("", h.ListTransactions)
	tx.GET("/:id", h.GetTransaction)
}
