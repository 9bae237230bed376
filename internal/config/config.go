package config

import (
	"os"
	"strconv"

	"payment_webapp/internal/logger"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort           string
	DatabaseURL       string
	JWTSecret         string
	RazorpayKeyID     string
	RazorpayKeySecret string
	Currency          string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Rate limits
	APIRateLimit   int
	APIRateWindow  int // seconds
	AuthRateLimit  int
	AuthRateWindow int // seconds
	PayRateLimit   int
	PayRateWindow  int // seconds
}

// Load reads configuration from the environment. Required variables are
// fatal when absent; everything else has a default.
func Load() *Config {
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		logger.Fatal("DATABASE_URL is not set")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		logger.Fatal("JWT_SECRET is not set")
	}

	keyID := os.Getenv("RAZORPAY_KEY_ID")
	if keyID == "" {
		logger.Fatal("RAZORPAY_KEY_ID is not set")
	}

	keySecret := os.Getenv("RAZORPAY_KEY_SECRET")
	if keySecret == "" {
		logger.Fatal("RAZORPAY_KEY_SECRET is not set")
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	currency := os.Getenv("CURRENCY")
	if currency == "" {
		currency = "INR"
	}

	redisDB := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			redisDB = n
		}
	}

	return &Config{
		AppPort:           port,
		DatabaseURL:       dbURL,
		JWTSecret:         jwtSecret,
		RazorpayKeyID:     keyID,
		RazorpayKeySecret: keySecret,
		Currency:          currency,
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		RedisDB:           redisDB,
		APIRateLimit:      envInt("API_RATE_LIMIT", 60),
		APIRateWindow:     envInt("API_RATE_WINDOW_SECONDS", 60),
		AuthRateLimit:     envInt("AUTH_RATE_LIMIT", 5),
		AuthRateWindow:    envInt("AUTH_RATE_WINDOW_SECONDS", 60),
		PayRateLimit:      envInt("PAY_RATE_LIMIT", 20),
		PayRateWindow:     envInt("PAY_RATE_WINDOW_SECONDS", 60),
	}
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}
