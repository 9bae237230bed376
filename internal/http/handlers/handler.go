package handlers

import (
	"payment_webapp/internal/razorpay"
	"payment_webapp/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Handler struct {
	DB              *pgxpool.Pool
	Gateway         *razorpay.Client
	GatewaySecret   string
	UserRepo        *repository.UserRepository
	TransactionRepo *repository.TransactionRepository
}

func NewHandler(db *pgxpool.Pool, gateway *razorpay.Client, gatewaySecret string) *Handler {
	return &Handler{
		DB:              db,
		Gateway:         gateway,
		GatewaySecret:   gatewaySecret,
		UserRepo:        repository.NewUserRepository(db),
		TransactionRepo: repository.NewTransactionRepository(db),
	}
}

// getUserID reads the authenticated user id set by the JWT middleware.
func getUserID(c interface{ Get(string) (any, bool) }) (int64, bool) {
	uidVal, ok := c.Get("user_id")
	if !ok {
		return 0, false
	}
	switch v := uidVal.(type) {
	case int64:
		return v, true
	case float64:
		return int64(v), true
	default:
		return 0, false
	}
}
