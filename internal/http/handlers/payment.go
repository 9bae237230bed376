package handlers

import (
	"net/http"

	"payment_webapp/internal/domain"
	"payment_webapp/internal/http/middleware"
	"payment_webapp/internal/logger"
	"payment_webapp/internal/razorpay"

	"github.com/gin-gonic/gin"
)

type CreateOrderRequest struct {
	Amount float64 `json:"amount"`
}

type VerifyPaymentRequest struct {
	OrderID       string  `json:"razorpay_order_id"`
	PaymentID     string  `json:"razorpay_payment_id"`
	Signature     string  `json:"razorpay_signature"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"paymentMethod"`
	UpiID         string  `json:"upiId"`
}

func (h *Handler) CreateOrder(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "unauthorized"})
		return
	}

	var req CreateOrderRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "bad request"})
		return
	}

	if req.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Amount must be greater than 0",
		})
		return
	}

	ctx := c.Request.Context()
	order, err := h.Gateway.CreateOrder(ctx, req.Amount)
	if err != nil {
		middleware.OrdersCreated.WithLabelValues("error").Inc()
		logger.Error("order creation failed", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to create order",
		})
		return
	}

	middleware.OrdersCreated.WithLabelValues("ok").Inc()
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"order":   order,
	})
}

func (h *Handler) VerifyPayment(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "unauthorized"})
		return
	}

	var req VerifyPaymentRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "bad request"})
		return
	}

	if req.OrderID == "" || req.PaymentID == "" || req.Signature == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Missing payment details",
		})
		return
	}

	method := domain.PaymentMethod(req.PaymentMethod)
	if req.Amount <= 0 || !method.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Missing transaction details",
		})
		return
	}

	if !razorpay.VerifySignature(req.OrderID, req.PaymentID, req.Signature, h.GatewaySecret) {
		middleware.PaymentVerifications.WithLabelValues("rejected").Inc()
		logger.Warn("payment verification failed", "user_id", userID, "order_id", req.OrderID)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Payment verification failed",
		})
		return
	}
	middleware.PaymentVerifications.WithLabelValues("verified").Inc()

	ctx := c.Request.Context()
	user, err := h.UserRepo.GetByID(ctx, userID)
	if err != nil {
		logger.Error("user lookup failed", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to verify payment"})
		return
	}

	// upi id only makes sense for UPI payments
	upiID := ""
	if method == domain.MethodUPI {
		upiID = req.UpiID
	}

	tx := &domain.Transaction{
		UserID:        user.ID,
		Name:          user.Name,
		Email:         user.Email,
		Amount:        req.Amount,
		PaymentMethod: method,
		UpiID:         upiID,
		OrderID:       req.OrderID,
		PaymentID:     req.PaymentID,
		Signature:     req.Signature,
		Status:        domain.StatusSuccess,
	}

	if err := h.TransactionRepo.Create(ctx, tx); err != nil {
		logger.Error("transaction insert failed", "user_id", userID, "order_id", req.OrderID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to verify payment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"message":       "Payment verified successfully",
		"transactionId": tx.ID,
	})
}
