package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"payment_webapp/internal/domain"
	"payment_webapp/internal/logger"
	"payment_webapp/internal/repository"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListTransactions(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "unauthorized"})
		return
	}

	ctx := c.Request.Context()
	txs, err := h.TransactionRepo.GetByUserID(ctx, userID)
	if err != nil {
		logger.Error("transaction list failed", "user_id", userID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to get transactions"})
		return
	}

	if txs == nil {
		txs = []*domain.Transaction{}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"transactions": txs,
	})
}

func (h *Handler) GetTransaction(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "unauthorized"})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Transaction not found"})
		return
	}

	ctx := c.Request.Context()
	tx, err := h.TransactionRepo.GetByIDForUser(ctx, id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Transaction not found"})
			return
		}
		logger.Error("transaction lookup failed", "user_id", userID, "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to get transaction"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"transaction": tx,
	})
}
