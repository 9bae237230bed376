package repository

import (
	"context"
	"errors"

	"payment_webapp/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TransactionRepository struct {
	db *pgxpool.Pool
}

func NewTransactionRepository(db *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Create inserts a new transaction. Only called after signature
// verification succeeded.
func (r *TransactionRepository) Create(ctx context.Context, tx *domain.Transaction) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO transactions
		   (user_id, name, email, amount, payment_method, upi_id,
		    razorpay_order_id, razorpay_payment_id, razorpay_signature, status)
		 VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8, $9, $10)
		 RETURNING id, created_at`,
		tx.UserID, tx.Name, tx.Email, tx.Amount, tx.PaymentMethod, tx.UpiID,
		tx.OrderID, tx.PaymentID, tx.Signature, tx.Status,
	).Scan(&tx.ID, &tx.CreatedAt)
}

// GetByUserID returns all transactions for a user, newest first.
func (r *TransactionRepository) GetByUserID(ctx context.Context, userID int64) ([]*domain.Transaction, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, name, email, amount, payment_method, COALESCE(upi_id, ''),
		        razorpay_order_id, razorpay_payment_id, razorpay_signature, status, created_at
		 FROM transactions
		 WHERE user_id = $1
		 ORDER BY created_at DESC, id DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*domain.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, tx)
	}
	return result, rows.Err()
}

// GetByIDForUser returns a single transaction scoped to the requester.
// A transaction owned by another user is ErrNotFound, not forbidden.
func (r *TransactionRepository) GetByIDForUser(ctx context.Context, id, userID int64) (*domain.Transaction, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, user_id, name, email, amount, payment_method, COALESCE(upi_id, ''),
		        razorpay_order_id, razorpay_payment_id, razorpay_signature, status, created_at
		 FROM transactions
		 WHERE id = $1 AND user_id = $2`,
		id, userID,
	)

	tx, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return tx, nil
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var tx domain.Transaction
	if err := row.Scan(
		&tx.ID,
		&tx.UserID,
		&tx.Name,
		&tx.Email,
		&tx.Amount,
		&tx.PaymentMethod,
		&tx.UpiID,
		&tx.OrderID,
		&tx.PaymentID,
		&tx.Signature,
		&tx.Status,
		&tx.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &tx, nil
}
