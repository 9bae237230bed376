package domain

import "time"

// PaymentMethod is the instrument used to settle a payment.
type PaymentMethod string

const (
	MethodUPI    PaymentMethod = "UPI"
	MethodCard   PaymentMethod = "Card"
	MethodWallet PaymentMethod = "Wallet"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodUPI, MethodCard, MethodWallet:
		return true
	}
	return false
}

// TransactionStatus is the terminal outcome of a payment attempt.
// The verification flow only ever records success; failed exists for
// imports and manual corrections.
type TransactionStatus string

const (
	StatusSuccess TransactionStatus = "success"
	StatusFailed  TransactionStatus = "failed"
)

func (s TransactionStatus) Valid() bool {
	return s == StatusSuccess || s == StatusFailed
}

// Transaction is an immutable record of one verified payment. Name and
// email are snapshots of the owning user at the time of payment. The
// gateway signature is stored but never serialized to clients.
type Transaction struct {
	ID            int64             `db:"id" json:"id"`
	UserID        int64             `db:"user_id" json:"user_id"`
	Name          string            `db:"name" json:"name"`
	Email         string            `db:"email" json:"email"`
	Amount        float64           `db:"amount" json:"amount"`
	PaymentMethod PaymentMethod     `db:"payment_method" json:"paymentMethod"`
	UpiID         string            `db:"upi_id" json:"upiId,omitempty"`
	OrderID       string            `db:"razorpay_order_id" json:"razorpay_order_id"`
	PaymentID     string            `db:"razorpay_payment_id" json:"razorpay_payment_id"`
	Signature     string            `db:"razorpay_signature" json:"-"`
	Status        TransactionStatus `db:"status" json:"status"`
	CreatedAt     time.Time         `db:"created_at" json:"created_at"`
}
