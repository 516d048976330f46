package models

import "time"

type TransactionType string

const (
	TransactionPayment TransactionType = "payment"
	TransactionPayout  TransactionType = "payout"
	TransactionRefund  TransactionType = "refund"
	TransactionEarning TransactionType = "earning"
	TransactionDeposit TransactionType = "deposit"
)

type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "pending"
	TransactionCompleted TransactionStatus = "completed"
	TransactionFailed    TransactionStatus = "failed"
)

// Transaction is an append-only money movement on an account.
type Transaction struct {
	ID          string            `json:"id" bson:"id"`
	UserID      string            `json:"userId" bson:"userId"`
	Amount      float64           `json:"amount" bson:"amount"`
	Type        TransactionType   `json:"type" bson:"type"`
	Status      TransactionStatus `json:"status" bson:"status"`
	Description string            `json:"description,omitempty" bson:"description,omitempty"`
	BookingID   string            `json:"bookingId,omitempty" bson:"bookingId,omitempty"`
	CreatedAt   time.Time         `json:"createdAt" bson:"createdAt"`
}

// TransactionRequest is the payload for recording a transaction.
type TransactionRequest struct {
	UserID      string            `json:"userId" validate:"required"`
	Amount      float64           `json:"amount" validate:"required"`
	Type        TransactionType   `json:"type" validate:"required,oneof=payment payout refund earning deposit"`
	Status      TransactionStatus `json:"status" validate:"omitempty,oneof=pending completed failed"`
	Description string            `json:"description,omitempty" validate:"max=500"`
	BookingID   string            `json:"bookingId,omitempty"`
}
