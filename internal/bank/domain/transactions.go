package domain

import (
	"context"
	"time"

	"github.com/mlipski/schoolbank/internal/pkg/database"
)

type TransactionType string

const (
	TransactionTransfer   TransactionType = "transfer"
	TransactionPayment    TransactionType = "payment"
	TransactionAdjustment TransactionType = "adjustment"
)

// Transaction is an immutable journal record of a committed balance change.
type Transaction struct {
	ID          int64
	FromUserID  *int64
	ToUserID    *int64
	Amount      int64
	Type        TransactionType
	Description string
	CreatedAt   time.Time
}

// TransactionEntry is the caller-supplied part of a journal record.
// For adjustments the amount carries the raw signed difference; a negative
// amount records an administrative decrease.
type TransactionEntry struct {
	FromUserID  *int64
	ToUserID    *int64
	Amount      int64
	Type        TransactionType
	Description string
}

func (e TransactionEntry) Validate() error {
	switch e.Type {
	case TransactionTransfer:
		if e.FromUserID == nil || e.ToUserID == nil {
			return &InvalidArgumentsError{Msg: "transfer entry requires both parties"}
		}
		if e.Amount <= 0 {
			return &InvalidArgumentsError{Msg: "transfer amount must be positive"}
		}
	case TransactionPayment:
		if e.FromUserID == nil {
			return &InvalidArgumentsError{Msg: "payment entry requires a paying party"}
		}
		if e.Amount <= 0 {
			return &InvalidArgumentsError{Msg: "payment amount must be positive"}
		}
	case TransactionAdjustment:
		if e.ToUserID == nil {
			return &InvalidArgumentsError{Msg: "adjustment entry requires an affected party"}
		}
		if e.FromUserID != nil {
			return &InvalidArgumentsError{Msg: "adjustment entry originates from the system"}
		}
		if e.Amount == 0 {
			return &InvalidArgumentsError{Msg: "adjustment amount must be non-zero"}
		}
	default:
		return &InvalidArgumentsError{Msg: "unknown transaction type"}
	}

	return nil
}

type TransactionRecorder interface {
	Append(ctx context.Context, querier database.Querier, entry TransactionEntry) (Transaction, error)
	ListByUser(ctx context.Context, querier database.Querier, userID int64) ([]Transaction, error)
	ListAll(ctx context.Context, querier database.Querier) ([]Transaction, error)
}
