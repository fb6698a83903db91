package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mlipski/schoolbank/internal/bank/domain"
	"github.com/mlipski/schoolbank/internal/pkg/database"
)

// TransactionsLog is the append-only journal. Rows are never updated or
// deleted; sequencing with the balance mutation they record is the caller's
// job (both must run in the same database transaction).
type TransactionsLog struct{}

func NewTransactionsLog() *TransactionsLog {
	return &TransactionsLog{}
}

func (l *TransactionsLog) Append(ctx context.Context, querier database.Querier, entry domain.TransactionEntry) (domain.Transaction, error) {
	if err := entry.Validate(); err != nil {
		return domain.Transaction{}, err
	}

	insertTransactionSQL := `INSERT INTO transactions (from_user_id, to_user_id, amount, type, description)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, created_at`

	transaction := domain.Transaction{
		FromUserID:  entry.FromUserID,
		ToUserID:    entry.ToUserID,
		Amount:      entry.Amount,
		Type:        entry.Type,
		Description: entry.Description,
	}

	err := querier.QueryRow(ctx, insertTransactionSQL,
		entry.FromUserID, entry.ToUserID, entry.Amount, string(entry.Type), entry.Description).
		Scan(&transaction.ID, &transaction.CreatedAt)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("failed to insert transaction record: %w", err)
	}

	return transaction, nil
}

func (l *TransactionsLog) ListByUser(ctx context.Context, querier database.Querier, userID int64) ([]domain.Transaction, error) {
	listByUserSQL := `SELECT id, from_user_id, to_user_id, amount, type, description, created_at
FROM transactions
WHERE from_user_id = $1 OR to_user_id = $1
ORDER BY created_at DESC, id DESC`

	rows, err := querier.Query(ctx, listByUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select user transactions: %w", err)
	}

	return scanTransactions(rows)
}

func (l *TransactionsLog) ListAll(ctx context.Context, querier database.Querier) ([]domain.Transaction, error) {
	listAllSQL := `SELECT id, from_user_id, to_user_id, amount, type, description, created_at
FROM transactions
ORDER BY created_at DESC, id DESC`

	rows, err := querier.Query(ctx, listAllSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to select transactions: %w", err)
	}

	return scanTransactions(rows)
}

func scanTransactions(rows pgx.Rows) ([]domain.Transaction, error) {
	defer rows.Close()

	transactions := make([]domain.Transaction, 0)
	for rows.Next() {
		var transaction domain.Transaction
		err := rows.Scan(
			&transaction.ID,
			&transaction.FromUserID,
			&transaction.ToUserID,
			&transaction.Amount,
			&transaction.Type,
			&transaction.Description,
			&transaction.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		transactions = append(transactions, transaction)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read transaction rows: %w", err)
	}

	return transactions, nil
}
