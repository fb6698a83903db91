package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mlipski/schoolbank/internal/bank/domain"
	"github.com/mlipski/schoolbank/internal/pkg/database"
)

type AccountsRepository struct{}

func NewAccountsRepository() *AccountsRepository {
	return &AccountsRepository{}
}

func (r *AccountsRepository) CreateAccount(ctx context.Context, executor database.Executor, userID int64, initialBalance int64, currency string) error {
	if initialBalance < 0 {
		return &domain.InvalidArgumentsError{Msg: "initial balance must not be negative"}
	}

	insertAccountSQL := `INSERT INTO accounts (user_id, balance, currency) VALUES ($1, $2, $3)`
	_, err := executor.Exec(ctx, insertAccountSQL, userID, initialBalance, currency)
	if err != nil {
		if isUniqueViolation(err) {
			return &domain.AccountExistsError{Msg: fmt.Sprintf("account for user %d already exists", userID)}
		}

		return fmt.Errorf("failed to insert account: %w", err)
	}

	return nil
}

func (r *AccountsRepository) GetAccount(ctx context.Context, querier database.Querier, userID int64) (domain.Account, error) {
	selectAccountSQL := `SELECT user_id, balance, currency FROM accounts WHERE user_id = $1`

	var account domain.Account
	err := querier.QueryRow(ctx, selectAccountSQL, userID).Scan(&account.UserID, &account.Balance, &account.Currency)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Account{}, &domain.AccountNotFoundError{Msg: fmt.Sprintf("account for user %d not found", userID)}
		}

		return domain.Account{}, fmt.Errorf("failed to select account: %w", err)
	}

	return account, nil
}

func (r *AccountsRepository) LockAndGetBalance(ctx context.Context, querier database.Querier, userID int64) (int64, error) {
	lockAccountSQL := `SELECT balance FROM accounts WHERE user_id = $1 FOR UPDATE`

	var balance int64
	err := querier.QueryRow(ctx, lockAccountSQL, userID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, &domain.AccountNotFoundError{Msg: fmt.Sprintf("account for user %d not found", userID)}
		}

		return 0, fmt.Errorf("failed to lock account row: %w", err)
	}

	return balance, nil
}

func (r *AccountsRepository) LockAccounts(ctx context.Context, querier database.Querier, userIDs ...int64) ([]domain.Account, error) {
	// Locking in user_id order keeps the global lock acquisition order fixed
	// across concurrent transfers.
	lockAccountsSQL := `SELECT user_id, balance, currency
FROM accounts
WHERE user_id = ANY($1)
ORDER BY user_id
FOR UPDATE`

	rows, err := querier.Query(ctx, lockAccountsSQL, userIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to lock account rows: %w", err)
	}
	defer rows.Close()

	accounts := make([]domain.Account, 0, len(userIDs))
	for rows.Next() {
		var account domain.Account
		err = rows.Scan(&account.UserID, &account.Balance, &account.Currency)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, account)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read account rows: %w", err)
	}

	if len(accounts) != len(userIDs) {
		return nil, &domain.AccountNotFoundError{Msg: "one of the accounts does not exist"}
	}

	return accounts, nil
}

func (r *AccountsRepository) ApplyDelta(ctx context.Context, querier database.Querier, userID int64, delta int64) (int64, error) {
	// The balance guard lives in the statement itself: a delta that would
	// drive the balance negative matches no row and mutates nothing.
	applyDeltaSQL := `UPDATE accounts
SET balance = balance + $1
WHERE user_id = $2 AND balance + $1 >= 0
RETURNING balance`

	var newBalance int64
	err := querier.QueryRow(ctx, applyDeltaSQL, delta, userID).Scan(&newBalance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, &domain.InsufficientFundsError{Msg: fmt.Sprintf("balance of user %d cannot cover %d", userID, -delta)}
		}

		return 0, fmt.Errorf("failed to apply balance delta: %w", err)
	}

	return newBalance, nil
}

func (r *AccountsRepository) SumBalances(ctx context.Context, querier database.Querier) (int64, error) {
	sumSQL := `SELECT COALESCE(SUM(balance), 0) FROM accounts`

	var total int64
	err := querier.QueryRow(ctx, sumSQL).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum balances: %w", err)
	}

	return total, nil
}
