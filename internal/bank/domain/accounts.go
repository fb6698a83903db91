package domain

import (
	"context"

	"github.com/mlipski/schoolbank/internal/pkg/database"
)

const DefaultCurrency = "PTS"

type Account struct {
	UserID   int64
	Balance  int64
	Currency string
}

// AccountKeeper is the only mutation path for balances. ApplyDelta is the
// single write primitive: an absolute set is expressed as a delta computed
// from a balance read under the same row lock.
type AccountKeeper interface {
	CreateAccount(ctx context.Context, executor database.Executor, userID int64, initialBalance int64, currency string) error
	GetAccount(ctx context.Context, querier database.Querier, userID int64) (Account, error)
	LockAndGetBalance(ctx context.Context, querier database.Querier, userID int64) (int64, error)
	// LockAccounts locks all given rows ordered by user id ascending, so two
	// opposite-direction transfers can never deadlock on each other.
	LockAccounts(ctx context.Context, querier database.Querier, userIDs ...int64) ([]Account, error)
	ApplyDelta(ctx context.Context, querier database.Querier, userID int64, delta int64) (int64, error)
}
