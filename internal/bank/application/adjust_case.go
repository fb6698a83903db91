package application

import (
	"context"

	"github.com/mlipski/schoolbank/internal/bank/domain"
	"github.com/mlipski/schoolbank/internal/pkg/database"
)

type AdjustmentResult struct {
	PreviousBalance int64
	CurrentBalance  int64
	Difference      int64
}

// AdjustCase sets an account to an absolute balance. It is the only
// operation allowed to change the total amount of money in the system; the
// journal entry carries the raw signed difference.
type AdjustCase struct {
	txManager database.TxManager
	accounts  domain.AccountKeeper
	journal   domain.TransactionRecorder
}

func NewAdjustCase(
	txManager database.TxManager,
	accounts domain.AccountKeeper,
	journal domain.TransactionRecorder,
) *AdjustCase {
	return &AdjustCase{
		txManager: txManager,
		accounts:  accounts,
		journal:   journal,
	}
}

func (ac *AdjustCase) SetBalance(ctx context.Context, userID, targetBalance int64, description string) (AdjustmentResult, error) {
	if targetBalance < 0 {
		return AdjustmentResult{}, &domain.InvalidArgumentsError{Msg: "target balance must not be negative"}
	}

	var result AdjustmentResult

	err := ac.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		current, err := ac.accounts.LockAndGetBalance(ctx, executor, userID)
		if err != nil {
			return err
		}

		difference := targetBalance - current
		result = AdjustmentResult{
			PreviousBalance: current,
			CurrentBalance:  targetBalance,
			Difference:      difference,
		}

		// Setting the balance to its current value is a no-op and leaves no
		// journal entry.
		if difference == 0 {
			return nil
		}

		if _, err := ac.accounts.ApplyDelta(ctx, executor, userID, difference); err != nil {
			return err
		}

		_, err = ac.journal.Append(ctx, executor, domain.TransactionEntry{
			ToUserID:    &userID,
			Amount:      difference,
			Type:        domain.TransactionAdjustment,
			Description: description,
		})
		return err
	})
	if err != nil {
		return AdjustmentResult{}, err
	}

	return result, nil
}
