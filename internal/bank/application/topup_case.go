package application

import (
	"context"

	"github.com/mlipski/schoolbank/internal/bank/domain"
	"github.com/mlipski/schoolbank/internal/pkg/database"
	"github.com/mlipski/schoolbank/internal/pkg/logging"
)

// TopUpCase mints vouchers for students holding fewer than the target count.
// The count is recomputed under the user row lock inside the minting
// transaction, so two overlapping runs never over-mint.
type TopUpCase struct {
	db          database.Querier
	txManager   database.TxManager
	users       domain.UserDirectory
	vouchers    domain.VoucherKeeper
	targetCount int
	logger      logging.Logger
}

func NewTopUpCase(
	db database.Querier,
	txManager database.TxManager,
	users domain.UserDirectory,
	vouchers domain.VoucherKeeper,
	targetCount int,
	logger logging.Logger,
) *TopUpCase {
	return &TopUpCase{
		db:          db,
		txManager:   txManager,
		users:       users,
		vouchers:    vouchers,
		targetCount: targetCount,
		logger:      logger,
	}
}

func (tc *TopUpCase) TopUpAll(ctx context.Context) error {
	students, err := tc.users.ListByRole(ctx, tc.db, domain.RoleStudent)
	if err != nil {
		return err
	}

	for _, student := range students {
		if err := tc.TopUpUser(ctx, student.ID); err != nil {
			tc.logger.Error("failed to top up vouchers", "userID", student.ID, "error", err)
		}
	}

	return nil
}

func (tc *TopUpCase) TopUpUser(ctx context.Context, userID int64) error {
	return tc.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		if err := tc.users.LockUser(ctx, executor, userID); err != nil {
			return err
		}

		count, err := tc.vouchers.CountByUser(ctx, executor, userID)
		if err != nil {
			return err
		}

		if count >= tc.targetCount {
			return nil
		}

		minted, err := tc.vouchers.Mint(ctx, executor, userID, tc.targetCount-count)
		if err != nil {
			return err
		}

		tc.logger.Info("topped up vouchers", "userID", userID, "minted", len(minted))
		return nil
	})
}
