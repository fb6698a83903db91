package application

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/mlipski/schoolbank/internal/bank/domain"
	"github.com/mlipski/schoolbank/internal/pkg/database"
	"github.com/mlipski/schoolbank/internal/pkg/logging"
)

type AccountOverview struct {
	Account      domain.Account
	Transactions []domain.Transaction
	Vouchers     []domain.Voucher
}

// OverviewCase assembles the student dashboard: balance, history and unused
// vouchers, fetched concurrently since all three are independent reads.
type OverviewCase struct {
	db       database.Querier
	accounts domain.AccountKeeper
	journal  domain.TransactionRecorder
	vouchers domain.VoucherKeeper
	logger   logging.Logger
}

func NewOverviewCase(
	db database.Querier,
	accounts domain.AccountKeeper,
	journal domain.TransactionRecorder,
	vouchers domain.VoucherKeeper,
	logger logging.Logger,
) *OverviewCase {
	return &OverviewCase{
		db:       db,
		accounts: accounts,
		journal:  journal,
		vouchers: vouchers,
		logger:   logger,
	}
}

func (oc *OverviewCase) GetOverview(ctx context.Context, userID int64) (AccountOverview, error) {
	group, groupCtx := errgroup.WithContext(ctx)

	var overview AccountOverview

	group.Go(func() error {
		account, err := oc.accounts.GetAccount(groupCtx, oc.db, userID)
		if err != nil {
			return err
		}
		overview.Account = account
		return nil
	})

	group.Go(func() error {
		transactions, err := oc.journal.ListByUser(groupCtx, oc.db, userID)
		if err != nil {
			return err
		}
		overview.Transactions = transactions
		return nil
	})

	group.Go(func() error {
		vouchers, err := oc.vouchers.ListUnusedByUser(groupCtx, oc.db, userID)
		if err != nil {
			return err
		}
		overview.Vouchers = vouchers
		return nil
	})

	if err := group.Wait(); err != nil {
		return AccountOverview{}, err
	}

	return overview, nil
}

func (oc *OverviewCase) GetBalance(ctx context.Context, userID int64) (domain.Account, error) {
	return oc.accounts.GetAccount(ctx, oc.db, userID)
}
