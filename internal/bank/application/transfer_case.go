package application

import (
	"context"

	"github.com/mlipski/schoolbank/internal/bank/domain"
	"github.com/mlipski/schoolbank/internal/pkg/database"
)

// TransferCase moves money between two student accounts. The debit, the
// credit and the journal entry commit in one database transaction, so the
// sum of all balances is invariant across any sequence of transfers.
type TransferCase struct {
	txManager database.TxManager
	users     domain.UserDirectory
	accounts  domain.AccountKeeper
	journal   domain.TransactionRecorder
}

func NewTransferCase(
	txManager database.TxManager,
	users domain.UserDirectory,
	accounts domain.AccountKeeper,
	journal domain.TransactionRecorder,
) *TransferCase {
	return &TransferCase{
		txManager: txManager,
		users:     users,
		accounts:  accounts,
		journal:   journal,
	}
}

func (tc *TransferCase) Transfer(ctx context.Context, fromUserID, toUserID, amount int64, description string) (int64, error) {
	if amount <= 0 {
		return 0, &domain.InvalidArgumentsError{Msg: "transfer amount must be positive"}
	}
	if fromUserID == toUserID {
		return 0, &domain.InvalidArgumentsError{Msg: "sender and recipient must differ"}
	}

	var senderBalance int64

	err := tc.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		recipient, err := tc.users.GetUser(ctx, executor, toUserID)
		if err != nil {
			return err
		}
		if recipient.Role != domain.RoleStudent {
			return &domain.InvalidArgumentsError{Msg: "recipient must be a student"}
		}

		accounts, err := tc.accounts.LockAccounts(ctx, executor, fromUserID, toUserID)
		if err != nil {
			return err
		}

		for _, account := range accounts {
			if account.UserID == fromUserID && account.Balance < amount {
				return &domain.InsufficientFundsError{Msg: "sender balance cannot cover the transfer"}
			}
		}

		senderBalance, err = tc.accounts.ApplyDelta(ctx, executor, fromUserID, -amount)
		if err != nil {
			return err
		}

		_, err = tc.accounts.ApplyDelta(ctx, executor, toUserID, amount)
		if err != nil {
			return err
		}

		_, err = tc.journal.Append(ctx, executor, domain.TransactionEntry{
			FromUserID:  &fromUserID,
			ToUserID:    &toUserID,
			Amount:      amount,
			Type:        domain.TransactionTransfer,
			Description: description,
		})
		return err
	})
	if err != nil {
		return 0, err
	}

	return senderBalance, nil
}
