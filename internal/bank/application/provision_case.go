package application

import (
	"context"

	"github.com/mlipski/schoolbank/internal/bank/domain"
	"github.com/mlipski/schoolbank/internal/pkg/database"
)

// ProvisionCase creates a new student: directory entry, account with the
// configured opening balance and the initial voucher batch, all in one
// transaction.
type ProvisionCase struct {
	txManager      database.TxManager
	users          domain.UserDirectory
	accounts       domain.AccountKeeper
	vouchers       domain.VoucherKeeper
	hasher         domain.PasswordHasher
	openingBalance int64
	voucherBatch   int
}

func NewProvisionCase(
	txManager database.TxManager,
	users domain.UserDirectory,
	accounts domain.AccountKeeper,
	vouchers domain.VoucherKeeper,
	hasher domain.PasswordHasher,
	openingBalance int64,
	voucherBatch int,
) *ProvisionCase {
	return &ProvisionCase{
		txManager:      txManager,
		users:          users,
		accounts:       accounts,
		vouchers:       vouchers,
		hasher:         hasher,
		openingBalance: openingBalance,
		voucherBatch:   voucherBatch,
	}
}

func (pc *ProvisionCase) CreateStudent(ctx context.Context, username, password string) (domain.User, error) {
	if username == "" || password == "" {
		return domain.User{}, &domain.InvalidArgumentsError{Msg: "username and password must not be empty"}
	}

	passwordHash, err := pc.hasher.HashPassword(password)
	if err != nil {
		return domain.User{}, err
	}

	var student domain.User

	err = pc.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		student, err = pc.users.CreateUser(ctx, executor, username, passwordHash, domain.RoleStudent)
		if err != nil {
			return err
		}

		err = pc.accounts.CreateAccount(ctx, executor, student.ID, pc.openingBalance, domain.DefaultCurrency)
		if err != nil {
			return err
		}

		_, err = pc.vouchers.Mint(ctx, executor, student.ID, pc.voucherBatch)
		return err
	})
	if err != nil {
		return domain.User{}, err
	}

	return student, nil
}
