package application

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	bankmocks "github.com/mlipski/schoolbank/gen/mocks/bank"
	dbmocks "github.com/mlipski/schoolbank/gen/mocks/database"
	logmocks "github.com/mlipski/schoolbank/gen/mocks/logging"
	"github.com/mlipski/schoolbank/internal/bank/domain"
	"github.com/mlipski/schoolbank/internal/pkg/database"
)

func TestTopUpCase_TopUpUser(t *testing.T) {
	t.Parallel()

	const targetCount = 3

	type deps struct {
		txManager *dbmocks.MockTxManager
		users     *bankmocks.MockUserDirectory
		vouchers  *bankmocks.MockVoucherKeeper
		logger    *logmocks.MockLogger
	}

	type testCase struct {
		name   string
		userID int64

		prepareFn func(t *testing.T, d *deps)

		expectedErr error
	}

	executeTxFn := func(ctx context.Context, txFn database.TxFunc) error {
		return txFn(ctx, nil)
	}

	tests := []testCase{
		{
			name:   "mints up to the target",
			userID: 1,
			prepareFn: func(t *testing.T, d *deps) {
				d.txManager.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(executeTxFn)
				d.users.EXPECT().LockUser(gomock.Any(), nil, int64(1)).
					Return(nil)
				d.vouchers.EXPECT().CountByUser(gomock.Any(), nil, int64(1)).
					Return(1, nil)
				d.vouchers.EXPECT().Mint(gomock.Any(), nil, int64(1), 2).
					Return(make([]domain.Voucher, 2), nil)
				d.logger.EXPECT().Info(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
			},
		},
		{
			name:   "already at the target mints nothing",
			userID: 1,
			prepareFn: func(t *testing.T, d *deps) {
				d.txManager.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(executeTxFn)
				d.users.EXPECT().LockUser(gomock.Any(), nil, int64(1)).
					Return(nil)
				d.vouchers.EXPECT().CountByUser(gomock.Any(), nil, int64(1)).
					Return(targetCount, nil)
			},
		},
		{
			name:   "above the target mints nothing",
			userID: 1,
			prepareFn: func(t *testing.T, d *deps) {
				d.txManager.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(executeTxFn)
				d.users.EXPECT().LockUser(gomock.Any(), nil, int64(1)).
					Return(nil)
				d.vouchers.EXPECT().CountByUser(gomock.Any(), nil, int64(1)).
					Return(targetCount+2, nil)
			},
		},
		{
			name:   "lock error",
			userID: 1,
			prepareFn: func(t *testing.T, d *deps) {
				d.txManager.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(executeTxFn)
				d.users.EXPECT().LockUser(gomock.Any(), nil, int64(1)).
					Return(assert.AnError)
			},
			expectedErr: assert.AnError,
		},
		{
			name:   "mint error",
			userID: 1,
			prepareFn: func(t *testing.T, d *deps) {
				d.txManager.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(executeTxFn)
				d.users.EXPECT().LockUser(gomock.Any(), nil, int64(1)).
					Return(nil)
				d.vouchers.EXPECT().CountByUser(gomock.Any(), nil, int64(1)).
					Return(0, nil)
				d.vouchers.EXPECT().Mint(gomock.Any(), nil, int64(1), targetCount).
					Return(nil, assert.AnError)
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			d := &deps{
				txManager: dbmocks.NewMockTxManager(ctrl),
				users:     bankmocks.NewMockUserDirectory(ctrl),
				vouchers:  bankmocks.NewMockVoucherKeeper(ctrl),
				logger:    logmocks.NewMockLogger(ctrl),
			}

			tt.prepareFn(t, d)

			topUpCase := NewTopUpCase(nil, d.txManager, d.users, d.vouchers, targetCount, d.logger)
			err := topUpCase.TopUpUser(t.Context(), tt.userID)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTopUpCase_TopUpAll(t *testing.T) {
	t.Parallel()

	const targetCount = 3

	executeTxFn := func(ctx context.Context, txFn database.TxFunc) error {
		return txFn(ctx, nil)
	}

	t.Run("continues past a failing student", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		txManager := dbmocks.NewMockTxManager(ctrl)
		users := bankmocks.NewMockUserDirectory(ctrl)
		vouchers := bankmocks.NewMockVoucherKeeper(ctrl)
		logger := logmocks.NewMockLogger(ctrl)

		users.EXPECT().ListByRole(gomock.Any(), nil, domain.RoleStudent).
			Return([]domain.User{
				{ID: 1, Username: "alice", Role: domain.RoleStudent},
				{ID: 2, Username: "bob", Role: domain.RoleStudent},
			}, nil)

		txManager.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).
			DoAndReturn(executeTxFn).Times(2)
		users.EXPECT().LockUser(gomock.Any(), nil, int64(1)).
			Return(assert.AnError)
		logger.EXPECT().Error(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
		users.EXPECT().LockUser(gomock.Any(), nil, int64(2)).
			Return(nil)
		vouchers.EXPECT().CountByUser(gomock.Any(), nil, int64(2)).
			Return(targetCount, nil)

		topUpCase := NewTopUpCase(nil, txManager, users, vouchers, targetCount, logger)
		err := topUpCase.TopUpAll(t.Context())

		assert.NoError(t, err)
	})

	t.Run("listing error aborts the run", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		txManager := dbmocks.NewMockTxManager(ctrl)
		users := bankmocks.NewMockUserDirectory(ctrl)
		vouchers := bankmocks.NewMockVoucherKeeper(ctrl)
		logger := logmocks.NewMockLogger(ctrl)

		users.EXPECT().ListByRole(gomock.Any(), nil, domain.RoleStudent).
			Return(nil, assert.AnError)

		topUpCase := NewTopUpCase(nil, txManager, users, vouchers, targetCount, logger)
		err := topUpCase.TopUpAll(t.Context())

		assert.ErrorIs(t, err, assert.AnError)
	})
}
