package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlipski/schoolbank/internal/bank/domain"
)

func TestAccountsRepository_ApplyDelta(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name   string
		userID int64
		delta  int64

		expectedBalance int64
		expectedErr     error

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)
	}

	tests := []testCase{
		{
			name:   "successful debit",
			userID: 1,
			delta:  -2000,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				rows := pgxmock.NewRows([]string{"balance"}).AddRow(int64(8000))
				mock.ExpectQuery("UPDATE accounts").
					WithArgs(int64(-2000), int64(1)).
					WillReturnRows(rows)
			},
			expectedBalance: 8000,
		},
		{
			name:   "successful credit",
			userID: 2,
			delta:  2000,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				rows := pgxmock.NewRows([]string{"balance"}).AddRow(int64(12000))
				mock.ExpectQuery("UPDATE accounts").
					WithArgs(int64(2000), int64(2)).
					WillReturnRows(rows)
			},
			expectedBalance: 12000,
		},
		{
			name:   "debit exceeding balance matches no row",
			userID: 1,
			delta:  -500,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				rows := pgxmock.NewRows([]string{"balance"})
				mock.ExpectQuery("UPDATE accounts").
					WithArgs(int64(-500), int64(1)).
					WillReturnRows(rows)
			},
			expectedErr: &domain.InsufficientFundsError{},
		},
		{
			name:   "database error",
			userID: 1,
			delta:  -100,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("UPDATE accounts").
					WithArgs(int64(-100), int64(1)).
					WillReturnError(assert.AnError)
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock, err := pgxmock.NewConn()
			require.NoError(t, err)
			defer mock.Close(t.Context())

			tt.prepareFn(t, mock)

			repo := NewAccountsRepository()
			balance, err := repo.ApplyDelta(t.Context(), mock, tt.userID, tt.delta)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedBalance, balance)
			}
		})
	}
}

func TestAccountsRepository_LockAccounts(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name    string
		userIDs []int64

		expectedRes []domain.Account
		expectedErr error

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)
	}

	tests := []testCase{
		{
			name:    "both accounts locked in id order",
			userIDs: []int64{7, 3},
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				rows := pgxmock.NewRows([]string{"user_id", "balance", "currency"}).
					AddRow(int64(3), int64(200), "PTS").
					AddRow(int64(7), int64(10000), "PTS")
				mock.ExpectQuery("SELECT").
					WithArgs([]int64{7, 3}).
					WillReturnRows(rows)
			},
			expectedRes: []domain.Account{
				{UserID: 3, Balance: 200, Currency: "PTS"},
				{UserID: 7, Balance: 10000, Currency: "PTS"},
			},
		},
		{
			name:    "one account missing",
			userIDs: []int64{1, 99},
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				rows := pgxmock.NewRows([]string{"user_id", "balance", "currency"}).
					AddRow(int64(1), int64(500), "PTS")
				mock.ExpectQuery("SELECT").
					WithArgs([]int64{1, 99}).
					WillReturnRows(rows)
			},
			expectedErr: &domain.AccountNotFoundError{},
		},
		{
			name:    "database error",
			userIDs: []int64{1, 2},
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("SELECT").
					WithArgs([]int64{1, 2}).
					WillReturnError(assert.AnError)
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock, err := pgxmock.NewConn()
			require.NoError(t, err)
			defer mock.Close(t.Context())

			tt.prepareFn(t, mock)

			repo := NewAccountsRepository()
			accounts, err := repo.LockAccounts(t.Context(), mock, tt.userIDs...)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedRes, accounts)
			}
		})
	}
}

func TestAccountsRepository_CreateAccount(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name           string
		userID         int64
		initialBalance int64

		expectedErr error

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)
	}

	tests := []testCase{
		{
			name:           "account created",
			userID:         5,
			initialBalance: 10000,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectExec("INSERT INTO accounts").
					WithArgs(int64(5), int64(10000), "PTS").
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name:           "duplicate account",
			userID:         5,
			initialBalance: 10000,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectExec("INSERT INTO accounts").
					WithArgs(int64(5), int64(10000), "PTS").
					WillReturnError(&pgconn.PgError{Code: uniqueViolationCode})
			},
			expectedErr: &domain.AccountExistsError{},
		},
		{
			name:           "negative initial balance",
			userID:         5,
			initialBalance: -1,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				// no DB calls expected
			},
			expectedErr: &domain.InvalidArgumentsError{},
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock, err := pgxmock.NewConn()
			require.NoError(t, err)
			defer mock.Close(t.Context())

			tt.prepareFn(t, mock)

			repo := NewAccountsRepository()
			err = repo.CreateAccount(t.Context(), mock, tt.userID, tt.initialBalance, "PTS")

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAccountsRepository_LockAndGetBalance(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name   string
		userID int64

		expectedBalance int64
		expectedErr     error

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)
	}

	tests := []testCase{
		{
			name:   "balance locked",
			userID: 1,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				rows := pgxmock.NewRows([]string{"balance"}).AddRow(int64(10000))
				mock.ExpectQuery("SELECT balance FROM accounts").
					WithArgs(int64(1)).
					WillReturnRows(rows)
			},
			expectedBalance: 10000,
		},
		{
			name:   "account not found",
			userID: 99,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				rows := pgxmock.NewRows([]string{"balance"})
				mock.ExpectQuery("SELECT balance FROM accounts").
					WithArgs(int64(99)).
					WillReturnRows(rows)
			},
			expectedErr: &domain.AccountNotFoundError{},
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock, err := pgxmock.NewConn()
			require.NoError(t, err)
			defer mock.Close(t.Context())

			tt.prepareFn(t, mock)

			repo := NewAccountsRepository()
			balance, err := repo.LockAndGetBalance(t.Context(), mock, tt.userID)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedBalance, balance)
			}
		})
	}
}
