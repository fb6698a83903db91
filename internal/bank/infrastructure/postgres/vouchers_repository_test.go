package postgres

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlipski/schoolbank/internal/bank/domain"
)

func TestVouchersRepository_Redeem(t *testing.T) {
	t.Parallel()

	voucherID := uuid.New()

	type testCase struct {
		name string

		expectedErr error

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)
	}

	tests := []testCase{
		{
			name: "voucher redeemed",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectExec("UPDATE vouchers").
					WithArgs(voucherID, int64(42)).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name: "already used voucher matches no row",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectExec("UPDATE vouchers").
					WithArgs(voucherID, int64(42)).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expectedErr: &domain.VoucherUsedError{},
		},
		{
			name: "database error",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectExec("UPDATE vouchers").
					WithArgs(voucherID, int64(42)).
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

			repo := NewVouchersRepository()
			err = repo.Redeem(t.Context(), mock, voucherID, 42)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestVouchersRepository_Mint(t *testing.T) {
	t.Parallel()

	createdAt := time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC)
	collisionErr := &pgconn.PgError{Code: uniqueViolationCode}

	type testCase struct {
		name  string
		count int

		expectedLen int
		expectedErr error

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)
	}

	tests := []testCase{
		{
			name:  "mints requested count",
			count: 2,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				for i := 0; i < 2; i++ {
					mock.ExpectQuery("SELECT EXISTS").
						WithArgs(pgxmock.AnyArg()).
						WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
					rows := pgxmock.NewRows([]string{"created_at"}).AddRow(createdAt)
					mock.ExpectQuery("INSERT INTO vouchers").
						WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), int64(1), pgxmock.AnyArg()).
						WillReturnRows(rows)
				}
			},
			expectedLen: 2,
		},
		{
			// The taken-code check runs before the insert, so the retry does
			// not trip over an aborted transaction.
			name:  "retries on code collision",
			count: 1,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("SELECT EXISTS").
					WithArgs(pgxmock.AnyArg()).
					WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
				mock.ExpectQuery("SELECT EXISTS").
					WithArgs(pgxmock.AnyArg()).
					WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
				rows := pgxmock.NewRows([]string{"created_at"}).AddRow(createdAt)
				mock.ExpectQuery("INSERT INTO vouchers").
					WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), int64(1), pgxmock.AnyArg()).
					WillReturnRows(rows)
			},
			expectedLen: 1,
		},
		{
			name:  "gives up after bounded attempts",
			count: 1,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				for i := 0; i < maxCodeAttempts; i++ {
					mock.ExpectQuery("SELECT EXISTS").
						WithArgs(pgxmock.AnyArg()).
						WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
				}
			},
			expectedErr: &domain.CodeGenerationError{},
		},
		{
			name:  "lost check-insert race surfaces the insert error",
			count: 1,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("SELECT EXISTS").
					WithArgs(pgxmock.AnyArg()).
					WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
				mock.ExpectQuery("INSERT INTO vouchers").
					WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), int64(1), pgxmock.AnyArg()).
					WillReturnError(collisionErr)
			},
			expectedErr: collisionErr,
		},
		{
			name:  "non-positive count rejected",
			count: 0,
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

			repo := NewVouchersRepository()
			vouchers, err := repo.Mint(t.Context(), mock, 1, tt.count)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			assert.NoError(t, err)
			require.Len(t, vouchers, tt.expectedLen)
			for _, voucher := range vouchers {
				assert.Len(t, voucher.Code, voucherCodeLength)
				assert.GreaterOrEqual(t, voucher.Percent, domain.MinVoucherPercent)
				assert.LessOrEqual(t, voucher.Percent, domain.MaxVoucherPercent)
				assert.False(t, voucher.Used)
			}
		})
	}
}

func TestVouchersRepository_FindUsableByCode(t *testing.T) {
	t.Parallel()

	voucherID := uuid.New()
	createdAt := time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC)

	type testCase struct {
		name   string
		userID int64
		code   string

		expectedErr error

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)
	}

	tests := []testCase{
		{
			name:   "usable voucher found",
			userID: 1,
			code:   "ABCDEFGH23",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				rows := pgxmock.NewRows([]string{"id", "code", "user_id", "percent", "used", "used_at", "used_course_id", "created_at"}).
					AddRow(voucherID, "ABCDEFGH23", int64(1), 20, false, (*time.Time)(nil), (*int64)(nil), createdAt)
				mock.ExpectQuery("SELECT").
					WithArgs(int64(1), "ABCDEFGH23").
					WillReturnRows(rows)
			},
		},
		{
			name:   "foreign code looks absent",
			userID: 2,
			code:   "ABCDEFGH23",
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				rows := pgxmock.NewRows([]string{"id", "code", "user_id", "percent", "used", "used_at", "used_course_id", "created_at"})
				mock.ExpectQuery("SELECT").
					WithArgs(int64(2), "ABCDEFGH23").
					WillReturnRows(rows)
			},
			expectedErr: &domain.VoucherNotFoundError{},
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

			repo := NewVouchersRepository()
			voucher, err := repo.FindUsableByCode(t.Context(), mock, tt.userID, tt.code)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, voucherID, voucher.ID)
				assert.Equal(t, 20, voucher.Percent)
			}
		})
	}
}
