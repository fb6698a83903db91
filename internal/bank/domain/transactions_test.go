package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func TestTransactionEntry_Validate(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name        string
		entry       TransactionEntry
		expectedErr error
	}

	tests := []testCase{
		{
			name: "valid transfer",
			entry: TransactionEntry{
				FromUserID: int64Ptr(1),
				ToUserID:   int64Ptr(2),
				Amount:     100,
				Type:       TransactionTransfer,
			},
			expectedErr: nil,
		},
		{
			name: "transfer without recipient",
			entry: TransactionEntry{
				FromUserID: int64Ptr(1),
				Amount:     100,
				Type:       TransactionTransfer,
			},
			expectedErr: &InvalidArgumentsError{},
		},
		{
			name: "transfer with non-positive amount",
			entry: TransactionEntry{
				FromUserID: int64Ptr(1),
				ToUserID:   int64Ptr(2),
				Amount:     0,
				Type:       TransactionTransfer,
			},
			expectedErr: &InvalidArgumentsError{},
		},
		{
			name: "valid payment",
			entry: TransactionEntry{
				FromUserID: int64Ptr(1),
				Amount:     400,
				Type:       TransactionPayment,
			},
			expectedErr: nil,
		},
		{
			name: "payment without payer",
			entry: TransactionEntry{
				Amount: 400,
				Type:   TransactionPayment,
			},
			expectedErr: &InvalidArgumentsError{},
		},
		{
			name: "payment with negative amount",
			entry: TransactionEntry{
				FromUserID: int64Ptr(1),
				Amount:     -400,
				Type:       TransactionPayment,
			},
			expectedErr: &InvalidArgumentsError{},
		},
		{
			name: "valid increasing adjustment",
			entry: TransactionEntry{
				ToUserID: int64Ptr(3),
				Amount:   5000,
				Type:     TransactionAdjustment,
			},
			expectedErr: nil,
		},
		{
			name: "valid decreasing adjustment keeps the raw sign",
			entry: TransactionEntry{
				ToUserID: int64Ptr(3),
				Amount:   -2500,
				Type:     TransactionAdjustment,
			},
			expectedErr: nil,
		},
		{
			name: "adjustment must originate from the system",
			entry: TransactionEntry{
				FromUserID: int64Ptr(1),
				ToUserID:   int64Ptr(3),
				Amount:     100,
				Type:       TransactionAdjustment,
			},
			expectedErr: &InvalidArgumentsError{},
		},
		{
			name: "zero adjustment",
			entry: TransactionEntry{
				ToUserID: int64Ptr(3),
				Amount:   0,
				Type:     TransactionAdjustment,
			},
			expectedErr: &InvalidArgumentsError{},
		},
		{
			name: "unknown type",
			entry: TransactionEntry{
				FromUserID: int64Ptr(1),
				ToUserID:   int64Ptr(2),
				Amount:     100,
				Type:       TransactionType("refund"),
			},
			expectedErr: &InvalidArgumentsError{},
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.entry.Validate()

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
