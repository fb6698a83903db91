package domain

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mlipski/schoolbank/internal/pkg/database"
)

const (
	MinVoucherPercent = 5
	MaxVoucherPercent = 50
)

// Voucher is a single-use, per-student discount code. It flips from unused
// to used exactly once, bound to the course purchase that redeemed it.
type Voucher struct {
	ID           uuid.UUID
	Code         string
	UserID       int64
	Percent      int
	Used         bool
	UsedAt       *time.Time
	UsedCourseID *int64
	CreatedAt    time.Time
}

type VoucherKeeper interface {
	Mint(ctx context.Context, executor database.QueryExecuter, userID int64, count int) ([]Voucher, error)
	// FindUsableByCode treats an ownership mismatch the same as an absent
	// code, so probing codes cannot reveal which student owns them.
	FindUsableByCode(ctx context.Context, querier database.Querier, userID int64, code string) (Voucher, error)
	Redeem(ctx context.Context, executor database.Executor, voucherID uuid.UUID, courseID int64) error
	CountByUser(ctx context.Context, querier database.Querier, userID int64) (int, error)
	ListUnusedByUser(ctx context.Context, querier database.Querier, userID int64) ([]Voucher, error)
}
