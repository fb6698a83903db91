package application

import (
	"context"

	"github.com/mlipski/schoolbank/internal/bank/domain"
	"github.com/mlipski/schoolbank/internal/pkg/database"
)

type PurchaseResult struct {
	Enrollment       domain.Enrollment
	PricePaid        int64
	RemainingBalance int64
}

// PurchaseCase enrolls a student into a course for its (possibly
// voucher-discounted) price. Debit, enrollment, journal entry and voucher
// redemption commit together; a voucher lost to a concurrent purchase aborts
// the whole operation.
type PurchaseCase struct {
	txManager   database.TxManager
	catalog     domain.CourseCatalog
	enrollments domain.EnrollmentKeeper
	vouchers    domain.VoucherKeeper
	accounts    domain.AccountKeeper
	journal     domain.TransactionRecorder
}

func NewPurchaseCase(
	txManager database.TxManager,
	catalog domain.CourseCatalog,
	enrollments domain.EnrollmentKeeper,
	vouchers domain.VoucherKeeper,
	accounts domain.AccountKeeper,
	journal domain.TransactionRecorder,
) *PurchaseCase {
	return &PurchaseCase{
		txManager:   txManager,
		catalog:     catalog,
		enrollments: enrollments,
		vouchers:    vouchers,
		accounts:    accounts,
		journal:     journal,
	}
}

func (pc *PurchaseCase) PurchaseCourse(ctx context.Context, userID, courseID int64, voucherCode string) (PurchaseResult, error) {
	var result PurchaseResult

	err := pc.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		course, err := pc.catalog.GetCourse(ctx, executor, courseID)
		if err != nil {
			return err
		}

		enrolled, err := pc.enrollments.Exists(ctx, executor, userID, courseID)
		if err != nil {
			return err
		}
		if enrolled {
			return &domain.AlreadyEnrolledError{Msg: "course already purchased"}
		}

		finalPrice := course.Price
		var voucher *domain.Voucher
		if voucherCode != "" {
			found, err := pc.vouchers.FindUsableByCode(ctx, executor, userID, voucherCode)
			if err != nil {
				return err
			}
			voucher = &found
			finalPrice = domain.DiscountedPrice(course.Price, found.Percent)
		}

		if _, err := pc.accounts.LockAndGetBalance(ctx, executor, userID); err != nil {
			return err
		}

		remaining, err := pc.accounts.ApplyDelta(ctx, executor, userID, -finalPrice)
		if err != nil {
			return err
		}

		enrollment, err := pc.enrollments.Create(ctx, executor, userID, courseID, domain.EnrollmentActive)
		if err != nil {
			return err
		}

		// A free course moves no money, so there is no payment to journal.
		if finalPrice > 0 {
			_, err = pc.journal.Append(ctx, executor, domain.TransactionEntry{
				FromUserID:  &userID,
				Amount:      finalPrice,
				Type:        domain.TransactionPayment,
				Description: course.Title,
			})
			if err != nil {
				return err
			}
		}

		if voucher != nil {
			if err := pc.vouchers.Redeem(ctx, executor, voucher.ID, courseID); err != nil {
				return err
			}
		}

		result = PurchaseResult{
			Enrollment:       enrollment,
			PricePaid:        finalPrice,
			RemainingBalance: remaining,
		}
		return nil
	})
	if err != nil {
		return PurchaseResult{}, err
	}

	return result, nil
}
