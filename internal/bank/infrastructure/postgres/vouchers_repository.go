package postgres

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	mathrand "math/rand/v2"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/mlipski/schoolbank/internal/bank/domain"
	"github.com/mlipski/schoolbank/internal/pkg/database"
)

const (
	// No lookalike characters (0/O, 1/I/L) so codes survive being read aloud.
	voucherCodeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"
	voucherCodeLength   = 10
	maxCodeAttempts     = 5
)

type VouchersRepository struct{}

func NewVouchersRepository() *VouchersRepository {
	return &VouchersRepository{}
}

func (r *VouchersRepository) Mint(ctx context.Context, executor database.QueryExecuter, userID int64, count int) ([]domain.Voucher, error) {
	if count <= 0 {
		return nil, &domain.InvalidArgumentsError{Msg: "voucher count must be positive"}
	}

	vouchers := make([]domain.Voucher, 0, count)
	for i := 0; i < count; i++ {
		voucher, err := r.mintOne(ctx, executor, userID)
		if err != nil {
			return nil, err
		}
		vouchers = append(vouchers, voucher)
	}

	return vouchers, nil
}

func (r *VouchersRepository) mintOne(ctx context.Context, executor database.QueryExecuter, userID int64) (domain.Voucher, error) {
	codeTakenSQL := `SELECT EXISTS(SELECT 1 FROM vouchers WHERE code = $1)`
	insertVoucherSQL := `INSERT INTO vouchers (id, code, user_id, percent) VALUES ($1, $2, $3, $4) RETURNING created_at`

	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := generateVoucherCode()
		if err != nil {
			return domain.Voucher{}, fmt.Errorf("failed to generate voucher code: %w", err)
		}

		// The collision check must happen before the insert: minting always
		// runs inside a transaction, and a unique violation would abort it
		// and poison every further retry attempt.
		var taken bool
		if err := executor.QueryRow(ctx, codeTakenSQL, code).Scan(&taken); err != nil {
			return domain.Voucher{}, fmt.Errorf("failed to check voucher code: %w", err)
		}
		if taken {
			continue
		}

		voucher := domain.Voucher{
			ID:      uuid.New(),
			Code:    code,
			UserID:  userID,
			Percent: randomPercent(),
		}

		err = executor.QueryRow(ctx, insertVoucherSQL, voucher.ID, voucher.Code, voucher.UserID, voucher.Percent).
			Scan(&voucher.CreatedAt)
		if err != nil {
			// A concurrent mint can still win the same code between check
			// and insert; at that point the transaction is aborted and only
			// the caller can retry.
			return domain.Voucher{}, fmt.Errorf("failed to insert voucher: %w", err)
		}

		return voucher, nil
	}

	return domain.Voucher{}, &domain.CodeGenerationError{Msg: fmt.Sprintf("could not generate a unique voucher code in %d attempts", maxCodeAttempts)}
}

func (r *VouchersRepository) FindUsableByCode(ctx context.Context, querier database.Querier, userID int64, code string) (domain.Voucher, error) {
	findVoucherSQL := `SELECT id, code, user_id, percent, used, used_at, used_course_id, created_at
FROM vouchers
WHERE user_id = $1 AND code = $2 AND NOT used`

	var voucher domain.Voucher
	err := querier.QueryRow(ctx, findVoucherSQL, userID, code).Scan(
		&voucher.ID,
		&voucher.Code,
		&voucher.UserID,
		&voucher.Percent,
		&voucher.Used,
		&voucher.UsedAt,
		&voucher.UsedCourseID,
		&voucher.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// A foreign code and a missing code look the same on purpose.
			return domain.Voucher{}, &domain.VoucherNotFoundError{Msg: "no usable voucher with this code"}
		}

		return domain.Voucher{}, fmt.Errorf("failed to find voucher: %w", err)
	}

	return voucher, nil
}

func (r *VouchersRepository) Redeem(ctx context.Context, executor database.Executor, voucherID uuid.UUID, courseID int64) error {
	// Compare-and-set on the used flag: of two concurrent redemptions only
	// one matches the row.
	redeemSQL := `UPDATE vouchers
SET used = TRUE, used_at = now(), used_course_id = $2
WHERE id = $1 AND NOT used`

	tag, err := executor.Exec(ctx, redeemSQL, voucherID, courseID)
	if err != nil {
		return fmt.Errorf("failed to redeem voucher: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return &domain.VoucherUsedError{Msg: "voucher has already been used"}
	}

	return nil
}

func (r *VouchersRepository) CountByUser(ctx context.Context, querier database.Querier, userID int64) (int, error) {
	countSQL := `SELECT COUNT(*) FROM vouchers WHERE user_id = $1`

	var count int
	err := querier.QueryRow(ctx, countSQL, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count vouchers: %w", err)
	}

	return count, nil
}

func (r *VouchersRepository) ListUnusedByUser(ctx context.Context, querier database.Querier, userID int64) ([]domain.Voucher, error) {
	listUnusedSQL := `SELECT id, code, user_id, percent, used, used_at, used_course_id, created_at
FROM vouchers
WHERE user_id = $1 AND NOT used
ORDER BY created_at`

	rows, err := querier.Query(ctx, listUnusedSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select vouchers: %w", err)
	}
	defer rows.Close()

	vouchers := make([]domain.Voucher, 0)
	for rows.Next() {
		var voucher domain.Voucher
		err = rows.Scan(
			&voucher.ID,
			&voucher.Code,
			&voucher.UserID,
			&voucher.Percent,
			&voucher.Used,
			&voucher.UsedAt,
			&voucher.UsedCourseID,
			&voucher.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan voucher row: %w", err)
		}
		vouchers = append(vouchers, voucher)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read voucher rows: %w", err)
	}

	return vouchers, nil
}

func generateVoucherCode() (string, error) {
	code := make([]byte, voucherCodeLength)
	alphabetLen := big.NewInt(int64(len(voucherCodeAlphabet)))

	for i := range code {
		idx, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", err
		}
		code[i] = voucherCodeAlphabet[idx.Int64()]
	}

	return string(code), nil
}

func randomPercent() int {
	return domain.MinVoucherPercent + mathrand.IntN(domain.MaxVoucherPercent-domain.MinVoucherPercent+1)
}
