package postgres

import (
	"context"
	"fmt"

	"github.com/mlipski/schoolbank/internal/bank/domain"
	"github.com/mlipski/schoolbank/internal/pkg/database"
)

type EnrollmentsRepository struct{}

func NewEnrollmentsRepository() *EnrollmentsRepository {
	return &EnrollmentsRepository{}
}

func (r *EnrollmentsRepository) Exists(ctx context.Context, querier database.Querier, userID, courseID int64) (bool, error) {
	existsSQL := `SELECT EXISTS(SELECT 1 FROM enrollments WHERE user_id = $1 AND course_id = $2)`

	var exists bool
	err := querier.QueryRow(ctx, existsSQL, userID, courseID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check enrollment: %w", err)
	}

	return exists, nil
}

func (r *EnrollmentsRepository) Create(ctx context.Context, querier database.Querier, userID, courseID int64, status string) (domain.Enrollment, error) {
	insertEnrollmentSQL := `INSERT INTO enrollments (user_id, course_id, status) VALUES ($1, $2, $3) RETURNING id, created_at`

	enrollment := domain.Enrollment{
		UserID:   userID,
		CourseID: courseID,
		Status:   status,
	}

	err := querier.QueryRow(ctx, insertEnrollmentSQL, userID, courseID, status).Scan(&enrollment.ID, &enrollment.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Enrollment{}, &domain.AlreadyEnrolledError{Msg: fmt.Sprintf("user %d is already enrolled in course %d", userID, courseID)}
		}

		return domain.Enrollment{}, fmt.Errorf("failed to insert enrollment: %w", err)
	}

	return enrollment, nil
}
