package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mlipski/schoolbank/internal/bank/domain"
	"github.com/mlipski/schoolbank/internal/pkg/database"
)

type CoursesRepository struct{}

func NewCoursesRepository() *CoursesRepository {
	return &CoursesRepository{}
}

func (r *CoursesRepository) GetCourse(ctx context.Context, querier database.Querier, courseID int64) (domain.Course, error) {
	selectCourseSQL := `SELECT id, title, price FROM courses WHERE id = $1`

	var course domain.Course
	err := querier.QueryRow(ctx, selectCourseSQL, courseID).Scan(&course.ID, &course.Title, &course.Price)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Course{}, &domain.CourseNotFoundError{Msg: fmt.Sprintf("course with id %d not found", courseID)}
		}

		return domain.Course{}, fmt.Errorf("failed to select course: %w", err)
	}

	return course, nil
}
