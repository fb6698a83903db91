package domain

import (
	"context"
	"time"

	"github.com/mlipski/schoolbank/internal/pkg/database"
)

const EnrollmentActive = "active"

type Course struct {
	ID    int64
	Title string
	Price int64
}

type Enrollment struct {
	ID        int64
	UserID    int64
	CourseID  int64
	Status    string
	CreatedAt time.Time
}

type CourseCatalog interface {
	GetCourse(ctx context.Context, querier database.Querier, courseID int64) (Course, error)
}

type EnrollmentKeeper interface {
	Exists(ctx context.Context, querier database.Querier, userID, courseID int64) (bool, error)
	Create(ctx context.Context, querier database.Querier, userID, courseID int64, status string) (Enrollment, error)
}
