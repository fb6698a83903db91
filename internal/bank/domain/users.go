package domain

import (
	"context"

	"github.com/mlipski/schoolbank/internal/pkg/database"
)

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleStudent Role = "student"
)

type User struct {
	ID       int64
	Username string
	Role     Role
}

type UserCredentials struct {
	User
	PasswordHash string
}

type UserDirectory interface {
	GetUser(ctx context.Context, querier database.Querier, userID int64) (User, error)
	TryGetByUsername(ctx context.Context, querier database.Querier, username string) (UserCredentials, bool, error)
	CreateUser(ctx context.Context, querier database.Querier, username, passwordHash string, role Role) (User, error)
	ListByRole(ctx context.Context, querier database.Querier, role Role) ([]User, error)
	// LockUser takes the user row lock; the voucher top-up uses it to
	// serialize concurrent minting for the same student.
	LockUser(ctx context.Context, querier database.Querier, userID int64) error
}
