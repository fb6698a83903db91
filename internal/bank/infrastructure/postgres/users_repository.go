package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mlipski/schoolbank/internal/bank/domain"
	"github.com/mlipski/schoolbank/internal/pkg/database"
)

type UsersRepository struct{}

func NewUsersRepository() *UsersRepository {
	return &UsersRepository{}
}

func (r *UsersRepository) GetUser(ctx context.Context, querier database.Querier, userID int64) (domain.User, error) {
	selectUserSQL := `SELECT id, username, role FROM users WHERE id = $1`

	var user domain.User
	err := querier.QueryRow(ctx, selectUserSQL, userID).Scan(&user.ID, &user.Username, &user.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, &domain.UserNotFoundError{Msg: fmt.Sprintf("user with id %d not found", userID)}
		}

		return domain.User{}, fmt.Errorf("failed to select user: %w", err)
	}

	return user, nil
}

func (r *UsersRepository) TryGetByUsername(ctx context.Context, querier database.Querier, username string) (domain.UserCredentials, bool, error) {
	selectUserSQL := `SELECT id, username, role, password_hash FROM users WHERE username = $1`

	var creds domain.UserCredentials
	err := querier.QueryRow(ctx, selectUserSQL, username).Scan(&creds.ID, &creds.Username, &creds.Role, &creds.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.UserCredentials{}, false, nil
		}

		return domain.UserCredentials{}, false, fmt.Errorf("failed to select user by username: %w", err)
	}

	return creds, true, nil
}

func (r *UsersRepository) CreateUser(ctx context.Context, querier database.Querier, username, passwordHash string, role domain.Role) (domain.User, error) {
	insertUserSQL := `INSERT INTO users (username, password_hash, role) VALUES ($1, $2, $3) RETURNING id`

	user := domain.User{
		Username: username,
		Role:     role,
	}

	err := querier.QueryRow(ctx, insertUserSQL, username, passwordHash, string(role)).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.User{}, &domain.UserExistsError{Msg: fmt.Sprintf("username %q is already taken", username)}
		}

		return domain.User{}, fmt.Errorf("failed to insert user: %w", err)
	}

	return user, nil
}

func (r *UsersRepository) ListByRole(ctx context.Context, querier database.Querier, role domain.Role) ([]domain.User, error) {
	listUsersSQL := `SELECT id, username, role FROM users WHERE role = $1 ORDER BY id`

	rows, err := querier.Query(ctx, listUsersSQL, string(role))
	if err != nil {
		return nil, fmt.Errorf("failed to select users: %w", err)
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		var user domain.User
		err = rows.Scan(&user.ID, &user.Username, &user.Role)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read user rows: %w", err)
	}

	return users, nil
}

func (r *UsersRepository) LockUser(ctx context.Context, querier database.Querier, userID int64) error {
	lockUserSQL := `SELECT id FROM users WHERE id = $1 FOR UPDATE`

	var id int64
	err := querier.QueryRow(ctx, lockUserSQL, userID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &domain.UserNotFoundError{Msg: fmt.Sprintf("user with id %d not found", userID)}
		}

		return fmt.Errorf("failed to lock user row: %w", err)
	}

	return nil
}
