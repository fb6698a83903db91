package bootstrap

import (
	"context"
	"errors"

	"github.com/mlipski/schoolbank/internal/bank/domain"
	"github.com/mlipski/schoolbank/internal/pkg/database"
	"github.com/mlipski/schoolbank/internal/pkg/logging"
)

// EnsureDefaultAdmin creates the configured admin user if it does not exist
// yet. Safe to run on every startup.
func EnsureDefaultAdmin(
	ctx context.Context,
	db database.Querier,
	users domain.UserDirectory,
	hasher domain.PasswordHasher,
	username, password string,
	logger logging.Logger,
) error {
	_, found, err := users.TryGetByUsername(ctx, db, username)
	if err != nil {
		return err
	}
	if found {
		return nil
	}

	passwordHash, err := hasher.HashPassword(password)
	if err != nil {
		return err
	}

	admin, err := users.CreateUser(ctx, db, username, passwordHash, domain.RoleAdmin)
	if err != nil {
		if errors.Is(err, &domain.UserExistsError{}) {
			return nil
		}
		return err
	}

	logger.Info("created default admin user", "userID", admin.ID, "username", username)
	return nil
}
