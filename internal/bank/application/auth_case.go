package application

import (
	"context"
	"time"

	"github.com/mlipski/schoolbank/internal/bank/domain"
	"github.com/mlipski/schoolbank/internal/pkg/database"
	"github.com/mlipski/schoolbank/internal/pkg/jwt"
)

const tokenTimeLimit = time.Hour

type AuthCase struct {
	db          database.Querier
	users       domain.UserDirectory
	hasher      domain.PasswordHasher
	tokenIssuer jwt.TokenIssuer
	secretKey   []byte
}

func NewAuthCase(
	db database.Querier,
	users domain.UserDirectory,
	hasher domain.PasswordHasher,
	tokenIssuer jwt.TokenIssuer,
	secretKey string,
) *AuthCase {
	return &AuthCase{
		db:          db,
		users:       users,
		hasher:      hasher,
		tokenIssuer: tokenIssuer,
		secretKey:   []byte(secretKey),
	}
}

func (ac *AuthCase) Login(ctx context.Context, username, password string) (string, error) {
	creds, found, err := ac.users.TryGetByUsername(ctx, ac.db, username)
	if err != nil {
		return "", err
	}
	if !found {
		return "", &domain.InvalidCredentialsError{Msg: "invalid username or password"}
	}

	valid, err := ac.hasher.VerifyPassword(password, creds.PasswordHash)
	if err != nil {
		return "", err
	}
	if !valid {
		return "", &domain.InvalidCredentialsError{Msg: "invalid username or password"}
	}

	return ac.tokenIssuer.IssueToken(ac.secretKey, creds.ID, creds.Username, string(creds.Role), tokenTimeLimit)
}
