package integration

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/mlipski/schoolbank/internal/pkg/database"
	"github.com/mlipski/schoolbank/migrations"
)

// startPostgres spins up a disposable postgres container, waits until it
// accepts connections and applies all migrations.
func startPostgres(t *testing.T) (*pgxpool.Pool, database.PostgresSettings) {
	t.Helper()

	pg, err := postgres.Run(
		t.Context(),
		"postgres:16-alpine",
		postgres.WithDatabase("schoolbank_db"),
		postgres.WithUsername("admin"),
		postgres.WithPassword("password"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pg.Terminate(context.Background()) })

	connStr, err := pg.ConnectionString(t.Context(), "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("pgx", connStr)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.Eventually(t, func() bool {
		timeCtx, cancel := context.WithTimeout(t.Context(), 500*time.Millisecond)
		defer cancel()
		return db.PingContext(timeCtx) == nil
	}, 30*time.Second, 500*time.Millisecond)

	require.NoError(t, database.MigrateDatabase(connStr, migrations.FS, "."))

	pool, err := pgxpool.New(t.Context(), connStr)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	dbHost, err := pg.Host(t.Context())
	require.NoError(t, err)
	dbPort, err := pg.MappedPort(t.Context(), "5432/tcp")
	require.NoError(t, err)

	settings := database.PostgresSettings{
		User:     "admin",
		Password: "password",
		Host:     dbHost,
		Port:     dbPort.Port(),
		DBName:   "schoolbank_db",
	}

	return pool, settings
}
