package bootstrap

import (
	"time"

	"github.com/joho/godotenv"

	"github.com/mlipski/schoolbank/internal/pkg/database"
	"github.com/mlipski/schoolbank/internal/pkg/env"
)

const (
	defaultHttpPort       = ":8080"
	defaultJwtSecret      = "dev-secret"
	defaultAdminUsername  = "admin"
	defaultAdminPassword  = "admin"
	defaultOpeningBalance = int64(10000)
	defaultVoucherTarget  = int64(3)
	defaultTopUpInterval  = 24 * time.Hour
)

type BankConfig struct {
	HttpPort   string
	DbSettings database.PostgresSettings
	JwtSecret  string

	AdminUsername string
	AdminPassword string

	OpeningBalance int64
	VoucherTarget  int
	TopUpInterval  time.Duration
}

// LoadConfig reads the configuration from the environment, falling back to
// development defaults. A .env file in the working directory is honored when
// present.
func LoadConfig() BankConfig {
	_ = godotenv.Load()

	cfg := BankConfig{
		HttpPort: defaultHttpPort,
		DbSettings: database.PostgresSettings{
			User:     "postgres",
			Password: "postgres",
			Host:     "localhost",
			Port:     "5432",
			DBName:   "schoolbank_db",
		},
		JwtSecret:      defaultJwtSecret,
		AdminUsername:  defaultAdminUsername,
		AdminPassword:  defaultAdminPassword,
		OpeningBalance: defaultOpeningBalance,
		TopUpInterval:  defaultTopUpInterval,
	}

	env.TrySetFromEnv(env.EnvHttpPort, &cfg.HttpPort)
	env.TrySetFromEnv(env.EnvDatabaseHost, &cfg.DbSettings.Host)
	env.TrySetFromEnv(env.EnvDatabasePort, &cfg.DbSettings.Port)
	env.TrySetFromEnv(env.EnvDatabaseUser, &cfg.DbSettings.User)
	env.TrySetFromEnv(env.EnvDatabasePassword, &cfg.DbSettings.Password)
	env.TrySetFromEnv(env.EnvDatabaseName, &cfg.DbSettings.DBName)
	env.TrySetFromEnv(env.EnvJwtSecret, &cfg.JwtSecret)
	env.TrySetFromEnv(env.EnvAdminUsername, &cfg.AdminUsername)
	env.TrySetFromEnv(env.EnvAdminPassword, &cfg.AdminPassword)
	env.TrySetIntFromEnv(env.EnvOpeningBalance, &cfg.OpeningBalance)
	env.TrySetDurationFromEnv(env.EnvTopUpInterval, &cfg.TopUpInterval)

	voucherTarget := defaultVoucherTarget
	env.TrySetIntFromEnv(env.EnvVoucherTarget, &voucherTarget)
	cfg.VoucherTarget = int(voucherTarget)

	return cfg
}
