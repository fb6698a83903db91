package env

const (
	EnvHttpPort = "HTTP_PORT"

	EnvDatabaseHost     = "DB_HOST"
	EnvDatabasePort     = "DB_PORT"
	EnvDatabaseUser     = "DB_USER"
	EnvDatabasePassword = "DB_PASSWORD"
	EnvDatabaseName     = "DB_NAME"

	EnvJwtSecret = "JWT_SECRET"

	EnvAdminUsername = "ADMIN_USERNAME"
	EnvAdminPassword = "ADMIN_PASSWORD"

	EnvOpeningBalance = "OPENING_BALANCE"
	EnvVoucherTarget  = "VOUCHER_TARGET"
	EnvTopUpInterval  = "VOUCHER_TOPUP_INTERVAL"
)
