package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mlipski/schoolbank/internal/bank/application"
	"github.com/mlipski/schoolbank/internal/bank/domain"
	httpwrap "github.com/mlipski/schoolbank/internal/bank/infrastructure/http"
	"github.com/mlipski/schoolbank/internal/bank/infrastructure/postgres"
	"github.com/mlipski/schoolbank/internal/bank/worker"
	"github.com/mlipski/schoolbank/internal/pkg/database"
	"github.com/mlipski/schoolbank/internal/pkg/jwt"
	"github.com/mlipski/schoolbank/internal/pkg/logging"
	"github.com/mlipski/schoolbank/migrations"
)

const (
	shutdownTimeout = 5 * time.Second
	migrationsDir   = "."
)

type BankApp struct {
	cfg    BankConfig
	logger logging.Logger

	server *http.Server
	dbpool *pgxpool.Pool
}

func NewBankApp(cfg BankConfig, logger logging.Logger) *BankApp {
	return &BankApp{
		cfg:    cfg,
		logger: logger,
	}
}

func (a *BankApp) Run(ctx context.Context) error {
	logger := a.logger
	cfg := a.cfg
	dbURL := cfg.DbSettings.GetUrl()

	if err := database.MigrateDatabase(dbURL, migrations.FS, migrationsDir); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	dbpool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	a.dbpool = dbpool

	txManager := database.NewDelegateTxManager(dbpool, logger)

	usersRepository := postgres.NewUsersRepository()
	accountsRepository := postgres.NewAccountsRepository()
	transactionsLog := postgres.NewTransactionsLog()
	vouchersRepository := postgres.NewVouchersRepository()
	coursesRepository := postgres.NewCoursesRepository()
	enrollmentsRepository := postgres.NewEnrollmentsRepository()

	passwordHasher := domain.NewArgonPasswordHasher()

	if err := EnsureDefaultAdmin(ctx, dbpool, usersRepository, passwordHasher, cfg.AdminUsername, cfg.AdminPassword, logger); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	authCase := application.NewAuthCase(dbpool, usersRepository, passwordHasher, jwt.NewJWTTokenIssuer(), cfg.JwtSecret)
	transferCase := application.NewTransferCase(txManager, usersRepository, accountsRepository, transactionsLog)
	purchaseCase := application.NewPurchaseCase(txManager, coursesRepository, enrollmentsRepository, vouchersRepository, accountsRepository, transactionsLog)
	adjustCase := application.NewAdjustCase(txManager, accountsRepository, transactionsLog)
	overviewCase := application.NewOverviewCase(dbpool, accountsRepository, transactionsLog, vouchersRepository, logger)
	historyCase := application.NewHistoryCase(dbpool, transactionsLog)
	provisionCase := application.NewProvisionCase(txManager, usersRepository, accountsRepository, vouchersRepository, passwordHasher, cfg.OpeningBalance, cfg.VoucherTarget)
	topUpCase := application.NewTopUpCase(dbpool, txManager, usersRepository, vouchersRepository, cfg.VoucherTarget, logger)

	voucherTopper := worker.NewVoucherTopper(topUpCase, cfg.TopUpInterval, logger)
	go voucherTopper.Run(ctx)

	router := createRouter(cfg, authCase, transferCase, purchaseCase, adjustCase, overviewCase, historyCase, provisionCase)

	a.server = &http.Server{
		Addr:    cfg.HttpPort,
		Handler: router,
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("starting http server", "addr", cfg.HttpPort)
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("error while starting http server: %w", err)
			return
		}

		errChan <- nil
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		return nil
	}
}

func (a *BankApp) Shutdown() {
	if a.server == nil {
		return
	}

	a.logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("server shutdown failed", "error", err.Error())
	}

	if a.dbpool != nil {
		a.dbpool.Close()
	}
}

func createRouter(
	cfg BankConfig,
	authCase *application.AuthCase,
	transferCase *application.TransferCase,
	purchaseCase *application.PurchaseCase,
	adjustCase *application.AdjustCase,
	overviewCase *application.OverviewCase,
	historyCase *application.HistoryCase,
	provisionCase *application.ProvisionCase,
) *gin.Engine {
	router := gin.Default()

	authHandler := httpwrap.NewAuthHandler(authCase)
	ledgerHandler := httpwrap.NewLedgerHandler(transferCase, purchaseCase, overviewCase, historyCase)
	adminHandler := httpwrap.NewAdminHandler(provisionCase, adjustCase, historyCase)

	api := router.Group("/api")
	{
		api.POST("/auth", authHandler.Authenticate)

		authenticated := api.Group("/", httpwrap.NewAuthMiddleware(jwt.NewJWTTokenParser(), []byte(cfg.JwtSecret)))
		{
			authenticated.GET("/balance", ledgerHandler.GetBalance)
			authenticated.GET("/overview", ledgerHandler.GetOverview)
			authenticated.GET("/transactions", ledgerHandler.GetTransactions)
			authenticated.POST("/transfer", ledgerHandler.Transfer)
			authenticated.POST("/purchase", ledgerHandler.Purchase)

			admin := authenticated.Group("/admin", httpwrap.NewAdminMiddleware())
			{
				admin.POST("/students", adminHandler.CreateStudent)
				admin.POST("/adjust", adminHandler.AdjustBalance)
				admin.GET("/transactions", adminHandler.GetAllTransactions)
			}
		}
	}

	return router
}
