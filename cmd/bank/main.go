package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/mlipski/schoolbank/internal/bank/bootstrap"
	"github.com/mlipski/schoolbank/internal/pkg/logging"
)

func main() {
	mainCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logging.StdoutLogger
	cfg := bootstrap.LoadConfig()

	app := bootstrap.NewBankApp(cfg, logger)

	if err := app.Run(mainCtx); err != nil {
		logger.Error("application failed", "error", err.Error())
	}

	app.Shutdown()
}
