package worker

import (
	"context"
	"time"

	"github.com/mlipski/schoolbank/internal/pkg/logging"
)

type TopUpRunner interface {
	TopUpAll(ctx context.Context) error
}

// VoucherTopper periodically replenishes student voucher stocks. Each run
// delegates to the top-up case; failures are logged and the next tick retries.
type VoucherTopper struct {
	runner   TopUpRunner
	interval time.Duration
	logger   logging.Logger
}

func NewVoucherTopper(runner TopUpRunner, interval time.Duration, logger logging.Logger) *VoucherTopper {
	return &VoucherTopper{
		runner:   runner,
		interval: interval,
		logger:   logger,
	}
}

// Run blocks until ctx is cancelled. The first top-up happens immediately,
// subsequent ones on every interval tick.
func (vt *VoucherTopper) Run(ctx context.Context) {
	vt.logger.Info("voucher top-up worker started", "interval", vt.interval)

	vt.runOnce(ctx)

	ticker := time.NewTicker(vt.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			vt.logger.Info("voucher top-up worker stopped")
			return
		case <-ticker.C:
			vt.runOnce(ctx)
		}
	}
}

func (vt *VoucherTopper) runOnce(ctx context.Context) {
	if err := vt.runner.TopUpAll(ctx); err != nil {
		vt.logger.Error("voucher top-up run failed", "error", err)
	}
}
