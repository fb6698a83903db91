package application

import (
	"context"

	"github.com/mlipski/schoolbank/internal/bank/domain"
	"github.com/mlipski/schoolbank/internal/pkg/database"
)

type HistoryCase struct {
	db      database.Querier
	journal domain.TransactionRecorder
}

func NewHistoryCase(db database.Querier, journal domain.TransactionRecorder) *HistoryCase {
	return &HistoryCase{
		db:      db,
		journal: journal,
	}
}

func (hc *HistoryCase) ListByUser(ctx context.Context, userID int64) ([]domain.Transaction, error) {
	return hc.journal.ListByUser(ctx, hc.db, userID)
}

func (hc *HistoryCase) ListAll(ctx context.Context) ([]domain.Transaction, error) {
	return hc.journal.ListAll(ctx, hc.db)
}
